// Package discord adapts the bot core to the Discord gateway: slash-command
// registration, interaction dispatch, and the card-to-embed conversion.
package discord

import (
	"github.com/bwmarrin/discordgo"

	"github.com/relyk/tomatobot/internal/domain"
)

// toEmbed converts a structured card into a Discord embed.
func toEmbed(card *domain.Card) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       card.Title,
		URL:         card.URL,
		Description: card.Description,
		Color:       card.Color,
	}
	if card.Thumbnail != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: card.Thumbnail}
	}
	for _, field := range card.Fields {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   field.Name,
			Value:  field.Value,
			Inline: field.Inline,
		})
	}
	if card.Footer != nil {
		embed.Footer = &discordgo.MessageEmbedFooter{
			Text:    card.Footer.Text,
			IconURL: card.Footer.IconURL,
		}
	}
	return embed
}

// toComponents converts action rows into Discord message components. A nil
// input yields an empty slice, which strips components on edit.
func toComponents(rows []domain.ActionRow) []discordgo.MessageComponent {
	components := make([]discordgo.MessageComponent, 0, len(rows))
	for _, row := range rows {
		var inner []discordgo.MessageComponent
		if row.Select != nil {
			options := make([]discordgo.SelectMenuOption, 0, len(row.Select.Options))
			for _, option := range row.Select.Options {
				options = append(options, discordgo.SelectMenuOption{
					Label: option.Label,
					Value: option.Value,
				})
			}
			inner = append(inner, discordgo.SelectMenu{
				CustomID:    row.Select.CustomID,
				Placeholder: row.Select.Placeholder,
				Options:     options,
			})
		}
		for _, button := range row.Buttons {
			style := discordgo.SecondaryButton
			if button.Primary {
				style = discordgo.PrimaryButton
			}
			inner = append(inner, discordgo.Button{
				CustomID: button.CustomID,
				Label:    button.Label,
				Style:    style,
			})
		}
		components = append(components, discordgo.ActionsRow{Components: inner})
	}
	return components
}
