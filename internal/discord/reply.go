package discord

import (
	"strconv"

	"github.com/bwmarrin/discordgo"

	"github.com/relyk/tomatobot/internal/domain"
)

// Reply is the live handle for one deferred interaction response. It
// implements interaction.Replier; component events are routed to it by the
// session's gateway handler.
type Reply struct {
	session     *discordgo.Session
	interaction *discordgo.Interaction
	router      *componentRouter

	id        int64
	invokerID string
	claimed   []string
	events    chan domain.ComponentEvent
}

func newReply(session *discordgo.Session, i *discordgo.Interaction, router *componentRouter) *Reply {
	// Interaction ids are snowflakes; the numeric form seeds the
	// component custom-ids.
	id, _ := strconv.ParseInt(i.ID, 10, 64)

	r := &Reply{
		session:     session,
		interaction: i,
		router:      router,
		id:          id,
		invokerID:   invokerID(i),
		events:      make(chan domain.ComponentEvent, 8),
	}
	r.claimed = []string{
		strconv.FormatInt(id, 10),
		strconv.FormatInt(id*2, 10),
		strconv.FormatInt(id*3, 10),
	}
	router.register(r.events, r.claimed...)
	return r
}

// ID returns the numeric interaction id.
func (r *Reply) ID() int64 { return r.id }

// InvokerID returns the id of the user who invoked the command.
func (r *Reply) InvokerID() string { return r.invokerID }

// ChannelID returns the channel the reply lives in.
func (r *Reply) ChannelID() string { return r.interaction.ChannelID }

// Events delivers component interactions claimed by this reply.
func (r *Reply) Events() <-chan domain.ComponentEvent { return r.events }

// Say replaces the deferred response with plain text.
func (r *Reply) Say(content string) error {
	empty := []*discordgo.MessageEmbed{}
	noComponents := []discordgo.MessageComponent{}
	_, err := r.session.InteractionResponseEdit(r.interaction, &discordgo.WebhookEdit{
		Content:    &content,
		Embeds:     &empty,
		Components: &noComponents,
	})
	return err
}

// Edit replaces the deferred response with a card. Nil rows strip all
// components.
func (r *Reply) Edit(card *domain.Card, rows []domain.ActionRow) error {
	content := ""
	embeds := []*discordgo.MessageEmbed{toEmbed(card)}
	components := toComponents(rows)
	_, err := r.session.InteractionResponseEdit(r.interaction, &discordgo.WebhookEdit{
		Content:    &content,
		Embeds:     &embeds,
		Components: &components,
	})
	return err
}

// Close releases the reply's custom-ids. Events arriving afterwards are
// dropped by the router.
func (r *Reply) Close() {
	r.router.unregister(r.claimed...)
}

func invokerID(i *discordgo.Interaction) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}
