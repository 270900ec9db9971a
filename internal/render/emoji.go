package render

// Custom emoji glyphs uploaded to the home guild. The raw <:name:id> form
// renders anywhere the bot can post.
const (
	emojiMark3       = "<:mark_3:1188009637291765801>"
	emojiMark2       = "<:mark_2:1188009640777236514>"
	emojiMark1       = "<:mark_1:1188009633772736563>"
	emojiMastery     = "<:masteryIcon:1188009638420037652>"
	emojiFirstClass  = "<:firstClassIcon:1188009639820935240>"
	emojiSecondClass = "<:2ndClassIcon:1188009636398387260>"
	emojiThirdClass  = "<:3rdClassIcon:1188009635014246441>"
	emojiCredits     = "<:credits:1188059891395477585>"
)

var classEmojis = map[string]string{
	"MT":  "<:MT:1188064483134951474>",
	"LT":  "<:LT:1188064513061290035>",
	"HT":  "<:HT:1188064482153467954>",
	"SPG": "<:SPG:1188064481050370048>",
	"TD":  "<:TD:1188064486490378260>",
}

var premClassEmojis = map[string]string{
	"MT":  "<:premMT:1188064479020339241>",
	"LT":  "<:premLT:1188064478282137602>",
	"HT":  "<:premHT:1188064474989592647>",
	"SPG": "<:premSPG:1188064475870416896>",
	"TD":  "<:premTD:1188064477405528134>",
}

var nationEmojis = map[string]string{
	"france":  "<:France:1188231544800813106>",
	"ussr":    "<:USSR:1188231683397406772>",
	"germany": "<:Germany:1188231546340122654>",
	"china":   "<:China:1188231542452011038>",
	"poland":  "<:Poland:1188231549938827365>",
	"uk":      "<:UK:1188231586550915163>",
	"usa":     "<:USA:1188231554502250596>",
	"sweden":  "<:Sweden:1188231551285219348>",
	"japan":   "<:Japan:1188231548751855696>",
	"italy":   "<:Italy:1188231547246088222>",
	"czech":   "<:Czech:1188231543328604191>",
}

// ClassEmoji returns the class glyph, with the gold variant for premiums.
func ClassEmoji(isPremium bool, class string) string {
	table := classEmojis
	if isPremium {
		table = premClassEmojis
	}
	if glyph, ok := table[class]; ok {
		return glyph
	}
	return "Error"
}

// NationEmoji returns the nation flag glyph.
func NationEmoji(nation string) string {
	if glyph, ok := nationEmojis[nation]; ok {
		return glyph
	}
	return "Emoji Error"
}
