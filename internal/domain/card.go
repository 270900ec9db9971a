package domain

// Card is the structured reply card the renderer produces. The chat
// transport turns it into whatever rich-message shape the platform wants;
// the core never deals in pixels.
type Card struct {
	Title       string
	URL         string
	Description string
	Color       int
	Thumbnail   string
	Fields      []Field
	Footer      *Footer
}

// Field is one titled section of a card.
type Field struct {
	Name   string
	Value  string
	Inline bool
}

// Footer is the card attribution line.
type Footer struct {
	Text    string
	IconURL string
}

// ActionRow is one row of interactive components attached to a reply. A row
// holds either a select menu or a run of buttons, mirroring the platform's
// component model.
type ActionRow struct {
	Select  *SelectMenu
	Buttons []Button
}

// SelectMenu is a single-choice dropdown.
type SelectMenu struct {
	CustomID    string
	Placeholder string
	Options     []SelectOption
}

// SelectOption is one entry of a select menu.
type SelectOption struct {
	Label string
	Value string
}

// Button is a clickable component.
type Button struct {
	CustomID string
	Label    string
	Primary  bool
}

// ComponentEvent is a component interaction delivered to an active reply's
// loop. Ack acknowledges the interaction as a deferred update.
type ComponentEvent struct {
	CustomID  string
	Values    []string
	UserID    string
	ChannelID string
	Ack       func() error
}
