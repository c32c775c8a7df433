package models

import "time"

// Color is the fixed palette for kudo backgrounds and text.
type Color string

const (
	ColorRed    Color = "RED"
	ColorGreen  Color = "GREEN"
	ColorYellow Color = "YELLOW"
	ColorBlue   Color = "BLUE"
	ColorWhite  Color = "WHITE"
)

// Emoji is the fixed set of kudo emojis.
type Emoji string

const (
	EmojiThumbsUp Emoji = "THUMBSUP"
	EmojiParty    Emoji = "PARTY"
	EmojiHandsUp  Emoji = "HANDSUP"
)

// KudoStyle is the style triple attached to every kudo.
type KudoStyle struct {
	BackgroundColor Color `json:"backgroundColor"`
	TextColor       Color `json:"textColor"`
	Emoji           Emoji `json:"emoji"`
}

// Kudo is a single styled message from one user to another. Kudos are
// immutable once created.
type Kudo struct {
	ID          string    `json:"id"`
	Message     string    `json:"message"`
	AuthorID    string    `json:"authorId"`
	RecipientID string    `json:"recipientId"`
	Style       KudoStyle `json:"style"`
	CreatedAt   time.Time `json:"createdAt"`

	// Author carries the author's profile when the kudo was loaded through a
	// listing query, so the feed can render names and avatars in one pass.
	Author Profile `json:"author"`
}

// RecentKudo is the trimmed shape shown in the recent-activity bar: the emoji
// plus the recipient's picture.
type RecentKudo struct {
	ID        string  `json:"id"`
	Emoji     Emoji   `json:"emoji"`
	Recipient Profile `json:"recipient"`
}
