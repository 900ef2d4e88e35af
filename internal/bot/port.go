package bot

import "context"

// ChatPort is the outbound boundary to the chat platform. The core depends
// only on this interface; the concrete session lives in its own adapter.
type ChatPort interface {
	// PostToChannel sends a plain text message to a channel.
	PostToChannel(ctx context.Context, channel, text string) error

	// SendDirectMessage sends a plain text message to a user.
	SendDirectMessage(ctx context.Context, userID, text string) error

	// AddReaction attaches a reaction to the message at the given raw
	// timestamp in a channel.
	AddReaction(ctx context.Context, channel, messageTimestamp, reaction string) error

	// UserInfo returns the display name and full name for a platform user
	// id, served from the platform's cached roster.
	UserInfo(ctx context.Context, uid string) (name, realName string, err error)
}

// MessageEvent is an inbound chat message.
type MessageEvent struct {
	UserID    string
	Channel   string
	Text      string
	Timestamp string
}

// ReactionEvent is an inbound reaction added to or removed from a message.
// ItemTimestamp is the reacted-to post's raw timestamp, not the reaction's.
type ReactionEvent struct {
	UserID        string
	Reaction      string
	ItemChannel   string
	ItemTimestamp string
}
