package config

import "fmt"

// BotConfig holds chat bot behavior configuration.
type BotConfig struct {
	// Name is the textual bot mention that prefixes commands (e.g. "crbot").
	Name string
	// Channel is the tracked channel whose messages are scanned for commit links.
	Channel string
	// AckReaction is attached by the bot to messages containing commit links.
	AckReaction string
	// ReviewedReactions are the reaction kinds recorded as "looked at" signals.
	ReviewedReactions []string
	// CommentedReactions are the reaction kinds recorded as "commented" signals.
	CommentedReactions []string
}

// LoadBotConfigFromEnv loads bot configuration from environment variables.
func LoadBotConfigFromEnv() BotConfig {
	return BotConfig{
		Name:               GetEnv("BOT_NAME", "crbot"),
		Channel:            GetEnv("BOT_CHANNEL", "code-reviews"),
		AckReaction:        GetEnv("BOT_ACK_REACTION", "robot_face"),
		ReviewedReactions:  GetEnvSlice("BOT_REVIEWED_REACTIONS", []string{"eyes", "heavy_check_mark"}),
		CommentedReactions: GetEnvSlice("BOT_COMMENTED_REACTIONS", []string{"speech_balloon", "memo"}),
	}
}

// ReactionKind classifies a reaction name into a review signal.
// commented reports the signal kind, tracked reports whether the
// reaction is a review signal at all.
func (c BotConfig) ReactionKind(name string) (commented bool, tracked bool) {
	for _, r := range c.ReviewedReactions {
		if r == name {
			return false, true
		}
	}
	for _, r := range c.CommentedReactions {
		if r == name {
			return true, true
		}
	}
	return false, false
}

// Validate validates bot configuration.
func (c BotConfig) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("BOT_NAME must not be empty")
	}
	if c.Channel == "" {
		return fmt.Errorf("BOT_CHANNEL must not be empty")
	}
	if len(c.ReviewedReactions) == 0 && len(c.CommentedReactions) == 0 {
		return fmt.Errorf("at least one reviewed or commented reaction must be configured")
	}

	seen := map[string]bool{}
	for _, r := range c.ReviewedReactions {
		seen[r] = true
	}
	for _, r := range c.CommentedReactions {
		if seen[r] {
			return fmt.Errorf("reaction %q configured as both reviewed and commented", r)
		}
	}
	return nil
}
