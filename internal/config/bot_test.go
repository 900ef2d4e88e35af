package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBotConfigReactionKind(t *testing.T) {
	cfg := BotConfig{
		ReviewedReactions:  []string{"eyes", "heavy_check_mark"},
		CommentedReactions: []string{"speech_balloon"},
	}

	t.Run("reviewed reaction", func(t *testing.T) {
		commented, tracked := cfg.ReactionKind("eyes")
		assert.True(t, tracked)
		assert.False(t, commented)
	})

	t.Run("commented reaction", func(t *testing.T) {
		commented, tracked := cfg.ReactionKind("speech_balloon")
		assert.True(t, tracked)
		assert.True(t, commented)
	})

	t.Run("untracked reaction", func(t *testing.T) {
		_, tracked := cfg.ReactionKind("thumbsup")
		assert.False(t, tracked)
	})
}

func TestBotConfigValidate(t *testing.T) {
	valid := BotConfig{
		Name:              "crbot",
		Channel:           "code-reviews",
		AckReaction:       "robot_face",
		ReviewedReactions: []string{"eyes"},
	}

	t.Run("valid config", func(t *testing.T) {
		require.NoError(t, valid.Validate())
	})

	t.Run("empty name", func(t *testing.T) {
		cfg := valid
		cfg.Name = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("empty channel", func(t *testing.T) {
		cfg := valid
		cfg.Channel = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("no tracked reactions", func(t *testing.T) {
		cfg := valid
		cfg.ReviewedReactions = nil
		assert.Error(t, cfg.Validate())
	})

	t.Run("reaction in both kinds", func(t *testing.T) {
		cfg := valid
		cfg.CommentedReactions = []string{"eyes"}
		assert.Error(t, cfg.Validate())
	})
}

func TestLoadBotConfigFromEnvDefaults(t *testing.T) {
	cfg := LoadBotConfigFromEnv()

	assert.Equal(t, "crbot", cfg.Name)
	assert.NotEmpty(t, cfg.ReviewedReactions)
	assert.NotEmpty(t, cfg.CommentedReactions)
	require.NoError(t, cfg.Validate())
}
