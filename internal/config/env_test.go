package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Run("existing env var", func(t *testing.T) {
		os.Setenv("TEST_KEY", "test_value")
		defer os.Unsetenv("TEST_KEY")

		assert.Equal(t, "test_value", GetEnv("TEST_KEY", "default"))
	})

	t.Run("missing env var", func(t *testing.T) {
		os.Unsetenv("TEST_KEY_MISSING")

		assert.Equal(t, "default", GetEnv("TEST_KEY_MISSING", "default"))
	})

	t.Run("empty env var", func(t *testing.T) {
		os.Setenv("TEST_KEY_EMPTY", "")
		defer os.Unsetenv("TEST_KEY_EMPTY")

		assert.Equal(t, "default", GetEnv("TEST_KEY_EMPTY", "default"))
	})
}

func TestGetEnvInt(t *testing.T) {
	t.Run("valid integer", func(t *testing.T) {
		os.Setenv("TEST_INT", "42")
		defer os.Unsetenv("TEST_INT")

		assert.Equal(t, 42, GetEnvInt("TEST_INT", 7))
	})

	t.Run("invalid integer falls back", func(t *testing.T) {
		os.Setenv("TEST_INT_BAD", "forty-two")
		defer os.Unsetenv("TEST_INT_BAD")

		assert.Equal(t, 7, GetEnvInt("TEST_INT_BAD", 7))
	})

	t.Run("missing falls back", func(t *testing.T) {
		os.Unsetenv("TEST_INT_MISSING")

		assert.Equal(t, 7, GetEnvInt("TEST_INT_MISSING", 7))
	})
}

func TestGetEnvDuration(t *testing.T) {
	t.Run("valid duration", func(t *testing.T) {
		os.Setenv("TEST_DURATION", "15s")
		defer os.Unsetenv("TEST_DURATION")

		assert.Equal(t, 15*time.Second, GetEnvDuration("TEST_DURATION", time.Minute))
	})

	t.Run("invalid duration falls back", func(t *testing.T) {
		os.Setenv("TEST_DURATION_BAD", "soon")
		defer os.Unsetenv("TEST_DURATION_BAD")

		assert.Equal(t, time.Minute, GetEnvDuration("TEST_DURATION_BAD", time.Minute))
	})
}

func TestGetEnvSlice(t *testing.T) {
	t.Run("comma separated with whitespace", func(t *testing.T) {
		os.Setenv("TEST_SLICE", "eyes, memo , heavy_check_mark")
		defer os.Unsetenv("TEST_SLICE")

		assert.Equal(t, []string{"eyes", "memo", "heavy_check_mark"}, GetEnvSlice("TEST_SLICE", nil))
	})

	t.Run("missing falls back", func(t *testing.T) {
		os.Unsetenv("TEST_SLICE_MISSING")

		assert.Equal(t, []string{"eyes"}, GetEnvSlice("TEST_SLICE_MISSING", []string{"eyes"}))
	})

	t.Run("only separators falls back", func(t *testing.T) {
		os.Setenv("TEST_SLICE_EMPTY", " , ,")
		defer os.Unsetenv("TEST_SLICE_EMPTY")

		assert.Equal(t, []string{"eyes"}, GetEnvSlice("TEST_SLICE_EMPTY", []string{"eyes"}))
	})
}
