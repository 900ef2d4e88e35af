package config

import "fmt"

// SlackConfig holds chat platform credentials.
type SlackConfig struct {
	// BotToken is the bot user OAuth token (xoxb-...).
	BotToken string
	// AppToken is the app-level token used for the Socket Mode stream (xapp-...).
	AppToken string
}

// LoadSlackConfigFromEnv loads chat platform credentials from environment variables.
func LoadSlackConfigFromEnv() SlackConfig {
	return SlackConfig{
		BotToken: GetEnv("SLACK_BOT_TOKEN", ""),
		AppToken: GetEnv("SLACK_APP_TOKEN", ""),
	}
}

// Validate validates chat platform credentials.
func (c SlackConfig) Validate() error {
	if c.BotToken == "" {
		return fmt.Errorf("SLACK_BOT_TOKEN must not be empty")
	}
	if c.AppToken == "" {
		return fmt.Errorf("SLACK_APP_TOKEN must not be empty")
	}
	return nil
}
