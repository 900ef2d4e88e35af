// Package slackadapter implements the chat port over the Slack Socket Mode
// stream. It is a thin boundary wrapper: events are translated into the
// bot's own event types and all policy lives behind the port.
package slackadapter

import (
	"context"
	"sync"

	"github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"
	"github.com/slack-go/slack/socketmode"
	"go.uber.org/zap"

	"github.com/kiwicollection/crbot/internal/bot"
	"github.com/kiwicollection/crbot/internal/config"
)

// Adapter connects the bot to a Slack workspace.
type Adapter struct {
	api    *slack.Client
	sock   *socketmode.Client
	logger *zap.SugaredLogger

	mu     sync.RWMutex
	roster map[string]*slack.User
}

// New creates a new Slack adapter instance.
func New(cfg config.SlackConfig, logger *zap.SugaredLogger) *Adapter {
	api := slack.New(cfg.BotToken, slack.OptionAppLevelToken(cfg.AppToken))
	return &Adapter{
		api:    api,
		sock:   socketmode.New(api),
		logger: logger,
		roster: map[string]*slack.User{},
	}
}

// BotUserID resolves the bot's own platform identity.
func (a *Adapter) BotUserID(ctx context.Context) (string, error) {
	resp, err := a.api.AuthTestContext(ctx)
	if err != nil {
		return "", err
	}
	return resp.UserID, nil
}

// Run pumps the Socket Mode event stream into the handler until the context
// is cancelled or the connection fails permanently.
func (a *Adapter) Run(ctx context.Context, h *bot.Handler) error {
	go a.dispatchLoop(ctx, h)
	return a.sock.RunContext(ctx)
}

func (a *Adapter) dispatchLoop(ctx context.Context, h *bot.Handler) {
	for {
		select {
		case <-ctx.Done():
			return
		case evt, ok := <-a.sock.Events:
			if !ok {
				return
			}
			switch evt.Type {
			case socketmode.EventTypeEventsAPI:
				apiEvent, ok := evt.Data.(slackevents.EventsAPIEvent)
				if !ok {
					continue
				}
				if evt.Request != nil {
					a.sock.Ack(*evt.Request)
				}
				a.route(apiEvent, h)
			case socketmode.EventTypeConnectionError:
				a.logger.Warnw("socket mode connection error", "data", evt.Data)
			}
		}
	}
}

func (a *Adapter) route(apiEvent slackevents.EventsAPIEvent, h *bot.Handler) {
	switch ev := apiEvent.InnerEvent.Data.(type) {
	case *slackevents.MessageEvent:
		// Edits, joins and other subtypes are not plain chat messages.
		if ev.SubType != "" {
			return
		}
		h.OnMessage(bot.MessageEvent{
			UserID:    ev.User,
			Channel:   ev.Channel,
			Text:      ev.Text,
			Timestamp: ev.TimeStamp,
		})
	case *slackevents.ReactionAddedEvent:
		h.OnReactionAdded(bot.ReactionEvent{
			UserID:        ev.User,
			Reaction:      ev.Reaction,
			ItemChannel:   ev.Item.Channel,
			ItemTimestamp: ev.Item.Timestamp,
		})
	case *slackevents.ReactionRemovedEvent:
		h.OnReactionRemoved(bot.ReactionEvent{
			UserID:        ev.User,
			Reaction:      ev.Reaction,
			ItemChannel:   ev.Item.Channel,
			ItemTimestamp: ev.Item.Timestamp,
		})
	}
}

// PostToChannel sends a plain text message to a channel.
func (a *Adapter) PostToChannel(ctx context.Context, channel, text string) error {
	_, _, err := a.api.PostMessageContext(ctx, channel, slack.MsgOptionText(text, false))
	return err
}

// SendDirectMessage sends a plain text message to a user.
func (a *Adapter) SendDirectMessage(ctx context.Context, userID, text string) error {
	ch, _, _, err := a.api.OpenConversationContext(ctx, &slack.OpenConversationParameters{
		Users: []string{userID},
	})
	if err != nil {
		return err
	}
	_, _, err = a.api.PostMessageContext(ctx, ch.ID, slack.MsgOptionText(text, false))
	return err
}

// AddReaction attaches a reaction to the message at the given timestamp.
func (a *Adapter) AddReaction(ctx context.Context, channel, messageTimestamp, reaction string) error {
	return a.api.AddReactionContext(ctx, reaction, slack.NewRefToMessage(channel, messageTimestamp))
}

// UserInfo returns roster attributes for a platform user id. Lookups are
// cached for the lifetime of the process; the roster is effectively static
// between restarts.
func (a *Adapter) UserInfo(ctx context.Context, uid string) (string, string, error) {
	a.mu.RLock()
	cached, ok := a.roster[uid]
	a.mu.RUnlock()
	if ok {
		return cached.Name, cached.RealName, nil
	}

	u, err := a.api.GetUserInfoContext(ctx, uid)
	if err != nil {
		return "", "", err
	}

	a.mu.Lock()
	a.roster[uid] = u
	a.mu.Unlock()

	return u.Name, u.RealName, nil
}
