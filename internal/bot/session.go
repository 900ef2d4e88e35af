package bot

import (
	"sync"
	"time"
)

// Session holds the process-wide mutable bot state: the bot's own resolved
// identity (used to suppress self-authored events) and the current build
// watcher assignment.
type Session struct {
	mu           sync.RWMutex
	botUserID    string
	buildWatcher string
	startedAt    time.Time
}

// NewSession creates a session for the given resolved bot identity.
func NewSession(botUserID string) *Session {
	return &Session{botUserID: botUserID, startedAt: time.Now()}
}

// BotUserID returns the bot's own platform user id.
func (s *Session) BotUserID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.botUserID
}

// BuildWatcher returns the platform user id of the current build watcher,
// or empty when none has been assigned.
func (s *Session) BuildWatcher() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.buildWatcher
}

// SetBuildWatcher reassigns the build watcher role.
func (s *Session) SetBuildWatcher(uid string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buildWatcher = uid
}

// StartedAt returns the session start time.
func (s *Session) StartedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.startedAt
}
