// Package service provides business logic layer for the statistics module:
// the leaderboard join of the commit and review ledgers.
package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kiwicollection/crbot/internal/stats/model"
	"github.com/kiwicollection/crbot/internal/stats/repository"
)

// ScopeOverall is the unbounded leaderboard scope.
const ScopeOverall = "overall"

// monthIndex maps month names to their fixed 0-indexed position.
var monthIndex = map[string]int{
	"jan": 0, "feb": 1, "mar": 2, "apr": 3, "may": 4, "jun": 5,
	"jul": 6, "aug": 7, "sep": 8, "oct": 9, "nov": 10, "dec": 11,
}

// Service defines the interface for statistics business logic operations.
type Service interface {
	// Leaderboard joins commit and review counts per user, ranked
	// descending by total. Scope is "overall" (or empty) for all time, or
	// a month name restricting both joins to that calendar month of the
	// current year.
	Leaderboard(ctx context.Context, scope string) ([]model.LeaderboardEntry, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
	now    func() time.Time
}

// New creates a new statistics service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger, now: time.Now}
}

// NewWithClock creates a statistics service with an injected clock.
func NewWithClock(repo repository.Repository, logger *zap.SugaredLogger, now func() time.Time) Service {
	return &service{repo: repo, logger: logger, now: now}
}

// Leaderboard joins commit and review counts per user.
func (s *service) Leaderboard(ctx context.Context, scope string) ([]model.LeaderboardEntry, error) {
	s.logger.Debugw("Leaderboard called", "scope", scope)

	rng, err := s.resolveScope(scope)
	if err != nil {
		s.logger.Debugw("Leaderboard unknown scope", "scope", scope)
		return nil, err
	}

	commitCounts, err := s.repo.CommitCountsByUser(ctx, rng)
	if err != nil {
		s.logger.Errorw("Leaderboard commit counts failed", "error", err)
		return nil, err
	}

	reviewCounts, err := s.repo.ReviewCountsByUser(ctx, rng)
	if err != nil {
		s.logger.Errorw("Leaderboard review counts failed", "error", err)
		return nil, err
	}

	// Merge by user id, defaulting missing counts to zero. Insertion order
	// is preserved so ties rank stably.
	index := map[int64]int{}
	var entries []model.LeaderboardEntry

	entryFor := func(userID int64) *model.LeaderboardEntry {
		if i, ok := index[userID]; ok {
			return &entries[i]
		}
		index[userID] = len(entries)
		entries = append(entries, model.LeaderboardEntry{UserID: userID})
		return &entries[len(entries)-1]
	}

	for _, c := range commitCounts {
		entryFor(c.UserID).CommitCount = c.Count
	}
	for _, rc := range reviewCounts {
		e := entryFor(rc.UserID)
		if rc.Commented {
			e.CommentedCount = rc.Count
		} else {
			e.ReviewedCount = rc.Count
		}
	}

	ids := make([]int64, 0, len(entries))
	for i := range entries {
		e := &entries[i]
		e.TotalCount = e.CommitCount + e.ReviewedCount + e.CommentedCount
		ids = append(ids, e.UserID)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].TotalCount > entries[j].TotalCount
	})

	names, err := s.repo.RealNamesByID(ctx, ids)
	if err != nil {
		s.logger.Errorw("Leaderboard name lookup failed", "error", err)
		return nil, err
	}
	for i := range entries {
		entries[i].Name = names[entries[i].UserID]
	}

	s.logger.Infow("Leaderboard completed", "scope", scope, "entries", len(entries))
	return entries, nil
}

// resolveScope maps a scope string to an aggregation range.
func (s *service) resolveScope(scope string) (model.Range, error) {
	scope = strings.ToLower(strings.TrimSpace(scope))
	if scope == "" || scope == ScopeOverall {
		return model.Range{}, nil
	}

	key := scope
	if len(key) > 3 {
		key = key[:3]
	}
	idx, ok := monthIndex[key]
	if !ok {
		return model.Range{}, model.ErrUnknownScope
	}

	year := s.now().Year()
	start := time.Date(year, time.Month(idx+1), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	return model.Range{Since: start.Unix(), Until: end.Unix(), Bounded: true}, nil
}
