// Package model provides data transfer objects for the statistics module.
package model

// LeaderboardEntry is one ranked row of the leaderboard.
type LeaderboardEntry struct {
	UserID         int64  `json:"user_id"`
	Name           string `json:"name"`
	CommitCount    int64  `json:"commit_count"`
	ReviewedCount  int64  `json:"reviewed_count"`
	CommentedCount int64  `json:"commented_count"`
	TotalCount     int64  `json:"total_count"`
}

// Range bounds an aggregation to coarse timestamps in [Since, Until).
// The zero value means unbounded.
type Range struct {
	Since   int64
	Until   int64
	Bounded bool
}

// UserCount is a per-user row count.
type UserCount struct {
	UserID int64 `gorm:"column:user_id"`
	Count  int64 `gorm:"column:count"`
}

// ReviewCount is a per-user, per-signal-kind review count.
type ReviewCount struct {
	UserID    int64 `gorm:"column:user_id"`
	Commented bool  `gorm:"column:commented"`
	Count     int64 `gorm:"column:count"`
}
