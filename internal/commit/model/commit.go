// Package model provides the commit entity and sentinel errors.
package model

import "time"

// Commit represents a recognized commit link posted to the tracked channel.
// Matches the commits table schema. The hash is the idempotency key:
// re-posting the same commit never creates a second row. The decomposed
// timestamp of the posting message is kept so reactions to that message can
// be correlated back to the commit.
type Commit struct {
	ID            int64     `gorm:"primaryKey;column:id;autoIncrement"                                json:"id"`
	Hash          string    `gorm:"column:hash;type:varchar(255);not null;uniqueIndex:uq_commits_hash" json:"hash"`
	Repository    string    `gorm:"column:repository;type:varchar(255);not null"                      json:"repository"`
	Datestamp     int64     `gorm:"column:datestamp;not null;index:idx_commits_stamp,priority:1"      json:"datestamp"`
	Intervalstamp int64     `gorm:"column:intervalstamp;not null;index:idx_commits_stamp,priority:2"  json:"intervalstamp"`
	UserID        int64     `gorm:"column:user_id;not null"                                           json:"user_id"`
	CreatedAt     time.Time `gorm:"column:created_at;not null"                                        json:"-"`
}

// TableName specifies the table name for GORM.
func (Commit) TableName() string {
	return "commits"
}
