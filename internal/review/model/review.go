// Package model provides the review entity.
package model

import "time"

// Review represents a peer review signal: a tracked reaction attached to a
// message whose stamp matched a stored commit. Matches the reviews table
// schema. The stamp columns hold the reacted-to post's timestamp, not the
// reaction event's; that pair is the correlation key for both insertion and
// removal.
type Review struct {
	ID            int64     `gorm:"primaryKey;column:id;autoIncrement"                               json:"id"`
	CommitHash    string    `gorm:"column:commit_hash;type:varchar(255);not null"                    json:"commit_hash"`
	Datestamp     int64     `gorm:"column:datestamp;not null;index:idx_reviews_stamp,priority:1"     json:"datestamp"`
	Intervalstamp int64     `gorm:"column:intervalstamp;not null;index:idx_reviews_stamp,priority:2" json:"intervalstamp"`
	UserID        int64     `gorm:"column:user_id;not null"                                          json:"user_id"`
	Commented     bool      `gorm:"column:commented;not null"                                        json:"commented"`
	Type          string    `gorm:"column:type;type:varchar(255);not null"                           json:"type"`
	CreatedAt     time.Time `gorm:"column:created_at;not null"                                       json:"-"`
}

// TableName specifies the table name for GORM.
func (Review) TableName() string {
	return "reviews"
}
