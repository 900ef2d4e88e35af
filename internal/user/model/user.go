// Package model provides the user entity and sentinel errors.
package model

import "time"

// User represents a chat platform member known to the ledger.
// Matches the users table schema. Rows are created lazily the first time a
// platform id is seen in a trackable event and are never deleted.
type User struct {
	ID        int64     `gorm:"primaryKey;column:id;autoIncrement"                             json:"id"`
	UID       string    `gorm:"column:uid;type:varchar(255);not null;uniqueIndex:uq_users_uid" json:"uid"`
	Name      string    `gorm:"column:name;type:varchar(255);not null"                         json:"name"`
	RealName  string    `gorm:"column:real_name;type:varchar(255);not null;uniqueIndex:uq_users_real_name" json:"real_name"`
	CreatedAt time.Time `gorm:"column:created_at;not null"                                     json:"-"`
}

// TableName specifies the table name for GORM.
func (User) TableName() string {
	return "users"
}
