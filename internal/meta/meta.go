// Package meta persists small named values in the info table. Its single
// production use is the lastrun stamp that drives the first-run welcome
// broadcast.
package meta

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNotFound indicates that no value is stored under the requested name.
var ErrNotFound = errors.New("info value not found")

// LastRunKey names the info row holding the most recent startup time.
const LastRunKey = "lastrun"

// Info is one named value. Matches the info table schema.
type Info struct {
	Name string `gorm:"primaryKey;column:name;type:varchar(255)"`
	Val  string `gorm:"column:val;type:varchar(255);not null"`
}

// TableName specifies the table name for GORM.
func (Info) TableName() string {
	return "info"
}

// Repository defines the interface for info value access.
type Repository interface {
	// Get returns the value stored under name.
	Get(ctx context.Context, name string) (string, error)

	// Set stores a value under name, overwriting any previous one.
	Set(ctx context.Context, name, val string) error
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new info repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

func (r *repository) Get(ctx context.Context, name string) (string, error) {
	var info Info
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&info).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNotFound
		}
		r.logger.Errorw("Get database error", "name", name, "error", err)
		return "", err
	}

	return info.Val, nil
}

func (r *repository) Set(ctx context.Context, name, val string) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"val"}),
		}).
		Create(&Info{Name: name, Val: val}).Error

	if err != nil {
		r.logger.Errorw("Set database error", "name", name, "error", err)
		return err
	}
	return nil
}
