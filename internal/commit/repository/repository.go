// Package repository provides data access layer for the commit ledger.
package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/kiwicollection/crbot/internal/commit/model"
	"github.com/kiwicollection/crbot/internal/timestamp"
)

// Repository defines the interface for commit ledger operations.
type Repository interface {
	// Upsert records a commit reference. Idempotent on hash: a duplicate
	// insert is a no-op, not an error.
	Upsert(ctx context.Context, commit *model.Commit) error

	// FindByTimestamp returns the commit whose posting message carries
	// exactly the given stamp.
	FindByTimestamp(ctx context.Context, stamp timestamp.Stamp) (*model.Commit, error)

	// Count returns the number of commit rows.
	Count(ctx context.Context) (int64, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new commit repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// Upsert records a commit reference, ignoring duplicate hashes.
func (r *repository) Upsert(ctx context.Context, commit *model.Commit) error {
	r.logger.Debugw("Upsert called", "hash", commit.Hash, "repository", commit.Repository)

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "hash"}},
			DoNothing: true,
		}).
		Create(commit).Error

	if err != nil {
		r.logger.Errorw("Upsert database error", "hash", commit.Hash, "error", err)
		return err
	}

	r.logger.Infow("Upsert completed", "hash", commit.Hash, "repository", commit.Repository)
	return nil
}

// FindByTimestamp returns the commit posted at exactly the given stamp.
func (r *repository) FindByTimestamp(ctx context.Context, stamp timestamp.Stamp) (*model.Commit, error) {
	r.logger.Debugw("FindByTimestamp called", "stamp", stamp.String())

	var commit model.Commit
	err := r.db.WithContext(ctx).
		Where("datestamp = ? AND intervalstamp = ?", stamp.Coarse, stamp.Fine).
		First(&commit).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Debugw("FindByTimestamp no commit at stamp", "stamp", stamp.String())
			return nil, model.ErrCommitNotFound
		}
		r.logger.Errorw("FindByTimestamp database error", "stamp", stamp.String(), "error", err)
		return nil, err
	}

	return &commit, nil
}

// Count returns the number of commit rows.
func (r *repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Commit{}).Count(&count).Error
	if err != nil {
		r.logger.Errorw("Count database error", "error", err)
		return 0, err
	}
	return count, nil
}
