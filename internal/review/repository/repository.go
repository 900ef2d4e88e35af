// Package repository provides data access layer for the review ledger.
package repository

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/kiwicollection/crbot/internal/review/model"
	"github.com/kiwicollection/crbot/internal/timestamp"
)

// Repository defines the interface for review ledger operations.
type Repository interface {
	// Insert records a review signal. Multiple rows per stamp are allowed:
	// distinct reviewers, or the same reviewer with different reaction
	// kinds, may react to the same post.
	Insert(ctx context.Context, review *model.Review) error

	// DeleteByTimestampAndType removes the review rows matching the
	// reacted-to post's stamp, the reaction type, and the removing user.
	// Returns the number of rows deleted. Unconditional on whether a
	// matching commit still exists.
	DeleteByTimestampAndType(ctx context.Context, stamp timestamp.Stamp, reactionType string, userID int64) (int64, error)

	// Count returns the number of review rows.
	Count(ctx context.Context) (int64, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new review repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// Insert records a review signal.
func (r *repository) Insert(ctx context.Context, review *model.Review) error {
	r.logger.Debugw("Insert called",
		"commit_hash", review.CommitHash,
		"user_id", review.UserID,
		"type", review.Type,
		"commented", review.Commented,
	)

	err := r.db.WithContext(ctx).Create(review).Error
	if err != nil {
		r.logger.Errorw("Insert database error", "commit_hash", review.CommitHash, "error", err)
		return err
	}

	r.logger.Infow("Insert completed", "commit_hash", review.CommitHash, "user_id", review.UserID)
	return nil
}

// DeleteByTimestampAndType removes matching review rows.
func (r *repository) DeleteByTimestampAndType(
	ctx context.Context,
	stamp timestamp.Stamp,
	reactionType string,
	userID int64,
) (int64, error) {
	r.logger.Debugw("DeleteByTimestampAndType called",
		"stamp", stamp.String(), "type", reactionType, "user_id", userID)

	result := r.db.WithContext(ctx).
		Where("datestamp = ? AND intervalstamp = ? AND type = ? AND user_id = ?",
			stamp.Coarse, stamp.Fine, reactionType, userID).
		Delete(&model.Review{})

	if result.Error != nil {
		r.logger.Errorw("DeleteByTimestampAndType database error",
			"stamp", stamp.String(), "error", result.Error)
		return 0, result.Error
	}

	r.logger.Infow("DeleteByTimestampAndType completed",
		"stamp", stamp.String(), "type", reactionType, "deleted", result.RowsAffected)
	return result.RowsAffected, nil
}

// Count returns the number of review rows.
func (r *repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Review{}).Count(&count).Error
	if err != nil {
		r.logger.Errorw("Count database error", "error", err)
		return 0, err
	}
	return count, nil
}
