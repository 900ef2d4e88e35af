// Package repository provides data access layer for the statistics module.
package repository

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/kiwicollection/crbot/internal/stats/model"
)

// Repository defines the interface for statistics data access operations.
type Repository interface {
	// CommitCountsByUser returns commit counts grouped by authoring user.
	CommitCountsByUser(ctx context.Context, rng model.Range) ([]model.UserCount, error)

	// ReviewCountsByUser returns review counts grouped by reviewer and
	// signal kind.
	ReviewCountsByUser(ctx context.Context, rng model.Range) ([]model.ReviewCount, error)

	// RealNamesByID returns the full names for the given local user ids.
	RealNamesByID(ctx context.Context, ids []int64) (map[int64]string, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new statistics repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// CommitCountsByUser returns commit counts grouped by authoring user.
func (r *repository) CommitCountsByUser(ctx context.Context, rng model.Range) ([]model.UserCount, error) {
	r.logger.Debugw("CommitCountsByUser called", "bounded", rng.Bounded)

	query := r.db.WithContext(ctx).
		Table("commits").
		Select("user_id, COUNT(*) as count").
		Group("user_id").
		Order("user_id ASC")

	if rng.Bounded {
		query = query.Where("datestamp >= ? AND datestamp < ?", rng.Since, rng.Until)
	}

	var counts []model.UserCount
	if err := query.Scan(&counts).Error; err != nil {
		r.logger.Errorw("CommitCountsByUser database error", "error", err)
		return nil, err
	}

	r.logger.Debugw("CommitCountsByUser completed", "rows", len(counts))
	return counts, nil
}

// ReviewCountsByUser returns review counts grouped by reviewer and signal kind.
func (r *repository) ReviewCountsByUser(ctx context.Context, rng model.Range) ([]model.ReviewCount, error) {
	r.logger.Debugw("ReviewCountsByUser called", "bounded", rng.Bounded)

	query := r.db.WithContext(ctx).
		Table("reviews").
		Select("user_id, commented, COUNT(*) as count").
		Group("user_id, commented").
		Order("user_id ASC")

	if rng.Bounded {
		query = query.Where("datestamp >= ? AND datestamp < ?", rng.Since, rng.Until)
	}

	var counts []model.ReviewCount
	if err := query.Scan(&counts).Error; err != nil {
		r.logger.Errorw("ReviewCountsByUser database error", "error", err)
		return nil, err
	}

	r.logger.Debugw("ReviewCountsByUser completed", "rows", len(counts))
	return counts, nil
}

// RealNamesByID returns the full names for the given local user ids.
func (r *repository) RealNamesByID(ctx context.Context, ids []int64) (map[int64]string, error) {
	names := make(map[int64]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	var rows []struct {
		ID       int64  `gorm:"column:id"`
		RealName string `gorm:"column:real_name"`
	}

	err := r.db.WithContext(ctx).
		Table("users").
		Select("id, real_name").
		Where("id IN ?", ids).
		Scan(&rows).Error

	if err != nil {
		r.logger.Errorw("RealNamesByID database error", "error", err)
		return nil, err
	}

	for _, row := range rows {
		names[row.ID] = row.RealName
	}
	return names, nil
}
