// Package repository provides data access layer for the user directory.
package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/kiwicollection/crbot/internal/user/model"
)

// Repository defines the interface for user data access operations.
type Repository interface {
	// GetByUID finds a user by platform id.
	GetByUID(ctx context.Context, uid string) (*model.User, error)

	// Create inserts a new user row. Returns model.ErrUserExists on a
	// uniqueness conflict (uid or real_name).
	Create(ctx context.Context, user *model.User) error

	// Count returns the number of user rows.
	Count(ctx context.Context) (int64, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new user repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// GetByUID finds a user by platform id.
func (r *repository) GetByUID(ctx context.Context, uid string) (*model.User, error) {
	r.logger.Debugw("GetByUID called", "uid", uid)

	var user model.User
	err := r.db.WithContext(ctx).
		Where("uid = ?", uid).
		First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Debugw("GetByUID user not found", "uid", uid)
			return nil, model.ErrUserNotFound
		}
		r.logger.Errorw("GetByUID database error", "uid", uid, "error", err)
		return nil, err
	}

	return &user, nil
}

// Create inserts a new user row.
func (r *repository) Create(ctx context.Context, user *model.User) error {
	r.logger.Debugw("Create called", "uid", user.UID, "name", user.Name)

	err := r.db.WithContext(ctx).Create(user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			r.logger.Debugw("Create uniqueness conflict", "uid", user.UID)
			return model.ErrUserExists
		}
		r.logger.Errorw("Create database error", "uid", user.UID, "error", err)
		return err
	}

	r.logger.Infow("Create completed", "uid", user.UID, "id", user.ID)
	return nil
}

// Count returns the number of user rows.
func (r *repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.User{}).Count(&count).Error
	if err != nil {
		r.logger.Errorw("Count database error", "error", err)
		return 0, err
	}
	return count, nil
}
