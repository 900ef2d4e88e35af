// Package service provides the user directory: lazy, race-safe resolution of
// platform user ids to durable local user rows.
package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/kiwicollection/crbot/internal/user/model"
	"github.com/kiwicollection/crbot/internal/user/repository"
)

// Roster serves profile attributes from the chat platform's cached
// membership list.
type Roster interface {
	// UserInfo returns the display name and full name for a platform user id.
	UserInfo(ctx context.Context, uid string) (name, realName string, err error)
}

// Directory defines the interface for user resolution.
type Directory interface {
	// ResolveOrCreate returns the local user row for a platform id,
	// creating it on first sight.
	ResolveOrCreate(ctx context.Context, uid string) (*model.User, error)
}

type directory struct {
	repo   repository.Repository
	roster Roster
	logger *zap.SugaredLogger
}

// New creates a new user directory instance.
func New(repo repository.Repository, roster Roster, logger *zap.SugaredLogger) Directory {
	return &directory{repo: repo, roster: roster, logger: logger}
}

// ResolveOrCreate returns the local user row for a platform id, creating it
// on first sight. Two events referencing the same new user can race here;
// the store's unique constraint on uid is the enforcement point, and the
// losing insert re-reads the winner's row.
func (d *directory) ResolveOrCreate(ctx context.Context, uid string) (*model.User, error) {
	d.logger.Debugw("ResolveOrCreate called", "uid", uid)

	if uid == "" {
		return nil, model.ErrUserNotFound
	}

	user, err := d.repo.GetByUID(ctx, uid)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, model.ErrUserNotFound) {
		return nil, err
	}

	name, realName, err := d.roster.UserInfo(ctx, uid)
	if err != nil {
		d.logger.Errorw("ResolveOrCreate roster lookup failed", "uid", uid, "error", err)
		return nil, err
	}

	newUser := &model.User{UID: uid, Name: name, RealName: realName}
	err = d.repo.Create(ctx, newUser)
	if err == nil {
		d.logger.Infow("ResolveOrCreate created user", "uid", uid, "id", newUser.ID)
		return newUser, nil
	}
	if !errors.Is(err, model.ErrUserExists) {
		return nil, err
	}

	// Lost the race, or a distinct user collided on real_name. Re-read by
	// uid; if that still misses, the conflict was on real_name and the
	// event cannot be attributed.
	user, err = d.repo.GetByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			d.logger.Warnw("ResolveOrCreate full name collision with a different user",
				"uid", uid, "real_name", realName)
			return nil, model.ErrUserExists
		}
		return nil, err
	}

	return user, nil
}
