package model

import "errors"

var (
	// ErrUserNotFound indicates that no user row exists for the lookup key.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserExists indicates a uniqueness conflict on insert; the caller
	// should re-read and use the winning row.
	ErrUserExists = errors.New("user already exists")
)
