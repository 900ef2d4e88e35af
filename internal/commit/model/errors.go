package model

import "errors"

// ErrCommitNotFound indicates that no commit matches the lookup key.
var ErrCommitNotFound = errors.New("commit not found")
