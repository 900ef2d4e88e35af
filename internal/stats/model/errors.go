package model

import "errors"

// ErrUnknownScope indicates a leaderboard scope that is neither "overall"
// nor a recognized month name.
var ErrUnknownScope = errors.New("unknown leaderboard scope")
