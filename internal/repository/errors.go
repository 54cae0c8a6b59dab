package repository

import "errors"

// ErrFeedUnavailable marks a feed registry backend failure so handlers can
// distinguish it from bad input.
var ErrFeedUnavailable = errors.New("feed registry unavailable")
