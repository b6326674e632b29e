package repositories

import "errors"

// ErrNotFound is returned (wrapped) when a lookup by id misses.
var ErrNotFound = errors.New("not found")
