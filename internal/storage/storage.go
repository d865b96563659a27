// Package storage holds the cross-cutting storage contract shared by the
// domain services and the postgres implementation.
package storage

import "errors"

// ErrUnavailable is returned by repositories when the underlying store
// cannot be reached. Read paths mask it as an empty result; write paths
// surface it to the caller.
var ErrUnavailable = errors.New("storage unavailable")
