package extendedstorage

import "errors"

// CollisionOption governs create-operation behavior when the target name
// already exists.
type CollisionOption int

const (
	// FailIfExists surfaces [ErrExists] when the target is already taken.
	FailIfExists CollisionOption = iota

	// OpenIfExists returns the existing entry's snapshot without modifying it.
	OpenIfExists
)

// ErrExists is returned by create operations under [FailIfExists] when the
// target name is already taken. Callers match it with errors.Is.
var ErrExists = errors.New("item already exists")

func (o CollisionOption) String() string {
	switch o {
	case FailIfExists:
		return "failIfExists"
	case OpenIfExists:
		return "openIfExists"
	default:
		return "unknown"
	}
}
