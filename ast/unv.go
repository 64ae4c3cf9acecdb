package ast

import "math"

// Unv is a universe, aka sort: a space that types live in. Universes are
// stratified to keep the theory predicative: the type of a universe is
// the universe one level up, so no universe contains itself. Levels up to
// math.MaxUint64 are supported; going past that fails rather than wraps.
type Unv struct {
	// Level assigned to this universe.
	Level uint64
}

// Create a new universe at the lowest level. The zero value is
// equivalent.
func NewUnv() Unv {
	return Unv{}
}

// Create a new universe one level above this one. Fails with an
// UnvLimitError when the level is already at the maximum; it never wraps.
func (u Unv) Inc() (Unv, error) {
	if u.Level == math.MaxUint64 {
		return Unv{}, UnvLimitError{Level: u.Level}
	}
	return Unv{Level: u.Level + 1}, nil
}

// True if this universe sits strictly below the other.
func (u Unv) Less(o Unv) bool {
	return u.Level < o.Level
}

// Return whichever of the two universes has the higher level. Equal
// levels yield that same level.
func (u Unv) Max(o Unv) Unv {
	if u.Less(o) {
		return o
	}
	return u
}

// Universes render as the box glyph regardless of level; the level is not
// observable in the textual form.
func (u Unv) String() string {
	return "□"
}

func (Unv) isExp() {}
