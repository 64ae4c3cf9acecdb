package ast

import "fmt"

// IdxLimitError indicates that an index increment hit the maximum value
// the system can represent.
type IdxLimitError struct {
	// Index value that could not be incremented.
	Val uint64
}

func (e IdxLimitError) Error() string {
	return fmt.Sprintf("max limit %d for indices has been reached", e.Val)
}

// UnvLimitError indicates that a universe increment hit the maximum level
// the system can represent.
type UnvLimitError struct {
	// Universe level that could not be incremented.
	Level uint64
}

func (e UnvLimitError) Error() string {
	return fmt.Sprintf("max limit %d for universe levels has been reached", e.Level)
}
