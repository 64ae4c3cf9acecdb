package enc

import (
	"fmt"
	"strings"
)

// DecodeError is the closed set of errors a codec reports when a value
// does not decode to an expression: lexical failures, grammar mismatches,
// and system limits hit while building binders. Match the concrete
// variants with errors.As. Locations are byte offsets into the decoded
// value.
type DecodeError interface {
	error
	decodeError()
}

var (
	_ DecodeError = InvalidTokenError{}
	_ DecodeError = EndOfStreamError{}
	_ DecodeError = UnexpectedTokenError{}
	_ DecodeError = SystemError{}
)

// InvalidTokenError indicates input the lexer has no token for.
type InvalidTokenError struct {
	// Byte offset of the offending input.
	Loc int
}

func (e InvalidTokenError) Error() string {
	return fmt.Sprintf("invalid token, at location %d", e.Loc)
}

func (InvalidTokenError) decodeError() {}

// EndOfStreamError indicates that the grammar needed more tokens but the
// stream ended.
type EndOfStreamError struct {
	// Byte offset of the end of the stream.
	Loc int
	// Display names of the tokens that would have been accepted.
	Expected []string
}

func (e EndOfStreamError) Error() string {
	return fmt.Sprintf("unexpected end of stream, at location: %d, expected: %s",
		e.Loc, strings.Join(e.Expected, " | "))
}

func (EndOfStreamError) decodeError() {}

// UnexpectedTokenError indicates a well-formed token in a position the
// grammar cannot accept it.
type UnexpectedTokenError struct {
	// Display text of the token that was found.
	Token string
	// Byte offset of the start of the token.
	Start int
	// Byte offset just past the end of the token.
	End int
	// Display names of the tokens that would have been accepted; empty
	// when the expression was already complete and nothing more could
	// follow.
	Expected []string
}

func (e UnexpectedTokenError) Error() string {
	expected := "none"
	if len(e.Expected) > 0 {
		expected = strings.Join(e.Expected, " | ")
	}
	return fmt.Sprintf("unexpected token: %s, at location: %d..%d, expected: %s",
		e.Token, e.Start, e.End, expected)
}

func (UnexpectedTokenError) decodeError() {}

// SystemError carries a system limit hit while decoding, such as an index
// overflow during binder construction. The underlying error is reachable
// through Unwrap.
type SystemError struct {
	// Underlying limit error, from the ast package.
	Err error
}

func (e SystemError) Error() string {
	return e.Err.Error()
}

func (e SystemError) Unwrap() error {
	return e.Err
}

func (SystemError) decodeError() {}
