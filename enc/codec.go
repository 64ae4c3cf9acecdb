// Package enc defines the encoding surface of the syntax tree: the
// interface every encoding of expressions implements, and the closed set
// of errors decoding can report.
package enc

import "github.com/glossopoeia/matcha/ast"

// Codec maps expressions to and from an encoding of type T. Encoding is
// total; decoding can fail, because not every value of T denotes an
// expression.
type Codec[T any] interface {
	// Encode an expression to a value of the encoding.
	Encode(exp ast.Exp) T
	// Decode a value of the encoding to an expression.
	Decode(val T) (ast.Exp, error)
}
