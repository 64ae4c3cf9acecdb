package core

import (
	"github.com/glossopoeia/matcha/ast"
	"github.com/glossopoeia/matcha/enc"
)

// Core is the canonical textual encoding of expressions. Encoding emits
// the parentheses needed for the text to decode back to the identical
// tree and no others; the ltree and rtree flags track whether the node
// being rendered sits exclusively within the left or the right subtree of
// an application, which is what decides every parenthesis. Decoding is
// the grammar in grammar.go.
type Core struct {
	// The node being rendered sits exclusively within the left subtree
	// of an application.
	ltree bool
	// The node being rendered sits exclusively within the right subtree
	// of an application.
	rtree bool
	// Render bound variables as their De Bruijn indices instead of the
	// symbols they were written with.
	showIndices bool
}

var _ enc.Codec[string] = Core{}

// Create a new instance of the canonical codec.
func New() Core {
	return Core{}
}

// Create a copy of the codec that renders bound variables as De Bruijn
// indices when show is set, and as their original symbols otherwise.
// Index output does not decode back to the same tree; the default mode
// does.
func (c Core) WithIndices(show bool) Core {
	c.showIndices = show
	return c
}

// reset drops the subtree flags for a sub-expression that renders
// independently, such as a binder's type or body.
func (c Core) reset() Core {
	return Core{showIndices: c.showIndices}
}

// Encode an expression to its canonical text.
func (c Core) Encode(exp ast.Exp) string {
	switch t := exp.(type) {
	case ast.Sym:
		return t.String()
	case ast.Idx:
		if c.showIndices {
			return t.String()
		}
		return t.Sym.String()
	case ast.App:
		return c.encodeApp(t)
	case ast.Abs:
		return c.encodeBinder(t)
	case ast.Prd:
		return c.encodeBinder(t)
	case ast.Sum:
		return c.encodeBinder(t)
	case ast.Unv:
		return t.String()
	default:
		panic("Invalid expression variant encountered.")
	}
}

// Decode text to an expression.
func (c Core) Decode(val string) (ast.Exp, error) {
	return parse(val)
}

// encodeApp renders left-associative juxtaposition. An application is
// wrapped exactly when it sits exclusively in a right subtree, where bare
// juxtaposition would re-associate to the left. Each child inherits the
// other flag of this node: the function side continues the left spine
// unless this node was itself wrapped, and the argument side becomes
// right-exclusive on the same condition.
func (c Core) encodeApp(app ast.App) string {
	fn := c
	fn.ltree = !c.rtree
	arg := c
	arg.rtree = !c.rtree
	return c.parens(c.rtree, fn.Encode(app.Fn)+" "+arg.Encode(app.Arg))
}

// encodeBinder renders any of the three binding forms. A binder is
// wrapped exactly when it sits exclusively in a left subtree, where its
// unparenthesized body would swallow the factors that follow. Type and
// body render from reset flags.
func (c Core) encodeBinder(b ast.Binder) string {
	s := b.Prefix() + b.Sym().String() + " : " + c.reset().Encode(b.Typ()) + " . " + c.reset().Encode(b.Body())
	return c.parens(c.ltree, s)
}

// parens wraps an encoded expression when wrap is set.
func (c Core) parens(wrap bool, s string) string {
	if wrap {
		return "(" + s + ")"
	}
	return s
}
