package ast

import (
	"fmt"
	"math"
	"strconv"
)

// Var is the atomic constituent of an expression: either a still-free
// symbol or a De Bruijn index bound by an enclosing binder. The two forms
// are a closed set. A variable enters an expression as a Sym and is
// replaced by an Idx exactly once, by the constructor of the binder that
// captures it.
type Var interface {
	Exp
	fmt.Stringer
	isVar()
}

// Sym is the name given to a variable. Symbols exist because free
// variables in an expression need a way to be referenced. Two symbols are
// the same exactly when their text is the same; nothing enforces
// uniqueness, so shadowing is legal and expected.
type Sym struct {
	// Raw text of the name contained in this symbol.
	Val string
}

// Create a new symbol with the given name.
func NewSym(val string) Sym {
	return Sym{Val: val}
}

func (s Sym) String() string {
	return s.Val
}

func (Sym) isExp() {}
func (Sym) isVar() {}

// Idx is a De Bruijn index denoting a variable bound within an
// expression. The value counts the binders between the bound occurrence
// and the binder that introduced it, which lets expressions be compared
// without α-renaming. Indices up to math.MaxUint64 are supported; that
// bound caps the binder depth the system can represent. The symbol the
// variable was originally written with is kept for display and has no
// semantic significance.
type Idx struct {
	// Numeric value of this index.
	Val uint64
	// Symbol of the bound variable that this index refers to.
	Sym Sym
}

// Create a new index with value 0 for the given symbol.
func NewIdx(sym Sym) Idx {
	return Idx{Val: 0, Sym: sym}
}

// Create a copy of this index one binder further away from the binder
// that captures it. Fails with an IdxLimitError when the value is already
// at the maximum; it never wraps.
func (i Idx) Inc() (Idx, error) {
	if i.Val == math.MaxUint64 {
		return Idx{}, IdxLimitError{Val: i.Val}
	}
	return Idx{Val: i.Val + 1, Sym: i.Sym}, nil
}

// Create a copy of this index one binder closer to the binder that
// captures it. Reserved for the substitution machinery of a future
// checker; panics when the value is already 0.
func (i Idx) Dec() Idx {
	if i.Val == 0 {
		panic("Cannot decrement an index already at 0.")
	}
	return Idx{Val: i.Val - 1, Sym: i.Sym}
}

func (i Idx) String() string {
	return strconv.FormatUint(i.Val, 10)
}

func (Idx) isExp() {}
func (Idx) isVar() {}

var (
	_ Var = Sym{}
	_ Var = Idx{}
)
