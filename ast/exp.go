// Package ast defines the abstract syntax tree of the calculus: the
// closed expression sum and its variants, the stratified universes, and
// the conversion of free names into De Bruijn indices that happens when a
// binder is constructed.
package ast

// Exp is an expression, the entity the whole system revolves around. It
// is a closed sum: a variable (Sym or Idx), an application, one of the
// three binding forms, or a universe.
type Exp interface {
	isExp()
}

// Binder associates a variable with an expression its symbol may occur
// in. The three binding forms (λ-abstraction, Π-type, Σ-type) differ only
// in their prefix; everything that walks or prints them goes through this
// interface.
type Binder interface {
	Exp
	// Return the glyph this binder form is prefixed with.
	Prefix() string
	// Return the symbol the binder introduces.
	Sym() Sym
	// Return the declared type of the introduced symbol.
	Typ() Exp
	// Return the body the binder scopes over.
	Body() Exp
}

var (
	_ Binder = Abs{}
	_ Binder = Prd{}
	_ Binder = Sum{}
)

// index replaces every free occurrence of sym within e by the bound index
// idx, producing a new expression. Crossing a binder on the way down
// increments the index, so an index always counts the binders between its
// occurrence and the binder that captures it. A nested binder reusing sym
// shadows it: the descent stops there, because that binder's own
// construction already indexed its body. The transform is all or nothing;
// when an increment overflows, the error is returned and no partially
// indexed tree escapes.
func index(e Exp, sym Sym, idx Idx) (Exp, error) {
	switch t := e.(type) {
	case Sym:
		if t == sym {
			return idx, nil
		}
		return t, nil
	case Idx:
		// Already bound by an inner binder.
		return t, nil
	case App:
		fn, err := index(t.Fn, sym, idx)
		if err != nil {
			return nil, err
		}
		arg, err := index(t.Arg, sym, idx)
		if err != nil {
			return nil, err
		}
		return App{Fn: fn, Arg: arg}, nil
	case Abs:
		body, err := indexBody(t.body, t.sym, sym, idx)
		if err != nil {
			return nil, err
		}
		return Abs{sym: t.sym, typ: t.typ, body: body}, nil
	case Prd:
		body, err := indexBody(t.body, t.sym, sym, idx)
		if err != nil {
			return nil, err
		}
		return Prd{sym: t.sym, typ: t.typ, body: body}, nil
	case Sum:
		body, err := indexBody(t.body, t.sym, sym, idx)
		if err != nil {
			return nil, err
		}
		return Sum{sym: t.sym, typ: t.typ, body: body}, nil
	case Unv:
		return t, nil
	default:
		panic("Invalid expression variant encountered.")
	}
}

// indexBody descends into the body of a crossed binder, unless that
// binder's own symbol shadows the one being indexed. Type annotations are
// not descended into: only the body is in scope of the symbol.
func indexBody(body Exp, bound, sym Sym, idx Idx) (Exp, error) {
	if bound == sym {
		return body, nil
	}
	next, err := idx.Inc()
	if err != nil {
		return nil, err
	}
	return index(body, sym, next)
}
