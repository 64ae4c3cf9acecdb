package ast

// Abs is a λ-abstraction, the anonymous function form mapping one
// expression to another. The fields are unexported so that an abstraction
// can only come out of NewAbs with its body already indexed.
type Abs struct {
	sym  Sym
	typ  Exp
	body Exp
}

// Create a new λ-abstraction binding sym at type typ over body. Free
// occurrences of sym in the body become bound indices as part of
// construction; this is one of the three places a variable changes from
// free to bound. Fails when the binder depth exceeds the representable
// index range.
func NewAbs(sym Sym, typ, body Exp) (Abs, error) {
	indexed, err := index(body, sym, NewIdx(sym))
	if err != nil {
		return Abs{}, err
	}
	return Abs{sym: sym, typ: typ, body: indexed}, nil
}

// Return the glyph a λ-abstraction is prefixed with.
func (a Abs) Prefix() string {
	return "λ"
}

// Return the symbol the abstraction introduces.
func (a Abs) Sym() Sym {
	return a.sym
}

// Return the declared type of the introduced symbol.
func (a Abs) Typ() Exp {
	return a.typ
}

// Return the body the abstraction scopes over.
func (a Abs) Body() Exp {
	return a.body
}

func (Abs) isExp() {}
