package ast

// Sum is a Σ-type, the dependent coproduct: the type of pairs whose
// second component's type may mention the first. Construction mirrors
// Abs.
type Sum struct {
	sym  Sym
	typ  Exp
	body Exp
}

// Create a new Σ-type binding sym at type typ over body, indexing free
// occurrences of sym in the body. Fails when the binder depth exceeds the
// representable index range.
func NewSum(sym Sym, typ, body Exp) (Sum, error) {
	indexed, err := index(body, sym, NewIdx(sym))
	if err != nil {
		return Sum{}, err
	}
	return Sum{sym: sym, typ: typ, body: indexed}, nil
}

func (s Sum) Prefix() string {
	return "Σ"
}

func (s Sum) Sym() Sym {
	return s.sym
}

func (s Sum) Typ() Exp {
	return s.typ
}

func (s Sum) Body() Exp {
	return s.body
}

func (Sum) isExp() {}
