package ast

// Prd is a Π-type, the dependent product: the type of functions whose
// result type may mention the argument. Construction mirrors Abs.
type Prd struct {
	sym  Sym
	typ  Exp
	body Exp
}

// Create a new Π-type binding sym at type typ over body, indexing free
// occurrences of sym in the body. Fails when the binder depth exceeds the
// representable index range.
func NewPrd(sym Sym, typ, body Exp) (Prd, error) {
	indexed, err := index(body, sym, NewIdx(sym))
	if err != nil {
		return Prd{}, err
	}
	return Prd{sym: sym, typ: typ, body: indexed}, nil
}

func (p Prd) Prefix() string {
	return "Π"
}

func (p Prd) Sym() Sym {
	return p.sym
}

func (p Prd) Typ() Exp {
	return p.typ
}

func (p Prd) Body() Exp {
	return p.body
}

func (Prd) isExp() {}
