package ast

// Decl is a single declaration of the form x : N, pairing a variable
// symbol with the expression denoting its type.
type Decl struct {
	Sym Sym
	Typ Exp
}

// Ctx is a typing context: the ordered sequence of declarations a
// judgment is made under. The syntax layer neither reads nor writes it;
// it is declared here for the checker that will sit on top of this
// package.
type Ctx []Decl
