package core

import (
	"reflect"
	"testing"

	"github.com/glossopoeia/matcha/ast"
)

// Canonical strings decode to a tree that encodes back to the identical
// string.
func TestDecodeEncode(t *testing.T) {
	data := []string{
		"foo",
		"foo bar",
		"foo (bar moo)",
		"λbar : float . λmoo : char . λfoo : int . foo (bar moo)",
		"λfoo : int . foo (bar moo)",
		"λbar : char . λfoo : int . foo (bar moo)",
		"λbar : Πf : int . f . λmoo : char . λfoo : int . foo (bar moo)",
		"λfoo : Πf : int . f . foo (bar moo)",
		"λbar : Πf : char . f . λfoo : int . foo (bar moo)",
		"λbar : Σf : int . f . λmoo : char . λfoo : int . foo (bar moo)",
		"λfoo : Σf : int . f . foo (bar moo)",
		"λbar : Σf : char . f . λfoo : int . foo (bar moo)",
		"foo λbar : int . bar moo",
		"(λfoo : □ . bar) λmoo : □ . moo",
	}

	testCases := []struct {
		name string
	}{
		{"Ident"},
		{"App"},
		{"AppGrouped"},
		{"AbsChain"},
		{"Abs"},
		{"AbsPair"},
		{"PrdTypeChain"},
		{"PrdType"},
		{"PrdTypePair"},
		{"SumTypeChain"},
		{"SumType"},
		{"SumTypePair"},
		{"TrailingBinder"},
		{"BinderFn"},
	}

	for ind, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			exp, err := New().Decode(data[ind])
			if err != nil {
				t.Fatalf("Expected decoding to succeed, got %v instead", err)
			}
			res := New().Encode(exp)
			if res != data[ind] {
				t.Errorf("Expected %v, got %v instead", data[ind], res)
			}
		})
	}
}

// Encoding places parentheses exactly where re-reading the text would
// otherwise associate differently.
func TestEncodeParens(t *testing.T) {
	a := ast.NewSym("a")
	b := ast.NewSym("b")
	c := ast.NewSym("c")
	x := ast.NewSym("x")
	absX := abs(t, "x", ast.NewUnv(), x)

	data := []ast.Exp{
		ast.NewApp(ast.NewApp(a, b), c),
		ast.NewApp(a, ast.NewApp(b, c)),
		ast.NewApp(ast.NewApp(x, ast.NewApp(a, b)), c),
		ast.NewApp(x, ast.NewApp(ast.NewApp(a, b), c)),
		ast.NewApp(ast.NewApp(a, absX), b),
		ast.NewApp(abs(t, "foo", ast.NewUnv(), ast.NewSym("bar")), abs(t, "moo", ast.NewUnv(), ast.NewSym("moo"))),
		abs(t, "foo", ast.NewSym("int"), ast.NewApp(ast.NewSym("foo"), ast.NewApp(ast.NewSym("bar"), ast.NewSym("moo")))),
		ast.NewApp(a, ast.NewUnv()),
	}

	testCases := []struct {
		name string
		exp  string
	}{
		{"LeftSpine", "a b c"},
		{"RightChild", "a (b c)"},
		{"GroupedInSpine", "x (a b) c"},
		{"GroupedRight", "x ((a b) c)"},
		{"BinderInSpine", "a (λx : □ . x) b"},
		{"BinderFn", "(λfoo : □ . bar) λmoo : □ . moo"},
		{"AbsBody", "λfoo : int . foo (bar moo)"},
		{"UniverseArg", "a □"},
	}

	for ind, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := New().Encode(data[ind])
			if res != tc.exp {
				t.Errorf("Expected %v, got %v instead", tc.exp, res)
			}
		})
	}
}

// Trees built through the constructors survive an encode and decode
// unchanged.
func TestEncodeDecode(t *testing.T) {
	a := ast.NewSym("a")
	b := ast.NewSym("b")
	c := ast.NewSym("c")
	x := ast.NewSym("x")

	data := []ast.Exp{
		ast.NewApp(ast.NewApp(a, b), c),
		ast.NewApp(a, ast.NewApp(b, c)),
		ast.NewApp(x, ast.NewApp(ast.NewApp(a, b), c)),
		ast.NewApp(ast.NewApp(a, abs(t, "x", ast.NewUnv(), x)), b),
		abs(t, "foo", prd(t, "f", ast.NewSym("int"), ast.NewSym("f")), ast.NewApp(ast.NewSym("foo"), ast.NewApp(a, b))),
	}

	testCases := []struct {
		name string
	}{
		{"LeftSpine"},
		{"RightChild"},
		{"GroupedRight"},
		{"BinderInSpine"},
		{"PrdType"},
	}

	for ind, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := New().Decode(New().Encode(data[ind]))
			if err != nil {
				t.Fatalf("Expected decoding to succeed, got %v instead", err)
			}
			if !reflect.DeepEqual(res, data[ind]) {
				t.Errorf("Expected %v, got %v instead", data[ind], res)
			}
		})
	}
}

func TestEncodeIndices(t *testing.T) {
	data := []string{
		"λfoo : int . foo (bar moo)",
		"λf : t . λg : u . f",
		"λx : t . (λx : u . x) x",
		"λbar : int . bar moo",
	}

	testCases := []struct {
		name string
		exp  string
	}{
		{"Single", "λfoo : int . 0 (bar moo)"},
		{"Nested", "λf : t . λg : u . 1"},
		{"Shadowed", "λx : t . (λx : u . 0) 0"},
		{"FreeKept", "λbar : int . 0 moo"},
	}

	for ind, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			exp, err := New().Decode(data[ind])
			if err != nil {
				t.Fatalf("Expected decoding to succeed, got %v instead", err)
			}
			res := New().WithIndices(true).Encode(exp)
			if res != tc.exp {
				t.Errorf("Expected %v, got %v instead", tc.exp, res)
			}
			plain := New().WithIndices(false).Encode(exp)
			if plain != data[ind] {
				t.Errorf("Expected %v, got %v instead", data[ind], plain)
			}
		})
	}
}

// The textual form does not carry universe levels: every level prints as
// the box and reads back as the lowest universe.
func TestUniverseLevelLossy(t *testing.T) {
	res := New().Encode(ast.Unv{Level: 3944})
	if res != "□" {
		t.Errorf("Expected □, got %v instead", res)
	}
	exp, err := New().Decode(res)
	if err != nil {
		t.Fatalf("Expected decoding to succeed, got %v instead", err)
	}
	if exp != ast.NewUnv() {
		t.Errorf("Expected %v, got %v instead", ast.NewUnv(), exp)
	}
}
