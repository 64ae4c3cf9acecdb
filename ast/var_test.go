package ast

import (
	"errors"
	"math"
	"testing"
)

func TestSymDisplay(t *testing.T) {
	data := []Sym{
		NewSym("foo"),
		NewSym("tangerine"),
		NewSym("a1_b2"),
	}

	testCases := []struct {
		name string
		exp  string
	}{
		{"Short", "foo"},
		{"Longer", "tangerine"},
		{"Mixed", "a1_b2"},
	}

	for ind, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := data[ind].String()
			if res != tc.exp {
				t.Errorf("Expected %v, got %v instead", tc.exp, res)
			}
		})
	}
}

func TestIdxDisplay(t *testing.T) {
	data := []Idx{
		NewIdx(NewSym("foo")),
		{Val: 3944, Sym: NewSym("foo")},
		{Val: math.MaxUint64, Sym: NewSym("foo")},
	}

	testCases := []struct {
		name string
		exp  string
	}{
		{"Zero", "0"},
		{"Large", "3944"},
		{"Max", "18446744073709551615"},
	}

	for ind, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := data[ind].String()
			if res != tc.exp {
				t.Errorf("Expected %v, got %v instead", tc.exp, res)
			}
		})
	}
}

func TestIdxInc(t *testing.T) {
	o1 := NewIdx(NewSym("foo"))
	o2, err := o1.Inc()
	if err != nil {
		t.Fatalf("Expected increment to succeed, got %v instead", err)
	}
	if o2.Val != 1 {
		t.Errorf("Expected 1, got %v instead", o2.Val)
	}
	if o2.Sym != NewSym("foo") {
		t.Errorf("Expected symbol to be kept, got %v instead", o2.Sym)
	}
}

func TestIdxIncLimit(t *testing.T) {
	o1 := Idx{Val: math.MaxUint64 - 1, Sym: NewSym("foo")}
	o2, err := o1.Inc()
	if err != nil {
		t.Fatalf("Expected increment below the limit to succeed, got %v instead", err)
	}
	if o2.Val != math.MaxUint64 {
		t.Errorf("Expected %v, got %v instead", uint64(math.MaxUint64), o2.Val)
	}

	_, err = o2.Inc()
	var limit IdxLimitError
	if !errors.As(err, &limit) {
		t.Fatalf("Expected IdxLimitError, got %v instead", err)
	}
	if limit.Val != math.MaxUint64 {
		t.Errorf("Expected %v, got %v instead", uint64(math.MaxUint64), limit.Val)
	}
	exp := "max limit 18446744073709551615 for indices has been reached"
	if err.Error() != exp {
		t.Errorf("Expected %v, got %v instead", exp, err.Error())
	}
}

func TestIdxDec(t *testing.T) {
	o1 := NewIdx(NewSym("foo"))
	o2, err := o1.Inc()
	if err != nil {
		t.Fatalf("Expected increment to succeed, got %v instead", err)
	}
	if o2.Dec() != o1 {
		t.Errorf("Expected %v, got %v instead", o1, o2.Dec())
	}
}

func TestIdxDecPanic(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected decrementing an index at 0 to panic")
		}
	}()
	NewIdx(NewSym("foo")).Dec()
}
