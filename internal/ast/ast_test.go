package ast

import (
	"reflect"
	"testing"
)

func TestIsVariable(t *testing.T) {
	cases := map[string]bool{
		"x":    true,
		"y1":   true,
		"z23":  true,
		"p":    true,
		"e":    true,
		"e1":   true,
		"a":    false,
		"o":    false,
		"Ev_x": false,
		"john": false,
	}
	for term, want := range cases {
		if got := IsVariable(term); got != want {
			t.Errorf("IsVariable(%q) = %v, want %v", term, got, want)
		}
	}
}

func TestIsEventVariable(t *testing.T) {
	if !IsEventVariable("e1") {
		t.Error("e1 should be an event variable")
	}
	if IsEventVariable("x1") {
		t.Error("x1 should not be an event variable")
	}
	if IsEventVariable("") {
		t.Error("empty string should not be an event variable")
	}
}

func TestSubstituteRenamesFreeOccurrences(t *testing.T) {
	f := All{Var: "x", Body: Atom{Pred: "P", Args: []string{"x"}}}
	got := Substitute(f, "x", "a")
	want := All{Var: "x", Body: Atom{Pred: "P", Args: []string{"x"}}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Substitute should not descend into a quantifier rebinding the same variable, got %#v", got)
	}

	f2 := Atom{Pred: "P", Args: []string{"x", "y"}}
	got2 := Substitute(f2, "x", "a")
	want2 := Atom{Pred: "P", Args: []string{"a", "y"}}
	if !reflect.DeepEqual(got2, want2) {
		t.Errorf("Substitute(%#v, x, a) = %#v, want %#v", f2, got2, want2)
	}
}

func TestFreeVariables(t *testing.T) {
	closed := All{Var: "x", Body: Atom{Pred: "P", Args: []string{"x"}}}
	if free := FreeVariables(closed); len(free) != 0 {
		t.Errorf("expected no free variables in a closed sentence, got %v", free)
	}

	open := Atom{Pred: "P", Args: []string{"x", "a"}}
	free := FreeVariables(open)
	if !free["x"] || len(free) != 1 {
		t.Errorf("expected exactly {x} free, got %v", free)
	}

	// A free event variable must be flagged the same as any other free
	// variable: "e" is in the variable-spelling range and is not bound here.
	openEvent := Atom{Pred: "Run", Args: []string{"e"}}
	freeEvent := FreeVariables(openEvent)
	if !freeEvent["e"] || len(freeEvent) != 1 {
		t.Errorf("expected the free event variable e to be reported, got %v", freeEvent)
	}
}
