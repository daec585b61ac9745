package linearize

import (
	"reflect"
	"testing"
)

func TestLinearize_DiamondInheritance(t *testing.T) {
	// D is B, C; B is A; C is A  =>  D, B, C, A (C3, most-derived first).
	bases := map[string][]string{
		"A": nil,
		"B": {"A"},
		"C": {"A"},
		"D": {"B", "C"},
	}
	lz := &Linearizer[string]{Bases: func(k string) []string { return bases[k] }}

	got, err := lz.Linearize("D")
	if err != nil {
		t.Fatalf("Linearize: %v", err)
	}
	want := []string{"D", "B", "C", "A"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestLinearize_SingleInheritanceChain(t *testing.T) {
	bases := map[string][]string{
		"A": nil,
		"B": {"A"},
		"C": {"B"},
	}
	lz := &Linearizer[string]{Bases: func(k string) []string { return bases[k] }}

	got, err := lz.Linearize("C")
	if err != nil {
		t.Fatalf("Linearize: %v", err)
	}
	want := []string{"C", "B", "A"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestLinearize_DetectsCycle(t *testing.T) {
	bases := map[string][]string{
		"A": {"B"},
		"B": {"A"},
	}
	lz := &Linearizer[string]{Bases: func(k string) []string { return bases[k] }}

	_, err := lz.Linearize("A")
	if err == nil {
		t.Fatalf("expected a cycle error, got nil")
	}
	if _, ok := err.(ErrCycle); !ok {
		t.Fatalf("expected ErrCycle, got %T: %v", err, err)
	}
}

func TestLinearize_DetectsAmbiguousMerge(t *testing.T) {
	// X is A, B; Y is B, A — inconsistent base order for A and B is
	// unresolvable once something tries to inherit both X and Y.
	bases := map[string][]string{
		"A": nil,
		"B": nil,
		"X": {"A", "B"},
		"Y": {"B", "A"},
		"Z": {"X", "Y"},
	}
	lz := &Linearizer[string]{Bases: func(k string) []string { return bases[k] }}

	_, err := lz.Linearize("Z")
	if err == nil {
		t.Fatalf("expected an ambiguous-linearization error, got nil")
	}
	if _, ok := err.(ErrAmbiguous); !ok {
		t.Fatalf("expected ErrAmbiguous, got %T: %v", err, err)
	}
}
