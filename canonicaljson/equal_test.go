package canonicaljson

import "testing"

func TestEqual_KeyOrderIrrelevant(t *testing.T) {
	a := map[string]any{"a": 1.0, "b": "x"}
	b := map[string]any{"b": "x", "a": 1.0}
	eq, err := Equal(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !eq {
		t.Fatal("expected equal")
	}
}

func TestEqual_NumberSpellingIrrelevant(t *testing.T) {
	eq, err := Equal([]byte(`1`), []byte(`1.0`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !eq {
		t.Fatal("expected 1 and 1.0 equal")
	}
}

func TestEqual_DistinctValues(t *testing.T) {
	eq, err := Equal([]byte(`{"a":1}`), []byte(`{"a":2}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if eq {
		t.Fatal("expected not equal")
	}
}

func TestString_StableAcrossOrderings(t *testing.T) {
	s1, err := String([]byte(`{"b":2,"a":1}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s2, err := String(map[string]any{"a": 1.0, "b": 2.0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s1 != s2 {
		t.Fatalf("expected identical keys, got %q and %q", s1, s2)
	}
	if s1 != `{"a":1,"b":2}` {
		t.Fatalf("unexpected canonical form %q", s1)
	}
}
