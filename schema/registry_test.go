package schema

import (
	"testing"

	"github.com/speakeasy-api/edi/domain"
)

func TestRegistryAssignsDistinctIDs(t *testing.T) {
	r := NewRegistry()
	a, err := r.Define("NM1", "billing", []ElementUse{{Allowed: domain.Of("85")}})
	if err != nil {
		t.Fatalf("Define failed: %v", err)
	}
	b, err := r.Define("NM1", "payto", []ElementUse{{Allowed: domain.Of("85")}})
	if err != nil {
		t.Fatalf("Define failed: %v", err)
	}
	if a.ID() == 0 || b.ID() == 0 {
		t.Fatal("ids must be non-zero")
	}
	if a.ID() == b.ID() {
		t.Errorf("structurally equal uses must still get distinct ids, both got %d", a.ID())
	}
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Define("NM1", "billing", nil); err != nil {
		t.Fatalf("Define failed: %v", err)
	}
	if _, err := r.Define("NM1", "billing", nil); err == nil {
		t.Fatal("expected an error for a duplicate use")
	}
	if _, err := r.Define("", "x", nil); err == nil {
		t.Fatal("expected an error for a missing segment")
	}
	if _, err := r.Define("NM1", "", nil); err == nil {
		t.Fatal("expected an error for a missing name")
	}
}

func TestRegistryLookupAndOrder(t *testing.T) {
	r := NewRegistry()
	names := []string{"c", "a", "b"}
	for _, n := range names {
		if _, err := r.Define("HL", n, nil); err != nil {
			t.Fatalf("Define(%s) failed: %v", n, err)
		}
	}
	u, ok := r.Lookup("HL", "a")
	if !ok || u.Name() != "a" || u.Segment() != "HL" {
		t.Fatalf("Lookup(HL, a) = %v, %v", u, ok)
	}
	if _, ok := r.Lookup("NM1", "a"); ok {
		t.Error("Lookup should be keyed by segment too")
	}
	uses := r.Uses()
	if len(uses) != r.Len() || len(uses) != 3 {
		t.Fatalf("Uses returned %d uses, want 3", len(uses))
	}
	for i, u := range uses {
		if u.Name() != names[i] {
			t.Errorf("Uses()[%d] = %s, want %s", i, u.Name(), names[i])
		}
	}
}

func TestDefineCopiesElements(t *testing.T) {
	r := NewRegistry()
	elems := []ElementUse{{Name: "e", Components: []ComponentUse{{Allowed: domain.Of("A")}}}}
	u, err := r.Define("SV1", "line", elems)
	if err != nil {
		t.Fatalf("Define failed: %v", err)
	}
	elems[0].Components[0].Allowed = domain.Of("Z")
	if !u.Allowed(0, 0).Equal(domain.Of("A")) {
		t.Errorf("compiled use changed after caller mutation: %v", u.Allowed(0, 0))
	}
}
