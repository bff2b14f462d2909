package resolve

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/speakeasy-api/edi"
	"github.com/speakeasy-api/edi/schema"
)

func TestStubReturnsEverything(t *testing.T) {
	r := schema.NewRegistry()
	a := define(t, r, "NM1", "a", oneOf("85"))

	lists := [][]edi.Instruction{
		{loop(0, a, "only")},
		{loop(2, nil, "unknown")},
		{loop(0, a, "x"), loop(1, nil, "y")},
	}
	tokens := []edi.SegmentToken{
		segment("NM1"),
		segment("NM1", simples("85")...),
		segment("NM1", simples("ZZ")...),
	}
	for _, instrs := range lists {
		res, err := Build(instrs, quiet())
		if err != nil {
			t.Fatalf("Build failed: %v", err)
		}
		for _, tok := range tokens {
			for _, strict := range []bool{false, true} {
				for _, mode := range []edi.Mode{edi.Insert, edi.Read} {
					got, err := res.Matches(tok, strict, mode)
					if err != nil {
						t.Fatalf("Matches failed: %v", err)
					}
					if diff := cmp.Diff(targets(instrs), targets(got)); diff != "" {
						t.Errorf("Matches(%v, %v, %v) mismatch (-want +got):\n%s", tok, strict, mode, diff)
					}
				}
			}
		}
	}
}

func TestStubCritique(t *testing.T) {
	r := schema.NewRegistry()
	a := define(t, r, "NM1", "a", oneOf("85"))

	var calls int
	var seen []*schema.SegmentUse
	opts := quiet()
	opts.Critique = func(tok edi.SegmentToken, uses []*schema.SegmentUse) error {
		calls++
		seen = uses
		return nil
	}
	res := NewStub([]edi.Instruction{loop(0, a, "x"), loop(0, nil, "y")}, opts)

	if _, err := res.Matches(segment("NM1"), false, edi.Insert); err != nil {
		t.Fatalf("Matches failed: %v", err)
	}
	if calls != 0 {
		t.Fatalf("critique ran %d times in lenient mode", calls)
	}
	if _, err := res.Matches(segment("NM1"), true, edi.Insert); err != nil {
		t.Fatalf("Matches failed: %v", err)
	}
	if calls != 1 {
		t.Fatalf("critique ran %d times in strict mode, want 1", calls)
	}
	if len(seen) != 1 || seen[0] != a {
		t.Errorf("critique saw uses %v, want only the known one", seen)
	}

	boom := errors.New("missing required element")
	opts.Critique = func(edi.SegmentToken, []*schema.SegmentUse) error { return boom }
	res = NewStub([]edi.Instruction{loop(0, a, "x")}, opts)
	if _, err := res.Matches(segment("NM1"), true, edi.Read); !errors.Is(err, boom) {
		t.Errorf("Matches error = %v, want wrapped critique error", err)
	}
}

func TestStubRejectsUnknownMode(t *testing.T) {
	res := NewStub([]edi.Instruction{loop(0, nil, "x")}, quiet())
	if _, err := res.Matches(segment("NM1"), false, edi.Mode(7)); err == nil {
		t.Error("expected an error for an unknown mode")
	}
}
