package edi

import (
	"testing"

	"github.com/speakeasy-api/edi/domain"
	"github.com/speakeasy-api/edi/schema"
)

func TestOpRoundTrip(t *testing.T) {
	for _, op := range []Op{OpNop, OpPushSegment, OpPushLoop, OpPushTable, OpRestart} {
		got, err := ParseOp(op.String())
		if err != nil {
			t.Fatalf("ParseOp(%q) failed: %v", op, err)
		}
		if got != op {
			t.Errorf("ParseOp(%q) = %v", op, got)
		}
	}
	if _, err := ParseOp("jump"); err == nil {
		t.Error("expected an error for an unknown op")
	}
}

func TestInstructionAccessors(t *testing.T) {
	r := schema.NewRegistry()
	use, err := r.Define("NM1", "billing", []schema.ElementUse{{Allowed: domain.Of("85")}})
	if err != nil {
		t.Fatalf("Define failed: %v", err)
	}

	in := NewInstruction(OpPushLoop, 2, use, "2010AA")
	if in.Op() != OpPushLoop || in.PopCount() != 2 || in.Target() != "2010AA" || in.Use() != use {
		t.Errorf("unexpected accessors: %v", in)
	}
	if id, ok := in.UseID(); !ok || id != use.ID() {
		t.Errorf("UseID() = %d, %v", id, ok)
	}
	if got := in.String(); got != "push-loop(pop=2, use=billing, target=2010AA)" {
		t.Errorf("String() = %q", got)
	}

	unknown := NewInstruction(OpPushSegment, 0, nil, "x")
	if _, ok := unknown.UseID(); ok {
		t.Error("instruction without a use should report no id")
	}
}

func TestNewInstructionRejectsNegativePop(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for a negative pop count")
		}
	}()
	NewInstruction(OpNop, -1, nil, "")
}

func TestParseMode(t *testing.T) {
	for _, m := range []Mode{Insert, Read} {
		got, err := ParseMode(m.String())
		if err != nil || got != m {
			t.Errorf("ParseMode(%q) = %v, %v", m, got, err)
		}
	}
	if _, err := ParseMode("write"); err == nil {
		t.Error("expected an error for an unknown mode")
	}
}
