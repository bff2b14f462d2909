package resolve

import (
	"errors"
	"testing"

	"github.com/speakeasy-api/edi"
	"github.com/speakeasy-api/edi/schema"
)

func TestBuildStrategy(t *testing.T) {
	r := schema.NewRegistry()
	a := define(t, r, "NM1", "a", oneOf("85"))
	b := define(t, r, "NM1", "b", oneOf("87"))

	tests := []struct {
		name         string
		instructions []edi.Instruction
		want         Strategy
	}{
		{"single", []edi.Instruction{loop(0, a, "x")}, StrategyStub},
		{"single_unknown", []edi.Instruction{loop(0, nil, "x")}, StrategyStub},
		{"partly_unknown", []edi.Instruction{loop(0, a, "x"), loop(0, nil, "y")}, StrategyStub},
		{"same_use", []edi.Instruction{loop(0, a, "x"), loop(1, a, "y")}, StrategyShallowest},
		{"all_unknown", []edi.Instruction{loop(0, nil, "x"), loop(1, nil, "y")}, StrategyShallowest},
		{"different_uses", []edi.Instruction{loop(0, a, "x"), loop(0, b, "y")}, StrategyValueBased},
		{"mixed", []edi.Instruction{loop(0, a, "x"), loop(1, a, "y"), loop(0, b, "z")}, StrategyValueBased},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Build(tt.instructions, quiet())
			if err != nil {
				t.Fatalf("Build failed: %v", err)
			}
			if got := StrategyOf(res); got != tt.want {
				t.Errorf("strategy = %s, want %s", got, tt.want)
			}
			if got := res.Instructions(); len(got) != len(tt.instructions) {
				t.Errorf("Instructions() has %d entries, want %d", len(got), len(tt.instructions))
			}
		})
	}
}

func TestBuildStructurallyEqualUsesAreValueBased(t *testing.T) {
	r := schema.NewRegistry()
	a := define(t, r, "NM1", "a", oneOf("85"))
	b := define(t, r, "NM1", "b", oneOf("85"))
	res, err := Build([]edi.Instruction{loop(0, a, "x"), loop(1, b, "y")}, quiet())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if got := StrategyOf(res); got != StrategyValueBased {
		t.Errorf("strategy = %s, want %s: identity, not structure, decides", got, StrategyValueBased)
	}
}

func TestBuildErrors(t *testing.T) {
	if _, err := Build(nil, quiet()); !errors.Is(err, ErrNoInstructions) {
		t.Errorf("Build(nil) error = %v, want ErrNoInstructions", err)
	}

	r := schema.NewRegistry()
	nm1 := define(t, r, "NM1", "a", oneOf("85"))
	n1 := define(t, r, "N1", "b", oneOf("BT"))
	if _, err := Build([]edi.Instruction{loop(0, nm1, "x"), loop(0, n1, "y")}, quiet()); err == nil {
		t.Error("expected an error for instructions of different segments")
	}
}
