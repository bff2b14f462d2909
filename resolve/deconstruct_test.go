package resolve

import (
	"testing"

	"github.com/speakeasy-api/edi"
)

func TestDeconstruct(t *testing.T) {
	elements := []edi.ElementToken{
		edi.SimpleElement("85"),
		edi.BlankElement(),
		edi.CompositeElement("11", "", "1"),
		edi.RepeatedElement(edi.CompositeElement("A", "B"), edi.CompositeElement("C", "D")),
		edi.RepeatedElement(edi.SimpleElement("R1"), edi.SimpleElement("R2")),
	}

	tests := []struct {
		name   string
		pos    Position
		want   string
		wantOK bool
	}{
		{"simple", Position{0, -1}, "85", true},
		{"blank", Position{1, -1}, "", false},
		{"component", Position{2, 0}, "11", true},
		{"blank_component", Position{2, 1}, "", false},
		{"third_component", Position{2, 2}, "1", true},
		{"missing_component", Position{2, 7}, "", false},
		{"composite_read_as_simple", Position{2, -1}, "11", true},
		{"repeated_first_only", Position{3, 1}, "B", true},
		{"repeated_simple", Position{4, -1}, "R1", true},
		{"simple_as_first_component", Position{0, 0}, "85", true},
		{"simple_second_component", Position{0, 1}, "", false},
		{"past_end", Position{9, -1}, "", false},
		{"negative", Position{-1, -1}, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := deconstruct(elements, tt.pos)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("deconstruct(%v) = %q, %v; want %q, %v", tt.pos, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
