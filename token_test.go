package edi

import "testing"

func TestSimpleElementBlank(t *testing.T) {
	if got := SimpleElement(""); got.Kind != Blank {
		t.Errorf("SimpleElement(\"\").Kind = %v, want blank", got.Kind)
	}
	if got := SimpleElement("85"); got.Kind != Simple || got.Value != "85" {
		t.Errorf("SimpleElement(85) = %+v", got)
	}
}

func TestIsBlank(t *testing.T) {
	tests := []struct {
		name string
		e    ElementToken
		want bool
	}{
		{"blank", BlankElement(), true},
		{"simple", SimpleElement("A"), false},
		{"empty_composite", CompositeElement("", ""), true},
		{"composite", CompositeElement("", "B"), false},
		{"empty_repeat", RepeatedElement(), true},
		{"repeat_of_blanks", RepeatedElement(BlankElement(), SimpleElement("")), true},
		{"repeat", RepeatedElement(BlankElement(), SimpleElement("X")), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.e.IsBlank(); got != tt.want {
				t.Errorf("IsBlank() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFirst(t *testing.T) {
	e := RepeatedElement(CompositeElement("11", "B"), CompositeElement("12", "B"))
	first := e.First()
	if first.Kind != Composite || first.Components[0] != "11" {
		t.Errorf("First() = %+v, want the first occurrence", first)
	}
	if got := RepeatedElement().First(); got.Kind != Blank {
		t.Errorf("First() of an empty repeat = %+v, want blank", got)
	}
	s := SimpleElement("A")
	if got := s.First(); got.Value != "A" {
		t.Errorf("First() of a simple element = %+v", got)
	}
}

func TestComponent(t *testing.T) {
	c := CompositeElement("11", "", "1")
	if v, ok := c.Component(0); !ok || v != "11" {
		t.Errorf("Component(0) = %q, %v", v, ok)
	}
	if _, ok := c.Component(1); ok {
		t.Error("blank component should report no value")
	}
	if _, ok := c.Component(3); ok {
		t.Error("out of range component should report no value")
	}
	s := SimpleElement("X")
	if v, ok := s.Component(0); !ok || v != "X" {
		t.Errorf("simple element should be its own first component, got %q, %v", v, ok)
	}
	if _, ok := s.Component(1); ok {
		t.Error("simple element has only one component")
	}
}

func TestSegmentElement(t *testing.T) {
	seg := SegmentToken{ID: "NM1", Elements: []ElementToken{SimpleElement("85")}}
	if got := seg.Element(0); got.Value != "85" {
		t.Errorf("Element(0) = %+v", got)
	}
	if got := seg.Element(4); got.Kind != Blank {
		t.Errorf("Element(4) = %+v, want blank", got)
	}
}
