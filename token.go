package edi

// TokenKind classifies an element token.
type TokenKind uint8

const (
	Blank TokenKind = iota
	Simple
	Composite
	Repeated
)

func (k TokenKind) String() string {
	switch k {
	case Blank:
		return "blank"
	case Simple:
		return "simple"
	case Composite:
		return "composite"
	case Repeated:
		return "repeated"
	default:
		return "unknown"
	}
}

// ElementToken is one element of a tokenized segment.
type ElementToken struct {
	Kind       TokenKind
	Value      string
	Components []string
	Repeats    []ElementToken
}

// BlankElement returns an absent element.
func BlankElement() ElementToken {
	return ElementToken{Kind: Blank}
}

// SimpleElement returns a non-composite element holding v. An empty value is
// blank.
func SimpleElement(v string) ElementToken {
	if v == "" {
		return BlankElement()
	}
	return ElementToken{Kind: Simple, Value: v}
}

// CompositeElement returns a composite element with the given components.
func CompositeElement(components ...string) ElementToken {
	return ElementToken{Kind: Composite, Components: components}
}

// RepeatedElement returns a repeated element with the given occurrences.
func RepeatedElement(occurrences ...ElementToken) ElementToken {
	return ElementToken{Kind: Repeated, Repeats: occurrences}
}

// First returns the first occurrence of a repeated element, or the element
// itself otherwise.
func (e ElementToken) First() ElementToken {
	if e.Kind != Repeated {
		return e
	}
	if len(e.Repeats) == 0 {
		return BlankElement()
	}
	return e.Repeats[0]
}

// IsBlank reports whether the element carries no data.
func (e ElementToken) IsBlank() bool {
	switch e.Kind {
	case Simple:
		return e.Value == ""
	case Composite:
		for _, c := range e.Components {
			if c != "" {
				return false
			}
		}
		return true
	case Repeated:
		for _, r := range e.Repeats {
			if !r.IsBlank() {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// Component returns the 0-based component i. A simple element is its own
// first component.
func (e ElementToken) Component(i int) (string, bool) {
	switch e.Kind {
	case Composite:
		if i < 0 || i >= len(e.Components) || e.Components[i] == "" {
			return "", false
		}
		return e.Components[i], true
	case Simple:
		if i == 0 && e.Value != "" {
			return e.Value, true
		}
	}
	return "", false
}

// SegmentToken is the tokenization of one segment occurrence.
type SegmentToken struct {
	ID       string
	Elements []ElementToken
}

// Element returns the 0-based element i, or a blank element when the segment
// is shorter.
func (s SegmentToken) Element(i int) ElementToken {
	if i < 0 || i >= len(s.Elements) {
		return BlankElement()
	}
	return s.Elements[i]
}
