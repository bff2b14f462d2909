// Package schema holds the compiled segment constraints the disambiguation
// core reads: for one segment occurrence type, the allowed values at every
// element and component position.
package schema

import (
	"fmt"

	"github.com/speakeasy-api/edi/domain"
)

// UseID is the interned identity of a SegmentUse. Two instructions carry the
// same constraint exactly when their uses have the same UseID. Ids are
// assigned by a Registry and are never zero.
type UseID uint32

// ComponentUse constrains one component of a composite element.
type ComponentUse struct {
	Name    string
	Allowed domain.Domain
}

// ElementUse constrains one element. An element with components is composite
// and its own Allowed domain is not consulted.
type ElementUse struct {
	Name       string
	Allowed    domain.Domain
	Components []ComponentUse
}

// IsComposite reports whether the element has component positions.
func (e ElementUse) IsComposite() bool {
	return len(e.Components) > 0
}

// SegmentUse is one schema-declared occurrence type of a segment.
type SegmentUse struct {
	id       UseID
	segment  string
	name     string
	elements []ElementUse
}

// ID returns the interned identity of u.
func (u *SegmentUse) ID() UseID { return u.id }

// Segment returns the segment identifier u constrains, e.g. "NM1".
func (u *SegmentUse) Segment() string { return u.segment }

// Name returns the schema name of u.
func (u *SegmentUse) Name() string { return u.name }

// Len returns the number of element positions u declares.
func (u *SegmentUse) Len() int { return len(u.elements) }

// Element returns the element use at 0-based position i.
func (u *SegmentUse) Element(i int) (ElementUse, bool) {
	if i < 0 || i >= len(u.elements) {
		return ElementUse{}, false
	}
	return u.elements[i], true
}

// Allowed returns the domain declared at the given 0-based element position
// and, when component >= 0, component position. Positions u does not declare
// are unconstrained.
func (u *SegmentUse) Allowed(element, component int) domain.Domain {
	e, ok := u.Element(element)
	if !ok {
		return domain.Any()
	}
	if component < 0 {
		if e.IsComposite() {
			return domain.Any()
		}
		return e.Allowed
	}
	if !e.IsComposite() || component >= len(e.Components) {
		return domain.Any()
	}
	return e.Components[component].Allowed
}

func (u *SegmentUse) String() string {
	return fmt.Sprintf("%s(%s#%d)", u.segment, u.name, u.id)
}

// Designator renders a 1-based element reference such as NM101, or CLM05-02
// when component is positive.
func Designator(segment string, element, component int) string {
	if component > 0 {
		return fmt.Sprintf("%s%02d-%02d", segment, element, component)
	}
	return fmt.Sprintf("%s%02d", segment, element)
}
