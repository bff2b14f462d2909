package resolve

import (
	"slices"

	"github.com/speakeasy-api/edi"
	"github.com/speakeasy-api/edi/domain"
	"github.com/speakeasy-api/edi/schema"
)

// Position addresses a 0-based element and, when Component >= 0, one of its
// components.
type Position struct {
	Element   int
	Component int
}

// Designator renders pos as a 1-based EDI reference for segment.
func (p Position) Designator(segment string) string {
	return schema.Designator(segment, p.Element+1, p.Component+1)
}

// PositionLookup pairs a distinguishing position with its value lookup.
type PositionLookup struct {
	Position
	Lookup *Lookup
}

// Basis is the token-independent analysis a ValueBased resolver runs once
// per mode: the instructions it narrows and the positions that tell them
// apart.
type Basis struct {
	instructions []edi.Instruction
	disjoint     []PositionLookup
	distinct     []PositionLookup
}

// Instructions returns the candidates the basis narrows. Lookup indexes refer
// to this list.
func (b *Basis) Instructions() []edi.Instruction { return slices.Clone(b.instructions) }

// Disjoint returns the positions where every candidate allows values no other
// candidate allows.
func (b *Basis) Disjoint() []PositionLookup { return slices.Clone(b.disjoint) }

// Distinct returns the positions where candidate domains overlap but are not
// all the same.
func (b *Basis) Distinct() []PositionLookup { return slices.Clone(b.distinct) }

// collapse keeps, per segment use, only the instructions with the minimal
// pop count. Order is preserved.
func collapse(instructions []edi.Instruction) []edi.Instruction {
	least := make(map[schema.UseID]int)
	for _, in := range instructions {
		id, _ := in.UseID()
		if pop, ok := least[id]; !ok || in.PopCount() < pop {
			least[id] = in.PopCount()
		}
	}
	out := make([]edi.Instruction, 0, len(instructions))
	for _, in := range instructions {
		id, _ := in.UseID()
		if in.PopCount() == least[id] {
			out = append(out, in)
		}
	}
	return out
}

// positions enumerates the element and component positions of the first
// known segment use among instructions.
func positions(instructions []edi.Instruction) []Position {
	var template *schema.SegmentUse
	for _, in := range instructions {
		if template = in.Use(); template != nil {
			break
		}
	}
	if template == nil {
		return nil
	}

	var out []Position
	for i := 0; i < template.Len(); i++ {
		e, _ := template.Element(i)
		if !e.IsComposite() {
			out = append(out, Position{Element: i, Component: -1})
			continue
		}
		for j := range e.Components {
			out = append(out, Position{Element: i, Component: j})
		}
	}
	return out
}

func allowedAt(in edi.Instruction, pos Position) domain.Domain {
	u := in.Use()
	if u == nil {
		return domain.Any()
	}
	return u.Allowed(pos.Element, pos.Component)
}

// computeBasis classifies every position of instructions.
func computeBasis(instructions []edi.Instruction) *Basis {
	b := &Basis{instructions: instructions}
	domains := make([]domain.Domain, len(instructions))
	for _, pos := range positions(instructions) {
		for i, in := range instructions {
			domains[i] = allowedAt(in, pos)
		}
		switch {
		case disjoint(domains):
			b.disjoint = append(b.disjoint, PositionLookup{Position: pos, Lookup: newLookup(domains)})
		case distinct(domains):
			b.distinct = append(b.distinct, PositionLookup{Position: pos, Lookup: newLookup(domains)})
		}
	}
	return b
}

// disjoint reports whether domains are pairwise disjoint, checking each one
// against the union of those before it.
func disjoint(domains []domain.Domain) bool {
	total := domain.Empty()
	for _, d := range domains {
		if !d.DisjointFrom(total) {
			return false
		}
		total = total.Union(d)
	}
	return true
}

// distinct reports whether some domain differs from its predecessor. Domain
// equality is by value, so this holds exactly when the domains are not all
// equal.
func distinct(domains []domain.Domain) bool {
	for i := 1; i < len(domains); i++ {
		if !domains[i].Equal(domains[i-1]) {
			return true
		}
	}
	return false
}
