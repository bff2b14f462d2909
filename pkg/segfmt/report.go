package segfmt

import (
	"github.com/speakeasy-api/edi"
	"github.com/speakeasy-api/edi/domain"
	"github.com/speakeasy-api/edi/resolve"
	"github.com/speakeasy-api/openapi/jsonschema/oas3"
)

// BasisReport is a serializable view of a basis. Allowed values are written
// in the grammar file's `allowed` syntax, so a fragment can be pasted back
// into a grammar.
type BasisReport struct {
	Segment    string           `json:"segment" yaml:"segment"`
	Mode       string           `json:"mode" yaml:"mode"`
	Candidates []string         `json:"candidates" yaml:"candidates"`
	Positions  []PositionReport `json:"positions" yaml:"positions"`
}

// PositionReport lists, per candidate, the values allowed at one position.
type PositionReport struct {
	Designator string      `json:"designator" yaml:"designator"`
	Kind       string      `json:"kind" yaml:"kind"`
	Allowed    []*Fragment `json:"allowed" yaml:"allowed"`
}

// Fragment is the enum/not subset of JSON Schema. An empty fragment allows
// every value; `not: {}` allows none.
type Fragment struct {
	Enum []string  `json:"enum,omitempty" yaml:"enum,omitempty"`
	Not  *Fragment `json:"not,omitempty" yaml:"not,omitempty"`
}

// Report builds the serializable view of basis.
func Report(segment string, mode edi.Mode, basis *resolve.Basis) *BasisReport {
	instrs := basis.Instructions()
	r := &BasisReport{
		Segment:    segment,
		Mode:       mode.String(),
		Candidates: make([]string, len(instrs)),
		Positions:  []PositionReport{},
	}
	for i, in := range instrs {
		r.Candidates[i] = in.String()
	}

	add := func(kind string, pls []resolve.PositionLookup) {
		for _, pl := range pls {
			pr := PositionReport{Designator: pl.Designator(segment), Kind: kind}
			for _, in := range instrs {
				pr.Allowed = append(pr.Allowed, fragmentOf(allowed(in, pl.Position)))
			}
			r.Positions = append(r.Positions, pr)
		}
	}
	add("disjoint", basis.Disjoint())
	add("distinct", basis.Distinct())
	return r
}

func fragmentOf(d domain.Domain) *Fragment {
	s := domain.ToSchema(d)
	if s == nil {
		return &Fragment{Not: &Fragment{}}
	}
	return fromSchema(s)
}

func fromSchema(s *oas3.Schema) *Fragment {
	f := &Fragment{}
	for _, n := range s.Enum {
		f.Enum = append(f.Enum, n.Value)
	}
	if s.Not != nil && s.Not.Left != nil {
		f.Not = fromSchema(s.Not.Left)
	}
	return f
}
