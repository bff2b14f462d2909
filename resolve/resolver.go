// Package resolve narrows the candidate instructions the parse automaton has
// for a segment identifier down to the ones a concrete segment occurrence can
// take.
//
// A Resolver is built once per instruction list (see Build and Table) and is
// then queried for every occurrence of the segment. Resolvers are immutable
// apart from compute-once caches and are safe for concurrent use.
package resolve

import (
	"fmt"
	"slices"

	"github.com/speakeasy-api/edi"
	"github.com/speakeasy-api/edi/schema"
)

// Resolver returns the subset of its instructions that apply to a segment.
type Resolver interface {
	// Instructions returns the list the resolver was built from.
	Instructions() []edi.Instruction

	// Matches returns the instructions tok can take. The result is a subset
	// of Instructions in their original order. An empty result means the
	// segment is invalid for every candidate; more than one result means the
	// ambiguity could not be resolved with the information in tok.
	Matches(tok edi.SegmentToken, strict bool, mode edi.Mode) ([]edi.Instruction, error)
}

// base carries what every strategy shares.
type base struct {
	instructions []edi.Instruction
	critique     CritiqueFunc
	logger       Logger
	maxValues    int
}

func newBase(instructions []edi.Instruction, opts Options) base {
	return base{
		instructions: slices.Clone(instructions),
		critique:     opts.Critique,
		logger:       opts.logger(),
		maxValues:    opts.LogMaxValues,
	}
}

func (b *base) Instructions() []edi.Instruction {
	return slices.Clone(b.instructions)
}

// check runs the critique hook for strict resolutions.
func (b *base) check(tok edi.SegmentToken, strict bool) error {
	if !strict || b.critique == nil {
		return nil
	}
	uses := make([]*schema.SegmentUse, 0, len(b.instructions))
	for _, in := range b.instructions {
		if u := in.Use(); u != nil {
			uses = append(uses, u)
		}
	}
	if err := b.critique(tok, uses); err != nil {
		return fmt.Errorf("%s: %w", tok.ID, err)
	}
	return nil
}

func validMode(mode edi.Mode) error {
	if mode != edi.Insert && mode != edi.Read {
		return fmt.Errorf("unknown resolution mode %v", mode)
	}
	return nil
}
