package resolve

import (
	"slices"
	"sync"

	"github.com/speakeasy-api/edi"
)

// Shallowest picks the instructions that pop the fewest automaton states. It
// serves lists whose constraints carry no distinguishing values, where
// keeping more of the existing tree is the conservative choice.
type Shallowest struct {
	base
	result func() []edi.Instruction
}

// NewShallowest creates a resolver preferring minimal pop counts.
func NewShallowest(instructions []edi.Instruction, opts Options) *Shallowest {
	s := &Shallowest{base: newBase(instructions, opts)}
	s.result = sync.OnceValue(func() []edi.Instruction {
		return shallowest(s.instructions)
	})
	return s
}

func (s *Shallowest) Matches(tok edi.SegmentToken, strict bool, mode edi.Mode) ([]edi.Instruction, error) {
	if err := validMode(mode); err != nil {
		return nil, err
	}
	if err := s.check(tok, strict); err != nil {
		return nil, err
	}
	return slices.Clone(s.result()), nil
}

// shallowest returns every instruction with the minimal pop count, keeping
// ties and order.
func shallowest(instructions []edi.Instruction) []edi.Instruction {
	if len(instructions) == 0 {
		return nil
	}
	least := instructions[0].PopCount()
	for _, in := range instructions[1:] {
		least = min(least, in.PopCount())
	}
	out := make([]edi.Instruction, 0, len(instructions))
	for _, in := range instructions {
		if in.PopCount() == least {
			out = append(out, in)
		}
	}
	return out
}
