package resolve

import (
	"slices"

	"github.com/speakeasy-api/edi"
)

// Stub returns its instructions unchanged. It serves lists that cannot or
// need not be narrowed.
type Stub struct {
	base
}

// NewStub creates a pass-through resolver.
func NewStub(instructions []edi.Instruction, opts Options) *Stub {
	return &Stub{base: newBase(instructions, opts)}
}

func (s *Stub) Matches(tok edi.SegmentToken, strict bool, mode edi.Mode) ([]edi.Instruction, error) {
	if err := validMode(mode); err != nil {
		return nil, err
	}
	if err := s.check(tok, strict); err != nil {
		return nil, err
	}
	return slices.Clone(s.instructions), nil
}
