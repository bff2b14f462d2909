package resolve

import (
	"errors"
	"fmt"

	"github.com/speakeasy-api/edi"
	"github.com/speakeasy-api/edi/schema"
)

// Strategy names the resolver kind Build selected.
type Strategy string

const (
	StrategyStub       Strategy = "stub"
	StrategyShallowest Strategy = "shallowest"
	StrategyValueBased Strategy = "value-based"
)

// StrategyOf reports which strategy r implements.
func StrategyOf(r Resolver) Strategy {
	switch r.(type) {
	case *Stub:
		return StrategyStub
	case *Shallowest:
		return StrategyShallowest
	case *ValueBased:
		return StrategyValueBased
	default:
		return ""
	}
}

// ErrNoInstructions is returned by Build for an empty instruction list.
var ErrNoInstructions = errors.New("resolver needs at least one instruction")

// Build selects and creates the resolver for an instruction list:
//
//   - a single instruction, or a list where only some constraints are known,
//     gets a Stub;
//   - a list whose instructions all share one constraint (or all lack one)
//     gets Shallowest;
//   - anything else gets ValueBased.
//
// All known constraints must belong to the same segment identifier.
func Build(instructions []edi.Instruction, opts Options) (Resolver, error) {
	if len(instructions) == 0 {
		return nil, ErrNoInstructions
	}
	if err := sameSegment(instructions); err != nil {
		return nil, err
	}

	strategy := choose(instructions)
	opts.logger().With(map[string]any{"strategy": strategy}).
		Debugf("building resolver for %d instructions", len(instructions))

	switch strategy {
	case StrategyStub:
		return NewStub(instructions, opts), nil
	case StrategyShallowest:
		return NewShallowest(instructions, opts), nil
	default:
		return NewValueBased(instructions, opts), nil
	}
}

func choose(instructions []edi.Instruction) Strategy {
	if len(instructions) <= 1 {
		return StrategyStub
	}

	known := 0
	for _, in := range instructions {
		if in.Use() != nil {
			known++
		}
	}
	if known > 0 && known < len(instructions) {
		return StrategyStub
	}

	first, _ := instructions[0].UseID()
	for _, in := range instructions[1:] {
		if id, _ := in.UseID(); id != first {
			return StrategyValueBased
		}
	}
	return StrategyShallowest
}

func sameSegment(instructions []edi.Instruction) error {
	var first *schema.SegmentUse
	for _, in := range instructions {
		u := in.Use()
		if u == nil {
			continue
		}
		if first == nil {
			first = u
			continue
		}
		if u.Segment() != first.Segment() {
			return fmt.Errorf("instructions target different segments: %s and %s", first.Segment(), u.Segment())
		}
	}
	return nil
}
