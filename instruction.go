// Package edi holds the data the segment disambiguation core consumes: the
// automaton's candidate instructions, tokenized segments, and the grammar
// files that declare them.
package edi

import (
	"fmt"

	"github.com/speakeasy-api/edi/schema"
)

// Op is the kind of transition an instruction performs once chosen.
type Op int

const (
	OpNop Op = iota
	OpPushSegment
	OpPushLoop
	OpPushTable
	OpRestart
)

func (op Op) String() string {
	switch op {
	case OpNop:
		return "nop"
	case OpPushSegment:
		return "push-segment"
	case OpPushLoop:
		return "push-loop"
	case OpPushTable:
		return "push-table"
	case OpRestart:
		return "restart"
	default:
		panic(op)
	}
}

// ParseOp parses the textual form produced by Op.String.
func ParseOp(s string) (Op, error) {
	switch s {
	case "nop":
		return OpNop, nil
	case "push-segment":
		return OpPushSegment, nil
	case "push-loop":
		return OpPushLoop, nil
	case "push-table":
		return OpPushTable, nil
	case "restart":
		return OpRestart, nil
	default:
		return 0, fmt.Errorf("unknown instruction op %q", s)
	}
}

// Instruction is one candidate automaton transition for a segment
// identifier. Instructions are immutable.
type Instruction struct {
	op     Op
	pop    int
	use    *schema.SegmentUse
	target string
}

// NewInstruction builds an instruction that pops pop states and then performs
// op towards target. A nil use means the segment constraint is only known once
// the push happens.
func NewInstruction(op Op, pop int, use *schema.SegmentUse, target string) Instruction {
	if pop < 0 {
		panic(fmt.Sprintf("negative pop count %d", pop))
	}
	return Instruction{op: op, pop: pop, use: use, target: target}
}

// Op returns the transition kind.
func (in Instruction) Op() Op { return in.op }

// PopCount returns the number of automaton states popped before pushing.
func (in Instruction) PopCount() int { return in.pop }

// Use returns the segment constraint, or nil when it is not known yet.
func (in Instruction) Use() *schema.SegmentUse { return in.use }

// UseID returns the identity of the segment constraint; ok is false when the
// constraint is unknown.
func (in Instruction) UseID() (id schema.UseID, ok bool) {
	if in.use == nil {
		return 0, false
	}
	return in.use.ID(), true
}

// Target returns the continuation the automaton moves to.
func (in Instruction) Target() string { return in.target }

func (in Instruction) String() string {
	use := "?"
	if in.use != nil {
		use = in.use.Name()
	}
	return fmt.Sprintf("%s(pop=%d, use=%s, target=%s)", in.op, in.pop, use, in.target)
}
