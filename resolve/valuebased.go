package resolve

import (
	"strings"
	"sync"

	"github.com/speakeasy-api/edi"
)

// ValueBased narrows candidates by the element values of the segment, using
// the allowed-value domains their segment uses declare.
type ValueBased struct {
	base
	bases [2]func() *Basis // indexed by edi.Mode
}

// NewValueBased creates a resolver that disambiguates by element values.
func NewValueBased(instructions []edi.Instruction, opts Options) *ValueBased {
	v := &ValueBased{base: newBase(instructions, opts)}
	for _, mode := range []edi.Mode{edi.Insert, edi.Read} {
		v.bases[mode] = sync.OnceValue(func() *Basis {
			return v.computeBasis(mode)
		})
	}
	return v
}

// Basis returns the analysis used for mode, computing it on first use.
func (v *ValueBased) Basis(mode edi.Mode) (*Basis, error) {
	if err := validMode(mode); err != nil {
		return nil, err
	}
	return v.bases[mode](), nil
}

func (v *ValueBased) computeBasis(mode edi.Mode) *Basis {
	instructions := v.instructions
	if mode == edi.Insert {
		// Insert settles depth ties between instructions sharing a use.
		instructions = collapse(instructions)
	}
	b := computeBasis(instructions)

	if v.logger.Enabled(LevelDebug) {
		log := v.logger.With(map[string]any{"mode": mode})
		log.Debugf("computed basis: %d of %d candidates, %d disjoint and %d distinct positions",
			len(b.instructions), len(v.instructions), len(b.disjoint), len(b.distinct))
		v.logPositions(log, b, "disjoint", b.disjoint)
		v.logPositions(log, b, "distinct", b.distinct)
	}
	return b
}

func (v *ValueBased) Matches(tok edi.SegmentToken, strict bool, mode edi.Mode) ([]edi.Instruction, error) {
	b, err := v.Basis(mode)
	if err != nil {
		return nil, err
	}
	if err := v.check(tok, strict); err != nil {
		return nil, err
	}

	// A value at a disjoint position names its instruction outright.
	var sawInvalid, sawValid bool
	for _, pl := range b.disjoint {
		value, ok := deconstruct(tok.Elements, pl.Position)
		if !ok {
			continue
		}
		if idx := pl.Lookup.Get(value); len(idx) == 1 {
			return []edi.Instruction{b.instructions[idx[0]]}, nil
		}
		if strict {
			return nil, invalidValue(tok.ID, pl.Position, value)
		}
		v.logInvalid(tok.ID, pl.Position, value, mode)
		sawInvalid = true
	}

	// Otherwise intersect the candidate sets of every distinct position.
	running := make([]int, len(b.instructions))
	for i := range running {
		running[i] = i
	}
	for _, pl := range b.distinct {
		value, ok := deconstruct(tok.Elements, pl.Position)
		if !ok {
			continue
		}
		idx := pl.Lookup.Get(value)
		if len(idx) == 0 {
			if strict {
				return nil, invalidValue(tok.ID, pl.Position, value)
			}
			v.logInvalid(tok.ID, pl.Position, value, mode)
			sawInvalid = true
			continue
		}
		running = intersect(running, idx)
		sawValid = true
		if len(running) <= 1 {
			return pick(b.instructions, running), nil
		}
	}

	if sawInvalid && !sawValid {
		v.logger.With(map[string]any{"segment": tok.ID, "mode": mode}).
			Infof("rejecting segment: every distinguishing value is invalid")
		return []edi.Instruction{}, nil
	}
	return pick(b.instructions, running), nil
}

func (v *ValueBased) logPositions(log Logger, b *Basis, kind string, pls []PositionLookup) {
	for _, pl := range pls {
		domains := make([]string, len(b.instructions))
		for i, in := range b.instructions {
			domains[i] = previewDomain(allowedAt(in, pl.Position), v.maxValues)
		}
		log.Debugf("%s position %d/%d: %s", kind, pl.Element, pl.Component, strings.Join(domains, " | "))
	}
}

func (v *ValueBased) logInvalid(segment string, pos Position, value string, mode edi.Mode) {
	if !v.logger.Enabled(LevelInfo) {
		return
	}
	v.logger.With(map[string]any{"segment": segment, "mode": mode}).
		Infof("ignoring invalid value %q at %s", value, pos.Designator(segment))
}

// intersect returns the indexes present in both sorted slices.
func intersect(a, b []int) []int {
	out := make([]int, 0, min(len(a), len(b)))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	return out
}

func pick(instructions []edi.Instruction, idx []int) []edi.Instruction {
	out := make([]edi.Instruction, len(idx))
	for i, k := range idx {
		out[i] = instructions[k]
	}
	return out
}
