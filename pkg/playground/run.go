// Package playground resolves interchange text against a grammar file, for
// the edires CLI and the browser playground.
package playground

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/speakeasy-api/edi"
	"github.com/speakeasy-api/edi/domain"
	"github.com/speakeasy-api/edi/pkg/segfmt"
	"github.com/speakeasy-api/edi/resolve"
)

var errNoInstructions = errors.New("no instructions")

// RunOptions configures Run.
type RunOptions struct {
	// State is the automaton state segments are resolved in. Empty selects
	// the first state of the grammar.
	State string
	// Strict fails the run on the first invalid element value.
	Strict bool
	Mode   edi.Mode
	// Follow moves to the target state of a unique match when the grammar
	// declares that state.
	Follow     bool
	Delimiters segfmt.Delimiters
	// CodeLists are offered to the grammar's codeList references.
	CodeLists map[string]domain.Domain
	Resolve   resolve.Options
}

// DefaultRunOptions returns lenient Insert-mode options with the default
// delimiters.
func DefaultRunOptions() RunOptions {
	return RunOptions{
		Mode:       edi.Insert,
		Follow:     true,
		Delimiters: segfmt.Default,
		Resolve:    resolve.DefaultOptions(),
	}
}

// SegmentOutcome is the resolution of one segment.
type SegmentOutcome struct {
	Segment  string   `json:"segment" yaml:"segment"`
	Text     string   `json:"text" yaml:"text"`
	State    string   `json:"state" yaml:"state"`
	Strategy string   `json:"strategy" yaml:"strategy"`
	Matches  []string `json:"matches" yaml:"matches"`
}

// RunResult contains the outcome of every resolved segment.
type RunResult struct {
	Mode     string           `json:"mode" yaml:"mode"`
	Outcomes []SegmentOutcome `json:"outcomes" yaml:"outcomes"`
	Warnings []string         `json:"warnings" yaml:"warnings"`
}

// Run resolves every segment of segmentsText against the grammar in
// grammarYAML.
func Run(grammarYAML, segmentsText string, opts RunOptions) (*RunResult, error) {
	g, err := edi.LoadGrammar(strings.NewReader(grammarYAML), edi.WithCodeLists(opts.CodeLists))
	if err != nil {
		return nil, err
	}
	delims, err := segfmt.ValidateDelimiters(opts.Delimiters)
	if err != nil {
		return nil, err
	}
	toks, err := ParseSegments(segmentsText, delims)
	if err != nil {
		return nil, fmt.Errorf("failed to parse segments: %w", err)
	}

	states := g.States()
	state := opts.State
	if state == "" && len(states) > 0 {
		state = states[0]
	}
	if !slices.Contains(states, state) {
		return nil, fmt.Errorf("unknown state %q", state)
	}

	table := resolve.NewTable(opts.Resolve)
	result := &RunResult{Mode: opts.Mode.String(), Warnings: []string{}}
	var errs []error

	for i, tok := range toks {
		out := SegmentOutcome{Segment: tok.ID, Text: segfmt.Format(tok, delims), State: state, Matches: []string{}}

		instrs := g.Instructions(state, tok.ID)
		r, err := table.Resolver(instrs)
		if errors.Is(err, resolve.ErrNoInstructions) {
			err = errNoInstructions
		}
		var matched []edi.Instruction
		if err == nil {
			out.Strategy = string(resolve.StrategyOf(r))
			matched, err = r.Matches(tok, opts.Strict, opts.Mode)
		}
		if err != nil {
			err = fmt.Errorf("segment %d (%s) in state %s: %w", i+1, tok.ID, state, err)
			if opts.Strict {
				errs = append(errs, err)
				break
			}
			result.Warnings = append(result.Warnings, err.Error())
		}

		for _, in := range matched {
			out.Matches = append(out.Matches, in.String())
		}
		if err == nil && len(matched) == 0 {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("segment %d (%s) in state %s: no candidate accepts the segment", i+1, tok.ID, state))
		}
		result.Outcomes = append(result.Outcomes, out)

		if opts.Follow && len(matched) == 1 && slices.Contains(states, matched[0].Target()) {
			state = matched[0].Target()
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("%s", FormatResolveErrors(errs))
	}
	return result, nil
}
