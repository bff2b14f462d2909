package resolve

import (
	"sync"

	"github.com/speakeasy-api/edi"
)

// Table caches resolvers by instruction-list fingerprint so every distinct
// list is analysed once for the lifetime of the table.
type Table struct {
	opts Options

	mu        sync.RWMutex
	resolvers map[string]Resolver
}

// NewTable creates an empty resolver cache building resolvers with opts.
func NewTable(opts Options) *Table {
	return &Table{
		opts:      opts,
		resolvers: make(map[string]Resolver, 64),
	}
}

// Resolver returns the cached resolver for instructions, building it on first
// use.
func (t *Table) Resolver(instructions []edi.Instruction) (Resolver, error) {
	key := Fingerprint(instructions)

	t.mu.RLock()
	r, ok := t.resolvers[key]
	t.mu.RUnlock()
	if ok {
		return r, nil
	}

	r, err := Build(instructions, t.opts)
	if err != nil {
		return nil, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if existing, ok := t.resolvers[key]; ok {
		return existing, nil
	}
	t.resolvers[key] = r
	return r, nil
}

// Resolve returns the instructions tok can take, using the cached resolver
// for instructions.
func (t *Table) Resolve(instructions []edi.Instruction, tok edi.SegmentToken, strict bool, mode edi.Mode) ([]edi.Instruction, error) {
	r, err := t.Resolver(instructions)
	if err != nil {
		return nil, err
	}
	return r.Matches(tok, strict, mode)
}

// Len returns the number of cached resolvers.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.resolvers)
}

// Reset drops every cached resolver.
func (t *Table) Reset() {
	t.mu.Lock()
	t.resolvers = make(map[string]Resolver, 64)
	t.mu.Unlock()
}

var defaultTable = NewTable(DefaultOptions())

// Resolve narrows instructions for tok using a process-wide resolver cache
// built with DefaultOptions.
//
// Example:
//
//	g, _ := edi.LoadGrammar(f)
//	instrs := g.Instructions("2000A", tok.ID)
//	matched, err := resolve.Resolve(instrs, tok, true, edi.Insert)
func Resolve(instructions []edi.Instruction, tok edi.SegmentToken, strict bool, mode edi.Mode) ([]edi.Instruction, error) {
	return defaultTable.Resolve(instructions, tok, strict, mode)
}
