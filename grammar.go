package edi

import (
	"fmt"
	"io"

	"github.com/speakeasy-api/edi/domain"
	"github.com/speakeasy-api/edi/schema"
	"github.com/speakeasy-api/openapi/jsonschema/oas3"
	"github.com/speakeasy-api/openapi/sequencedmap"
	"gopkg.in/yaml.v3"
)

// Grammar is a compiled grammar file: the segment uses it declares and, per
// automaton state, the candidate instructions for every segment identifier.
type Grammar struct {
	uses   *schema.Registry
	states *sequencedmap.Map[string, *sequencedmap.Map[string, []Instruction]]
}

// GrammarOption configures LoadGrammar.
type GrammarOption func(*grammarConfig)

type grammarConfig struct {
	codeLists map[string]domain.Domain
}

// WithCodeLists makes externally defined code lists (see LoadCodeLists)
// available to codeList references. Lists declared in the grammar file win.
func WithCodeLists(lists map[string]domain.Domain) GrammarOption {
	return func(c *grammarConfig) {
		for k, v := range lists {
			c.codeLists[k] = v
		}
	}
}

// grammarFile is the YAML layout of a grammar file.
type grammarFile struct {
	CodeLists yaml.Node `yaml:"codeLists"`
	Uses      []useDecl `yaml:"uses"`
	States    yaml.Node `yaml:"states"`
}

type useDecl struct {
	Segment  string        `yaml:"segment"`
	Name     string        `yaml:"name"`
	Elements []elementDecl `yaml:"elements"`
}

type elementDecl struct {
	Name       string        `yaml:"name"`
	Allowed    *valueSchema  `yaml:"allowed"`
	CodeList   string        `yaml:"codeList"`
	Components []elementDecl `yaml:"components"`
}

type instructionDecl struct {
	Op     string `yaml:"op"`
	Pop    int    `yaml:"pop"`
	Use    string `yaml:"use"`
	Target string `yaml:"target"`
}

// valueSchema is the subset of JSON Schema a grammar file may use to write an
// allowed-value set.
type valueSchema struct {
	Enum  []yaml.Node    `yaml:"enum"`
	Not   *valueSchema   `yaml:"not"`
	AnyOf []*valueSchema `yaml:"anyOf"`
	AllOf []*valueSchema `yaml:"allOf"`
}

func (v *valueSchema) toSchema() *oas3.Schema {
	if v == nil {
		return nil
	}
	s := &oas3.Schema{}
	for i := range v.Enum {
		s.Enum = append(s.Enum, &v.Enum[i])
	}
	if v.Not != nil {
		s.Not = oas3.NewJSONSchemaFromSchema[oas3.Referenceable](v.Not.toSchema())
	}
	for _, b := range v.AnyOf {
		s.AnyOf = append(s.AnyOf, oas3.NewJSONSchemaFromSchema[oas3.Referenceable](b.toSchema()))
	}
	for _, b := range v.AllOf {
		s.AllOf = append(s.AllOf, oas3.NewJSONSchemaFromSchema[oas3.Referenceable](b.toSchema()))
	}
	return s
}

// LoadGrammar reads and compiles a YAML grammar file.
func LoadGrammar(r io.Reader, opts ...GrammarOption) (*Grammar, error) {
	cfg := &grammarConfig{codeLists: make(map[string]domain.Domain)}
	for _, opt := range opts {
		opt(cfg)
	}

	var file grammarFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to parse grammar: %w", err)
	}

	if err := decodeCodeLists(&file.CodeLists, cfg.codeLists); err != nil {
		return nil, err
	}

	g := &Grammar{
		uses:   schema.NewRegistry(),
		states: sequencedmap.New[string, *sequencedmap.Map[string, []Instruction]](),
	}

	for _, ud := range file.Uses {
		elements := make([]schema.ElementUse, 0, len(ud.Elements))
		for i, ed := range ud.Elements {
			eu, err := compileElement(ed, cfg.codeLists)
			if err != nil {
				return nil, fmt.Errorf("use %s/%s: %s: %w", ud.Segment, ud.Name, schema.Designator(ud.Segment, i+1, 0), err)
			}
			elements = append(elements, eu)
		}
		if _, err := g.uses.Define(ud.Segment, ud.Name, elements); err != nil {
			return nil, err
		}
	}

	if err := g.decodeStates(&file.States); err != nil {
		return nil, err
	}
	return g, nil
}

func decodeCodeLists(node *yaml.Node, into map[string]domain.Domain) error {
	if node.Kind == 0 {
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("codeLists must be a mapping")
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		name := node.Content[i].Value
		var vs valueSchema
		if err := node.Content[i+1].Decode(&vs); err != nil {
			return fmt.Errorf("code list %s: %w", name, err)
		}
		d, err := domain.FromSchema(vs.toSchema())
		if err != nil {
			return fmt.Errorf("code list %s: %w", name, err)
		}
		into[name] = d
	}
	return nil
}

func compileElement(ed elementDecl, codeLists map[string]domain.Domain) (schema.ElementUse, error) {
	eu := schema.ElementUse{Name: ed.Name}
	if len(ed.Components) > 0 {
		if ed.Allowed != nil || ed.CodeList != "" {
			return eu, fmt.Errorf("composite element %q cannot declare allowed values itself", ed.Name)
		}
		for _, cd := range ed.Components {
			if len(cd.Components) > 0 {
				return eu, fmt.Errorf("component %q cannot have components", cd.Name)
			}
			allowed, err := allowedDomain(cd, codeLists)
			if err != nil {
				return eu, fmt.Errorf("component %q: %w", cd.Name, err)
			}
			eu.Components = append(eu.Components, schema.ComponentUse{Name: cd.Name, Allowed: allowed})
		}
		return eu, nil
	}
	allowed, err := allowedDomain(ed, codeLists)
	if err != nil {
		return eu, err
	}
	eu.Allowed = allowed
	return eu, nil
}

func allowedDomain(ed elementDecl, codeLists map[string]domain.Domain) (domain.Domain, error) {
	switch {
	case ed.Allowed != nil && ed.CodeList != "":
		return domain.Domain{}, fmt.Errorf("allowed and codeList are mutually exclusive")
	case ed.CodeList != "":
		d, ok := codeLists[ed.CodeList]
		if !ok {
			return domain.Domain{}, fmt.Errorf("unknown code list %q", ed.CodeList)
		}
		return d, nil
	case ed.Allowed != nil:
		return domain.FromSchema(ed.Allowed.toSchema())
	default:
		return domain.Any(), nil
	}
}

func (g *Grammar) decodeStates(node *yaml.Node) error {
	if node.Kind == 0 {
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("states must be a mapping")
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		state := node.Content[i].Value
		segNode := node.Content[i+1]
		if segNode.Kind != yaml.MappingNode {
			return fmt.Errorf("state %s: must map segment identifiers to instructions", state)
		}
		table := sequencedmap.New[string, []Instruction]()
		for j := 0; j+1 < len(segNode.Content); j += 2 {
			segment := segNode.Content[j].Value
			var decls []instructionDecl
			if err := segNode.Content[j+1].Decode(&decls); err != nil {
				return fmt.Errorf("state %s: segment %s: %w", state, segment, err)
			}
			if len(decls) == 0 {
				return fmt.Errorf("state %s: segment %s: no instructions", state, segment)
			}
			instrs := make([]Instruction, 0, len(decls))
			for k, d := range decls {
				in, err := g.compileInstruction(segment, d)
				if err != nil {
					return fmt.Errorf("state %s: segment %s: instruction %d: %w", state, segment, k, err)
				}
				instrs = append(instrs, in)
			}
			table.Set(segment, instrs)
		}
		g.states.Set(state, table)
	}
	return nil
}

func (g *Grammar) compileInstruction(segment string, d instructionDecl) (Instruction, error) {
	op, err := ParseOp(d.Op)
	if err != nil {
		return Instruction{}, err
	}
	if d.Pop < 0 {
		return Instruction{}, fmt.Errorf("pop must not be negative, got %d", d.Pop)
	}
	var use *schema.SegmentUse
	if d.Use != "" {
		u, ok := g.uses.Lookup(segment, d.Use)
		if !ok {
			return Instruction{}, fmt.Errorf("unknown use %s/%s", segment, d.Use)
		}
		use = u
	}
	return NewInstruction(op, d.Pop, use, d.Target), nil
}

// Uses returns the registry of compiled segment uses.
func (g *Grammar) Uses() *schema.Registry { return g.uses }

// States returns the automaton states in declaration order.
func (g *Grammar) States() []string {
	out := make([]string, 0, g.states.Len())
	for k := range g.states.All() {
		out = append(out, k)
	}
	return out
}

// Segments returns the segment identifiers state has instructions for.
func (g *Grammar) Segments(state string) []string {
	table, ok := g.states.Get(state)
	if !ok {
		return nil
	}
	out := make([]string, 0, table.Len())
	for k := range table.All() {
		out = append(out, k)
	}
	return out
}

// Instructions returns the candidate instructions for segment in state.
func (g *Grammar) Instructions(state, segment string) []Instruction {
	table, ok := g.states.Get(state)
	if !ok {
		return nil
	}
	instrs, _ := table.Get(segment)
	return instrs
}
