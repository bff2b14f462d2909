package domain

import (
	"fmt"

	"github.com/speakeasy-api/openapi/jsonschema/oas3"
	"gopkg.in/yaml.v3"
)

// FromSchema converts a JSON Schema fragment into a Domain.
//
// Only the value-set keywords are interpreted: enum, not, anyOf and allOf.
// A schema without any of them allows every value. A nil schema is Bottom and
// allows nothing.
func FromSchema(s *oas3.Schema) (Domain, error) {
	if s == nil {
		return Empty(), nil
	}

	d := Any()
	if len(s.Enum) > 0 {
		values := make([]string, 0, len(s.Enum))
		for _, n := range s.Enum {
			if n == nil || n.Kind != yaml.ScalarNode {
				return Domain{}, fmt.Errorf("enum values must be scalars")
			}
			values = append(values, n.Value)
		}
		d = Of(values...)
	}

	if len(s.AnyOf) > 0 {
		alt := Empty()
		for i, branch := range s.AnyOf {
			if branch == nil || branch.Left == nil {
				return Domain{}, fmt.Errorf("anyOf[%d]: references and boolean schemas are not supported", i)
			}
			bd, err := FromSchema(branch.Left)
			if err != nil {
				return Domain{}, fmt.Errorf("anyOf[%d]: %w", i, err)
			}
			alt = alt.Union(bd)
		}
		d = d.Intersect(alt)
	}

	for i, branch := range s.AllOf {
		if branch == nil || branch.Left == nil {
			return Domain{}, fmt.Errorf("allOf[%d]: references and boolean schemas are not supported", i)
		}
		bd, err := FromSchema(branch.Left)
		if err != nil {
			return Domain{}, fmt.Errorf("allOf[%d]: %w", i, err)
		}
		d = d.Intersect(bd)
	}

	if s.Not != nil {
		if s.Not.Left == nil {
			return Domain{}, fmt.Errorf("not: references and boolean schemas are not supported")
		}
		nd, err := FromSchema(s.Not.Left)
		if err != nil {
			return Domain{}, fmt.Errorf("not: %w", err)
		}
		d = d.Intersect(nd.Complement())
	}

	return d, nil
}

// ToSchema renders d as a string schema: an enum when finite, a not-enum when
// it has exclusions, and a bare string type otherwise. An empty domain is
// Bottom (nil).
func ToSchema(d Domain) *oas3.Schema {
	if d.IsEmpty() {
		return nil
	}
	schema := &oas3.Schema{
		Type: oas3.NewTypeFromString(oas3.SchemaTypeString),
	}
	if d.IsFinite() {
		schema.Enum = enumNodes(d.Values())
		return schema
	}
	if excl := d.Excludes(); len(excl) > 0 {
		schema.Not = oas3.NewJSONSchemaFromSchema[oas3.Referenceable](&oas3.Schema{
			Enum: enumNodes(excl),
		})
	}
	return schema
}

func enumNodes(values []string) []*yaml.Node {
	nodes := make([]*yaml.Node, 0, len(values))
	for _, v := range values {
		nodes = append(nodes, &yaml.Node{Kind: yaml.ScalarNode, Value: v, Tag: "!!str"})
	}
	return nodes
}
