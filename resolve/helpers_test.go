package resolve

import (
	"testing"

	"github.com/speakeasy-api/edi"
	"github.com/speakeasy-api/edi/domain"
	"github.com/speakeasy-api/edi/schema"
)

// quiet returns options that do not log.
func quiet() Options {
	opts := DefaultOptions()
	opts.LogLevel = ""
	return opts
}

func oneOf(values ...string) schema.ElementUse {
	return schema.ElementUse{Allowed: domain.Of(values...)}
}

func allExcept(values ...string) schema.ElementUse {
	return schema.ElementUse{Allowed: domain.AllExcept(values...)}
}

func anyValue() schema.ElementUse {
	return schema.ElementUse{Allowed: domain.Any()}
}

func composite(components ...domain.Domain) schema.ElementUse {
	e := schema.ElementUse{}
	for _, c := range components {
		e.Components = append(e.Components, schema.ComponentUse{Allowed: c})
	}
	return e
}

func define(t *testing.T, r *schema.Registry, segment, name string, elements ...schema.ElementUse) *schema.SegmentUse {
	t.Helper()
	u, err := r.Define(segment, name, elements)
	if err != nil {
		t.Fatalf("Define(%s, %s) failed: %v", segment, name, err)
	}
	return u
}

func loop(pop int, use *schema.SegmentUse, target string) edi.Instruction {
	return edi.NewInstruction(edi.OpPushLoop, pop, use, target)
}

func segment(id string, elements ...edi.ElementToken) edi.SegmentToken {
	return edi.SegmentToken{ID: id, Elements: elements}
}

func simples(values ...string) []edi.ElementToken {
	out := make([]edi.ElementToken, len(values))
	for i, v := range values {
		out[i] = edi.SimpleElement(v)
	}
	return out
}

func targets(instructions []edi.Instruction) []string {
	out := make([]string, len(instructions))
	for i, in := range instructions {
		out[i] = in.Target()
	}
	return out
}
