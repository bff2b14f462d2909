package schema

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/speakeasy-api/openapi/sequencedmap"
)

// lastUseID is shared by every registry so ids stay unique process-wide.
var lastUseID atomic.Uint32

// Registry interns segment uses. It assigns every defined use a fresh UseID
// and keeps them in declaration order under "<segment>/<name>" keys.
type Registry struct {
	mu   sync.RWMutex
	uses *sequencedmap.Map[string, *SegmentUse]
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		uses: sequencedmap.New[string, *SegmentUse](),
	}
}

func useKey(segment, name string) string {
	return segment + "/" + name
}

// Define compiles a new segment use. The elements slice is copied so later
// changes by the caller do not leak into the compiled use.
func (r *Registry) Define(segment, name string, elements []ElementUse) (*SegmentUse, error) {
	if segment == "" {
		return nil, fmt.Errorf("segment use %q: segment identifier is required", name)
	}
	if name == "" {
		return nil, fmt.Errorf("segment use for %s: name is required", segment)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := useKey(segment, name)
	if _, ok := r.uses.Get(key); ok {
		return nil, fmt.Errorf("segment use %s is already defined", key)
	}

	copied := make([]ElementUse, len(elements))
	for i, e := range elements {
		copied[i] = e
		if len(e.Components) > 0 {
			copied[i].Components = append([]ComponentUse(nil), e.Components...)
		}
	}

	u := &SegmentUse{
		id:       UseID(lastUseID.Add(1)),
		segment:  segment,
		name:     name,
		elements: copied,
	}
	r.uses.Set(key, u)
	return u, nil
}

// Lookup returns the use named name for segment.
func (r *Registry) Lookup(segment, name string) (*SegmentUse, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.uses.Get(useKey(segment, name))
}

// Len returns the number of defined uses.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.uses.Len()
}

// Uses returns every defined use in declaration order.
func (r *Registry) Uses() []*SegmentUse {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*SegmentUse, 0, r.uses.Len())
	for _, u := range r.uses.All() {
		out = append(out, u)
	}
	return out
}
