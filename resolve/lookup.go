package resolve

import (
	"bitbucket.org/creachadair/stringset"
	"github.com/speakeasy-api/edi/domain"
)

// Lookup maps a concrete value to the basis instructions whose domain at one
// position contains it. It is fully built by newLookup and read-only after.
type Lookup struct {
	// fixed holds every value some domain mentions explicitly, as a member of
	// a finite domain or as an exclusion of an infinite one.
	fixed map[string][]int
	// fallback answers for every other value: the instructions whose domain
	// is infinite.
	fallback []int
}

func newLookup(domains []domain.Domain) *Lookup {
	mentioned := stringset.New()
	for _, d := range domains {
		if d.IsFinite() {
			mentioned.Add(d.Values()...)
		} else {
			mentioned.Add(d.Excludes()...)
		}
	}

	l := &Lookup{fixed: make(map[string][]int, mentioned.Len())}
	for v := range mentioned {
		var idx []int
		for i, d := range domains {
			if d.Contains(v) {
				idx = append(idx, i)
			}
		}
		l.fixed[v] = idx
	}
	for i, d := range domains {
		if !d.IsFinite() {
			l.fallback = append(l.fallback, i)
		}
	}
	return l
}

// Get returns the indexes, into the basis instruction list, of the
// instructions allowing value. The result must not be modified.
func (l *Lookup) Get(value string) []int {
	if idx, ok := l.fixed[value]; ok {
		return idx
	}
	return l.fallback
}

// Values returns the explicitly mentioned values in sorted order.
func (l *Lookup) Values() []string {
	values := stringset.NewSize(len(l.fixed))
	for v := range l.fixed {
		values.Add(v)
	}
	return values.Elements()
}

// Fallback returns the instructions matching any value not in Values.
func (l *Lookup) Fallback() []int {
	return l.fallback
}
