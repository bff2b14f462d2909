// Package domain implements the sets of values a schema allows at one
// element or component position.
//
// A Domain is either finite (an explicit list of values) or infinite, in which
// case it is the complement of a finite exclusion set. Domains are immutable
// and safe to share between goroutines.
package domain

import (
	"strconv"
	"strings"

	"bitbucket.org/creachadair/stringset"
)

// Domain is a set of allowed values.
type Domain struct {
	// set holds the members when the domain is finite, and the excluded
	// values when it is infinite.
	set      stringset.Set
	infinite bool
}

// Of returns the finite domain containing exactly values.
func Of(values ...string) Domain {
	return Domain{set: stringset.New(values...)}
}

// AllExcept returns the infinite domain containing every value except the
// given ones.
func AllExcept(values ...string) Domain {
	return Domain{set: stringset.New(values...), infinite: true}
}

// Any returns the domain containing every value.
func Any() Domain {
	return Domain{infinite: true}
}

// Empty returns the domain containing no value.
func Empty() Domain {
	return Domain{}
}

// IsFinite reports whether d can be enumerated.
func (d Domain) IsFinite() bool { return !d.infinite }

// IsEmpty reports whether d contains no value.
func (d Domain) IsEmpty() bool { return !d.infinite && d.set.Empty() }

// Len returns the number of members of a finite domain, or -1 for an
// infinite one.
func (d Domain) Len() int {
	if d.infinite {
		return -1
	}
	return d.set.Len()
}

// Values enumerates a finite domain in sorted order. It returns nil for an
// infinite domain.
func (d Domain) Values() []string {
	if d.infinite {
		return nil
	}
	return d.set.Elements()
}

// Excludes returns the sorted exclusion set of an infinite domain. It returns
// nil for a finite domain.
func (d Domain) Excludes() []string {
	if !d.infinite {
		return nil
	}
	return d.set.Elements()
}

// Contains reports whether v is a member of d.
func (d Domain) Contains(v string) bool {
	if d.infinite {
		return !d.set.Contains(v)
	}
	return d.set.Contains(v)
}

// Complement returns the domain of every value not in d.
func (d Domain) Complement() Domain {
	return Domain{set: d.set, infinite: !d.infinite}
}

// Union returns d ∪ o.
func (d Domain) Union(o Domain) Domain {
	switch {
	case !d.infinite && !o.infinite:
		return Domain{set: d.set.Union(o.set)}
	case d.infinite && o.infinite:
		return Domain{set: d.set.Intersect(o.set), infinite: true}
	case d.infinite:
		return Domain{set: d.set.Diff(o.set), infinite: true}
	default:
		return Domain{set: o.set.Diff(d.set), infinite: true}
	}
}

// Intersect returns d ∩ o.
func (d Domain) Intersect(o Domain) Domain {
	switch {
	case !d.infinite && !o.infinite:
		return Domain{set: d.set.Intersect(o.set)}
	case d.infinite && o.infinite:
		return Domain{set: d.set.Union(o.set), infinite: true}
	case d.infinite:
		return Domain{set: o.set.Diff(d.set)}
	default:
		return Domain{set: d.set.Diff(o.set)}
	}
}

// DisjointFrom reports whether d and o have no value in common. Two infinite
// domains are never disjoint.
func (d Domain) DisjointFrom(o Domain) bool {
	switch {
	case !d.infinite && !o.infinite:
		return !d.set.Intersects(o.set)
	case d.infinite && o.infinite:
		return false
	case d.infinite:
		return o.set.IsSubset(d.set)
	default:
		return d.set.IsSubset(o.set)
	}
}

// Equal reports whether d and o contain the same values.
func (d Domain) Equal(o Domain) bool {
	return d.infinite == o.infinite && d.set.Equals(o.set)
}

// String renders d as {A,B} for finite domains and *-{X,Y} for infinite ones.
func (d Domain) String() string {
	var b strings.Builder
	if d.infinite {
		b.WriteString("*")
		if d.set.Empty() {
			return b.String()
		}
		b.WriteString("-")
	}
	b.WriteByte('{')
	for i, v := range d.set.Elements() {
		if i > 0 {
			b.WriteByte(',')
		}
		if needsQuote(v) {
			b.WriteString(strconv.Quote(v))
		} else {
			b.WriteString(v)
		}
	}
	b.WriteByte('}')
	return b.String()
}

func needsQuote(s string) bool {
	if s == "" {
		return true
	}
	for _, r := range s {
		if r <= ' ' || r == ',' || r == '"' || r == '{' || r == '}' {
			return true
		}
	}
	return false
}
