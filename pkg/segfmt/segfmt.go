// Package segfmt renders segment tokens as delimited EDI text and resolver
// analyses as aligned tables.
package segfmt

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/speakeasy-api/edi"
	"github.com/speakeasy-api/edi/domain"
	"github.com/speakeasy-api/edi/resolve"
)

// Delimiters are the separator characters of an interchange.
type Delimiters struct {
	Segment    rune
	Element    rune
	Component  rune
	Repetition rune
}

// Default is the X12 delimiter set most implementation guides use.
var Default = Delimiters{Segment: '~', Element: '*', Component: ':', Repetition: '^'}

// ValidateDelimiters fills unset delimiters from Default and rejects sets
// that reuse a character or use a letter, digit or space.
func ValidateDelimiters(d Delimiters) (Delimiters, error) {
	if d.Segment == 0 {
		d.Segment = Default.Segment
	}
	if d.Element == 0 {
		d.Element = Default.Element
	}
	if d.Component == 0 {
		d.Component = Default.Component
	}
	if d.Repetition == 0 {
		d.Repetition = Default.Repetition
	}

	seen := map[rune]string{}
	for _, c := range []struct {
		name string
		r    rune
	}{
		{"segment", d.Segment},
		{"element", d.Element},
		{"component", d.Component},
		{"repetition", d.Repetition},
	} {
		if unicode.IsLetter(c.r) || unicode.IsDigit(c.r) || unicode.IsSpace(c.r) {
			return d, fmt.Errorf("invalid %s delimiter %q", c.name, c.r)
		}
		if other, ok := seen[c.r]; ok {
			return d, fmt.Errorf("%s and %s delimiters are both %q", other, c.name, c.r)
		}
		seen[c.r] = c.name
	}
	return d, nil
}

// Format renders tok as one terminated segment. Trailing blank elements and
// trailing empty components are omitted.
func Format(tok edi.SegmentToken, d Delimiters) string {
	var b strings.Builder
	b.WriteString(tok.ID)

	last := len(tok.Elements) - 1
	for last >= 0 && tok.Elements[last].IsBlank() {
		last--
	}
	for _, el := range tok.Elements[:last+1] {
		b.WriteRune(d.Element)
		writeElement(&b, el, d)
	}
	b.WriteRune(d.Segment)
	return b.String()
}

// FormatAll renders every token on its own line.
func FormatAll(toks []edi.SegmentToken, d Delimiters) string {
	lines := make([]string, len(toks))
	for i, tok := range toks {
		lines[i] = Format(tok, d)
	}
	return strings.Join(lines, "\n")
}

func writeElement(b *strings.Builder, el edi.ElementToken, d Delimiters) {
	switch el.Kind {
	case edi.Simple:
		b.WriteString(el.Value)
	case edi.Composite:
		comps := el.Components
		for len(comps) > 0 && comps[len(comps)-1] == "" {
			comps = comps[:len(comps)-1]
		}
		for i, c := range comps {
			if i > 0 {
				b.WriteRune(d.Component)
			}
			b.WriteString(c)
		}
	case edi.Repeated:
		for i, occ := range el.Repeats {
			if i > 0 {
				b.WriteRune(d.Repetition)
			}
			writeElement(b, occ, d)
		}
	}
}

// FormatBasis renders the distinguishing positions of basis as a table with
// one column per candidate instruction. Domains longer than maxValues are
// truncated; maxValues <= 0 disables truncation.
func FormatBasis(segment string, basis *resolve.Basis, maxValues int) string {
	instrs := basis.Instructions()

	header := []string{"POSITION", "KIND"}
	for _, in := range instrs {
		header = append(header, in.Target())
	}
	rows := [][]string{header}
	add := func(kind string, pls []resolve.PositionLookup) {
		for _, pl := range pls {
			row := []string{pl.Designator(segment), kind}
			for _, in := range instrs {
				row = append(row, cell(allowed(in, pl.Position), maxValues))
			}
			rows = append(rows, row)
		}
	}
	add("disjoint", basis.Disjoint())
	add("distinct", basis.Distinct())

	widths := make([]int, len(header))
	for _, row := range rows {
		for i, c := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(c))
		}
	}

	var b strings.Builder
	for _, row := range rows {
		for i, c := range row {
			if i == len(row)-1 {
				b.WriteString(c)
				break
			}
			b.WriteString(runewidth.FillRight(c, widths[i]))
			b.WriteString("  ")
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func allowed(in edi.Instruction, pos resolve.Position) domain.Domain {
	if in.Use() == nil {
		return domain.Any()
	}
	return in.Use().Allowed(pos.Element, pos.Component)
}

func cell(d domain.Domain, maxValues int) string {
	values, prefix := d.Values(), "{"
	if !d.IsFinite() {
		values, prefix = d.Excludes(), "*-{"
		if len(values) == 0 {
			return "*"
		}
	}
	if maxValues > 0 && len(values) > maxValues {
		return fmt.Sprintf("%s%s,+%d}", prefix, strings.Join(values[:maxValues], ","), len(values)-maxValues)
	}
	return prefix + strings.Join(values, ",") + "}"
}
