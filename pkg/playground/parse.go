package playground

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/speakeasy-api/edi"
	"github.com/speakeasy-api/edi/pkg/segfmt"
)

// ParseSegments splits delimited interchange text into segment tokens.
// Whitespace around segments is ignored, so one segment per line is fine.
func ParseSegments(text string, d segfmt.Delimiters) ([]edi.SegmentToken, error) {
	d, err := segfmt.ValidateDelimiters(d)
	if err != nil {
		return nil, err
	}

	var toks []edi.SegmentToken
	for i, raw := range strings.Split(text, string(d.Segment)) {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		tok, err := parseSegment(raw, d)
		if err != nil {
			return nil, fmt.Errorf("segment %d: %w", i+1, err)
		}
		toks = append(toks, tok)
	}
	return toks, nil
}

func parseSegment(raw string, d segfmt.Delimiters) (edi.SegmentToken, error) {
	fields := strings.Split(raw, string(d.Element))
	id := fields[0]
	if id == "" {
		return edi.SegmentToken{}, fmt.Errorf("missing segment identifier in %q", raw)
	}
	for _, r := range id {
		if !unicode.IsUpper(r) && !unicode.IsDigit(r) {
			return edi.SegmentToken{}, fmt.Errorf("invalid segment identifier %q", id)
		}
	}

	tok := edi.SegmentToken{ID: id}
	for _, f := range fields[1:] {
		tok.Elements = append(tok.Elements, parseElement(f, d))
	}
	return tok, nil
}

func parseElement(f string, d segfmt.Delimiters) edi.ElementToken {
	if strings.ContainsRune(f, d.Repetition) {
		parts := strings.Split(f, string(d.Repetition))
		occs := make([]edi.ElementToken, len(parts))
		for i, p := range parts {
			occs[i] = parseOccurrence(p, d)
		}
		return edi.RepeatedElement(occs...)
	}
	return parseOccurrence(f, d)
}

func parseOccurrence(f string, d segfmt.Delimiters) edi.ElementToken {
	if strings.ContainsRune(f, d.Component) {
		return edi.CompositeElement(strings.Split(f, string(d.Component))...)
	}
	return edi.SimpleElement(f)
}
