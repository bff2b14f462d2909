package resolve

import (
	"bytes"
	"strings"
	"testing"

	"github.com/speakeasy-api/edi"
	"github.com/speakeasy-api/edi/domain"
	"github.com/speakeasy-api/edi/schema"
)

func TestParseLogLevel(t *testing.T) {
	tests := map[string]LogLevel{
		"error":   LevelError,
		"WARN":    LevelWarn,
		"warning": LevelWarn,
		"info":    LevelInfo,
		"Debug":   LevelDebug,
		"bogus":   LevelWarn,
	}
	for in, want := range tests {
		if got := ParseLogLevel(in); got != want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestTextLogger(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(LevelInfo, &buf, "%Y")

	log.Debugf("hidden %d", 1)
	log.With(map[string]any{"segment": "NM1", "mode": edi.Read}).Infof("shown %d", 2)
	log.Warnf("plain")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "[INFO] ") || !strings.HasSuffix(lines[0], "shown 2 mode=read segment=NM1") {
		t.Errorf("unexpected info line %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "[WARN] ") || !strings.HasSuffix(lines[1], " plain") {
		t.Errorf("unexpected warn line %q", lines[1])
	}
	year := strings.Fields(lines[1])[1]
	if len(year) != 4 {
		t.Errorf("timestamp %q does not follow the %%Y layout", year)
	}
	if log.Enabled(LevelDebug) || !log.Enabled(LevelError) {
		t.Error("Enabled does not follow the configured level")
	}
}

func TestResolverLogsInvalidValues(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.Logger = NewLogger(LevelDebug, &buf, "")

	r := schema.NewRegistry()
	a := define(t, r, "NM1", "a", oneOf("85"))
	b := define(t, r, "NM1", "b", oneOf("87"))
	res, err := Build([]edi.Instruction{loop(0, a, "a"), loop(0, b, "b")}, opts)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if _, err := res.Matches(segment("NM1", simples("99")...), false, edi.Insert); err != nil {
		t.Fatalf("Matches failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"building resolver for 2 instructions",
		"strategy=value-based",
		"computed basis",
		"disjoint position 0/-1: {85} | {87}",
		`ignoring invalid value "99" at NM101`,
		"rejecting segment",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestPreviewDomain(t *testing.T) {
	tests := []struct {
		d    domain.Domain
		want string
	}{
		{domain.Of("A", "B", "C"), "{A,B,+1}"},
		{domain.Of("A"), "{A}"},
		{domain.AllExcept("X", "Y", "Z"), "*-{X,Y,+1}"},
		{domain.Any(), "*"},
	}
	for _, tt := range tests {
		if got := previewDomain(tt.d, 2); got != tt.want {
			t.Errorf("previewDomain(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
