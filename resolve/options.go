package resolve

import (
	"github.com/speakeasy-api/edi"
	"github.com/speakeasy-api/edi/schema"
)

// CritiqueFunc performs structural checks on a segment beyond value
// disambiguation. It runs only for strict resolutions, before any value is
// inspected; a non-nil error aborts the resolution.
type CritiqueFunc func(tok edi.SegmentToken, uses []*schema.SegmentUse) error

// Options configures resolver construction.
type Options struct {
	// Critique is the strict-mode structural check. Nil means no check.
	Critique CritiqueFunc

	// Logging configuration
	LogLevel      string // Log level: "error", "warn", "info", "debug"; empty disables logging (default: "warn")
	LogTimeFormat string // strftime layout for log timestamps
	LogMaxValues  int    // Max values previewed per domain in log lines (default: 5)

	// Logger overrides LogLevel when set.
	Logger Logger
}

// DefaultOptions returns the default resolver configuration.
func DefaultOptions() Options {
	return Options{
		Critique:      nil,
		LogLevel:      "warn",
		LogTimeFormat: "%Y-%m-%dT%H:%M:%S.%f%z",
		LogMaxValues:  5,
	}
}

func (o Options) logger() Logger {
	switch {
	case o.Logger != nil:
		return o.Logger
	case o.LogLevel != "":
		return NewLogger(ParseLogLevel(o.LogLevel), nil, o.LogTimeFormat)
	default:
		return noopLogger{}
	}
}
