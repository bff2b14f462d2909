package resolve

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/itchyny/timefmt-go"
	"github.com/speakeasy-api/edi/domain"
)

// LogLevel represents the severity level for logs.
type LogLevel int

const (
	LevelError LogLevel = iota
	LevelWarn
	LevelInfo
	LevelDebug
)

func (l LogLevel) String() string {
	switch l {
	case LevelError:
		return "ERROR"
	case LevelWarn:
		return "WARN"
	case LevelInfo:
		return "INFO"
	case LevelDebug:
		return "DEBUG"
	default:
		return "UNKNOWN"
	}
}

// ParseLogLevel parses a string into a LogLevel. Unknown names map to
// LevelWarn.
func ParseLogLevel(s string) LogLevel {
	switch strings.ToUpper(s) {
	case "ERROR":
		return LevelError
	case "WARN", "WARNING":
		return LevelWarn
	case "INFO":
		return LevelInfo
	case "DEBUG":
		return LevelDebug
	default:
		return LevelWarn
	}
}

// Logger is the interface resolvers log through.
type Logger interface {
	// Enabled reports whether messages at level are emitted.
	Enabled(level LogLevel) bool

	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)

	// With returns a child logger augmented with the provided fields.
	With(fields map[string]any) Logger
}

// textLogger writes single-line records:
//
//	[LEVEL] ts msg key1=val1 key2=val2 ...
//
// Keys are sorted so output is deterministic. Child loggers created by With
// share the writer and its lock.
type textLogger struct {
	out        io.Writer
	level      LogLevel
	timeFormat string
	fields     map[string]any
	mu         *sync.Mutex
}

// NewLogger creates a text logger emitting messages up to level.
// If w is nil, os.Stderr is used. An empty timeFormat selects the default
// strftime layout.
func NewLogger(level LogLevel, w io.Writer, timeFormat string) Logger {
	if w == nil {
		w = os.Stderr
	}
	if timeFormat == "" {
		timeFormat = DefaultOptions().LogTimeFormat
	}
	return &textLogger{
		out:        w,
		level:      level,
		timeFormat: timeFormat,
		fields:     map[string]any{},
		mu:         &sync.Mutex{},
	}
}

func (l *textLogger) Enabled(level LogLevel) bool { return level <= l.level }

func (l *textLogger) With(fields map[string]any) Logger {
	if len(fields) == 0 {
		return l
	}
	merged := maps.Clone(l.fields)
	maps.Copy(merged, fields)
	child := *l
	child.fields = merged
	return &child
}

func (l *textLogger) Debugf(format string, args ...any) { l.logf(LevelDebug, format, args...) }
func (l *textLogger) Infof(format string, args ...any)  { l.logf(LevelInfo, format, args...) }
func (l *textLogger) Warnf(format string, args ...any)  { l.logf(LevelWarn, format, args...) }
func (l *textLogger) Errorf(format string, args ...any) { l.logf(LevelError, format, args...) }

func (l *textLogger) logf(level LogLevel, format string, args ...any) {
	if !l.Enabled(level) {
		return
	}
	line := l.format(time.Now(), level, fmt.Sprintf(format, args...))

	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = io.WriteString(l.out, line)
}

func (l *textLogger) format(ts time.Time, level LogLevel, msg string) string {
	var b strings.Builder
	b.Grow(128)

	b.WriteByte('[')
	b.WriteString(level.String())
	b.WriteString("] ")
	b.WriteString(timefmt.Format(ts.UTC(), l.timeFormat))
	b.WriteByte(' ')
	b.WriteString(msg)

	for _, k := range slices.Sorted(maps.Keys(l.fields)) {
		b.WriteByte(' ')
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(safeSprint(l.fields[k]))
	}

	b.WriteByte('\n')
	return b.String()
}

func safeSprint(v any) string {
	switch t := v.(type) {
	case string:
		if strings.IndexFunc(t, func(r rune) bool { return r <= ' ' }) >= 0 {
			return fmt.Sprintf("%q", t)
		}
		return t
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(v)
	}
}

// noopLogger discards all output.
type noopLogger struct{}

func (noopLogger) Enabled(LogLevel) bool        { return false }
func (noopLogger) Debugf(string, ...any)        {}
func (noopLogger) Infof(string, ...any)         {}
func (noopLogger) Warnf(string, ...any)         {}
func (noopLogger) Errorf(string, ...any)        {}
func (l noopLogger) With(map[string]any) Logger { return l }

// previewDomain renders d compactly, listing at most limit values.
func previewDomain(d domain.Domain, limit int) string {
	if d.IsFinite() {
		return "{" + truncateList(d.Values(), limit) + "}"
	}
	excl := d.Excludes()
	if len(excl) == 0 {
		return "*"
	}
	return "*-{" + truncateList(excl, limit) + "}"
}

// truncateList joins items with "," and appends +N if truncated.
func truncateList(items []string, max int) string {
	if max <= 0 || len(items) <= max {
		return strings.Join(items, ",")
	}
	return strings.Join(items[:max], ",") + fmt.Sprintf(",+%d", len(items)-max)
}
