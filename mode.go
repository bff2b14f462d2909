package edi

import "fmt"

// Mode tells a resolver why it is being consulted.
type Mode uint8

const (
	// Insert extends the parse tree with a new segment.
	Insert Mode = iota
	// Read locates a segment inside an already built tree.
	Read
)

func (m Mode) String() string {
	switch m {
	case Insert:
		return "insert"
	case Read:
		return "read"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// ParseMode parses "insert" or "read".
func ParseMode(s string) (Mode, error) {
	switch s {
	case "insert":
		return Insert, nil
	case "read":
		return Read, nil
	default:
		return 0, fmt.Errorf("unknown mode %q", s)
	}
}
