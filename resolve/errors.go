package resolve

import (
	"errors"
	"fmt"

	"github.com/speakeasy-api/edi/schema"
)

// InvalidElementValueError reports, in strict mode, a value at a
// distinguishing position that no candidate instruction allows.
type InvalidElementValueError struct {
	Segment   string
	Element   int // 1-based
	Component int // 1-based; 0 when the element is not composite
	Value     string
}

func (e *InvalidElementValueError) Error() string {
	return fmt.Sprintf("invalid value %q for %s", e.Value, e.Designator())
}

// Designator returns the EDI reference of the offending position, e.g. NM101.
func (e *InvalidElementValueError) Designator() string {
	return schema.Designator(e.Segment, e.Element, e.Component)
}

// IsInvalidElementValue reports whether err wraps an InvalidElementValueError.
func IsInvalidElementValue(err error) bool {
	var target *InvalidElementValueError
	return errors.As(err, &target)
}

func invalidValue(segment string, pos Position, value string) error {
	return &InvalidElementValueError{
		Segment:   segment,
		Element:   pos.Element + 1,
		Component: pos.Component + 1,
		Value:     value,
	}
}
