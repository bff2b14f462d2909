package playground

import (
	"errors"
	"fmt"
	"strings"

	"github.com/speakeasy-api/edi/resolve"
)

// FormatResolveErrors turns resolver errors into a user-facing message.
func FormatResolveErrors(errs []error) string {
	if len(errs) == 0 {
		return "Resolution failed, but no additional details were provided."
	}

	var b strings.Builder
	b.WriteString("Resolution failed (strict mode).\n")

	for _, err := range errs {
		msg, loc, hint := classifyAndHint(err)

		fmt.Fprintf(&b, "- %s\n", msg)
		if loc != "" {
			fmt.Fprintf(&b, "  Location: %s\n", loc)
		}
		if hint != "" {
			fmt.Fprintf(&b, "  How to fix: %s\n", hint)
		}
		fmt.Fprintf(&b, "  Details: %s\n", err)
	}

	return b.String()
}

func classifyAndHint(err error) (msg, loc, hint string) {
	var invalid *resolve.InvalidElementValueError
	switch {
	case errors.As(err, &invalid):
		msg = fmt.Sprintf("Value %q is not allowed by any candidate segment use.", invalid.Value)
		loc = invalid.Designator()
		hint = "Check the value against the code lists of the grammar, or resolve in lenient mode to ignore it."
	case errors.Is(err, errNoInstructions):
		msg = "The current state has no instructions for this segment."
		hint = "Check the segment order, or the state the run starts from."
	default:
		msg = "Resolution error."
	}
	return msg, loc, hint
}
