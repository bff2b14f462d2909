package resolve

import "github.com/speakeasy-api/edi"

// deconstruct extracts the value tok carries at pos. Only the first
// occurrence of a repeated element is inspected. ok is false when the
// position is absent or blank.
func deconstruct(elements []edi.ElementToken, pos Position) (value string, ok bool) {
	if pos.Element < 0 || pos.Element >= len(elements) {
		return "", false
	}
	e := elements[pos.Element].First()
	if e.IsBlank() {
		return "", false
	}
	if pos.Component < 0 {
		if e.Kind == edi.Simple {
			return e.Value, true
		}
		return e.Component(0)
	}
	return e.Component(pos.Component)
}
