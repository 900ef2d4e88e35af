// Package timestamp converts the chat platform's fractional event timestamp
// into a stable two-part stamp used as the correlation key between posts and
// the reactions attached to them.
package timestamp

import (
	"fmt"
	"strconv"
	"strings"
)

// Stamp is the decomposed form of a platform timestamp. Both components are
// compared with exact integer equality; the raw string is never stored and
// the value is never treated as a float.
type Stamp struct {
	Coarse int64
	Fine   int64
}

// String renders the stamp for logs and messages.
func (s Stamp) String() string {
	return fmt.Sprintf("%d.%d", s.Coarse, s.Fine)
}

// FormatError reports a raw timestamp that violates the "<integer>.<integer>"
// shape. Callers must drop the triggering event and continue.
type FormatError struct {
	Raw    string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("malformed timestamp %q: %s", e.Raw, e.Reason)
}

// Decompose splits a raw platform timestamp into its coarse and fine integer
// components. Decompose("1499999999.0001") yields {1499999999, 1}.
func Decompose(raw string) (Stamp, error) {
	coarse, fine, ok := strings.Cut(raw, ".")
	if !ok {
		return Stamp{}, &FormatError{Raw: raw, Reason: "no decimal point"}
	}

	coarseVal, err := strconv.ParseInt(coarse, 10, 64)
	if err != nil {
		return Stamp{}, &FormatError{Raw: raw, Reason: "coarse component is not an integer"}
	}

	fineVal, err := strconv.ParseInt(fine, 10, 64)
	if err != nil {
		return Stamp{}, &FormatError{Raw: raw, Reason: "fine component is not an integer"}
	}

	return Stamp{Coarse: coarseVal, Fine: fineVal}, nil
}
