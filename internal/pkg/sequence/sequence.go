// Package sequence produces the human-readable record identifiers used across
// the back office ("C003", "CT045", "P019"): a fixed letter prefix followed by
// a zero-padded number.
//
// The generator is advisory only. It derives the next identifier from the
// highest identifier currently visible, so two sessions can be handed the same
// suggestion; the database primary key decides which commit wins. There is no
// reservation and no locking.
package sequence

import (
	"fmt"
	"strconv"
	"strings"
)

type Format struct {
	Prefix string
	Width  int
}

var (
	Customers      = Format{Prefix: "C", Width: 3}
	InsuranceTypes = Format{Prefix: "T", Width: 3}
	Contracts      = Format{Prefix: "CT", Width: 3}
	Assessments    = Format{Prefix: "A", Width: 3}
	Payouts        = Format{Prefix: "P", Width: 3}
)

// Start returns the first identifier of the series, e.g. "C001".
func (f Format) Start() string {
	return fmt.Sprintf("%s%0*d", f.Prefix, f.Width, 1)
}

// Next returns the identifier following current. An empty current, a foreign
// prefix or an unparsable numeric suffix all fall back to Start; a
// non-conforming row sitting above conforming ones can therefore lead to a
// duplicate suggestion. The suffix keeps its zero padding until the number
// outgrows it ("C099" -> "C100").
func (f Format) Next(current string) string {
	if current == "" || !strings.HasPrefix(current, f.Prefix) {
		return f.Start()
	}
	n, err := strconv.Atoi(current[len(f.Prefix):])
	if err != nil || n < 0 {
		return f.Start()
	}
	return fmt.Sprintf("%s%0*d", f.Prefix, f.Width, n+1)
}

// Valid reports whether id conforms to the format, prefix plus a numeric
// suffix of at least Width digits.
func (f Format) Valid(id string) bool {
	if !strings.HasPrefix(id, f.Prefix) {
		return false
	}
	suffix := id[len(f.Prefix):]
	if len(suffix) < f.Width {
		return false
	}
	_, err := strconv.Atoi(suffix)
	return err == nil
}
