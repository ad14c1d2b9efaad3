package timer

import (
	"strconv"
	"time"
)

type tier struct {
	unit time.Duration
	name string
}

// Coarsest first, the first tier with a non-zero floored value wins.
var tiers = []tier{
	{unit: time.Millisecond, name: "ms"},
	{unit: time.Microsecond, name: "us"},
	{unit: time.Nanosecond, name: "ns"},
}

// Format renders d in a single unit, truncating towards zero. 1.9ms becomes "1 ms". It returns false when d is below
// one nanosecond, in which case nothing should be reported.
func Format(d time.Duration) (string, bool) {
	for _, t := range tiers {
		if v := d / t.unit; v > 0 {
			return strconv.FormatInt(int64(v), 10) + " " + t.name, true
		}
	}

	return "", false
}
