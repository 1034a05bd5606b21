package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RoundToCents rounds a dollar amount to 2 decimal places. The engine rounds
// the unit price once, before any minor-unit conversion, so rounding error
// never compounds across quantity multiplication.
func RoundToCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// ToMinorUnits converts a dollar amount to integer cents using standard
// rounding to the nearest cent. Payment collaborators only accept minor units.
func ToMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// FormatUSD formats an integer amount of cents as a string like "$1,234.56".
// Uses comma as thousands separator.
func FormatUSD(cents int64) string {
	neg := cents < 0
	if neg {
		cents = -cents
	}

	dollars := cents / 100
	remainder := cents % 100

	s := strconv.FormatInt(dollars, 10)

	var b strings.Builder
	// Pre-allocate: digits + separators + "$" + ".cc"
	b.Grow(len(s) + len(s)/3 + 4)
	if neg {
		b.WriteString("-$")
	} else {
		b.WriteString("$")
	}

	// Insert separators from the left.
	rem := len(s) % 3
	if rem == 0 {
		rem = 3
	}
	b.WriteString(s[:rem])
	for i := rem; i < len(s); i += 3 {
		b.WriteByte(',')
		b.WriteString(s[i : i+3])
	}

	b.WriteString(fmt.Sprintf(".%02d", remainder))
	return b.String()
}
