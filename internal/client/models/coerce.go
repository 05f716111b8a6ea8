package models

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	countPrefix  = regexp.MustCompile(`^[+-]?\d+`)
	amountPrefix = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)`)
)

// CoerceCount converts form input to a non-negative count. Like a form's
// integer parse it reads the leading digits ("12abc" and "12.5" are 12);
// input without leading digits becomes 0 and negatives are clamped to 0.
func CoerceCount(s string) int64 {
	n, err := strconv.ParseInt(countPrefix.FindString(strings.TrimSpace(s)), 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// CoerceAmount converts form input to a non-negative amount. It reads the
// leading number, keeping cents: "12.5" is 12.5, "40usd" is 40.
func CoerceAmount(s string) float64 {
	f, err := strconv.ParseFloat(amountPrefix.FindString(strings.TrimSpace(s)), 64)
	if err != nil || f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// CoerceBool treats y, yes, true and 1 (any case) as true.
func CoerceBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes", "true", "1":
		return true
	default:
		return false
	}
}
