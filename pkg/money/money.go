// Package money converts between the decimal amounts used at the edges
// (JSON documents, API payloads) and the integer cents used everywhere else.
package money

import (
	"math"
	"strconv"
)

// ToCents converts a decimal amount to cents with half-up rounding.
// Amounts beyond two decimal places are rounded, not truncated.
func ToCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// FromCents returns the decimal value of cents for display and serialization.
func FromCents(cents int64) float64 {
	return float64(cents) / 100
}

// Format renders cents as a plain decimal string with no forced decimal
// places: 240000 cents -> "2400", 1250 cents -> "12.5". This matches the
// numeric formatting in the stored records and text exports.
func Format(cents int64) string {
	return strconv.FormatFloat(FromCents(cents), 'f', -1, 64)
}
