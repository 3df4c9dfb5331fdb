package parser

import (
	"strconv"
	"strings"
)

// ParsePrice converts a price token to its monetary value. Receipt
// amounts use either a dot or a comma as decimal separator; a comma is
// always a decimal point at these magnitudes, never a thousands
// separator. Token shape (digits, separator, two digits) is guaranteed
// by the capture groups of the calling patterns, so the parse error is
// discarded.
func ParsePrice(s string) float64 {
	f, _ := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
	return f
}
