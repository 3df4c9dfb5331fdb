package parser

import (
	"regexp"
	"strings"
)

var (
	subtotalRe = regexp.MustCompile(`(?i)\bSUBTOTAAL\s+(\d+[.,]\d{2})`)
	totalRe    = regexp.MustCompile(`(?i)\bTOTAAL\s+(\d+[.,]\d{2})`)
)

// ExtractTotal scans the full text for the purchase total. SUBTOTAAL is
// preferred over TOTAAL: when a receipt prints both, the subtotal is the
// pre-bonus amount of goods while the total is what was charged after
// loyalty discounts. Returns 0 when neither label is found; the caller
// derives the total from the items instead.
func ExtractTotal(text string) float64 {
	lines := strings.Split(text, "\n")

	for _, line := range lines {
		if m := subtotalRe.FindStringSubmatch(line); m != nil {
			return ParsePrice(m[1])
		}
	}
	for _, line := range lines {
		if m := totalRe.FindStringSubmatch(line); m != nil {
			return ParsePrice(m[1])
		}
	}
	return 0
}
