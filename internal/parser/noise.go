package parser

import (
	"regexp"
	"strings"
)

// noisePredicate reports whether a trimmed line carries no purchasable
// item and must be discarded before pattern matching.
type noisePredicate func(line string) bool

func matchRe(expr string) noisePredicate {
	re := regexp.MustCompile(expr)
	return re.MatchString
}

var (
	ahBannerRe  = regexp.MustCompile(`(?i)^ah\s`)
	trailingAmt = regexp.MustCompile(`\d+[.,]\d{2}\s*$`)
)

// noisePredicates is evaluated in order; any hit discards the line.
// Grouped by noise family: store banners, totals, payment, date/time,
// loyalty programs, card terminal metadata, separators and bare codes.
var noisePredicates = []noisePredicate{
	// store banner
	matchRe(`(?i)^albert\s*heijn`),
	// "AH ..." banner lines; product lines also start with AH but end
	// in a price, so those are let through (RE2 has no lookahead)
	func(line string) bool {
		return ahBannerRe.MatchString(line) && !trailingAmt.MatchString(line)
	},

	// subtotal / total labels
	matchRe(`(?i)^\d+\s+subtotaal`),
	matchRe(`(?i)^subtotaal`),
	matchRe(`(?i)^totaal`),

	// payment
	matchRe(`(?i)^pin\s`),
	matchRe(`(?i)^pinnen`),
	matchRe(`(?i)^betaald`),

	// receipt header fields
	matchRe(`(?i)^datum`),
	matchRe(`(?i)^kassanr`),
	matchRe(`(?i)^bon\s*nr`),
	matchRe(`(?i)^btw`),

	// loyalty and rewards programs
	matchRe(`(?i)^bonus\s`),
	matchRe(`(?i)^kras\s`),
	matchRe(`(?i)^uw\s+voordeel`),
	matchRe(`(?i)^waarvan`),
	matchRe(`(?i)^bonus\s*box`),
	matchRe(`(?i)^\d+\s+koopzegels`),
	matchRe(`(?i)^koopzegels`),
	matchRe(`(?i)^spaaracties`),
	matchRe(`(?i)^\d+\s+espaar`),
	matchRe(`(?i)^\d+\s+mijn\s+ah`),
	matchRe(`(?i)^\d+\s+kraskaart`),
	matchRe(`(?i)^aantal\s+omschrijving`),
	matchRe(`(?i)^bonuskaart`),
	matchRe(`(?i)^airmiles`),

	// card terminal metadata
	matchRe(`(?i)^poi:`),
	matchRe(`(?i)^klantticket`),
	matchRe(`(?i)^merchant`),
	matchRe(`(?i)^transactie`),
	matchRe(`(?i)^par:`),
	matchRe(`(?i)^maestro`),
	matchRe(`(?i)^kaart\s`),
	matchRe(`(?i)^betaling`),
	matchRe(`(?i)^autorisatie`),
	matchRe(`(?i)^contactless`),
	matchRe(`(?i)^geverifieerd`),
	matchRe(`(?i)^klantappar`),
	matchRe(`(?i)^aat$`), // OCR wraps "klantapparaat" onto its own line
	matchRe(`(?i)^vragen\s+over`),
	matchRe(`(?i)^onze\s+collega`),
	matchRe(`(?i)^helpen\s+je`),

	// bare numeric codes, dates, times, percentages
	matchRe(`^\d{4}$`),
	matchRe(`^\d{2}[-./]\d{2}[-./]\d{2,4}`),
	matchRe(`^\d{2}:\d{2}\s+\d`),
	matchRe(`^\d+%\s`),
	matchRe(`(?i)^W\s+MAESTRO`),
	matchRe(`^\d{4}\s+\d+\s+\d+$`),

	// decorative separators, transaction IDs, terminal codes
	matchRe(`^-+$`),
	matchRe(`^=+$`),
	matchRe(`^\*+$`),
	matchRe(`^[A-F0-9]{20,}`),
	matchRe(`^\(A\d+\)`),
}

// IsNoise reports whether a receipt line should be excluded from item
// pattern matching. Runs strictly before MatchLine so lines that merely
// resemble a price pattern (a subtotal, say) never produce items.
func IsNoise(line string) bool {
	line = strings.TrimSpace(line)
	for _, match := range noisePredicates {
		if match(line) {
			return true
		}
	}
	return false
}
