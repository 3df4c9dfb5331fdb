package ocr

import (
	"regexp"
	"strings"
)

var (
	reCRLF       = regexp.MustCompile(`\r\n?`)
	reTabs       = regexp.MustCompile(`\t+`)
	reMultiBlank = regexp.MustCompile(`\n{3,}`)
)

// Normalize cleans line endings and blank-line runs without touching
// runs of spaces inside a line: column spacing is significant to the
// item patterns (two or more spaces separate the quantity, name and
// price fields), so it must survive normalization intact.
func Normalize(s string) string {
	if s == "" {
		return s
	}
	s = reCRLF.ReplaceAllString(s, "\n")
	s = reTabs.ReplaceAllString(s, "   ")
	s = reMultiBlank.ReplaceAllString(s, "\n\n")

	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

var (
	reBonDate   = regexp.MustCompile(`\d{1,2}[-./]\d{1,2}[-./]\d{2,4}`)
	reBonAmount = regexp.MustCompile(`\d+[.,]\d{2}`)
	reBonLabel  = regexp.MustCompile(`(?i)totaal|bonuskaart|statiegeld|albert\s*heijn`)
)

// heuristicConfidence estimates how receipt-like the decoded text is.
// Dates, amounts and the retailer's own labels each add weight.
func heuristicConfidence(txt string) float32 {
	score := float32(0.2) // base
	if reBonDate.MatchString(txt) {
		score += 0.2
	}
	if reBonAmount.MatchString(txt) {
		score += 0.2
	}
	if reBonLabel.MatchString(txt) {
		score += 0.25
	}
	if len(txt) > 120 {
		score += 0.1
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}
