package parser

import (
	"regexp"
	"strings"
)

// day, month, year with -, . or / separators; year may be 2 or 4 digits
var dateRe = regexp.MustCompile(`(\d{1,2})[-./](\d{1,2})[-./](\d{2,4})`)

// ExtractDate scans the full text for the first date token and returns
// it in YYYY-MM-DD form. Two-digit years are expanded into this century.
// Without any date token the parser's clock supplies today's date.
func (p *Parser) ExtractDate(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if m := dateRe.FindStringSubmatch(line); m != nil {
			day := pad2(m[1])
			month := pad2(m[2])
			year := m[3]
			if len(year) == 2 {
				year = "20" + year
			}
			return year + "-" + month + "-" + day
		}
	}
	return p.clock.Now().UTC().Format("2006-01-02")
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
