package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pietersz/kassabon/constants"
	"github.com/pietersz/kassabon/internal/entity"
)

// itemPattern is one printed layout of a purchasable line.
type itemPattern struct {
	name  string
	re    *regexp.Regexp
	build func(m []string) entity.ReceiptItem
}

var (
	// +STATIEGELD   0,15
	depositRe = regexp.MustCompile(`^\+?STATIEGELD\s+(\d+[.,]\d{2})\s*$`)

	// 2   ROERBAKGR   2,99   5,98 B
	// quantity, name, optional unit price, line total, optional bonus flag
	columnarRe = regexp.MustCompile(`^(\d+)\s{2,}(.+?)\s{2,}(?:(\d+[.,]\d{2})\s{2,})?(\d+[.,]\d{2})\s*[BK]?\s*$`)

	// 2 x Bananen   2.38
	multiplierRe = regexp.MustCompile(`^(\d+)\s*[xX]\s*(.+?)\s+(\d+[.,]\d{2})\s*$`)

	// AH Halfvolle melk   1.29
	genericRe = regexp.MustCompile(`^(.+?)\s+(\d+[.,]\d{2})\s*$`)
)

// itemPatterns is tried in strict priority order; the first match
// consumes the line. The deposit layout must precede the generic one or
// statiegeld lines would be parsed as a product named "+STATIEGELD";
// the columnar layout must precede the multiplier and generic ones for
// the same reason.
var itemPatterns = []itemPattern{
	{
		name: "deposit",
		re:   depositRe,
		build: func(m []string) entity.ReceiptItem {
			return entity.ReceiptItem{
				Name:     constants.DepositItemName,
				Quantity: 1,
				Price:    ParsePrice(m[1]),
				Category: constants.Overig,
			}
		},
	},
	{
		name: "columnar",
		re:   columnarRe,
		build: func(m []string) entity.ReceiptItem {
			quantity, _ := strconv.Atoi(m[1])
			name := strings.TrimSpace(m[2])
			// Prefer the unit price when printed: the trailing amount
			// is the line total (unit price * quantity).
			price := ParsePrice(m[4])
			if m[3] != "" {
				price = ParsePrice(m[3])
			}
			return entity.ReceiptItem{
				Name:     name,
				Quantity: quantity,
				Price:    price,
				Category: Categorize(name),
			}
		},
	},
	{
		name: "multiplier",
		re:   multiplierRe,
		build: func(m []string) entity.ReceiptItem {
			quantity, _ := strconv.Atoi(m[1])
			name := strings.TrimSpace(m[2])
			return entity.ReceiptItem{
				Name:     name,
				Quantity: quantity,
				Price:    ParsePrice(m[3]), // already a line total
				Category: Categorize(name),
			}
		},
	},
	{
		name: "generic",
		re:   genericRe,
		build: func(m []string) entity.ReceiptItem {
			name := strings.TrimSpace(m[1])
			return entity.ReceiptItem{
				Name:     name,
				Quantity: 1,
				Price:    ParsePrice(m[2]),
				Category: Categorize(name),
			}
		},
	},
}

// MatchLine classifies a non-noise line into an item. Lines matching no
// layout are dropped by the caller; most OCR noise simply matches
// nothing, so a failed match is not an error.
func MatchLine(line string) (entity.ReceiptItem, bool) {
	for _, p := range itemPatterns {
		m := p.re.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		return p.build(m), true
	}
	return entity.ReceiptItem{}, false
}
