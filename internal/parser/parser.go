// Package parser converts noisy receipt text, as produced by OCR of a
// photographed bon or by PDF text extraction, into structured receipts.
// Malformed input is the expected common case: unrecognized lines are
// dropped silently, and a missing total or date degrades to a computed
// fallback. Given any string input there is no failing code path.
package parser

import (
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pietersz/kassabon/constants"
	"github.com/pietersz/kassabon/internal/entity"
)

// Clock supplies the current time. It exists so the date-extraction
// fallback (no date token anywhere in the text) is testable.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Parser builds receipts from raw text. All parsing is pure and
// stateless; a single Parser may be used from multiple goroutines.
type Parser struct {
	clock  Clock
	logger *slog.Logger
}

func New(clock Clock, logger *slog.Logger) *Parser {
	if clock == nil {
		clock = systemClock{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Parser{clock: clock, logger: logger}
}

// ParseItems extracts the ordered item sequence from raw receipt text.
// Each trimmed non-empty line passes the noise filter first, then the
// layout patterns; lines matching neither are dropped.
func (p *Parser) ParseItems(text string) []entity.ReceiptItem {
	items := make([]entity.ReceiptItem, 0)
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || IsNoise(line) {
			continue
		}
		item, ok := MatchLine(line)
		if !ok {
			continue
		}
		items = append(items, item)
	}
	return items
}

// BuildReceipt assembles the final receipt from one text input. When no
// subtotal/total label is present the total is the sum of line totals,
// so an empty parse still yields a valid (empty, zero-total) receipt.
func (p *Parser) BuildReceipt(text string) *entity.Receipt {
	rec := &entity.Receipt{
		ID:        uuid.NewString(),
		Items:     p.ParseItems(text),
		StoreName: constants.StoreName,
	}
	rec.Total = ExtractTotal(text)
	if rec.Total == 0 {
		rec.Total = rec.ItemsTotal()
	}
	rec.Date = p.ExtractDate(text)

	p.logger.Debug("receipt parsed",
		"items", len(rec.Items), "total", rec.Total, "date", rec.Date)
	return rec
}
