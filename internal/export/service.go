// Package export renders stored receipts to CSV, JSON and XLSX, and
// imports previously exported JSON back in.
package export

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/pietersz/kassabon/internal/entity"
	"github.com/pietersz/kassabon/internal/repository"
)

// Service is a thin façade over the receipt repository that produces
// export bytes for a requested period.
type Service struct {
	receipts repository.ReceiptRepository
	logger   *slog.Logger
	now      func() time.Time // test seam for period filtering
}

func NewService(receipts repository.ReceiptRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{receipts: receipts, logger: logger, now: time.Now}
}

// Period selects which receipts an export covers.
type Period struct {
	Unit   string // "all" | "week" | "month"
	Offset int    // 0 = current, -1 = previous, ...
}

func (s *Service) receiptsFor(ctx context.Context, period Period) ([]*entity.Receipt, error) {
	recs, err := s.receipts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list receipts: %w", err)
	}
	switch period.Unit {
	case "", "all":
		return recs, nil
	case "week":
		return FilterByWeek(recs, period.Offset, s.now()), nil
	case "month":
		return FilterByMonth(recs, period.Offset, s.now()), nil
	default:
		return nil, fmt.Errorf("unknown period unit: %q", period.Unit)
	}
}

func (s *Service) ExportCSV(ctx context.Context, period Period) ([]byte, error) {
	recs, err := s.receiptsFor(ctx, period)
	if err != nil {
		return nil, err
	}
	s.logger.Info("export", "format", "csv", "receipts", len(recs))
	return []byte(ToCSV(recs)), nil
}

func (s *Service) ExportJSON(ctx context.Context, period Period) ([]byte, error) {
	recs, err := s.receiptsFor(ctx, period)
	if err != nil {
		return nil, err
	}
	s.logger.Info("export", "format", "json", "receipts", len(recs))
	return ToJSON(recs)
}

func (s *Service) ExportXLSX(ctx context.Context, period Period) ([]byte, error) {
	recs, err := s.receiptsFor(ctx, period)
	if err != nil {
		return nil, err
	}
	s.logger.Info("export", "format", "xlsx", "receipts", len(recs))
	return ToXLSX(recs)
}

const csvHeader = "date,storeName,receiptTotal,itemName,quantity,price,category"

// ToCSV renders one row per item, receipt fields repeated.
func ToCSV(receipts []*entity.Receipt) string {
	rows := []string{csvHeader}
	for _, rec := range receipts {
		for _, item := range rec.Items {
			rows = append(rows, strings.Join([]string{
				escapeCSVField(rec.Date),
				escapeCSVField(rec.StoreName),
				fmt.Sprintf("%.2f", rec.Total),
				escapeCSVField(item.Name),
				fmt.Sprintf("%d", item.Quantity),
				fmt.Sprintf("%.2f", item.Price),
				escapeCSVField(string(item.Category)),
			}, ","))
		}
	}
	return strings.Join(rows, "\n")
}

func escapeCSVField(value string) string {
	if strings.ContainsAny(value, ",\"\n") {
		return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
	}
	return value
}

func ToJSON(receipts []*entity.Receipt) ([]byte, error) {
	out, err := json.MarshalIndent(receipts, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal receipts: %w", err)
	}
	return out, nil
}

// ToXLSX renders one worksheet with one row per item.
func ToXLSX(receipts []*entity.Receipt) ([]byte, error) {
	f := excelize.NewFile()
	const sheet = "Receipts"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{"Date", "Store", "Receipt Total", "Item", "Quantity", "Price", "Category"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, rec := range receipts {
		for _, item := range rec.Items {
			write := func(col int, v any) {
				cell, _ := excelize.CoordinatesToCellName(col, row)
				_ = f.SetCellValue(sheet, cell, v)
			}
			write(1, rec.Date)
			write(2, rec.StoreName)
			write(3, rec.Total)
			write(4, item.Name)
			write(5, item.Quantity)
			write(6, item.Price)
			write(7, string(item.Category))
			row++
		}
	}

	_ = f.SetColWidth(sheet, "A", "A", 12) // date
	_ = f.SetColWidth(sheet, "B", "B", 16) // store
	_ = f.SetColWidth(sheet, "D", "D", 32) // item
	_ = f.SetColWidth(sheet, "G", "G", 14) // category

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}
