// bonexport writes stored receipts to a CSV, JSON or XLSX file, optionally
// narrowed to one week or month.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/pietersz/kassabon/internal/common"
	"github.com/pietersz/kassabon/internal/export"
	"github.com/pietersz/kassabon/internal/repository"
)

func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		format = flag.String("format", "csv", "output format: csv, json or xlsx")
		out    = flag.String("out", "", "output file path (required)")
		period = flag.String("period", "all", "period: all, week or month")
		offset = flag.Int("offset", 0, "period offset, 0 = current, -1 = previous")
	)
	flag.Parse()

	if *out == "" {
		printError("Error: --out is required\n")
		os.Exit(1)
	}

	cfg := common.LoadConfig()
	logger := common.NewLogger(cfg.Log.Level)
	ctx := context.Background()

	db, err := repository.Open(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		DialTimeout:     cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	svc := export.NewService(repository.NewReceiptRepository(db, logger), logger)
	window := export.Period{Unit: *period, Offset: *offset}

	var payload []byte
	switch *format {
	case "csv":
		payload, err = svc.ExportCSV(ctx, window)
	case "json":
		payload, err = svc.ExportJSON(ctx, window)
	case "xlsx":
		payload, err = svc.ExportXLSX(ctx, window)
	default:
		printError("Error: unknown format %q, use csv, json or xlsx\n", *format)
		os.Exit(1)
	}
	if err != nil {
		logger.Error("export failed", "format", *format, "error", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*out, payload, 0644); err != nil {
		logger.Error("failed to write output file", "path", *out, "error", err)
		os.Exit(1)
	}

	fmt.Printf("Export written to %s\n", *out)
}
