// bonimport loads a JSON export produced by bonexport back into the
// database, validating the payload before anything is written.
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
		in = flag.String("in", "", "JSON export file to import (required)")
	)
	flag.Parse()

	if *in == "" {
		printError("Error: --in is required\n")
		os.Exit(1)
	}

	data, err := os.ReadFile(*in)
	if err != nil {
		printError("Error: cannot read %s: %v\n", *in, err)
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

	n, err := svc.ImportJSON(ctx, data)
	if err != nil {
		logger.Error("import failed", "path", *in, "error", err)
		os.Exit(1)
	}

	fmt.Printf("Imported %d receipts from %s\n", n, *in)
}
