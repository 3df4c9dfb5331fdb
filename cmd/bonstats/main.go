// bonstats prints spending statistics over the stored receipts.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/pietersz/kassabon/constants"
	"github.com/pietersz/kassabon/internal/common"
	"github.com/pietersz/kassabon/internal/repository"
	"github.com/pietersz/kassabon/internal/summary"
)

func main() {
	var (
		top = flag.Int("top", 10, "how many most-bought items to list")
	)
	flag.Parse()

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

	receipts, err := repository.NewReceiptRepository(db, logger).List(ctx)
	if err != nil {
		logger.Error("failed to list receipts", "error", err)
		os.Exit(1)
	}

	fmt.Printf("Bonnen:       %d\n", summary.ReceiptCount(receipts))
	fmt.Printf("Totaal:       €%.2f\n", summary.TotalSpent(receipts))
	fmt.Printf("Gemiddeld:    €%.2f per bon\n", summary.AveragePerReceipt(receipts))

	spending := summary.SpendingByCategory(receipts)
	categories := make([]constants.ProductCategory, 0, len(spending))
	for cat := range spending {
		categories = append(categories, cat)
	}
	sort.Slice(categories, func(i, j int) bool {
		return spending[categories[i]] > spending[categories[j]]
	})

	fmt.Println("\nUitgaven per categorie:")
	for _, cat := range categories {
		fmt.Printf("  %-12s €%.2f\n", cat, spending[cat])
	}

	frequency := summary.ItemFrequency(receipts)
	names := make([]string, 0, len(frequency))
	for name := range frequency {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if frequency[names[i]] != frequency[names[j]] {
			return frequency[names[i]] > frequency[names[j]]
		}
		return names[i] < names[j]
	})
	if len(names) > *top {
		names = names[:*top]
	}

	fmt.Println("\nMeest gekocht:")
	for _, name := range names {
		fmt.Printf("  %3dx %s\n", frequency[name], name)
	}
}
