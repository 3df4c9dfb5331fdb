// bonscan parses Albert Heijn receipt files (PDF, image or plain text)
// into structured receipts. By default it prints the result as JSON;
// with --save it also stores receipts in the database.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/pietersz/kassabon/internal/common"
	"github.com/pietersz/kassabon/internal/extract"
	"github.com/pietersz/kassabon/internal/ocr"
	"github.com/pietersz/kassabon/internal/parser"
	"github.com/pietersz/kassabon/internal/pipeline"
	"github.com/pietersz/kassabon/internal/recipes"
	"github.com/pietersz/kassabon/internal/repository"
)

func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		dir         = flag.String("dir", "", "directory of receipt files to scan")
		file        = flag.String("file", "", "single receipt file to scan")
		save        = flag.Bool("save", false, "store parsed receipts in the database")
		inmem       = flag.Bool("inmem", false, "use an in-memory sqlite database")
		recipesPath = flag.String("recipes", "", "recipe collection JSON; print suggestions per receipt")
	)
	flag.Parse()

	if *dir == "" && *file == "" {
		printError("Error: --dir or --file is required\n")
		os.Exit(1)
	}

	cfg := common.LoadConfig()
	logger := common.NewLogger(cfg.Log.Level)
	ctx := context.Background()

	var paths []string
	if *file != "" {
		paths = []string{*file}
	} else {
		var err error
		paths, err = pipeline.ListReceiptFiles(*dir)
		if err != nil {
			logger.Error("failed to list receipt files", "dir", *dir, "error", err)
			os.Exit(1)
		}
		if len(paths) == 0 {
			printError("No receipt files found in %s\n", *dir)
			os.Exit(1)
		}
	}

	var repo repository.ReceiptRepository
	if *save {
		dbCfg := repository.Config{
			DSN:             cfg.Database.DSN,
			MaxConns:        cfg.Database.MaxConns,
			MinConns:        cfg.Database.MinConns,
			MaxConnLifetime: cfg.Database.MaxConnLifetime,
			MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
			DialTimeout:     cfg.Database.DialTimeout,
		}
		if *inmem {
			dbCfg.DSN = ":memory:"
		}
		db, err := repository.Open(ctx, dbCfg, logger)
		if err != nil {
			logger.Error("failed to open database", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		repo = repository.NewReceiptRepository(db, logger)
	}

	var collection []recipes.Recipe
	if *recipesPath != "" {
		var err error
		collection, err = recipes.LoadFile(*recipesPath)
		if err != nil {
			logger.Error("failed to load recipes", "path", *recipesPath, "error", err)
			os.Exit(1)
		}
	}

	extractor := extract.NewRouter(extract.NewOCRAdapter(ocr.NewExtractor(ocr.Config{
		Pdftotext: cfg.OCR.Pdftotext,
		Pdftoppm:  cfg.OCR.Pdftoppm,
		Tesseract: cfg.OCR.Tesseract,
		Language:  cfg.OCR.Language,
		DPI:       cfg.OCR.DPI,
		MaxPages:  cfg.OCR.MaxPages,
	}, logger)))

	pipe := pipeline.New(extractor, parser.New(nil, logger), repo, logger)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	failures := 0
	for _, path := range paths {
		rec, err := pipe.Run(ctx, path)
		if err != nil {
			logger.Error("scan failed", "path", path, "error", err)
			failures++
			continue
		}
		if err := enc.Encode(rec); err != nil {
			logger.Error("failed to print receipt", "path", path, "error", err)
			failures++
			continue
		}
		if len(collection) > 0 {
			for _, scored := range recipes.RankRecipes(collection, rec.Items) {
				fmt.Printf("suggestie: %s (score %d, ontbreekt: %d ingrediënten)\n",
					scored.Recipe.Name, scored.Score, len(scored.MissingIngredients))
			}
		}
	}

	logger.Info("scan complete", "files", len(paths), "failures", failures)
	if failures > 0 {
		os.Exit(1)
	}
}
