// Package pipeline wires the stages together: file -> text -> receipt,
// optionally persisting the result.
package pipeline

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"sort"

	"github.com/pietersz/kassabon/constants"
	"github.com/pietersz/kassabon/internal/entity"
	"github.com/pietersz/kassabon/internal/extract"
	"github.com/pietersz/kassabon/internal/parser"
	"github.com/pietersz/kassabon/internal/repository"
)

type Pipeline struct {
	Extractor extract.TextExtractor
	Parser    *parser.Parser
	Receipts  repository.ReceiptRepository // nil -> parse only, don't store
	Logger    *slog.Logger
}

func New(ex extract.TextExtractor, p *parser.Parser, repo repository.ReceiptRepository, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{Extractor: ex, Parser: p, Receipts: repo, Logger: logger}
}

// Run scans one receipt file. Extraction is the only stage that can
// fail; the parse stage accepts whatever text came out of it.
func (p *Pipeline) Run(ctx context.Context, path string) (*entity.Receipt, error) {
	res, err := p.Extractor.Extract(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", path, err)
	}
	p.Logger.Info("text extracted",
		"path", path, "method", res.Method, "pages", res.Pages,
		"bytes", len(res.Text), "confidence", res.Confidence,
		"elapsed_ms", res.Duration.Milliseconds(),
	)
	for _, w := range res.Warnings {
		p.Logger.Warn("extraction warning", "path", path, "warning", w)
	}

	rec := p.Parser.BuildReceipt(res.Text)
	p.Logger.Info("receipt built",
		"path", path, "receipt_id", rec.ID,
		"items", len(rec.Items), "total", rec.Total, "date", rec.Date,
	)

	if p.Receipts != nil {
		if err := p.Receipts.Save(ctx, rec); err != nil {
			return nil, fmt.Errorf("save receipt: %w", err)
		}
	}
	return rec, nil
}

// ListReceiptFiles walks dir and returns the scannable files in it,
// sorted by path.
func ListReceiptFiles(dir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := constants.NormalizeExt(filepath.Ext(path))
		if _, ok := constants.AllowedExtensions[ext]; ok {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", dir, err)
	}
	sort.Strings(paths)
	return paths, nil
}
