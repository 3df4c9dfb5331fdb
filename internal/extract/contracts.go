// Package extract defines the file-to-text stage contract and its
// implementations. The parser downstream accepts whatever text comes
// out of here, however malformed.
package extract

import (
	"context"
	"time"

	"github.com/pietersz/kassabon/constants"
)

// TextExtractor turns a receipt file into raw text.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (TextExtractionResult, error)
}

type TextExtractionResult struct {
	Text       string
	Pages      int
	SourceType constants.FileFormat
	Method     string // "pdf-text" | "pdf-ocr" | "image-ocr" | "text-file"
	Language   string
	Duration   time.Duration
	Warnings   []string
	Confidence float32
}
