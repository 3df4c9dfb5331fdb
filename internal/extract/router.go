package extract

import (
	"context"
	"path/filepath"

	"github.com/pietersz/kassabon/constants"
)

// Router picks the extractor for a file by its extension: plain .txt
// files bypass OCR entirely, everything else goes through it.
type Router struct {
	Text TextExtractor
	OCR  TextExtractor
}

func NewRouter(ocrExtractor TextExtractor) *Router {
	return &Router{Text: TextFileExtractor{}, OCR: ocrExtractor}
}

func (r *Router) Extract(ctx context.Context, path string) (TextExtractionResult, error) {
	if constants.MapExtToFormat(filepath.Ext(path)) == constants.Text {
		return r.Text.Extract(ctx, path)
	}
	return r.OCR.Extract(ctx, path)
}
