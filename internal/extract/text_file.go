package extract

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pietersz/kassabon/constants"
)

// TextFileExtractor passes through text that was already extracted
// elsewhere, for .txt inputs and for replaying saved OCR output.
type TextFileExtractor struct{}

func (TextFileExtractor) Extract(_ context.Context, path string) (TextExtractionResult, error) {
	start := time.Now()
	if constants.MapExtToFormat(filepath.Ext(path)) != constants.Text {
		return TextExtractionResult{}, fmt.Errorf("not a text file: %q", path)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return TextExtractionResult{}, fmt.Errorf("read text file: %w", err)
	}
	return TextExtractionResult{
		Text:       string(raw),
		Pages:      1,
		SourceType: constants.Text,
		Method:     "text-file",
		Duration:   time.Since(start),
		Confidence: 1.0,
	}, nil
}
