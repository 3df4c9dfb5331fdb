package ocr

import (
	"context"
	"fmt"

	"github.com/pietersz/kassabon/constants"
)

func (e *Extractor) extractImage(ctx context.Context, path string) (ExtractionResult, error) {
	txt, warns, err := e.tesseract(ctx, path)
	if err != nil {
		return ExtractionResult{SourceType: constants.Image, Warnings: warns}, err
	}
	txt = Normalize(txt)

	return ExtractionResult{
		Text:       txt,
		Pages:      1,
		SourceType: constants.Image,
		Method:     "image-ocr",
		Language:   e.cfg.Language,
		Warnings:   warns,
		Confidence: heuristicConfidence(txt),
	}, nil
}

func (e *Extractor) tesseract(ctx context.Context, path string) (string, []string, error) {
	// tesseract <file> stdout -l <lang>
	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, path, "stdout", "-l", e.cfg.Language)
	if err != nil {
		return "", []string{string(errb)}, fmt.Errorf("tesseract: %w", err)
	}
	return string(out), nil, nil
}
