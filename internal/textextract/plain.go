// Package textextract holds the built-in plain-text implementation of
// port.TextExtractor. PDF and image (OCR) extractors are external
// collaborators wired in by the host; the core only needs the string.
package textextract

import (
	"context"
	"fmt"
	"strings"

	"medreportz/internal/domain"
	"medreportz/internal/port"
)

type plainExtractor struct{}

// NewPlainExtractor creates a TextExtractor that accepts text documents
// (.txt uploads or text/* content types) and returns their bytes as a
// best-effort string. The normalizer downstream tolerates any encoding
// damage this leaves behind.
func NewPlainExtractor() port.TextExtractor {
	return plainExtractor{}
}

func (plainExtractor) ExtractText(_ context.Context, input port.ExtractInput) (string, error) {
	if !isTextDocument(input) {
		return "", fmt.Errorf("%w: %s (%s)", domain.ErrUnsupportedFileType, input.FileName, input.ContentType)
	}
	return string(input.FileBytes), nil
}

func isTextDocument(input port.ExtractInput) bool {
	if strings.HasPrefix(input.ContentType, "text/") {
		return true
	}
	name := strings.ToLower(input.FileName)
	return strings.HasSuffix(name, ".txt")
}
