package port

import "context"

// ExtractInput carries an uploaded document for text extraction.
type ExtractInput struct {
	FileBytes   []byte
	FileName    string
	ContentType string
}

// TextExtractor abstracts raw document decoding (plain text, PDF
// rasterization, OCR). The pipeline core only ever sees the resulting
// string; implementations for binary formats are host-provided.
type TextExtractor interface {
	ExtractText(ctx context.Context, input ExtractInput) (string, error)
}
