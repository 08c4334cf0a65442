// Package pdf provides a document extractor for PDF files.
package pdf

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/papyrus-labs/pdfchat-cli/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor reads PDF bytes and produces plain text, page by page.
type Extractor struct{}

// New creates a new PDF extractor.
func New() *Extractor {
	return &Extractor{}
}

// SupportedExtensions returns the extensions this extractor handles.
func (e *Extractor) SupportedExtensions() []string {
	return []string{".pdf"}
}

// Extract opens the byte stream as a PDF and concatenates the plain text
// of every page in page order. A damaged page fails the whole document;
// callers isolate that failure from the rest of the upload batch.
func (e *Extractor) Extract(ctx context.Context, name string, data []byte) (string, int, error) {
	if len(data) == 0 {
		return "", 0, fmt.Errorf("%s: empty file", name)
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", 0, fmt.Errorf("open %s: %w", name, err)
	}

	var sb strings.Builder
	total := reader.NumPage()

	for pageIndex := 1; pageIndex <= total; pageIndex++ {
		if err := ctx.Err(); err != nil {
			return "", 0, err
		}

		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", 0, fmt.Errorf("extract %s page %d: %w", name, pageIndex, err)
		}
		sb.WriteString(text)
	}

	return sb.String(), total, nil
}
