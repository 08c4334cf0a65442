// Package pdfwriter renders a conversation as a paginated PDF document.
package pdfwriter

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/papyrus-labs/pdfchat-cli/internal/core/domain"
	"github.com/papyrus-labs/pdfchat-cli/internal/core/ports/driven"
)

// Ensure Exporter implements the interface.
var _ driven.ConversationExporter = (*Exporter)(nil)

// Page geometry: US letter (612x792pt) with 40pt margins, body indented
// a further 20pt under each role label.
const (
	margin     = 40.0
	indent     = 20.0
	lineHeight = 20.0
	fontSize   = 12.0
	titleText  = "pdfchat - Conversation History"
)

// Exporter writes conversations as letter-sized PDF pages with
// word-wrapped content.
type Exporter struct{}

// New creates a new conversation exporter.
func New() *Exporter {
	return &Exporter{}
}

// FileExtension returns ".pdf".
func (e *Exporter) FileExtension() string {
	return ".pdf"
}

// Export renders each entry as "Role:" followed by the indented,
// word-wrapped content, appending the response time where one was
// recorded. A new page starts whenever vertical space runs out.
func (e *Exporter) Export(entries []domain.Entry) ([]byte, error) {
	doc := gofpdf.New("P", "pt", "Letter", "")
	doc.SetMargins(margin, margin, margin)
	doc.SetAutoPageBreak(true, margin)
	doc.AddPage()
	doc.SetFont("Helvetica", "", fontSize)

	doc.CellFormat(0, lineHeight, titleText, "", 1, "L", false, 0, "")
	doc.Ln(lineHeight / 2)

	for _, entry := range entries {
		doc.CellFormat(0, lineHeight, entry.Role.DisplayName()+":", "", 1, "L", false, 0, "")

		// Indent the content lines under the role label.
		doc.SetLeftMargin(margin + indent)
		doc.SetX(margin + indent)
		doc.MultiCell(0, lineHeight, entry.ExportLine(), "", "L", false)
		doc.SetLeftMargin(margin)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
