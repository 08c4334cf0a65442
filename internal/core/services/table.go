package services

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/papyrus-labs/pdfchat-cli/internal/core/domain"
	"github.com/papyrus-labs/pdfchat-cli/internal/core/ports/driving"
	"github.com/papyrus-labs/pdfchat-cli/internal/logger"
)

// Ensure TableService implements the interface.
var _ driving.TableService = (*TableService)(nil)

// Table detection is deliberately heuristic: a keyword trigger followed by
// a GitHub/Markdown-style run of pipe-delimited lines. Behaviour
// compatibility depends on these exact patterns.
var (
	tableTriggerRe = regexp.MustCompile(`(?i)\b(comparison|comparing|compare|tabular|table)\b`)
	tableBlockRe   = regexp.MustCompile(`(\|.*\|(?:\n\|.*\|)*)`)
)

// TableService recovers pipe-delimited tables from completed answers.
type TableService struct{}

// NewTableService creates a new table service.
func NewTableService() *TableService {
	return &TableService{}
}

// ExtractTable scans the answer for tabular content. The answer must
// mention one of the trigger words (whole word, case-insensitive) and
// contain a run of consecutive pipe-delimited lines; the first maximal
// run is converted. The first row becomes the column headers. A data row
// whose cell count differs from the header count fails the conversion.
func (s *TableService) ExtractTable(answer string) (*domain.Table, error) {
	if !tableTriggerRe.MatchString(answer) {
		return nil, domain.ErrNoTable
	}

	block := tableBlockRe.FindString(answer)
	if block == "" {
		logger.Debug("Trigger word present but no pipe-delimited block found")
		return nil, domain.ErrNoTable
	}

	var rows [][]string
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		// Split on "|" and discard the first and last (empty) segments.
		segments := strings.Split(line, "|")
		cells := make([]string, 0, len(segments)-2)
		for _, cell := range segments[1 : len(segments)-1] {
			cells = append(cells, strings.TrimSpace(cell))
		}
		rows = append(rows, cells)
	}

	if len(rows) == 0 {
		return nil, domain.ErrNoTable
	}

	table := &domain.Table{Headers: rows[0], Rows: rows[1:]}
	for i, row := range table.Rows {
		if len(row) != len(table.Headers) {
			return nil, fmt.Errorf(
				"%w: row %d has %d cell(s), expected %d",
				domain.ErrTableMalformed, i+1, len(row), len(table.Headers),
			)
		}
	}

	logger.Debug("Extracted table: %d column(s), %d row(s)", len(table.Headers), len(table.Rows))
	return table, nil
}
