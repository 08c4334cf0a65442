package pdfwriter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/papyrus-labs/pdfchat-cli/internal/core/domain"
)

func TestExporter_Export(t *testing.T) {
	exporter := New()

	data, err := exporter.Export([]domain.Entry{
		{Role: domain.RoleUser, Content: "What is the total?"},
		{Role: domain.RoleBot, Content: "The total is 100 EUR.", ElapsedSeconds: 1.23},
		{Role: domain.RoleSummary, Content: "Summary for a.pdf: short.", ElapsedSeconds: 0.5},
	})

	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.True(t, strings.HasPrefix(string(data), "%PDF-"),
		"output must be a PDF document")
}

func TestExporter_Export_LongContentWraps(t *testing.T) {
	exporter := New()

	long := strings.Repeat("a fairly long sentence that will need wrapping ", 200)
	data, err := exporter.Export([]domain.Entry{
		{Role: domain.RoleBot, Content: long, ElapsedSeconds: 9.99},
	})

	require.NoError(t, err)
	assert.NotEmpty(t, data, "long entries paginate instead of failing")
}

func TestExporter_FileExtension(t *testing.T) {
	assert.Equal(t, ".pdf", New().FileExtension())
}
