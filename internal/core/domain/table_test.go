package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_CSV(t *testing.T) {
	table := Table{
		Headers: []string{"Name", "Age"},
		Rows: [][]string{
			{"Alice", "30"},
			{"Bob", "25"},
		},
	}

	out, err := table.CSV()

	require.NoError(t, err)
	assert.Equal(t, "Name,Age\nAlice,30\nBob,25\n", out)
}

func TestTable_CSV_QuotesSpecialCharacters(t *testing.T) {
	table := Table{
		Headers: []string{"Product", "Notes"},
		Rows: [][]string{
			{"Widget", "cheap, cheerful"},
		},
	}

	out, err := table.CSV()

	require.NoError(t, err)
	assert.Contains(t, out, `"cheap, cheerful"`)
}

func TestTable_CSV_HeadersOnly(t *testing.T) {
	table := Table{Headers: []string{"A", "B"}}

	out, err := table.CSV()

	require.NoError(t, err)
	assert.Equal(t, "A,B\n", out)
}
