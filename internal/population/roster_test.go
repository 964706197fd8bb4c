package population

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildRoster(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		for j, cell := range row {
			cellName, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue("Sheet1", cellName, cell))
		}
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

type countingSink struct {
	calls int
}

func (s *countingSink) Report(processed, total int) { s.calls++ }

func TestParseRoster_HeaderedSheet(t *testing.T) {
	buf := buildRoster(t, [][]interface{}{
		{"UID", "Name"},
		{" X101 ", "Alice"},
		{"X102", "Bob"},
		{"x101", "Alice again"}, // duplicate after normalization
	})

	keys, rowErrors, err := ParseRoster(buf, nil)

	require.NoError(t, err)
	assert.Equal(t, []string{"x101", "x102"}, keys)
	assert.Empty(t, rowErrors)
}

func TestParseRoster_RollNumberHeader(t *testing.T) {
	buf := buildRoster(t, [][]interface{}{
		{"Name", "Roll No"},
		{"Alice", "R-001"},
		{"Bob", "R-002"},
	})

	keys, rowErrors, err := ParseRoster(buf, nil)

	require.NoError(t, err)
	assert.Equal(t, []string{"r-001", "r-002"}, keys)
	assert.Empty(t, rowErrors)
}

func TestParseRoster_NoHeaderUsesFirstColumn(t *testing.T) {
	buf := buildRoster(t, [][]interface{}{
		{"X201"},
		{"X202"},
	})

	keys, _, err := ParseRoster(buf, nil)

	require.NoError(t, err)
	assert.Equal(t, []string{"x201", "x202"}, keys)
}

func TestParseRoster_MalformedRowsCollectedNotFatal(t *testing.T) {
	buf := buildRoster(t, [][]interface{}{
		{"UID", "Name"},
		{"X101", "Alice"},
		{"", "No uid here"},
		{"X103", "Carol"},
	})

	keys, rowErrors, err := ParseRoster(buf, nil)

	require.NoError(t, err)
	assert.Equal(t, []string{"x101", "x103"}, keys)
	require.Len(t, rowErrors, 1)
	// Row indexes are 1-based spreadsheet rows.
	assert.Equal(t, 3, rowErrors[0].Row)
}

func TestParseRoster_BlankRowsIgnored(t *testing.T) {
	buf := buildRoster(t, [][]interface{}{
		{"UID"},
		{"X101"},
		{""},
		{"X102"},
	})

	keys, rowErrors, err := ParseRoster(buf, nil)

	require.NoError(t, err)
	assert.Equal(t, []string{"x101", "x102"}, keys)
	assert.Empty(t, rowErrors)
}

func TestParseRoster_UnreadableFile(t *testing.T) {
	_, _, err := ParseRoster(strings.NewReader("this is not a spreadsheet"), nil)
	assert.Error(t, err)
}

func TestParseRoster_ReportsProgress(t *testing.T) {
	buf := buildRoster(t, [][]interface{}{
		{"UID"},
		{"X101"},
		{"X102"},
	})
	sink := &countingSink{}

	_, _, err := ParseRoster(buf, sink)

	require.NoError(t, err)
	assert.Greater(t, sink.calls, 0)
}

func TestNormalizeKey(t *testing.T) {
	assert.Equal(t, "x101", NormalizeKey("  X101 "))
	assert.Equal(t, "", NormalizeKey("   "))
}
