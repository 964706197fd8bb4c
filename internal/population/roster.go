package population

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// ProgressSink receives bulk-ingestion progress. Implementations decide the
// transport; the engine never assumes a connected client.
type ProgressSink interface {
	Report(processed, total int)
}

// LogProgressSink reports roster ingestion progress to the application log.
type LogProgressSink struct {
	logger *zap.Logger
}

// NewLogProgressSink creates a ProgressSink backed by zap.
func NewLogProgressSink(logger *zap.Logger) ProgressSink {
	return &LogProgressSink{logger: logger}
}

func (s *LogProgressSink) Report(processed, total int) {
	s.logger.Debug("roster ingestion progress", zap.Int("processed", processed), zap.Int("total", total))
}

// Headers recognized as the key column of an uploaded roster sheet.
var rosterKeyHeaders = map[string]bool{
	"uid":                 true,
	"registration no":     true,
	"registration number": true,
	"roll no":             true,
	"roll number":         true,
	"rollno":              true,
}

// ParseRoster reads the first sheet of an uploaded spreadsheet and extracts
// the candidate keys (UIDs or registration/roll numbers). Malformed rows are
// collected with their 1-based row index and never abort the parse; only an
// unreadable file is a hard error. Keys are trimmed, lower-cased and
// de-duplicated. sink may be nil.
func ParseRoster(r io.Reader, sink ProgressSink) ([]string, []RosterRowError, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open roster file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, fmt.Errorf("roster file has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read roster rows: %w", err)
	}
	if len(rows) == 0 {
		return []string{}, nil, nil
	}

	keyCol, dataStart := locateKeyColumn(rows)

	var keys []string
	var rowErrors []RosterRowError
	seen := make(map[string]bool)
	total := len(rows) - dataStart

	for i := dataStart; i < len(rows); i++ {
		row := rows[i]
		if isBlankRow(row) {
			continue
		}
		if keyCol >= len(row) || strings.TrimSpace(row[keyCol]) == "" {
			rowErrors = append(rowErrors, RosterRowError{Row: i + 1, Reason: "missing key value"})
			continue
		}
		key := NormalizeKey(row[keyCol])
		if !seen[key] {
			seen[key] = true
			keys = append(keys, key)
		}
		if sink != nil {
			sink.Report(i-dataStart+1, total)
		}
	}
	if sink != nil {
		sink.Report(total, total)
	}
	return keys, rowErrors, nil
}

// locateKeyColumn finds the key column by header name. When no recognized
// header exists the first column is used and row one is treated as data.
func locateKeyColumn(rows [][]string) (col, dataStart int) {
	for j, cell := range rows[0] {
		if rosterKeyHeaders[NormalizeKey(cell)] {
			return j, 1
		}
	}
	return 0, 0
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// NormalizeKey canonicalizes a roster or candidate key for comparison.
// Matching is case-insensitive and ignores surrounding whitespace.
func NormalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
