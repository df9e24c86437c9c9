package util

import (
	"strings"
)

// MarshalCSV serializes rows for export. Every field is double-quote
// wrapped with internal quotes doubled, fields comma-separated, rows
// newline-separated. encoding/csv is deliberately not used: it only quotes
// fields that need it, and the export format quotes unconditionally.
func MarshalCSV(rows [][]string) string {
	var b strings.Builder
	for i, row := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j, field := range row {
			if j > 0 {
				b.WriteByte(',')
			}
			b.WriteByte('"')
			b.WriteString(strings.ReplaceAll(field, `"`, `""`))
			b.WriteByte('"')
		}
	}
	return b.String()
}
