// Package output provides common output formatting utilities for CLI commands.
package output

import (
	"io"

	"github.com/agentstation/offboard"
	"github.com/agentstation/offboard/pkg/tabular"
)

// FormatResult writes a run result in the requested format.
func FormatResult(w io.Writer, format Format, result *offboard.Result) error {
	return NewFormatter(format).Format(w, result)
}

// PreviewData converts up to limit rows of a table into displayable Data.
// A limit of zero or less means all rows.
func PreviewData(t *tabular.Table, limit int) Data {
	n := t.Len()
	if limit > 0 && n > limit {
		n = limit
	}

	rows := make([][]string, 0, n)
	for i := 0; i < n; i++ {
		row := t.Row(i)
		copied := make([]string, len(row))
		copy(copied, row)
		rows = append(rows, copied)
	}

	return Data{Headers: t.Columns(), Rows: rows}
}
