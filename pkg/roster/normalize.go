package roster

import (
	"strings"

	"github.com/agentstation/offboard/pkg/tabular"
)

// Normalize trims the cells of the named columns in place, so downstream
// comparisons are whitespace-safe. A missing cell is already the empty
// string, which makes the substitution total; columns the table does not
// have are left alone. Row count and column set never change.
func Normalize(t *tabular.Table, columns ...string) {
	for _, column := range columns {
		idx, ok := t.Index(column)
		if !ok {
			continue
		}
		for i := 0; i < t.Len(); i++ {
			row := t.Row(i)
			row[idx] = strings.TrimSpace(row[idx])
		}
	}
}

// NormalizeRoster normalizes the roster's identity and status columns.
func NormalizeRoster(t *tabular.Table) {
	Normalize(t, ColEmail, ColActive)
}

// NormalizeTerminations normalizes the termination feed's identity and
// status columns.
func NormalizeTerminations(t *tabular.Table) {
	Normalize(t, ColWorkEmail, ColEmploymentStatus)
}
