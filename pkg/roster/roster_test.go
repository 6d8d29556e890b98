package roster_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agentstation/offboard/pkg/roster"
	"github.com/agentstation/offboard/pkg/tabular"
)

func TestOutputColumns(t *testing.T) {
	want := []string{
		"first_name", "last_name", "email", "country", "department",
		"branch", "phone", "manager", "job_title", "group", "active",
	}
	assert.Equal(t, want, roster.OutputColumns)
}

func TestCriticalColumnsAreOutputColumns(t *testing.T) {
	out := make(map[string]bool, len(roster.OutputColumns))
	for _, c := range roster.OutputColumns {
		out[c] = true
	}
	for _, c := range roster.CriticalColumns {
		assert.True(t, out[c], "critical column %q not in output schema", c)
	}
}

func TestNormalize(t *testing.T) {
	t.Run("trims only the named columns", func(t *testing.T) {
		tbl := tabular.New("roster", []string{"email", "first_name"})
		tbl.Append([]string{"  alice@x.com ", "  Alice  "})

		roster.Normalize(tbl, "email")

		assert.Equal(t, "alice@x.com", tbl.Cell(0, "email"))
		assert.Equal(t, "  Alice  ", tbl.Cell(0, "first_name"))
	})

	t.Run("missing column is a no-op", func(t *testing.T) {
		tbl := tabular.New("roster", []string{"email"})
		tbl.Append([]string{"alice@x.com"})

		roster.Normalize(tbl, "active")

		assert.Equal(t, 1, tbl.Len())
		assert.Equal(t, []string{"email"}, tbl.Columns())
	})

	t.Run("whitespace-only becomes empty", func(t *testing.T) {
		tbl := tabular.New("roster", []string{"email"})
		tbl.Append([]string{"   "})
		tbl.Append([]string{""})

		roster.Normalize(tbl, "email")

		assert.Equal(t, "", tbl.Cell(0, "email"))
		assert.Equal(t, "", tbl.Cell(1, "email"))
	})

	t.Run("row count and columns unchanged", func(t *testing.T) {
		tbl := tabular.New("roster", []string{"email", "active"})
		tbl.Append([]string{" a@x.com ", " TRUE "})
		tbl.Append([]string{" b@x.com ", " FALSE "})

		roster.Normalize(tbl, "email", "active")

		assert.Equal(t, 2, tbl.Len())
		assert.Equal(t, []string{"email", "active"}, tbl.Columns())
	})
}

func TestNormalizeRoster(t *testing.T) {
	tbl := tabular.New("roster", []string{"email", "active", "phone"})
	tbl.Append([]string{" alice@x.com ", " TRUE ", " 555 "})

	roster.NormalizeRoster(tbl)

	assert.Equal(t, "alice@x.com", tbl.Cell(0, "email"))
	assert.Equal(t, "TRUE", tbl.Cell(0, "active"))
	// Non-identity columns keep their raw form.
	assert.Equal(t, " 555 ", tbl.Cell(0, "phone"))
}

func TestNormalizeTerminations(t *testing.T) {
	tbl := tabular.New("terminations", []string{"Work Email", "Employment Status"})
	tbl.Append([]string{" ALICE@X.COM ", " Terminated "})

	roster.NormalizeTerminations(tbl)

	assert.Equal(t, "ALICE@X.COM", tbl.Cell(0, "Work Email"))
	assert.Equal(t, "Terminated", tbl.Cell(0, "Employment Status"))
}
