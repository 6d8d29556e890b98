// Package reconcile computes which active roster entries have a termination
// on file but no status change yet, producing the candidate output table.
package reconcile

import (
	"context"
	"strings"

	"github.com/agentstation/offboard/pkg/logging"
	"github.com/agentstation/offboard/pkg/roster"
	"github.com/agentstation/offboard/pkg/tabular"
)

// Outcome carries the candidate output table together with the counts the
// run reports.
type Outcome struct {
	// Output holds the candidate rows projected onto the output schema,
	// with the active field forced to roster.StatusInactive. It has not
	// been validated yet.
	Output *tabular.Table

	// RosterRows is the total number of roster rows read.
	RosterRows int

	// TerminatedCount is the size of the termination set.
	TerminatedCount int

	// AlreadyInactive counts roster rows whose uppercased active field
	// already equals roster.StatusInactive.
	AlreadyInactive int
}

// NewInactive returns the number of users the run would deactivate.
func (o *Outcome) NewInactive() int {
	return o.Output.Len()
}

// Reconcile selects roster rows that are still active but whose lowercase
// email appears in the termination set, projects them onto the output
// schema, and forces their active field to roster.StatusInactive.
//
// The selection is a stable filter: output rows keep the roster's original
// order. The transformation is total and never fails on its own; a roster
// missing output columns produces an output missing those columns, which
// the validation step rejects.
func Reconcile(ctx context.Context, rosterTable *tabular.Table, set TerminationSet) *Outcome {
	outcome := &Outcome{
		RosterRows:      rosterTable.Len(),
		TerminatedCount: set.Len(),
	}

	candidates := tabular.New("candidates", rosterTable.Columns())
	for i := 0; i < rosterTable.Len(); i++ {
		active := strings.ToUpper(rosterTable.Cell(i, roster.ColActive))
		if active == roster.StatusInactive {
			outcome.AlreadyInactive++
			continue
		}
		if set.Contains(rosterTable.Cell(i, roster.ColEmail)) {
			candidates.Append(rosterTable.Row(i))
		}
	}

	outcome.Output = candidates.Select("output", roster.OutputColumns...)
	outcome.Output.SetColumn(roster.ColActive, roster.StatusInactive)

	logging.FromContext(ctx).Debug().
		Int("roster_rows", outcome.RosterRows).
		Int("terminated", outcome.TerminatedCount).
		Int("already_inactive", outcome.AlreadyInactive).
		Int("new_inactive", outcome.NewInactive()).
		Msg("Reconciled roster against termination set")
	return outcome
}
