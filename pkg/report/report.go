// Package report emits run statistics and sample rows for operator
// visibility. Reporting is a pure observer and never influences the run's
// outcome.
package report

import (
	"context"
	"strings"

	"github.com/agentstation/offboard/pkg/constants"
	"github.com/agentstation/offboard/pkg/logging"
	"github.com/agentstation/offboard/pkg/reconcile"
	"github.com/agentstation/offboard/pkg/roster"
	"github.com/agentstation/offboard/pkg/tabular"
)

// Reporter logs run statistics and a small sample of the users being
// deactivated.
type Reporter struct {
	// Sample is the maximum number of output rows to log as examples.
	Sample int
}

// New creates a reporter with the default sample size.
func New() *Reporter {
	return &Reporter{Sample: constants.DefaultSampleRows}
}

// Summarize logs the run's headline counts.
func (r *Reporter) Summarize(ctx context.Context, outcome *reconcile.Outcome) {
	logging.FromContext(ctx).Info().
		Int("roster_rows", outcome.RosterRows).
		Int("terminated", outcome.TerminatedCount).
		Int("already_inactive", outcome.AlreadyInactive).
		Int("new_inactive", outcome.NewInactive()).
		Msg("Processing statistics")
}

// Samples logs up to Sample example output rows, each as an email with the
// user's full name.
func (r *Reporter) Samples(ctx context.Context, output *tabular.Table) {
	if output.Len() == 0 || r.Sample <= 0 {
		return
	}

	log := logging.FromContext(ctx)
	n := output.Len()
	if n > r.Sample {
		n = r.Sample
	}
	for i := 0; i < n; i++ {
		first := output.Cell(i, roster.ColFirstName)
		last := output.Cell(i, roster.ColLastName)
		log.Info().
			Str("email", output.Cell(i, roster.ColEmail)).
			Str("name", strings.TrimSpace(first+" "+last)).
			Msg("User to inactivate")
	}
}
