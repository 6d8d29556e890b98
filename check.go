package offboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/agentstation/offboard/pkg/errors"
	"github.com/agentstation/offboard/pkg/logging"
	"github.com/agentstation/offboard/pkg/reconcile"
	"github.com/agentstation/offboard/pkg/roster"
	"github.com/agentstation/offboard/pkg/tabular"
	"github.com/agentstation/offboard/pkg/validate"
)

// Check reads an existing output file and validates it against the
// configured roster and termination inputs, re-running the acceptance rules
// that gated its creation. Checking a file against a newer roster export
// can legitimately fail: once the deactivations have been applied upstream,
// the file's users are already inactive.
func (o *offboard) Check(ctx context.Context, outputPath string) (result *Result, err error) {
	started := time.Now()

	// Same panic barrier as run: a check resolves to a verdict or an
	// error, never a panic.
	defer func() {
		if rec := recover(); rec != nil {
			result = nil
			err = errors.NewProcessError("check", fmt.Sprintf("unexpected failure: %v", rec), nil)
		}
	}()

	// Step 0: Set context and scope a logger to this check
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithLogger(ctx, o.config.logger)
	ctx = logging.WithRunID(ctx, uuid.NewString())
	log := logging.FromContext(ctx)

	log.Info().
		Str("output", outputPath).
		Str("roster", o.config.rosterPath).
		Str("terminations", o.config.terminationsPath).
		Msg("Checking output file")

	// Step 1: Read the output file and both inputs
	outputTable, err := tabular.ReadFile(ctx, "output", outputPath)
	if err != nil {
		log.Error().Err(err).Str("file", outputPath).Msg("Failed to read output file")
		return nil, err
	}

	rosterTable, err := tabular.ReadFile(ctx, "roster", o.config.rosterPath)
	if err != nil {
		log.Error().Err(err).Str("file", o.config.rosterPath).Msg("Failed to read roster")
		return nil, err
	}

	feedTable, err := tabular.ReadFile(ctx, "terminations", o.config.terminationsPath)
	if err != nil {
		log.Error().Err(err).Str("file", o.config.terminationsPath).Msg("Failed to read terminations")
		return nil, err
	}

	// Step 2: Normalize all three the way a run would
	roster.NormalizeRoster(rosterTable)
	roster.NormalizeTerminations(feedTable)
	roster.NormalizeRoster(outputTable)

	// Step 3: Build the terminated-email set from the feed
	set, err := reconcile.BuildTerminationSet(ctx, feedTable)
	if err != nil {
		log.Error().Err(err).Msg("Failed to build termination set")
		return nil, errors.WrapProcess("terminations", err)
	}

	// Step 4: Recompute the selection for comparison counts
	outcome := reconcile.Reconcile(ctx, rosterTable, set)
	if outputTable.Len() != outcome.NewInactive() {
		log.Warn().
			Int("file_rows", outputTable.Len()).
			Int("expected_rows", outcome.NewInactive()).
			Msg("Output row count differs from a fresh reconciliation")
	}

	// Step 5: Validate the file contents
	in := &validate.Input{Output: outputTable, Roster: rosterTable, Terminated: set}
	if err := validate.Validate(ctx, in); err != nil {
		log.Error().Err(err).Str("file", outputPath).Msg("Output file failed validation")
		return nil, err
	}
	log.Info().Str("file", outputPath).Int("rows", outputTable.Len()).Msg("Output file passed validation")

	return &Result{
		OutputPath:      outputPath,
		Output:          outputTable,
		Written:         false,
		RosterRows:      outcome.RosterRows,
		TerminatedCount: outcome.TerminatedCount,
		AlreadyInactive: outcome.AlreadyInactive,
		NewInactive:     outputTable.Len(),
		Duration:        time.Since(started),
	}, nil
}
