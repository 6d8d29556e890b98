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

// Run executes the full pipeline and writes the deactivation list to the
// configured output path. If any stage fails, no output file is written.
func (o *offboard) Run(ctx context.Context) (*Result, error) {
	return o.run(ctx, false)
}

// Reconcile executes the same pipeline as Run but stops short of writing
// the output file. The returned result carries the counts a real run
// would have produced.
func (o *offboard) Reconcile(ctx context.Context) (*Result, error) {
	return o.run(ctx, true)
}

func (o *offboard) run(ctx context.Context, dryRun bool) (result *Result, err error) {
	started := time.Now()

	// A panic anywhere in the pipeline must not escape to the caller.
	// It resolves to a process error instead, and no file is written.
	defer func() {
		if rec := recover(); rec != nil {
			result = nil
			err = errors.NewProcessError("run", fmt.Sprintf("unexpected failure: %v", rec), nil)
		}
	}()

	// Step 0: Set context and scope a logger to this run
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithLogger(ctx, o.config.logger)
	ctx = logging.WithRunID(ctx, uuid.NewString())
	log := logging.FromContext(ctx)

	log.Info().
		Str("roster", o.config.rosterPath).
		Str("terminations", o.config.terminationsPath).
		Bool("dry_run", dryRun).
		Msg("Starting run")

	// Step 1: Read both input files
	rosterTable, err := tabular.ReadFile(ctx, "roster", o.config.rosterPath)
	if err != nil {
		log.Error().Err(err).Str("file", o.config.rosterPath).Msg("Failed to read roster")
		return nil, err
	}
	log.Info().Str("file", o.config.rosterPath).Int("rows", rosterTable.Len()).Msg("Read roster")

	feedTable, err := tabular.ReadFile(ctx, "terminations", o.config.terminationsPath)
	if err != nil {
		log.Error().Err(err).Str("file", o.config.terminationsPath).Msg("Failed to read terminations")
		return nil, err
	}
	log.Info().Str("file", o.config.terminationsPath).Int("rows", feedTable.Len()).Msg("Read terminations")

	// Step 2: Normalize the identity and status columns
	roster.NormalizeRoster(rosterTable)
	roster.NormalizeTerminations(feedTable)

	// Step 3: Build the terminated-email set from the feed
	set, err := reconcile.BuildTerminationSet(ctx, feedTable)
	if err != nil {
		log.Error().Err(err).Msg("Failed to build termination set")
		return nil, errors.WrapProcess("terminations", err)
	}

	// Step 4: Select the users to deactivate
	outcome := reconcile.Reconcile(ctx, rosterTable, set)

	// Step 5: Validate the candidate output before anything is written
	in := &validate.Input{Output: outcome.Output, Roster: rosterTable, Terminated: set}
	if err := validate.Validate(ctx, in); err != nil {
		log.Error().Err(err).Msg("Output validation failed")
		return nil, err
	}

	// Step 6: Report run statistics
	o.reporter.Summarize(ctx, outcome)

	// Step 7: Write the output file, unless this is a dry run
	written := false
	if dryRun {
		log.Info().Int("rows", outcome.Output.Len()).Msg("Dry run, no file written")
	} else {
		if err := ctx.Err(); err != nil {
			return nil, errors.ErrCanceled
		}
		if err := tabular.WriteFile(o.config.outputPath, outcome.Output); err != nil {
			log.Error().Err(err).Str("file", o.config.outputPath).Msg("Failed to write output")
			return nil, err
		}
		written = true
		log.Info().Str("file", o.config.outputPath).Int("rows", outcome.Output.Len()).Msg("Generated output file")
	}

	// Step 8: Log a few example rows for the operator
	o.reporter.Samples(ctx, outcome.Output)

	return &Result{
		OutputPath:      o.config.outputPath,
		Output:          outcome.Output,
		Written:         written,
		RosterRows:      outcome.RosterRows,
		TerminatedCount: outcome.TerminatedCount,
		AlreadyInactive: outcome.AlreadyInactive,
		NewInactive:     outcome.NewInactive(),
		Duration:        time.Since(started),
	}, nil
}
