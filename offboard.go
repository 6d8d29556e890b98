// Package offboard reconciles an employee roster export against a
// termination feed and produces the list of users whose accounts should be
// deactivated.
//
// A run reads both CSV exports, normalizes the identity and status columns,
// selects the active roster users whose email appears in the termination
// feed, marks them inactive, and validates the candidate output against a
// fixed set of acceptance rules before writing it. A run that fails
// validation writes nothing.
//
// Example usage:
//
//	ob, err := offboard.New(
//		offboard.WithRosterPath("employees.csv"),
//		offboard.WithTerminationsPath("20240131_terminations.csv"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	result, err := ob.Run(context.Background())
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(result.Summary())
package offboard

import (
	"context"
	"fmt"

	"github.com/agentstation/offboard/pkg/report"
)

// Offboard turns roster and termination exports into a deactivation list.
type Offboard interface {
	// Run executes the full pipeline and writes the output file.
	Run(ctx context.Context) (*Result, error)

	// Reconcile executes the pipeline without writing the output file.
	Reconcile(ctx context.Context) (*Result, error)

	// Check validates an existing output file against the configured
	// roster and termination inputs.
	Check(ctx context.Context, outputPath string) (*Result, error)
}

// Compile-time check that *offboard implements the Offboard interface.
var _ Offboard = (*offboard)(nil)

// offboard is the internal implementation of the Offboard interface.
type offboard struct {
	config   *config
	reporter *report.Reporter
}

// New creates a new Offboard instance with the given options.
func New(opts ...Option) (Offboard, error) {
	ob := &offboard{config: defaultConfig()}

	if err := ob.options(opts...); err != nil {
		return nil, fmt.Errorf("applying options: %w", err)
	}

	ob.reporter = &report.Reporter{Sample: ob.config.sampleRows}
	return ob, nil
}

// options applies functional options to the configuration.
func (o *offboard) options(opts ...Option) error {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(o.config); err != nil {
			return err
		}
	}
	return nil
}
