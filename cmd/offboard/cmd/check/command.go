// Package check implements the check command, which validates an existing
// deactivation list against the roster and termination exports.
package check

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentstation/offboard"
	"github.com/agentstation/offboard/internal/appcontext"
	"github.com/agentstation/offboard/internal/cmd/output"
)

// Flags holds the check command's flag values.
type Flags struct {
	Roster       string
	Terminations string
}

// NewCommand creates the check command using app context.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var flags *Flags

	cmd := &cobra.Command{
		Use:   "check <output-file>",
		Short: "Validate an existing deactivation list",
		Args:  cobra.ExactArgs(1),
		Long: `Check re-runs the acceptance rules against an already generated output
file, using the roster and termination exports that produced it.

Checking against a newer roster export can legitimately fail: once the
deactivations have been applied upstream, the file's users are already
inactive in the roster.`,
		Example: `  offboard check 20240131_users_to_inactivate.csv
  offboard check out.csv --roster hr_export.csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Execute(cmd.Context(), app, flags, args[0])
		},
	}

	// Add check-specific flags
	flags = addFlags(cmd)

	return cmd
}

// addFlags registers the check command's flags.
func addFlags(cmd *cobra.Command) *Flags {
	flags := &Flags{}
	cmd.Flags().StringVar(&flags.Roster, "roster", "", "roster export file (default employees.csv)")
	cmd.Flags().StringVar(&flags.Terminations, "terminations", "", "termination feed file (default <YYYYMMDD>_terminations.csv)")
	return flags
}

// Options converts the flag values into offboard options.
func (f *Flags) Options() []offboard.Option {
	var opts []offboard.Option
	if f.Roster != "" {
		opts = append(opts, offboard.WithRosterPath(f.Roster))
	}
	if f.Terminations != "" {
		opts = append(opts, offboard.WithTerminationsPath(f.Terminations))
	}
	return opts
}

// Execute validates the output file at outputPath.
func Execute(ctx context.Context, app appcontext.Interface, flags *Flags, outputPath string) error {
	ob, err := app.OffboardWithOptions(flags.Options()...)
	if err != nil {
		return err
	}

	result, err := ob.Check(ctx, outputPath)
	if err != nil {
		return err
	}

	format := output.DetectFormat(app.OutputFormat())
	switch format {
	case output.FormatJSON, output.FormatYAML:
		return output.FormatResult(os.Stdout, format, result)
	}

	fmt.Printf("%s passed validation (%d users)\n", result.OutputPath, result.NewInactive)
	return nil
}
