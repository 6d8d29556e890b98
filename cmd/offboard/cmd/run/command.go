// Package run implements the run command, which generates the deactivation
// list from the roster and termination exports.
package run

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/offboard/internal/appcontext"
)

// NewCommand creates the run command using app context.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var flags *Flags

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Generate the deactivation list",
		Long: `Run reads the roster and termination exports, selects the active users
whose work email appears in the termination feed with status "Terminated",
marks them inactive, and writes the result as a CSV file.

The output is validated before anything is written: no duplicate emails,
no users already inactive in the roster, every user present in the
termination feed, all required columns present, every row marked FALSE in
the active column, and no empty critical fields. A run that fails any rule
writes no file.

File locations default to the current date: employees.csv for the roster,
<YYYYMMDD>_terminations.csv for the feed, and <YYYYMMDD>_users_to_inactivate.csv
for the output.`,
		Example: `  offboard run                            # Use date-stamped defaults
  offboard run --roster hr_export.csv     # Explicit roster export
  offboard run --dry-run                  # Preview without writing
  offboard run --dry-run --format table   # Preview selected rows as a table
  offboard run -o deactivate.csv          # Explicit output file`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			return Execute(ctx, app, flags)
		},
	}

	// Add run-specific flags
	flags = addFlags(cmd)

	return cmd
}

// addFlags registers the run command's flags.
func addFlags(cmd *cobra.Command) *Flags {
	flags := &Flags{}
	cmd.Flags().StringVar(&flags.Roster, "roster", "", "roster export file (default employees.csv)")
	cmd.Flags().StringVar(&flags.Terminations, "terminations", "", "termination feed file (default <YYYYMMDD>_terminations.csv)")
	cmd.Flags().StringVarP(&flags.Output, "output", "o", "", "output file (default <YYYYMMDD>_users_to_inactivate.csv)")
	cmd.Flags().IntVar(&flags.Sample, "sample", -1, "example rows to log after a run, 0 disables (default from config)")
	cmd.Flags().BoolVar(&flags.DryRun, "dry-run", false, "reconcile and validate without writing the output file")
	return flags
}
