package run

import (
	"context"
	"fmt"
	"os"

	"github.com/agentstation/offboard"
	"github.com/agentstation/offboard/internal/appcontext"
	"github.com/agentstation/offboard/internal/cmd/output"
)

// Flags holds the run command's flag values.
type Flags struct {
	Roster       string
	Terminations string
	Output       string
	Sample       int
	DryRun       bool
}

// Options converts the flag values into offboard options. Unset flags are
// omitted so configuration and date-stamped defaults apply.
func (f *Flags) Options() []offboard.Option {
	var opts []offboard.Option
	if f.Roster != "" {
		opts = append(opts, offboard.WithRosterPath(f.Roster))
	}
	if f.Terminations != "" {
		opts = append(opts, offboard.WithTerminationsPath(f.Terminations))
	}
	if f.Output != "" {
		opts = append(opts, offboard.WithOutputPath(f.Output))
	}
	if f.Sample >= 0 {
		opts = append(opts, offboard.WithSampleRows(f.Sample))
	}
	return opts
}

// Execute performs the run with the given flags.
func Execute(ctx context.Context, app appcontext.Interface, flags *Flags) error {
	ob, err := app.OffboardWithOptions(flags.Options()...)
	if err != nil {
		return err
	}

	var result *offboard.Result
	if flags.DryRun {
		result, err = ob.Reconcile(ctx)
	} else {
		result, err = ob.Run(ctx)
	}
	if err != nil {
		return err
	}

	return printResult(app, flags, result)
}

// printResult writes the result to stdout in the configured format.
func printResult(app appcontext.Interface, flags *Flags, result *offboard.Result) error {
	format := output.DetectFormat(app.OutputFormat())

	switch format {
	case output.FormatJSON, output.FormatYAML:
		return output.FormatResult(os.Stdout, format, result)
	}

	// Human-readable output: headline summary, plus the selected rows on
	// a dry run
	fmt.Println(result.Summary())
	if flags.DryRun && result.Output != nil && result.Output.Len() > 0 {
		formatter := output.NewFormatter(output.FormatTable)
		return formatter.Format(os.Stdout, output.PreviewData(result.Output, 0))
	}
	return nil
}
