package offboard

import (
	"fmt"
	"time"

	"github.com/agentstation/offboard/pkg/tabular"
)

// Result summarizes a completed run or check.
type Result struct {
	// OutputPath is the file the deactivation list was (or would be)
	// written to. For a check it is the file that was inspected.
	OutputPath string `json:"output_path" yaml:"output_path"`

	// Output is the validated deactivation table itself, for callers
	// that want to display or post-process the rows.
	Output *tabular.Table `json:"-" yaml:"-"`

	// Written reports whether the output file was written. It is false
	// for dry runs and checks.
	Written bool `json:"written" yaml:"written"`

	// RosterRows is the number of data rows in the roster export.
	RosterRows int `json:"roster_rows" yaml:"roster_rows"`

	// TerminatedCount is the number of distinct terminated emails in
	// the feed.
	TerminatedCount int `json:"terminated" yaml:"terminated"`

	// AlreadyInactive is the number of roster users already marked
	// inactive before the run.
	AlreadyInactive int `json:"already_inactive" yaml:"already_inactive"`

	// NewInactive is the number of users selected for deactivation.
	NewInactive int `json:"new_inactive" yaml:"new_inactive"`

	// Duration is how long the operation took.
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// Summary returns a one-line human-readable summary of the result.
func (r *Result) Summary() string {
	if r == nil {
		return "no result"
	}
	if r.Written {
		return fmt.Sprintf("Generated %s with %d users to deactivate", r.OutputPath, r.NewInactive)
	}
	return fmt.Sprintf("%d users to deactivate, no file written", r.NewInactive)
}
