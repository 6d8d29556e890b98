package run

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/agentstation/offboard"
	"github.com/agentstation/offboard/internal/appcontext"
	"github.com/agentstation/offboard/pkg/logging"
)

const rosterFixture = `first_name,last_name,email,country,department,branch,phone,manager,job_title,group,active
Alice,Smith,alice@example.com,US,Engineering,NYC,555-0100,Bob Jones,Engineer,Core,TRUE
`

const feedFixture = `Work Email,Employment Status
alice@example.com,Terminated
`

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture %s: %v", name, err)
	}
	return path
}

func mockApp(opts ...offboard.Option) *appcontext.Mock {
	return &appcontext.Mock{
		OffboardWithOptionsFunc: func(flagOpts ...offboard.Option) (offboard.Offboard, error) {
			return offboard.New(append(opts, flagOpts...)...)
		},
		OutputFormatFunc: func() string { return "json" },
	}
}

// TestFlagsOptions verifies unset flags produce no options.
func TestFlagsOptions(t *testing.T) {
	empty := &Flags{Sample: -1}
	if got := len(empty.Options()); got != 0 {
		t.Errorf("Options() returned %d options for unset flags, want 0", got)
	}

	full := &Flags{Roster: "r.csv", Terminations: "t.csv", Output: "o.csv", Sample: 0}
	if got := len(full.Options()); got != 4 {
		t.Errorf("Options() returned %d options, want 4", got)
	}
}

// TestExecute verifies a full run through the command layer.
func TestExecute(t *testing.T) {
	dir := t.TempDir()
	rosterPath := writeFixture(t, dir, "employees.csv", rosterFixture)
	feedPath := writeFixture(t, dir, "terminations.csv", feedFixture)
	outputPath := filepath.Join(dir, "out.csv")

	app := mockApp(offboard.WithLogger(logging.NewNopLogger()))
	flags := &Flags{
		Roster:       rosterPath,
		Terminations: feedPath,
		Output:       outputPath,
		Sample:       -1,
	}

	if err := Execute(context.Background(), app, flags); err != nil {
		t.Fatalf("Execute() failed: %v", err)
	}

	if _, err := os.Stat(outputPath); err != nil {
		t.Errorf("output file not written: %v", err)
	}
}

// TestExecute_DryRun verifies no file is written on a dry run.
func TestExecute_DryRun(t *testing.T) {
	dir := t.TempDir()
	rosterPath := writeFixture(t, dir, "employees.csv", rosterFixture)
	feedPath := writeFixture(t, dir, "terminations.csv", feedFixture)
	outputPath := filepath.Join(dir, "out.csv")

	app := mockApp(offboard.WithLogger(logging.NewNopLogger()))
	flags := &Flags{
		Roster:       rosterPath,
		Terminations: feedPath,
		Output:       outputPath,
		Sample:       -1,
		DryRun:       true,
	}

	if err := Execute(context.Background(), app, flags); err != nil {
		t.Fatalf("Execute() failed: %v", err)
	}

	if _, err := os.Stat(outputPath); !os.IsNotExist(err) {
		t.Error("dry run wrote the output file")
	}
}

// TestExecute_Error verifies pipeline errors propagate.
func TestExecute_Error(t *testing.T) {
	dir := t.TempDir()
	feedPath := writeFixture(t, dir, "terminations.csv", feedFixture)

	app := mockApp(offboard.WithLogger(logging.NewNopLogger()))
	flags := &Flags{
		Roster:       filepath.Join(dir, "missing.csv"),
		Terminations: feedPath,
		Output:       filepath.Join(dir, "out.csv"),
		Sample:       -1,
	}

	if err := Execute(context.Background(), app, flags); err == nil {
		t.Fatal("Execute() succeeded with a missing roster")
	}
}
