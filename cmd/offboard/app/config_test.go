package app

import (
	"testing"

	"github.com/agentstation/offboard/pkg/constants"
)

// TestLoadConfig verifies basic config loading.
func TestLoadConfig(t *testing.T) {
	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if config == nil {
		t.Fatal("LoadConfig() returned nil config")
	}

	// Verify defaults are set
	// Note: LogLevel may be empty (triggers precedence logic in logger.go)
	// LogFormat should have a default
	if config.LogFormat == "" {
		t.Error("LogFormat not set to default")
	}
	if config.LogOutput == "" {
		t.Error("LogOutput not set to default")
	}
	if config.SampleRows != constants.DefaultSampleRows {
		t.Errorf("SampleRows = %d, want %d", config.SampleRows, constants.DefaultSampleRows)
	}
}

// TestConfig_EnvironmentVariables verifies environment variable loading.
func TestConfig_EnvironmentVariables(t *testing.T) {
	t.Setenv("ROSTER_FILE", "hr_export.csv")
	t.Setenv("TERMINATIONS_FILE", "feed.csv")
	t.Setenv("OUTPUT_FILE", "deactivate.csv")
	t.Setenv("SAMPLE_ROWS", "5")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if config.RosterFile != "hr_export.csv" {
		t.Errorf("RosterFile = %s, want hr_export.csv", config.RosterFile)
	}
	if config.TerminationsFile != "feed.csv" {
		t.Errorf("TerminationsFile = %s, want feed.csv", config.TerminationsFile)
	}
	if config.OutputFile != "deactivate.csv" {
		t.Errorf("OutputFile = %s, want deactivate.csv", config.OutputFile)
	}
	if config.SampleRows != 5 {
		t.Errorf("SampleRows = %d, want 5", config.SampleRows)
	}
}

// TestConfig_UpdateFromFlags verifies flag values take precedence.
func TestConfig_UpdateFromFlags(t *testing.T) {
	config := &Config{
		Verbose:  false,
		Format:   "table",
		LogLevel: "",
	}

	config.UpdateFromFlags(true, false, true, "json", "debug")

	if !config.Verbose {
		t.Error("Verbose not updated from flag")
	}
	if !config.NoColor {
		t.Error("NoColor not updated from flag")
	}
	if config.Format != "json" {
		t.Errorf("Format = %s, want json", config.Format)
	}
	if config.LogLevel != "debug" {
		t.Errorf("LogLevel = %s, want debug", config.LogLevel)
	}

	// Empty flag values must not clobber existing settings
	config.UpdateFromFlags(true, false, true, "", "")
	if config.Format != "json" {
		t.Errorf("Format = %s after empty update, want json", config.Format)
	}
	if config.LogLevel != "debug" {
		t.Errorf("LogLevel = %s after empty update, want debug", config.LogLevel)
	}
}
