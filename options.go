package offboard

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/agentstation/offboard/pkg/constants"
	"github.com/agentstation/offboard/pkg/errors"
)

// config holds the runtime configuration assembled from options.
type config struct {
	rosterPath       string
	terminationsPath string
	outputPath       string
	sampleRows       int
	logger           *zerolog.Logger
}

// defaultConfig returns the configuration used when no options override it.
// Input and output names carry the current date, matching the daily export
// naming scheme.
func defaultConfig() *config {
	stamp := time.Now().Format(constants.DateStampLayout)
	return &config{
		rosterPath:       constants.DefaultRosterName,
		terminationsPath: stamp + constants.DefaultTerminationsSuffix,
		outputPath:       stamp + constants.DefaultOutputSuffix,
		sampleRows:       constants.DefaultSampleRows,
	}
}

// Option is a function that modifies the offboard configuration.
type Option func(*config) error

// WithRosterPath sets the roster export file to read.
func WithRosterPath(path string) Option {
	return func(c *config) error {
		if path == "" {
			return errors.NewConfigError("offboard", "roster path must not be empty", nil)
		}
		c.rosterPath = path
		return nil
	}
}

// WithTerminationsPath sets the termination feed file to read.
func WithTerminationsPath(path string) Option {
	return func(c *config) error {
		if path == "" {
			return errors.NewConfigError("offboard", "terminations path must not be empty", nil)
		}
		c.terminationsPath = path
		return nil
	}
}

// WithOutputPath sets the file the deactivation list is written to.
func WithOutputPath(path string) Option {
	return func(c *config) error {
		if path == "" {
			return errors.NewConfigError("offboard", "output path must not be empty", nil)
		}
		c.outputPath = path
		return nil
	}
}

// WithSampleRows sets how many output rows are logged as examples after a
// run. Zero disables sample logging.
func WithSampleRows(n int) Option {
	return func(c *config) error {
		if n < 0 {
			return errors.NewConfigError("offboard", "sample rows must not be negative", nil)
		}
		c.sampleRows = n
		return nil
	}
}

// WithLogger sets the logger used for run progress and statistics.
func WithLogger(logger *zerolog.Logger) Option {
	return func(c *config) error {
		if logger == nil {
			return errors.NewConfigError("offboard", "logger must not be nil", nil)
		}
		c.logger = logger
		return nil
	}
}
