// Package app provides the application context and dependency management
// for the offboard CLI. It follows idiomatic Go patterns for CLI applications
// by centralizing configuration, dependency injection, and lifecycle management.
package app

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/offboard"
	"github.com/agentstation/offboard/pkg/errors"
)

// App represents the offboard application with all its dependencies.
// It provides a centralized place for configuration, logging, and the
// offboard instance, following the dependency injection pattern.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Offboard instance (lazy-initialized, singleton)
	mu sync.RWMutex
	ob offboard.Offboard
}

// New creates a new App instance with the given version information.
// The app is initialized with default configuration that can be
// customized using functional options.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	// Load configuration
	config, err := LoadConfig()
	if err != nil {
		return nil, errors.NewConfigError("app", "loading configuration", err)
	}
	app.config = config

	// Initialize logger
	logger := NewLogger(config)
	app.logger = &logger

	// Apply any custom options
	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// Offboard returns the offboard instance, creating it lazily if needed.
// This is thread-safe and ensures only one instance is created.
func (a *App) Offboard() (offboard.Offboard, error) {
	a.mu.RLock()
	if a.ob != nil {
		ob := a.ob
		a.mu.RUnlock()
		return ob, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	// Double-check after acquiring write lock
	if a.ob != nil {
		return a.ob, nil
	}

	ob, err := offboard.New(a.buildOffboardOptions()...)
	if err != nil {
		return nil, err
	}

	a.ob = ob
	return ob, nil
}

// OffboardWithOptions returns a new offboard instance with the given
// options applied on top of the configured defaults, so explicit options
// win over configuration. This is useful for commands whose flags override
// the configured file locations.
func (a *App) OffboardWithOptions(opts ...offboard.Option) (offboard.Offboard, error) {
	return offboard.New(append(a.buildOffboardOptions(), opts...)...)
}

// buildOffboardOptions constructs offboard options from the app configuration.
func (a *App) buildOffboardOptions() []offboard.Option {
	opts := []offboard.Option{
		offboard.WithLogger(a.logger),
		offboard.WithSampleRows(a.config.SampleRows),
	}

	// The facade supplies date-stamped defaults for unset locations
	if a.config.RosterFile != "" {
		opts = append(opts, offboard.WithRosterPath(a.config.RosterFile))
	}
	if a.config.TerminationsFile != "" {
		opts = append(opts, offboard.WithTerminationsPath(a.config.TerminationsFile))
	}
	if a.config.OutputFile != "" {
		opts = append(opts, offboard.WithOutputPath(a.config.OutputFile))
	}

	return opts
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithOffboard sets a custom offboard instance (useful for testing).
func WithOffboard(ob offboard.Offboard) Option {
	return func(a *App) error {
		a.ob = ob
		return nil
	}
}
