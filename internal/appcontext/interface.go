// Package appcontext provides the shared application context interface
// used by all commands. This eliminates interface duplication across
// command packages and provides a single source of truth for app dependencies.
package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/offboard"
)

// Interface defines the application context interface that commands need.
// The App struct from cmd/offboard/app automatically implements this
// interface, providing dependency injection for commands while maintaining
// testability.
//
// Commands should accept this interface rather than the concrete App type,
// allowing for easier testing with mock implementations.
type Interface interface {
	// Offboard returns the shared offboard instance built from the
	// application configuration, creating it lazily if needed.
	Offboard() (offboard.Offboard, error)

	// OffboardWithOptions creates a new offboard instance with the given
	// options applied on top of the configured defaults, so explicit
	// options win. Use this when a command's flags override configuration.
	OffboardWithOptions(...offboard.Option) (offboard.Offboard, error)

	// Logger returns the configured logger instance.
	// Commands should use this for all logging operations.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (table, json, yaml).
	// Commands that support different output formats should use this.
	OutputFormat() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
