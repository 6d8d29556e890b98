package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/offboard"
)

// Mock provides a mock implementation of Interface for testing.
// Each method can be customized by setting the corresponding function field.
// If a function field is nil, the method returns a default/zero value.
type Mock struct {
	OffboardFunc            func() (offboard.Offboard, error)
	OffboardWithOptionsFunc func(...offboard.Option) (offboard.Offboard, error)
	LoggerFunc              func() *zerolog.Logger
	OutputFormatFunc        func() string
	VersionFunc             func() string
	CommitFunc              func() string
	DateFunc                func() string
	BuiltByFunc             func() string
}

// Compile-time check that Mock implements Interface.
var _ Interface = (*Mock)(nil)

// Offboard returns an instance using the mock function or nil.
func (m *Mock) Offboard() (offboard.Offboard, error) {
	if m.OffboardFunc != nil {
		return m.OffboardFunc()
	}
	return nil, nil
}

// OffboardWithOptions returns an instance using the mock function or nil.
func (m *Mock) OffboardWithOptions(opts ...offboard.Option) (offboard.Offboard, error) {
	if m.OffboardWithOptionsFunc != nil {
		return m.OffboardWithOptionsFunc(opts...)
	}
	return nil, nil
}

// Logger returns a logger using the mock function or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	logger := zerolog.Nop()
	return &logger
}

// OutputFormat returns a format using the mock function or "".
func (m *Mock) OutputFormat() string {
	if m.OutputFormatFunc != nil {
		return m.OutputFormatFunc()
	}
	return ""
}

// Version returns a version using the mock function or "dev".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "dev"
}

// Commit returns a commit using the mock function or "unknown".
func (m *Mock) Commit() string {
	if m.CommitFunc != nil {
		return m.CommitFunc()
	}
	return "unknown"
}

// Date returns a date using the mock function or "unknown".
func (m *Mock) Date() string {
	if m.DateFunc != nil {
		return m.DateFunc()
	}
	return "unknown"
}

// BuiltBy returns a builder using the mock function or "unknown".
func (m *Mock) BuiltBy() string {
	if m.BuiltByFunc != nil {
		return m.BuiltByFunc()
	}
	return "unknown"
}
