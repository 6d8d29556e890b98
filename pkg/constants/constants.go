// Package constants provides shared constants used throughout the offboard
// codebase. This includes file permissions, schema literals, and other
// configuration values that should be consistent across the application.
package constants

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Reporting constants
const (
	// DefaultSampleRows is how many output rows the reporter logs as examples
	DefaultSampleRows = 3
)

// Naming constants for date-stamped default file names
const (
	// DateStampLayout is the YYYYMMDD layout used in default input/output names
	DateStampLayout = "20060102"

	// DefaultRosterName is the fallback roster export file name
	DefaultRosterName = "employees.csv"

	// DefaultTerminationsSuffix is appended to the date stamp for the
	// default terminations file name
	DefaultTerminationsSuffix = "_terminations.csv"

	// DefaultOutputSuffix is appended to the date stamp for the default
	// output file name
	DefaultOutputSuffix = "_users_to_inactivate.csv"
)
