// Package roster defines the employee roster and termination feed schemas
// and the normalization applied to both before reconciliation.
package roster

// Roster export column names.
const (
	ColFirstName  = "first_name"
	ColLastName   = "last_name"
	ColEmail      = "email"
	ColCountry    = "country"
	ColDepartment = "department"
	ColBranch     = "branch"
	ColPhone      = "phone"
	ColManager    = "manager"
	ColJobTitle   = "job_title"
	ColGroup      = "group"
	ColActive     = "active"
)

// Termination feed column names, as exported by the HR system. These exact
// external names differ from the roster's own email/active naming; no other
// column aliasing is performed.
const (
	ColEmploymentStatus = "Employment Status"
	ColWorkEmail        = "Work Email"
)

// Status literals.
const (
	// StatusTerminated marks a termination row as confirmed. The comparison
	// is exact; variants such as "terminated" or "Resigned" do not count.
	StatusTerminated = "Terminated"

	// StatusInactive is the literal written to the active field of every
	// output row. A roster row whose uppercased active field equals it is
	// treated as already inactive.
	StatusInactive = "FALSE"
)

// OutputColumns is the fixed, ordered schema of the output file.
var OutputColumns = []string{
	ColFirstName,
	ColLastName,
	ColEmail,
	ColCountry,
	ColDepartment,
	ColBranch,
	ColPhone,
	ColManager,
	ColJobTitle,
	ColGroup,
	ColActive,
}

// CriticalColumns are the output fields that may never be empty, checked in
// this order.
var CriticalColumns = []string{
	ColEmail,
	ColFirstName,
	ColLastName,
	ColActive,
}
