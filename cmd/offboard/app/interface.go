package app

import (
	"github.com/agentstation/offboard/internal/appcontext"
)

// Interface is an alias to the shared appcontext.Interface, so callers in
// this package's tests and main can name it without the extra import.
type Interface = appcontext.Interface

// Ensure App implements appcontext.Interface at compile time.
var _ appcontext.Interface = (*App)(nil)
