package sfoglia

import (
	"errors"
	"fmt"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/route"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/stack"
)

// Sentinel errors re-exported from the subpackages so hosts can errors.Is
// against this package alone.
var (
	// ErrDuplicateRoute indicates a route name registered twice, including
	// the implicit home name.
	ErrDuplicateRoute = route.ErrDuplicateRoute

	// ErrNoFallback indicates no fallback stage was configured before the
	// first resolution.
	ErrNoFallback = route.ErrNoFallback

	// ErrEmptyStack indicates an attempt to pop the root entry.
	ErrEmptyStack = stack.ErrEmptyStack

	// ErrGuardBusy indicates a pop attempted while another pop's guard
	// decision is still pending.
	ErrGuardBusy = stack.ErrGuardBusy
)

// ConfigError represents a configuration-time failure: something is wired
// wrong in the host's engine setup (duplicate route, missing fallback,
// missing home factory). These are fatal to the operation that surfaced
// them and are never caused by ordinary navigation.
type ConfigError struct {
	Op  string // Operation that failed (e.g., "register_route", "resolve")
	Err error  // Underlying error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("sfoglia: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("sfoglia: %s", e.Op)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// IsConfigError checks if an error is a configuration error.
func IsConfigError(err error) bool {
	var cfgErr *ConfigError
	return errors.As(err, &cfgErr)
}
