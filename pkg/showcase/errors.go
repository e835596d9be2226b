package showcase

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	// ErrQuit indicates the window was closed or the platform asked the app
	// to quit. It unwinds the router; it is not a failure.
	ErrQuit = errors.New("quit requested")
)

// InfrastructureError represents a renderer-level failure (SDL init, font
// missing, texture creation). These errors are fatal for the running app.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "init", "load_font")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("showcase: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("showcase: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}

// IsQuit checks if an error is a quit request.
func IsQuit(err error) bool {
	return errors.Is(err, ErrQuit)
}
