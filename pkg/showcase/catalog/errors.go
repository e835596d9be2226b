package catalog

import (
	"errors"
	"fmt"
)

// Configuration defects detected while building a registry.
var (
	ErrDuplicateName = errors.New("duplicate example name")
	ErrReservedName  = errors.New("example name is reserved")
	ErrInvalidName   = errors.New("example name is not a valid path segment")
	ErrMissingTitle  = errors.New("example has no title")
	ErrMissingScreen = errors.New("example has no screen")
)

// ConfigError reports a malformed registry entry. Name is the offending
// example, Index its position in the descriptor list.
type ConfigError struct {
	Name  Name
	Index int
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("catalog: example %q (#%d): %v", e.Name, e.Index, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// IsConfigError checks if an error is a registry configuration error.
func IsConfigError(err error) bool {
	var cfgErr *ConfigError
	return errors.As(err, &cfgErr)
}
