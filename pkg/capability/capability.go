// SPDX-License-Identifier: MPL-2.0

package capability

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyName is returned when a provider or registry name is blank.
	ErrEmptyName = errors.New("capability name is required")
	// ErrAlreadyRegistered is the sentinel error wrapped by AlreadyRegisteredError.
	ErrAlreadyRegistered = errors.New("provider already registered")
	// ErrAlreadyInstalled is the sentinel error wrapped by AlreadyInstalledError.
	ErrAlreadyInstalled = errors.New("module already installed")
)

type (
	// Module is a loaded optional capability. Implementations live in the
	// sibling packages; surety itself only moves Module values around.
	Module interface {
		// Name returns the capability's published name (e.g. "surety-config").
		Name() string
		// Description returns a short Markdown description of the capability.
		Description() string
	}

	// Provider describes an installable capability. A sibling package registers
	// one Provider per capability it ships; the Open function is the sibling's
	// own initialization and is only invoked when the capability is bound.
	Provider struct {
		// Name is the published name the capability is resolved by.
		Name string
		// Description is a short Markdown summary shown by diagnostics.
		Description string
		// Open loads the capability. An error here means the sibling is
		// present but broken; callers must not mask it.
		Open func() (Module, error)
	}

	// AlreadyRegisteredError is returned when two providers claim the same name.
	// It wraps ErrAlreadyRegistered for errors.Is() compatibility.
	AlreadyRegisteredError struct {
		Name string
	}

	// AlreadyInstalledError is returned when a registry entry would be
	// overwritten with a different module. It wraps ErrAlreadyInstalled.
	AlreadyInstalledError struct {
		Name string
	}
)

// Error implements the error interface.
func (e *AlreadyRegisteredError) Error() string {
	return fmt.Sprintf("provider %q already registered", e.Name)
}

// Unwrap returns the sentinel for errors.Is() checks.
func (e *AlreadyRegisteredError) Unwrap() error {
	return ErrAlreadyRegistered
}

// Error implements the error interface.
func (e *AlreadyInstalledError) Error() string {
	return fmt.Sprintf("module %q already installed with a different value", e.Name)
}

// Unwrap returns the sentinel for errors.Is() checks.
func (e *AlreadyInstalledError) Unwrap() error {
	return ErrAlreadyInstalled
}
