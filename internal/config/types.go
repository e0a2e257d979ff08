// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidUIConfig is the sentinel error wrapped by InvalidUIConfigError.
	ErrInvalidUIConfig = errors.New("invalid UI config")
)

type (
	// ColorScheme selects the terminal color scheme for CLI output.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not
	// recognized. It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// InvalidUIConfigError is returned when the UI section fails validation.
	// It wraps ErrInvalidUIConfig for errors.Is() compatibility.
	InvalidUIConfigError struct {
		Cause error
	}

	// UIConfig groups presentation settings.
	UIConfig struct {
		// ColorScheme selects auto, dark, or light output colors.
		ColorScheme ColorScheme `mapstructure:"color_scheme"`
		// Verbose enables verbose diagnostic output by default.
		Verbose bool `mapstructure:"verbose"`
		// GlamourTheme is the markdown rendering theme ("auto", "dark",
		// "light", "notty", or a glamour style name).
		GlamourTheme string `mapstructure:"glamour_theme"`
	}

	// Config is the root CLI configuration.
	Config struct {
		UI UIConfig `mapstructure:"ui"`
	}
)

// Error implements the error interface.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (expected auto, dark, or light)", string(e.Value))
}

// Unwrap returns the sentinel for errors.Is() checks.
func (e *InvalidColorSchemeError) Unwrap() error {
	return ErrInvalidColorScheme
}

// Error implements the error interface.
func (e *InvalidUIConfigError) Error() string {
	return fmt.Sprintf("invalid UI config: %v", e.Cause)
}

// Unwrap returns the sentinel for errors.Is() checks.
func (e *InvalidUIConfigError) Unwrap() error {
	return ErrInvalidUIConfig
}

// Validate checks that the scheme is one of the known values.
func (s ColorScheme) Validate() error {
	switch s {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return nil
	default:
		return &InvalidColorSchemeError{Value: s}
	}
}

// Validate checks the UI section.
func (u UIConfig) Validate() error {
	if err := u.ColorScheme.Validate(); err != nil {
		return &InvalidUIConfigError{Cause: err}
	}
	return nil
}

// Validate checks the whole configuration.
func (c *Config) Validate() error {
	return c.UI.Validate()
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			ColorScheme:  ColorSchemeAuto,
			Verbose:      false,
			GlamourTheme: "auto",
		},
	}
}
