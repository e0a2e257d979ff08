// SPDX-License-Identifier: MPL-2.0

// Package config handles CLI configuration using Viper with CUE as the file format.
//
// Configuration is loaded from ~/.config/surety/config.cue (or XDG equivalent on
// Linux, ~/Library/Application Support/surety/config.cue on macOS,
// %APPDATA%\surety\config.cue on Windows). The file only carries presentation
// settings for the surety CLI (color scheme, verbosity, markdown theme); which
// optional capabilities exist is fixed at build time and is deliberately not
// configurable here.
//
// Files are validated against an embedded CUE schema (config_schema.cue) so
// invalid values fail with a clear path-prefixed message instead of being
// silently coerced.
package config
