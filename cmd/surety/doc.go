// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for surety.
//
// This package implements the Cobra command hierarchy for the surety CLI:
// the root command, capability diagnostics (list, info, doctor), and
// configuration management.
package cmd
