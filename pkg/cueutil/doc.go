// SPDX-License-Identifier: MPL-2.0

// Package cueutil provides shared helpers for validating CUE input.
//
// surety's CLI configuration is written in CUE and validated against an
// embedded schema before use. This package turns CUE's multi-error values
// into single, path-prefixed messages (config.cue: ui.color_scheme: ...)
// and guards against oversized input files.
package cueutil
