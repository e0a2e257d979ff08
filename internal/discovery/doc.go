// SPDX-License-Identifier: MPL-2.0

// Package discovery binds optional sibling capabilities into the surety
// namespace.
//
// The binder walks a fixed list of descriptors, each pairing a sibling's
// published name with the alias it is exposed under (surety-config -> config,
// surety-diff -> diff). A sibling whose provider was never compiled in is
// skipped silently; a sibling whose provider fails to open aborts binding
// with the provider's own error, untouched, so the root cause stays visible.
package discovery
