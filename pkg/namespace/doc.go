// SPDX-License-Identifier: MPL-2.0

// Package namespace exposes the surety parent namespace.
//
// A Namespace is built once, binding whichever optional siblings are compiled
// into the binary, and then serves lookups by alias:
//
//	ns, err := namespace.New()
//	if err != nil {
//	    // an installed sibling failed to initialize
//	}
//	cfg, err := ns.Lookup("config")
//
// Lookup on an alias whose sibling is absent returns a NotBoundError,
// indistinguishable from the alias never having been declared.
package namespace
