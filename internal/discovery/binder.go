// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"fmt"
	"strings"

	"surety/pkg/capability"
)

// AliasCollisionError is returned when two descriptors claim the same alias.
// The built-in descriptor list never collides; this guards custom descriptor
// lists supplied by embedders and tests.
type AliasCollisionError struct {
	// Alias is the contested alias name.
	Alias string
	// FirstExternal is the external name of the descriptor seen first.
	FirstExternal string
	// SecondExternal is the external name of the conflicting descriptor.
	SecondExternal string
}

// Error implements the error interface.
func (e *AliasCollisionError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "alias collision: %q claimed by both:\n", e.Alias)
	fmt.Fprintf(&sb, "  - %s\n", e.FirstExternal)
	fmt.Fprintf(&sb, "  - %s\n\n", e.SecondExternal)
	sb.WriteString("Give each descriptor a distinct alias before binding.")
	return sb.String()
}

// Binder resolves descriptors against a provider set and installs the results
// into a registry. It holds no state of its own beyond the two tables.
type Binder struct {
	registry  *capability.Registry
	providers *capability.ProviderSet
}

// NewBinder creates a Binder over the given registry and provider set.
func NewBinder(reg *capability.Registry, providers *capability.ProviderSet) *Binder {
	return &Binder{registry: reg, providers: providers}
}

// BindAll processes descriptors in order, independently:
//
//   - sibling not installed (no provider): skipped, silently
//   - sibling installed and opens cleanly: registered under its external name
//     and under its alias, same module value for both entries
//   - sibling installed but fails to open: the provider's error is returned
//     as-is and binding stops
//
// Binding is strictly additive and idempotent: repeating the call with the
// same provider availability leaves the registry unchanged. Alias collisions
// among the descriptors themselves fail fast before anything is bound.
func (b *Binder) BindAll(descs []Descriptor) error {
	if err := validateDescriptors(descs); err != nil {
		return err
	}

	for _, d := range descs {
		if err := b.bindOne(d); err != nil {
			return err
		}
	}
	return nil
}

// bindOne attempts to bind a single descriptor. A module already present
// under the external name is reused as-is, preserving identity across
// repeated binds.
func (b *Binder) bindOne(d Descriptor) error {
	mod, loaded := b.registry.Lookup(d.External)
	if !loaded {
		provider, installed := b.providers.Resolve(d.External)
		if !installed {
			// Expected absence: the sibling was never compiled in.
			return nil
		}

		opened, err := provider.Open()
		if err != nil {
			// Present but broken. Surface the provider's own error
			// without wrapping so the root cause stays visible.
			return err
		}

		if err := b.registry.Install(d.External, opened); err != nil {
			return err
		}
		mod = opened
	}

	return b.registry.Install(d.Alias, mod)
}

// validateDescriptors rejects blank names and duplicate aliases before any
// registry mutation happens.
func validateDescriptors(descs []Descriptor) error {
	seen := make(map[string]string, len(descs)) // alias -> external of first claim
	for _, d := range descs {
		if strings.TrimSpace(d.External) == "" || strings.TrimSpace(d.Alias) == "" {
			return fmt.Errorf("invalid descriptor %q: external name and alias are required", d)
		}
		if first, exists := seen[d.Alias]; exists {
			return &AliasCollisionError{
				Alias:          d.Alias,
				FirstExternal:  first,
				SecondExternal: d.External,
			}
		}
		seen[d.Alias] = d.External
	}
	return nil
}
