// SPDX-License-Identifier: MPL-2.0

package namespace

import (
	"errors"
	"fmt"
	"sort"

	"surety/internal/discovery"
	"surety/pkg/capability"
)

// ErrNotBound is the sentinel error wrapped by NotBoundError.
var ErrNotBound = errors.New("capability not bound")

type (
	// Namespace is the parent namespace after initialization. It owns its
	// registry; nothing is shared through package-level state except the
	// default provider set that siblings register into.
	Namespace struct {
		registry    *capability.Registry
		descriptors []discovery.Descriptor
	}

	// NotBoundError is returned by Lookup for an alias that did not bind.
	// It wraps ErrNotBound for errors.Is() compatibility.
	NotBoundError struct {
		Alias string
	}

	// Option customizes namespace construction. The zero configuration uses
	// the default provider set and the built-in descriptor list.
	Option func(*options)

	options struct {
		registry    *capability.Registry
		providers   *capability.ProviderSet
		descriptors []discovery.Descriptor
	}
)

// Error implements the error interface.
func (e *NotBoundError) Error() string {
	return fmt.Sprintf("capability %q is not bound (sibling package not installed)", e.Alias)
}

// Unwrap returns the sentinel for errors.Is() checks.
func (e *NotBoundError) Unwrap() error {
	return ErrNotBound
}

// WithRegistry supplies a pre-populated registry. Entries already present
// under a descriptor's external name are reused instead of re-opened.
func WithRegistry(reg *capability.Registry) Option {
	return func(o *options) { o.registry = reg }
}

// WithProviders overrides the provider set probed during binding.
func WithProviders(providers *capability.ProviderSet) Option {
	return func(o *options) { o.providers = providers }
}

// WithDescriptors overrides the built-in descriptor list.
func WithDescriptors(descs ...discovery.Descriptor) Option {
	return func(o *options) { o.descriptors = descs }
}

// New builds the namespace, binding every available optional sibling exactly
// once. An absent sibling is skipped silently; an installed sibling that fails
// to initialize makes New fail with that sibling's error, unmodified.
func New(opts ...Option) (*Namespace, error) {
	o := options{
		registry:    capability.NewRegistry(),
		providers:   capability.DefaultProviders(),
		descriptors: discovery.KnownDescriptors(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	binder := discovery.NewBinder(o.registry, o.providers)
	if err := binder.BindAll(o.descriptors); err != nil {
		return nil, err
	}

	return &Namespace{registry: o.registry, descriptors: o.descriptors}, nil
}

// Lookup returns the capability bound under alias.
func (n *Namespace) Lookup(alias string) (capability.Module, error) {
	mod, ok := n.registry.Lookup(alias)
	if !ok {
		return nil, &NotBoundError{Alias: alias}
	}
	return mod, nil
}

// Aliases returns the sorted aliases that actually bound.
func (n *Namespace) Aliases() []string {
	var aliases []string
	for _, d := range n.descriptors {
		if _, ok := n.registry.Lookup(d.Alias); ok {
			aliases = append(aliases, d.Alias)
		}
	}
	sort.Strings(aliases)
	return aliases
}

// Registry exposes the underlying registry for diagnostics.
func (n *Namespace) Registry() *capability.Registry {
	return n.registry
}
