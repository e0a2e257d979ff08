// SPDX-License-Identifier: MPL-2.0

package discovery

type (
	// Status reports the binding state of one descriptor. Statuses are
	// returned to callers (rather than written to stderr) so the CLI layer
	// owns all rendering policy.
	Status struct {
		// Descriptor is the probed descriptor.
		Descriptor Descriptor
		// Installed reports whether a provider is registered for the
		// external name.
		Installed bool
		// Bound reports whether the alias currently resolves in the
		// registry.
		Bound bool
		// Description is the provider's summary, empty when not installed.
		Description string
	}
)

// Inspect probes each descriptor without mutating the registry. It reflects
// whatever state a prior BindAll left behind, so calling it before binding
// reports Installed but not Bound for present siblings.
func (b *Binder) Inspect(descs []Descriptor) []Status {
	statuses := make([]Status, 0, len(descs))
	for _, d := range descs {
		provider, installed := b.providers.Resolve(d.External)
		_, bound := b.registry.Lookup(d.Alias)

		s := Status{Descriptor: d, Installed: installed, Bound: bound}
		if installed {
			s.Description = provider.Description
		}
		statuses = append(statuses, s)
	}
	return statuses
}
