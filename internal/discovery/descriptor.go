// SPDX-License-Identifier: MPL-2.0

package discovery

// Descriptor pairs a sibling package's published name with the alias it is
// exposed under inside the surety namespace. Descriptors are fixed at build
// time and are not user-configurable.
type Descriptor struct {
	// External is the sibling's published name (e.g. "surety-config").
	External string
	// Alias is the name the capability answers to inside the namespace
	// (e.g. "config").
	Alias string
}

// String returns a human-readable representation of the descriptor.
func (d Descriptor) String() string {
	return d.External + " -> " + d.Alias
}

// knownDescriptors is the definitive list of optional siblings surety knows
// how to expose. Order matters only for deterministic diagnostics output;
// binding outcomes are independent per descriptor.
var knownDescriptors = []Descriptor{
	{External: "surety-config", Alias: "config"},
	{External: "surety-diff", Alias: "diff"},
}

// KnownDescriptors returns a copy of the built-in descriptor list.
func KnownDescriptors() []Descriptor {
	descs := make([]Descriptor, len(knownDescriptors))
	copy(descs, knownDescriptors)
	return descs
}
