// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"surety/pkg/capability"
)

// fakeModule is a stand-in for a loaded sibling capability.
type fakeModule struct {
	name string
}

func (m *fakeModule) Name() string        { return m.name }
func (m *fakeModule) Description() string { return "fake " + m.name }

// fixture bundles a fresh registry, provider set, and binder for one test.
type fixture struct {
	registry  *capability.Registry
	providers *capability.ProviderSet
	binder    *Binder
}

func newFixture() *fixture {
	reg := capability.NewRegistry()
	providers := capability.NewProviderSet()
	return &fixture{
		registry:  reg,
		providers: providers,
		binder:    NewBinder(reg, providers),
	}
}

// install registers a well-behaved provider that opens to a stable module.
func (f *fixture) install(external string) *fakeModule {
	mod := &fakeModule{name: external}
	f.providers.MustRegister(capability.Provider{
		Name:        external,
		Description: "test capability " + external,
		Open: func() (capability.Module, error) {
			return mod, nil
		},
	})
	return mod
}

// installBroken registers a provider whose Open always fails with openErr.
func (f *fixture) installBroken(external string, openErr error) {
	f.providers.MustRegister(capability.Provider{
		Name: external,
		Open: func() (capability.Module, error) {
			return nil, openErr
		},
	})
}
