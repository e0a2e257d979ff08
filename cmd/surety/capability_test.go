// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"testing"

	"surety/pkg/capability"
)

type stubModule struct{ name string }

func (m *stubModule) Name() string        { return m.name }
func (m *stubModule) Description() string { return "stub " + m.name }

func TestBindDefault_UsesRegisteredProviders(t *testing.T) {
	// The default provider set is process-wide, mirroring how sibling
	// packages register from init(). Registering here is permanent for the
	// test binary, which is exactly the production shape.
	mod := &stubModule{name: "surety-config"}
	capability.MustRegister(capability.Provider{
		Name:        "surety-config",
		Description: "configuration capability",
		Open:        func() (capability.Module, error) { return mod, nil },
	})

	binder, descs, err := bindDefault()
	if err != nil {
		t.Fatalf("bindDefault() error = %v, want nil", err)
	}

	foundBound := false
	for _, status := range binder.Inspect(descs) {
		switch status.Descriptor.Alias {
		case "config":
			if !status.Installed || !status.Bound {
				t.Errorf("config status = (installed %t, bound %t), want (true, true)",
					status.Installed, status.Bound)
			}
			foundBound = true
		case "diff":
			if status.Installed || status.Bound {
				t.Errorf("diff status = (installed %t, bound %t), want (false, false)",
					status.Installed, status.Bound)
			}
		}
	}
	if !foundBound {
		t.Error("Inspect() did not report the config descriptor")
	}
}
