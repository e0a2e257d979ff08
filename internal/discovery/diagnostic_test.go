// SPDX-License-Identifier: MPL-2.0

package discovery

import "testing"

func TestInspect_BeforeAndAfterBind(t *testing.T) {
	f := newFixture()
	f.install("surety-config")

	descs := KnownDescriptors()

	// Before binding: installed siblings show up, nothing is bound yet.
	for _, status := range f.binder.Inspect(descs) {
		if status.Bound {
			t.Errorf("Inspect() before bind: %s Bound = true, want false", status.Descriptor)
		}
		wantInstalled := status.Descriptor.External == "surety-config"
		if status.Installed != wantInstalled {
			t.Errorf("Inspect() %s Installed = %t, want %t",
				status.Descriptor, status.Installed, wantInstalled)
		}
	}

	if err := f.binder.BindAll(descs); err != nil {
		t.Fatalf("BindAll() error = %v", err)
	}

	statuses := f.binder.Inspect(descs)
	if len(statuses) != len(descs) {
		t.Fatalf("len(Inspect()) = %d, want %d", len(statuses), len(descs))
	}

	for _, status := range statuses {
		switch status.Descriptor.External {
		case "surety-config":
			if !status.Installed || !status.Bound {
				t.Errorf("%s = (installed %t, bound %t), want (true, true)",
					status.Descriptor, status.Installed, status.Bound)
			}
			if status.Description == "" {
				t.Errorf("%s Description is empty, want provider description", status.Descriptor)
			}
		case "surety-diff":
			if status.Installed || status.Bound {
				t.Errorf("%s = (installed %t, bound %t), want (false, false)",
					status.Descriptor, status.Installed, status.Bound)
			}
			if status.Description != "" {
				t.Errorf("%s Description = %q, want empty for absent sibling",
					status.Descriptor, status.Description)
			}
		}
	}
}
