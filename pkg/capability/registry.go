// SPDX-License-Identifier: MPL-2.0

package capability

import (
	"reflect"
	"sort"
	"strings"
	"sync"
)

// Registry is the table of loaded capability modules, keyed by fully-qualified
// name. A name is written at most once under normal operation: re-installing
// the exact same Module value is a no-op, installing a different value under
// an occupied name is an error. Entries are never removed; they live as long
// as the Registry itself.
type Registry struct {
	mu      sync.RWMutex
	modules map[string]Module
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{modules: make(map[string]Module)}
}

// Install records mod under name. Installing the same module under the same
// name again is idempotent; a conflicting entry yields an AlreadyInstalledError.
func (r *Registry) Install(name string, mod Module) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.modules[name]; ok {
		if sameModule(existing, mod) {
			return nil
		}
		return &AlreadyInstalledError{Name: name}
	}
	r.modules[name] = mod
	return nil
}

// sameModule reports whether a and b are the same module value. Modules are
// normally pointers, but a non-comparable dynamic type must not panic the
// interface comparison; those fall back to deep equality.
func sameModule(a, b Module) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if reflect.TypeOf(a).Comparable() && reflect.TypeOf(b).Comparable() {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}

// Lookup returns the module installed under name.
func (r *Registry) Lookup(name string) (Module, bool) {
	if name == "" {
		return nil, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	mod, ok := r.modules[name]
	return mod, ok
}

// Names returns all installed names in sorted order, for diagnostics.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.modules) == 0 {
		return nil
	}

	names := make([]string, 0, len(r.modules))
	for name := range r.modules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of installed entries.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.modules)
}
