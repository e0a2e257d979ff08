// SPDX-License-Identifier: MPL-2.0

package capability

import (
	"sort"
	"strings"
	"sync"
)

var defaultProviders = NewProviderSet()

// ProviderSet holds the providers announced by compiled-in sibling packages.
// Resolving a name that no sibling registered is the "not installed" signal.
type ProviderSet struct {
	mu        sync.RWMutex
	providers map[string]Provider
}

// NewProviderSet creates an empty ProviderSet.
func NewProviderSet() *ProviderSet {
	return &ProviderSet{providers: make(map[string]Provider)}
}

// Register adds a provider to the set. Duplicate names are rejected so two
// siblings cannot silently shadow each other.
func (s *ProviderSet) Register(p Provider) error {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return ErrEmptyName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.providers[p.Name]; exists {
		return &AlreadyRegisteredError{Name: p.Name}
	}
	s.providers[p.Name] = p
	return nil
}

// MustRegister panics on registration failure. Intended for sibling init()
// functions, where a duplicate name is a packaging defect.
func (s *ProviderSet) MustRegister(p Provider) {
	if err := s.Register(p); err != nil {
		panic(err)
	}
}

// Resolve returns the provider registered under name.
func (s *ProviderSet) Resolve(name string) (Provider, bool) {
	if name == "" {
		return Provider{}, false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.providers[name]
	return p, ok
}

// Names returns all registered provider names in sorted order.
func (s *ProviderSet) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.providers) == 0 {
		return nil
	}

	names := make([]string, 0, len(s.providers))
	for name := range s.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultProviders returns the process-wide set that sibling packages register
// into from init().
func DefaultProviders() *ProviderSet {
	return defaultProviders
}

// Register adds a provider to the default set.
func Register(p Provider) error {
	return defaultProviders.Register(p)
}

// MustRegister adds a provider to the default set, panicking on failure.
func MustRegister(p Provider) {
	defaultProviders.MustRegister(p)
}

// Resolve returns a provider from the default set.
func Resolve(name string) (Provider, bool) {
	return defaultProviders.Resolve(name)
}
