// SPDX-License-Identifier: MPL-2.0

package config

import "context"

// LoadOptions defines explicit configuration loading inputs.
type LoadOptions struct {
	// ConfigFilePath forces loading from a specific config file when set.
	ConfigFilePath string
	// ConfigDirPath overrides the config directory lookup when set.
	ConfigDirPath string
}

// Result carries a loaded configuration together with the file it came from.
// Path is empty when no config file was found and defaults applied.
type Result struct {
	Config *Config
	Path   string
}

// Provider loads configuration from explicit options. The package-level Load
// and LoadResolved wrappers route through it, building options from the
// CLI overrides.
type Provider interface {
	Load(ctx context.Context, opts LoadOptions) (Result, error)
}

type fileProvider struct{}

// NewProvider creates a configuration provider.
func NewProvider() Provider {
	return &fileProvider{}
}

// Load reads configuration from the requested source.
func (p *fileProvider) Load(ctx context.Context, opts LoadOptions) (Result, error) {
	cfg, path, err := loadWithOptions(ctx, opts)
	if err != nil {
		return Result{}, err
	}

	return Result{Config: cfg, Path: path}, nil
}
