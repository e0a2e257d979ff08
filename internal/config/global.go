// SPDX-License-Identifier: MPL-2.0

package config

import "context"

var (
	// configDirOverride allows tests to override the config directory.
	// This is necessary because os.UserHomeDir() doesn't reliably respect
	// the HOME environment variable on all platforms (e.g., macOS in CI).
	configDirOverride string

	// configFilePathOverride forces loading from a specific file, set by the
	// --config flag before any command runs.
	configFilePathOverride string
)

// Reset clears test overrides. Call from test cleanup to restore defaults.
func Reset() {
	configDirOverride = ""
	configFilePathOverride = ""
}

// SetConfigDirOverride sets a custom config directory path.
// This is primarily intended for testing to bypass os.UserHomeDir() which
// doesn't reliably respect the HOME env var on all platforms (e.g., macOS in CI).
func SetConfigDirOverride(dir string) {
	configDirOverride = dir
}

// SetConfigFilePathOverride forces all subsequent Load calls to read the
// given file instead of searching the platform config directory.
func SetConfigFilePathOverride(path string) {
	configFilePathOverride = path
}

// Load reads configuration honoring the package-level overrides. It is the
// convenience entry point for the CLI layer; library code should use a
// Provider with explicit LoadOptions instead.
func Load() (*Config, error) {
	cfg, _, err := LoadResolved()
	return cfg, err
}

// LoadResolved is Load plus the path of the config file actually read, empty
// when defaults applied.
func LoadResolved() (*Config, string, error) {
	res, err := NewProvider().Load(context.Background(), LoadOptions{
		ConfigFilePath: configFilePathOverride,
		ConfigDirPath:  configDirOverride,
	})
	if err != nil {
		return nil, "", err
	}
	return res.Config, res.Path, nil
}
