// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"surety/internal/issue"
)

func writeConfigFile(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName+"."+ConfigFileExt)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	return path
}

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	SetConfigDirOverride(t.TempDir())
	t.Cleanup(Reset)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}

	if cfg.UI.ColorScheme != ColorSchemeAuto {
		t.Errorf("UI.ColorScheme = %q, want %q", cfg.UI.ColorScheme, ColorSchemeAuto)
	}
	if cfg.UI.Verbose {
		t.Error("UI.Verbose = true, want false by default")
	}
	if cfg.UI.GlamourTheme != "auto" {
		t.Errorf("UI.GlamourTheme = %q, want %q", cfg.UI.GlamourTheme, "auto")
	}
}

func TestLoad_ReadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, `
ui: {
	color_scheme:  "dark"
	verbose:       true
	glamour_theme: "notty"
}
`)
	SetConfigDirOverride(dir)
	t.Cleanup(Reset)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}

	if cfg.UI.ColorScheme != ColorSchemeDark {
		t.Errorf("UI.ColorScheme = %q, want %q", cfg.UI.ColorScheme, ColorSchemeDark)
	}
	if !cfg.UI.Verbose {
		t.Error("UI.Verbose = false, want true")
	}
	if cfg.UI.GlamourTheme != "notty" {
		t.Errorf("UI.GlamourTheme = %q, want %q", cfg.UI.GlamourTheme, "notty")
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, `ui: verbose: true`)
	SetConfigDirOverride(dir)
	t.Cleanup(Reset)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}

	if !cfg.UI.Verbose {
		t.Error("UI.Verbose = false, want true")
	}
	if cfg.UI.ColorScheme != ColorSchemeAuto {
		t.Errorf("UI.ColorScheme = %q, want default %q", cfg.UI.ColorScheme, ColorSchemeAuto)
	}
}

func TestLoad_RejectsInvalidColorScheme(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, `ui: color_scheme: "sepia"`)
	SetConfigDirOverride(dir)
	t.Cleanup(Reset)

	_, err := Load()
	if err == nil {
		t.Fatal("Load() error = nil, want schema validation failure")
	}

	var ae *issue.ActionableError
	if !errors.As(err, &ae) {
		t.Errorf("error type = %T, want *issue.ActionableError", err)
	}
}

func TestLoad_RejectsUnknownSyntax(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, `ui: { color_scheme: `)
	SetConfigDirOverride(dir)
	t.Cleanup(Reset)

	if _, err := Load(); err == nil {
		t.Fatal("Load() error = nil, want CUE parse failure")
	}
}

func TestLoad_ConfigFilePathOverride(t *testing.T) {
	dir := t.TempDir()
	path := writeConfigFile(t, dir, `ui: color_scheme: "light"`)
	SetConfigFilePathOverride(path)
	t.Cleanup(Reset)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}
	if cfg.UI.ColorScheme != ColorSchemeLight {
		t.Errorf("UI.ColorScheme = %q, want %q", cfg.UI.ColorScheme, ColorSchemeLight)
	}
}

func TestLoad_MissingExplicitFileFails(t *testing.T) {
	SetConfigFilePathOverride(filepath.Join(t.TempDir(), "nope.cue"))
	t.Cleanup(Reset)

	if _, err := Load(); err == nil {
		t.Fatal("Load() error = nil, want missing-file failure")
	}
}

func TestProvider_LoadHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewProvider().Load(ctx, LoadOptions{ConfigDirPath: t.TempDir()})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Load() with canceled context error = %v, want context.Canceled", err)
	}
}

func TestProvider_LoadWithExplicitDir(t *testing.T) {
	dir := t.TempDir()
	path := writeConfigFile(t, dir, `ui: color_scheme: "dark"`)

	res, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}
	if res.Config.UI.ColorScheme != ColorSchemeDark {
		t.Errorf("UI.ColorScheme = %q, want %q", res.Config.UI.ColorScheme, ColorSchemeDark)
	}
	if res.Path != path {
		t.Errorf("Result.Path = %q, want %q", res.Path, path)
	}
}

func TestProvider_LoadReportsEmptyPathForDefaults(t *testing.T) {
	res, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: t.TempDir()})
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}
	if res.Path != "" {
		t.Errorf("Result.Path = %q, want empty when no file was read", res.Path)
	}
	if res.Config == nil {
		t.Fatal("Result.Config = nil, want defaults")
	}
}

func TestLoadResolved_ReportsConfigFilePath(t *testing.T) {
	dir := t.TempDir()
	path := writeConfigFile(t, dir, `ui: verbose: true`)
	SetConfigDirOverride(dir)
	t.Cleanup(Reset)

	cfg, gotPath, err := LoadResolved()
	if err != nil {
		t.Fatalf("LoadResolved() error = %v, want nil", err)
	}
	if gotPath != path {
		t.Errorf("LoadResolved() path = %q, want %q", gotPath, path)
	}
	if !cfg.UI.Verbose {
		t.Error("UI.Verbose = false, want true")
	}
}

func TestColorScheme_Validate(t *testing.T) {
	tests := []struct {
		name    string
		scheme  ColorScheme
		wantErr bool
	}{
		{name: "auto", scheme: ColorSchemeAuto, wantErr: false},
		{name: "dark", scheme: ColorSchemeDark, wantErr: false},
		{name: "light", scheme: ColorSchemeLight, wantErr: false},
		{name: "unknown", scheme: "sepia", wantErr: true},
		{name: "empty", scheme: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.scheme.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidColorScheme) {
				t.Errorf("Validate() error does not wrap ErrInvalidColorScheme")
			}
		})
	}
}
