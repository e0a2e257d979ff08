// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"surety/internal/config"
	"surety/internal/issue"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage surety CLI configuration",
	Long: `Manage surety CLI configuration.

Configuration is stored in:
  - Linux: ~/.config/surety/config.cue
  - macOS: ~/Library/Application Support/surety/config.cue
  - Windows: %APPDATA%\surety\config.cue`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig()
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfigPath()
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return initConfigFile()
		},
	})
}

func showConfig() error {
	cfg, cfgPath, err := config.LoadResolved()
	if err != nil {
		rendered, _ := issue.Get(issue.ConfigLoadFailedId).Render(glamourTheme())
		fmt.Fprint(os.Stderr, rendered)
		return err
	}

	fmt.Println(TitleStyle.Render("Current Configuration"))
	fmt.Println()

	if cfgPath != "" {
		fmt.Printf("%s: %s\n", NameStyle.Render("Config file"), cfgPath)
	} else {
		fmt.Printf("%s: %s\n", NameStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}

	fmt.Printf("%s: %s\n", NameStyle.Render("ui.color_scheme"), SuccessStyle.Render(string(cfg.UI.ColorScheme)))
	fmt.Printf("%s: %s\n", NameStyle.Render("ui.verbose"), SuccessStyle.Render(fmt.Sprintf("%t", cfg.UI.Verbose)))
	fmt.Printf("%s: %s\n", NameStyle.Render("ui.glamour_theme"), SuccessStyle.Render(cfg.UI.GlamourTheme))
	return nil
}

func showConfigPath() error {
	cfgDir, err := config.ConfigDir()
	if err != nil {
		return issue.WrapWithOperation(err, "resolve config directory")
	}
	fmt.Println(filepath.Join(cfgDir, config.ConfigFileName+"."+config.ConfigFileExt))
	return nil
}

// defaultConfigCUE is the file written by `surety config init`.
const defaultConfigCUE = `// surety CLI configuration
ui: {
	color_scheme:  "auto"
	verbose:       false
	glamour_theme: "auto"
}
`

func initConfigFile() error {
	cfgDir, err := config.ConfigDir()
	if err != nil {
		return issue.WrapWithOperation(err, "resolve config directory")
	}

	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		return issue.WrapWithOperation(err, "create config directory")
	}

	cfgPath := filepath.Join(cfgDir, config.ConfigFileName+"."+config.ConfigFileExt)
	if _, statErr := os.Stat(cfgPath); statErr == nil {
		return issue.NewErrorContext().
			WithOperation("create configuration file").
			WithResource(cfgPath).
			WithSuggestion("Remove the existing file first if you want to regenerate it").
			Wrap(os.ErrExist).
			BuildError()
	}

	if err := os.WriteFile(cfgPath, []byte(defaultConfigCUE), 0o644); err != nil {
		return issue.WrapWithOperation(err, "write configuration file")
	}

	fmt.Printf("%s %s\n", SuccessStyle.Render("Created"), cfgPath)
	return nil
}
