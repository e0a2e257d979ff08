// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"

	"surety/internal/discovery"
	"surety/internal/issue"
	"surety/pkg/capability"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

var capabilityCmd = &cobra.Command{
	Use:   "capability",
	Short: "Inspect optional surety capabilities",
	Long: `Inspect optional surety capabilities.

Capabilities are shipped by sibling packages (surety-config, surety-diff)
and exposed under stable aliases when compiled into the binary. These
commands report which siblings are installed, which bound, and why a
binding failed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	capabilityCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List known capabilities and their binding state",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listCapabilities()
		},
	})

	capabilityCmd.AddCommand(&cobra.Command{
		Use:   "info <alias>",
		Short: "Describe one bound capability",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return showCapabilityInfo(args[0])
		},
	})

	capabilityCmd.AddCommand(&cobra.Command{
		Use:   "doctor",
		Short: "Diagnose capability binding",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCapabilityDoctor()
		},
	})
}

// bindDefault binds the built-in descriptors against the default provider
// set into a fresh registry, returning the binder for inspection. A broken
// sibling's error comes back unmodified.
func bindDefault() (*discovery.Binder, []discovery.Descriptor, error) {
	descs := discovery.KnownDescriptors()
	binder := discovery.NewBinder(capability.NewRegistry(), capability.DefaultProviders())
	logger.Debug("binding capabilities", "descriptors", len(descs))
	err := binder.BindAll(descs)
	return binder, descs, err
}

func listCapabilities() error {
	binder, descs, err := bindDefault()
	if err != nil {
		return renderBindFailure(err)
	}

	fmt.Println(TitleStyle.Render("Known capabilities"))
	fmt.Println()

	for _, status := range binder.Inspect(descs) {
		marker := SubtitleStyle.Render("✗ not installed")
		if status.Bound {
			marker = SuccessStyle.Render("✓ bound")
		} else if status.Installed {
			marker = WarningStyle.Render("! installed, not bound")
		}
		fmt.Printf("  %s  %s %s\n",
			NameStyle.Render(status.Descriptor.Alias),
			SubtitleStyle.Render("("+status.Descriptor.External+")"),
			marker,
		)
	}
	return nil
}

func showCapabilityInfo(alias string) error {
	binder, descs, err := bindDefault()
	if err != nil {
		return renderBindFailure(err)
	}

	for _, status := range binder.Inspect(descs) {
		if status.Descriptor.Alias != alias {
			continue
		}
		if !status.Bound {
			rendered, _ := issue.Get(issue.CapabilityNotBoundId).Render(glamourTheme())
			fmt.Fprint(os.Stderr, rendered)
			return fmt.Errorf("capability %q is not bound", alias)
		}

		md := "# " + status.Descriptor.Alias + "\n\n" + status.Description
		out, renderErr := glamour.Render(md, glamourTheme())
		if renderErr != nil {
			// Fall back to the raw description when no TTY styling is possible.
			out = md + "\n"
		}
		fmt.Print(out)
		return nil
	}

	return fmt.Errorf("unknown capability %q", alias)
}

func runCapabilityDoctor() error {
	binder, descs, err := bindDefault()
	if err != nil {
		return renderBindFailure(err)
	}

	fmt.Println(TitleStyle.Render("Capability doctor"))
	fmt.Println()

	bound := 0
	for _, status := range binder.Inspect(descs) {
		switch {
		case status.Bound:
			bound++
			fmt.Printf("  %s %s\n", SuccessStyle.Render("✓"), status.Descriptor.String())
		case status.Installed:
			fmt.Printf("  %s %s %s\n", WarningStyle.Render("!"), status.Descriptor.String(),
				SubtitleStyle.Render("(installed but not bound)"))
		default:
			fmt.Printf("  %s %s %s\n", SubtitleStyle.Render("-"), status.Descriptor.String(),
				SubtitleStyle.Render("(not installed; this is fine)"))
		}
	}

	fmt.Println()
	fmt.Printf("%d of %d capabilities bound\n", bound, len(descs))
	return nil
}

// renderBindFailure shows the broken-sibling guidance and returns the
// sibling's own error untouched so scripts can match on it.
func renderBindFailure(err error) error {
	logger.Error("capability binding failed", "err", err)
	rendered, renderErr := issue.Get(issue.CapabilityBrokenId).Render(glamourTheme())
	if renderErr == nil {
		fmt.Fprint(os.Stderr, rendered)
	}
	return err
}
