package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// stubCommands returns the command surface for out-of-core collaborators:
// the package manager, the stdlib package tooling, and the language
// server. Each prints a notice and exits 0 so the surface is discoverable
// without promising behavior the core compiler doesn't implement.
func stubCommands() []*cobra.Command {
	notice := func(use string) *cobra.Command {
		return &cobra.Command{
			Use:                use,
			Short:              fmt.Sprintf("%s (not implemented in the core compiler)", use),
			DisableFlagParsing: true,
			RunE: func(cmd *cobra.Command, args []string) error {
				fmt.Printf("%s: not implemented in the core compiler\n", use)
				return nil
			},
		}
	}

	installDeps := notice("install-deps")

	stdlibCmd := &cobra.Command{
		Use:   "stdlib",
		Short: "stdlib package tooling (not implemented in the core compiler)",
	}
	stdlibCmd.AddCommand(notice("list"), notice("extract"), notice("import"), notice("new"))

	lsp := notice("lsp")

	return []*cobra.Command{installDeps, stdlibCmd, lsp}
}
