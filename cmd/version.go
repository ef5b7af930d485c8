package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags "-X github.com/baish/quirkeval/cmd.version=...".
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the quirkeval version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("quirkeval %s\n", version)
	},
}
