package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var quirksCmd = &cobra.Command{
	Use:   "quirks",
	Short: "List registered quirks",
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := loadRegistry(cmd)
		if err != nil {
			return err
		}

		for _, name := range registry.Names() {
			spec, _ := registry.Lookup(name)
			hints := registry.HintsFor(name)
			marker := " "
			if len(hints.Indicators) > 0 || len(hints.Examples) > 0 {
				marker = "*"
			}
			fmt.Printf("%s %-12s %s\n", marker, name, spec.Description)
		}
		fmt.Println("\n(* = has judge hints)")
		return nil
	},
}
