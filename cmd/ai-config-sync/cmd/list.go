package cmd

import (
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the file mappings",
	Long: `Prints every mapping entry: its ID, kind, whether it is reconciled across
environments, and its Linux path. No remote configuration is required and
nothing is transferred.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := newTable()
		if err != nil {
			return err
		}

		info("%-22s %-10s %-6s %s", "ID", "KIND", "DUAL", "LINUX PATH")
		for _, e := range table.AllEntries() {
			dual := "-"
			if e.DualEnvironment {
				dual = "yes"
			}
			info("%-22s %-10s %-6s %s", e.ID, e.Kind, dual, e.LinuxPath)
			if verbose && e.HasWindows() {
				detail("windows: %s", e.WindowsPathTemplate)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
