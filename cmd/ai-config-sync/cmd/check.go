package cmd

import (
	"time"

	"github.com/bianoble/ai-config-sync/internal/config"
	"github.com/bianoble/ai-config-sync/internal/probe"
	"github.com/spf13/cobra"
)

var checkTimeout time.Duration

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify SSH connectivity to the remote host",
	Long: `Opens a short BatchMode SSH session to the configured remote host and
exits. No files are planned or transferred. Exit 0 means the host is
reachable with the current SSH setup; a failing probe means push and pull
would fail too.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Build(baseOptions())
		if err != nil {
			return err
		}

		if err := probe.Check(cmd.Context(), *cfg, checkTimeout); err != nil {
			return err
		}
		info("Remote %s is reachable.", cfg.RemoteSpec())
		return nil
	},
}

func init() {
	checkCmd.Flags().DurationVar(&checkTimeout, "timeout", probe.DefaultTimeout, "connection timeout")
	rootCmd.AddCommand(checkCmd)
}
