package cmd

import (
	"github.com/bianoble/ai-config-sync/internal/plan"
	"github.com/spf13/cobra"
)

var (
	pullDryRun    bool
	pullForce     bool
	pullBackup    bool
	pullRsyncOpts string
)

var pullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Download configuration files from the remote server",
	Long: `Copies the mapped configuration files from the remote sync directory onto
this machine (and the Windows profile, when a Windows user is configured).

Dual-environment files are downloaded once to their Linux path and then
distributed to the Windows path; the remote copy is authoritative on pull.
Unless --force is given, local files with a newer modification time are
left untouched. With --backup, existing local files are snapshotted first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := baseOptions()
		opts.DryRun = pullDryRun
		opts.Force = pullForce
		opts.Backup = pullBackup
		opts.RsyncOpts = pullRsyncOpts
		return runSync(cmd.Context(), plan.Pull, opts)
	},
}

func init() {
	pullCmd.Flags().BoolVarP(&pullDryRun, "dry-run", "n", false, "show what would be transferred without copying")
	pullCmd.Flags().BoolVar(&pullForce, "force", false, "overwrite local files even when they are newer")
	pullCmd.Flags().BoolVarP(&pullBackup, "backup", "b", false, "snapshot existing local files before overwriting")
	pullCmd.Flags().StringVar(&pullRsyncOpts, "rsync-opts", "", "extra options passed to rsync")
	rootCmd.AddCommand(pullCmd)
}
