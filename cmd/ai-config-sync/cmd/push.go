package cmd

import (
	"github.com/bianoble/ai-config-sync/internal/plan"
	"github.com/spf13/cobra"
)

var (
	pushDryRun    bool
	pushForce     bool
	pushPrimary   string
	pushRsyncOpts string
)

var pushCmd = &cobra.Command{
	Use:   "push",
	Short: "Upload local configuration files to the remote server",
	Long: `Copies the mapped configuration files from this machine (and the Windows
profile, when a Windows user is configured) to the remote sync directory.

Dual-environment files are first reconciled: the primary environment's copy
overwrites the other environment, then the primary copy is uploaded once
under its canonical remote name. Unless --force is given, remote files with
a newer modification time are left untouched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := baseOptions()
		opts.DryRun = pushDryRun
		opts.Force = pushForce
		opts.Primary = pushPrimary
		opts.RsyncOpts = pushRsyncOpts
		return runSync(cmd.Context(), plan.Push, opts)
	},
}

func init() {
	pushCmd.Flags().BoolVarP(&pushDryRun, "dry-run", "n", false, "show what would be transferred without copying")
	pushCmd.Flags().BoolVar(&pushForce, "force", false, "overwrite remote files even when they are newer")
	pushCmd.Flags().StringVar(&pushPrimary, "primary", "", "primary environment for dual-environment files: linux or windows (default linux)")
	pushCmd.Flags().StringVar(&pushRsyncOpts, "rsync-opts", "", "extra options passed to rsync")
	rootCmd.AddCommand(pushCmd)
}
