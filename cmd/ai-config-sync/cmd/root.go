package cmd

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Build-time variables set via -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Global flags.
var (
	remoteUser   string
	remoteHost   string
	remoteDir    string
	windowsUser  string
	mappingsPath string
	verbose      bool
	quiet        bool
	noColor      bool
)

var rootCmd = &cobra.Command{
	Use:   "ai-config-sync",
	Short: "Sync AI agent configuration files with a remote server",
	Long: `ai-config-sync mirrors a fixed set of AI-coding-assistant configuration
files (Claude, Gemini, Codex, Cline) between this machine, an optionally
mounted Windows user profile under /mnt/c, and one remote server.

Transfers go through rsync. Files that exist in both the Linux and Windows
environments are reconciled to a declared primary environment before upload
and stored once remotely under their canonical name.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		configureLogging()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("ai-config-sync %s\n", version)
		fmt.Printf("  commit:  %s\n", commit)
		fmt.Printf("  built:   %s\n", date)
	},
}

func configureLogging() {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{DisableColors: noColor, DisableTimestamp: true})
	switch {
	case quiet:
		log.SetLevel(log.ErrorLevel)
	case verbose:
		log.SetLevel(log.DebugLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&remoteUser, "remote-user", "u", "", "remote SSH username (overrides SYNC_USER)")
	pf.StringVarP(&remoteHost, "remote-host", "H", "", "remote SSH host (overrides SYNC_HOST)")
	pf.StringVarP(&remoteDir, "remote-dir", "d", "", "remote directory path (overrides SYNC_DIR)")
	pf.StringVarP(&windowsUser, "windows-user", "w", "", "Windows username (overrides WIN_USER; enables Windows file sync)")
	pf.StringVar(&mappingsPath, "mappings", "", "path to a YAML file with custom mapping entries")
	pf.BoolVarP(&verbose, "verbose", "v", false, "detailed output")
	pf.BoolVarP(&quiet, "quiet", "q", false, "minimal output (errors only)")
	pf.BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	return nil
}
