package cmd

import (
	"os"

	logger "github.com/thoerner/sevn/internal/logging"

	"github.com/spf13/cobra"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger

	RootCmd = &cobra.Command{
		Use:   "sevn",
		Short: "sevn - A secure environment variable manager",
		Long: `sevn encrypts environment variables into named profiles and loads
them back into your shell on demand. Each profile is a single encrypted
file protected by a passphrase.

Examples:
  # Lock (encrypt) a secret into a profile
  sevn lock STRIPE_KEY=sk_test_123 --profile myproject

  # Unlock (load) secrets into the current shell
  eval "$(sevn unlock myproject)"

  # Sign into a new shell with the profile loaded
  sevn sign myproject

  # List all profiles
  sevn list

  # Remove a secret from a profile
  sevn purge myproject --key STRIPE_KEY

  # Remove an entire profile
  sevn purge myproject

Shell Integration:
  Add this function to your .bashrc or .zshrc:

  load_secrets() {
      eval "$(sevn unlock ${1:-default})"
  }
`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing sevn with verbose=%t, debug=%t", verbose, debug)
		},
	}
)

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	RootCmd.AddCommand(lockCmd)
	RootCmd.AddCommand(unlockCmd)
	RootCmd.AddCommand(signCmd)
	RootCmd.AddCommand(listCmd)
	RootCmd.AddCommand(purgeCmd)
}

// Execute runs the root command and exits nonzero on failure.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// Helper functions for testing

// GetRootCmd returns the RootCmd for testing.
func GetRootCmd() *cobra.Command {
	return RootCmd
}

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	lockProfile = ""
	unlockShell = false
	purgeKey = ""
}

// SetLogger sets the logger for testing.
func SetLogger(l logger.Logger) {
	Logger = l
}
