package cmd

import (
	"fmt"
	"os"

	"github.com/thoerner/sevn/internal/env"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var unlockShell bool

var unlockCmd = &cobra.Command{
	Use:   "unlock PROFILE",
	Short: "Unlocks a profile and prints its variables as shell exports",
	Long: `Unlocks (decrypts) a profile and prints its variables to stdout as
export lines, ready for eval. With --shell, a new interactive shell is
spawned with the variables injected into its environment instead.

Examples:
  # Load into the current shell
  eval "$(sevn unlock myproject)"

  # Start a new shell with the variables
  sevn unlock myproject --shell`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting unlock command")
		profile := args[0]

		store, err := openStore()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to open vault: %v", err)
		}

		passphrase, err := readPassphrase(profile, false)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read passphrase: %v", err)
		}

		spinner, cleanup := startSpinner("Decrypting profile...", verbose)

		vars, err := store.GetAll(profile, passphrase)
		if err != nil {
			Logger.Errorf("Failed to decrypt profile %s: %v", profile, err)
			spinner.FinalMSG = color.RedString("✗") + " Failed to unlock profile " +
				color.YellowString(profile)
			cleanup()
			return err
		}
		cleanup()

		if unlockShell {
			Logger.Infof("Spawning subshell with %d variables", len(vars))
			fmt.Fprintln(os.Stderr, color.GreenString("✓")+" Entering shell with profile "+
				color.YellowString(profile)+" loaded. Type "+color.YellowString("exit")+" to leave.")
			code, err := env.SpawnShell(vars)
			if err != nil {
				return Logger.ErrorfAndReturn("failed to spawn shell: %v", err)
			}
			Logger.Debugf("Subshell exited with code %d", code)
			return nil
		}

		// Raw export lines on stdout, nothing else: the caller evals this.
		fmt.Print(env.FormatExports(vars))
		return nil
	},
}

func init() {
	unlockCmd.Flags().BoolVar(&unlockShell, "shell", false, "spawn a new shell with the profile's variables")
}
