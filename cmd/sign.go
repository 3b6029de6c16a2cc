package cmd

import (
	"fmt"
	"os"

	"github.com/thoerner/sevn/internal/env"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var signCmd = &cobra.Command{
	Use:   "sign PROFILE",
	Short: "Signs into a new shell with a profile loaded",
	Long: `Signs into a new interactive shell with the profile's variables
injected into its environment. Shorthand for 'sevn unlock PROFILE --shell'.

Example:
  sevn sign myproject`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting sign command")
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

		fmt.Fprintln(os.Stderr, color.GreenString("✓")+" Entering shell with profile "+
			color.YellowString(profile)+" loaded. Type "+color.YellowString("exit")+" to leave.")
		code, err := env.SpawnShell(vars)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to spawn shell: %v", err)
		}
		Logger.Debugf("Subshell exited with code %d", code)
		return nil
	},
}
