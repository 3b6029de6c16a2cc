package cmd

import (
	"github.com/thoerner/sevn/internal/env"
	"github.com/thoerner/sevn/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var lockProfile string

var lockCmd = &cobra.Command{
	Use:   "lock KEY=VALUE",
	Short: "Locks (encrypts) an environment variable into a profile",
	Long: `Locks an environment variable into a profile, creating the profile on
first use. The profile is decrypted, updated, re-encrypted and written
back atomically; a wrong passphrase changes nothing on disk.

Example:
  sevn lock STRIPE_KEY=sk_test_123 --profile myproject`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting lock command")

		key, value, err := env.ParseAssignment(args[0])
		if err != nil {
			Logger.Errorf("Invalid argument: %v", err)
			return err
		}

		store, err := openStore()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to open vault: %v", err)
		}

		creating := !store.Exists(lockProfile)
		if creating {
			Logger.Infof("Profile %s does not exist yet, creating it", lockProfile)
		}

		passphrase, err := readPassphrase(lockProfile, creating)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read passphrase: %v", err)
		}

		spinner, cleanup := startSpinner("Encrypting profile...", verbose)
		defer cleanup()

		if err := store.Set(lockProfile, key, value, passphrase); err != nil {
			Logger.Errorf("Failed to set %s in profile %s: %v", key, lockProfile, err)
			spinner.FinalMSG = color.RedString("✗") + " Failed to save " + color.YellowString(key) +
				" to profile " + color.YellowString(lockProfile)
			return err
		}

		Logger.Infof("Variable %s saved to profile %s", key, lockProfile)
		finalMessage := color.GreenString("✓") + " " + color.YellowString(key) +
			" saved to profile " + color.YellowString(lockProfile)
		if creating {
			finalMessage += "\n" + color.CyanString("→") + " Profile created at " +
				ui.Path.Sprint(store.Dir())
		}
		spinner.FinalMSG = finalMessage
		return nil
	},
}

func init() {
	lockCmd.Flags().StringVarP(&lockProfile, "profile", "p", "", "profile name (required)")
	_ = lockCmd.MarkFlagRequired("profile")
}
