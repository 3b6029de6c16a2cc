package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var purgeKey string

var purgeCmd = &cobra.Command{
	Use:   "purge PROFILE",
	Short: "Purges a profile, or a single variable from it",
	Long: `Purges an entire profile, or with --key just one variable from it.

Removing a variable requires the passphrase (the profile is decrypted,
modified and re-encrypted). Removing a whole profile deletes the file
and needs no passphrase: anyone with access to the vault directory could
delete it anyway, though they can never read it. Removing the last
variable keeps an empty encrypted profile; only a full purge deletes it.

Examples:
  # Remove a single variable
  sevn purge myproject --key STRIPE_KEY

  # Remove the entire profile
  sevn purge myproject`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting purge command")
		profile := args[0]

		store, err := openStore()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to open vault: %v", err)
		}

		if purgeKey == "" {
			Logger.Debugf("Purging entire profile %s", profile)
			if err := store.DeleteProfile(profile); err != nil {
				Logger.Errorf("Failed to delete profile %s: %v", profile, err)
				return err
			}
			Logger.Infof("Profile %s deleted", profile)
			printFinal(color.GreenString("✓") + " Profile " + color.YellowString(profile) + " deleted")
			return nil
		}

		passphrase, err := readPassphrase(profile, false)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read passphrase: %v", err)
		}

		spinner, cleanup := startSpinner("Re-encrypting profile...", verbose)
		defer cleanup()

		if err := store.DeleteKey(profile, purgeKey, passphrase); err != nil {
			Logger.Errorf("Failed to delete %s from profile %s: %v", purgeKey, profile, err)
			spinner.FinalMSG = color.RedString("✗") + " Failed to remove " + color.YellowString(purgeKey) +
				" from profile " + color.YellowString(profile)
			return err
		}

		Logger.Infof("Variable %s deleted from profile %s", purgeKey, profile)
		spinner.FinalMSG = color.GreenString("✓") + " " + color.YellowString(purgeKey) +
			" removed from profile " + color.YellowString(profile)
		return nil
	},
}

func init() {
	purgeCmd.Flags().StringVarP(&purgeKey, "key", "k", "", "variable to remove (omitting it removes the whole profile)")
}
