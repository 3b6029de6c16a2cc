package cmd

import (
	"fmt"

	"github.com/thoerner/sevn/internal/ui"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists all available profiles",
	Long: `Lists the names of all profiles in the vault. No passphrase is
needed; only names are read, never contents.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting list command")

		store, err := openStore()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to open vault: %v", err)
		}

		profiles, err := store.ListProfiles()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to list profiles: %v", err)
		}

		if len(profiles) == 0 {
			fmt.Println("No profiles found.")
			fmt.Println(ui.Info.Sprint("→") + " Create one with " +
				ui.Code.Sprint("sevn lock KEY=VALUE --profile NAME"))
			return nil
		}

		fmt.Println("Available profiles:")
		for _, name := range profiles {
			fmt.Println("  - " + name)
		}
		return nil
	},
}
