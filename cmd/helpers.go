package cmd

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/thoerner/sevn/internal/configs"
	"github.com/thoerner/sevn/internal/ui"
	"github.com/thoerner/sevn/internal/utils"
	"github.com/thoerner/sevn/internal/vault"

	"github.com/briandowns/spinner"
)

// openStore resolves the vault settings and returns a profile store
// rooted at the configured profiles directory.
func openStore() (*vault.Store, error) {
	if err := configs.InitVaultSettings(); err != nil {
		return nil, fmt.Errorf("failed to resolve vault directory: %w", err)
	}
	config, err := configs.EnsureVaultConfig()
	if err != nil {
		return nil, err
	}
	dir := configs.ResolveProfilesDir(config)
	Logger.Debugf("Using profiles directory: %s", dir)
	return vault.NewStore(dir), nil
}

// readPassphrase obtains the passphrase for a profile. SEVN_PASSPHRASE
// takes precedence for scripted use; otherwise the user is prompted on
// the TTY so prompts never mix into stdout consumed by eval. When
// confirm is set (profile creation) the passphrase is read twice.
func readPassphrase(profile string, confirm bool) ([]byte, error) {
	if pass, ok := os.LookupEnv("SEVN_PASSPHRASE"); ok {
		Logger.Debugf("Using passphrase from SEVN_PASSPHRASE")
		return []byte(pass), nil
	}

	// Prompt on stdin when it is a terminal; otherwise fall back to
	// /dev/tty so prompts work under command substitution.
	prompt := utils.ReadPassphrase
	if !utils.IsTerminal() {
		prompt = utils.ReadPassphraseFromTTY
	}

	pass, err := prompt(fmt.Sprintf("Enter passphrase for profile %q: ", profile))
	if err != nil {
		return nil, err
	}
	if confirm {
		again, err := prompt("Confirm passphrase: ")
		if err != nil {
			return nil, err
		}
		if !bytes.Equal(pass, again) {
			return nil, fmt.Errorf("passphrases do not match")
		}
	}
	return pass, nil
}

// printFinal prints a final status message for commands that don't run a
// spinner.
func printFinal(msg string) {
	fmt.Print(ui.EnsureNewline(msg))
}

// startSpinner creates and starts a spinner with the given message when not in verbose or debug mode.
// Returns the spinner and a function that should be deferred to clean up.
//
// The spinner writes to stderr so that commands whose stdout is consumed
// by eval stay clean. spinner.FinalMSG values do NOT need trailing
// newlines; the cleanup function calls ui.EnsureNewline() before printing.
func startSpinner(message string, verbose bool) (*spinner.Spinner, func()) {
	Logger.Debugf("Starting spinner with message: %s", message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = " " + message

	err := s.Color("cyan")
	if err != nil {
		// If we can't set spinner color, just continue without it.
		Logger.Warnf("Failed to set spinner color: %v", err)
	}

	if !verbose && !debug {
		Logger.Debugf("Starting spinner in non-verbose mode")
		s.Start()
		// Ensure log output is discarded unless in verbose mode.
		log.SetOutput(io.Discard)
	} else {
		Logger.Infof("Running in verbose or debug mode: %s", message)
	}

	cleanup := func() {
		// Restore log output first.
		if !verbose && !debug {
			Logger.Debugf("Restoring log output")
			log.SetOutput(os.Stdout)
		}

		// Ensure final message ends with a newline.
		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			// Clear FinalMSG so s.Stop() doesn't print it.
			s.FinalMSG = ""
		}

		// Stop the spinner first to clear the spinner line.
		if !verbose && !debug {
			Logger.Debugf("Stopping spinner")
			s.Stop()
		}

		// Print final message to stderr, away from eval output.
		if finalMsg != "" {
			fmt.Fprint(os.Stderr, finalMsg)
		}
	}

	return s, cleanup
}
