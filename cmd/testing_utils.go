package cmd

import (
	"bytes"
	"io"
	"os"
)

// captureOutput redirects stdout and stderr while fn runs and returns
// everything written to them. Commands print final messages with
// fmt.Print, so buffer-based cobra redirection is not enough.
func captureOutput(fn func() error) (string, error) {
	oldStdout := os.Stdout
	oldStderr := os.Stderr

	r, w, err := os.Pipe()
	if err != nil {
		return "", err
	}
	os.Stdout = w
	os.Stderr = w

	done := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		done <- buf.String()
	}()

	runErr := fn()

	w.Close()
	os.Stdout = oldStdout
	os.Stderr = oldStderr
	output := <-done

	return output, runErr
}

// runCommand executes the root command with the given arguments,
// capturing its combined output.
func runCommand(args ...string) (string, error) {
	ResetGlobalState()
	RootCmd.SetArgs(args)
	return captureOutput(func() error {
		return RootCmd.Execute()
	})
}
