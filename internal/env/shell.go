package env

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sort"
)

// SpawnShell starts an interactive subshell with vars added to its
// environment and waits for it to exit. The variables reach the child
// only through its environment; no plaintext ever touches disk. Returns
// the subshell's exit code.
func SpawnShell(vars map[string]string) (int, error) {
	shell := os.Getenv("SHELL")
	if shell == "" {
		shell = "/bin/bash"
	}

	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	environ := os.Environ()
	for _, k := range keys {
		environ = append(environ, k+"="+vars[k])
	}

	cmd := exec.Command(shell)
	cmd.Env = environ
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return 1, fmt.Errorf("failed to run shell %s: %w", shell, err)
	}
	return 0, nil
}
