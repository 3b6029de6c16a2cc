package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// setupTestVault points sevn at a fresh vault directory with a scripted
// passphrase, so commands run without a TTY.
func setupTestVault(t *testing.T, passphrase string) string {
	t.Helper()
	tempDir := t.TempDir()
	t.Setenv("SEVN_HOME", tempDir)
	t.Setenv("SEVN_PASSPHRASE", passphrase)
	t.Setenv("NO_COLOR", "1")
	return tempDir
}

func TestLockAndUnlock(t *testing.T) {
	vaultDir := setupTestVault(t, "hunter2")

	output, err := runCommand("lock", "STRIPE_KEY=sk_test_123", "--profile", "myproject")
	if err != nil {
		t.Fatalf("lock failed: %v\nOutput: %s", err, output)
	}
	if !strings.Contains(output, "STRIPE_KEY") || !strings.Contains(output, "myproject") {
		t.Errorf("Expected confirmation message, got: %s", output)
	}

	profilePath := filepath.Join(vaultDir, "profiles", "myproject.sevn")
	if _, err := os.Stat(profilePath); err != nil {
		t.Fatalf("Profile file was not created: %v", err)
	}

	output, err = runCommand("unlock", "myproject")
	if err != nil {
		t.Fatalf("unlock failed: %v\nOutput: %s", err, output)
	}
	if !strings.Contains(output, "export STRIPE_KEY='sk_test_123'") {
		t.Errorf("Expected export line in output, got: %s", output)
	}
}

func TestLockOverwrite(t *testing.T) {
	setupTestVault(t, "hunter2")

	for _, kv := range []string{"STRIPE_KEY=sk_test_123", "STRIPE_KEY=sk_live_456"} {
		if output, err := runCommand("lock", kv, "--profile", "myproject"); err != nil {
			t.Fatalf("lock %s failed: %v\nOutput: %s", kv, err, output)
		}
	}

	output, err := runCommand("unlock", "myproject")
	if err != nil {
		t.Fatalf("unlock failed: %v\nOutput: %s", err, output)
	}
	if !strings.Contains(output, "export STRIPE_KEY='sk_live_456'") {
		t.Errorf("Expected last value to win, got: %s", output)
	}
	if strings.Contains(output, "sk_test_123") {
		t.Errorf("Old value still present in output: %s", output)
	}
}

func TestUnlockWrongPassphrase(t *testing.T) {
	setupTestVault(t, "hunter2")

	if output, err := runCommand("lock", "A=1", "--profile", "myproject"); err != nil {
		t.Fatalf("lock failed: %v\nOutput: %s", err, output)
	}

	t.Setenv("SEVN_PASSPHRASE", "wrong")
	output, err := runCommand("unlock", "myproject")
	if err == nil {
		t.Errorf("unlock with wrong passphrase should fail\nOutput: %s", output)
	}
	if strings.Contains(output, "export A=") {
		t.Errorf("Wrong passphrase must not leak variables: %s", output)
	}
}

func TestUnlockMissingProfile(t *testing.T) {
	setupTestVault(t, "hunter2")

	output, err := runCommand("unlock", "ghost")
	if err == nil {
		t.Errorf("unlock of missing profile should fail\nOutput: %s", output)
	}
}

func TestListProfiles(t *testing.T) {
	setupTestVault(t, "hunter2")

	output, err := runCommand("list")
	if err != nil {
		t.Fatalf("list failed: %v\nOutput: %s", err, output)
	}
	if !strings.Contains(output, "No profiles found.") {
		t.Errorf("Expected empty-vault message, got: %s", output)
	}

	for _, profile := range []string{"alpha", "beta"} {
		if output, err := runCommand("lock", "A=1", "--profile", profile); err != nil {
			t.Fatalf("lock failed: %v\nOutput: %s", err, output)
		}
	}

	output, err = runCommand("list")
	if err != nil {
		t.Fatalf("list failed: %v\nOutput: %s", err, output)
	}
	if !strings.Contains(output, "alpha") || !strings.Contains(output, "beta") {
		t.Errorf("Expected both profiles listed, got: %s", output)
	}
}

func TestPurgeKey(t *testing.T) {
	setupTestVault(t, "hunter2")

	for _, kv := range []string{"KEEP=1", "DROP=2"} {
		if output, err := runCommand("lock", kv, "--profile", "myproject"); err != nil {
			t.Fatalf("lock failed: %v\nOutput: %s", err, output)
		}
	}

	if output, err := runCommand("purge", "myproject", "--key", "DROP"); err != nil {
		t.Fatalf("purge --key failed: %v\nOutput: %s", err, output)
	}

	output, err := runCommand("unlock", "myproject")
	if err != nil {
		t.Fatalf("unlock failed: %v\nOutput: %s", err, output)
	}
	if strings.Contains(output, "DROP") {
		t.Errorf("Purged key still present: %s", output)
	}
	if !strings.Contains(output, "export KEEP='1'") {
		t.Errorf("Remaining key missing: %s", output)
	}
}

func TestPurgeProfile(t *testing.T) {
	vaultDir := setupTestVault(t, "hunter2")

	if output, err := runCommand("lock", "A=1", "--profile", "myproject"); err != nil {
		t.Fatalf("lock failed: %v\nOutput: %s", err, output)
	}

	if output, err := runCommand("purge", "myproject"); err != nil {
		t.Fatalf("purge failed: %v\nOutput: %s", err, output)
	}

	if _, err := os.Stat(filepath.Join(vaultDir, "profiles", "myproject.sevn")); !os.IsNotExist(err) {
		t.Error("Profile file should be gone after purge")
	}

	output, err := runCommand("purge", "myproject")
	if err == nil {
		t.Errorf("Purging a missing profile should fail\nOutput: %s", output)
	}
}

func TestLockInvalidArgument(t *testing.T) {
	setupTestVault(t, "hunter2")

	output, err := runCommand("lock", "NOEQUALS", "--profile", "myproject")
	if err == nil {
		t.Errorf("lock without KEY=VALUE should fail\nOutput: %s", output)
	}
}

func TestVaultConfigCreatedOnFirstUse(t *testing.T) {
	vaultDir := setupTestVault(t, "hunter2")

	if output, err := runCommand("list"); err != nil {
		t.Fatalf("list failed: %v\nOutput: %s", err, output)
	}

	data, err := os.ReadFile(filepath.Join(vaultDir, "config.toml"))
	if err != nil {
		t.Fatalf("config.toml was not created: %v", err)
	}
	if !strings.Contains(string(data), "vault_uuid") {
		t.Errorf("Expected vault_uuid in config.toml, got: %s", data)
	}
}
