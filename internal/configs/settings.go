package configs

import (
	"os"
	"path/filepath"
)

type VaultSettings struct {
	VaultPath    string
	ProfilesPath string
	ConfigPath   string
}

// Settings holds the resolved vault paths for this invocation. It is
// initialized by InitVaultSettings and then passed explicitly into the
// profile store; no other package reads it ambiently.
var Settings *VaultSettings

// InitVaultSettings resolves the vault directory layout. SEVN_HOME
// overrides the default of ~/.sevn; profiles live in a profiles/
// subdirectory, mirroring the layout sevn has always used.
func InitVaultSettings() error {
	vaultPath := os.Getenv("SEVN_HOME")
	if vaultPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		vaultPath = filepath.Join(homeDir, ".sevn")
	}

	Settings = &VaultSettings{
		VaultPath:    vaultPath,
		ProfilesPath: filepath.Join(vaultPath, "profiles"),
		ConfigPath:   filepath.Join(vaultPath, "config.toml"),
	}
	return nil
}
