package configs

import (
	"fmt"
	"os"

	"github.com/google/uuid"
)

type VaultConfig struct {
	Vault Vault `toml:"vault"`
}

type Vault struct {
	// UUID identifies this vault instance. Generated on first run.
	UUID string `toml:"vault_uuid"`

	// ProfilesDir overrides the default profiles directory when set.
	ProfilesDir string `toml:"profiles_dir"`
}

// LoadVaultConfig loads config.toml, returning an empty config when the
// file does not exist yet.
func LoadVaultConfig() (*VaultConfig, error) {
	config := &VaultConfig{}

	if _, err := os.Stat(Settings.ConfigPath); os.IsNotExist(err) {
		return config, nil
	}

	if err := LoadTOML(Settings.ConfigPath, config); err != nil {
		return nil, fmt.Errorf("failed to load vault config: %w", err)
	}

	return config, nil
}

// SaveVaultConfig saves the vault configuration to config.toml.
func SaveVaultConfig(config *VaultConfig) error {
	if err := SaveTOML(Settings.ConfigPath, config); err != nil {
		return fmt.Errorf("failed to save vault config: %w", err)
	}
	return nil
}

// EnsureVaultConfig ensures config.toml exists and carries a vault UUID,
// generating and persisting one on first run.
func EnsureVaultConfig() (*VaultConfig, error) {
	config, err := LoadVaultConfig()
	if err != nil {
		return nil, err
	}

	if config.Vault.UUID == "" {
		config.Vault.UUID = uuid.New().String()
		if err := SaveVaultConfig(config); err != nil {
			return nil, err
		}
	}

	return config, nil
}

// ResolveProfilesDir returns the directory the profile store should use,
// honoring the config.toml override when present.
func ResolveProfilesDir(config *VaultConfig) string {
	if config != nil && config.Vault.ProfilesDir != "" {
		return config.Vault.ProfilesDir
	}
	return Settings.ProfilesPath
}
