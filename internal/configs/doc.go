// Package configs resolves the on-disk layout of a sevn vault.
//
// The vault home defaults to ~/.sevn and can be overridden with the
// SEVN_HOME environment variable. Inside it:
//
//	config.toml   vault identity and optional overrides
//	profiles/     one encrypted .sevn file per profile
//
// config.toml is created on first run with a generated vault UUID. The
// resolved profiles directory is passed explicitly into the profile
// store; nothing below the CLI layer consults these settings directly.
package configs
