package errors

import "errors"

// Profile errors indicate issues locating or enumerating profiles.
var (
	// ErrProfileNotFound indicates the requested profile does not exist on disk.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrInvalidProfileName indicates the profile name is not filesystem-safe.
	ErrInvalidProfileName = errors.New("invalid profile name")
)

// Cryptographic errors indicate failures during decryption.
var (
	// ErrDecryptionFailed indicates the profile could not be decrypted.
	// It covers a wrong passphrase, a tampered file, and a structurally
	// malformed file alike; callers cannot and must not tell these apart.
	ErrDecryptionFailed = errors.New("decryption failed: wrong passphrase or corrupted profile")
)

// Input errors indicate malformed caller input, rejected before any
// cryptographic work is attempted.
var (
	// ErrInvalidInput indicates a malformed key or value.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmptyKey indicates an empty variable name.
	ErrEmptyKey = errors.New("variable name must not be empty")
)

// I/O errors indicate underlying filesystem failures.
var (
	// ErrIOFailure indicates a filesystem error during read, write, or
	// rename. The underlying os error is wrapped alongside it.
	ErrIOFailure = errors.New("filesystem operation failed")
)
