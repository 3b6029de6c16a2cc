// Package errors provides typed error values for the sevn application.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching. This makes
// error handling more robust and refactoring-safe.
//
// # Error Categories
//
// Errors are grouped by category:
//
//   - Profile errors: The profile is missing or misnamed (ErrProfileNotFound)
//   - Crypto errors: The profile could not be decrypted (ErrDecryptionFailed)
//   - Input errors: Malformed keys or values (ErrInvalidInput, ErrEmptyKey)
//   - I/O errors: Filesystem failures (ErrIOFailure)
//
// ErrDecryptionFailed deliberately collapses "wrong passphrase" and
// "corrupted or tampered file" into one value. Distinguishing them would
// turn the store into an oracle for an attacker probing a stolen file.
//
// # Usage
//
// Return errors from internal packages:
//
//	if !exists {
//	    return nil, errors.ErrProfileNotFound
//	}
//
// Handle errors in the CLI layer:
//
//	vars, err := store.GetAll(name, passphrase)
//	if errors.Is(err, sevnerrors.ErrDecryptionFailed) {
//	    // Show user-friendly message
//	}
//
// Wrap errors with additional context. I/O failures carry both the
// sentinel and the underlying os error:
//
//	return fmt.Errorf("%w: renaming profile %s: %w", errors.ErrIOFailure, name, err)
package errors
