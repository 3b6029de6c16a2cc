// Package vault implements the encrypted profile store for sevn.
//
// A profile is a named collection of environment variables backed by
// exactly one encrypted file. The plaintext variable map only ever exists
// transiently in memory during an operation; no persistent unlocked state
// touches disk.
//
// # Encryption
//
// Keys are derived from the user's passphrase with PBKDF2-HMAC-SHA256
// (210,000 iterations, per-profile random 16-byte salt). Payloads are
// sealed with NaCl secretbox, a random 24-byte nonce prepended to each
// ciphertext, so re-encrypting the same profile produces different output
// (non-deterministic encryption) and any bit-flip in the stored file is
// detected at open time rather than silently decrypted into garbage.
//
// The salt is generated once when a profile is created and reused for
// every subsequent re-encryption. Per-write freshness comes from the
// nonce; a stable salt keeps key derivation consistent across the
// profile's lifetime. Deleting and recreating a profile produces a new
// salt.
//
// # File Format
//
// Each profile is stored at <dir>/<name>.sevn:
//
//	[ version: 1 byte ]
//	[ salt: 16 bytes ]
//	[ nonce: 24 bytes ]
//	[ ciphertext + tag: to end of file ]
//
// Files shorter than the minimum header, or carrying an unknown version
// byte, fail decryption deterministically. Wrong passphrase, tampering,
// and malformed files are all reported as the same error so the store
// never acts as an oracle.
//
// # Atomicity
//
// Every mutation follows decrypt, modify, re-encrypt, then commit via a
// 0600 temp file renamed over the profile. A failure at any step,
// including a failed write, leaves the previously committed file
// byte-for-byte unchanged. Two concurrent writers are not merged; the
// last rename wins, which is an accepted limitation of a single-user
// local tool.
package vault
