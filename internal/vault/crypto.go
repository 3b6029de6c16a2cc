package vault

import (
	"crypto/rand"
	"crypto/sha256"
	"io"

	sevnerrors "github.com/thoerner/sevn/internal/errors"

	"golang.org/x/crypto/nacl/secretbox"
	"golang.org/x/crypto/pbkdf2"
)

const (
	// SaltSize is the length of the random salt stored in each profile file.
	SaltSize = 16

	// NonceSize is the secretbox nonce length, prepended to every ciphertext.
	NonceSize = 24

	keySize = 32

	// kdfIterations is the PBKDF2-HMAC-SHA256 work factor. It is fixed so
	// that profiles written by one version remain decryptable by the next;
	// changing it requires bumping the file format version.
	kdfIterations = 210_000
)

// DeriveKey derives a 32-byte symmetric key from a passphrase and salt
// using PBKDF2-HMAC-SHA256. Deterministic: the same passphrase and salt
// always produce the same key.
func DeriveKey(passphrase []byte, salt []byte) [keySize]byte {
	var key [keySize]byte
	copy(key[:], pbkdf2.Key(passphrase, salt, kdfIterations, keySize, sha256.New))
	return key
}

// GenerateSalt returns a fresh random salt for a new profile.
func GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// Encrypt seals plaintext with secretbox under key. A fresh random nonce
// is generated for every call and prepended to the returned blob, so the
// blob is self-contained given the key.
func Encrypt(plaintext []byte, key [keySize]byte) ([]byte, error) {
	var nonce [NonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return nil, err
	}
	return secretbox.Seal(nonce[:], plaintext, &nonce, &key), nil
}

// Decrypt opens a blob produced by Encrypt. The authentication tag is
// verified before any plaintext is returned; a wrong key, a flipped bit,
// or a truncated blob all fail with ErrDecryptionFailed.
func Decrypt(blob []byte, key [keySize]byte) ([]byte, error) {
	if len(blob) < NonceSize+secretbox.Overhead {
		return nil, sevnerrors.ErrDecryptionFailed
	}

	var nonce [NonceSize]byte
	copy(nonce[:], blob[:NonceSize])

	plaintext, ok := secretbox.Open(nil, blob[NonceSize:], &nonce, &key)
	if !ok {
		return nil, sevnerrors.ErrDecryptionFailed
	}
	return plaintext, nil
}
