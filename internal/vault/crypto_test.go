package vault

import (
	"bytes"
	"errors"
	"testing"

	sevnerrors "github.com/thoerner/sevn/internal/errors"
)

func TestDeriveKeyDeterministic(t *testing.T) {
	salt, err := GenerateSalt()
	if err != nil {
		t.Fatalf("Failed to generate salt: %v", err)
	}

	k1 := DeriveKey([]byte("hunter2"), salt)
	k2 := DeriveKey([]byte("hunter2"), salt)
	if k1 != k2 {
		t.Error("Same passphrase and salt produced different keys")
	}

	k3 := DeriveKey([]byte("hunter3"), salt)
	if k1 == k3 {
		t.Error("Different passphrases produced the same key")
	}
}

func TestDeriveKeySaltMatters(t *testing.T) {
	salt1, err := GenerateSalt()
	if err != nil {
		t.Fatalf("Failed to generate salt: %v", err)
	}
	salt2, err := GenerateSalt()
	if err != nil {
		t.Fatalf("Failed to generate salt: %v", err)
	}
	if bytes.Equal(salt1, salt2) {
		t.Fatal("Two generated salts are identical")
	}

	k1 := DeriveKey([]byte("hunter2"), salt1)
	k2 := DeriveKey([]byte("hunter2"), salt2)
	if k1 == k2 {
		t.Error("Same passphrase with different salts produced the same key")
	}
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	salt, err := GenerateSalt()
	if err != nil {
		t.Fatalf("Failed to generate salt: %v", err)
	}
	key := DeriveKey([]byte("hunter2"), salt)

	plaintext := []byte("STRIPE_KEY=sk_test_123")
	blob, err := Encrypt(plaintext, key)
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}

	got, err := Decrypt(blob, key)
	if err != nil {
		t.Fatalf("Decrypt failed: %v", err)
	}
	if !bytes.Equal(got, plaintext) {
		t.Errorf("Round trip mismatch: got %q, want %q", got, plaintext)
	}
}

func TestEncryptFreshNoncePerCall(t *testing.T) {
	salt, err := GenerateSalt()
	if err != nil {
		t.Fatalf("Failed to generate salt: %v", err)
	}
	key := DeriveKey([]byte("hunter2"), salt)

	plaintext := []byte("same plaintext")
	blob1, err := Encrypt(plaintext, key)
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}
	blob2, err := Encrypt(plaintext, key)
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}

	if bytes.Equal(blob1[:NonceSize], blob2[:NonceSize]) {
		t.Error("Two encryptions used the same nonce")
	}
	if bytes.Equal(blob1, blob2) {
		t.Error("Two encryptions of the same plaintext produced identical blobs")
	}
}

func TestDecryptWrongKey(t *testing.T) {
	salt, err := GenerateSalt()
	if err != nil {
		t.Fatalf("Failed to generate salt: %v", err)
	}

	blob, err := Encrypt([]byte("secret"), DeriveKey([]byte("right"), salt))
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}

	_, err = Decrypt(blob, DeriveKey([]byte("wrong"), salt))
	if !errors.Is(err, sevnerrors.ErrDecryptionFailed) {
		t.Errorf("Expected ErrDecryptionFailed, got: %v", err)
	}
}

func TestDecryptTamperedBlob(t *testing.T) {
	salt, err := GenerateSalt()
	if err != nil {
		t.Fatalf("Failed to generate salt: %v", err)
	}
	key := DeriveKey([]byte("hunter2"), salt)

	blob, err := Encrypt([]byte("secret payload"), key)
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}

	// Flip one bit in the nonce, the ciphertext body, and the tag region.
	for _, offset := range []int{0, NonceSize + 2, len(blob) - 1} {
		tampered := make([]byte, len(blob))
		copy(tampered, blob)
		tampered[offset] ^= 0x01

		if _, err := Decrypt(tampered, key); !errors.Is(err, sevnerrors.ErrDecryptionFailed) {
			t.Errorf("Bit flip at offset %d: expected ErrDecryptionFailed, got: %v", offset, err)
		}
	}
}

func TestDecryptTruncatedBlob(t *testing.T) {
	key := DeriveKey([]byte("hunter2"), make([]byte, SaltSize))

	for _, size := range []int{0, 1, NonceSize, NonceSize + 15} {
		if _, err := Decrypt(make([]byte, size), key); !errors.Is(err, sevnerrors.ErrDecryptionFailed) {
			t.Errorf("Blob of %d bytes: expected ErrDecryptionFailed, got: %v", size, err)
		}
	}
}
