package vault

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	sevnerrors "github.com/thoerner/sevn/internal/errors"

	"golang.org/x/crypto/nacl/secretbox"
)

// FileExt is the suffix of every encrypted profile file.
const FileExt = ".sevn"

const (
	fileVersion = 0x01

	// header: [version:1][salt:SaltSize], followed by the encrypted blob
	// (nonce + ciphertext + tag).
	headerSize  = 1 + SaltSize
	minFileSize = headerSize + NonceSize + secretbox.Overhead
)

// profileNamePattern permits filesystem-safe names only. The first
// character must be alphanumeric so temp files (dot-prefixed) can never
// collide with a profile.
var profileNamePattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._-]*$`)

// Store owns the on-disk representation of encrypted profiles inside a
// single directory. The directory is supplied explicitly by the caller;
// the store never consults global state to find it.
type Store struct {
	dir string
}

// NewStore returns a store rooted at dir. The directory does not need to
// exist yet; it is created on the first write.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the directory the store operates on.
func (s *Store) Dir() string {
	return s.dir
}

// Exists reports whether a profile file exists for name.
func (s *Store) Exists(name string) bool {
	info, err := os.Stat(s.profilePath(name))
	return err == nil && info.Mode().IsRegular()
}

// Set inserts or overwrites a single variable in a profile, creating the
// profile (with a fresh salt) if it does not exist yet. The passphrase is
// verified by decryption before any mutation; on any failure the
// previously committed file is left byte-for-byte unchanged.
func (s *Store) Set(name, key, value string, passphrase []byte) error {
	if err := validateName(name); err != nil {
		return err
	}
	if err := validateKey(key); err != nil {
		return err
	}

	var (
		salt []byte
		vars map[string]string
	)
	if s.Exists(name) {
		var err error
		salt, vars, err = s.load(name, passphrase)
		if err != nil {
			return err
		}
	} else {
		var err error
		if salt, err = GenerateSalt(); err != nil {
			return fmt.Errorf("failed to generate salt: %w", err)
		}
		vars = make(map[string]string)
	}

	vars[key] = value
	return s.write(name, salt, vars, passphrase)
}

// GetAll decrypts a profile and returns its full variable map.
func (s *Store) GetAll(name string, passphrase []byte) (map[string]string, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	_, vars, err := s.load(name, passphrase)
	if err != nil {
		return nil, err
	}
	return vars, nil
}

// DeleteKey removes a single variable from a profile. Deleting a key that
// is not present is not an error and leaves the file untouched. Removing
// the last key keeps an empty encrypted profile on disk; only
// DeleteProfile removes the file itself.
func (s *Store) DeleteKey(name, key string, passphrase []byte) error {
	if err := validateName(name); err != nil {
		return err
	}
	if err := validateKey(key); err != nil {
		return err
	}

	salt, vars, err := s.load(name, passphrase)
	if err != nil {
		return err
	}
	if _, ok := vars[key]; !ok {
		return nil
	}
	delete(vars, key)
	return s.write(name, salt, vars, passphrase)
}

// DeleteProfile removes a profile file entirely. No passphrase is
// required: the file, not its contents, is the target, and anyone with
// filesystem access could remove it anyway.
func (s *Store) DeleteProfile(name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	if err := os.Remove(s.profilePath(name)); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("profile %q: %w", name, sevnerrors.ErrProfileNotFound)
		}
		return fmt.Errorf("%w: removing profile %q: %w", sevnerrors.ErrIOFailure, name, err)
	}
	return nil
}

// ListProfiles returns the sorted names of all profiles in the store
// directory. Files that do not match the profile naming pattern, temp
// files included, are ignored. A missing directory yields an empty list.
func (s *Store) ListProfiles() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: reading profile directory: %w", sevnerrors.ErrIOFailure, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), FileExt) {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), FileExt)
		if !profileNamePattern.MatchString(name) {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (s *Store) profilePath(name string) string {
	return filepath.Join(s.dir, name+FileExt)
}

// load reads and decrypts a profile, returning its salt and variable map.
func (s *Store) load(name string, passphrase []byte) ([]byte, map[string]string, error) {
	data, err := os.ReadFile(s.profilePath(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, fmt.Errorf("profile %q: %w", name, sevnerrors.ErrProfileNotFound)
		}
		return nil, nil, fmt.Errorf("%w: reading profile %q: %w", sevnerrors.ErrIOFailure, name, err)
	}

	if len(data) < minFileSize || data[0] != fileVersion {
		return nil, nil, sevnerrors.ErrDecryptionFailed
	}
	salt := data[1:headerSize]

	key := DeriveKey(passphrase, salt)
	plaintext, err := Decrypt(data[headerSize:], key)
	if err != nil {
		return nil, nil, err
	}

	vars, err := DecodeVars(plaintext)
	if err != nil {
		// The tag verified, so this is a file written by a broken or
		// incompatible encoder. Same category for the caller.
		return nil, nil, sevnerrors.ErrDecryptionFailed
	}
	return salt, vars, nil
}

// write encrypts vars under the profile's salt and atomically replaces
// the profile file. The salt is reused for the lifetime of the profile;
// per-write freshness comes from the encryption nonce.
func (s *Store) write(name string, salt []byte, vars map[string]string, passphrase []byte) error {
	key := DeriveKey(passphrase, salt)
	blob, err := Encrypt(EncodeVars(vars), key)
	if err != nil {
		return fmt.Errorf("failed to encrypt profile %q: %w", name, err)
	}

	data := make([]byte, 0, headerSize+len(blob))
	data = append(data, fileVersion)
	data = append(data, salt...)
	data = append(data, blob...)

	return s.commit(name, data)
}

// commit writes data to a 0600 temp file in the store directory and
// renames it over the profile file. The temp file only ever holds
// ciphertext, and is removed on every failure path.
func (s *Store) commit(name string, data []byte) error {
	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return fmt.Errorf("%w: creating profile directory: %w", sevnerrors.ErrIOFailure, err)
	}

	// CreateTemp opens the file 0600 before any data is written. The
	// leading dot keeps half-finished writes out of ListProfiles.
	tmp, err := os.CreateTemp(s.dir, "."+name+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: creating temp file for profile %q: %w", sevnerrors.ErrIOFailure, name, err)
	}
	tmpPath := tmp.Name()

	_, err = tmp.Write(data)
	if err == nil {
		err = tmp.Sync()
	}
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err == nil {
		err = os.Rename(tmpPath, s.profilePath(name))
	}
	if err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: writing profile %q: %w", sevnerrors.ErrIOFailure, name, err)
	}
	return nil
}

func validateName(name string) error {
	if !profileNamePattern.MatchString(name) {
		return fmt.Errorf("%w: %q", sevnerrors.ErrInvalidProfileName, name)
	}
	return nil
}

func validateKey(key string) error {
	if key == "" {
		return fmt.Errorf("%w: %w", sevnerrors.ErrInvalidInput, sevnerrors.ErrEmptyKey)
	}
	if strings.ContainsAny(key, "=\x00\n") {
		return fmt.Errorf("%w: variable name %q contains illegal characters", sevnerrors.ErrInvalidInput, key)
	}
	return nil
}
