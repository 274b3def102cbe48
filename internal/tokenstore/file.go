package tokenstore

import (
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"
)

const saltSize = 16

// scrypt parameters, interactive-login grade
const (
	scryptN = 1 << 15
	scryptR = 8
	scryptP = 1
)

// File stores the token encrypted at rest in a single file. The key is
// derived from a passphrase with scrypt; a fresh salt and nonce are
// generated on every write. File layout: salt || nonce || ciphertext.
type File struct {
	mu         sync.Mutex
	path       string
	passphrase string
}

// NewFile creates a file-backed Store at path, keyed by passphrase.
func NewFile(path, passphrase string) (*File, error) {
	if path == "" {
		return nil, fmt.Errorf("token file path is required")
	}
	if passphrase == "" {
		return nil, fmt.Errorf("token passphrase is required")
	}
	return &File{path: path, passphrase: passphrase}, nil
}

func (f *File) Get() (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read token file: %w", err)
	}
	if len(data) < saltSize+chacha20poly1305.NonceSize {
		return "", fmt.Errorf("token file is corrupt")
	}

	salt := data[:saltSize]
	nonce := data[saltSize : saltSize+chacha20poly1305.NonceSize]
	ciphertext := data[saltSize+chacha20poly1305.NonceSize:]

	aead, err := f.aead(salt)
	if err != nil {
		return "", err
	}
	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("decrypt token: %w", err)
	}
	return string(plaintext), nil
}

func (f *File) Set(token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return fmt.Errorf("generate salt: %w", err)
	}
	nonce := make([]byte, chacha20poly1305.NonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return fmt.Errorf("generate nonce: %w", err)
	}

	aead, err := f.aead(salt)
	if err != nil {
		return err
	}
	ciphertext := aead.Seal(nil, nonce, []byte(token), nil)

	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("create token dir: %w", err)
	}

	data := make([]byte, 0, saltSize+len(nonce)+len(ciphertext))
	data = append(data, salt...)
	data = append(data, nonce...)
	data = append(data, ciphertext...)

	if err := os.WriteFile(f.path, data, 0o600); err != nil {
		return fmt.Errorf("write token file: %w", err)
	}
	return nil
}

func (f *File) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	err := os.Remove(f.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove token file: %w", err)
	}
	return nil
}

func (f *File) aead(salt []byte) (cipher.AEAD, error) {
	key, err := scrypt.Key([]byte(f.passphrase), salt, scryptN, scryptR, scryptP, chacha20poly1305.KeySize)
	if err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, fmt.Errorf("init cipher: %w", err)
	}
	return aead, nil
}
