// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"strings"
	"sync"

	"golang.org/x/crypto/argon2"
)

// SealedPrefix marks values produced by [Sealer.Seal].
const SealedPrefix = "fwseal1:"

const saltSize = 16

// IsSealed reports whether value was produced by a [Sealer].
func IsSealed(value string) bool {
	return strings.HasPrefix(value, SealedPrefix)
}

// passphraseSealer derives AES-256-GCM keys from a passphrase with
// Argon2id. Blob layout: salt ‖ nonce ‖ ciphertext, base64 encoded.
type passphraseSealer struct {
	passphrase []byte

	// Argon2id tuning parameters.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32

	mu sync.Mutex
	// salt is used for every Seal of this process.
	salt []byte
	// keys caches derived keys by salt; Open sees the salts of earlier runs.
	keys map[string][]byte
}

// NewPassphraseSealer constructs a [Sealer] with the Argon2id parameters
// recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewPassphraseSealer(passphrase string) (Sealer, error) {
	s, err := newPassphraseSealer(passphrase, 1, 64*1024)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func newPassphraseSealer(passphrase string, argonTime, argonMemory uint32) (*passphraseSealer, error) {
	if passphrase == "" {
		return nil, ErrEmptyPassphrase
	}

	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}

	return &passphraseSealer{
		passphrase:   []byte(passphrase),
		argonTime:    argonTime,
		argonMemory:  argonMemory,
		argonThreads: 4,
		argonKeyLen:  32,
		salt:         salt,
		keys:         make(map[string][]byte),
	}, nil
}

// key returns the key for salt, deriving it on first use.
func (s *passphraseSealer) key(salt []byte) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()

	if k, ok := s.keys[string(salt)]; ok {
		return k
	}
	k := argon2.IDKey(s.passphrase, salt, s.argonTime, s.argonMemory, s.argonThreads, s.argonKeyLen)
	s.keys[string(salt)] = k
	return k
}

func (s *passphraseSealer) Seal(plaintext []byte) (string, error) {
	gcm, err := newGCM(s.key(s.salt))
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	blob := make([]byte, 0, saltSize+len(nonce)+len(plaintext)+gcm.Overhead())
	blob = append(blob, s.salt...)
	blob = append(blob, nonce...)
	blob = gcm.Seal(blob, nonce, plaintext, nil)

	return SealedPrefix + base64.StdEncoding.EncodeToString(blob), nil
}

func (s *passphraseSealer) Open(sealed string) ([]byte, error) {
	if !IsSealed(sealed) {
		return nil, ErrNotSealed
	}

	blob, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(sealed, SealedPrefix))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedBlob, err)
	}
	if len(blob) < saltSize {
		return nil, ErrMalformedBlob
	}

	salt, rest := blob[:saltSize], blob[saltSize:]
	gcm, err := newGCM(s.key(salt))
	if err != nil {
		return nil, err
	}

	nonceSize := gcm.NonceSize()
	if len(rest) < nonceSize {
		return nil, ErrMalformedBlob
	}
	nonce, ciphertext := rest[:nonceSize], rest[nonceSize:]

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}
	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
