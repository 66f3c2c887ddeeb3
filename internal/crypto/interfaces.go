// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto seals the locally persisted session. The refresh cookie
// stored between CLI invocations is as good as a password until it expires,
// so the store can keep it encrypted under a passphrase.
package crypto

// Sealer encrypts short secrets for storage at rest.
type Sealer interface {
	// Seal encrypts plaintext and returns a printable blob carrying the
	// [SealedPrefix] marker.
	Seal(plaintext []byte) (string, error)

	// Open reverses [Sealer.Seal]. It fails with [ErrDecryptionFailed] when
	// the blob was sealed under another passphrase or has been tampered with.
	Open(sealed string) ([]byte, error)
}
