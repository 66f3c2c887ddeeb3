// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	ErrEmptyPassphrase  = errors.New("empty passphrase")
	ErrNotSealed        = errors.New("value is not sealed")
	ErrMalformedBlob    = errors.New("malformed sealed value")
	ErrDecryptionFailed = errors.New("decryption failed")
)
