// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/golang-jwt/jwt/v5"

// TokenResponse is the JSON body returned by the setup, login and refresh
// endpoints.
type TokenResponse struct {
	// AccessToken is the compact JWS access token. The refresh endpoint may
	// omit it when the server renews the session purely through cookies.
	AccessToken string `json:"access_token"`

	// TokenType is always "bearer".
	TokenType string `json:"token_type,omitempty"`
}

// AccessClaims is the claim set carried by FrontWall access tokens.
//
// The session core never inspects these; they are read only for display
// (expiry in `me`) and by the development server that issues them.
type AccessClaims struct {
	jwt.RegisteredClaims

	// Epoch is the server-side signing generation. Tokens from an older
	// generation are rejected, which lets tests expire every outstanding
	// token at once.
	Epoch int64 `json:"epoch,omitempty"`
}
