// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/frontwall-client/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidAuthorizationHeader is returned by [ParseBearerToken] for headers
// that are not of the form "Bearer <token>".
var ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")

// GenerateAccessToken creates a signed HMAC-SHA256 access token.
//
// The token includes the following claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the administrator username
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus ttl
//   - epoch          : the server signing generation
//
// Returns the compact token and its expiry. All string parameters and ttl are
// required.
//
// Example usage:
//
//	token, exp, err := utils.GenerateAccessToken("frontwall", "admin", 0, 15*time.Minute, "secret")
func GenerateAccessToken(issuer, subject string, epoch int64, ttl time.Duration, signKey string) (string, time.Time, error) {
	if issuer == "" || subject == "" || ttl <= 0 || signKey == "" {
		return "", time.Time{}, errors.New("invalid params for generating access token")
	}

	now := time.Now()
	expiresAt := now.Add(ttl)
	claims := &models.AccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Epoch: epoch,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(signKey))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("error occurred during signing access token: %w", err)
	}

	return signed, expiresAt, nil
}

// ValidateAccessToken verifies the signature, issuer and expiry of
// tokenString and returns its claims. The subject must be present.
func ValidateAccessToken(tokenString, signKey, issuer string) (*models.AccessClaims, error) {
	claims := &models.AccessClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	}, jwt.WithIssuer(issuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("error occurred validating access token: %w", err)
	}

	if claims.Subject == "" {
		return nil, errors.New("empty subject error")
	}

	return claims, nil
}

// AccessTokenExpiry returns the "exp" claim of tokenString without verifying
// the signature. The client uses it for display only; the server remains the
// authority on validity.
func AccessTokenExpiry(tokenString string) (time.Time, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, &models.AccessClaims{})
	if err != nil {
		return time.Time{}, fmt.Errorf("parse access token: %w", err)
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, fmt.Errorf("read token expiry: %w", err)
	}
	if exp == nil {
		return time.Time{}, nil
	}

	return exp.Time, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", ErrInvalidAuthorizationHeader
	}
	return parts[1], nil
}
