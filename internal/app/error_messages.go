// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// development server handlers and the client error mapper.
//
// All Msg* constants are the "detail" strings written into JSON error bodies.
// Keeping them in one place lets the client match server answers exactly.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "Invalid data provided"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "Internal server error"

	// MsgSetupAlreadyCompleted is returned by POST /auth/setup once an
	// administrator exists.
	MsgSetupAlreadyCompleted = "Setup already completed"

	// MsgPasswordTooShort is returned when a setup password is shorter than
	// MinPasswordLength.
	MsgPasswordTooShort = "Password must be at least 8 characters"

	// MsgInvalidCredentials is returned by POST /auth/login for an unknown
	// user or a wrong password.
	MsgInvalidCredentials = "Invalid credentials"

	// MsgNotAuthenticated is returned when a protected endpoint is called
	// without an access token.
	MsgNotAuthenticated = "Not authenticated"

	// MsgInvalidToken is returned when the access token is expired, has a
	// bad signature or belongs to an older signing generation.
	MsgInvalidToken = "Invalid token"

	// MsgUserNotFound is returned when a valid token names a user that no
	// longer exists.
	MsgUserNotFound = "User not found"

	// MsgInvalidRefreshToken is returned by POST /auth/refresh when the
	// refresh cookie is missing, unknown, expired or already rotated.
	MsgInvalidRefreshToken = "Invalid refresh token"

	// MsgSiteNotFound is returned when a site ID does not exist.
	MsgSiteNotFound = "Site not found"

	// MsgNoActiveShield is returned by POST /shield/undeploy when nothing is
	// deployed.
	MsgNoActiveShield = "No active shield"

	// MsgShieldNotActive is returned by POST /shield/learn-mode when no
	// shield is deployed.
	MsgShieldNotActive = "Shield is not active"
)

// MinPasswordLength is the minimal administrator password length.
const MinPasswordLength = 8
