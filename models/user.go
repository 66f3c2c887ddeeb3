// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Credentials is the body of the setup and login endpoints.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// User is the administrator returned by GET /auth/me.
type User struct {
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// SetupStatus is returned by GET /auth/setup-required.
type SetupStatus struct {
	SetupRequired bool `json:"setup_required"`
}
