// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ShieldStatus is returned by GET /shield/status.
type ShieldStatus struct {
	Active    bool `json:"active"`
	Port      int  `json:"port"`
	LearnMode bool `json:"learn_mode"`
}

// DeployResult is returned by POST /shield/deploy/{id}.
type DeployResult struct {
	Status string `json:"status"`
	SiteID string `json:"site_id"`
	Port   int    `json:"port"`
}

// Overview aggregates what the dashboard shows on start.
type Overview struct {
	User   User
	Sites  []Site
	Shield ShieldStatus
}
