// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Site is a website protected by FrontWall.
type Site struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	TargetURL        string    `json:"target_url"`
	IsActive         bool      `json:"is_active"`
	CrawlConcurrency int       `json:"crawl_concurrency"`
	CrawlDelay       float64   `json:"crawl_delay"`
	CrawlMaxPages    int       `json:"crawl_max_pages"`
	RespectRobotsTXT bool      `json:"respect_robots_txt"`
	AuthUser         *string   `json:"auth_user"`
	ShieldActive     bool      `json:"shield_active"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// SiteCreate is the body of POST /sites/.
type SiteCreate struct {
	Name             string  `json:"name"`
	TargetURL        string  `json:"target_url"`
	CrawlConcurrency int     `json:"crawl_concurrency,omitempty"`
	CrawlDelay       float64 `json:"crawl_delay,omitempty"`
	CrawlMaxPages    int     `json:"crawl_max_pages,omitempty"`
	RespectRobotsTXT *bool   `json:"respect_robots_txt,omitempty"`
	AuthUser         *string `json:"auth_user,omitempty"`
	AuthPassword     *string `json:"auth_password,omitempty"`
}

// SiteUpdate is the body of PUT /sites/{id}. Only non-nil fields change.
type SiteUpdate struct {
	Name             *string  `json:"name,omitempty"`
	TargetURL        *string  `json:"target_url,omitempty"`
	IsActive         *bool    `json:"is_active,omitempty"`
	CrawlConcurrency *int     `json:"crawl_concurrency,omitempty"`
	CrawlDelay       *float64 `json:"crawl_delay,omitempty"`
	CrawlMaxPages    *int     `json:"crawl_max_pages,omitempty"`
	RespectRobotsTXT *bool    `json:"respect_robots_txt,omitempty"`
	AuthUser         *string  `json:"auth_user,omitempty"`
	AuthPassword     *string  `json:"auth_password,omitempty"`
}
