// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"net/http"
	"time"
)

// Session is the locally persisted authentication state of the CLI: the
// current access token and a snapshot of the cookie jar (which holds the
// refresh cookie). It lets a new process continue the previous session and
// rely on the refresh flow once the access token has expired.
type Session struct {
	Username    string
	AccessToken string
	ExpiresAt   time.Time
	Cookies     []Cookie
	UpdatedAt   time.Time
}

// Cookie is the persisted form of an http.Cookie. Only the fields needed to
// replay the cookie to the same host are kept.
type Cookie struct {
	Name     string    `json:"name"`
	Value    string    `json:"value"`
	Path     string    `json:"path,omitempty"`
	Domain   string    `json:"domain,omitempty"`
	Expires  time.Time `json:"expires,omitempty"`
	Secure   bool      `json:"secure,omitempty"`
	HttpOnly bool      `json:"http_only,omitempty"`
}

// CookiesFromHTTP converts jar cookies into their persisted form.
func CookiesFromHTTP(cookies []*http.Cookie) []Cookie {
	out := make([]Cookie, 0, len(cookies))
	for _, c := range cookies {
		if c == nil {
			continue
		}
		out = append(out, Cookie{
			Name:     c.Name,
			Value:    c.Value,
			Path:     c.Path,
			Domain:   c.Domain,
			Expires:  c.Expires,
			Secure:   c.Secure,
			HttpOnly: c.HttpOnly,
		})
	}
	return out
}

// HTTPCookies converts persisted cookies back into http.Cookie values.
func HTTPCookies(cookies []Cookie) []*http.Cookie {
	out := make([]*http.Cookie, 0, len(cookies))
	for _, c := range cookies {
		out = append(out, &http.Cookie{
			Name:     c.Name,
			Value:    c.Value,
			Path:     c.Path,
			Domain:   c.Domain,
			Expires:  c.Expires,
			Secure:   c.Secure,
			HttpOnly: c.HttpOnly,
		})
	}
	return out
}
