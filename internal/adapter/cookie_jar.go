// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"sync"
)

// sessionJar is the cookie jar installed on the HTTP client for the whole
// lifetime of the transport. Resetting the session swaps the inner jar, so
// http.Client.Jar is never written while requests are in flight.
type sessionJar struct {
	mu    sync.RWMutex
	inner *cookiejar.Jar
}

func newSessionJar() (*sessionJar, error) {
	inner, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}
	return &sessionJar{inner: inner}, nil
}

// SetCookies implements http.CookieJar.
func (j *sessionJar) SetCookies(u *url.URL, cookies []*http.Cookie) {
	j.mu.RLock()
	defer j.mu.RUnlock()
	j.inner.SetCookies(u, cookies)
}

// Cookies implements http.CookieJar.
func (j *sessionJar) Cookies(u *url.URL) []*http.Cookie {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return j.inner.Cookies(u)
}

// replace drops every stored cookie and keeps only cookies, scoped to u.
func (j *sessionJar) replace(u *url.URL, cookies []*http.Cookie) error {
	inner, err := cookiejar.New(nil)
	if err != nil {
		return fmt.Errorf("create cookie jar: %w", err)
	}
	if len(cookies) > 0 {
		inner.SetCookies(u, cookies)
	}

	j.mu.Lock()
	j.inner = inner
	j.mu.Unlock()
	return nil
}
