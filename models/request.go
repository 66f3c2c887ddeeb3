// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// Request describes a single outbound API call: target path, method, payload
// and extra headers. It is a value type; the only state that changes over its
// lifetime is the one-shot retry marker, and changing it yields a copy.
//
// Authentication is never part of a Request. Credentials (bearer token,
// session cookies) are attached by the transport at send time, so a replayed
// Request automatically carries the renewed session.
type Request struct {
	// ID correlates the call across logs and the X-Trace-ID header. The
	// transport assigns one when it is empty. A replay keeps the original ID.
	ID string

	// Method is the HTTP method (GET, POST, PUT, DELETE).
	Method string

	// Path is the endpoint path relative to the API base URL
	// (e.g. "/sites/", "/auth/refresh").
	Path string

	// Body is serialised as JSON when non-nil.
	Body any

	// Query holds URL query parameters.
	Query map[string]string

	// Headers holds additional request headers.
	Headers map[string]string

	retried bool
}

// NewRequest returns a Request for method and path with an optional JSON body.
func NewRequest(method, path string, body any) Request {
	return Request{Method: method, Path: path, Body: body}
}

// Retried reports whether the request has already been replayed once after a
// session refresh.
func (r Request) Retried() bool {
	return r.retried
}

// MarkRetried returns a copy of r with the retry marker set.
func (r Request) MarkRetried() Request {
	r.retried = true
	return r
}

// Endpoint returns Path without its query string and trailing slashes, the
// form used when comparing requests against well-known endpoints.
func (r Request) Endpoint() string {
	p := r.Path
	if i := strings.IndexByte(p, '?'); i >= 0 {
		p = p[:i]
	}
	p = strings.TrimRight(p, "/")
	if p == "" {
		return "/"
	}
	return p
}

// String renders the request as "METHOD path" for logs and error messages.
func (r Request) String() string {
	return r.Method + " " + r.Path
}
