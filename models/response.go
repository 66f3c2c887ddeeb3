// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrEmptyResponseBody is returned by [Response.Decode] when there is nothing
// to decode.
var ErrEmptyResponseBody = errors.New("empty response body")

// Response is a successful (2xx) answer to a [Request].
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int

	// Header holds the response headers.
	Header http.Header

	// Body is the raw response payload.
	Body []byte

	// Request is the descriptor that produced this response. For replayed
	// calls it carries the retry marker.
	Request Request
}

// Decode unmarshals the JSON body into v.
func (r *Response) Decode(v any) error {
	if r == nil || len(r.Body) == 0 {
		return ErrEmptyResponseBody
	}
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("decode %s response: %w", r.Request, err)
	}
	return nil
}
