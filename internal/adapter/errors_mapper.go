// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/frontwall-client/models"
	"github.com/go-resty/resty/v2"
)

// Failure is the error returned by [Transport.Send] for every unsuccessful
// call. It keeps the originating request so that the session layer can decide
// whether the call may be replayed.
type Failure struct {
	// Request is the descriptor that failed.
	Request models.Request

	// StatusCode is the HTTP status, or 0 when no response was received.
	StatusCode int

	// Body is the trimmed response body, useful as a server-side message.
	Body string

	// Err is the classified cause: one of the package sentinels, joined with
	// the underlying client error for transport failures.
	Err error
}

func (f *Failure) Error() string {
	if f.StatusCode == 0 {
		return fmt.Sprintf("%s: %v", f.Request, f.Err)
	}
	if f.Body == "" {
		return fmt.Sprintf("%s: http %d: %v", f.Request, f.StatusCode, f.Err)
	}
	return fmt.Sprintf("%s: http %d: %v: %s", f.Request, f.StatusCode, f.Err, f.Body)
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// IsTransport reports whether the failure happened before any HTTP response
// was received.
func (f *Failure) IsTransport() bool {
	return f.StatusCode == 0
}

// AsFailure extracts a [*Failure] from err's chain.
func AsFailure(err error) (*Failure, bool) {
	var f *Failure
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	if f, ok := AsFailure(err); ok {
		return f.StatusCode
	}
	return 0
}

func mapHTTPError(req models.Request, resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	failure := &Failure{
		Request:    req,
		StatusCode: resp.StatusCode(),
		Body:       strings.TrimSpace(string(resp.Body())),
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		failure.Err = ErrBadRequest
	case http.StatusUnauthorized:
		failure.Err = ErrUnauthorized
	case http.StatusForbidden:
		failure.Err = ErrForbidden
	case http.StatusNotFound:
		failure.Err = ErrNotFound
	case http.StatusConflict:
		failure.Err = ErrConflict
	case http.StatusBadGateway:
		failure.Err = ErrBadGateway
	case http.StatusInternalServerError:
		failure.Err = ErrInternalServerError
	default:
		if failure.Body == "" {
			failure.Body = http.StatusText(resp.StatusCode())
		}
		failure.Err = ErrUnexpectedStatus
	}

	return failure
}

func transportFailure(req models.Request, err error) error {
	return &Failure{Request: req, Err: errors.Join(ErrTransport, err)}
}
