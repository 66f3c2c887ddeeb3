// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/frontwall-client/internal/adapter"
	"github.com/MKhiriev/frontwall-client/internal/app"
	"github.com/MKhiriev/frontwall-client/internal/session"
	"github.com/MKhiriev/frontwall-client/internal/utils"
)

// mapAdapterError translates a session client error into a service business
// error. The original error stays in the chain.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, session.ErrRefreshFailed) || errors.Is(err, session.ErrRefreshAborted) {
		return fmt.Errorf("%w: %w", ErrSessionExpired, err)
	}

	detail := extractDetail(err)

	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		if detail == app.MsgInvalidCredentials {
			return fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
		}
		return fmt.Errorf("%w: %w", ErrSessionExpired, err)

	case errors.Is(err, adapter.ErrBadRequest):
		switch detail {
		case app.MsgSetupAlreadyCompleted:
			return fmt.Errorf("%w: %w", ErrSetupAlreadyCompleted, err)
		case app.MsgPasswordTooShort:
			return fmt.Errorf("%w: %w", ErrPasswordTooShort, err)
		case app.MsgShieldNotActive:
			return fmt.Errorf("%w: %w", ErrShieldNotActive, err)
		}
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)

	case errors.Is(err, adapter.ErrNotFound):
		switch detail {
		case app.MsgSiteNotFound:
			return fmt.Errorf("%w: %w", ErrSiteNotFound, err)
		case app.MsgNoActiveShield:
			return fmt.Errorf("%w: %w", ErrNoActiveShield, err)
		}

	case errors.Is(err, adapter.ErrTransport),
		errors.Is(err, adapter.ErrBadGateway),
		errors.Is(err, adapter.ErrInternalServerError):
		return fmt.Errorf("%w: %w", ErrServerUnavailable, err)
	}

	return err
}

// extractDetail returns the "detail" field of a JSON error body, or the raw
// body when it is not JSON.
func extractDetail(err error) string {
	failure, ok := adapter.AsFailure(err)
	if !ok {
		return ""
	}

	var body utils.ErrorBody
	if jsonErr := json.Unmarshal([]byte(failure.Body), &body); jsonErr == nil && body.Detail != "" {
		return body.Detail
	}
	return failure.Body
}
