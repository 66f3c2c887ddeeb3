// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/frontwall-client/internal/app"
	"github.com/MKhiriev/frontwall-client/internal/devserver"
	"github.com/MKhiriev/frontwall-client/internal/logger"
	"github.com/MKhiriev/frontwall-client/internal/utils"
)

// ErrEmptyAuthorizationHeader is returned when a request carries neither an
// "Authorization" header nor an access cookie.
var ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

type errorAnswer struct {
	status int
	detail string
}

var errorAnswers = map[error]errorAnswer{
	devserver.ErrInvalidDataProvided:   {http.StatusBadRequest, app.MsgInvalidDataProvided},
	devserver.ErrPasswordTooShort:      {http.StatusBadRequest, app.MsgPasswordTooShort},
	devserver.ErrSetupAlreadyCompleted: {http.StatusBadRequest, app.MsgSetupAlreadyCompleted},
	devserver.ErrInvalidCredentials:    {http.StatusUnauthorized, app.MsgInvalidCredentials},
	devserver.ErrInvalidToken:          {http.StatusUnauthorized, app.MsgInvalidToken},
	devserver.ErrUserNotFound:          {http.StatusUnauthorized, app.MsgUserNotFound},
	devserver.ErrInvalidRefreshToken:   {http.StatusUnauthorized, app.MsgInvalidRefreshToken},
	devserver.ErrSiteNotFound:          {http.StatusNotFound, app.MsgSiteNotFound},
	devserver.ErrNoActiveShield:        {http.StatusNotFound, app.MsgNoActiveShield},
	devserver.ErrShieldNotActive:       {http.StatusBadRequest, app.MsgShieldNotActive},
}

func answerFromError(err error) errorAnswer {
	var failure *devserver.RefreshFailure
	if errors.As(err, &failure) {
		return errorAnswer{failure.Status, http.StatusText(failure.Status)}
	}

	for target, answer := range errorAnswers {
		if errors.Is(err, target) {
			return answer
		}
	}
	return errorAnswer{http.StatusInternalServerError, app.MsgInternalServerError}
}

// writeError logs err and writes the matching {"detail": ...} answer.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	answer := answerFromError(err)

	log := logger.FromRequest(r)
	if answer.status >= http.StatusInternalServerError {
		log.Err(err).Int("status", answer.status).Send()
	} else {
		log.Debug().Err(err).Int("status", answer.status).Send()
	}

	utils.WriteError(w, answer.status, answer.detail)
}
