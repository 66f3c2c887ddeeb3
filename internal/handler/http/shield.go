// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/frontwall-client/internal/app"
	"github.com/MKhiriev/frontwall-client/internal/logger"
	"github.com/MKhiriev/frontwall-client/internal/utils"
)

func (h *Handler) shieldStatus(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.backend.ShieldStatus(), http.StatusOK)
}

func (h *Handler) deploy(w http.ResponseWriter, r *http.Request) {
	result, err := h.backend.Deploy(chi.URLParam(r, "siteID"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("site_id", result.SiteID).Int("port", result.Port).Msg("shield deployed")
	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) undeploy(w http.ResponseWriter, r *http.Request) {
	if err := h.backend.Undeploy(); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, map[string]string{"status": "undeployed"}, http.StatusOK)
}

// setLearnMode reads "enabled" from the query string; a missing value means
// true.
func (h *Handler) setLearnMode(w http.ResponseWriter, r *http.Request) {
	enabled := true
	if raw := r.URL.Query().Get("enabled"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			utils.WriteError(w, http.StatusBadRequest, app.MsgInvalidDataProvided)
			return
		}
		enabled = parsed
	}

	if err := h.backend.SetLearnMode(enabled); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, map[string]bool{"learn_mode": enabled}, http.StatusOK)
}
