// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/frontwall-client/internal/app"
	"github.com/MKhiriev/frontwall-client/internal/logger"
	"github.com/MKhiriev/frontwall-client/internal/utils"
	"github.com/MKhiriev/frontwall-client/models"
)

func (h *Handler) listSites(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.backend.ListSites(), http.StatusOK)
}

func (h *Handler) getSite(w http.ResponseWriter, r *http.Request) {
	site, err := h.backend.GetSite(chi.URLParam(r, "siteID"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, site, http.StatusOK)
}

func (h *Handler) createSite(w http.ResponseWriter, r *http.Request) {
	var in models.SiteCreate
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		logger.FromRequest(r).Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, http.StatusBadRequest, app.MsgInvalidDataProvided)
		return
	}

	site, err := h.backend.CreateSite(in)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("site_id", site.ID).Str("target_url", site.TargetURL).Msg("site created")
	utils.WriteJSON(w, site, http.StatusCreated)
}

func (h *Handler) updateSite(w http.ResponseWriter, r *http.Request) {
	var in models.SiteUpdate
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		logger.FromRequest(r).Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, http.StatusBadRequest, app.MsgInvalidDataProvided)
		return
	}

	site, err := h.backend.UpdateSite(chi.URLParam(r, "siteID"), in)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, site, http.StatusOK)
}

func (h *Handler) deleteSite(w http.ResponseWriter, r *http.Request) {
	if err := h.backend.DeleteSite(chi.URLParam(r, "siteID")); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
