// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/frontwall-client/internal/utils"
	"github.com/MKhiriev/frontwall-client/models"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.NewHealth(h.buildInfo), http.StatusOK)
}
