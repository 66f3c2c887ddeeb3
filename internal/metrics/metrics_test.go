// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/frontwall-client/internal/session"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ session.Recorder = (*Recorder)(nil)

func TestRecorder_Episodes(t *testing.T) {
	r := NewRecorder()

	r.EpisodeStarted()
	assert.Equal(t, 1.0, testutil.ToFloat64(r.inFlight))

	r.FollowerQueued()
	r.FollowerQueued()
	r.EpisodeSettled(nil, 2, 10*time.Millisecond)

	r.EpisodeStarted()
	r.EpisodeSettled(assert.AnError, 0, time.Millisecond)
	r.SessionLost()

	assert.Equal(t, 0.0, testutil.ToFloat64(r.inFlight))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.followers))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.episodes.WithLabelValues(OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.episodes.WithLabelValues(OutcomeFailure)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.lost))

	count, err := testutil.GatherAndCount(r.Registry())
	require.NoError(t, err)
	assert.Equal(t, 6, count)
}

func TestRecorder_Handler(t *testing.T) {
	r := NewRecorder()
	r.SessionLost()

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, "frontwall_client_session_lost_total 1"))
	assert.Contains(t, body, "frontwall_client_refresh_in_flight 0")
}
