// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics exports refresh-episode metrics in Prometheus format.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "frontwall_client"

// Outcome label values of refresh_episodes_total.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Recorder collects session refresh metrics. It implements session.Recorder.
type Recorder struct {
	registry *prometheus.Registry

	episodes  *prometheus.CounterVec
	followers prometheus.Counter
	lost      prometheus.Counter
	inFlight  prometheus.Gauge
	duration  prometheus.Histogram
}

// NewRecorder creates a Recorder with its own registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		episodes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "refresh_episodes_total",
			Help:      "Session refresh episodes by outcome.",
		}, []string{"outcome"}),
		followers: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "refresh_followers_total",
			Help:      "Requests that waited for a refresh started by another request.",
		}),
		lost: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "session_lost_total",
			Help:      "Redirects to the login entry point.",
		}),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "refresh_in_flight",
			Help:      "1 while a refresh exchange is running.",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "refresh_duration_seconds",
			Help:      "Duration of refresh episodes.",
			Buckets:   prometheus.DefBuckets,
		}),
	}

	r.registry.MustRegister(r.episodes, r.followers, r.lost, r.inFlight, r.duration)
	return r
}

func (r *Recorder) EpisodeStarted() {
	r.inFlight.Set(1)
}

func (r *Recorder) FollowerQueued() {
	r.followers.Inc()
}

func (r *Recorder) EpisodeSettled(err error, _ int, elapsed time.Duration) {
	r.inFlight.Set(0)
	r.duration.Observe(elapsed.Seconds())

	if err != nil {
		r.episodes.WithLabelValues(OutcomeFailure).Inc()
		return
	}
	r.episodes.WithLabelValues(OutcomeSuccess).Inc()
}

func (r *Recorder) SessionLost() {
	r.lost.Inc()
}

// Registry returns the registry the metrics are registered in.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler serves the metrics in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
