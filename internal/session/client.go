// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/frontwall-client/internal/adapter"
	"github.com/MKhiriev/frontwall-client/internal/config"
	"github.com/MKhiriev/frontwall-client/internal/logger"
	"github.com/MKhiriev/frontwall-client/models"
)

// Client sends API requests and recovers transparently from an expired
// access token.
type Client struct {
	sender     Sender
	classifier Classifier
	arbitrator *Arbitrator
	redirect   *RedirectPolicy
	logger     *logger.Logger
}

// NewClient wires a Client around transport. The refresh exchange is sent
// through transport directly, bypassing recovery.
func NewClient(transport AuthTransport, cfg config.ClientSession, navigator Navigator, recorder Recorder, log *logger.Logger) *Client {
	redirect := NewRedirectPolicy(cfg.RedirectTarget, navigator, recorder, log)
	arbitrator := NewArbitrator(NewTokenRefresher(transport, cfg.RefreshPath, log), redirect, cfg.RefreshTimeout, recorder, log)

	return NewClientWith(transport, NewClassifier(cfg.RefreshPath, cfg.LoginPath), arbitrator, redirect, log)
}

// NewClientWith assembles a Client from explicit parts.
func NewClientWith(sender Sender, classifier Classifier, arbitrator *Arbitrator, redirect *RedirectPolicy, log *logger.Logger) *Client {
	return &Client{
		sender:     sender,
		classifier: classifier,
		arbitrator: arbitrator,
		redirect:   redirect,
		logger:     log,
	}
}

// Do sends req. A recoverable 401 is absorbed: the session is renewed
// (or the caller waits for the renewal already in flight) and req is
// replayed once. A terminal 401 fires the redirect and is returned. Every
// other failure is returned unchanged.
func (c *Client) Do(ctx context.Context, req models.Request) (*models.Response, error) {
	resp, err := c.sender.Send(ctx, req)
	if err == nil {
		return resp, nil
	}

	switch c.classifier.Classify(err) {
	case Recoverable:
		failure, _ := adapter.AsFailure(err)
		return c.recover(ctx, failure.Request)
	case Terminal:
		c.logger.Debug().Err(err).Str("request", req.String()).Msg("terminal authentication failure")
		c.redirect.OnSessionLost()
		return nil, err
	default:
		return nil, err
	}
}

func (c *Client) recover(ctx context.Context, req models.Request) (*models.Response, error) {
	replay := req.MarkRetried()

	if err := c.arbitrator.Renew(ctx); err != nil {
		return nil, err
	}

	c.logger.Debug().Str("request_id", replay.ID).Str("request", replay.String()).Msg("replaying request")
	return c.Do(ctx, replay)
}

// ResetRedirect re-arms the redirect after a new session was established.
func (c *Client) ResetRedirect() {
	c.redirect.Reset()
}

// Get sends a GET to path and decodes the answer into out (if non-nil).
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.call(ctx, models.NewRequest(http.MethodGet, path, nil), out)
}

// Post sends a POST to path with body and decodes the answer into out.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.call(ctx, models.NewRequest(http.MethodPost, path, body), out)
}

// Put sends a PUT to path with body and decodes the answer into out.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.call(ctx, models.NewRequest(http.MethodPut, path, body), out)
}

// Delete sends a DELETE to path.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.call(ctx, models.NewRequest(http.MethodDelete, path, nil), nil)
}

func (c *Client) call(ctx context.Context, req models.Request, out any) error {
	resp, err := c.Do(ctx, req)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}

	if err = resp.Decode(out); err != nil && !errors.Is(err, models.ErrEmptyResponseBody) {
		return fmt.Errorf("error decoding %s: %w", req, err)
	}
	return nil
}
