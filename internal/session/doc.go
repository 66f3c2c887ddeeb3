// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session wraps the API transport with transparent recovery from an
// expired access token.
//
// A call that fails with 401 is classified by [Classifier]. A recoverable
// failure is handed to the [Arbitrator], which lets exactly one caller (the
// leader) run the refresh exchange while every caller that fails during the
// same episode waits in a FIFO queue (the followers). When the refresh
// succeeds, each caller replays its original request once; when it fails,
// every caller receives the same error and the [RedirectPolicy] sends the user
// to the login entry point once.
//
// A replayed request carries a one-shot retry marker, so a second 401 is
// terminal and never starts another episode for that request. Requests to the
// refresh and login endpoints are never recovered.
package session
