// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line application runtime.
//
// It restores the persisted session, runs one command through the client
// services and persists the session again afterwards, because a transparent
// refresh during the command rotates the refresh cookie. The watch command
// runs the background pollers (and optionally the metrics endpoint) until
// interrupted.
package client
