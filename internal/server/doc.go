// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs HTTP servers with graceful shutdown.
//
// A server stops when the context passed to Run is cancelled; the binaries
// derive that context from SIGINT, SIGTERM and SIGQUIT.
package server
