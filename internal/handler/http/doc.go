// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP layer of the development backend.
//
// It exposes the FrontWall admin API under /api with chi: route wiring,
// request handlers and middleware for tracing, access logging and access
// token authentication. Errors are written as {"detail": "..."} bodies with
// the same messages the real backend uses, so the client maps them exactly
// as it would in production.
package http
