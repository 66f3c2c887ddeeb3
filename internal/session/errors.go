// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import "errors"

var (
	// ErrRefreshFailed wraps the cause of a failed refresh exchange. The
	// leader and all followers of the episode receive the same error value.
	ErrRefreshFailed = errors.New("session refresh failed")

	// ErrRefreshAborted is delivered to followers when the leader exits
	// without settling the episode (a panic in the refresh exchange).
	ErrRefreshAborted = errors.New("session refresh aborted")
)
