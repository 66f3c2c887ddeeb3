// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextKey_String(t *testing.T) {
	assert.Equal(t, "username", UsernameCtxKey.String())
}

func TestGetUsernameFromContext_Present(t *testing.T) {
	ctx := context.WithValue(context.Background(), UsernameCtxKey, "admin")

	got, ok := GetUsernameFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "admin", got)
}

func TestGetUsernameFromContext_Missing(t *testing.T) {
	got, ok := GetUsernameFromContext(context.Background())
	assert.False(t, ok)
	assert.Empty(t, got)
}

func TestGetUsernameFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), UsernameCtxKey, 42)

	_, ok := GetUsernameFromContext(ctx)
	assert.False(t, ok)
}

func TestGetUsernameFromContext_Empty(t *testing.T) {
	ctx := context.WithValue(context.Background(), UsernameCtxKey, "")

	_, ok := GetUsernameFromContext(ctx)
	assert.False(t, ok)
}

// A plain string key must not collide with the typed key.
func TestGetUsernameFromContext_PlainStringKeyIgnored(t *testing.T) {
	ctx := context.WithValue(context.Background(), "username", "admin") //nolint:staticcheck

	_, ok := GetUsernameFromContext(ctx)
	assert.False(t, ok)
}
