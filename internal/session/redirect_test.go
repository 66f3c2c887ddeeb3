// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"sync"
	"testing"

	"github.com/MKhiriev/frontwall-client/internal/logger"
	"github.com/MKhiriev/frontwall-client/internal/mock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestRedirectPolicy_FirstCallWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	nav := mock.NewMockNavigator(ctrl)
	rec := mock.NewMockRecorder(ctrl)

	nav.EXPECT().Navigate("/login").Times(1)
	rec.EXPECT().SessionLost().Times(1)

	p := NewRedirectPolicy("/login", nav, rec, logger.Nop())

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.OnSessionLost()
		}()
	}
	wg.Wait()

	assert.True(t, p.Fired())
}

func TestRedirectPolicy_Reset(t *testing.T) {
	var targets []string
	p := NewRedirectPolicy("/login", NavigatorFunc(func(target string) {
		targets = append(targets, target)
	}), nil, logger.Nop())

	p.OnSessionLost()
	p.OnSessionLost()
	p.Reset()
	assert.False(t, p.Fired())
	p.OnSessionLost()

	assert.Equal(t, []string{"/login", "/login"}, targets)
}

func TestRedirectPolicy_NilNavigator(t *testing.T) {
	p := NewRedirectPolicy("/login", nil, nil, logger.Nop())
	assert.NotPanics(t, p.OnSessionLost)
	assert.True(t, p.Fired())
}
