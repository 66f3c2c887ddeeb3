// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package devserver

import "github.com/MKhiriev/frontwall-client/models"

// ShieldStatus reports whether a shield is deployed.
func (b *Backend) ShieldStatus() models.ShieldStatus {
	b.mu.Lock()
	defer b.mu.Unlock()

	return models.ShieldStatus{
		Active:    b.shieldSite != "",
		Port:      defaultShieldPort,
		LearnMode: b.learnMode,
	}
}

// Deploy puts the shield in front of siteID, replacing any previous one.
func (b *Backend) Deploy(siteID string) (models.DeployResult, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.sites[siteID]; !ok {
		return models.DeployResult{}, ErrSiteNotFound
	}
	b.shieldSite = siteID
	b.learnMode = false

	return models.DeployResult{Status: "deployed", SiteID: siteID, Port: defaultShieldPort}, nil
}

func (b *Backend) Undeploy() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.shieldSite == "" {
		return ErrNoActiveShield
	}
	b.shieldSite = ""
	b.learnMode = false
	return nil
}

func (b *Backend) SetLearnMode(enabled bool) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.shieldSite == "" {
		return ErrShieldNotActive
	}
	b.learnMode = enabled
	return nil
}
