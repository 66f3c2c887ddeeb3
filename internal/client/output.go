// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"
	"io"
	"sync"
	"text/tabwriter"
	"time"

	"github.com/MKhiriev/frontwall-client/internal/service"
	"github.com/MKhiriev/frontwall-client/models"
)

type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

// NewOutput serialises writes to w, so background workers and the command
// itself can print to the same terminal.
func NewOutput(w io.Writer) io.Writer {
	if lw, ok := w.(*lockedWriter); ok {
		return lw
	}
	return &lockedWriter{w: w}
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}

// ShieldStatusPrinter returns a report callback for the shield status job.
func ShieldStatusPrinter(out io.Writer) service.ShieldStatusReport {
	return func(status models.ShieldStatus, err error) {
		now := time.Now().Format(time.TimeOnly)
		if err != nil {
			fmt.Fprintf(out, "%s shield: error: %v\n", now, err)
			return
		}
		fmt.Fprintf(out, "%s shield: %s\n", now, formatShield(status))
	}
}

func formatShield(status models.ShieldStatus) string {
	if !status.Active {
		return "inactive"
	}
	learn := "off"
	if status.LearnMode {
		learn = "on"
	}
	return fmt.Sprintf("active on port %d, learn mode %s", status.Port, learn)
}

func writeSites(out io.Writer, sites []models.Site) {
	if len(sites) == 0 {
		fmt.Fprintln(out, "no sites")
		return
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tTARGET\tACTIVE\tSHIELD")
	for _, s := range sites {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%t\t%t\n", s.ID, s.Name, s.TargetURL, s.IsActive, s.ShieldActive)
	}
	_ = tw.Flush()
}

func writeSite(out io.Writer, s models.Site) {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%s\n", s.ID)
	fmt.Fprintf(tw, "Name:\t%s\n", s.Name)
	fmt.Fprintf(tw, "Target:\t%s\n", s.TargetURL)
	fmt.Fprintf(tw, "Active:\t%t\n", s.IsActive)
	fmt.Fprintf(tw, "Shield:\t%t\n", s.ShieldActive)
	fmt.Fprintf(tw, "Crawl:\t%d pages, concurrency %d, delay %.2fs\n", s.CrawlMaxPages, s.CrawlConcurrency, s.CrawlDelay)
	_ = tw.Flush()
}
