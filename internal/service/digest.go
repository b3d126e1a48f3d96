package service

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/mealmuse/recipechat/backend/internal/store"
)

// StatsDigest periodically logs a one-line snapshot of the preference
// counters so operators can watch taste drift without hitting the API.
type StatsDigest struct {
	store    store.FeedbackStore
	schedule string
	cron     *cron.Cron
}

// NewStatsDigest builds a digest for the given cron schedule. An empty
// schedule disables the digest entirely.
func NewStatsDigest(feedbackStore store.FeedbackStore, schedule string) *StatsDigest {
	return &StatsDigest{store: feedbackStore, schedule: schedule}
}

// Start registers and starts the cron entry. A bad schedule expression is
// reported immediately instead of at first fire.
func (d *StatsDigest) Start() error {
	if d.schedule == "" {
		log.Printf("[digest] disabled, no schedule configured")
		return nil
	}

	d.cron = cron.New()
	if _, err := d.cron.AddFunc(d.schedule, d.run); err != nil {
		return fmt.Errorf("invalid digest schedule %q: %w", d.schedule, err)
	}
	d.cron.Start()
	log.Printf("[digest] scheduled with %q", d.schedule)
	return nil
}

// Stop halts scheduling and waits briefly for an in-flight digest.
func (d *StatsDigest) Stop() {
	if d.cron == nil {
		return
	}
	stopCtx := d.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-time.After(5 * time.Second):
		log.Printf("[digest] stop timeout waiting for running digest")
	}
}

func (d *StatsDigest) run() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	counters, err := d.store.Load(ctx)
	if err != nil {
		log.Printf("[digest] failed to load feedback summary: %v", err)
		return
	}
	if len(counters) == 0 {
		log.Printf("[digest] no feedback recorded yet")
		return
	}

	names := make([]string, 0, len(counters))
	for name := range counters {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s=%d", name, counters[name])
	}
	log.Printf("[digest] feedback summary: %s", strings.Join(parts, " "))
}
