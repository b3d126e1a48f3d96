package store

import (
	"context"
	"time"
)

// Signal names tracked in the preference summary. Counts only ever grow;
// there is no correction path for mis-classified feedback.
const (
	SignalPositiveFeedback  = "positive_feedback_count"
	SignalNegativeFeedback  = "negative_feedback_count"
	SignalMakeHarder        = "make_harder"
	SignalMakeEasier        = "make_easier"
	SignalAddIngredients    = "add_ingredients"
	SignalReduceIngredients = "reduce_ingredients"
	SignalShorterTime       = "shorter_time"
	SignalLongerTime        = "longer_time"
)

// Counters maps a signal name to its accumulated count.
type Counters map[string]int

// Event is a single raw feedback submission, kept in an append-only log.
type Event struct {
	OccurredAt time.Time
	Type       string
	Message    string
}

// FeedbackStore persists the preference summary and the raw event log.
// Load returns empty counters when no summary has been written yet;
// corruption and I/O failures surface as errors for the caller to
// recover from. Save replaces the whole summary (last writer wins).
type FeedbackStore interface {
	Load(ctx context.Context) (Counters, error)
	Save(ctx context.Context, counters Counters) error
	Append(ctx context.Context, event Event) error
}

// eventTimeLayout matches the timestamp format used in the event log.
const eventTimeLayout = "2006-01-02 15:04:05"

// logEntry is the wire form of an Event in the JSONL log and the Redis list.
type logEntry struct {
	Timestamp string `json:"timestamp"`
	Type      string `json:"type"`
	Message   string `json:"message"`
}

func newLogEntry(e Event) logEntry {
	return logEntry{
		Timestamp: e.OccurredAt.Format(eventTimeLayout),
		Type:      e.Type,
		Message:   e.Message,
	}
}
