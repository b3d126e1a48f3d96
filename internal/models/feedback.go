package models

import (
	"time"

	"github.com/google/uuid"
)

// FeedbackEvent is one raw feedback submission in the append-only log.
// Rows are never updated or deleted.
type FeedbackEvent struct {
	ID        uuid.UUID `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Type      string    `gorm:"not null" json:"type"` // upvote, downvote
	Message   string    `gorm:"type:text" json:"message"`
}

// TableName returns the table name for the FeedbackEvent model
func (FeedbackEvent) TableName() string {
	return "feedback_events"
}

// PreferenceCounter is one aggregated preference signal.
type PreferenceCounter struct {
	SignalName string `gorm:"primarykey" json:"signal_name"`
	Count      int    `gorm:"not null" json:"count"`
}

// TableName returns the table name for the PreferenceCounter model
func (PreferenceCounter) TableName() string {
	return "preference_counters"
}
