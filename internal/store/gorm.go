package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mealmuse/recipechat/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore keeps the preference summary and the event log in relational
// tables. Works against both the sqlite and postgres drivers.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Load(ctx context.Context) (Counters, error) {
	var rows []models.PreferenceCounter
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load preference counters: %w", err)
	}

	counters := Counters{}
	for _, row := range rows {
		counters[row.SignalName] = row.Count
	}
	return counters, nil
}

func (s *GormStore) Save(ctx context.Context, counters Counters) error {
	if len(counters) == 0 {
		return nil
	}

	rows := make([]models.PreferenceCounter, 0, len(counters))
	for name, count := range counters {
		rows = append(rows, models.PreferenceCounter{SignalName: name, Count: count})
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "signal_name"}},
		DoUpdates: clause.AssignmentColumns([]string{"count"}),
	}).Create(&rows).Error
	if err != nil {
		return fmt.Errorf("failed to save preference counters: %w", err)
	}
	return nil
}

func (s *GormStore) Append(ctx context.Context, event Event) error {
	row := models.FeedbackEvent{
		ID:        uuid.New(),
		CreatedAt: event.OccurredAt,
		Type:      event.Type,
		Message:   event.Message,
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("failed to append feedback event: %w", err)
	}
	return nil
}
