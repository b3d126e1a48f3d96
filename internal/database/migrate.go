package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/mealmuse/recipechat/backend/internal/models"
)

// Migrate creates or updates the feedback tables. The schema is small
// enough that auto-migration covers both sqlite and postgres.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.PreferenceCounter{},
		&models.FeedbackEvent{},
	); err != nil {
		return fmt.Errorf("failed to migrate feedback tables: %w", err)
	}
	return nil
}
