package database

import (
	"fmt"

	"gorm.io/gorm"
)

// TruncateAllTables empties every application table and resets identity
// sequences. Intended for seeding and integration tests, never production.
func TruncateAllTables(db *gorm.DB) error {
	const sql = `TRUNCATE TABLE comments, likes, follows, log_entries, workout_logs, exercises, workouts, users RESTART IDENTITY CASCADE;`
	if err := db.Exec(sql).Error; err != nil {
		return fmt.Errorf("truncate tables: %w", err)
	}
	return nil
}
