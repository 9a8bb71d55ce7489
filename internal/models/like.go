// Package models contains data structures for the application's domain models.
package models

import "time"

// Like is an edge between a user and a workout they liked. The pair is
// unique; concurrent duplicate toggles resolve at the unique constraint.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_like_pair" json:"user_id"`
	WorkoutID uint      `gorm:"not null;uniqueIndex:idx_like_pair;index" json:"workout_id"`
	CreatedAt time.Time `json:"created_at"`
}
