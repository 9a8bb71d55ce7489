// Package models contains data structures for the application's domain models.
package models

import "time"

// WorkoutLog records one completed session of a workout. Logs are
// immutable after creation except for deletion.
type WorkoutLog struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"not null;index" json:"user_id"`
	WorkoutID uint       `gorm:"not null;index" json:"workout_id"`
	Workout   Workout    `gorm:"foreignKey:WorkoutID" json:"workout,omitempty"`
	Date      time.Time  `gorm:"not null;index" json:"date"`
	Duration  *int       `json:"duration"` // seconds
	Notes     string     `gorm:"size:1000" json:"notes"`
	Entries   []LogEntry `gorm:"foreignKey:LogID;constraint:OnDelete:CASCADE" json:"entries"`
	CreatedAt time.Time  `json:"created_at"`
}

// LogEntry records what was actually performed for one exercise of a
// logged session. Its exercise must belong to the log's workout.
type LogEntry struct {
	ID         uint     `gorm:"primaryKey" json:"id"`
	LogID      uint     `gorm:"not null;index" json:"log_id"`
	ExerciseID uint     `gorm:"not null;index" json:"exercise_id"`
	Exercise   Exercise `gorm:"foreignKey:ExerciseID" json:"exercise,omitempty"`
	Sets       *int     `json:"sets"`
	Reps       *int     `json:"reps"`
	Weight     *float64 `json:"weight"`
	Duration   *int     `json:"duration"`
	Completed  bool     `gorm:"not null;default:false" json:"completed"`
	Notes      string   `gorm:"size:500" json:"notes"`
}
