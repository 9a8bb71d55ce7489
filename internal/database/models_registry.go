package database

import "fitfeed/internal/models"

// PersistentModels returns the authoritative set of schema-managed GORM models.
func PersistentModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Workout{},
		&models.Exercise{},
		&models.WorkoutLog{},
		&models.LogEntry{},
		&models.Follow{},
		&models.Like{},
		&models.Comment{},
	}
}
