// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a registered account.
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Username  string         `gorm:"unique;not null" json:"username"`
	Email     string         `gorm:"unique;not null" json:"email"`
	Password  string         `gorm:"not null" json:"-"`
	Name      string         `json:"name"`
	Bio       string         `json:"bio"`
	Avatar    string         `json:"avatar"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	Workouts  []Workout      `gorm:"foreignKey:UserID" json:"workouts,omitempty"`

	// Profile counters, not persisted; computed at query time.
	WorkoutsCount  int `gorm:"->" json:"workouts_count,omitempty"`
	FollowersCount int `gorm:"->" json:"followers_count,omitempty"`
	FollowingCount int `gorm:"->" json:"following_count,omitempty"`
	// IsFollowing indicates whether the requesting user follows this user (computed).
	IsFollowing bool `gorm:"->" json:"is_following,omitempty"`
}
