// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// Visibility controls who can read a workout.
type Visibility string

const (
	// VisibilityPrivate restricts a workout to its owner.
	VisibilityPrivate Visibility = "PRIVATE"
	// VisibilityFollowers restricts a workout to the owner and their followers.
	VisibilityFollowers Visibility = "FOLLOWERS"
	// VisibilityPublic makes a workout readable by any authenticated user.
	VisibilityPublic Visibility = "PUBLIC"
)

// Valid reports whether v is one of the three known visibility tags.
func (v Visibility) Valid() bool {
	switch v {
	case VisibilityPrivate, VisibilityFollowers, VisibilityPublic:
		return true
	}
	return false
}

// Workout is a named, ordered collection of exercises owned by one user.
type Workout struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	UserID      uint           `gorm:"not null;index" json:"user_id"`
	User        User           `gorm:"foreignKey:UserID" json:"user"`
	Name        string         `gorm:"size:100;not null" json:"name"`
	Description string         `gorm:"size:500" json:"description"`
	Visibility  Visibility     `gorm:"type:varchar(20);not null;default:'PRIVATE';index" json:"visibility"`
	Exercises   []Exercise     `gorm:"foreignKey:WorkoutID;constraint:OnDelete:CASCADE" json:"exercises"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// LikesCount is not persisted; computed at query time.
	LikesCount int `gorm:"->" json:"likes_count"`
	// CommentsCount is not persisted; computed at query time.
	CommentsCount int `gorm:"->" json:"comments_count"`
	// LogsCount is not persisted; computed at query time.
	LogsCount int `gorm:"->" json:"logs_count"`
	// Liked indicates whether the current requesting user liked this workout (computed).
	Liked bool `gorm:"->" json:"liked"`
}

// Exercise is one movement inside a workout. Order is contiguous from 0
// within its workout and is re-derived on every workout update.
type Exercise struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	WorkoutID uint      `gorm:"not null;index" json:"workout_id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Sets      *int      `json:"sets"`
	Reps      *int      `json:"reps"`
	Weight    *float64  `json:"weight"`
	Duration  *int      `json:"duration"`
	Notes     string    `gorm:"size:500" json:"notes"`
	Order     int       `gorm:"column:sort_order;not null" json:"order"`
	CreatedAt time.Time `json:"created_at"`
}
