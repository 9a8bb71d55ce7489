package seed

import (
	"errors"
	"fmt"

	"fitfeed/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// templateOwnerUsername is the reserved account that owns the starter
// workout templates shown to new users.
const templateOwnerUsername = "fitfeed"

// TemplateExercise is one movement of a built-in starter workout.
type TemplateExercise struct {
	Name   string
	Sets   int
	Reps   int
	Weight float64
}

// BuiltInTemplate is a permanent starter workout.
type BuiltInTemplate struct {
	Name        string
	Description string
	Exercises   []TemplateExercise
}

// BuiltInTemplates defines the permanent starter workouts.
var BuiltInTemplates = []BuiltInTemplate{
	{
		Name:        "Starting Strength A",
		Description: "Classic 3x5 barbell session for new lifters.",
		Exercises: []TemplateExercise{
			{Name: "Squat", Sets: 3, Reps: 5, Weight: 40},
			{Name: "Bench Press", Sets: 3, Reps: 5, Weight: 30},
			{Name: "Deadlift", Sets: 1, Reps: 5, Weight: 60},
		},
	},
	{
		Name:        "Starting Strength B",
		Description: "Alternating barbell session, pairs with workout A.",
		Exercises: []TemplateExercise{
			{Name: "Squat", Sets: 3, Reps: 5, Weight: 40},
			{Name: "Overhead Press", Sets: 3, Reps: 5, Weight: 20},
			{Name: "Barbell Row", Sets: 3, Reps: 5, Weight: 30},
		},
	},
	{
		Name:        "Push Day",
		Description: "Chest, shoulders, and triceps volume work.",
		Exercises: []TemplateExercise{
			{Name: "Bench Press", Sets: 4, Reps: 8, Weight: 50},
			{Name: "Overhead Press", Sets: 3, Reps: 10, Weight: 25},
			{Name: "Tricep Extension", Sets: 3, Reps: 12, Weight: 15},
		},
	},
	{
		Name:        "Pull Day",
		Description: "Back and biceps volume work.",
		Exercises: []TemplateExercise{
			{Name: "Deadlift", Sets: 3, Reps: 5, Weight: 80},
			{Name: "Lat Pulldown", Sets: 3, Reps: 10, Weight: 40},
			{Name: "Bicep Curl", Sets: 3, Reps: 12, Weight: 10},
		},
	},
	{
		Name:        "Leg Day",
		Description: "Quad and hamstring focus with accessory lunges.",
		Exercises: []TemplateExercise{
			{Name: "Squat", Sets: 4, Reps: 8, Weight: 60},
			{Name: "Leg Press", Sets: 3, Reps: 10, Weight: 100},
			{Name: "Lunge", Sets: 3, Reps: 12, Weight: 15},
		},
	},
	{
		Name:        "Bodyweight Basics",
		Description: "No equipment needed, anywhere session.",
		Exercises: []TemplateExercise{
			{Name: "Push Up", Sets: 3, Reps: 15},
			{Name: "Pull Up", Sets: 3, Reps: 8},
			{Name: "Lunge", Sets: 3, Reps: 12},
		},
	},
}

// Templates seeds the reserved template account and its public starter
// workouts. Safe to run repeatedly.
func Templates(db *gorm.DB) error {
	owner, err := ensureTemplateOwner(db)
	if err != nil {
		return fmt.Errorf("seed template owner: %w", err)
	}

	for _, item := range BuiltInTemplates {
		err := db.Transaction(func(tx *gorm.DB) error {
			var existing models.Workout
			queryErr := tx.Where("user_id = ? AND name = ?", owner.ID, item.Name).First(&existing).Error
			switch {
			case queryErr == nil:
				if existing.Description != item.Description {
					return tx.Model(&models.Workout{}).Where("id = ?", existing.ID).Update("description", item.Description).Error
				}
				return nil
			case !errors.Is(queryErr, gorm.ErrRecordNotFound):
				return queryErr
			}

			workout := models.Workout{
				UserID:      owner.ID,
				Name:        item.Name,
				Description: item.Description,
				Visibility:  models.VisibilityPublic,
			}
			for i, ex := range item.Exercises {
				exercise := models.Exercise{
					Name:  ex.Name,
					Order: i,
				}
				if ex.Sets > 0 {
					sets := ex.Sets
					exercise.Sets = &sets
				}
				if ex.Reps > 0 {
					reps := ex.Reps
					exercise.Reps = &reps
				}
				if ex.Weight > 0 {
					weight := ex.Weight
					exercise.Weight = &weight
				}
				workout.Exercises = append(workout.Exercises, exercise)
			}
			return tx.Create(&workout).Error
		})
		if err != nil {
			return fmt.Errorf("seed built-in template %s: %w", item.Name, err)
		}
	}

	return nil
}

func ensureTemplateOwner(db *gorm.DB) (*models.User, error) {
	var owner models.User
	err := db.Where("username = ?", templateOwnerUsername).First(&owner).Error
	if err == nil {
		return &owner, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	owner = models.User{
		Username: templateOwnerUsername,
		Email:    "templates@fitfeed.dev",
		Password: string(hashed),
		Name:     "FitFeed",
		Bio:      "Official starter workout templates.",
	}
	if err := db.Create(&owner).Error; err != nil {
		return nil, err
	}
	return &owner, nil
}
