// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"fitfeed/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var workoutNames = []string{
	"Push Day", "Pull Day", "Leg Day", "Upper Body", "Lower Body",
	"Full Body", "Core Blast", "HIIT Circuit", "Morning Cardio",
	"Strength A", "Strength B", "Deload Week", "5x5 Linear",
}

type catalogExercise struct {
	Name     string
	Weighted bool
	Timed    bool
}

var exerciseCatalog = []catalogExercise{
	{Name: "Bench Press", Weighted: true},
	{Name: "Squat", Weighted: true},
	{Name: "Deadlift", Weighted: true},
	{Name: "Overhead Press", Weighted: true},
	{Name: "Barbell Row", Weighted: true},
	{Name: "Lat Pulldown", Weighted: true},
	{Name: "Leg Press", Weighted: true},
	{Name: "Bicep Curl", Weighted: true},
	{Name: "Tricep Extension", Weighted: true},
	{Name: "Lunge", Weighted: true},
	{Name: "Pull Up"},
	{Name: "Push Up"},
	{Name: "Plank", Timed: true},
	{Name: "Rowing Machine", Timed: true},
	{Name: "Treadmill Run", Timed: true},
}

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by seed presets and tests.
type Factory struct {
	db   *gorm.DB
	opts Options
	// synthetic ID counter when running in DryRun mode
	nextID uint
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) *Factory {
	// seed gofakeit for richer content
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{db: db, opts: opts, nextID: 1000}
}

// CreateUser constructs and persists a sample `models.User`.
// Optional override functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	user := &models.User{
		Username: gofakeit.Username() + fmt.Sprintf("%d", gofakeit.Number(100, 999)),
		Email:    gofakeit.Email(),
		Name:     gofakeit.Name(),
		Bio:      gofakeit.Sentence(10),
		Avatar:   fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
	}

	// Password handling: allow skipping bcrypt in dev fast mode
	if f.opts.SkipBcrypt {
		user.Password = "password123"
	} else {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		user.Password = string(hashedPassword)
	}

	for _, override := range overrides {
		override(user)
	}

	if f.opts.DryRun {
		f.nextID++
		user.ID = f.nextID
		log.Printf("[dry-run] CreateUser: %s", user.Username)
		return user, nil
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// BuildWorkoutWithTemplate constructs a workout with a realistic exercise
// list and timestamp spread but does not persist it. Useful for batching.
func (f *Factory) BuildWorkoutWithTemplate(user *models.User, visibility models.Visibility, overrides ...func(*models.Workout)) *models.Workout {
	// #nosec G404: acceptable for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	workout := &models.Workout{
		UserID:      user.ID,
		Name:        workoutNames[r.Intn(len(workoutNames))],
		Description: gofakeit.Sentence(8),
		Visibility:  visibility,
	}

	// realistic created_at spread
	maxDays := f.opts.MaxDays
	if maxDays <= 0 {
		maxDays = 90
	}
	daysBack := r.Intn(maxDays)
	hoursBack := r.Intn(24)
	minsBack := r.Intn(60)
	workout.CreatedAt = time.Now().Add(-time.Duration(daysBack)*24*time.Hour - time.Duration(hoursBack)*time.Hour - time.Duration(minsBack)*time.Minute)
	workout.UpdatedAt = workout.CreatedAt

	numExercises := r.Intn(5) + 3 // 3 to 7 movements
	for i := 0; i < numExercises; i++ {
		item := exerciseCatalog[r.Intn(len(exerciseCatalog))]
		ex := models.Exercise{
			Name:  item.Name,
			Order: i,
		}
		switch {
		case item.Timed:
			duration := (r.Intn(25) + 5) * 60 // 5 to 30 minutes
			ex.Duration = &duration
		default:
			sets := r.Intn(3) + 3
			reps := []int{5, 8, 10, 12}[r.Intn(4)]
			ex.Sets = &sets
			ex.Reps = &reps
			if item.Weighted {
				weight := float64(r.Intn(40)+4) * 2.5
				ex.Weight = &weight
			}
		}
		workout.Exercises = append(workout.Exercises, ex)
	}

	for _, override := range overrides {
		override(workout)
	}
	return workout
}

// CreateWorkoutsBatch persists multiple workouts in a single DB call when possible.
func (f *Factory) CreateWorkoutsBatch(workouts []*models.Workout) error {
	if f.opts.DryRun {
		for _, w := range workouts {
			f.nextID++
			w.ID = f.nextID
		}
		log.Printf("[dry-run] CreateWorkoutsBatch: %d workouts (no DB write)", len(workouts))
		return nil
	}
	if len(workouts) == 0 {
		return nil
	}
	return f.db.Create(&workouts).Error
}

// CreateWorkout constructs and persists a sample workout for the given user.
func (f *Factory) CreateWorkout(user *models.User, visibility models.Visibility, overrides ...func(*models.Workout)) (*models.Workout, error) {
	workout := f.BuildWorkoutWithTemplate(user, visibility, overrides...)

	if f.opts.DryRun {
		f.nextID++
		workout.ID = f.nextID
		log.Printf("[dry-run] CreateWorkout: user=%d name=%q visibility=%s", workout.UserID, workout.Name, workout.Visibility)
		return workout, nil
	}

	if err := f.db.Create(workout).Error; err != nil {
		return nil, err
	}
	return workout, nil
}

// CreateLog persists a completed session of the given workout on the
// given date. Entries mirror the workout's exercises with most marked
// completed, the way real histories look.
func (f *Factory) CreateLog(user *models.User, workout *models.Workout, date time.Time, overrides ...func(*models.WorkoutLog)) (*models.WorkoutLog, error) {
	// #nosec G404: acceptable for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	duration := (r.Intn(60) + 20) * 60 // 20 to 80 minutes
	logEntry := &models.WorkoutLog{
		UserID:    user.ID,
		WorkoutID: workout.ID,
		Date:      date,
		Duration:  &duration,
	}
	if r.Float32() < 0.3 {
		logEntry.Notes = gofakeit.Sentence(6)
	}

	for _, ex := range workout.Exercises {
		entry := models.LogEntry{
			ExerciseID: ex.ID,
			Sets:       ex.Sets,
			Reps:       ex.Reps,
			Duration:   ex.Duration,
			Completed:  r.Float32() < 0.85,
		}
		if ex.Weight != nil {
			// drift the working weight a little per session
			w := *ex.Weight + float64(r.Intn(5)-2)*2.5
			if w < 0 {
				w = *ex.Weight
			}
			entry.Weight = &w
		}
		logEntry.Entries = append(logEntry.Entries, entry)
	}

	for _, override := range overrides {
		override(logEntry)
	}

	if f.opts.DryRun {
		f.nextID++
		logEntry.ID = f.nextID
		return logEntry, nil
	}

	if err := f.db.Create(logEntry).Error; err != nil {
		return nil, err
	}
	return logEntry, nil
}

// CreateComment constructs and persists a sample `models.Comment` on the
// provided workout authored by the provided user.
func (f *Factory) CreateComment(user *models.User, workout *models.Workout, overrides ...func(*models.Comment)) (*models.Comment, error) {
	comment := &models.Comment{
		Content:   gofakeit.Sentence(8),
		UserID:    user.ID,
		WorkoutID: workout.ID,
	}

	for _, override := range overrides {
		override(comment)
	}

	if f.opts.DryRun {
		f.nextID++
		comment.ID = f.nextID
		return comment, nil
	}

	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// CreateLike persists a like from `user` on `workout`.
func (f *Factory) CreateLike(user *models.User, workout *models.Workout) error {
	if f.opts.DryRun {
		return nil
	}
	like := &models.Like{
		UserID:    user.ID,
		WorkoutID: workout.ID,
	}
	return f.db.Create(like).Error
}

// CreateFollow persists a follow edge from `follower` to `followee`.
func (f *Factory) CreateFollow(follower, followee *models.User) error {
	if f.opts.DryRun {
		return nil
	}
	follow := &models.Follow{
		FollowerID: follower.ID,
		FolloweeID: followee.ID,
	}
	return f.db.Create(follow).Error
}
