// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"

	"fitfeed/internal/cache"
	"fitfeed/internal/models"

	"gorm.io/gorm"
)

// WorkoutRepository defines the interface for workout data operations
type WorkoutRepository interface {
	Create(ctx context.Context, workout *models.Workout) error
	GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Workout, error)
	GetByUserID(ctx context.Context, userID uint, visibilities []models.Visibility, currentUserID uint) ([]*models.Workout, error)
	ListForProgress(ctx context.Context, userID uint) ([]*models.Workout, error)
	Feed(ctx context.Context, followingIDs []uint, limit int, cursor uint, currentUserID uint) ([]*models.Workout, error)
	Update(ctx context.Context, workout *models.Workout) error
	Delete(ctx context.Context, id uint) error
	CountByUser(ctx context.Context, userID uint) (int64, error)
	IsLiked(ctx context.Context, userID, workoutID uint) (bool, error)
	GetLikedWorkoutIDs(ctx context.Context, userID uint, workoutIDs []uint) ([]uint, error)
	Like(ctx context.Context, userID, workoutID uint) error
	Unlike(ctx context.Context, userID, workoutID uint) error
}

// workoutRepository implements WorkoutRepository
type workoutRepository struct {
	db *gorm.DB
}

// NewWorkoutRepository creates a new workout repository
func NewWorkoutRepository(db *gorm.DB) WorkoutRepository {
	return &workoutRepository{db: db}
}

func (r *workoutRepository) Create(ctx context.Context, workout *models.Workout) error {
	if err := r.db.WithContext(ctx).Create(workout).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateFeed(ctx)
	return nil
}

func (r *workoutRepository) GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Workout, error) {
	var workout models.Workout
	err := r.applyWorkoutDetails(r.db.WithContext(ctx), currentUserID).
		Preload("User").
		Preload("Exercises", exercisesInOrder).
		First(&workout, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Workout")
		}
		return nil, models.NewInternalError(err)
	}
	return &workout, nil
}

func (r *workoutRepository) GetByUserID(ctx context.Context, userID uint, visibilities []models.Visibility, currentUserID uint) ([]*models.Workout, error) {
	var workouts []*models.Workout
	q := r.applyWorkoutDetails(r.db.WithContext(ctx), currentUserID).
		Preload("User").
		Preload("Exercises", exercisesInOrder).
		Where("workouts.user_id = ?", userID)
	if len(visibilities) > 0 {
		q = q.Where("workouts.visibility IN ?", visibilities)
	}
	err := q.Order("workouts.created_at DESC").Find(&workouts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return workouts, nil
}

// ListForProgress returns every workout of the user with exercises and
// the computed log count, most-logged first.
func (r *workoutRepository) ListForProgress(ctx context.Context, userID uint) ([]*models.Workout, error) {
	var workouts []*models.Workout
	err := r.applyWorkoutDetails(r.db.WithContext(ctx), 0).
		Preload("Exercises", exercisesInOrder).
		Where("workouts.user_id = ?", userID).
		Order("logs_count DESC, workouts.created_at DESC").
		Find(&workouts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return workouts, nil
}

// Feed returns workouts visible to a viewer who follows followingIDs:
// every PUBLIC workout plus FOLLOWERS workouts from followed users.
// cursor is the id of the last workout of the previous page; pagination
// is keyset on (created_at, id) so inserts do not shift pages.
func (r *workoutRepository) Feed(ctx context.Context, followingIDs []uint, limit int, cursor uint, currentUserID uint) ([]*models.Workout, error) {
	var workouts []*models.Workout
	q := r.applyWorkoutDetails(r.db.WithContext(ctx), currentUserID).
		Preload("User").
		Preload("Exercises", exercisesInOrder).
		Where("workouts.visibility = ? OR (workouts.visibility = ? AND workouts.user_id IN ?)",
			models.VisibilityPublic, models.VisibilityFollowers, followingIDs)
	if cursor != 0 {
		q = q.Where("(workouts.created_at, workouts.id) < (SELECT created_at, id FROM workouts WHERE id = ?)", cursor)
	}
	err := q.Order("workouts.created_at DESC, workouts.id DESC").
		Limit(limit).
		Find(&workouts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return workouts, nil
}

// Update replaces the workout's own columns and its full exercise set
// in one transaction. Exercises are deleted and recreated rather than
// diffed; partial failure must not leave a workout with no exercises.
func (r *workoutRepository) Update(ctx context.Context, workout *models.Workout) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Workout{}).
			Where("id = ?", workout.ID).
			Updates(map[string]interface{}{
				"name":        workout.Name,
				"description": workout.Description,
				"visibility":  workout.Visibility,
			}).Error; err != nil {
			return err
		}
		if err := tx.Where("workout_id = ?", workout.ID).Delete(&models.Exercise{}).Error; err != nil {
			return err
		}
		for i := range workout.Exercises {
			workout.Exercises[i].ID = 0
			workout.Exercises[i].WorkoutID = workout.ID
		}
		if len(workout.Exercises) > 0 {
			if err := tx.Create(&workout.Exercises).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateFeed(ctx)
	return nil
}

func (r *workoutRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Workout{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateFeed(ctx)
	return nil
}

func (r *workoutRepository) CountByUser(ctx context.Context, userID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Workout{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

func (r *workoutRepository) IsLiked(ctx context.Context, userID, workoutID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("user_id = ? AND workout_id = ?", userID, workoutID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

// GetLikedWorkoutIDs answers "which of these workouts did the user
// like" with a single IN query, so callers can decorate a whole page
// without per-row lookups.
func (r *workoutRepository) GetLikedWorkoutIDs(ctx context.Context, userID uint, workoutIDs []uint) ([]uint, error) {
	if len(workoutIDs) == 0 {
		return nil, nil
	}
	var likedIDs []uint
	err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("user_id = ? AND workout_id IN ?", userID, workoutIDs).
		Pluck("workout_id", &likedIDs).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return likedIDs, nil
}

func (r *workoutRepository) Like(ctx context.Context, userID, workoutID uint) error {
	// INSERT ... ON CONFLICT DO NOTHING keeps concurrent toggles from
	// producing duplicate key errors.
	result := r.db.WithContext(ctx).Exec(
		`INSERT INTO likes (user_id, workout_id, created_at)
		 VALUES (?, ?, NOW())
		 ON CONFLICT (user_id, workout_id) DO NOTHING`,
		userID, workoutID,
	)
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	cache.InvalidateFeed(ctx)
	return nil
}

func (r *workoutRepository) Unlike(ctx context.Context, userID, workoutID uint) error {
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND workout_id = ?", userID, workoutID).
		Delete(&models.Like{}).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateFeed(ctx)
	return nil
}

// applyWorkoutDetails adds subqueries to fetch counts and liked status in a single query.
func (r *workoutRepository) applyWorkoutDetails(db *gorm.DB, currentUserID uint) *gorm.DB {
	selectQuery := "workouts.*, " +
		"(SELECT COUNT(*) FROM comments WHERE comments.workout_id = workouts.id AND comments.deleted_at IS NULL) as comments_count, " +
		"(SELECT COUNT(*) FROM likes WHERE likes.workout_id = workouts.id) as likes_count, " +
		"(SELECT COUNT(*) FROM workout_logs WHERE workout_logs.workout_id = workouts.id) as logs_count"

	if currentUserID != 0 {
		return db.Select(selectQuery+", EXISTS(SELECT 1 FROM likes WHERE likes.workout_id = workouts.id AND likes.user_id = ?) as liked", currentUserID)
	}

	return db.Select(selectQuery + ", false as liked")
}

// exercisesInOrder keeps preloaded exercises in their saved order.
func exercisesInOrder(db *gorm.DB) *gorm.DB {
	return db.Order("sort_order ASC")
}
