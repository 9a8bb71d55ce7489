// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"
	"time"

	"fitfeed/internal/models"

	"gorm.io/gorm"
)

// EntryStat is a log entry projection carrying the session date, used
// for per-exercise progress.
type EntryStat struct {
	Weight    *float64  `json:"weight"`
	Completed bool      `json:"completed"`
	Date      time.Time `json:"date"`
}

// WorkoutCount pairs a workout id with how often it was logged.
type WorkoutCount struct {
	WorkoutID uint  `json:"workout_id"`
	Count     int64 `json:"count"`
}

// WorkoutLogRepository defines the interface for workout log data operations
type WorkoutLogRepository interface {
	Create(ctx context.Context, log *models.WorkoutLog) error
	GetByID(ctx context.Context, id uint) (*models.WorkoutLog, error)
	ListByUser(ctx context.Context, userID uint, limit int, cursor uint) ([]*models.WorkoutLog, error)
	ListByWorkout(ctx context.Context, workoutID, userID uint, limit int, cursor uint) ([]*models.WorkoutLog, error)
	Delete(ctx context.Context, id uint) error

	CountByUser(ctx context.Context, userID uint) (int64, error)
	CountByUserBetween(ctx context.Context, userID uint, from, to time.Time) (int64, error)
	CountByUserSince(ctx context.Context, userID uint, since time.Time) (int64, error)
	SumDuration(ctx context.Context, userID uint) (int64, error)
	Dates(ctx context.Context, userID uint) ([]time.Time, error)
	RecentByWorkout(ctx context.Context, userID, workoutID uint, limit int) ([]*models.WorkoutLog, error)
	RecentEntriesForExercise(ctx context.Context, userID, exerciseID uint, limit int) ([]EntryStat, error)
	MostLoggedWorkout(ctx context.Context, userID uint) (*WorkoutCount, error)
}

type workoutLogRepository struct {
	db *gorm.DB
}

// NewWorkoutLogRepository creates a new workout log repository
func NewWorkoutLogRepository(db *gorm.DB) WorkoutLogRepository {
	return &workoutLogRepository{db: db}
}

func (r *workoutLogRepository) Create(ctx context.Context, log *models.WorkoutLog) error {
	if err := r.db.WithContext(ctx).Create(log).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *workoutLogRepository) GetByID(ctx context.Context, id uint) (*models.WorkoutLog, error) {
	var log models.WorkoutLog
	err := r.db.WithContext(ctx).
		Preload("Workout").
		Preload("Workout.Exercises", exercisesInOrder).
		Preload("Entries").
		Preload("Entries.Exercise").
		First(&log, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Log")
		}
		return nil, models.NewInternalError(err)
	}
	return &log, nil
}

func (r *workoutLogRepository) ListByUser(ctx context.Context, userID uint, limit int, cursor uint) ([]*models.WorkoutLog, error) {
	var logs []*models.WorkoutLog
	q := r.db.WithContext(ctx).
		Preload("Workout").
		Preload("Workout.Exercises", exercisesInOrder).
		Preload("Entries").
		Preload("Entries.Exercise").
		Where("user_id = ?", userID)
	if cursor != 0 {
		q = q.Where("(date, id) < (SELECT date, id FROM workout_logs WHERE id = ?)", cursor)
	}
	err := q.Order("date DESC, id DESC").Limit(limit).Find(&logs).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return logs, nil
}

func (r *workoutLogRepository) ListByWorkout(ctx context.Context, workoutID, userID uint, limit int, cursor uint) ([]*models.WorkoutLog, error) {
	var logs []*models.WorkoutLog
	q := r.db.WithContext(ctx).
		Preload("Entries").
		Preload("Entries.Exercise").
		Where("workout_id = ? AND user_id = ?", workoutID, userID)
	if cursor != 0 {
		q = q.Where("(date, id) < (SELECT date, id FROM workout_logs WHERE id = ?)", cursor)
	}
	err := q.Order("date DESC, id DESC").Limit(limit).Find(&logs).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return logs, nil
}

func (r *workoutLogRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.WorkoutLog{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *workoutLogRepository) CountByUser(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.WorkoutLog{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

func (r *workoutLogRepository) CountByUserBetween(ctx context.Context, userID uint, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.WorkoutLog{}).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, from, to).
		Count(&count).Error
	if err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

func (r *workoutLogRepository) CountByUserSince(ctx context.Context, userID uint, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.WorkoutLog{}).
		Where("user_id = ? AND date >= ?", userID, since).
		Count(&count).Error
	if err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

func (r *workoutLogRepository) SumDuration(ctx context.Context, userID uint) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&models.WorkoutLog{}).
		Where("user_id = ? AND duration IS NOT NULL", userID).
		Select("COALESCE(SUM(duration), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, models.NewInternalError(err)
	}
	return total, nil
}

// Dates returns every log date of the user, newest first. Streak
// computation dedupes them to days in memory.
func (r *workoutLogRepository) Dates(ctx context.Context, userID uint) ([]time.Time, error) {
	var dates []time.Time
	err := r.db.WithContext(ctx).
		Model(&models.WorkoutLog{}).
		Where("user_id = ?", userID).
		Order("date DESC").
		Pluck("date", &dates).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return dates, nil
}

func (r *workoutLogRepository) RecentByWorkout(ctx context.Context, userID, workoutID uint, limit int) ([]*models.WorkoutLog, error) {
	var logs []*models.WorkoutLog
	err := r.db.WithContext(ctx).
		Preload("Entries").
		Where("user_id = ? AND workout_id = ?", userID, workoutID).
		Order("date DESC").
		Limit(limit).
		Find(&logs).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return logs, nil
}

func (r *workoutLogRepository) RecentEntriesForExercise(ctx context.Context, userID, exerciseID uint, limit int) ([]EntryStat, error) {
	var entries []EntryStat
	err := r.db.WithContext(ctx).
		Table("log_entries").
		Select("log_entries.weight, log_entries.completed, workout_logs.date").
		Joins("JOIN workout_logs ON workout_logs.id = log_entries.log_id").
		Where("log_entries.exercise_id = ? AND workout_logs.user_id = ?", exerciseID, userID).
		Order("workout_logs.date DESC").
		Limit(limit).
		Scan(&entries).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return entries, nil
}

func (r *workoutLogRepository) MostLoggedWorkout(ctx context.Context, userID uint) (*WorkoutCount, error) {
	var row WorkoutCount
	err := r.db.WithContext(ctx).
		Model(&models.WorkoutLog{}).
		Select("workout_id, COUNT(id) as count").
		Where("user_id = ?", userID).
		Group("workout_id").
		Order("count DESC").
		Limit(1).
		Scan(&row).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if row.WorkoutID == 0 {
		return nil, nil
	}
	return &row, nil
}
