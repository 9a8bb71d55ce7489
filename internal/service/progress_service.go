package service

import (
	"context"
	"math"
	"time"

	"fitfeed/internal/cache"
	"fitfeed/internal/clock"
	"fitfeed/internal/models"
	"fitfeed/internal/repository"
)

type ProgressService struct {
	workoutRepo repository.WorkoutRepository
	logRepo     repository.WorkoutLogRepository
	clk         clock.Clock
}

// ProgressOverview is the top-level training summary.
type ProgressOverview struct {
	TotalWorkouts int64 `json:"total_workouts"`
	TotalLogs     int64 `json:"total_logs"`
	ThisWeekLogs  int64 `json:"this_week_logs"`
	LastWeekLogs  int64 `json:"last_week_logs"`
	ThisMonthLogs int64 `json:"this_month_logs"`
	TotalDuration int64 `json:"total_duration"`
	CurrentStreak int   `json:"current_streak"`
	BestStreak    int   `json:"best_streak"`
}

// WorkoutProgress summarizes how consistently one workout is completed.
type WorkoutProgress struct {
	ID             uint       `json:"id"`
	Name           string     `json:"name"`
	TotalLogs      int        `json:"total_logs"`
	ExerciseCount  int        `json:"exercise_count"`
	CompletionRate int        `json:"completion_rate"`
	LastCompleted  *time.Time `json:"last_completed"`
}

// WeightPoint is a completed weight sample at a session date.
type WeightPoint struct {
	Weight float64   `json:"weight"`
	Date   time.Time `json:"date"`
}

// ExerciseProgress summarizes recent performance of one exercise.
type ExerciseProgress struct {
	ID             uint          `json:"id"`
	Name           string        `json:"name"`
	TotalLogs      int           `json:"total_logs"`
	CompletionRate int           `json:"completion_rate"`
	MaxWeight      *float64      `json:"max_weight"`
	RecentWeights  []WeightPoint `json:"recent_weights"`
	LastCompleted  *time.Time    `json:"last_completed"`
}

// DayActivity is the log count of a single calendar day.
type DayActivity struct {
	Date    time.Time `json:"date"`
	Count   int64     `json:"count"`
	IsToday bool      `json:"is_today"`
}

// MonthProgress is the log count of a single calendar month.
type MonthProgress struct {
	Month          int     `json:"month"`
	Year           int     `json:"year"`
	TotalWorkouts  int64   `json:"total_workouts"`
	AveragePerWeek float64 `json:"average_per_week"`
}

const (
	completionLogWindow   = 5
	exerciseEntryWindow   = 10
	exerciseWeightSamples = 5
)

func NewProgressService(workoutRepo repository.WorkoutRepository, logRepo repository.WorkoutLogRepository, clk clock.Clock) *ProgressService {
	return &ProgressService{
		workoutRepo: workoutRepo,
		logRepo:     logRepo,
		clk:         clk,
	}
}

// GetOverview aggregates totals, week and month windows, and streaks.
// Weeks start on Monday; all windows are inclusive of their bounds.
func (s *ProgressService) GetOverview(ctx context.Context, userID uint) (*ProgressOverview, error) {
	var overview ProgressOverview
	err := cache.Aside(ctx, cache.OverviewKey(userID), &overview, cache.OverviewTTL, func() error {
		fetched, err := s.computeOverview(ctx, userID)
		if err != nil {
			return err
		}
		overview = *fetched
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &overview, nil
}

func (s *ProgressService) computeOverview(ctx context.Context, userID uint) (*ProgressOverview, error) {
	now := s.clk.Now()

	totalWorkouts, err := s.workoutRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	totalLogs, err := s.logRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	thisWeekLogs, err := s.logRepo.CountByUserBetween(ctx, userID, clock.StartOfWeek(now), clock.EndOfWeek(now))
	if err != nil {
		return nil, err
	}
	lastWeek := now.AddDate(0, 0, -7)
	lastWeekLogs, err := s.logRepo.CountByUserBetween(ctx, userID, clock.StartOfWeek(lastWeek), clock.EndOfWeek(lastWeek))
	if err != nil {
		return nil, err
	}
	thisMonthLogs, err := s.logRepo.CountByUserBetween(ctx, userID, clock.StartOfMonth(now), clock.EndOfMonth(now))
	if err != nil {
		return nil, err
	}

	totalDuration, err := s.logRepo.SumDuration(ctx, userID)
	if err != nil {
		return nil, err
	}

	dates, err := s.logRepo.Dates(ctx, userID)
	if err != nil {
		return nil, err
	}
	streaks := CalculateStreaks(dates, now)

	return &ProgressOverview{
		TotalWorkouts: totalWorkouts,
		TotalLogs:     totalLogs,
		ThisWeekLogs:  thisWeekLogs,
		LastWeekLogs:  lastWeekLogs,
		ThisMonthLogs: thisMonthLogs,
		TotalDuration: totalDuration,
		CurrentStreak: streaks.Current,
		BestStreak:    streaks.Best,
	}, nil
}

// GetWorkoutProgress reports each workout's completion rate over its
// last five logs. The denominator is the workout's exercise count times
// the logs considered, so skipped exercises count against the rate.
func (s *ProgressService) GetWorkoutProgress(ctx context.Context, userID uint) ([]WorkoutProgress, error) {
	workouts, err := s.workoutRepo.ListForProgress(ctx, userID)
	if err != nil {
		return nil, err
	}

	progress := make([]WorkoutProgress, 0, len(workouts))
	for _, w := range workouts {
		recent, err := s.logRepo.RecentByWorkout(ctx, userID, w.ID, completionLogWindow)
		if err != nil {
			return nil, err
		}

		totalExercises := len(w.Exercises) * len(recent)
		completedExercises := 0
		for _, log := range recent {
			for _, e := range log.Entries {
				if e.Completed {
					completedExercises++
				}
			}
		}

		row := WorkoutProgress{
			ID:             w.ID,
			Name:           w.Name,
			TotalLogs:      w.LogsCount,
			ExerciseCount:  len(w.Exercises),
			CompletionRate: percentage(completedExercises, totalExercises),
		}
		if len(recent) > 0 {
			d := recent[0].Date
			row.LastCompleted = &d
		}
		progress = append(progress, row)
	}
	return progress, nil
}

// GetExerciseProgress reports per-exercise completion and weight
// trends over the last ten sessions of a workout the caller owns.
func (s *ProgressService) GetExerciseProgress(ctx context.Context, userID, workoutID uint) ([]ExerciseProgress, error) {
	workout, err := s.workoutRepo.GetByID(ctx, workoutID, 0)
	if err != nil {
		return nil, err
	}
	if workout.UserID != userID {
		return nil, models.NewNotFoundError("Workout")
	}

	progress := make([]ExerciseProgress, 0, len(workout.Exercises))
	for _, exercise := range workout.Exercises {
		entries, err := s.logRepo.RecentEntriesForExercise(ctx, userID, exercise.ID, exerciseEntryWindow)
		if err != nil {
			return nil, err
		}

		completed := 0
		for _, e := range entries {
			if e.Completed {
				completed++
			}
		}

		// Newest-first completed weights, capped, then reversed so the
		// series reads chronologically.
		var weights []WeightPoint
		for _, e := range entries {
			if e.Weight != nil && e.Completed {
				weights = append(weights, WeightPoint{Weight: *e.Weight, Date: e.Date})
				if len(weights) == exerciseWeightSamples {
					break
				}
			}
		}
		for i, j := 0, len(weights)-1; i < j; i, j = i+1, j-1 {
			weights[i], weights[j] = weights[j], weights[i]
		}

		row := ExerciseProgress{
			ID:             exercise.ID,
			Name:           exercise.Name,
			TotalLogs:      len(entries),
			CompletionRate: percentage(completed, len(entries)),
			RecentWeights:  weights,
		}
		for _, p := range weights {
			if row.MaxWeight == nil || p.Weight > *row.MaxWeight {
				w := p.Weight
				row.MaxWeight = &w
			}
		}
		for _, e := range entries {
			if e.Completed {
				d := e.Date
				row.LastCompleted = &d
				break
			}
		}
		progress = append(progress, row)
	}
	return progress, nil
}

// GetWeeklyActivity returns daily log counts for a seven-day window
// centered on today: three days back through three days ahead.
func (s *ProgressService) GetWeeklyActivity(ctx context.Context, userID uint) ([]DayActivity, error) {
	today := clock.Day(s.clk.Now())

	activity := make([]DayActivity, 0, 7)
	for i := -3; i <= 3; i++ {
		day := today.AddDate(0, 0, i)
		nextDay := day.AddDate(0, 0, 1)

		count, err := s.logRepo.CountByUserBetween(ctx, userID, day, nextDay.Add(-time.Nanosecond))
		if err != nil {
			return nil, err
		}
		activity = append(activity, DayActivity{
			Date:    day,
			Count:   count,
			IsToday: i == 0,
		})
	}
	return activity, nil
}

// monthOffsets orders the monthly report: next month first, then the
// current month and the four before it.
var monthOffsets = []int{1, 0, -1, -2, -3, -4}

// GetMonthlyProgress returns per-month log counts for a six-month
// window that deliberately includes the upcoming month.
func (s *ProgressService) GetMonthlyProgress(ctx context.Context, userID uint) ([]MonthProgress, error) {
	now := s.clk.Now()

	months := make([]MonthProgress, 0, len(monthOffsets))
	for _, offset := range monthOffsets {
		date := clock.AddMonths(now, offset)
		monthStart := clock.StartOfMonth(date)
		monthEnd := clock.EndOfMonth(date)

		total, err := s.logRepo.CountByUserBetween(ctx, userID, monthStart, monthEnd)
		if err != nil {
			return nil, err
		}

		weeks := int(math.Ceil(float64(clock.DaysInMonth(date)) / 7))
		averagePerWeek := 0.0
		if total > 0 {
			averagePerWeek = float64(total) / float64(weeks)
		}

		months = append(months, MonthProgress{
			Month:          int(date.Month()),
			Year:           date.Year(),
			TotalWorkouts:  total,
			AveragePerWeek: averagePerWeek,
		})
	}
	return months, nil
}

// percentage returns completed/total as a whole percent, 0 when total
// is zero.
func percentage(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}
