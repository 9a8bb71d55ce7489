package service

import (
	"context"
	"time"

	"fitfeed/internal/cache"
	"fitfeed/internal/clock"
	"fitfeed/internal/models"
	"fitfeed/internal/observability"
	"fitfeed/internal/repository"
	"fitfeed/internal/validation"
)

type LogService struct {
	logRepo     repository.WorkoutLogRepository
	workoutRepo repository.WorkoutRepository
	clk         clock.Clock
}

type LogEntryInput struct {
	ExerciseID uint     `json:"exercise_id"`
	Sets       *int     `json:"sets"`
	Reps       *int     `json:"reps"`
	Weight     *float64 `json:"weight"`
	Duration   *int     `json:"duration"`
	Completed  bool     `json:"completed"`
	Notes      string   `json:"notes"`
}

type CreateLogInput struct {
	UserID    uint
	WorkoutID uint
	Date      time.Time
	Duration  *int
	Notes     string
	Entries   []LogEntryInput
}

// LogPage is one keyset-paginated page of workout logs.
type LogPage struct {
	Logs       []*models.WorkoutLog `json:"logs"`
	NextCursor uint                 `json:"next_cursor,omitempty"`
}

// LogStats summarizes a user's logging history.
type LogStats struct {
	TotalLogs       int64            `json:"total_logs"`
	TotalDuration   int64            `json:"total_duration"`
	RecentLogs      int64            `json:"recent_logs"`
	FavoriteWorkout *FavoriteWorkout `json:"favorite_workout"`
}

// FavoriteWorkout is the user's most logged workout.
type FavoriteWorkout struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func NewLogService(logRepo repository.WorkoutLogRepository, workoutRepo repository.WorkoutRepository, clk clock.Clock) *LogService {
	return &LogService{
		logRepo:     logRepo,
		workoutRepo: workoutRepo,
		clk:         clk,
	}
}

// CreateLog records a session of a workout. Every entry must reference
// an exercise of that workout; logs are immutable once written.
func (s *LogService) CreateLog(ctx context.Context, in CreateLogInput) (*models.WorkoutLog, error) {
	if len(in.Entries) == 0 {
		return nil, models.NewValidationError("At least one exercise entry is required")
	}
	if in.Date.IsZero() {
		return nil, models.NewValidationError("Date is required")
	}
	if len(in.Notes) > validation.MaxLogNotesLen {
		return nil, models.NewValidationError("Notes too long (max 1000 characters)")
	}
	if err := validation.ValidateNonNegativeInt("duration", in.Duration); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	for _, e := range in.Entries {
		if err := validation.ValidateCounts(e.Sets, e.Reps); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		if err := validation.ValidateNonNegative("weight", e.Weight); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		if err := validation.ValidateNonNegativeInt("duration", e.Duration); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		if len(e.Notes) > validation.MaxEntryNotesLen {
			return nil, models.NewValidationError("Entry notes too long (max 500 characters)")
		}
	}

	workout, err := s.workoutRepo.GetByID(ctx, in.WorkoutID, in.UserID)
	if err != nil {
		return nil, err
	}

	// Every entry must point at an exercise of this workout.
	exerciseIDs := make(map[uint]struct{}, len(workout.Exercises))
	for _, e := range workout.Exercises {
		exerciseIDs[e.ID] = struct{}{}
	}
	for _, entry := range in.Entries {
		if _, ok := exerciseIDs[entry.ExerciseID]; !ok {
			return nil, models.NewValidationError("Invalid exercise IDs in log entries")
		}
	}

	entries := make([]models.LogEntry, len(in.Entries))
	for i, e := range in.Entries {
		entries[i] = models.LogEntry{
			ExerciseID: e.ExerciseID,
			Sets:       e.Sets,
			Reps:       e.Reps,
			Weight:     e.Weight,
			Duration:   e.Duration,
			Completed:  e.Completed,
			Notes:      e.Notes,
		}
	}

	log := &models.WorkoutLog{
		UserID:    in.UserID,
		WorkoutID: in.WorkoutID,
		Date:      in.Date,
		Duration:  in.Duration,
		Notes:     in.Notes,
		Entries:   entries,
	}
	if err := s.logRepo.Create(ctx, log); err != nil {
		return nil, err
	}
	observability.LogsRecorded.Inc()
	cache.InvalidateOverview(ctx, in.UserID)

	return s.logRepo.GetByID(ctx, log.ID)
}

func (s *LogService) GetLog(ctx context.Context, userID, logID uint) (*models.WorkoutLog, error) {
	log, err := s.logRepo.GetByID(ctx, logID)
	if err != nil {
		return nil, err
	}
	if log.UserID != userID {
		return nil, models.NewUnauthorizedError("Unauthorized to view this log")
	}
	return log, nil
}

// ListUserLogs pages through a user's log history, own logs by default.
func (s *LogService) ListUserLogs(ctx context.Context, targetUserID uint, limit int, cursor uint) (*LogPage, error) {
	if limit <= 0 || limit > 50 {
		limit = 20
	}
	logs, err := s.logRepo.ListByUser(ctx, targetUserID, limit, cursor)
	if err != nil {
		return nil, err
	}
	return pageOf(logs, limit), nil
}

// ListWorkoutLogs pages through the caller's logs of one workout. Only
// the workout owner may read them.
func (s *LogService) ListWorkoutLogs(ctx context.Context, userID, workoutID uint, limit int, cursor uint) (*LogPage, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	workout, err := s.workoutRepo.GetByID(ctx, workoutID, userID)
	if err != nil {
		return nil, err
	}
	if workout.UserID != userID {
		return nil, models.NewUnauthorizedError("Unauthorized to view these logs")
	}

	logs, err := s.logRepo.ListByWorkout(ctx, workoutID, userID, limit, cursor)
	if err != nil {
		return nil, err
	}
	return pageOf(logs, limit), nil
}

func pageOf(logs []*models.WorkoutLog, limit int) *LogPage {
	page := &LogPage{Logs: logs}
	if len(logs) == limit {
		page.NextCursor = logs[len(logs)-1].ID
	}
	return page
}

func (s *LogService) DeleteLog(ctx context.Context, userID, logID uint) error {
	log, err := s.logRepo.GetByID(ctx, logID)
	if err != nil {
		return err
	}
	if log.UserID != userID {
		return models.NewUnauthorizedError("Unauthorized to delete this log")
	}
	if err := s.logRepo.Delete(ctx, logID); err != nil {
		return err
	}
	cache.InvalidateOverview(ctx, userID)
	return nil
}

// GetLogStats summarizes logging volume, total time, activity over the
// last 30 days, and the most logged workout.
func (s *LogService) GetLogStats(ctx context.Context, targetUserID uint) (*LogStats, error) {
	totalLogs, err := s.logRepo.CountByUser(ctx, targetUserID)
	if err != nil {
		return nil, err
	}
	totalDuration, err := s.logRepo.SumDuration(ctx, targetUserID)
	if err != nil {
		return nil, err
	}
	recentLogs, err := s.logRepo.CountByUserSince(ctx, targetUserID, s.clk.Now().AddDate(0, 0, -30))
	if err != nil {
		return nil, err
	}

	stats := &LogStats{
		TotalLogs:     totalLogs,
		TotalDuration: totalDuration,
		RecentLogs:    recentLogs,
	}

	top, err := s.logRepo.MostLoggedWorkout(ctx, targetUserID)
	if err != nil {
		return nil, err
	}
	if top != nil {
		workout, err := s.workoutRepo.GetByID(ctx, top.WorkoutID, 0)
		if err == nil {
			stats.FavoriteWorkout = &FavoriteWorkout{ID: workout.ID, Name: workout.Name}
		}
	}
	return stats, nil
}
