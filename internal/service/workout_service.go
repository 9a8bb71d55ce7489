package service

import (
	"context"

	"fitfeed/internal/cache"
	"fitfeed/internal/models"
	"fitfeed/internal/observability"
	"fitfeed/internal/repository"
	"fitfeed/internal/validation"
)

const (
	// FeedExercisePreview is how many exercises a feed card shows.
	FeedExercisePreview = 5
	// ListExercisePreview is how many exercises a profile list row shows.
	ListExercisePreview = 10

	// FeedDefaultLimit and FeedMaxLimit bound the feed page size. The
	// handler applies the same bounds when parsing query parameters.
	FeedDefaultLimit = 20
	FeedMaxLimit     = 50
)

type WorkoutService struct {
	workoutRepo repository.WorkoutRepository
	followRepo  repository.FollowRepository
}

type ExerciseInput struct {
	Name     string   `json:"name"`
	Sets     *int     `json:"sets"`
	Reps     *int     `json:"reps"`
	Weight   *float64 `json:"weight"`
	Duration *int     `json:"duration"`
	Notes    string   `json:"notes"`
}

type CreateWorkoutInput struct {
	UserID      uint
	Name        string
	Description string
	Visibility  models.Visibility
	Exercises   []ExerciseInput
}

type UpdateWorkoutInput struct {
	UserID      uint
	WorkoutID   uint
	Name        string
	Description string
	Visibility  models.Visibility
	Exercises   []ExerciseInput
}

type CloneWorkoutInput struct {
	UserID     uint
	WorkoutID  uint
	Name       string
	Visibility models.Visibility
}

// FeedPage is one keyset-paginated page of the workout feed.
type FeedPage struct {
	Workouts   []*models.Workout `json:"workouts"`
	NextCursor uint              `json:"next_cursor,omitempty"`
}

func NewWorkoutService(workoutRepo repository.WorkoutRepository, followRepo repository.FollowRepository) *WorkoutService {
	return &WorkoutService{
		workoutRepo: workoutRepo,
		followRepo:  followRepo,
	}
}

func validateExercises(exercises []ExerciseInput) error {
	if len(exercises) == 0 {
		return models.NewValidationError("At least one exercise is required")
	}
	for _, e := range exercises {
		if err := validation.ValidateExerciseName(e.Name); err != nil {
			return models.NewValidationError(err.Error())
		}
		if err := validation.ValidateCounts(e.Sets, e.Reps); err != nil {
			return models.NewValidationError(err.Error())
		}
		if err := validation.ValidateNonNegative("weight", e.Weight); err != nil {
			return models.NewValidationError(err.Error())
		}
		if err := validation.ValidateNonNegativeInt("duration", e.Duration); err != nil {
			return models.NewValidationError(err.Error())
		}
		if len(e.Notes) > validation.MaxExerciseNotes {
			return models.NewValidationError("Exercise notes too long (max 500 characters)")
		}
	}
	return nil
}

// buildExercises maps inputs to models, deriving a contiguous order
// from the input position.
func buildExercises(inputs []ExerciseInput) []models.Exercise {
	exercises := make([]models.Exercise, len(inputs))
	for i, e := range inputs {
		exercises[i] = models.Exercise{
			Name:     e.Name,
			Sets:     e.Sets,
			Reps:     e.Reps,
			Weight:   e.Weight,
			Duration: e.Duration,
			Notes:    e.Notes,
			Order:    i,
		}
	}
	return exercises
}

func (s *WorkoutService) CreateWorkout(ctx context.Context, in CreateWorkoutInput) (*models.Workout, error) {
	visibility := in.Visibility
	if visibility == "" {
		visibility = models.VisibilityPrivate
	}
	if !visibility.Valid() {
		return nil, models.NewValidationError("Invalid visibility")
	}
	if err := validation.ValidateWorkoutName(in.Name); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateDescription(in.Description); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validateExercises(in.Exercises); err != nil {
		return nil, err
	}

	workout := &models.Workout{
		UserID:      in.UserID,
		Name:        in.Name,
		Description: in.Description,
		Visibility:  visibility,
		Exercises:   buildExercises(in.Exercises),
	}
	if err := s.workoutRepo.Create(ctx, workout); err != nil {
		return nil, err
	}
	observability.WorkoutsCreated.WithLabelValues(string(visibility)).Inc()

	return s.workoutRepo.GetByID(ctx, workout.ID, in.UserID)
}

// GetWorkout fetches a workout the viewer may see. A visibility denial
// is reported as not found so private workouts do not leak.
func (s *WorkoutService) GetWorkout(ctx context.Context, id uint, currentUserID uint) (*models.Workout, error) {
	workout, err := s.workoutRepo.GetByID(ctx, id, currentUserID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeView(ctx, workout, currentUserID); err != nil {
		return nil, err
	}
	return workout, nil
}

func (s *WorkoutService) authorizeView(ctx context.Context, workout *models.Workout, currentUserID uint) error {
	isFollower := false
	if currentUserID != 0 && workout.UserID != currentUserID && workout.Visibility == models.VisibilityFollowers {
		var err error
		isFollower, err = s.followRepo.IsFollowing(ctx, currentUserID, workout.UserID)
		if err != nil {
			return err
		}
	}
	if !CanView(workout, currentUserID, isFollower) {
		return models.NewNotFoundError("Workout")
	}
	return nil
}

// GetUserWorkouts lists a user's workouts filtered by what the viewer
// may see: owners see everything, followers additionally see
// FOLLOWERS workouts, everyone else only PUBLIC ones.
func (s *WorkoutService) GetUserWorkouts(ctx context.Context, targetUserID, currentUserID uint) ([]*models.Workout, error) {
	var visibilities []models.Visibility
	if targetUserID != currentUserID {
		visibilities = []models.Visibility{models.VisibilityPublic}
		if currentUserID != 0 {
			isFollower, err := s.followRepo.IsFollowing(ctx, currentUserID, targetUserID)
			if err != nil {
				return nil, err
			}
			if isFollower {
				visibilities = append(visibilities, models.VisibilityFollowers)
			}
		}
	}

	workouts, err := s.workoutRepo.GetByUserID(ctx, targetUserID, visibilities, currentUserID)
	if err != nil {
		return nil, err
	}
	truncateExercises(workouts, ListExercisePreview)
	return workouts, nil
}

// GetFeed assembles the workout feed: every PUBLIC workout plus
// FOLLOWERS workouts from users the viewer follows. The first page is
// served cache-aside; liked flags are re-resolved per viewer with one
// batched query.
func (s *WorkoutService) GetFeed(ctx context.Context, currentUserID uint, limit int, cursor uint) (*FeedPage, error) {
	if limit <= 0 {
		limit = FeedDefaultLimit
	} else if limit > FeedMaxLimit {
		limit = FeedMaxLimit
	}

	followingIDs, err := s.followRepo.FollowingIDs(ctx, currentUserID)
	if err != nil {
		return nil, err
	}

	var workouts []*models.Workout
	if cursor == 0 && len(followingIDs) == 0 && limit == FeedDefaultLimit {
		// Cacheable default page: the PUBLIC-only feed is identical for
		// every viewer who follows nobody.
		err = cache.Aside(ctx, cache.FeedFirstPageKey, &workouts, cache.FeedTTL, func() error {
			var fetchErr error
			workouts, fetchErr = s.workoutRepo.Feed(ctx, nil, limit, 0, 0)
			return fetchErr
		})
		if err != nil {
			return nil, err
		}
		if err := s.applyLikedFlags(ctx, workouts, currentUserID); err != nil {
			return nil, err
		}
	} else {
		workouts, err = s.workoutRepo.Feed(ctx, followingIDs, limit, cursor, currentUserID)
		if err != nil {
			return nil, err
		}
	}

	truncateExercises(workouts, FeedExercisePreview)

	viewer := "following"
	if len(followingIDs) == 0 {
		viewer = "not_following"
	}
	observability.FeedRequests.WithLabelValues(viewer).Inc()

	page := &FeedPage{Workouts: workouts}
	if len(workouts) == limit {
		page.NextCursor = workouts[len(workouts)-1].ID
	}
	return page, nil
}

// applyLikedFlags resolves the viewer's liked status for a whole page
// with a single IN query.
func (s *WorkoutService) applyLikedFlags(ctx context.Context, workouts []*models.Workout, currentUserID uint) error {
	if currentUserID == 0 || len(workouts) == 0 {
		return nil
	}
	ids := make([]uint, len(workouts))
	for i, w := range workouts {
		ids[i] = w.ID
	}
	likedIDs, err := s.workoutRepo.GetLikedWorkoutIDs(ctx, currentUserID, ids)
	if err != nil {
		return err
	}
	liked := make(map[uint]bool, len(likedIDs))
	for _, id := range likedIDs {
		liked[id] = true
	}
	for _, w := range workouts {
		w.Liked = liked[w.ID]
	}
	return nil
}

func truncateExercises(workouts []*models.Workout, max int) {
	for _, w := range workouts {
		if len(w.Exercises) > max {
			w.Exercises = w.Exercises[:max]
		}
	}
}

func (s *WorkoutService) UpdateWorkout(ctx context.Context, in UpdateWorkoutInput) (*models.Workout, error) {
	workout, err := s.workoutRepo.GetByID(ctx, in.WorkoutID, in.UserID)
	if err != nil {
		return nil, err
	}
	if workout.UserID != in.UserID {
		return nil, models.NewUnauthorizedError("You can only update your own workouts")
	}

	visibility := in.Visibility
	if visibility == "" {
		visibility = workout.Visibility
	}
	if !visibility.Valid() {
		return nil, models.NewValidationError("Invalid visibility")
	}
	if err := validation.ValidateWorkoutName(in.Name); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateDescription(in.Description); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validateExercises(in.Exercises); err != nil {
		return nil, err
	}

	workout.Name = in.Name
	workout.Description = in.Description
	workout.Visibility = visibility
	workout.Exercises = buildExercises(in.Exercises)

	if err := s.workoutRepo.Update(ctx, workout); err != nil {
		return nil, err
	}
	return s.workoutRepo.GetByID(ctx, in.WorkoutID, in.UserID)
}

func (s *WorkoutService) DeleteWorkout(ctx context.Context, userID, workoutID uint) error {
	workout, err := s.workoutRepo.GetByID(ctx, workoutID, userID)
	if err != nil {
		return err
	}
	if workout.UserID != userID {
		return models.NewUnauthorizedError("You can only delete your own workouts")
	}
	return s.workoutRepo.Delete(ctx, workoutID)
}

// CloneWorkout copies a viewable workout into the caller's library.
// The clone defaults to PRIVATE and "<name> (Copy)" unless overridden.
func (s *WorkoutService) CloneWorkout(ctx context.Context, in CloneWorkoutInput) (*models.Workout, error) {
	original, err := s.workoutRepo.GetByID(ctx, in.WorkoutID, in.UserID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeView(ctx, original, in.UserID); err != nil {
		return nil, err
	}

	name := in.Name
	if name == "" {
		name = original.Name + " (Copy)"
	}
	if err := validation.ValidateWorkoutName(name); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	visibility := in.Visibility
	if visibility == "" {
		visibility = models.VisibilityPrivate
	}
	if !visibility.Valid() {
		return nil, models.NewValidationError("Invalid visibility")
	}

	exercises := make([]models.Exercise, len(original.Exercises))
	for i, e := range original.Exercises {
		exercises[i] = models.Exercise{
			Name:     e.Name,
			Sets:     e.Sets,
			Reps:     e.Reps,
			Weight:   e.Weight,
			Duration: e.Duration,
			Notes:    e.Notes,
			Order:    e.Order,
		}
	}

	clone := &models.Workout{
		UserID:      in.UserID,
		Name:        name,
		Description: original.Description,
		Visibility:  visibility,
		Exercises:   exercises,
	}
	if err := s.workoutRepo.Create(ctx, clone); err != nil {
		return nil, err
	}
	observability.WorkoutsCreated.WithLabelValues(string(visibility)).Inc()

	return s.workoutRepo.GetByID(ctx, clone.ID, in.UserID)
}
