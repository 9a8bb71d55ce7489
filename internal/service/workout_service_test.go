package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitfeed/internal/models"
)

func intPtr(v int) *int { return &v }

func float64Ptr(v float64) *float64 { return &v }

func benchExercises() []ExerciseInput {
	return []ExerciseInput{
		{Name: "Bench Press", Sets: intPtr(3), Reps: intPtr(8), Weight: float64Ptr(80)},
	}
}

func assertAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok, "expected *models.AppError, got %T", err)
	assert.Equal(t, code, appErr.Code)
}

func TestCreateWorkoutDefaultsToPrivate(t *testing.T) {
	var created *models.Workout
	workoutRepo := noopWorkoutRepo()
	workoutRepo.createFn = func(_ context.Context, w *models.Workout) error {
		w.ID = 7
		created = w
		return nil
	}
	workoutRepo.getByIDFn = func(_ context.Context, id, _ uint) (*models.Workout, error) {
		return &models.Workout{ID: id, Visibility: created.Visibility}, nil
	}

	svc := NewWorkoutService(workoutRepo, noopFollowRepo())
	workout, err := svc.CreateWorkout(context.Background(), CreateWorkoutInput{
		UserID:    1,
		Name:      "Push Day",
		Exercises: benchExercises(),
	})
	require.NoError(t, err)
	assert.Equal(t, models.VisibilityPrivate, workout.Visibility)
	require.NotNil(t, created)
	assert.Equal(t, 0, created.Exercises[0].Order)
}

func TestCreateWorkoutRejectsEmptyExercises(t *testing.T) {
	svc := NewWorkoutService(noopWorkoutRepo(), noopFollowRepo())
	_, err := svc.CreateWorkout(context.Background(), CreateWorkoutInput{
		UserID: 1,
		Name:   "Push Day",
	})
	assertAppErrorCode(t, err, "VALIDATION_ERROR")
	assert.Contains(t, err.Error(), "At least one exercise")
}

func TestCreateWorkoutRejectsUnknownVisibility(t *testing.T) {
	svc := NewWorkoutService(noopWorkoutRepo(), noopFollowRepo())
	_, err := svc.CreateWorkout(context.Background(), CreateWorkoutInput{
		UserID:     1,
		Name:       "Push Day",
		Visibility: "FRIENDS",
		Exercises:  benchExercises(),
	})
	assertAppErrorCode(t, err, "VALIDATION_ERROR")
}

func TestGetWorkoutVisibility(t *testing.T) {
	tests := []struct {
		name        string
		visibility  models.Visibility
		viewerID    uint
		isFollower  bool
		wantErrCode string
	}{
		{name: "owner sees private", visibility: models.VisibilityPrivate, viewerID: 1},
		{name: "stranger denied private", visibility: models.VisibilityPrivate, viewerID: 2, wantErrCode: "NOT_FOUND"},
		{name: "follower sees followers-only", visibility: models.VisibilityFollowers, viewerID: 2, isFollower: true},
		{name: "stranger denied followers-only", visibility: models.VisibilityFollowers, viewerID: 2, wantErrCode: "NOT_FOUND"},
		{name: "anonymous denied followers-only", visibility: models.VisibilityFollowers, viewerID: 0, wantErrCode: "NOT_FOUND"},
		{name: "anonymous sees public", visibility: models.VisibilityPublic, viewerID: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			workoutRepo := noopWorkoutRepo()
			workoutRepo.getByIDFn = func(_ context.Context, id, _ uint) (*models.Workout, error) {
				return &models.Workout{ID: id, UserID: 1, Visibility: tt.visibility}, nil
			}
			followRepo := noopFollowRepo()
			followRepo.isFollowingFn = func(context.Context, uint, uint) (bool, error) {
				return tt.isFollower, nil
			}

			svc := NewWorkoutService(workoutRepo, followRepo)
			workout, err := svc.GetWorkout(context.Background(), 10, tt.viewerID)
			if tt.wantErrCode != "" {
				assertAppErrorCode(t, err, tt.wantErrCode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, uint(10), workout.ID)
		})
	}
}

func TestGetUserWorkoutsVisibilityFilter(t *testing.T) {
	tests := []struct {
		name       string
		targetID   uint
		viewerID   uint
		isFollower bool
		want       []models.Visibility
	}{
		{name: "owner sees all", targetID: 1, viewerID: 1, want: nil},
		{name: "stranger sees public only", targetID: 1, viewerID: 2, want: []models.Visibility{models.VisibilityPublic}},
		{name: "follower sees public and followers", targetID: 1, viewerID: 2, isFollower: true,
			want: []models.Visibility{models.VisibilityPublic, models.VisibilityFollowers}},
		{name: "anonymous sees public only", targetID: 1, viewerID: 0, want: []models.Visibility{models.VisibilityPublic}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotVisibilities []models.Visibility
			workoutRepo := noopWorkoutRepo()
			workoutRepo.getByUserIDFn = func(_ context.Context, _ uint, vis []models.Visibility, _ uint) ([]*models.Workout, error) {
				gotVisibilities = vis
				return nil, nil
			}
			followRepo := noopFollowRepo()
			followRepo.isFollowingFn = func(context.Context, uint, uint) (bool, error) {
				return tt.isFollower, nil
			}

			svc := NewWorkoutService(workoutRepo, followRepo)
			_, err := svc.GetUserWorkouts(context.Background(), tt.targetID, tt.viewerID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, gotVisibilities)
		})
	}
}

func TestGetFeedSetsNextCursorWhenPageIsFull(t *testing.T) {
	const limit = 10
	workoutRepo := noopWorkoutRepo()
	workoutRepo.feedFn = func(_ context.Context, _ []uint, limit int, _, _ uint) ([]*models.Workout, error) {
		workouts := make([]*models.Workout, limit)
		for i := range workouts {
			workouts[i] = &models.Workout{ID: uint(100 - i), Visibility: models.VisibilityPublic}
		}
		return workouts, nil
	}

	svc := NewWorkoutService(workoutRepo, noopFollowRepo())
	page, err := svc.GetFeed(context.Background(), 1, limit, 0)
	require.NoError(t, err)
	require.Len(t, page.Workouts, limit)
	assert.Equal(t, page.Workouts[limit-1].ID, page.NextCursor)
}

func TestGetFeedClampsOversizedLimit(t *testing.T) {
	workoutRepo := noopWorkoutRepo()
	gotLimit := 0
	workoutRepo.feedFn = func(_ context.Context, _ []uint, limit int, _, _ uint) ([]*models.Workout, error) {
		gotLimit = limit
		return nil, nil
	}

	svc := NewWorkoutService(workoutRepo, noopFollowRepo())
	_, err := svc.GetFeed(context.Background(), 1, 80, 0)
	require.NoError(t, err)
	assert.Equal(t, FeedMaxLimit, gotLimit)
}

func TestGetFeedNoCursorOnShortPage(t *testing.T) {
	workoutRepo := noopWorkoutRepo()
	workoutRepo.feedFn = func(context.Context, []uint, int, uint, uint) ([]*models.Workout, error) {
		return []*models.Workout{{ID: 3}, {ID: 2}}, nil
	}

	svc := NewWorkoutService(workoutRepo, noopFollowRepo())
	page, err := svc.GetFeed(context.Background(), 1, 10, 0)
	require.NoError(t, err)
	assert.Zero(t, page.NextCursor)
}

func TestGetFeedTruncatesExercisePreview(t *testing.T) {
	workoutRepo := noopWorkoutRepo()
	workoutRepo.feedFn = func(context.Context, []uint, int, uint, uint) ([]*models.Workout, error) {
		exercises := make([]models.Exercise, 8)
		for i := range exercises {
			exercises[i] = models.Exercise{Name: fmt.Sprintf("exercise %d", i), Order: i}
		}
		return []*models.Workout{{ID: 1, Exercises: exercises}}, nil
	}

	svc := NewWorkoutService(workoutRepo, noopFollowRepo())
	page, err := svc.GetFeed(context.Background(), 1, 10, 0)
	require.NoError(t, err)
	require.Len(t, page.Workouts, 1)
	assert.Len(t, page.Workouts[0].Exercises, FeedExercisePreview)
}

func TestGetFeedResolvesLikedFlagsInOneBatch(t *testing.T) {
	// The follower-less first page at the default limit is the cacheable
	// path, where liked flags are re-resolved per viewer.
	workoutRepo := noopWorkoutRepo()
	workoutRepo.feedFn = func(_ context.Context, _ []uint, limit int, _, _ uint) ([]*models.Workout, error) {
		return []*models.Workout{{ID: 5}, {ID: 4}, {ID: 3}}, nil
	}
	batchCalls := 0
	workoutRepo.getLikedWorkoutIDsFn = func(_ context.Context, userID uint, ids []uint) ([]uint, error) {
		batchCalls++
		assert.Equal(t, uint(9), userID)
		assert.Equal(t, []uint{5, 4, 3}, ids)
		return []uint{4}, nil
	}

	svc := NewWorkoutService(workoutRepo, noopFollowRepo())
	page, err := svc.GetFeed(context.Background(), 9, 20, 0)
	require.NoError(t, err)
	require.Len(t, page.Workouts, 3)
	assert.Equal(t, 1, batchCalls)
	assert.False(t, page.Workouts[0].Liked)
	assert.True(t, page.Workouts[1].Liked)
	assert.False(t, page.Workouts[2].Liked)
}

func TestUpdateWorkoutRejectsNonOwner(t *testing.T) {
	workoutRepo := noopWorkoutRepo()
	workoutRepo.getByIDFn = func(_ context.Context, id, _ uint) (*models.Workout, error) {
		return &models.Workout{ID: id, UserID: 1, Visibility: models.VisibilityPublic}, nil
	}

	svc := NewWorkoutService(workoutRepo, noopFollowRepo())
	_, err := svc.UpdateWorkout(context.Background(), UpdateWorkoutInput{
		UserID:    2,
		WorkoutID: 10,
		Name:      "Hijacked",
		Exercises: benchExercises(),
	})
	assertAppErrorCode(t, err, "UNAUTHORIZED")
}

func TestUpdateWorkoutKeepsVisibilityWhenOmitted(t *testing.T) {
	var updated *models.Workout
	workoutRepo := noopWorkoutRepo()
	workoutRepo.getByIDFn = func(_ context.Context, id, _ uint) (*models.Workout, error) {
		return &models.Workout{ID: id, UserID: 1, Visibility: models.VisibilityFollowers}, nil
	}
	workoutRepo.updateFn = func(_ context.Context, w *models.Workout) error {
		updated = w
		return nil
	}

	svc := NewWorkoutService(workoutRepo, noopFollowRepo())
	_, err := svc.UpdateWorkout(context.Background(), UpdateWorkoutInput{
		UserID:    1,
		WorkoutID: 10,
		Name:      "Renamed",
		Exercises: benchExercises(),
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, models.VisibilityFollowers, updated.Visibility)
	assert.Equal(t, "Renamed", updated.Name)
}

func TestDeleteWorkoutRejectsNonOwner(t *testing.T) {
	workoutRepo := noopWorkoutRepo()
	workoutRepo.getByIDFn = func(_ context.Context, id, _ uint) (*models.Workout, error) {
		return &models.Workout{ID: id, UserID: 1}, nil
	}

	svc := NewWorkoutService(workoutRepo, noopFollowRepo())
	err := svc.DeleteWorkout(context.Background(), 2, 10)
	assertAppErrorCode(t, err, "UNAUTHORIZED")
}

func TestCloneWorkoutDefaults(t *testing.T) {
	var created *models.Workout
	workoutRepo := noopWorkoutRepo()
	workoutRepo.getByIDFn = func(_ context.Context, id, _ uint) (*models.Workout, error) {
		if created != nil && id == created.ID {
			return created, nil
		}
		return &models.Workout{
			ID:          id,
			UserID:      1,
			Name:        "Leg Day",
			Description: "Heavy squats",
			Visibility:  models.VisibilityPublic,
			Exercises: []models.Exercise{
				{ID: 50, Name: "Squat", Sets: intPtr(5), Reps: intPtr(5), Order: 0},
				{ID: 51, Name: "Lunge", Sets: intPtr(3), Reps: intPtr(12), Order: 1},
			},
		}, nil
	}
	workoutRepo.createFn = func(_ context.Context, w *models.Workout) error {
		w.ID = 99
		created = w
		return nil
	}

	svc := NewWorkoutService(workoutRepo, noopFollowRepo())
	clone, err := svc.CloneWorkout(context.Background(), CloneWorkoutInput{UserID: 2, WorkoutID: 10})
	require.NoError(t, err)
	assert.Equal(t, "Leg Day (Copy)", clone.Name)
	assert.Equal(t, models.VisibilityPrivate, clone.Visibility)
	assert.Equal(t, uint(2), clone.UserID)
	assert.Equal(t, "Heavy squats", clone.Description)
	require.Len(t, clone.Exercises, 2)
	// Copied exercises are new rows, not references to the originals.
	assert.Zero(t, clone.Exercises[0].ID)
	assert.Equal(t, "Squat", clone.Exercises[0].Name)
	assert.Equal(t, 1, clone.Exercises[1].Order)
}

func TestCloneWorkoutDeniedOnPrivateSource(t *testing.T) {
	workoutRepo := noopWorkoutRepo()
	workoutRepo.getByIDFn = func(_ context.Context, id, _ uint) (*models.Workout, error) {
		return &models.Workout{ID: id, UserID: 1, Visibility: models.VisibilityPrivate}, nil
	}

	svc := NewWorkoutService(workoutRepo, noopFollowRepo())
	_, err := svc.CloneWorkout(context.Background(), CloneWorkoutInput{UserID: 2, WorkoutID: 10})
	assertAppErrorCode(t, err, "NOT_FOUND")
}
