package server

import (
	"context"
	"time"

	"fitfeed/internal/models"
	"fitfeed/internal/repository"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock of the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetProfileByUsername(ctx context.Context, username string, currentUserID uint) (*models.User, error) {
	args := m.Called(ctx, username, currentUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockWorkoutRepository is a mock of the WorkoutRepository interface
type MockWorkoutRepository struct {
	mock.Mock
}

func (m *MockWorkoutRepository) Create(ctx context.Context, workout *models.Workout) error {
	args := m.Called(ctx, workout)
	return args.Error(0)
}

func (m *MockWorkoutRepository) GetByID(ctx context.Context, id, currentUserID uint) (*models.Workout, error) {
	args := m.Called(ctx, id, currentUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Workout), args.Error(1)
}

func (m *MockWorkoutRepository) GetByUserID(ctx context.Context, userID uint, visibilities []models.Visibility, currentUserID uint) ([]*models.Workout, error) {
	args := m.Called(ctx, userID, visibilities, currentUserID)
	return args.Get(0).([]*models.Workout), args.Error(1)
}

func (m *MockWorkoutRepository) ListForProgress(ctx context.Context, userID uint) ([]*models.Workout, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]*models.Workout), args.Error(1)
}

func (m *MockWorkoutRepository) Feed(ctx context.Context, followingIDs []uint, limit int, cursor, currentUserID uint) ([]*models.Workout, error) {
	args := m.Called(ctx, followingIDs, limit, cursor, currentUserID)
	return args.Get(0).([]*models.Workout), args.Error(1)
}

func (m *MockWorkoutRepository) Update(ctx context.Context, workout *models.Workout) error {
	args := m.Called(ctx, workout)
	return args.Error(0)
}

func (m *MockWorkoutRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockWorkoutRepository) CountByUser(ctx context.Context, userID uint) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWorkoutRepository) IsLiked(ctx context.Context, userID, workoutID uint) (bool, error) {
	args := m.Called(ctx, userID, workoutID)
	return args.Bool(0), args.Error(1)
}

func (m *MockWorkoutRepository) GetLikedWorkoutIDs(ctx context.Context, userID uint, workoutIDs []uint) ([]uint, error) {
	args := m.Called(ctx, userID, workoutIDs)
	return args.Get(0).([]uint), args.Error(1)
}

func (m *MockWorkoutRepository) Like(ctx context.Context, userID, workoutID uint) error {
	args := m.Called(ctx, userID, workoutID)
	return args.Error(0)
}

func (m *MockWorkoutRepository) Unlike(ctx context.Context, userID, workoutID uint) error {
	args := m.Called(ctx, userID, workoutID)
	return args.Error(0)
}

// MockFollowRepository is a mock of the FollowRepository interface
type MockFollowRepository struct {
	mock.Mock
}

func (m *MockFollowRepository) IsFollowing(ctx context.Context, followerID, followeeID uint) (bool, error) {
	args := m.Called(ctx, followerID, followeeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFollowRepository) Follow(ctx context.Context, followerID, followeeID uint) error {
	args := m.Called(ctx, followerID, followeeID)
	return args.Error(0)
}

func (m *MockFollowRepository) Unfollow(ctx context.Context, followerID, followeeID uint) error {
	args := m.Called(ctx, followerID, followeeID)
	return args.Error(0)
}

func (m *MockFollowRepository) FollowingIDs(ctx context.Context, followerID uint) ([]uint, error) {
	args := m.Called(ctx, followerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint), args.Error(1)
}

func (m *MockFollowRepository) Followers(ctx context.Context, followeeID uint) ([]models.User, error) {
	args := m.Called(ctx, followeeID)
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockFollowRepository) Following(ctx context.Context, followerID uint) ([]models.User, error) {
	args := m.Called(ctx, followerID)
	return args.Get(0).([]models.User), args.Error(1)
}

// MockWorkoutLogRepository is a mock of the WorkoutLogRepository interface
type MockWorkoutLogRepository struct {
	mock.Mock
}

func (m *MockWorkoutLogRepository) Create(ctx context.Context, log *models.WorkoutLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockWorkoutLogRepository) GetByID(ctx context.Context, id uint) (*models.WorkoutLog, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WorkoutLog), args.Error(1)
}

func (m *MockWorkoutLogRepository) ListByUser(ctx context.Context, userID uint, limit int, cursor uint) ([]*models.WorkoutLog, error) {
	args := m.Called(ctx, userID, limit, cursor)
	return args.Get(0).([]*models.WorkoutLog), args.Error(1)
}

func (m *MockWorkoutLogRepository) ListByWorkout(ctx context.Context, workoutID, userID uint, limit int, cursor uint) ([]*models.WorkoutLog, error) {
	args := m.Called(ctx, workoutID, userID, limit, cursor)
	return args.Get(0).([]*models.WorkoutLog), args.Error(1)
}

func (m *MockWorkoutLogRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockWorkoutLogRepository) CountByUser(ctx context.Context, userID uint) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWorkoutLogRepository) CountByUserBetween(ctx context.Context, userID uint, from, to time.Time) (int64, error) {
	args := m.Called(ctx, userID, from, to)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWorkoutLogRepository) CountByUserSince(ctx context.Context, userID uint, since time.Time) (int64, error) {
	args := m.Called(ctx, userID, since)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWorkoutLogRepository) SumDuration(ctx context.Context, userID uint) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWorkoutLogRepository) Dates(ctx context.Context, userID uint) ([]time.Time, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]time.Time), args.Error(1)
}

func (m *MockWorkoutLogRepository) RecentByWorkout(ctx context.Context, userID, workoutID uint, limit int) ([]*models.WorkoutLog, error) {
	args := m.Called(ctx, userID, workoutID, limit)
	return args.Get(0).([]*models.WorkoutLog), args.Error(1)
}

func (m *MockWorkoutLogRepository) RecentEntriesForExercise(ctx context.Context, userID, exerciseID uint, limit int) ([]repository.EntryStat, error) {
	args := m.Called(ctx, userID, exerciseID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.EntryStat), args.Error(1)
}

func (m *MockWorkoutLogRepository) MostLoggedWorkout(ctx context.Context, userID uint) (*repository.WorkoutCount, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.WorkoutCount), args.Error(1)
}

// MockCommentRepository is a mock of the CommentRepository interface
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentRepository) ListByWorkout(ctx context.Context, workoutID uint) ([]*models.Comment, error) {
	args := m.Called(ctx, workoutID)
	return args.Get(0).([]*models.Comment), args.Error(1)
}

func (m *MockCommentRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
