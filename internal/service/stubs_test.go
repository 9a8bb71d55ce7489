package service

import (
	"context"
	"time"

	"fitfeed/internal/models"
	"fitfeed/internal/repository"
)

type workoutRepoStub struct {
	createFn             func(context.Context, *models.Workout) error
	getByIDFn            func(context.Context, uint, uint) (*models.Workout, error)
	getByUserIDFn        func(context.Context, uint, []models.Visibility, uint) ([]*models.Workout, error)
	listForProgressFn    func(context.Context, uint) ([]*models.Workout, error)
	feedFn               func(context.Context, []uint, int, uint, uint) ([]*models.Workout, error)
	updateFn             func(context.Context, *models.Workout) error
	deleteFn             func(context.Context, uint) error
	countByUserFn        func(context.Context, uint) (int64, error)
	isLikedFn            func(context.Context, uint, uint) (bool, error)
	getLikedWorkoutIDsFn func(context.Context, uint, []uint) ([]uint, error)
	likeFn               func(context.Context, uint, uint) error
	unlikeFn             func(context.Context, uint, uint) error
}

func (s *workoutRepoStub) Create(ctx context.Context, w *models.Workout) error {
	return s.createFn(ctx, w)
}
func (s *workoutRepoStub) GetByID(ctx context.Context, id, currentUserID uint) (*models.Workout, error) {
	return s.getByIDFn(ctx, id, currentUserID)
}
func (s *workoutRepoStub) GetByUserID(ctx context.Context, userID uint, vis []models.Visibility, currentUserID uint) ([]*models.Workout, error) {
	return s.getByUserIDFn(ctx, userID, vis, currentUserID)
}
func (s *workoutRepoStub) ListForProgress(ctx context.Context, userID uint) ([]*models.Workout, error) {
	return s.listForProgressFn(ctx, userID)
}
func (s *workoutRepoStub) Feed(ctx context.Context, followingIDs []uint, limit int, cursor, currentUserID uint) ([]*models.Workout, error) {
	return s.feedFn(ctx, followingIDs, limit, cursor, currentUserID)
}
func (s *workoutRepoStub) Update(ctx context.Context, w *models.Workout) error {
	return s.updateFn(ctx, w)
}
func (s *workoutRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *workoutRepoStub) CountByUser(ctx context.Context, userID uint) (int64, error) {
	return s.countByUserFn(ctx, userID)
}
func (s *workoutRepoStub) IsLiked(ctx context.Context, userID, workoutID uint) (bool, error) {
	return s.isLikedFn(ctx, userID, workoutID)
}
func (s *workoutRepoStub) GetLikedWorkoutIDs(ctx context.Context, userID uint, ids []uint) ([]uint, error) {
	return s.getLikedWorkoutIDsFn(ctx, userID, ids)
}
func (s *workoutRepoStub) Like(ctx context.Context, userID, workoutID uint) error {
	return s.likeFn(ctx, userID, workoutID)
}
func (s *workoutRepoStub) Unlike(ctx context.Context, userID, workoutID uint) error {
	return s.unlikeFn(ctx, userID, workoutID)
}

func noopWorkoutRepo() *workoutRepoStub {
	return &workoutRepoStub{
		createFn: func(context.Context, *models.Workout) error { return nil },
		getByIDFn: func(context.Context, uint, uint) (*models.Workout, error) {
			return &models.Workout{}, nil
		},
		getByUserIDFn: func(context.Context, uint, []models.Visibility, uint) ([]*models.Workout, error) {
			return nil, nil
		},
		listForProgressFn: func(context.Context, uint) ([]*models.Workout, error) { return nil, nil },
		feedFn: func(context.Context, []uint, int, uint, uint) ([]*models.Workout, error) {
			return nil, nil
		},
		updateFn:             func(context.Context, *models.Workout) error { return nil },
		deleteFn:             func(context.Context, uint) error { return nil },
		countByUserFn:        func(context.Context, uint) (int64, error) { return 0, nil },
		isLikedFn:            func(context.Context, uint, uint) (bool, error) { return false, nil },
		getLikedWorkoutIDsFn: func(context.Context, uint, []uint) ([]uint, error) { return nil, nil },
		likeFn:               func(context.Context, uint, uint) error { return nil },
		unlikeFn:             func(context.Context, uint, uint) error { return nil },
	}
}

type followRepoStub struct {
	isFollowingFn  func(context.Context, uint, uint) (bool, error)
	followFn       func(context.Context, uint, uint) error
	unfollowFn     func(context.Context, uint, uint) error
	followingIDsFn func(context.Context, uint) ([]uint, error)
	followersFn    func(context.Context, uint) ([]models.User, error)
	followingFn    func(context.Context, uint) ([]models.User, error)
}

func (s *followRepoStub) IsFollowing(ctx context.Context, followerID, followeeID uint) (bool, error) {
	return s.isFollowingFn(ctx, followerID, followeeID)
}
func (s *followRepoStub) Follow(ctx context.Context, followerID, followeeID uint) error {
	return s.followFn(ctx, followerID, followeeID)
}
func (s *followRepoStub) Unfollow(ctx context.Context, followerID, followeeID uint) error {
	return s.unfollowFn(ctx, followerID, followeeID)
}
func (s *followRepoStub) FollowingIDs(ctx context.Context, followerID uint) ([]uint, error) {
	return s.followingIDsFn(ctx, followerID)
}
func (s *followRepoStub) Followers(ctx context.Context, followeeID uint) ([]models.User, error) {
	return s.followersFn(ctx, followeeID)
}
func (s *followRepoStub) Following(ctx context.Context, followerID uint) ([]models.User, error) {
	return s.followingFn(ctx, followerID)
}

func noopFollowRepo() *followRepoStub {
	return &followRepoStub{
		isFollowingFn:  func(context.Context, uint, uint) (bool, error) { return false, nil },
		followFn:       func(context.Context, uint, uint) error { return nil },
		unfollowFn:     func(context.Context, uint, uint) error { return nil },
		followingIDsFn: func(context.Context, uint) ([]uint, error) { return nil, nil },
		followersFn:    func(context.Context, uint) ([]models.User, error) { return nil, nil },
		followingFn:    func(context.Context, uint) ([]models.User, error) { return nil, nil },
	}
}

type logRepoStub struct {
	createFn                   func(context.Context, *models.WorkoutLog) error
	getByIDFn                  func(context.Context, uint) (*models.WorkoutLog, error)
	listByUserFn               func(context.Context, uint, int, uint) ([]*models.WorkoutLog, error)
	listByWorkoutFn            func(context.Context, uint, uint, int, uint) ([]*models.WorkoutLog, error)
	deleteFn                   func(context.Context, uint) error
	countByUserFn              func(context.Context, uint) (int64, error)
	countByUserBetweenFn       func(context.Context, uint, time.Time, time.Time) (int64, error)
	countByUserSinceFn         func(context.Context, uint, time.Time) (int64, error)
	sumDurationFn              func(context.Context, uint) (int64, error)
	datesFn                    func(context.Context, uint) ([]time.Time, error)
	recentByWorkoutFn          func(context.Context, uint, uint, int) ([]*models.WorkoutLog, error)
	recentEntriesForExerciseFn func(context.Context, uint, uint, int) ([]repository.EntryStat, error)
	mostLoggedWorkoutFn        func(context.Context, uint) (*repository.WorkoutCount, error)
}

func (s *logRepoStub) Create(ctx context.Context, log *models.WorkoutLog) error {
	return s.createFn(ctx, log)
}
func (s *logRepoStub) GetByID(ctx context.Context, id uint) (*models.WorkoutLog, error) {
	return s.getByIDFn(ctx, id)
}
func (s *logRepoStub) ListByUser(ctx context.Context, userID uint, limit int, cursor uint) ([]*models.WorkoutLog, error) {
	return s.listByUserFn(ctx, userID, limit, cursor)
}
func (s *logRepoStub) ListByWorkout(ctx context.Context, workoutID, userID uint, limit int, cursor uint) ([]*models.WorkoutLog, error) {
	return s.listByWorkoutFn(ctx, workoutID, userID, limit, cursor)
}
func (s *logRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *logRepoStub) CountByUser(ctx context.Context, userID uint) (int64, error) {
	return s.countByUserFn(ctx, userID)
}
func (s *logRepoStub) CountByUserBetween(ctx context.Context, userID uint, from, to time.Time) (int64, error) {
	return s.countByUserBetweenFn(ctx, userID, from, to)
}
func (s *logRepoStub) CountByUserSince(ctx context.Context, userID uint, since time.Time) (int64, error) {
	return s.countByUserSinceFn(ctx, userID, since)
}
func (s *logRepoStub) SumDuration(ctx context.Context, userID uint) (int64, error) {
	return s.sumDurationFn(ctx, userID)
}
func (s *logRepoStub) Dates(ctx context.Context, userID uint) ([]time.Time, error) {
	return s.datesFn(ctx, userID)
}
func (s *logRepoStub) RecentByWorkout(ctx context.Context, userID, workoutID uint, limit int) ([]*models.WorkoutLog, error) {
	return s.recentByWorkoutFn(ctx, userID, workoutID, limit)
}
func (s *logRepoStub) RecentEntriesForExercise(ctx context.Context, userID, exerciseID uint, limit int) ([]repository.EntryStat, error) {
	return s.recentEntriesForExerciseFn(ctx, userID, exerciseID, limit)
}
func (s *logRepoStub) MostLoggedWorkout(ctx context.Context, userID uint) (*repository.WorkoutCount, error) {
	return s.mostLoggedWorkoutFn(ctx, userID)
}

func noopLogRepo() *logRepoStub {
	return &logRepoStub{
		createFn: func(context.Context, *models.WorkoutLog) error { return nil },
		getByIDFn: func(context.Context, uint) (*models.WorkoutLog, error) {
			return &models.WorkoutLog{}, nil
		},
		listByUserFn: func(context.Context, uint, int, uint) ([]*models.WorkoutLog, error) {
			return nil, nil
		},
		listByWorkoutFn: func(context.Context, uint, uint, int, uint) ([]*models.WorkoutLog, error) {
			return nil, nil
		},
		deleteFn:      func(context.Context, uint) error { return nil },
		countByUserFn: func(context.Context, uint) (int64, error) { return 0, nil },
		countByUserBetweenFn: func(context.Context, uint, time.Time, time.Time) (int64, error) {
			return 0, nil
		},
		countByUserSinceFn: func(context.Context, uint, time.Time) (int64, error) { return 0, nil },
		sumDurationFn:      func(context.Context, uint) (int64, error) { return 0, nil },
		datesFn:            func(context.Context, uint) ([]time.Time, error) { return nil, nil },
		recentByWorkoutFn: func(context.Context, uint, uint, int) ([]*models.WorkoutLog, error) {
			return nil, nil
		},
		recentEntriesForExerciseFn: func(context.Context, uint, uint, int) ([]repository.EntryStat, error) {
			return nil, nil
		},
		mostLoggedWorkoutFn: func(context.Context, uint) (*repository.WorkoutCount, error) {
			return nil, nil
		},
	}
}

type commentRepoStub struct {
	createFn        func(context.Context, *models.Comment) error
	getByIDFn       func(context.Context, uint) (*models.Comment, error)
	listByWorkoutFn func(context.Context, uint) ([]*models.Comment, error)
	deleteFn        func(context.Context, uint) error
}

func (s *commentRepoStub) Create(ctx context.Context, c *models.Comment) error {
	return s.createFn(ctx, c)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) ListByWorkout(ctx context.Context, workoutID uint) ([]*models.Comment, error) {
	return s.listByWorkoutFn(ctx, workoutID)
}
func (s *commentRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn: func(context.Context, *models.Comment) error { return nil },
		getByIDFn: func(context.Context, uint) (*models.Comment, error) {
			return &models.Comment{}, nil
		},
		listByWorkoutFn: func(context.Context, uint) ([]*models.Comment, error) { return nil, nil },
		deleteFn:        func(context.Context, uint) error { return nil },
	}
}

type userRepoStub struct {
	getByIDFn              func(context.Context, uint) (*models.User, error)
	getByEmailFn           func(context.Context, string) (*models.User, error)
	getByUsernameFn        func(context.Context, string) (*models.User, error)
	getProfileByUsernameFn func(context.Context, string, uint) (*models.User, error)
	createFn               func(context.Context, *models.User) error
	updateFn               func(context.Context, *models.User) error
	deleteFn               func(context.Context, uint) error
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) GetProfileByUsername(ctx context.Context, username string, currentUserID uint) (*models.User, error) {
	return s.getProfileByUsernameFn(ctx, username, currentUserID)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:       func(context.Context, uint) (*models.User, error) { return &models.User{}, nil },
		getByEmailFn:    func(context.Context, string) (*models.User, error) { return &models.User{}, nil },
		getByUsernameFn: func(context.Context, string) (*models.User, error) { return &models.User{}, nil },
		getProfileByUsernameFn: func(context.Context, string, uint) (*models.User, error) {
			return &models.User{}, nil
		},
		createFn: func(context.Context, *models.User) error { return nil },
		updateFn: func(context.Context, *models.User) error { return nil },
		deleteFn: func(context.Context, uint) error { return nil },
	}
}
