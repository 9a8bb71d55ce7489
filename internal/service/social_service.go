package service

import (
	"context"
	"strings"

	"fitfeed/internal/models"
	"fitfeed/internal/observability"
	"fitfeed/internal/repository"
	"fitfeed/internal/validation"
)

type SocialService struct {
	workoutRepo repository.WorkoutRepository
	followRepo  repository.FollowRepository
	commentRepo repository.CommentRepository
	userRepo    repository.UserRepository
}

func NewSocialService(
	workoutRepo repository.WorkoutRepository,
	followRepo repository.FollowRepository,
	commentRepo repository.CommentRepository,
	userRepo repository.UserRepository,
) *SocialService {
	return &SocialService{
		workoutRepo: workoutRepo,
		followRepo:  followRepo,
		commentRepo: commentRepo,
		userRepo:    userRepo,
	}
}

// ToggleLike flips the caller's like on a workout and returns the new
// state with fresh counters.
func (s *SocialService) ToggleLike(ctx context.Context, userID, workoutID uint) (bool, *models.Workout, error) {
	// Existence check; missing workouts surface as not found before any write.
	if _, err := s.workoutRepo.GetByID(ctx, workoutID, userID); err != nil {
		return false, nil, err
	}

	isLiked, err := s.workoutRepo.IsLiked(ctx, userID, workoutID)
	if err != nil {
		return false, nil, err
	}

	if isLiked {
		if err := s.workoutRepo.Unlike(ctx, userID, workoutID); err != nil {
			return false, nil, err
		}
		observability.SocialActions.WithLabelValues("like", "off").Inc()
	} else {
		if err := s.workoutRepo.Like(ctx, userID, workoutID); err != nil {
			return false, nil, err
		}
		observability.SocialActions.WithLabelValues("like", "on").Inc()
	}

	workout, err := s.workoutRepo.GetByID(ctx, workoutID, userID)
	if err != nil {
		return false, nil, err
	}
	return !isLiked, workout, nil
}

// ToggleFollow flips the caller's follow edge to the target user and
// returns whether the caller now follows them.
func (s *SocialService) ToggleFollow(ctx context.Context, userID, targetID uint) (bool, error) {
	if userID == targetID {
		return false, models.NewValidationError("Cannot follow yourself")
	}
	if _, err := s.userRepo.GetByID(ctx, targetID); err != nil {
		return false, err
	}

	following, err := s.followRepo.IsFollowing(ctx, userID, targetID)
	if err != nil {
		return false, err
	}

	if following {
		if err := s.followRepo.Unfollow(ctx, userID, targetID); err != nil {
			return false, err
		}
		observability.SocialActions.WithLabelValues("follow", "off").Inc()
	} else {
		if err := s.followRepo.Follow(ctx, userID, targetID); err != nil {
			return false, err
		}
		observability.SocialActions.WithLabelValues("follow", "on").Inc()
	}
	return !following, nil
}

func (s *SocialService) AddComment(ctx context.Context, userID, workoutID uint, content string) (*models.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, models.NewValidationError("Comment cannot be empty")
	}
	if len(content) > validation.MaxCommentLen {
		return nil, models.NewValidationError("Comment is too long")
	}

	if _, err := s.workoutRepo.GetByID(ctx, workoutID, userID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		UserID:    userID,
		WorkoutID: workoutID,
		Content:   content,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return s.commentRepo.GetByID(ctx, comment.ID)
}

// DeleteComment removes the caller's own comment. A comment owned by
// someone else is reported as not found.
func (s *SocialService) DeleteComment(ctx context.Context, userID, commentID uint) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.UserID != userID {
		return models.NewNotFoundError("Comment")
	}
	return s.commentRepo.Delete(ctx, commentID)
}

// GetComments lists comments on a workout the viewer may see. A
// visibility denial is reported as not found, matching workout reads.
func (s *SocialService) GetComments(ctx context.Context, userID, workoutID uint) ([]*models.Comment, error) {
	workout, err := s.workoutRepo.GetByID(ctx, workoutID, userID)
	if err != nil {
		return nil, err
	}
	isFollower := false
	if workout.UserID != userID && workout.Visibility == models.VisibilityFollowers {
		isFollower, err = s.followRepo.IsFollowing(ctx, userID, workout.UserID)
		if err != nil {
			return nil, err
		}
	}
	if !CanView(workout, userID, isFollower) {
		return nil, models.NewNotFoundError("Workout")
	}
	return s.commentRepo.ListByWorkout(ctx, workoutID)
}

// GetProfile loads a user by username with workout/follower/following
// counters and whether the viewer follows them.
func (s *SocialService) GetProfile(ctx context.Context, username string, currentUserID uint) (*models.User, error) {
	return s.userRepo.GetProfileByUsername(ctx, username, currentUserID)
}

func (s *SocialService) GetFollowers(ctx context.Context, userID uint) ([]models.User, error) {
	return s.followRepo.Followers(ctx, userID)
}

func (s *SocialService) GetFollowing(ctx context.Context, userID uint) ([]models.User, error) {
	return s.followRepo.Following(ctx, userID)
}
