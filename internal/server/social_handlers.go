// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"fitfeed/internal/models"

	"github.com/gofiber/fiber/v2"
)

// ToggleLike handles POST /api/workouts/:id/like
func (s *Server) ToggleLike(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	workoutID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	liked, workout, err := s.socialService.ToggleLike(c.Context(), userID, workoutID)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(fiber.Map{
		"liked":   liked,
		"workout": workout,
	})
}

// ToggleFollow handles POST /api/users/:id/follow
func (s *Server) ToggleFollow(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	following, err := s.socialService.ToggleFollow(c.Context(), userID, targetID)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(fiber.Map{"following": following})
}

// AddComment handles POST /api/workouts/:id/comments
func (s *Server) AddComment(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	workoutID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, err := s.socialService.AddComment(c.Context(), userID, workoutID, req.Content)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(comment)
}

// GetComments handles GET /api/workouts/:id/comments
func (s *Server) GetComments(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	workoutID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	comments, err := s.socialService.GetComments(c.Context(), userID, workoutID)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(fiber.Map{"comments": comments})
}

// DeleteComment handles DELETE /api/comments/:id
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	commentID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.socialService.DeleteComment(c.Context(), userID, commentID); err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(fiber.Map{"message": "Comment deleted"})
}

// GetProfile handles GET /api/profiles/:username. The viewer identity
// resolves the is_following flag on the returned profile.
func (s *Server) GetProfile(c *fiber.Ctx) error {
	username := c.Params("username")
	if username == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid username"))
	}
	currentUserID := c.Locals("userID").(uint)

	profile, err := s.socialService.GetProfile(c.Context(), username, currentUserID)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(profile)
}

// GetFollowers handles GET /api/users/:id/followers
func (s *Server) GetFollowers(c *fiber.Ctx) error {
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	followers, err := s.socialService.GetFollowers(c.Context(), targetID)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(fiber.Map{"followers": followers})
}

// GetFollowing handles GET /api/users/:id/following
func (s *Server) GetFollowing(c *fiber.Ctx) error {
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	following, err := s.socialService.GetFollowing(c.Context(), targetID)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(fiber.Map{"following": following})
}
