// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"fitfeed/internal/models"
	"fitfeed/internal/service"

	"github.com/gofiber/fiber/v2"
)

type workoutRequest struct {
	Name        string                  `json:"name"`
	Description string                  `json:"description"`
	Visibility  models.Visibility       `json:"visibility"`
	Exercises   []service.ExerciseInput `json:"exercises"`
}

// CreateWorkout handles POST /api/workouts
func (s *Server) CreateWorkout(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req workoutRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	workout, err := s.workoutService.CreateWorkout(c.Context(), service.CreateWorkoutInput{
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		Visibility:  req.Visibility,
		Exercises:   req.Exercises,
	})
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(workout)
}

// GetWorkout handles GET /api/workouts/:id. The viewer identity scopes
// what is visible; denied workouts surface as not found.
func (s *Server) GetWorkout(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	currentUserID := c.Locals("userID").(uint)

	workout, err := s.workoutService.GetWorkout(c.Context(), id, currentUserID)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(workout)
}

// GetUserWorkouts handles GET /api/users/:id/workouts
func (s *Server) GetUserWorkouts(c *fiber.Ctx) error {
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	currentUserID := c.Locals("userID").(uint)

	workouts, err := s.workoutService.GetUserWorkouts(c.Context(), targetID, currentUserID)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(fiber.Map{"workouts": workouts})
}

// GetMyWorkouts handles GET /api/workouts
func (s *Server) GetMyWorkouts(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	workouts, err := s.workoutService.GetUserWorkouts(c.Context(), userID, userID)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(fiber.Map{"workouts": workouts})
}

// GetFeed handles GET /api/feed
func (s *Server) GetFeed(c *fiber.Ctx) error {
	currentUserID := c.Locals("userID").(uint)
	page := parsePage(c, service.FeedDefaultLimit)

	feed, err := s.workoutService.GetFeed(c.Context(), currentUserID, page.Limit, page.Cursor)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(feed)
}

// UpdateWorkout handles PUT /api/workouts/:id
func (s *Server) UpdateWorkout(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req workoutRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	workout, err := s.workoutService.UpdateWorkout(c.Context(), service.UpdateWorkoutInput{
		UserID:      userID,
		WorkoutID:   id,
		Name:        req.Name,
		Description: req.Description,
		Visibility:  req.Visibility,
		Exercises:   req.Exercises,
	})
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(workout)
}

// DeleteWorkout handles DELETE /api/workouts/:id
func (s *Server) DeleteWorkout(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.workoutService.DeleteWorkout(c.Context(), userID, id); err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(fiber.Map{"message": "Workout deleted"})
}

// CloneWorkout handles POST /api/workouts/:id/clone
func (s *Server) CloneWorkout(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Name       string            `json:"name"`
		Visibility models.Visibility `json:"visibility"`
	}
	if err := c.BodyParser(&req); err != nil && len(c.Body()) > 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	clone, err := s.workoutService.CloneWorkout(c.Context(), service.CloneWorkoutInput{
		UserID:     userID,
		WorkoutID:  id,
		Name:       req.Name,
		Visibility: req.Visibility,
	})
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(clone)
}
