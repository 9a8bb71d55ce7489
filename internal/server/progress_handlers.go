// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"fitfeed/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetProgressOverview handles GET /api/progress/overview
func (s *Server) GetProgressOverview(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	overview, err := s.progressService.GetOverview(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(overview)
}

// GetWorkoutProgress handles GET /api/progress/workouts
func (s *Server) GetWorkoutProgress(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	progress, err := s.progressService.GetWorkoutProgress(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(fiber.Map{"workouts": progress})
}

// GetExerciseProgress handles GET /api/workouts/:id/exercises/progress
func (s *Server) GetExerciseProgress(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	workoutID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	progress, err := s.progressService.GetExerciseProgress(c.Context(), userID, workoutID)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(fiber.Map{"exercises": progress})
}

// GetWeeklyActivity handles GET /api/progress/weekly
func (s *Server) GetWeeklyActivity(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	activity, err := s.progressService.GetWeeklyActivity(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(fiber.Map{"days": activity})
}

// GetMonthlyProgress handles GET /api/progress/monthly
func (s *Server) GetMonthlyProgress(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	months, err := s.progressService.GetMonthlyProgress(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(fiber.Map{"months": months})
}
