// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"time"

	"fitfeed/internal/models"
	"fitfeed/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateLog handles POST /api/logs
func (s *Server) CreateLog(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		WorkoutID uint                    `json:"workout_id"`
		Date      time.Time               `json:"date"`
		Duration  *int                    `json:"duration"`
		Notes     string                  `json:"notes"`
		Entries   []service.LogEntryInput `json:"entries"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	log, err := s.logService.CreateLog(c.Context(), service.CreateLogInput{
		UserID:    userID,
		WorkoutID: req.WorkoutID,
		Date:      req.Date,
		Duration:  req.Duration,
		Notes:     req.Notes,
		Entries:   req.Entries,
	})
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(log)
}

// GetMyLogs handles GET /api/logs
func (s *Server) GetMyLogs(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	page := parsePage(c, 20)

	logs, err := s.logService.ListUserLogs(c.Context(), userID, page.Limit, page.Cursor)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(logs)
}

// GetLog handles GET /api/logs/:id
func (s *Server) GetLog(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	log, err := s.logService.GetLog(c.Context(), userID, id)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(log)
}

// GetWorkoutLogs handles GET /api/workouts/:id/logs
func (s *Server) GetWorkoutLogs(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	workoutID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	page := parsePage(c, 10)

	logs, err := s.logService.ListWorkoutLogs(c.Context(), userID, workoutID, page.Limit, page.Cursor)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(logs)
}

// DeleteLog handles DELETE /api/logs/:id
func (s *Server) DeleteLog(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.logService.DeleteLog(c.Context(), userID, id); err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(fiber.Map{"message": "Log deleted"})
}

// GetLogStats handles GET /api/logs/stats
func (s *Server) GetLogStats(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	stats, err := s.logService.GetLogStats(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(stats)
}
