package handlers

import (
	"errors"

	"github.com/gab-ehcoud/hostStar/internal/dto"
	"github.com/gab-ehcoud/hostStar/internal/middleware"
	"github.com/gab-ehcoud/hostStar/internal/scoring"
	"github.com/gab-ehcoud/hostStar/internal/store"
	"github.com/gofiber/fiber/v2"
)

type JuryHandler struct {
	engine *scoring.Engine
}

func NewJuryHandler(engine *scoring.Engine) *JuryHandler {
	return &JuryHandler{engine: engine}
}

func (h *JuryHandler) Score(c *fiber.Ctx) error {
	juryID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.JuryScoreRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if err := h.engine.RecordJuryScore(req.EntryID, juryID, req.Score, req.Feedback); err != nil {
		switch {
		case errors.Is(err, scoring.ErrInvalidEntry), errors.Is(err, scoring.ErrInvalidScore):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, store.ErrEntryNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Entry not found",
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Failed to record score",
			})
		}
	}

	return c.JSON(fiber.Map{"success": true})
}

// Entries returns the approved entries awaiting jury scores.
func (h *JuryHandler) Entries(c *fiber.Ctx) error {
	entries, err := h.engine.ListApproved("")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list entries",
		})
	}

	return c.JSON(dto.EntryListResponse{Entries: entries})
}
