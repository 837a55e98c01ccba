package handlers

import (
	"errors"

	"github.com/gab-ehcoud/hostStar/internal/dto"
	"github.com/gab-ehcoud/hostStar/internal/scoring"
	"github.com/gab-ehcoud/hostStar/internal/store"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type AdminHandler struct {
	engine *scoring.Engine
}

func NewAdminHandler(engine *scoring.Engine) *AdminHandler {
	return &AdminHandler{engine: engine}
}

func (h *AdminHandler) Entries(c *fiber.Ctx) error {
	entries, err := h.engine.ListAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list entries",
		})
	}

	return c.JSON(dto.EntryListResponse{Entries: entries})
}

func (h *AdminHandler) UpdateStatus(c *fiber.Ctx) error {
	entryID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid entry id",
		})
	}

	var req dto.StatusUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	entry, err := h.engine.SetStatus(entryID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, scoring.ErrInvalidStatus):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, store.ErrEntryNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Entry not found",
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Failed to update status",
			})
		}
	}

	return c.JSON(entry)
}
