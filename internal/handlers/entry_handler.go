package handlers

import (
	"errors"

	"github.com/gab-ehcoud/hostStar/internal/dto"
	"github.com/gab-ehcoud/hostStar/internal/middleware"
	"github.com/gab-ehcoud/hostStar/internal/models"
	"github.com/gab-ehcoud/hostStar/internal/scoring"
	"github.com/gab-ehcoud/hostStar/internal/services"
	"github.com/gab-ehcoud/hostStar/internal/store"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type EntryHandler struct {
	entryService *services.EntryService
	engine       *scoring.Engine
}

func NewEntryHandler(entryService *services.EntryService, engine *scoring.Engine) *EntryHandler {
	return &EntryHandler{entryService: entryService, engine: engine}
}

func (h *EntryHandler) Submit(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.SubmitEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	entry, err := h.entryService.Submit(userID, &req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(entry)
}

// List returns approved entries, optionally filtered by ?category=.
func (h *EntryHandler) List(c *fiber.Ctx) error {
	category := models.Category(c.Query("category"))

	entries, err := h.engine.ListApproved(category)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list entries",
		})
	}

	return c.JSON(dto.EntryListResponse{Entries: entries})
}

func (h *EntryHandler) Get(c *fiber.Ctx) error {
	entryID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid entry id",
		})
	}

	detail, err := h.entryService.Get(entryID)
	if err != nil {
		if errors.Is(err, store.ErrEntryNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Entry not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load entry",
		})
	}

	return c.JSON(detail)
}

func (h *EntryHandler) UserEntries(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid user id",
		})
	}

	// Pending and rejected entries are visible only to their owner.
	callerID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}
	if callerID != userID {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: "You can only list your own entries",
		})
	}

	entries, err := h.entryService.UserEntries(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list entries",
		})
	}

	return c.JSON(fiber.Map{"entries": entries})
}
