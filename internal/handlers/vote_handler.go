package handlers

import (
	"errors"

	"github.com/gab-ehcoud/hostStar/internal/dto"
	"github.com/gab-ehcoud/hostStar/internal/scoring"
	"github.com/gab-ehcoud/hostStar/internal/store"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type VoteHandler struct {
	engine *scoring.Engine
}

func NewVoteHandler(engine *scoring.Engine) *VoteHandler {
	return &VoteHandler{engine: engine}
}

func (h *VoteHandler) Vote(c *fiber.Ctx) error {
	var req dto.VoteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	totalVotes, err := h.engine.RecordVote(req.EntryID, req.VoterID)
	if err != nil {
		switch {
		case errors.Is(err, scoring.ErrInvalidEntry), errors.Is(err, scoring.ErrInvalidVoter):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, store.ErrDuplicateVote):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: "Already voted for this entry",
			})
		case errors.Is(err, store.ErrEntryNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Entry not found",
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Failed to record vote",
			})
		}
	}

	return c.JSON(dto.VoteResponse{Success: true, TotalVotes: totalVotes})
}

func (h *VoteHandler) HasVoted(c *fiber.Ctx) error {
	entryID, err := uuid.Parse(c.Params("entryId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid entry id",
		})
	}

	voterID := c.Params("voterId")
	if voterID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Voter id required",
		})
	}

	voted, err := h.engine.HasVoted(entryID, voterID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to check vote",
		})
	}

	return c.JSON(dto.HasVotedResponse{HasVoted: voted})
}
