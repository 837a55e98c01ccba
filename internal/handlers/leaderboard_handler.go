package handlers

import (
	"github.com/gab-ehcoud/hostStar/internal/config"
	"github.com/gab-ehcoud/hostStar/internal/dto"
	"github.com/gab-ehcoud/hostStar/internal/models"
	"github.com/gab-ehcoud/hostStar/internal/scoring"
	"github.com/gofiber/fiber/v2"
)

type LeaderboardHandler struct {
	engine *scoring.Engine
	cfg    *config.Config
}

func NewLeaderboardHandler(engine *scoring.Engine, cfg *config.Config) *LeaderboardHandler {
	return &LeaderboardHandler{engine: engine, cfg: cfg}
}

// Get returns the ranked approved entries. Supports ?category= and ?limit=.
func (h *LeaderboardHandler) Get(c *fiber.Ctx) error {
	category := models.Category(c.Query("category"))

	limit := c.QueryInt("limit", h.cfg.LeaderboardLimit)
	if limit <= 0 {
		limit = h.cfg.LeaderboardLimit
	}

	ranked, total, err := h.engine.Leaderboard(category, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to build leaderboard",
		})
	}

	return c.JSON(dto.LeaderboardResponse{Leaderboard: ranked, Total: total})
}
