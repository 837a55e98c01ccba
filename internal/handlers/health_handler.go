package handlers

import (
	"time"

	"github.com/gab-ehcoud/hostStar/internal/database"
	"github.com/gab-ehcoud/hostStar/internal/dto"
	"github.com/gofiber/fiber/v2"
)

func Health(c *fiber.Ctx) error {
	if err := database.Ping(); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.HealthResponse{
			Status:    "degraded",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
	}

	return c.JSON(dto.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
