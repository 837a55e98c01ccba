package middleware

import (
	"github.com/gab-ehcoud/hostStar/internal/config"
	"github.com/gab-ehcoud/hostStar/internal/dto"
	"github.com/gab-ehcoud/hostStar/internal/models"
	"github.com/gab-ehcoud/hostStar/internal/store"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AdminRequired checks the X-Admin-Token header against config first, then
// falls back to the authenticated user's Role field.
func AdminRequired(st store.Store, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cfg.AdminToken != "" && c.Get("X-Admin-Token") == cfg.AdminToken {
			return c.Next()
		}

		user, err := userFromToken(c, st)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}

		if user.Role != models.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Admin access required",
			})
		}

		return c.Next()
	}
}

// JuryRequired allows jury members and admins through.
func JuryRequired(st store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := userFromToken(c, st)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}

		if user.Role != models.RoleJury && user.Role != models.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Jury access required",
			})
		}

		return c.Next()
	}
}

// UserID extracts the authenticated user's ID from the verified JWT. It is
// only valid behind JWTProtected.
func UserID(c *fiber.Ctx) (uuid.UUID, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return uuid.Nil, fiber.ErrUnauthorized
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, fiber.ErrUnauthorized
	}

	sub, _ := claims["sub"].(string)
	id, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, fiber.ErrUnauthorized
	}

	return id, nil
}

func userFromToken(c *fiber.Ctx, st store.Store) (*models.User, error) {
	id, err := UserID(c)
	if err != nil {
		return nil, err
	}
	return st.UserByID(id)
}
