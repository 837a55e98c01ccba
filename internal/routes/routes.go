package routes

import (
	"time"

	"github.com/gab-ehcoud/hostStar/internal/config"
	"github.com/gab-ehcoud/hostStar/internal/handlers"
	"github.com/gab-ehcoud/hostStar/internal/middleware"
	"github.com/gab-ehcoud/hostStar/internal/store"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	st store.Store,
	authHandler *handlers.AuthHandler,
	entryHandler *handlers.EntryHandler,
	voteHandler *handlers.VoteHandler,
	juryHandler *handlers.JuryHandler,
	adminHandler *handlers.AdminHandler,
	leaderboardHandler *handlers.LeaderboardHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", handlers.Health)

	// Auth-specific rate limit: 10 req/min per IP (stricter)
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/signup", authHandler.Signup)
	auth.Post("/request-otp", authHandler.RequestOTP)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	// Protected routes (JWT required) - apply middleware to individual routes
	// so the public routes stay public
	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)

	// Entries
	api.Post("/entries", middleware.JWTProtected(cfg), entryHandler.Submit)
	api.Get("/entries", entryHandler.List)
	api.Get("/entries/:id", entryHandler.Get)
	api.Get("/users/:userId/entries", middleware.JWTProtected(cfg), entryHandler.UserEntries)

	// Public voting: voters are anonymous, identified by a client-generated id
	api.Post("/votes", voteHandler.Vote)
	api.Get("/votes/:entryId/:voterId", voteHandler.HasVoted)

	// Leaderboard
	api.Get("/leaderboard", leaderboardHandler.Get)

	// Jury panel (protected + jury role)
	jury := api.Group("/jury", middleware.JWTProtected(cfg), middleware.JuryRequired(st))
	jury.Post("/score", juryHandler.Score)
	jury.Get("/entries", juryHandler.Entries)

	// Admin panel (protected + admin required)
	admin := api.Group("/admin", middleware.AdminJWT(cfg), middleware.AdminRequired(st, cfg))
	admin.Get("/entries", adminHandler.Entries)
	admin.Put("/entries/:id/status", adminHandler.UpdateStatus)
}
