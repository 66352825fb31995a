package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/megawatt-maniacs/backend/internal/config"
	"github.com/megawatt-maniacs/backend/internal/handlers"
	"github.com/megawatt-maniacs/backend/internal/middleware"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	healthHandler *handlers.HealthHandler,
	playerHandler *handlers.PlayerHandler,
	leaderboardHandler *handlers.LeaderboardHandler,
	sessionHandler *handlers.SessionHandler,
	adminHandler *handlers.AdminHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)
	api.Get("/leaderboard", leaderboardHandler.Standings)

	// Player auth gets a stricter limit: 10 req/min per IP
	authLimiter := limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	})

	players := api.Group("/players")
	players.Post("/signup", authLimiter, playerHandler.Signup)
	players.Post("/login", authLimiter, playerHandler.Login)
	players.Get("/:id/rank", playerHandler.Rank)

	game := api.Group("/game")
	game.Post("/sessions", sessionHandler.Start)
	game.Get("/sessions/:id", sessionHandler.Get)
	game.Post("/sessions/:id/answer", sessionHandler.Answer)
	game.Post("/sessions/:id/next", sessionHandler.Next)

	// Operator login shares the strict limiter
	api.Post("/admin/login", authLimiter, adminHandler.Login)

	admin := api.Group("/admin", middleware.JWTProtected(cfg), middleware.AdminRequired())
	admin.Get("/games", adminHandler.ListGames)
	admin.Post("/games", adminHandler.CreateGame)
	admin.Delete("/games/:id", adminHandler.DeleteGame)
	admin.Put("/games/:id/activate", adminHandler.ActivateGame)

	admin.Get("/games/:id/rounds", adminHandler.ListRounds)
	admin.Post("/games/:id/rounds", adminHandler.CreateRound)
	admin.Delete("/rounds/:id", adminHandler.DeleteRound)

	admin.Get("/games/:id/questions", adminHandler.ListQuestions)
	admin.Post("/games/:id/questions", adminHandler.CreateQuestion)
	admin.Delete("/questions/:id", adminHandler.DeleteQuestion)

	admin.Get("/question-bank", adminHandler.ListBank)
	admin.Post("/question-bank", adminHandler.CreateBankItem)
	admin.Delete("/question-bank/:id", adminHandler.DeleteBankItem)
	admin.Post("/question-bank/import", adminHandler.ImportBank)
}
