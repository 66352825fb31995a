package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/megawatt-maniacs/backend/internal/services"
)

type LeaderboardHandler struct {
	leaderboard *services.LeaderboardService
	topN        int
}

func NewLeaderboardHandler(leaderboard *services.LeaderboardService, topN int) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboard: leaderboard, topN: topN}
}

// Standings serves the deduplicated-by-player top-N ranking.
func (h *LeaderboardHandler) Standings(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", h.topN)
	if limit <= 0 || limit > 100 {
		limit = h.topN
	}

	standings, err := h.leaderboard.Standings(limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": "Failed to load leaderboard",
		})
	}

	resp := fiber.Map{"error": false, "standings": standings}
	if len(standings) == 0 {
		resp["message"] = "No scores yet. Be the first to play!"
	}
	return c.JSON(resp)
}
