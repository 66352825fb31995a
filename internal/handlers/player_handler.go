package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/megawatt-maniacs/backend/internal/dto"
	"github.com/megawatt-maniacs/backend/internal/services"
)

type PlayerHandler struct {
	players     *services.PlayerService
	leaderboard *services.LeaderboardService
}

func NewPlayerHandler(players *services.PlayerService, leaderboard *services.LeaderboardService) *PlayerHandler {
	return &PlayerHandler{players: players, leaderboard: leaderboard}
}

func (h *PlayerHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "Invalid request body",
		})
	}
	if req.Name == "" || req.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "Please enter your name and email",
		})
	}

	player, err := h.players.Signup(req.Name, req.Email)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": true, "message": "An account with this email already exists. Please login instead.",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": "Failed to sign up. Please try again.",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"error": false,
		"player": dto.PlayerResponse{
			ID: player.ID, Name: player.Name, TotalScore: player.TotalScore,
		},
	})
}

func (h *PlayerHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil || req.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "Please enter your email",
		})
	}

	player, err := h.players.Login(req.Email)
	if err != nil {
		if errors.Is(err, services.ErrPlayerNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": true, "message": "No account found with this email. Please sign up first.",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": "Failed to login. Please try again.",
		})
	}

	return c.JSON(fiber.Map{
		"error": false,
		"player": dto.PlayerResponse{
			ID: player.ID, Name: player.Name, TotalScore: player.TotalScore,
		},
	})
}

// Rank returns the per-play rank for the player's most recent play. A
// score query parameter serves as fallback when no row exists yet.
func (h *PlayerHandler) Rank(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "Invalid player ID",
		})
	}

	fallback := int64(c.QueryInt("score", 0))
	rank, err := h.leaderboard.RankForPlayer(&id, fallback)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": "Failed to compute rank",
		})
	}

	return c.JSON(fiber.Map{
		"error": false, "rank": rank, "rank_ordinal": FormatOrdinal(rank),
	})
}
