package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/megawatt-maniacs/backend/internal/database"
	"github.com/megawatt-maniacs/backend/internal/dto"
	"github.com/megawatt-maniacs/backend/internal/session"
)

type HealthHandler struct {
	sessions *session.Manager
}

func NewHealthHandler(sessions *session.Manager) *HealthHandler {
	return &HealthHandler{sessions: sessions}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	dbStatus := "ok"
	if err := database.Ping(); err != nil {
		dbStatus = "unhealthy: " + err.Error()
	}

	return c.JSON(dto.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		DB:        dbStatus,
		Sessions:  h.sessions.Len(),
	})
}
