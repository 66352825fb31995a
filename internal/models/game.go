package models

import (
	"time"

	"github.com/google/uuid"
)

// Game is a named collection of questions. At most one game is active at a
// time; activation is a single transaction (see GameService.SetActive).
type Game struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	IsActive    bool      `gorm:"not null;default:false;index" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Round is an optional grouping of questions within a game. Deleting a game
// cascades to its rounds, and deleting a round cascades to its questions.
type Round struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	GameID      uuid.UUID `gorm:"type:uuid;not null;index" json:"game_id"`
	Game        *Game     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	RoundNumber int       `gorm:"not null;default:1" json:"round_number"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
