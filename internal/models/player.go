package models

import (
	"time"

	"github.com/google/uuid"
)

// Player is a trivia participant. Created on first signup; TotalScore
// mirrors the cumulative sum of their leaderboard rows for quick display.
type Player struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name       string    `gorm:"size:255;not null" json:"name"`
	Email      string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	TotalScore int64     `gorm:"not null;default:0" json:"total_score"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Player) TableName() string { return "players" }
