package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// LeaderboardEntry records one completed play. Rows are immutable once
// written; cumulative totals are derived by aggregation, not stored here.
type LeaderboardEntry struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	PlayerID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"player_id"`
	Player    *Player        `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	GameID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"game_id"`
	Game      *Game          `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Score     int64          `gorm:"not null;default:0;index" json:"score"`
	Breakdown datatypes.JSON `gorm:"type:jsonb" json:"breakdown,omitempty"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
}

func (LeaderboardEntry) TableName() string { return "leaderboard" }
