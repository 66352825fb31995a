package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/megawatt-maniacs/backend/internal/models"
	"github.com/megawatt-maniacs/backend/internal/session"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ScoreRow is one per-play score joined with the player's display name.
type ScoreRow struct {
	PlayerID  uuid.UUID `json:"player_id"`
	Name      string    `json:"name"`
	Score     int64     `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}

// StandingsEntry is one deduplicated-by-player row of the ranked standings.
type StandingsEntry struct {
	Rank         int       `json:"rank"`
	PlayerID     uuid.UUID `json:"player_id"`
	Name         string    `json:"name"`
	TotalScore   int64     `json:"total_score"`
	GamesPlayed  int       `json:"games_played"`
	EarliestGame time.Time `json:"-"`
}

// ComputeStandings groups per-play rows by player, accumulates cumulative
// totals and games-played counts, sorts by total score descending with ties
// broken by earliest play ascending, and truncates to topN.
func ComputeStandings(rows []ScoreRow, topN int) []StandingsEntry {
	byPlayer := make(map[uuid.UUID]*StandingsEntry)
	order := make([]uuid.UUID, 0, len(rows))

	for _, row := range rows {
		entry, ok := byPlayer[row.PlayerID]
		if !ok {
			byPlayer[row.PlayerID] = &StandingsEntry{
				PlayerID:     row.PlayerID,
				Name:         row.Name,
				TotalScore:   row.Score,
				GamesPlayed:  1,
				EarliestGame: row.CreatedAt,
			}
			order = append(order, row.PlayerID)
			continue
		}
		entry.TotalScore += row.Score
		entry.GamesPlayed++
		if row.CreatedAt.Before(entry.EarliestGame) {
			entry.EarliestGame = row.CreatedAt
		}
	}

	standings := make([]StandingsEntry, 0, len(byPlayer))
	for _, id := range order {
		standings = append(standings, *byPlayer[id])
	}

	sort.SliceStable(standings, func(i, j int) bool {
		if standings[i].TotalScore != standings[j].TotalScore {
			return standings[i].TotalScore > standings[j].TotalScore
		}
		return standings[i].EarliestGame.Before(standings[j].EarliestGame)
	})

	if topN > 0 && len(standings) > topN {
		standings = standings[:topN]
	}
	for i := range standings {
		standings[i].Rank = i + 1
	}
	return standings
}

type LeaderboardService struct {
	db *gorm.DB
}

func NewLeaderboardService(db *gorm.DB) *LeaderboardService {
	return &LeaderboardService{db: db}
}

// Standings loads all score rows and aggregates them into the top-N view.
func (s *LeaderboardService) Standings(topN int) ([]StandingsEntry, error) {
	var rows []ScoreRow
	err := s.db.Table("leaderboard").
		Select("leaderboard.player_id, players.name, leaderboard.score, leaderboard.created_at").
		Joins("JOIN players ON players.id = leaderboard.player_id").
		Order("leaderboard.score DESC").
		Order("leaderboard.created_at ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load score rows: %w", err)
	}
	return ComputeStandings(rows, topN), nil
}

// PlayRank ranks a single play among all individual play rows: rows with a
// strictly greater score, plus equal-score rows played strictly earlier,
// plus one. This is deliberately a per-play rank, not the per-player
// aggregate the standings use.
func (s *LeaderboardService) PlayRank(score int64, playedAt *time.Time) (int, error) {
	var higher int64
	if err := s.db.Model(&models.LeaderboardEntry{}).
		Where("score > ?", score).Count(&higher).Error; err != nil {
		return 0, fmt.Errorf("failed to count higher scores: %w", err)
	}

	var earlierSame int64
	if playedAt != nil {
		if err := s.db.Model(&models.LeaderboardEntry{}).
			Where("score = ? AND created_at < ?", score, *playedAt).
			Count(&earlierSame).Error; err != nil {
			return 0, fmt.Errorf("failed to count tied earlier scores: %w", err)
		}
	}

	return int(higher + earlierSame + 1), nil
}

// RankForPlayer ranks the player's most recent play; fallbackScore is used
// when the player has no persisted rows (guest results).
func (s *LeaderboardService) RankForPlayer(playerID *uuid.UUID, fallbackScore int64) (int, error) {
	score := fallbackScore
	var playedAt *time.Time

	if playerID != nil {
		var latest models.LeaderboardEntry
		err := s.db.Where("player_id = ?", *playerID).
			Order("created_at DESC").First(&latest).Error
		switch {
		case err == nil:
			score = latest.Score
			playedAt = &latest.CreatedAt
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return 0, fmt.Errorf("failed to load latest play: %w", err)
		}
	}

	return s.PlayRank(score, playedAt)
}

// RecordPlay persists one immutable score row and mirrors the score onto the
// player's cumulative total, in a single transaction. Returns the new entry
// and the player's updated total.
func (s *LeaderboardService) RecordPlay(playerID, gameID uuid.UUID, score int, answers []session.AnswerRecord) (*models.LeaderboardEntry, int64, error) {
	entry := models.LeaderboardEntry{
		PlayerID: playerID,
		GameID:   gameID,
		Score:    int64(score),
	}
	if len(answers) > 0 {
		if b, err := json.Marshal(answers); err == nil {
			entry.Breakdown = datatypes.JSON(b)
		}
	}

	var newTotal int64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Player{}).Where("id = ?", playerID).
			UpdateColumn("total_score", gorm.Expr("total_score + ?", score)).Error; err != nil {
			return err
		}
		return tx.Model(&models.Player{}).Select("total_score").
			Where("id = ?", playerID).Scan(&newTotal).Error
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to record play: %w", err)
	}
	return &entry, newTotal, nil
}
