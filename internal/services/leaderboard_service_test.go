package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeStandings(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()
	carol := uuid.New()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		rows []ScoreRow
		topN int
		want []StandingsEntry
	}{
		{
			name: "empty rows yield empty standings",
			rows: nil,
			topN: 10,
			want: []StandingsEntry{},
		},
		{
			name: "per-player totals and games played",
			rows: []ScoreRow{
				{PlayerID: alice, Name: "A", Score: 5, CreatedAt: base},
				{PlayerID: alice, Name: "A", Score: 3, CreatedAt: base.Add(time.Hour)},
				{PlayerID: bob, Name: "B", Score: 7, CreatedAt: base.Add(2 * time.Hour)},
			},
			topN: 10,
			want: []StandingsEntry{
				{Rank: 1, PlayerID: alice, Name: "A", TotalScore: 8, GamesPlayed: 2, EarliestGame: base},
				{Rank: 2, PlayerID: bob, Name: "B", TotalScore: 7, GamesPlayed: 1, EarliestGame: base.Add(2 * time.Hour)},
			},
		},
		{
			name: "ties broken by earliest play ascending",
			rows: []ScoreRow{
				{PlayerID: bob, Name: "B", Score: 10, CreatedAt: base.Add(time.Hour)},
				{PlayerID: alice, Name: "A", Score: 10, CreatedAt: base},
				{PlayerID: carol, Name: "C", Score: 7, CreatedAt: base.Add(2 * time.Hour)},
			},
			topN: 10,
			want: []StandingsEntry{
				{Rank: 1, PlayerID: alice, Name: "A", TotalScore: 10, GamesPlayed: 1, EarliestGame: base},
				{Rank: 2, PlayerID: bob, Name: "B", TotalScore: 10, GamesPlayed: 1, EarliestGame: base.Add(time.Hour)},
				{Rank: 3, PlayerID: carol, Name: "C", TotalScore: 7, GamesPlayed: 1, EarliestGame: base.Add(2 * time.Hour)},
			},
		},
		{
			name: "earliest game survives later rows",
			rows: []ScoreRow{
				{PlayerID: alice, Name: "A", Score: 2, CreatedAt: base.Add(3 * time.Hour)},
				{PlayerID: alice, Name: "A", Score: 2, CreatedAt: base},
			},
			topN: 10,
			want: []StandingsEntry{
				{Rank: 1, PlayerID: alice, Name: "A", TotalScore: 4, GamesPlayed: 2, EarliestGame: base},
			},
		},
		{
			name: "truncated to topN",
			rows: []ScoreRow{
				{PlayerID: alice, Name: "A", Score: 5, CreatedAt: base},
				{PlayerID: bob, Name: "B", Score: 4, CreatedAt: base},
				{PlayerID: carol, Name: "C", Score: 3, CreatedAt: base},
			},
			topN: 2,
			want: []StandingsEntry{
				{Rank: 1, PlayerID: alice, Name: "A", TotalScore: 5, GamesPlayed: 1, EarliestGame: base},
				{Rank: 2, PlayerID: bob, Name: "B", TotalScore: 4, GamesPlayed: 1, EarliestGame: base},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeStandings(tt.rows, tt.topN)
			require.Len(t, got, len(tt.want))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputeStandingsOrderingInvariant(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	rows := []ScoreRow{
		{PlayerID: uuid.New(), Name: "p1", Score: 3, CreatedAt: base.Add(5 * time.Minute)},
		{PlayerID: uuid.New(), Name: "p2", Score: 9, CreatedAt: base.Add(1 * time.Minute)},
		{PlayerID: uuid.New(), Name: "p3", Score: 9, CreatedAt: base.Add(9 * time.Minute)},
		{PlayerID: uuid.New(), Name: "p4", Score: 1, CreatedAt: base},
		{PlayerID: uuid.New(), Name: "p5", Score: 3, CreatedAt: base.Add(2 * time.Minute)},
	}

	got := ComputeStandings(rows, 10)
	for i := 1; i < len(got); i++ {
		prev, cur := got[i-1], got[i]
		assert.GreaterOrEqual(t, prev.TotalScore, cur.TotalScore)
		if prev.TotalScore == cur.TotalScore {
			assert.True(t, !cur.EarliestGame.Before(prev.EarliestGame),
				"tied players must be ordered by earliest play ascending")
		}
		assert.Equal(t, i+1, cur.Rank)
	}
}
