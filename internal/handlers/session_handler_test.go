package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreMessage(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{0, "Check out the leaderboard!"},
		{1, "Keep learning, you'll power up!"},
		{2, "Keep learning, you'll power up!"},
		{3, "Good energy! Keep charging up!"},
		{4, "Good energy! Keep charging up!"},
		{5, "Watts up! You're electrifying!"},
		{7, "Watts up! You're electrifying!"},
		{8, "You're a 500 kW Brainiac!"},
		{12, "You're a 500 kW Brainiac!"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ScoreMessage(tt.score), "score %d", tt.score)
	}
}

func TestFormatOrdinal(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{1, "1st"},
		{2, "2nd"},
		{3, "3rd"},
		{4, "4th"},
		{10, "10th"},
		{11, "11th"},
		{12, "12th"},
		{13, "13th"},
		{21, "21st"},
		{22, "22nd"},
		{23, "23rd"},
		{101, "101st"},
		{111, "111th"},
		{112, "112th"},
		{113, "113th"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatOrdinal(tt.n))
	}
}
