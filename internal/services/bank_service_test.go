package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAnswerOptions(t *testing.T) {
	tests := []struct {
		name  string
		block string
		want  AnswerOptions
	}{
		{
			name:  "full block",
			block: "A) Wind\nB) Solar\nC) Coal\nD) Hydro",
			want:  AnswerOptions{A: "Wind", B: "Solar", C: "Coal", D: "Hydro"},
		},
		{
			name:  "missing letters map to empty",
			block: "A) Wind\nC) Coal",
			want:  AnswerOptions{A: "Wind", C: "Coal"},
		},
		{
			name:  "surrounding whitespace stripped",
			block: "  A)  Wind  \n\n B) Solar ",
			want:  AnswerOptions{A: "Wind", B: "Solar"},
		},
		{
			name:  "empty block",
			block: "",
			want:  AnswerOptions{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseAnswerOptions(tt.block))
		})
	}
}

func TestNormalizeBankRecord(t *testing.T) {
	tests := []struct {
		name        string
		rec         BankRecord
		wantA       string
		wantB       string
		wantC       string
		wantCorrect string
	}{
		{
			name: "three options, correct B",
			rec: BankRecord{
				Category:      "Energy",
				Question:      "Best renewable?",
				AnswerOptions: "A) Wind\nB) Solar\nC) Coal",
				CorrectAnswer: "B) Solar",
			},
			wantA: "Wind", wantB: "Solar", wantC: "Coal", wantCorrect: "B",
		},
		{
			name: "option D folded into C with correct letter remapped",
			rec: BankRecord{
				AnswerOptions: "A) Wind\nB) Solar\nD) Hydro",
				CorrectAnswer: "D) Hydro",
			},
			wantA: "Wind", wantB: "Solar", wantC: "Hydro", wantCorrect: "C",
		},
		{
			name: "option D overwrites a parsed C",
			rec: BankRecord{
				AnswerOptions: "A) Wind\nB) Solar\nC) Coal\nD) Hydro",
				CorrectAnswer: "A) Wind",
			},
			wantA: "Wind", wantB: "Solar", wantC: "Hydro", wantCorrect: "A",
		},
		{
			name: "unmatched correct text defaults to A",
			rec: BankRecord{
				AnswerOptions: "A) Wind\nB) Solar",
				CorrectAnswer: "Geothermal",
			},
			wantA: "Wind", wantB: "Solar", wantC: "", wantCorrect: "A",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeBankRecord(tt.rec)
			assert.Equal(t, tt.wantA, got.AnswerA)
			assert.Equal(t, tt.wantB, got.AnswerB)
			assert.Equal(t, tt.wantC, got.AnswerC)
			assert.Equal(t, tt.wantCorrect, got.CorrectAnswer)
			assert.Equal(t, tt.rec.Category, got.Category)
			assert.Equal(t, tt.rec.Question, got.Question)
		})
	}
}
