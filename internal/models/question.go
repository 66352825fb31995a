package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	QuestionTypeMultipleChoice = "multiple_choice"
	QuestionTypeTextInput      = "text_input"
)

// Question belongs to a game and optionally to a round. For multiple_choice
// the correct answer is a letter A-D referencing a non-empty option; for
// text_input it is free text compared case-insensitively and answers A-D
// are stored empty.
type Question struct {
	ID               uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	GameID           uuid.UUID  `gorm:"type:uuid;not null;index" json:"game_id"`
	Game             *Game      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	RoundID          *uuid.UUID `gorm:"type:uuid;index" json:"round_id,omitempty"`
	Round            *Round     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	QuestionText     string     `gorm:"type:text;not null" json:"question_text"`
	QuestionType     string     `gorm:"size:20;not null;default:'multiple_choice'" json:"question_type"`
	AnswerA          string     `gorm:"type:text" json:"answer_a"`
	AnswerB          string     `gorm:"type:text" json:"answer_b"`
	AnswerC          string     `gorm:"type:text" json:"answer_c"`
	AnswerD          string     `gorm:"type:text" json:"answer_d"`
	CorrectAnswer    string     `gorm:"type:text;not null" json:"correct_answer"`
	Explanation      string     `gorm:"type:text" json:"explanation"`
	Category         string     `gorm:"size:255" json:"category,omitempty"`
	Source           string     `gorm:"type:text" json:"source,omitempty"`
	QuestionImageURL string     `gorm:"type:text" json:"question_image_url,omitempty"`
	ImageCaption     string     `gorm:"type:text" json:"image_caption,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// Option returns the option text for a letter A-D, or "" for anything else.
func (q *Question) Option(letter string) string {
	switch letter {
	case "A":
		return q.AnswerA
	case "B":
		return q.AnswerB
	case "C":
		return q.AnswerC
	case "D":
		return q.AnswerD
	}
	return ""
}

// QuestionBankItem is a game-independent curated question sourced from the
// authoring spreadsheet. The bank format carries at most three live options
// (A/B/C); option D from authoring is folded into C on import.
type QuestionBankItem struct {
	ID            uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Category      string    `gorm:"size:255;not null" json:"category"`
	Question      string    `gorm:"type:text;not null" json:"question"`
	AnswerA       string    `gorm:"type:text;not null" json:"answer_a"`
	AnswerB       string    `gorm:"type:text;not null" json:"answer_b"`
	AnswerC       string    `gorm:"type:text;not null" json:"answer_c"`
	CorrectAnswer string    `gorm:"size:1;not null" json:"correct_answer"`
	Source        string    `gorm:"type:text" json:"source,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (QuestionBankItem) TableName() string { return "question_bank" }
