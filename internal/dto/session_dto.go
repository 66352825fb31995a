package dto

import (
	"github.com/google/uuid"
	"github.com/megawatt-maniacs/backend/internal/models"
	"github.com/megawatt-maniacs/backend/internal/session"
)

type StartSessionRequest struct {
	PlayerID *uuid.UUID `json:"player_id"` // omit for guest play
}

// QuestionView is the safe serialization of a question in play: the correct
// answer and explanation are withheld until the answer has been checked.
type QuestionView struct {
	ID               uuid.UUID `json:"id"`
	Index            int       `json:"index"`
	Total            int       `json:"total"`
	QuestionText     string    `json:"question_text"`
	QuestionType     string    `json:"question_type"`
	AnswerA          string    `json:"answer_a,omitempty"`
	AnswerB          string    `json:"answer_b,omitempty"`
	AnswerC          string    `json:"answer_c,omitempty"`
	AnswerD          string    `json:"answer_d,omitempty"`
	Category         string    `json:"category,omitempty"`
	QuestionImageURL string    `json:"question_image_url,omitempty"`
	ImageCaption     string    `json:"image_caption,omitempty"`
}

func NewQuestionView(q *models.Question, index, total int) QuestionView {
	return QuestionView{
		ID:               q.ID,
		Index:            index,
		Total:            total,
		QuestionText:     q.QuestionText,
		QuestionType:     q.QuestionType,
		AnswerA:          q.AnswerA,
		AnswerB:          q.AnswerB,
		AnswerC:          q.AnswerC,
		AnswerD:          q.AnswerD,
		Category:         q.Category,
		QuestionImageURL: q.QuestionImageURL,
		ImageCaption:     q.ImageCaption,
	}
}

type SessionStateResponse struct {
	SessionID uuid.UUID     `json:"session_id"`
	State     session.State `json:"state"`
	Score     int           `json:"score"`
	Question  *QuestionView `json:"question,omitempty"`
}

type AnswerRequest struct {
	Answer string `json:"answer"`
}

// CheckResponse reveals the correct answer once the player has committed.
type CheckResponse struct {
	Correct       bool   `json:"correct"`
	CorrectAnswer string `json:"correct_answer"`
	Explanation   string `json:"explanation,omitempty"`
	Source        string `json:"source,omitempty"`
}

// FinalResult is returned by the last Next of a session.
type FinalResult struct {
	FinalScore   int                    `json:"final_score"`
	Total        int                    `json:"total_questions"`
	TotalScore   int64                  `json:"total_score,omitempty"` // cumulative, signed-up players only
	Rank         int                    `json:"rank,omitempty"`
	RankOrdinal  string                 `json:"rank_ordinal,omitempty"`
	ScoreMessage string                 `json:"score_message"`
	Breakdown    []session.AnswerRecord `json:"breakdown"`
}

type NextResponse struct {
	Finished bool          `json:"finished"`
	Question *QuestionView `json:"question,omitempty"`
	Result   *FinalResult  `json:"result,omitempty"`
}
