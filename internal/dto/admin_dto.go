package dto

import "github.com/google/uuid"

type CreateGameRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type CreateRoundRequest struct {
	Title       string `json:"title"`
	RoundNumber int    `json:"round_number"`
}

type CreateQuestionRequest struct {
	RoundID          *uuid.UUID `json:"round_id"`
	QuestionText     string     `json:"question_text"`
	QuestionType     string     `json:"question_type"`
	AnswerA          string     `json:"answer_a"`
	AnswerB          string     `json:"answer_b"`
	AnswerC          string     `json:"answer_c"`
	AnswerD          string     `json:"answer_d"`
	CorrectAnswer    string     `json:"correct_answer"`
	Explanation      string     `json:"explanation"`
	Category         string     `json:"category"`
	Source           string     `json:"source"`
	QuestionImageURL string     `json:"question_image_url"`
	ImageCaption     string     `json:"image_caption"`
}

type CreateBankItemRequest struct {
	Category      string `json:"category"`
	Question      string `json:"question"`
	AnswerA       string `json:"answer_a"`
	AnswerB       string `json:"answer_b"`
	AnswerC       string `json:"answer_c"`
	CorrectAnswer string `json:"correct_answer"`
	Source        string `json:"source"`
}

type ImportBankRequest struct {
	GameID  uuid.UUID   `json:"game_id"`
	ItemIDs []uuid.UUID `json:"item_ids"`
}

type ImportBankResponse struct {
	Imported int `json:"imported"`
}
