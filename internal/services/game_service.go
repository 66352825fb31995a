package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/megawatt-maniacs/backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrGameNotFound     = errors.New("game not found")
	ErrRoundNotFound    = errors.New("round not found")
	ErrQuestionNotFound = errors.New("question not found")
	ErrNoGames          = errors.New("no games available")
	ErrNoQuestions      = errors.New("no questions available")
)

type GameService struct {
	db *gorm.DB
}

func NewGameService(db *gorm.DB) *GameService {
	return &GameService{db: db}
}

func (s *GameService) ListGames() ([]models.Game, error) {
	var games []models.Game
	err := s.db.Order("created_at DESC").Find(&games).Error
	return games, err
}

func (s *GameService) CreateGame(title, description string) (*models.Game, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, errors.New("title is required")
	}
	game := models.Game{Title: title, Description: description}
	if err := s.db.Create(&game).Error; err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}
	return &game, nil
}

// DeleteGame removes a game; rounds and questions follow via cascade FKs.
func (s *GameService) DeleteGame(id uuid.UUID) error {
	result := s.db.Delete(&models.Game{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete game: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrGameNotFound
	}
	return nil
}

// SetActive flags one game active and deactivates every other in a single
// transaction, closing the two-write race of the original flow.
func (s *GameService) SetActive(id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Game{}).Where("is_active = true AND id <> ?", id).
			Update("is_active", false).Error; err != nil {
			return fmt.Errorf("failed to deactivate games: %w", err)
		}
		result := tx.Model(&models.Game{}).Where("id = ?", id).Update("is_active", true)
		if result.Error != nil {
			return fmt.Errorf("failed to activate game: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrGameNotFound
		}
		return nil
	})
}

// CurrentGame returns the game flagged active, or the first available one.
func (s *GameService) CurrentGame() (*models.Game, error) {
	var game models.Game
	err := s.db.Where("is_active = true").First(&game).Error
	if err == nil {
		return &game, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to load active game: %w", err)
	}

	err = s.db.Order("created_at ASC").First(&game).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoGames
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load game: %w", err)
	}
	return &game, nil
}

// QuestionsForGame returns the game's questions in play order.
func (s *GameService) QuestionsForGame(gameID uuid.UUID) ([]models.Question, error) {
	var questions []models.Question
	err := s.db.Where("game_id = ?", gameID).Order("created_at ASC").Find(&questions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load questions: %w", err)
	}
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	return questions, nil
}

// --- Rounds ---

func (s *GameService) ListRounds(gameID uuid.UUID) ([]models.Round, error) {
	var rounds []models.Round
	err := s.db.Where("game_id = ?", gameID).Order("round_number ASC").Find(&rounds).Error
	return rounds, err
}

func (s *GameService) CreateRound(gameID uuid.UUID, title string, roundNumber int) (*models.Round, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, errors.New("title is required")
	}
	if roundNumber < 1 {
		roundNumber = 1
	}
	round := models.Round{GameID: gameID, Title: title, RoundNumber: roundNumber}
	if err := s.db.Create(&round).Error; err != nil {
		return nil, fmt.Errorf("failed to create round: %w", err)
	}
	return &round, nil
}

func (s *GameService) DeleteRound(id uuid.UUID) error {
	result := s.db.Delete(&models.Round{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete round: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRoundNotFound
	}
	return nil
}

// --- Questions ---

// QuestionInput carries the admin form fields for a new question.
type QuestionInput struct {
	GameID           uuid.UUID
	RoundID          *uuid.UUID
	QuestionText     string
	QuestionType     string
	AnswerA          string
	AnswerB          string
	AnswerC          string
	AnswerD          string
	CorrectAnswer    string
	Explanation      string
	Category         string
	Source           string
	QuestionImageURL string
	ImageCaption     string
}

func (s *GameService) CreateQuestion(in QuestionInput) (*models.Question, error) {
	in.QuestionText = strings.TrimSpace(in.QuestionText)
	if in.QuestionText == "" {
		return nil, errors.New("question text is required")
	}
	if in.QuestionType == "" {
		in.QuestionType = models.QuestionTypeMultipleChoice
	}

	q := models.Question{
		GameID:           in.GameID,
		RoundID:          in.RoundID,
		QuestionText:     in.QuestionText,
		QuestionType:     in.QuestionType,
		CorrectAnswer:    strings.TrimSpace(in.CorrectAnswer),
		Explanation:      in.Explanation,
		Category:         in.Category,
		Source:           in.Source,
		QuestionImageURL: in.QuestionImageURL,
		ImageCaption:     in.ImageCaption,
	}

	switch in.QuestionType {
	case models.QuestionTypeMultipleChoice:
		q.AnswerA, q.AnswerB, q.AnswerC, q.AnswerD = in.AnswerA, in.AnswerB, in.AnswerC, in.AnswerD
		letter := strings.ToUpper(q.CorrectAnswer)
		if len(letter) != 1 || letter < "A" || letter > "D" {
			return nil, errors.New("correct answer must be a letter A-D")
		}
		if strings.TrimSpace(q.Option(letter)) == "" {
			return nil, errors.New("correct answer must reference a non-empty option")
		}
		q.CorrectAnswer = letter
	case models.QuestionTypeTextInput:
		// answers A-D are unused for text questions
		if q.CorrectAnswer == "" {
			return nil, errors.New("correct answer is required")
		}
	default:
		return nil, errors.New("unknown question type")
	}

	if err := s.db.Create(&q).Error; err != nil {
		return nil, fmt.Errorf("failed to create question: %w", err)
	}
	return &q, nil
}

func (s *GameService) ListQuestions(gameID uuid.UUID) ([]models.Question, error) {
	var questions []models.Question
	err := s.db.Where("game_id = ?", gameID).Order("created_at ASC").Find(&questions).Error
	return questions, err
}

func (s *GameService) DeleteQuestion(id uuid.UUID) error {
	result := s.db.Delete(&models.Question{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete question: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrQuestionNotFound
	}
	return nil
}
