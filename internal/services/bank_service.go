package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/megawatt-maniacs/backend/internal/models"
	"gorm.io/gorm"
)

var ErrBankItemsNotFound = errors.New("one or more bank items not found")

// BankRecord is one row of the externally authored question list, before
// normalization.
type BankRecord struct {
	Category      string
	Question      string
	AnswerOptions string // newline-separated "X) text" block
	CorrectAnswer string // "X) text" line
	Source        string
}

// AnswerOptions holds the parsed A-D option texts; letters without a
// matching line stay empty.
type AnswerOptions struct {
	A, B, C, D string
}

// ParseAnswerOptions splits an authored options block on newlines and
// matches a "X) text" prefix per line.
func ParseAnswerOptions(block string) AnswerOptions {
	var opts AnswerOptions
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "A)"):
			opts.A = strings.TrimSpace(line[2:])
		case strings.HasPrefix(line, "B)"):
			opts.B = strings.TrimSpace(line[2:])
		case strings.HasPrefix(line, "C)"):
			opts.C = strings.TrimSpace(line[2:])
		case strings.HasPrefix(line, "D)"):
			opts.D = strings.TrimSpace(line[2:])
		}
	}
	return opts
}

// stripLetterPrefix removes a leading "X) " from an authored answer line.
func stripLetterPrefix(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] >= 'A' && s[0] <= 'D' && s[1] == ')' {
		return strings.TrimSpace(s[2:])
	}
	return s
}

// NormalizeBankRecord converts an authored record into the bank schema. The
// correct letter is recovered by exact text match against the parsed
// options, defaulting to A when nothing matches (the authoring pipeline's
// silent-failure policy, kept as-is). An authored option D is folded into
// slot C: the bank format carries only three live options.
func NormalizeBankRecord(rec BankRecord) models.QuestionBankItem {
	opts := ParseAnswerOptions(rec.AnswerOptions)
	correctText := stripLetterPrefix(rec.CorrectAnswer)

	letter := "A"
	for _, cand := range []struct{ letter, text string }{
		{"A", opts.A}, {"B", opts.B}, {"C", opts.C}, {"D", opts.D},
	} {
		if cand.text != "" && cand.text == correctText {
			letter = cand.letter
		}
	}

	if strings.TrimSpace(opts.D) != "" {
		opts.C = opts.D
		if letter == "D" {
			letter = "C"
		}
	}

	return models.QuestionBankItem{
		Category:      rec.Category,
		Question:      rec.Question,
		AnswerA:       opts.A,
		AnswerB:       opts.B,
		AnswerC:       opts.C,
		CorrectAnswer: letter,
		Source:        rec.Source,
	}
}

type BankService struct {
	db *gorm.DB
}

func NewBankService(db *gorm.DB) *BankService {
	return &BankService{db: db}
}

func (s *BankService) List() ([]models.QuestionBankItem, error) {
	var items []models.QuestionBankItem
	err := s.db.Order("category ASC, created_at ASC").Find(&items).Error
	return items, err
}

func (s *BankService) Create(item models.QuestionBankItem) (*models.QuestionBankItem, error) {
	if strings.TrimSpace(item.Question) == "" {
		return nil, errors.New("question is required")
	}
	if len(item.CorrectAnswer) != 1 || item.CorrectAnswer < "A" || item.CorrectAnswer > "C" {
		return nil, errors.New("correct answer must be a letter A-C")
	}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("failed to create bank item: %w", err)
	}
	return &item, nil
}

func (s *BankService) Delete(id uuid.UUID) error {
	result := s.db.Delete(&models.QuestionBankItem{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete bank item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("bank item not found")
	}
	return nil
}

// ImportRecords normalizes and stores authored records into the bank in one
// transaction. Used by the CSV import CLI.
func (s *BankService) ImportRecords(records []BankRecord) (int, error) {
	items := make([]models.QuestionBankItem, 0, len(records))
	for _, rec := range records {
		if strings.TrimSpace(rec.Question) == "" {
			continue
		}
		items = append(items, NormalizeBankRecord(rec))
	}
	if len(items) == 0 {
		return 0, nil
	}
	if err := s.db.CreateInBatches(items, 50).Error; err != nil {
		return 0, fmt.Errorf("failed to import bank records: %w", err)
	}
	return len(items), nil
}

// ImportToGame copies the selected bank items into a game as
// multiple_choice questions. A single failing insert aborts the whole
// batch; there is no partial-success reporting.
func (s *BankService) ImportToGame(gameID uuid.UUID, itemIDs []uuid.UUID) (int, error) {
	if len(itemIDs) == 0 {
		return 0, errors.New("no bank items selected")
	}

	var game models.Game
	if err := s.db.First(&game, "id = ?", gameID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrGameNotFound
		}
		return 0, fmt.Errorf("failed to load game: %w", err)
	}

	var items []models.QuestionBankItem
	if err := s.db.Where("id IN ?", itemIDs).Find(&items).Error; err != nil {
		return 0, fmt.Errorf("failed to load bank items: %w", err)
	}
	if len(items) != len(itemIDs) {
		return 0, ErrBankItemsNotFound
	}

	questions := make([]models.Question, 0, len(items))
	for _, item := range items {
		questions = append(questions, models.Question{
			GameID:        gameID,
			RoundID:       nil,
			QuestionText:  item.Question,
			QuestionType:  models.QuestionTypeMultipleChoice,
			AnswerA:       item.AnswerA,
			AnswerB:       item.AnswerB,
			AnswerC:       item.AnswerC,
			AnswerD:       "",
			CorrectAnswer: item.CorrectAnswer,
			Category:      item.Category,
			Source:        item.Source,
		})
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&questions).Error
	})
	if err != nil {
		return 0, fmt.Errorf("failed to import questions: %w", err)
	}
	return len(questions), nil
}
