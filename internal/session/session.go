package session

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/megawatt-maniacs/backend/internal/models"
)

// State of a trivia session. A session is created directly in Presenting
// (the load happens before construction) and is non-resumable once Finished.
type State string

const (
	StatePresenting State = "presenting"
	StateChecked    State = "checked"
	StateFinished   State = "finished"
)

var (
	ErrFinished     = errors.New("session is finished")
	ErrNoAnswer     = errors.New("an answer is required")
	ErrNotChecked   = errors.New("check an answer before advancing")
	ErrEmptySession = errors.New("session has no questions")
)

// AnswerRecord is the per-question outcome kept for the results breakdown.
type AnswerRecord struct {
	QuestionID uuid.UUID `json:"question_id"`
	Given      string    `json:"given"`
	Correct    bool      `json:"correct"`
}

// Session drives one player through a fixed ordered list of questions.
// Score is applied on Next, not on Check (deferred scoring policy), so
// re-checking a different answer before advancing never double-counts.
type Session struct {
	ID         uuid.UUID
	PlayerID   *uuid.UUID // nil for guest play
	PlayerName string
	GameID     uuid.UUID

	mu          sync.Mutex
	questions   []models.Question
	index       int
	score       int
	state       State
	given       string
	lastCorrect bool
	answers     []AnswerRecord
	lastActive  time.Time
}

func New(playerID *uuid.UUID, playerName string, gameID uuid.UUID, questions []models.Question) (*Session, error) {
	if len(questions) == 0 {
		return nil, ErrEmptySession
	}
	return &Session{
		ID:         uuid.New(),
		PlayerID:   playerID,
		PlayerName: playerName,
		GameID:     gameID,
		questions:  questions,
		state:      StatePresenting,
		answers:    make([]AnswerRecord, 0, len(questions)),
		lastActive: time.Now(),
	}, nil
}

// IsCorrect evaluates an answer against a question. Multiple choice compares
// the selected letter exactly; text input is whitespace-trimmed and
// case-insensitive.
func IsCorrect(q *models.Question, given string) bool {
	if q.QuestionType == models.QuestionTypeTextInput {
		return strings.EqualFold(strings.TrimSpace(given), strings.TrimSpace(q.CorrectAnswer))
	}
	return given == q.CorrectAnswer
}

// Check evaluates the given answer for the current question and moves the
// session to Checked. Allowed from Presenting or Checked: changing the
// answer before advancing simply re-checks.
func (s *Session) Check(given string) (correct bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastActive = time.Now()

	if s.state == StateFinished {
		return false, ErrFinished
	}
	if strings.TrimSpace(given) == "" {
		return false, ErrNoAnswer
	}

	q := &s.questions[s.index]
	s.given = given
	s.lastCorrect = IsCorrect(q, given)
	s.state = StateChecked
	return s.lastCorrect, nil
}

// Next applies the deferred score increment for the checked answer, clears
// the per-question transient state, and either presents the next question
// or finishes the session. On the last question the commit callback (if
// any) runs before the Finished transition; if it fails the session stays
// Checked so the player can retry.
func (s *Session) Next(commit func(score int, answers []AnswerRecord) error) (finished bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastActive = time.Now()

	switch s.state {
	case StateFinished:
		return false, ErrFinished
	case StatePresenting:
		return false, ErrNotChecked
	}

	q := &s.questions[s.index]
	answers := append(append([]AnswerRecord(nil), s.answers...), AnswerRecord{
		QuestionID: q.ID,
		Given:      s.given,
		Correct:    s.lastCorrect,
	})
	score := s.score
	if s.lastCorrect {
		score++
	}

	last := s.index == len(s.questions)-1
	if last && commit != nil {
		if err := commit(score, answers); err != nil {
			return false, err
		}
	}

	s.answers = answers
	s.score = score
	s.given = ""
	s.lastCorrect = false

	if last {
		s.state = StateFinished
		return true, nil
	}
	s.index++
	s.state = StatePresenting
	return false, nil
}

// Snapshot is a consistent read of the session's visible state.
type Snapshot struct {
	State       State
	Index       int
	Total       int
	Score       int
	Question    *models.Question
	Given       string
	LastCorrect bool
	Answers     []AnswerRecord
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastActive = time.Now()

	snap := Snapshot{
		State:       s.state,
		Index:       s.index,
		Total:       len(s.questions),
		Score:       s.score,
		Given:       s.given,
		LastCorrect: s.lastCorrect,
		Answers:     append([]AnswerRecord(nil), s.answers...),
	}
	if s.state != StateFinished {
		q := s.questions[s.index]
		snap.Question = &q
	}
	return snap
}

// Score returns the accumulated score.
func (s *Session) Score() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.score
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastActive)
}
