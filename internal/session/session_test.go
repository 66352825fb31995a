package session

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/megawatt-maniacs/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mcQuestion(correct string) models.Question {
	return models.Question{
		ID:            uuid.New(),
		QuestionType:  models.QuestionTypeMultipleChoice,
		QuestionText:  "pick one",
		AnswerA:       "Wind",
		AnswerB:       "Solar",
		AnswerC:       "Coal",
		CorrectAnswer: correct,
	}
}

func textQuestion(correct string) models.Question {
	return models.Question{
		ID:            uuid.New(),
		QuestionType:  models.QuestionTypeTextInput,
		QuestionText:  "type it",
		CorrectAnswer: correct,
	}
}

func TestIsCorrect(t *testing.T) {
	tests := []struct {
		name  string
		q     models.Question
		given string
		want  bool
	}{
		{"multiple choice exact letter", mcQuestion("B"), "B", true},
		{"multiple choice wrong letter", mcQuestion("B"), "A", false},
		{"multiple choice is case sensitive on letters", mcQuestion("B"), "b", false},
		{"text input trims and lowercases", textQuestion("solar"), "  Solar  ", true},
		{"text input mismatch", textQuestion("solar"), "wind", false},
		{"text input stored answer trimmed too", textQuestion(" Solar "), "solar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsCorrect(&tt.q, tt.given))
		})
	}
}

func TestNewRequiresQuestions(t *testing.T) {
	_, err := New(nil, "Guest", uuid.New(), nil)
	assert.ErrorIs(t, err, ErrEmptySession)
}

func TestSessionFlowDeferredScoring(t *testing.T) {
	questions := []models.Question{mcQuestion("A"), mcQuestion("B"), textQuestion("grid")}
	s, err := New(nil, "Guest", uuid.New(), questions)
	require.NoError(t, err)

	snap := s.Snapshot()
	assert.Equal(t, StatePresenting, snap.State)
	assert.Equal(t, 0, snap.Index)
	assert.Equal(t, 3, snap.Total)

	// Q1: correct, but the score only moves on Next.
	correct, err := s.Check("A")
	require.NoError(t, err)
	assert.True(t, correct)
	assert.Equal(t, 0, s.Score())

	finished, err := s.Next(nil)
	require.NoError(t, err)
	assert.False(t, finished)
	assert.Equal(t, 1, s.Score())

	// Q2: wrong answer, then changed before Next; only the re-check counts.
	correct, err = s.Check("B")
	require.NoError(t, err)
	assert.True(t, correct)
	correct, err = s.Check("C")
	require.NoError(t, err)
	assert.False(t, correct)

	finished, err = s.Next(nil)
	require.NoError(t, err)
	assert.False(t, finished)
	assert.Equal(t, 1, s.Score())

	// Q3: text answer, trimmed/case-insensitive.
	correct, err = s.Check("  GRID ")
	require.NoError(t, err)
	assert.True(t, correct)

	finished, err = s.Next(nil)
	require.NoError(t, err)
	assert.True(t, finished)
	assert.Equal(t, 2, s.Score())

	snap = s.Snapshot()
	assert.Equal(t, StateFinished, snap.State)
	assert.Nil(t, snap.Question)
	require.Len(t, snap.Answers, 3)
	assert.True(t, snap.Answers[0].Correct)
	assert.False(t, snap.Answers[1].Correct)
	assert.True(t, snap.Answers[2].Correct)

	// Finished sessions are non-resumable.
	_, err = s.Check("A")
	assert.ErrorIs(t, err, ErrFinished)
	_, err = s.Next(nil)
	assert.ErrorIs(t, err, ErrFinished)
}

func TestSessionScoreBounds(t *testing.T) {
	answers := [][]string{
		{"A", "B", "C"},       // all over the place
		{"A", "A", "A"},       // always A
		{"wrong", "B", "pot"}, // text noise on mc questions
	}
	questions := []models.Question{mcQuestion("A"), mcQuestion("B"), mcQuestion("C")}

	for _, given := range answers {
		s, err := New(nil, "Guest", uuid.New(), questions)
		require.NoError(t, err)

		wantScore := 0
		for _, a := range given {
			correct, err := s.Check(a)
			require.NoError(t, err)
			if correct {
				wantScore++
			}
			_, err = s.Next(nil)
			require.NoError(t, err)
		}

		assert.Equal(t, wantScore, s.Score())
		assert.GreaterOrEqual(t, s.Score(), 0)
		assert.LessOrEqual(t, s.Score(), len(questions))
	}
}

func TestNextRequiresCheck(t *testing.T) {
	s, err := New(nil, "Guest", uuid.New(), []models.Question{mcQuestion("A")})
	require.NoError(t, err)

	_, err = s.Next(nil)
	assert.ErrorIs(t, err, ErrNotChecked)

	_, err = s.Check("")
	assert.ErrorIs(t, err, ErrNoAnswer)
}

func TestCommitFailureKeepsSessionChecked(t *testing.T) {
	s, err := New(nil, "Guest", uuid.New(), []models.Question{mcQuestion("A")})
	require.NoError(t, err)

	_, err = s.Check("A")
	require.NoError(t, err)

	boom := errors.New("store down")
	_, err = s.Next(func(score int, answers []AnswerRecord) error { return boom })
	assert.ErrorIs(t, err, boom)

	// Still checked: score untouched, retry succeeds.
	snap := s.Snapshot()
	assert.Equal(t, StateChecked, snap.State)
	assert.Equal(t, 0, snap.Score)
	assert.Empty(t, snap.Answers)

	var gotScore int
	var gotAnswers []AnswerRecord
	finished, err := s.Next(func(score int, answers []AnswerRecord) error {
		gotScore = score
		gotAnswers = answers
		return nil
	})
	require.NoError(t, err)
	assert.True(t, finished)
	assert.Equal(t, 1, gotScore)
	require.Len(t, gotAnswers, 1)
	assert.True(t, gotAnswers[0].Correct)
}

func TestManagerSweep(t *testing.T) {
	m := NewManager(time.Minute)

	s1, err := New(nil, "Guest", uuid.New(), []models.Question{mcQuestion("A")})
	require.NoError(t, err)
	m.Put(s1)

	s2, err := New(nil, "Guest", uuid.New(), []models.Question{mcQuestion("A")})
	require.NoError(t, err)
	m.Put(s2)
	assert.Equal(t, 2, m.Len())

	got, ok := m.Get(s1.ID)
	require.True(t, ok)
	assert.Same(t, s1, got)

	// Both sessions were just touched; a sweep far in the future evicts them.
	m.sweep(time.Now().Add(2 * time.Minute))
	assert.Equal(t, 0, m.Len())

	_, ok = m.Get(s1.ID)
	assert.False(t, ok)

	m.Remove(s2.ID) // removing an absent session is a no-op
}
