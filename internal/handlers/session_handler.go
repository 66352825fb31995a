package handlers

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/megawatt-maniacs/backend/internal/dto"
	"github.com/megawatt-maniacs/backend/internal/services"
	"github.com/megawatt-maniacs/backend/internal/session"
)

type SessionHandler struct {
	sessions    *session.Manager
	games       *services.GameService
	players     *services.PlayerService
	leaderboard *services.LeaderboardService
}

func NewSessionHandler(
	sessions *session.Manager,
	games *services.GameService,
	players *services.PlayerService,
	leaderboard *services.LeaderboardService,
) *SessionHandler {
	return &SessionHandler{
		sessions:    sessions,
		games:       games,
		players:     players,
		leaderboard: leaderboard,
	}
}

// Start loads the current game and its questions and opens a session. A
// missing player_id means guest play: the score never touches the store.
func (h *SessionHandler) Start(c *fiber.Ctx) error {
	var req dto.StartSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "Invalid request body",
		})
	}

	playerName := "Guest"
	if req.PlayerID != nil {
		player, err := h.players.Get(*req.PlayerID)
		if err != nil {
			if errors.Is(err, services.ErrPlayerNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
					"error": true, "message": "Please sign up first",
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": true, "message": "Failed to load player",
			})
		}
		playerName = player.Name
	}

	game, err := h.games.CurrentGame()
	if err != nil {
		if errors.Is(err, services.ErrNoGames) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": true, "message": "No games available",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": "Failed to load game",
		})
	}

	questions, err := h.games.QuestionsForGame(game.ID)
	if err != nil {
		if errors.Is(err, services.ErrNoQuestions) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": true, "message": "No questions available",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": "Failed to load questions",
		})
	}

	sess, err := session.New(req.PlayerID, playerName, game.ID, questions)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": "Failed to start game",
		})
	}
	h.sessions.Put(sess)

	snap := sess.Snapshot()
	view := dto.NewQuestionView(snap.Question, snap.Index, snap.Total)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"error": false,
		"session": dto.SessionStateResponse{
			SessionID: sess.ID,
			State:     snap.State,
			Score:     snap.Score,
			Question:  &view,
		},
		"game": fiber.Map{"id": game.ID, "title": game.Title},
	})
}

func (h *SessionHandler) Get(c *fiber.Ctx) error {
	sess, ok := h.lookup(c)
	if !ok {
		return sessionNotFound(c)
	}

	snap := sess.Snapshot()
	resp := dto.SessionStateResponse{
		SessionID: sess.ID,
		State:     snap.State,
		Score:     snap.Score,
	}
	if snap.Question != nil {
		view := dto.NewQuestionView(snap.Question, snap.Index, snap.Total)
		resp.Question = &view
	}
	return c.JSON(fiber.Map{"error": false, "session": resp})
}

// Answer checks the submitted answer against the current question and
// reveals the correct answer and explanation.
func (h *SessionHandler) Answer(c *fiber.Ctx) error {
	sess, ok := h.lookup(c)
	if !ok {
		return sessionNotFound(c)
	}

	var req dto.AnswerRequest
	if err := c.BodyParser(&req); err != nil || req.Answer == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "An answer is required",
		})
	}

	correct, err := sess.Check(req.Answer)
	if err != nil {
		return sessionTransitionError(c, err)
	}

	snap := sess.Snapshot()
	return c.JSON(fiber.Map{
		"error": false,
		"check": dto.CheckResponse{
			Correct:       correct,
			CorrectAnswer: snap.Question.CorrectAnswer,
			Explanation:   snap.Question.Explanation,
			Source:        snap.Question.Source,
		},
	})
}

// Next advances past a checked question. On the last question it persists
// the play (signed-up players only) and returns the final result.
func (h *SessionHandler) Next(c *fiber.Ctx) error {
	sess, ok := h.lookup(c)
	if !ok {
		return sessionNotFound(c)
	}

	result := dto.FinalResult{}
	commit := func(score int, answers []session.AnswerRecord) error {
		result.FinalScore = score
		result.Breakdown = answers
		if sess.PlayerID == nil {
			return nil
		}
		entry, newTotal, err := h.leaderboard.RecordPlay(*sess.PlayerID, sess.GameID, score, answers)
		if err != nil {
			return err
		}
		result.TotalScore = newTotal
		if rank, err := h.leaderboard.PlayRank(entry.Score, &entry.CreatedAt); err == nil {
			result.Rank = rank
			result.RankOrdinal = FormatOrdinal(rank)
		}
		return nil
	}

	finished, err := sess.Next(commit)
	if err != nil {
		if errors.Is(err, session.ErrFinished) || errors.Is(err, session.ErrNotChecked) {
			return sessionTransitionError(c, err)
		}
		slog.Error("failed to save score", "error", err, "session_id", sess.ID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": "Failed to save score",
		})
	}

	if !finished {
		snap := sess.Snapshot()
		view := dto.NewQuestionView(snap.Question, snap.Index, snap.Total)
		return c.JSON(fiber.Map{
			"error": false,
			"next":  dto.NextResponse{Finished: false, Question: &view},
		})
	}

	// Guest plays are never persisted: rank among stored rows by raw score.
	if sess.PlayerID == nil {
		if rank, err := h.leaderboard.PlayRank(int64(result.FinalScore), nil); err == nil {
			result.Rank = rank
			result.RankOrdinal = FormatOrdinal(rank)
		}
	}

	snap := sess.Snapshot()
	result.Total = snap.Total
	result.ScoreMessage = ScoreMessage(result.FinalScore)
	h.sessions.Remove(sess.ID)

	return c.JSON(fiber.Map{
		"error": false,
		"next":  dto.NextResponse{Finished: true, Result: &result},
	})
}

func (h *SessionHandler) lookup(c *fiber.Ctx) (*session.Session, bool) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, false
	}
	return h.sessions.Get(id)
}

func sessionNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error": true, "message": "Session not found or expired",
	})
}

func sessionTransitionError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusConflict).JSON(fiber.Map{
		"error": true, "message": err.Error(),
	})
}

// ScoreMessage mirrors the results-screen encouragement thresholds.
func ScoreMessage(score int) string {
	switch {
	case score == 0:
		return "Check out the leaderboard!"
	case score >= 8:
		return "You're a 500 kW Brainiac!"
	case score >= 5:
		return "Watts up! You're electrifying!"
	case score >= 3:
		return "Good energy! Keep charging up!"
	}
	return "Keep learning, you'll power up!"
}

// FormatOrdinal renders a rank as its ordinal form (1 -> 1st).
func FormatOrdinal(n int) string {
	rem10, rem100 := n%10, n%100
	switch {
	case rem10 == 1 && rem100 != 11:
		return fmt.Sprintf("%dst", n)
	case rem10 == 2 && rem100 != 12:
		return fmt.Sprintf("%dnd", n)
	case rem10 == 3 && rem100 != 13:
		return fmt.Sprintf("%drd", n)
	}
	return fmt.Sprintf("%dth", n)
}
