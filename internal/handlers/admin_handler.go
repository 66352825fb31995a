package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/megawatt-maniacs/backend/internal/dto"
	"github.com/megawatt-maniacs/backend/internal/models"
	"github.com/megawatt-maniacs/backend/internal/services"
)

type AdminHandler struct {
	auth  *services.AuthService
	games *services.GameService
	bank  *services.BankService
}

func NewAdminHandler(auth *services.AuthService, games *services.GameService, bank *services.BankService) *AdminHandler {
	return &AdminHandler{auth: auth, games: games, bank: bank}
}

func (h *AdminHandler) Login(c *fiber.Ctx) error {
	var req dto.AdminLoginRequest
	if err := c.BodyParser(&req); err != nil || req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "Email and password are required",
		})
	}

	token, err := h.auth.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": true, "message": "Invalid credentials",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": "Authentication error",
		})
	}

	return c.JSON(fiber.Map{"error": false, "auth": dto.AdminLoginResponse{AccessToken: token}})
}

// --- Games ---

func (h *AdminHandler) ListGames(c *fiber.Ctx) error {
	games, err := h.games.ListGames()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": "Failed to load games",
		})
	}
	return c.JSON(fiber.Map{"error": false, "games": games})
}

func (h *AdminHandler) CreateGame(c *fiber.Ctx) error {
	var req dto.CreateGameRequest
	if err := c.BodyParser(&req); err != nil || req.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "Title is required",
		})
	}

	game, err := h.games.CreateGame(req.Title, req.Description)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": "Failed to create game",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"error": false, "game": game})
}

func (h *AdminHandler) DeleteGame(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidID(c, "game")
	}
	if err := h.games.DeleteGame(id); err != nil {
		if errors.Is(err, services.ErrGameNotFound) {
			return notFound(c, "Game")
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": "Failed to delete game",
		})
	}
	return c.JSON(fiber.Map{"error": false, "message": "Game deleted"})
}

func (h *AdminHandler) ActivateGame(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidID(c, "game")
	}
	if err := h.games.SetActive(id); err != nil {
		if errors.Is(err, services.ErrGameNotFound) {
			return notFound(c, "Game")
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": "Failed to activate game",
		})
	}
	return c.JSON(fiber.Map{"error": false, "message": "Game activated"})
}

// --- Rounds ---

func (h *AdminHandler) ListRounds(c *fiber.Ctx) error {
	gameID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidID(c, "game")
	}
	rounds, err := h.games.ListRounds(gameID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": "Failed to load rounds",
		})
	}
	return c.JSON(fiber.Map{"error": false, "rounds": rounds})
}

func (h *AdminHandler) CreateRound(c *fiber.Ctx) error {
	gameID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidID(c, "game")
	}
	var req dto.CreateRoundRequest
	if err := c.BodyParser(&req); err != nil || req.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "Title is required",
		})
	}

	round, err := h.games.CreateRound(gameID, req.Title, req.RoundNumber)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": "Failed to create round",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"error": false, "round": round})
}

func (h *AdminHandler) DeleteRound(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidID(c, "round")
	}
	if err := h.games.DeleteRound(id); err != nil {
		if errors.Is(err, services.ErrRoundNotFound) {
			return notFound(c, "Round")
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": "Failed to delete round",
		})
	}
	return c.JSON(fiber.Map{"error": false, "message": "Round deleted"})
}

// --- Questions ---

func (h *AdminHandler) ListQuestions(c *fiber.Ctx) error {
	gameID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidID(c, "game")
	}
	questions, err := h.games.ListQuestions(gameID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": "Failed to load questions",
		})
	}
	return c.JSON(fiber.Map{"error": false, "questions": questions})
}

func (h *AdminHandler) CreateQuestion(c *fiber.Ctx) error {
	gameID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidID(c, "game")
	}
	var req dto.CreateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "Invalid request body",
		})
	}

	question, err := h.games.CreateQuestion(services.QuestionInput{
		GameID:           gameID,
		RoundID:          req.RoundID,
		QuestionText:     req.QuestionText,
		QuestionType:     req.QuestionType,
		AnswerA:          req.AnswerA,
		AnswerB:          req.AnswerB,
		AnswerC:          req.AnswerC,
		AnswerD:          req.AnswerD,
		CorrectAnswer:    req.CorrectAnswer,
		Explanation:      req.Explanation,
		Category:         req.Category,
		Source:           req.Source,
		QuestionImageURL: req.QuestionImageURL,
		ImageCaption:     req.ImageCaption,
	})
	if err != nil {
		// validation failures carry a user-facing message
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"error": false, "question": question})
}

func (h *AdminHandler) DeleteQuestion(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidID(c, "question")
	}
	if err := h.games.DeleteQuestion(id); err != nil {
		if errors.Is(err, services.ErrQuestionNotFound) {
			return notFound(c, "Question")
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": "Failed to delete question",
		})
	}
	return c.JSON(fiber.Map{"error": false, "message": "Question deleted"})
}

// --- Question bank ---

func (h *AdminHandler) ListBank(c *fiber.Ctx) error {
	items, err := h.bank.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": "Failed to load question bank",
		})
	}
	return c.JSON(fiber.Map{"error": false, "items": items})
}

func (h *AdminHandler) CreateBankItem(c *fiber.Ctx) error {
	var req dto.CreateBankItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "Invalid request body",
		})
	}

	item, err := h.bank.Create(models.QuestionBankItem{
		Category:      req.Category,
		Question:      req.Question,
		AnswerA:       req.AnswerA,
		AnswerB:       req.AnswerB,
		AnswerC:       req.AnswerC,
		CorrectAnswer: req.CorrectAnswer,
		Source:        req.Source,
	})
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"error": false, "item": item})
}

func (h *AdminHandler) DeleteBankItem(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidID(c, "bank item")
	}
	if err := h.bank.Delete(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": "Failed to delete bank item",
		})
	}
	return c.JSON(fiber.Map{"error": false, "message": "Bank item deleted"})
}

// ImportBank copies selected bank items into a game as one batch; any
// failing insert aborts the whole import.
func (h *AdminHandler) ImportBank(c *fiber.Ctx) error {
	var req dto.ImportBankRequest
	if err := c.BodyParser(&req); err != nil || len(req.ItemIDs) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "game_id and item_ids are required",
		})
	}

	imported, err := h.bank.ImportToGame(req.GameID, req.ItemIDs)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrGameNotFound):
			return notFound(c, "Game")
		case errors.Is(err, services.ErrBankItemsNotFound):
			return notFound(c, "Bank item")
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": "Failed to import questions",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"error": false, "result": dto.ImportBankResponse{Imported: imported},
	})
}

func invalidID(c *fiber.Ctx, what string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": true, "message": "Invalid " + what + " ID",
	})
}

func notFound(c *fiber.Ctx, what string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error": true, "message": what + " not found",
	})
}
