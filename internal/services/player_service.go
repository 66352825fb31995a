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
	ErrEmailTaken     = errors.New("an account with this email already exists")
	ErrPlayerNotFound = errors.New("no account found with this email")
)

type PlayerService struct {
	db *gorm.DB
}

func NewPlayerService(db *gorm.DB) *PlayerService {
	return &PlayerService{db: db}
}

// Signup creates a player on first visit. Emails are stored lowercased so
// lookups are case-insensitive.
func (s *PlayerService) Signup(name, email string) (*models.Player, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" {
		return nil, errors.New("name and email are required")
	}

	var existing models.Player
	if err := s.db.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing account: %w", err)
	}

	player := models.Player{Name: name, Email: email}
	if err := s.db.Create(&player).Error; err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}
	return &player, nil
}

// Login finds an existing player by email.
func (s *PlayerService) Login(email string) (*models.Player, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, errors.New("email is required")
	}

	var player models.Player
	if err := s.db.Where("email = ?", email).First(&player).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to load player: %w", err)
	}
	return &player, nil
}

func (s *PlayerService) Get(id uuid.UUID) (*models.Player, error) {
	var player models.Player
	if err := s.db.First(&player, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to load player: %w", err)
	}
	return &player, nil
}
