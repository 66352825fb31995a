package dto

import "github.com/google/uuid"

type SignupRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type LoginRequest struct {
	Email string `json:"email"`
}

type PlayerResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	TotalScore int64     `json:"total_score"`
}

type AdminLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AdminLoginResponse struct {
	AccessToken string `json:"access_token"`
}
