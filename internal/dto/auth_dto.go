package dto

import "github.com/dymun-conference/portal-backend/internal/models"

// ===== Request =====

type LoginRequest struct {
	Gmail    string `json:"gmail"`
	Password string `json:"password"`
}

// ===== Response =====

// LoginResponse carries the sanitized user; AccessToken is set only in
// token auth mode.
type LoginResponse struct {
	User        models.User `json:"user"`
	AccessToken string      `json:"accessToken,omitempty"`
}

type UserResponse struct {
	User models.User `json:"user"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
