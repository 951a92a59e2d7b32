package user

import (
	"context"

	"codepulse/internal/core/user"
)

// UserRepository is the outbound port for editor accounts.
type UserRepository interface {
	Create(ctx context.Context, u *user.User) (*user.User, error)
	FindByEmail(ctx context.Context, email string) (*user.User, error)
}

type LoginResponse struct {
	Email     string   `json:"email"`
	Roles     []string `json:"roles"`
	Token     string   `json:"token"`
	ExpiresAt int64    `json:"expiresAt"`
}

type UserDTO struct {
	ID    string   `json:"id"`
	Email string   `json:"email"`
	Roles []string `json:"roles"`
}
