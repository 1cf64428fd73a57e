package auth

import (
	"context"

	"github.com/workzen/workzen-backend-go/internal/domain/user"
)

// AuthService is the identity collaborator: it authenticates credentials and
// issues tokens. The leave engine trusts the (user id, role) pair it yields.
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	Register(ctx context.Context, req user.RegisterRequest) (user.UserResponse, error)
	ChangePassword(ctx context.Context, actor user.Actor, req ChangePasswordRequest) error
	Refresh(ctx context.Context, refreshToken string) (TokenResponse, error)
}
