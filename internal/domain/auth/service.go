package auth

import (
	"context"

	"github.com/auraswift/pos-backend-go/internal/domain/user"
)

type AuthService interface {
	RegisterBusiness(ctx context.Context, req RegisterBusinessRequest, track SessionTrackingRequest) (TokenResponse, error)
	Login(ctx context.Context, req LoginRequest, track SessionTrackingRequest) (TokenResponse, error)
	Logout(ctx context.Context, refreshToken string, userID string) error
	RefreshToken(ctx context.Context, req RefreshTokenRequest) (AccessTokenResponse, error)
	ValidateSession(ctx context.Context, accessToken string) (user.UserResponse, error)

	CreateUser(ctx context.Context, actorID string, businessID string, req user.CreateUserRequest) (user.UserResponse, error)
	UpdateUser(ctx context.Context, actorID string, businessID string, req user.UpdateUserRequest) (user.UserResponse, error)
	DeleteUser(ctx context.Context, actorID string, businessID string, targetID string) error
	GetUsersByBusiness(ctx context.Context, businessID string) ([]user.UserResponse, error)
}
