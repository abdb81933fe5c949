package auth

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/auraswift/pos-backend-go/internal/domain/auth"
	"github.com/auraswift/pos-backend-go/internal/domain/business"
	"github.com/auraswift/pos-backend-go/internal/domain/role"
	"github.com/auraswift/pos-backend-go/internal/domain/user"
	"github.com/auraswift/pos-backend-go/internal/pkg/database"
	"github.com/auraswift/pos-backend-go/internal/pkg/jwt"
	"github.com/auraswift/pos-backend-go/internal/repository/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/ulule/limiter/v3"
	"golang.org/x/crypto/bcrypt"
)

// permissionCache is the slice of the RBAC service the auth flows need:
// dropping a user's cached permission set after identity changes.
type permissionCache interface {
	InvalidateCache(userID string)
}

type authServiceImpl struct {
	db              *database.DB
	userRepo        user.UserRepository
	businessRepo    business.BusinessRepository
	sessionRepo     auth.SessionRepository
	roleRepo        role.RoleRepository
	userRoleRepo    role.UserRoleRepository
	jwtService      jwt.Service
	loginLimiter    *limiter.Limiter
	permissions     permissionCache
	maxStartingCash decimal.Decimal
}

func NewAuthService(
	db *database.DB,
	userRepo user.UserRepository,
	businessRepo business.BusinessRepository,
	sessionRepo auth.SessionRepository,
	roleRepo role.RoleRepository,
	userRoleRepo role.UserRoleRepository,
	jwtService jwt.Service,
	loginLimiter *limiter.Limiter,
	permissions permissionCache,
	defaultMaxStartingCash string,
) auth.AuthService {
	maxCash, err := decimal.NewFromString(defaultMaxStartingCash)
	if err != nil {
		maxCash = decimal.NewFromInt(500)
	}
	return &authServiceImpl{
		db:              db,
		userRepo:        userRepo,
		businessRepo:    businessRepo,
		sessionRepo:     sessionRepo,
		roleRepo:        roleRepo,
		userRoleRepo:    userRoleRepo,
		jwtService:      jwtService,
		loginLimiter:    loginLimiter,
		permissions:     permissions,
		maxStartingCash: maxCash,
	}
}

// RegisterBusiness implements auth.AuthService. The business, its admin user
// and the system roles are created in one transaction.
func (s *authServiceImpl) RegisterBusiness(ctx context.Context, req auth.RegisterBusinessRequest, track auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	if _, err := s.userRepo.GetByEmail(ctx, req.Email); err == nil {
		return auth.TokenResponse{}, user.ErrEmailExists
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	newBusiness := business.Business{
		ID:              uuid.NewString(),
		Name:            req.BusinessName,
		MaxStartingCash: s.maxStartingCash,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	admin := user.User{
		ID:           uuid.NewString(),
		BusinessID:   newBusiness.ID,
		Email:        strings.ToLower(req.Email),
		PasswordHash: string(passwordHash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         user.RoleAdmin,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = sqlite.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if _, err := s.businessRepo.Create(txCtx, newBusiness); err != nil {
			return fmt.Errorf("create business: %w", err)
		}
		if _, err := s.userRepo.Create(txCtx, admin); err != nil {
			return fmt.Errorf("create admin user: %w", err)
		}

		var adminRoleID string
		for _, seed := range role.SystemDefaults(newBusiness.ID) {
			seed.ID = uuid.NewString()
			seed.CreatedAt = now
			seed.UpdatedAt = now
			created, err := s.roleRepo.Create(txCtx, seed)
			if err != nil {
				return fmt.Errorf("seed role %s: %w", seed.Name, err)
			}
			if created.Name == role.SystemRoleAdmin {
				adminRoleID = created.ID
			}
		}

		_, err := s.userRoleRepo.Assign(txCtx, role.UserRole{
			ID:         uuid.NewString(),
			UserID:     admin.ID,
			RoleID:     adminRoleID,
			AssignedBy: admin.ID,
			CreatedAt:  now,
		})
		return err
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	slog.Info("business registered", "business_id", newBusiness.ID, "admin_id", admin.ID)
	return s.issueTokens(ctx, admin, track)
}

// Login implements auth.AuthService. Failed attempts count against a
// per-email-and-terminal window; once the window fills, login is refused
// before the password is even checked.
func (s *authServiceImpl) Login(ctx context.Context, req auth.LoginRequest, track auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	key := lockoutKey(req.Email, req.TerminalID)
	limit, err := s.loginLimiter.Peek(ctx, key)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("check login limit: %w", err)
	}
	// Remaining hits zero once the window holds LockoutLimit failures.
	if limit.Remaining == 0 {
		slog.Warn("login locked out", "email", req.Email, "terminal_id", req.TerminalID)
		return auth.TokenResponse{}, auth.ErrRateLimited
	}

	found, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		s.recordFailure(ctx, key)
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if !found.IsActive {
		return auth.TokenResponse{}, user.ErrUserInactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte(req.Password)); err != nil {
		s.recordFailure(ctx, key)
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	if _, err := s.loginLimiter.Reset(ctx, key); err != nil {
		slog.Warn("reset login limit failed", "error", err)
	}
	s.permissions.InvalidateCache(found.ID)

	return s.issueTokens(ctx, found, track)
}

// Logout implements auth.AuthService.
func (s *authServiceImpl) Logout(ctx context.Context, refreshToken string, userID string) error {
	if err := s.sessionRepo.RevokeByTokenHash(ctx, hashToken(refreshToken)); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	s.permissions.InvalidateCache(userID)
	return nil
}

// RefreshToken implements auth.AuthService. The refresh token must decode,
// match a live session row and belong to an active user.
func (s *authServiceImpl) RefreshToken(ctx context.Context, req auth.RefreshTokenRequest) (auth.AccessTokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.AccessTokenResponse{}, err
	}

	userID, err := s.jwtService.DecodeRefreshToken(req.RefreshToken)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	session, err := s.sessionRepo.GetByTokenHash(ctx, hashToken(req.RefreshToken))
	if err != nil {
		return auth.AccessTokenResponse{}, err
	}
	if session.UserID != userID {
		return auth.AccessTokenResponse{}, auth.ErrInvalidSession
	}
	if session.RevokedAt != nil {
		return auth.AccessTokenResponse{}, auth.ErrSessionRevoked
	}
	if time.Now().After(session.ExpiresAt) {
		return auth.AccessTokenResponse{}, auth.ErrInvalidSession
	}

	found, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return auth.AccessTokenResponse{}, err
	}
	if !found.IsActive {
		return auth.AccessTokenResponse{}, user.ErrUserInactive
	}

	accessToken, expiresAt, err := s.jwtService.GenerateAccessToken(found.ID, found.Email, found.BusinessID, found.Role)
	if err != nil {
		return auth.AccessTokenResponse{}, fmt.Errorf("generate access token: %w", err)
	}
	return auth.AccessTokenResponse{AccessToken: accessToken, AccessTokenExpiresIn: expiresAt}, nil
}

// ValidateSession implements auth.AuthService.
func (s *authServiceImpl) ValidateSession(ctx context.Context, accessToken string) (user.UserResponse, error) {
	claims, err := s.jwtService.DecodeAccessToken(accessToken)
	if err != nil {
		return user.UserResponse{}, auth.ErrInvalidToken
	}

	found, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return user.UserResponse{}, err
	}
	if !found.IsActive {
		return user.UserResponse{}, user.ErrUserInactive
	}
	return user.ToResponse(found), nil
}

// CreateUser implements auth.AuthService.
func (s *authServiceImpl) CreateUser(ctx context.Context, actorID string, businessID string, req user.CreateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	if _, err := s.userRepo.GetByEmail(ctx, req.Email); err == nil {
		return user.UserResponse{}, user.ErrEmailExists
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	newUser := user.User{
		ID:           uuid.NewString(),
		BusinessID:   businessID,
		Email:        strings.ToLower(req.Email),
		PasswordHash: string(passwordHash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         user.Role(req.Role),
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.userRepo.Create(ctx, newUser)
	if err != nil {
		return user.UserResponse{}, err
	}

	slog.Info("user created", "user_id", created.ID, "role", created.Role, "actor_id", actorID)
	return user.ToResponse(created), nil
}

// UpdateUser implements auth.AuthService.
func (s *authServiceImpl) UpdateUser(ctx context.Context, actorID string, businessID string, req user.UpdateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	target, err := s.userRepo.GetByID(ctx, req.ID)
	if err != nil {
		return user.UserResponse{}, err
	}
	if target.BusinessID != businessID {
		return user.UserResponse{}, user.ErrBusinessMismatch
	}

	if req.FirstName != nil {
		target.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		target.LastName = *req.LastName
	}
	if req.Role != nil {
		target.Role = user.Role(*req.Role)
	}
	if req.IsActive != nil {
		target.IsActive = *req.IsActive
	}
	if req.Password != nil {
		passwordHash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return user.UserResponse{}, fmt.Errorf("hash password: %w", err)
		}
		target.PasswordHash = string(passwordHash)
	}
	target.UpdatedAt = time.Now()

	if err := s.userRepo.Update(ctx, target); err != nil {
		return user.UserResponse{}, err
	}

	// A deactivated user must lose any live sessions immediately.
	if req.IsActive != nil && !*req.IsActive {
		if err := s.sessionRepo.RevokeAllForUser(ctx, target.ID); err != nil {
			slog.Warn("revoke sessions for deactivated user failed", "user_id", target.ID, "error", err)
		}
	}
	s.permissions.InvalidateCache(target.ID)

	return user.ToResponse(target), nil
}

// DeleteUser implements auth.AuthService.
func (s *authServiceImpl) DeleteUser(ctx context.Context, actorID string, businessID string, targetID string) error {
	if actorID == targetID {
		return user.ErrSelfDeleteDenied
	}

	if err := s.userRepo.Delete(ctx, targetID, businessID); err != nil {
		return err
	}
	if err := s.sessionRepo.RevokeAllForUser(ctx, targetID); err != nil {
		slog.Warn("revoke sessions for deleted user failed", "user_id", targetID, "error", err)
	}
	s.permissions.InvalidateCache(targetID)

	slog.Info("user deleted", "user_id", targetID, "actor_id", actorID)
	return nil
}

// GetUsersByBusiness implements auth.AuthService.
func (s *authServiceImpl) GetUsersByBusiness(ctx context.Context, businessID string) ([]user.UserResponse, error) {
	users, err := s.userRepo.ListByBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}

	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, user.ToResponse(u))
	}
	return responses, nil
}

func (s *authServiceImpl) issueTokens(ctx context.Context, u user.User, track auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	accessToken, accessExpiresAt, err := s.jwtService.GenerateAccessToken(u.ID, u.Email, u.BusinessID, u.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("generate access token: %w", err)
	}
	refreshToken, refreshExpiresAt, err := s.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("generate refresh token: %w", err)
	}

	session := auth.Session{
		ID:        uuid.NewString(),
		UserID:    u.ID,
		TokenHash: hashToken(refreshToken),
		ExpiresAt: time.Unix(refreshExpiresAt, 0),
		UserAgent: track.UserAgent,
		IPAddress: track.IPAddress,
		CreatedAt: time.Now(),
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return auth.TokenResponse{}, fmt.Errorf("create session: %w", err)
	}

	return auth.TokenResponse{
		AccessToken:           accessToken,
		AccessTokenExpiresIn:  accessExpiresAt,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresIn: refreshExpiresAt,
		User:                  user.ToResponse(u),
	}, nil
}

func (s *authServiceImpl) recordFailure(ctx context.Context, key string) {
	if _, err := s.loginLimiter.Get(ctx, key); err != nil {
		slog.Warn("record login failure failed", "error", err)
	}
}

// lockoutKey scopes failed attempts to an email on one terminal so a locked
// till does not lock the same account out of other registers.
func lockoutKey(email, terminalID string) string {
	return strings.ToLower(email) + "|" + terminalID
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}
