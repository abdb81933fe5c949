package jwt

import (
	"fmt"
	"time"

	"github.com/auraswift/pos-backend-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

type Service interface {
	GenerateAccessToken(userID string, email string, businessID string, role user.Role) (token string, expiresAt int64, err error)
	GenerateRefreshToken(userID string) (token string, expiresAt int64, err error)
	DecodeAccessToken(tokenString string) (Claims, error)
	DecodeRefreshToken(tokenString string) (userID string, err error)
	JWTAuth() *jwtauth.JWTAuth
}

// Claims is the decoded identity carried by an access token.
type Claims struct {
	UserID     string
	Email      string
	BusinessID string
	Role       user.Role
}

type JWTService struct {
	secretKey                  string
	accessTokenExpirationTime  string
	refreshTokenExpirationTime string
	tokenAuth                  *jwtauth.JWTAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime string, refreshTokenExpirationTime string) Service {
	return &JWTService{
		secretKey:                  secretKey,
		accessTokenExpirationTime:  accessTokenExpirationTime,
		refreshTokenExpirationTime: refreshTokenExpirationTime,
		tokenAuth:                  jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) GenerateAccessToken(userID string, email string, businessID string, role user.Role) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.accessTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"user_id":     userID,
		"email":       email,
		"business_id": businessID,
		"role":        string(role),
		"type":        "access",
		"exp":         expiresAt,
	})
	return tokenString, expiresAt, err
}

func (j *JWTService) GenerateRefreshToken(userID string) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.refreshTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	// The jti keeps tokens unique even when two are issued for the same
	// user within the same second; session rows are keyed by token hash.
	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"user_id": userID,
		"type":    "refresh",
		"jti":     uuid.NewString(),
		"iat":     time.Now().Unix(),
		"exp":     expiresAt,
	})
	return tokenString, expiresAt, err
}

func (j *JWTService) DecodeAccessToken(tokenString string) (Claims, error) {
	tok, err := j.tokenAuth.Decode(tokenString)
	if err != nil {
		return Claims{}, fmt.Errorf("decode access token: %w", err)
	}

	if typ, ok := tok.Get("type"); !ok || typ != "access" {
		return Claims{}, fmt.Errorf("token is not an access token")
	}

	claims := Claims{}
	if v, ok := tok.Get("user_id"); ok {
		claims.UserID, _ = v.(string)
	}
	if v, ok := tok.Get("email"); ok {
		claims.Email, _ = v.(string)
	}
	if v, ok := tok.Get("business_id"); ok {
		claims.BusinessID, _ = v.(string)
	}
	if v, ok := tok.Get("role"); ok {
		if s, isStr := v.(string); isStr {
			claims.Role = user.Role(s)
		}
	}
	if claims.UserID == "" {
		return Claims{}, fmt.Errorf("token has no user_id claim")
	}
	return claims, nil
}

func (j *JWTService) DecodeRefreshToken(tokenString string) (string, error) {
	tok, err := j.tokenAuth.Decode(tokenString)
	if err != nil {
		return "", fmt.Errorf("decode refresh token: %w", err)
	}

	if typ, ok := tok.Get("type"); !ok || typ != "refresh" {
		return "", fmt.Errorf("token is not a refresh token")
	}

	v, ok := tok.Get("user_id")
	if !ok {
		return "", fmt.Errorf("token has no user_id claim")
	}
	userID, ok := v.(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("token has no user_id claim")
	}
	return userID, nil
}
