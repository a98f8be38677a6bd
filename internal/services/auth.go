package service

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/nairmahesh/diwali-delights/internal/config"
	"github.com/nairmahesh/diwali-delights/internal/errors"
	"github.com/nairmahesh/diwali-delights/internal/models"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
	ValidateToken(tokenString string) (*models.Claims, error)
	ValidateAPIKey(key string) bool
}

type authService struct {
	cfg    config.Admin
	logger *slog.Logger
}

func NewAuthService(cfg config.Admin, logger *slog.Logger) AuthService {
	return &authService{
		cfg:    cfg,
		logger: logger,
	}
}

// Login checks the admin credentials and issues a session token.
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	if subtle.ConstantTimeCompare([]byte(req.Username), []byte(s.cfg.Username)) != 1 {
		return nil, errors.UnauthorizedError("Invalid username or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("failed admin login attempt", slog.String("username", req.Username))

		return nil, errors.UnauthorizedError("Invalid username or password")
	}

	expiresAt := time.Now().Add(s.cfg.TokenTTL)

	claims := &models.Claims{
		Username: s.cfg.Username,
		Role:     "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.cfg.JWTKey))
	if err != nil {
		return nil, errors.InternalError("Failed to issue session token").WithError(err)
	}

	return &models.LoginResponse{
		Token:     tokenString,
		ExpiresIn: int(s.cfg.TokenTTL.Seconds()),
	}, nil
}

// ValidateToken parses and verifies an admin session token.
func (s *authService) ValidateToken(tokenString string) (*models.Claims, error) {
	claims := &models.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.UnauthorizedError("Unexpected signing method")
		}

		return []byte(s.cfg.JWTKey), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.UnauthorizedError("Invalid or expired token")
	}

	return claims, nil
}

// ValidateAPIKey checks the shared admin_key used by scripted clients.
// An unconfigured key never matches.
func (s *authService) ValidateAPIKey(key string) bool {
	if s.cfg.APIKey == "" || key == "" {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(key), []byte(s.cfg.APIKey)) == 1
}
