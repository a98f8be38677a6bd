package mocks

import (
	"context"

	"github.com/nairmahesh/diwali-delights/internal/models"
	"github.com/stretchr/testify/mock"
)

type AuthService struct {
	mock.Mock
}

func (m *AuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	args := m.Called(ctx, req)
	if resp, ok := args.Get(0).(*models.LoginResponse); ok {
		return resp, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *AuthService) ValidateToken(tokenString string) (*models.Claims, error) {
	args := m.Called(tokenString)
	if claims, ok := args.Get(0).(*models.Claims); ok {
		return claims, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *AuthService) ValidateAPIKey(key string) bool {
	args := m.Called(key)

	return args.Bool(0)
}
