package mocks

import (
	"context"

	"github.com/nairmahesh/diwali-delights/internal/models"
	"github.com/stretchr/testify/mock"
)

type CardService struct {
	mock.Mock
}

func (m *CardService) Render(ctx context.Context, req *models.GreetingRequest) ([]byte, string, error) {
	args := m.Called(ctx, req)
	if data, ok := args.Get(0).([]byte); ok {
		return data, args.String(1), args.Error(2)
	}

	return nil, args.String(1), args.Error(2)
}
