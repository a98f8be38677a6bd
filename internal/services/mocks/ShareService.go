package mocks

import (
	"net/url"

	"github.com/nairmahesh/diwali-delights/internal/models"
	"github.com/stretchr/testify/mock"
)

type ShareService struct {
	mock.Mock
}

func (m *ShareService) Encode(payload *models.SharePayload) string {
	args := m.Called(payload)

	return args.String(0)
}

func (m *ShareService) Decode(query url.Values) (*models.SharePayload, error) {
	args := m.Called(query)
	if payload, ok := args.Get(0).(*models.SharePayload); ok {
		return payload, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *ShareService) BuildMeta(payload *models.SharePayload, canonicalURL string) models.ShareMeta {
	args := m.Called(payload, canonicalURL)

	return args.Get(0).(models.ShareMeta)
}
