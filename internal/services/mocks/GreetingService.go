package mocks

import (
	"github.com/nairmahesh/diwali-delights/internal/models"
	"github.com/stretchr/testify/mock"
)

type GreetingService struct {
	mock.Mock
}

func (m *GreetingService) Relationships() []models.Relationship {
	args := m.Called()
	if relationships, ok := args.Get(0).([]models.Relationship); ok {
		return relationships
	}

	return nil
}

func (m *GreetingService) Templates(relationshipID string) ([]string, error) {
	args := m.Called(relationshipID)
	if templates, ok := args.Get(0).([]string); ok {
		return templates, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *GreetingService) Artworks() []models.Artwork {
	args := m.Called()
	if artworks, ok := args.Get(0).([]models.Artwork); ok {
		return artworks
	}

	return nil
}

func (m *GreetingService) ArtworkByID(id string) (*models.Artwork, error) {
	args := m.Called(id)
	if artwork, ok := args.Get(0).(*models.Artwork); ok {
		return artwork, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *GreetingService) Preview(req *models.GreetingRequest) (*models.GreetingPreview, error) {
	args := m.Called(req)
	if preview, ok := args.Get(0).(*models.GreetingPreview); ok {
		return preview, args.Error(1)
	}

	return nil, args.Error(1)
}
