package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/nairmahesh/diwali-delights/internal/models"
	"github.com/stretchr/testify/mock"
)

type ContactRepository struct {
	mock.Mock
}

func (m *ContactRepository) Create(ctx context.Context, contact *models.Contact) error {
	args := m.Called(ctx, contact)

	return args.Error(0)
}

func (m *ContactRepository) BulkCreate(ctx context.Context, contacts []models.Contact) (int, error) {
	args := m.Called(ctx, contacts)

	return args.Int(0), args.Error(1)
}

func (m *ContactRepository) List(ctx context.Context, page, size int) ([]models.Contact, int, error) {
	args := m.Called(ctx, page, size)
	if contacts, ok := args.Get(0).([]models.Contact); ok {
		return contacts, args.Int(1), args.Error(2)
	}

	return nil, args.Int(1), args.Error(2)
}

func (m *ContactRepository) GetByPhone(ctx context.Context, phone string) (*models.Contact, error) {
	args := m.Called(ctx, phone)
	if contact, ok := args.Get(0).(*models.Contact); ok {
		return contact, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *ContactRepository) TouchLastContacted(ctx context.Context, phone string, at time.Time) error {
	args := m.Called(ctx, phone, at)

	return args.Error(0)
}

func (m *ContactRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}
