package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/nairmahesh/diwali-delights/internal/models"
	"github.com/stretchr/testify/mock"
)

type ContactService struct {
	mock.Mock
}

func (m *ContactService) CreateContact(ctx context.Context, req *models.CreateContactRequest) (*models.Contact, error) {
	args := m.Called(ctx, req)
	if contact, ok := args.Get(0).(*models.Contact); ok {
		return contact, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *ContactService) BulkImport(ctx context.Context, req *models.BulkImportContactsRequest) (int, error) {
	args := m.Called(ctx, req)

	return args.Int(0), args.Error(1)
}

func (m *ContactService) ListContacts(ctx context.Context, page, size int) ([]models.Contact, int, error) {
	args := m.Called(ctx, page, size)
	if contacts, ok := args.Get(0).([]models.Contact); ok {
		return contacts, args.Int(1), args.Error(2)
	}

	return nil, args.Int(1), args.Error(2)
}

func (m *ContactService) DeleteContact(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}
