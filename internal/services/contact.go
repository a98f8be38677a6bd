package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/nairmahesh/diwali-delights/internal/errors"
	"github.com/nairmahesh/diwali-delights/internal/models"
	repository "github.com/nairmahesh/diwali-delights/internal/repositories"
)

type ContactService interface {
	CreateContact(ctx context.Context, req *models.CreateContactRequest) (*models.Contact, error)
	BulkImport(ctx context.Context, req *models.BulkImportContactsRequest) (int, error)
	ListContacts(ctx context.Context, page, size int) ([]models.Contact, int, error)
	DeleteContact(ctx context.Context, id uuid.UUID) error
}

type contactService struct {
	repo repository.ContactRepository
}

func NewContactService(repo repository.ContactRepository) ContactService {
	return &contactService{repo: repo}
}

func (s *contactService) CreateContact(ctx context.Context, req *models.CreateContactRequest) (*models.Contact, error) {
	contact := &models.Contact{
		ID:           uuid.New(),
		Name:         req.Name,
		Phone:        req.Phone,
		Email:        req.Email,
		Relationship: req.Relationship,
		Notes:        req.Notes,
	}

	if err := s.repo.Create(ctx, contact); err != nil {
		return nil, errors.DatabaseError("Failed to save contact").WithError(err)
	}

	return contact, nil
}

// BulkImport skips entries whose phone number already exists and reports
// how many rows were actually added.
func (s *contactService) BulkImport(ctx context.Context, req *models.BulkImportContactsRequest) (int, error) {
	contacts := make([]models.Contact, 0, len(req.Contacts))

	for _, entry := range req.Contacts {
		contacts = append(contacts, models.Contact{
			ID:           uuid.New(),
			Name:         entry.Name,
			Phone:        entry.Phone,
			Email:        entry.Email,
			Relationship: entry.Relationship,
			Notes:        entry.Notes,
		})
	}

	imported, err := s.repo.BulkCreate(ctx, contacts)
	if err != nil {
		return 0, errors.DatabaseError("Failed to import contacts").WithError(err)
	}

	return imported, nil
}

func (s *contactService) ListContacts(ctx context.Context, page, size int) ([]models.Contact, int, error) {
	contacts, total, err := s.repo.List(ctx, page, size)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to fetch contacts").WithError(err)
	}

	return contacts, total, nil
}

func (s *contactService) DeleteContact(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return errors.NotFoundError("Contact not found").WithError(err)
	}

	return nil
}
