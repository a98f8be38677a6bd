package models

import (
	"time"

	"github.com/google/uuid"
)

type Contact struct {
	ID            uuid.UUID  `json:"id"`
	Name          string     `json:"name"`
	Phone         string     `json:"phone"`
	Email         string     `json:"email,omitempty"`
	Relationship  string     `json:"relationship"`
	Notes         string     `json:"notes,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	LastContacted *time.Time `json:"last_contacted,omitempty"`
}

type CreateContactRequest struct {
	Name         string `json:"name" validate:"required,min=2,max=100"`
	Phone        string `json:"phone" validate:"required,min=10,max=15"`
	Email        string `json:"email,omitempty" validate:"omitempty,email"`
	Relationship string `json:"relationship" validate:"required"`
	Notes        string `json:"notes,omitempty" validate:"omitempty,max=500"`
}

type BulkImportContactsRequest struct {
	Contacts []CreateContactRequest `json:"contacts" validate:"required,min=1,dive"`
}
