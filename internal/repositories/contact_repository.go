package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nairmahesh/diwali-delights/internal/models"
	"github.com/nairmahesh/diwali-delights/internal/utils"
)

type ContactRepository interface {
	Create(ctx context.Context, contact *models.Contact) error
	BulkCreate(ctx context.Context, contacts []models.Contact) (int, error)
	List(ctx context.Context, page, size int) ([]models.Contact, int, error)
	GetByPhone(ctx context.Context, phone string) (*models.Contact, error)
	TouchLastContacted(ctx context.Context, phone string, at time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type contactRepository struct {
	DB *sql.DB
}

func NewContactRepo(db *sql.DB) ContactRepository {
	return &contactRepository{DB: db}
}

func (r *contactRepository) Create(ctx context.Context, contact *models.Contact) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO contacts (id, name, phone, email, relationship, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (phone) DO UPDATE
		SET name = EXCLUDED.name, email = EXCLUDED.email, relationship = EXCLUDED.relationship, notes = EXCLUDED.notes
		RETURNING id, created_at
	`

	return r.DB.QueryRowContext(dbCtx, query,
		contact.ID, contact.Name, contact.Phone, contact.Email, contact.Relationship, contact.Notes,
	).Scan(&contact.ID, &contact.CreatedAt)
}

func (r *contactRepository) BulkCreate(ctx context.Context, contacts []models.Contact) (int, error) {
	dbCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	tx, err := r.DB.BeginTx(dbCtx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO contacts (id, name, phone, email, relationship, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (phone) DO NOTHING
	`

	stmt, err := tx.PrepareContext(dbCtx, query)
	if err != nil {
		return 0, fmt.Errorf("preparing statement: %w", err)
	}
	defer stmt.Close()

	imported := 0

	for _, contact := range contacts {
		result, err := stmt.ExecContext(dbCtx, contact.ID, contact.Name, contact.Phone, contact.Email, contact.Relationship, contact.Notes)
		if err != nil {
			return 0, fmt.Errorf("inserting contact %q: %w", contact.Phone, err)
		}

		rows, err := result.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("failed to get inserted rows: %w", err)
		}

		imported += int(rows)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing transaction: %w", err)
	}

	return imported, nil
}

func (r *contactRepository) List(ctx context.Context, page, size int) ([]models.Contact, int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var total int
	if err := r.DB.QueryRowContext(dbCtx, `SELECT COUNT(*) FROM contacts`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting contacts: %w", err)
	}

	query := `
		SELECT id, name, phone, email, relationship, notes, created_at, last_contacted
		FROM contacts
		ORDER BY name ASC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.DB.QueryContext(dbCtx, query, size, (page-1)*size)
	if err != nil {
		return nil, 0, fmt.Errorf("querying contacts: %w", err)
	}
	defer rows.Close()

	var contacts []models.Contact

	for rows.Next() {
		var contact models.Contact
		if err := rows.Scan(&contact.ID, &contact.Name, &contact.Phone, &contact.Email, &contact.Relationship, &contact.Notes, &contact.CreatedAt, &contact.LastContacted); err != nil {
			return nil, 0, fmt.Errorf("scanning contact: %w", err)
		}

		contacts = append(contacts, contact)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating contacts: %w", err)
	}

	return contacts, total, nil
}

func (r *contactRepository) GetByPhone(ctx context.Context, phone string) (*models.Contact, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, name, phone, email, relationship, notes, created_at, last_contacted
		FROM contacts
		WHERE phone = $1
	`

	contact := &models.Contact{}

	err := r.DB.QueryRowContext(dbCtx, query, phone).Scan(
		&contact.ID, &contact.Name, &contact.Phone, &contact.Email, &contact.Relationship, &contact.Notes, &contact.CreatedAt, &contact.LastContacted,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}

		return nil, fmt.Errorf("scanning contact: %w", err)
	}

	return contact, nil
}

func (r *contactRepository) TouchLastContacted(ctx context.Context, phone string, at time.Time) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	_, err := r.DB.ExecContext(dbCtx, `UPDATE contacts SET last_contacted = $1 WHERE phone = $2`, at, phone)
	if err != nil {
		return fmt.Errorf("failed to update last contacted: %w", err)
	}

	return nil
}

func (r *contactRepository) Delete(ctx context.Context, id uuid.UUID) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}

	deletedRows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get deleted rows: %w", err)
	}

	if deletedRows == 0 {
		return sql.ErrNoRows
	}

	return nil
}
