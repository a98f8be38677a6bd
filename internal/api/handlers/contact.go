package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/nairmahesh/diwali-delights/internal/api/middleware"
	"github.com/nairmahesh/diwali-delights/internal/models"
	service "github.com/nairmahesh/diwali-delights/internal/services"
	"github.com/nairmahesh/diwali-delights/internal/utils"
	"github.com/nairmahesh/diwali-delights/internal/utils/response"
)

type ContactHandler struct {
	contactService service.ContactService
	validator      *validator.Validate
}

func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService, validator: validator.New()}
}

func (h *ContactHandler) CreateContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateContactRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid create contact input")

			return
		}

		contact, err := h.contactService.CreateContact(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to create contact", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Contact created", slog.String("contactId", contact.ID.String()))
		response.Success(w, http.StatusCreated, contact)
	}
}

// BulkImport godoc
//	@Summary		Import contacts in bulk
//	@Description	Inserts every valid contact and reports how many were imported. Duplicate phone numbers are skipped.
//	@Tags			Contacts
//	@Accept			json
//	@Produce		json
//	@Param			contacts	body		models.BulkImportContactsRequest	true	"Contacts to import"
//	@Success		200			{object}	map[string]int
//	@Failure		400			{object}	response.ErrorResponse	"Validation error"
//	@Security		BearerAuth
//	@Router			/admin/contacts/import [post]
func (h *ContactHandler) BulkImport() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.BulkImportContactsRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid bulk import input")

			return
		}

		imported, err := h.contactService.BulkImport(r.Context(), &req)
		if err != nil {
			logger.Error("Bulk import failed", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Contacts imported", slog.Int("imported", imported), slog.Int("submitted", len(req.Contacts)))
		response.Success(w, http.StatusOK, map[string]int{"imported": imported})
	}
}

func (h *ContactHandler) ListContacts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		page, size := utils.Pagination(r)

		contacts, total, err := h.contactService.ListContacts(r.Context(), page, size)
		if err != nil {
			logger.Error("Failed to list contacts", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, models.PaginatedResponse{
			Data:     contacts,
			Total:    total,
			Page:     page,
			PageSize: size,
		})
	}
}

func (h *ContactHandler) DeleteContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid contact id", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		if err := h.contactService.DeleteContact(r.Context(), id); err != nil {
			logger.Error("Failed to delete contact", slog.String("contactId", id.String()), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, map[string]bool{"deleted": true})
	}
}
