package utils

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	appErrors "github.com/nairmahesh/diwali-delights/internal/errors"
	"github.com/nairmahesh/diwali-delights/internal/utils/response"
)

func ParseAndValidate(r *http.Request, w http.ResponseWriter, dest any, validate *validator.Validate) bool {

	if err := DecodeJSONBody(r, dest); err != nil {
		slog.Warn("Invalid request", slog.String("error", err.Error()))
		response.WriteJson(w, http.StatusBadRequest, response.GeneralError(err))
		return false
	}

	if err := ValidateStruct(validate, dest); err != nil {
		slog.Warn("Validation failed", slog.String("error", err.Error()))
		response.WriteJson(w, http.StatusBadRequest, response.GeneralError(errors.New("invalid input data")))
		return false
	}

	return true
}

// ParseID reads a UUID path parameter.
func ParseID(r *http.Request, key string) (uuid.UUID, error) {

	raw := r.PathValue(key)

	if raw == "" {
		return uuid.Nil, appErrors.BadRequestError("Missing " + key + " path parameter")
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, appErrors.BadRequestError("Invalid " + key + " format").WithError(err)
	}

	return id, nil
}

// Pagination reads page/pageSize query parameters with sane bounds.
func Pagination(r *http.Request) (page, size int) {

	page = 1
	size = 10

	if value, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && value > 0 {
		page = value
	}

	if value, err := strconv.Atoi(r.URL.Query().Get("pageSize")); err == nil && value > 0 {
		size = min(value, 100)
	}

	return page, size
}
