package handlers

import (
	"log/slog"
	"net/http"

	"github.com/nairmahesh/diwali-delights/internal/api/middleware"
	service "github.com/nairmahesh/diwali-delights/internal/services"
	"github.com/nairmahesh/diwali-delights/internal/utils/response"
)

type CatalogHandler struct {
	catalogService service.CatalogService
}

func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// GetCatalog godoc
//	@Summary		Get the festival menu
//	@Description	Returns every category with its visible items. Admin product edits and hidden-product settings are already applied.
//	@Tags			Catalog
//	@Produce		json
//	@Success		200	{array}		models.Category
//	@Failure		500	{object}	response.ErrorResponse	"Internal server error"
//	@Router			/catalog [get]
func (h *CatalogHandler) GetCatalog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		categories, err := h.catalogService.GetCategories(r.Context())
		if err != nil {
			logger.Error("Failed to load catalog", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, categories)
	}
}

// GetItem godoc
//	@Summary		Get a single catalog item
//	@Tags			Catalog
//	@Produce		json
//	@Param			id	path		string	true	"Catalog item ID"
//	@Success		200	{object}	models.CatalogItem
//	@Failure		404	{object}	response.ErrorResponse	"Item not found"
//	@Router			/catalog/items/{id} [get]
func (h *CatalogHandler) GetItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		itemID := r.PathValue("id")

		item, err := h.catalogService.GetItem(r.Context(), itemID)
		if err != nil {
			logger.Warn("Catalog item lookup failed", slog.String("itemId", itemID), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, item)
	}
}
