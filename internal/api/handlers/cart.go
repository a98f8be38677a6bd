package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/nairmahesh/diwali-delights/internal/api/middleware"
	"github.com/nairmahesh/diwali-delights/internal/errors"
	"github.com/nairmahesh/diwali-delights/internal/models"
	service "github.com/nairmahesh/diwali-delights/internal/services"
	"github.com/nairmahesh/diwali-delights/internal/utils"
	"github.com/nairmahesh/diwali-delights/internal/utils/response"
)

// SessionHeader carries the anonymous browsing session the cart is keyed by.
const SessionHeader = "X-Session-ID"

type CartHandler struct {
	cartService service.CartService
	validator   *validator.Validate
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService, validator: validator.New()}
}

func sessionID(r *http.Request) (string, error) {
	id := r.Header.Get(SessionHeader)
	if id == "" {
		return "", errors.BadRequestError("Session ID is required")
	}

	return id, nil
}

// GetCart godoc
//	@Summary		Get the session cart
//	@Tags			Cart
//	@Produce		json
//	@Param			X-Session-ID	header		string	true	"Browsing session ID"
//	@Success		200				{object}	models.CartResponse
//	@Failure		400				{object}	response.ErrorResponse	"Missing session ID"
//	@Router			/cart [get]
func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		session, err := sessionID(r)
		if err != nil {
			logger.Warn("Cart request without session header")
			response.Error(w, err)

			return
		}

		cart, err := h.cartService.GetCart(r.Context(), session)
		if err != nil {
			logger.Error("Failed to load cart", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

// AddItem godoc
//	@Summary		Add a catalog item to the cart
//	@Description	Adds one unit of the item. Adding an item already in the cart bumps its quantity instead of creating a second line.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			X-Session-ID	header		string						true	"Browsing session ID"
//	@Param			item			body		models.AddCartItemRequest	true	"Catalog item to add"
//	@Success		200				{object}	models.CartResponse
//	@Failure		400				{object}	response.ErrorResponse	"Validation error"
//	@Failure		404				{object}	response.ErrorResponse	"Unknown catalog item"
//	@Router			/cart/items [post]
func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		session, err := sessionID(r)
		if err != nil {
			logger.Warn("Cart request without session header")
			response.Error(w, err)

			return
		}

		var req models.AddCartItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid add item input")

			return
		}

		cart, err := h.cartService.AddItem(r.Context(), session, &req)
		if err != nil {
			logger.Error("Failed to add item", slog.String("itemId", req.ItemID), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Item added to cart", slog.String("itemId", req.ItemID))
		response.Success(w, http.StatusOK, cart)
	}
}

// UpdateQuantity godoc
//	@Summary		Set the quantity of a cart line
//	@Description	A quantity of zero or less removes the line. Items not in the cart are left untouched.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			X-Session-ID	header		string								true	"Browsing session ID"
//	@Param			update			body		models.UpdateCartQuantityRequest	true	"Item and new quantity"
//	@Success		200				{object}	models.CartResponse
//	@Failure		400				{object}	response.ErrorResponse	"Validation error"
//	@Router			/cart/items [put]
func (h *CartHandler) UpdateQuantity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		session, err := sessionID(r)
		if err != nil {
			logger.Warn("Cart request without session header")
			response.Error(w, err)

			return
		}

		var req models.UpdateCartQuantityRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid quantity update input")

			return
		}

		cart, err := h.cartService.UpdateQuantity(r.Context(), session, &req)
		if err != nil {
			logger.Error("Failed to update quantity", slog.String("itemId", req.ItemID), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		session, err := sessionID(r)
		if err != nil {
			logger.Warn("Cart request without session header")
			response.Error(w, err)

			return
		}

		itemID := r.PathValue("itemId")

		cart, err := h.cartService.RemoveItem(r.Context(), session, itemID)
		if err != nil {
			logger.Error("Failed to remove item", slog.String("itemId", itemID), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

func (h *CartHandler) ClearCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		session, err := sessionID(r)
		if err != nil {
			logger.Warn("Cart request without session header")
			response.Error(w, err)

			return
		}

		if err := h.cartService.ClearCart(r.Context(), session); err != nil {
			logger.Error("Failed to clear cart", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, map[string]bool{"cleared": true})
	}
}
