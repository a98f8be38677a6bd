package service

import (
	"context"
	goerrors "errors"
	"time"

	"github.com/nairmahesh/diwali-delights/internal/errors"
	"github.com/nairmahesh/diwali-delights/internal/models"
	repository "github.com/nairmahesh/diwali-delights/internal/repositories"
)

type CartService interface {
	GetCart(ctx context.Context, sessionID string) (*models.CartResponse, error)
	AddItem(ctx context.Context, sessionID string, req *models.AddCartItemRequest) (*models.CartResponse, error)
	UpdateQuantity(ctx context.Context, sessionID string, req *models.UpdateCartQuantityRequest) (*models.CartResponse, error)
	RemoveItem(ctx context.Context, sessionID string, itemID string) (*models.CartResponse, error)
	ClearCart(ctx context.Context, sessionID string) error
}

type cartService struct {
	repo    repository.CartRepository
	catalog CatalogService
}

func NewCartService(repo repository.CartRepository, catalog CatalogService) CartService {
	return &cartService{repo: repo, catalog: catalog}
}

// GetCart returns an empty cart for sessions that have not added
// anything yet; a missing cart is not an error.
func (s *cartService) GetCart(ctx context.Context, sessionID string) (*models.CartResponse, error) {
	cart, err := s.loadOrCreate(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	return cartResponse(cart, ""), nil
}

// AddItem merges repeated adds of the same item into one line with a
// bumped quantity instead of growing a duplicate row.
func (s *cartService) AddItem(ctx context.Context, sessionID string, req *models.AddCartItemRequest) (*models.CartResponse, error) {
	item, err := s.catalog.GetItem(ctx, req.ItemID)
	if err != nil {
		return nil, err
	}

	cart, err := s.loadOrCreate(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	merged := false

	for i := range cart.Lines {
		if cart.Lines[i].ID == item.ID {
			cart.Lines[i].Quantity++
			merged = true

			break
		}
	}

	if !merged {
		cart.Lines = append(cart.Lines, models.CartLine{
			ID:       item.ID,
			Name:     item.Name,
			Price:    item.Price,
			Unit:     item.Unit,
			Quantity: 1,
		})
	}

	if err := s.save(ctx, cart); err != nil {
		return nil, err
	}

	return cartResponse(cart, item.Name+" added to cart!"), nil
}

// UpdateQuantity sets an existing line to the requested quantity. Zero or
// a negative quantity removes the line; an item that is not in the cart
// leaves the cart untouched.
func (s *cartService) UpdateQuantity(ctx context.Context, sessionID string, req *models.UpdateCartQuantityRequest) (*models.CartResponse, error) {
	cart, err := s.loadOrCreate(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	idx := -1

	for i := range cart.Lines {
		if cart.Lines[i].ID == req.ItemID {
			idx = i

			break
		}
	}

	if idx == -1 {
		return cartResponse(cart, ""), nil
	}

	if req.Quantity <= 0 {
		cart.Lines = append(cart.Lines[:idx], cart.Lines[idx+1:]...)
	} else {
		cart.Lines[idx].Quantity = req.Quantity
	}

	if err := s.save(ctx, cart); err != nil {
		return nil, err
	}

	return cartResponse(cart, ""), nil
}

func (s *cartService) RemoveItem(ctx context.Context, sessionID string, itemID string) (*models.CartResponse, error) {
	return s.UpdateQuantity(ctx, sessionID, &models.UpdateCartQuantityRequest{ItemID: itemID, Quantity: 0})
}

func (s *cartService) ClearCart(ctx context.Context, sessionID string) error {
	if err := s.repo.DeleteCart(ctx, sessionID); err != nil && !goerrors.Is(err, repository.ErrCartNotFound) {
		return errors.DatabaseError("Failed to clear cart").WithError(err)
	}

	return nil
}

func (s *cartService) loadOrCreate(ctx context.Context, sessionID string) (*models.Cart, error) {
	cart, err := s.repo.GetCart(ctx, sessionID)
	if err != nil {
		if goerrors.Is(err, repository.ErrCartNotFound) {
			return models.NewCart(sessionID), nil
		}

		return nil, errors.DatabaseError("Failed to load cart").WithError(err)
	}

	return cart, nil
}

func (s *cartService) save(ctx context.Context, cart *models.Cart) error {
	cart.UpdatedAt = time.Now()

	if err := s.repo.SaveCart(ctx, cart); err != nil {
		return errors.DatabaseError("Failed to save cart").WithError(err)
	}

	return nil
}

func cartResponse(cart *models.Cart, message string) *models.CartResponse {
	return &models.CartResponse{
		Cart:          cart,
		TotalQuantity: cart.TotalQuantity(),
		TotalPrice:    cart.TotalPrice(),
		Message:       message,
	}
}
