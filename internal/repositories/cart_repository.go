package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/nairmahesh/diwali-delights/internal/models"
	"github.com/redis/go-redis/v9"
)

// ErrCartNotFound is returned when a session has no stored cart yet.
var ErrCartNotFound = redis.Nil

type CartRepository interface {
	GetCart(ctx context.Context, sessionID string) (*models.Cart, error)
	SaveCart(ctx context.Context, cart *models.Cart) error
	DeleteCart(ctx context.Context, sessionID string) error
}

const cartKeyPrefix = "cart:sess:"

type cartRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCartRepo stores session carts in Redis so a cart survives page
// reloads for the configured TTL.
func NewCartRepo(client *redis.Client, ttl time.Duration) CartRepository {
	return &cartRepository{client: client, ttl: ttl}
}

func (r *cartRepository) GetCart(ctx context.Context, sessionID string) (*models.Cart, error) {

	data, err := r.client.Get(ctx, cartKeyPrefix+sessionID).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrCartNotFound
		}

		return nil, fmt.Errorf("failed to get cart for session %s: %w", sessionID, err)
	}

	cart := &models.Cart{}
	if err := json.Unmarshal(data, cart); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cart for session %s: %w", sessionID, err)
	}

	return cart, nil
}

func (r *cartRepository) SaveCart(ctx context.Context, cart *models.Cart) error {

	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("failed to marshal cart: %w", err)
	}

	if err := r.client.Set(ctx, cartKeyPrefix+cart.SessionID, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save cart for session %s: %w", cart.SessionID, err)
	}

	return nil
}

func (r *cartRepository) DeleteCart(ctx context.Context, sessionID string) error {

	if err := r.client.Del(ctx, cartKeyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("failed to delete cart for session %s: %w", sessionID, err)
	}

	return nil
}

// memoryCartRepository is the degraded-mode store used when Redis is
// unavailable: carts live for the process lifetime only.
type memoryCartRepository struct {
	mu    sync.RWMutex
	carts map[string]*models.Cart
}

func NewMemoryCartRepo() CartRepository {
	return &memoryCartRepository{carts: make(map[string]*models.Cart)}
}

func (r *memoryCartRepository) GetCart(_ context.Context, sessionID string) (*models.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cart, ok := r.carts[sessionID]
	if !ok {
		return nil, ErrCartNotFound
	}

	clone := *cart
	clone.Lines = append([]models.CartLine(nil), cart.Lines...)

	return &clone, nil
}

func (r *memoryCartRepository) SaveCart(_ context.Context, cart *models.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clone := *cart
	clone.Lines = append([]models.CartLine(nil), cart.Lines...)
	r.carts[cart.SessionID] = &clone

	return nil
}

func (r *memoryCartRepository) DeleteCart(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.carts, sessionID)

	return nil
}

// fallbackCartRepository tries Redis first and falls back to the memory
// store on infrastructure errors, so the storefront keeps working while
// Redis is down.
type fallbackCartRepository struct {
	primary  CartRepository
	fallback CartRepository
}

func NewFallbackCartRepo(primary, fallback CartRepository) CartRepository {
	return &fallbackCartRepository{primary: primary, fallback: fallback}
}

func (r *fallbackCartRepository) GetCart(ctx context.Context, sessionID string) (*models.Cart, error) {
	cart, err := r.primary.GetCart(ctx, sessionID)
	if err != nil && err != ErrCartNotFound {
		slog.Warn("Cart store unavailable, using in-memory fallback", slog.String("error", err.Error()))
		return r.fallback.GetCart(ctx, sessionID)
	}

	return cart, err
}

func (r *fallbackCartRepository) SaveCart(ctx context.Context, cart *models.Cart) error {
	if err := r.primary.SaveCart(ctx, cart); err != nil {
		slog.Warn("Cart store unavailable, saving to in-memory fallback", slog.String("error", err.Error()))
		return r.fallback.SaveCart(ctx, cart)
	}

	return nil
}

func (r *fallbackCartRepository) DeleteCart(ctx context.Context, sessionID string) error {
	if err := r.primary.DeleteCart(ctx, sessionID); err != nil {
		slog.Warn("Cart store unavailable, deleting from in-memory fallback", slog.String("error", err.Error()))
		return r.fallback.DeleteCart(ctx, sessionID)
	}

	// Keep the fallback coherent in case earlier writes landed there.
	_ = r.fallback.DeleteCart(ctx, sessionID)

	return nil
}
