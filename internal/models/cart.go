package models

import "time"

// CartLine is one aggregated row in a session cart. At most one line
// exists per catalog item ID; repeated adds bump the quantity instead.
type CartLine struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Unit     string `json:"unit"`
	Quantity int    `json:"quantity"`
}

// Cart holds the lines for one browsing session. Lines preserves
// insertion order so the summary renders the way items were added.
type Cart struct {
	SessionID string     `json:"session_id"`
	Lines     []CartLine `json:"lines"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func NewCart(sessionID string) *Cart {
	now := time.Now()

	return &Cart{
		SessionID: sessionID,
		Lines:     []CartLine{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// TotalQuantity is the cart-badge count: the sum of all line quantities.
func (c *Cart) TotalQuantity() int {
	var total int

	for _, line := range c.Lines {
		total += line.Quantity
	}

	return total
}

// TotalPrice sums price*quantity over all surviving lines, in whole rupees.
func (c *Cart) TotalPrice() int64 {
	var total int64

	for _, line := range c.Lines {
		total += line.Price * int64(line.Quantity)
	}

	return total
}

func (c *Cart) IsEmpty() bool {
	return c.TotalQuantity() == 0
}

type AddCartItemRequest struct {
	ItemID string `json:"item_id" validate:"required"`
}

type UpdateCartQuantityRequest struct {
	ItemID   string `json:"item_id" validate:"required"`
	Quantity int    `json:"quantity"`
}

// CartResponse pairs the cart snapshot with derived totals so the client
// never recomputes them.
type CartResponse struct {
	Cart          *Cart  `json:"cart"`
	TotalQuantity int    `json:"total_quantity"`
	TotalPrice    int64  `json:"total_price"`
	Message       string `json:"message,omitempty"`
}
