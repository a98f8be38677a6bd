package models

import "time"

type ProductStatus string

const (
	ProductStatusActive     ProductStatus = "active"
	ProductStatusInactive   ProductStatus = "inactive"
	ProductStatusOutOfStock ProductStatus = "out_of_stock"
)

// Category groups catalog items the way the storefront menu presents them.
type Category struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Icon        string        `json:"icon"`
	Items       []CatalogItem `json:"items"`
}

// CatalogItem is a single sellable product. Prices are whole rupees.
// The cart and greeting subsystems treat catalog items as immutable.
type CatalogItem struct {
	ID           string        `json:"id"`
	CategoryID   string        `json:"category_id"`
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	Note         string        `json:"note,omitempty"`
	Price        int64         `json:"price"`
	Unit         string        `json:"unit"`
	Images       []string      `json:"images"`
	Status       ProductStatus `json:"status"`
	Rating       float64       `json:"rating,omitempty"`
	TotalReviews int           `json:"total_reviews,omitempty"`
}

// Image returns the primary product image, if any.
func (i CatalogItem) Image() string {
	if len(i.Images) == 0 {
		return ""
	}

	return i.Images[0]
}

// Product is the admin-managed row backing a catalog item. Offer pricing
// follows the storefront rules: an explicit offer price wins over a
// percentage discount, which wins over the base price.
type Product struct {
	ID                 string        `json:"id"`
	CategoryID         string        `json:"category_id"`
	Name               string        `json:"name"`
	Description        string        `json:"description"`
	Note               string        `json:"note,omitempty"`
	Images             []string      `json:"images"`
	BasePrice          int64         `json:"base_price"`
	DiscountPercentage *float64      `json:"discount_percentage,omitempty"`
	OfferPrice         *int64        `json:"offer_price,omitempty"`
	Unit               string        `json:"unit"`
	Status             ProductStatus `json:"status"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at"`
}

func (p *Product) FinalPrice() int64 {
	if p.OfferPrice != nil {
		return *p.OfferPrice
	}

	if p.DiscountPercentage != nil {
		return int64(float64(p.BasePrice) * (1 - *p.DiscountPercentage/100))
	}

	return p.BasePrice
}

func (p *Product) HasOffer() bool {
	return p.OfferPrice != nil || p.DiscountPercentage != nil
}

// CatalogItem projects the product into the read-only storefront shape.
func (p *Product) CatalogItem() CatalogItem {
	return CatalogItem{
		ID:          p.ID,
		CategoryID:  p.CategoryID,
		Name:        p.Name,
		Description: p.Description,
		Note:        p.Note,
		Price:       p.FinalPrice(),
		Unit:        p.Unit,
		Images:      p.Images,
		Status:      p.Status,
	}
}

type CreateProductRequest struct {
	CategoryID         string   `json:"category_id" validate:"required"`
	Name               string   `json:"name" validate:"required,min=2,max=200"`
	Description        string   `json:"description"`
	Note               string   `json:"note"`
	Images             []string `json:"images" validate:"dive,url"`
	BasePrice          int64    `json:"base_price" validate:"required,gt=0"`
	DiscountPercentage *float64 `json:"discount_percentage,omitempty" validate:"omitempty,gt=0,lt=100"`
	OfferPrice         *int64   `json:"offer_price,omitempty" validate:"omitempty,gt=0"`
	Unit               string   `json:"unit" validate:"required"`
}

type UpdateProductRequest struct {
	CategoryID         *string        `json:"category_id,omitempty"`
	Name               *string        `json:"name,omitempty" validate:"omitempty,min=2,max=200"`
	Description        *string        `json:"description,omitempty"`
	Note               *string        `json:"note,omitempty"`
	Images             []string       `json:"images,omitempty" validate:"omitempty,dive,url"`
	BasePrice          *int64         `json:"base_price,omitempty" validate:"omitempty,gt=0"`
	DiscountPercentage *float64       `json:"discount_percentage,omitempty" validate:"omitempty,gt=0,lt=100"`
	OfferPrice         *int64         `json:"offer_price,omitempty" validate:"omitempty,gt=0"`
	Unit               *string        `json:"unit,omitempty"`
	Status             *ProductStatus `json:"status,omitempty" validate:"omitempty,oneof=active inactive out_of_stock"`
}
