package models

// WebsiteSettings is admin-editable UI state persisted in the key-value
// store: shop info, banner text and per-item visibility toggles.
type WebsiteSettings struct {
	ShopName        string   `json:"shop_name"`
	Tagline         string   `json:"tagline"`
	Description     string   `json:"description"`
	ContactPhone    string   `json:"contact_phone"`
	ContactEmail    string   `json:"contact_email"`
	ContactAddress  string   `json:"contact_address"`
	FSSAILicense    string   `json:"fssai_license,omitempty"`
	BannerMessage   string   `json:"banner_message,omitempty"`
	HiddenProducts  []string `json:"hidden_products,omitempty"`
	OrderingEnabled bool     `json:"ordering_enabled"`
}

type UpdateSettingsRequest struct {
	ShopName        *string  `json:"shop_name,omitempty" validate:"omitempty,min=2,max=100"`
	Tagline         *string  `json:"tagline,omitempty" validate:"omitempty,max=200"`
	Description     *string  `json:"description,omitempty" validate:"omitempty,max=500"`
	ContactPhone    *string  `json:"contact_phone,omitempty" validate:"omitempty,min=10,max=15"`
	ContactEmail    *string  `json:"contact_email,omitempty" validate:"omitempty,email"`
	ContactAddress  *string  `json:"contact_address,omitempty" validate:"omitempty,max=300"`
	BannerMessage   *string  `json:"banner_message,omitempty" validate:"omitempty,max=200"`
	HiddenProducts  []string `json:"hidden_products,omitempty"`
	OrderingEnabled *bool    `json:"ordering_enabled,omitempty"`
}
