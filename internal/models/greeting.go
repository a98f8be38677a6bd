package models

// Relationship is a key into the greeting template catalog
// (parents, friends, colleagues, sister, brother, uncle, aunty).
type Relationship struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// Artwork is a fixed background image for greeting cards. TextColor and
// OverlayColor drive the card template; the catalog is read-only.
type Artwork struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	URL          string `json:"url"`
	TextColor    string `json:"text_color"`
	OverlayColor string `json:"overlay_color"`
	Category     string `json:"category"`
}

// GreetingRequest is the wire form of an in-progress greeting.
type GreetingRequest struct {
	RecipientName string `json:"recipient_name"`
	SenderName    string `json:"sender_name"`
	Relationship  string `json:"relationship"`
	Template      string `json:"template"`
	CustomMessage string `json:"custom_message"`
	ArtworkID     string `json:"artwork_id"`
}

// GreetingPreview is what the composer derives for display: the effective
// message with placeholders substituted, and whether share/export
// controls should be enabled.
type GreetingPreview struct {
	RecipientName string   `json:"recipient_name"`
	SenderName    string   `json:"sender_name"`
	Message       string   `json:"message"`
	Artwork       *Artwork `json:"artwork,omitempty"`
	Complete      bool     `json:"complete"`
	ShareURL      string   `json:"share_url,omitempty"`
}

// SharePayload is the minimal field set embedded in a shareable URL.
// All four fields must be present and non-empty for a valid shared view.
type SharePayload struct {
	RecipientName string `json:"recipient_name"`
	SenderName    string `json:"sender_name"`
	Message       string `json:"message"`
	ArtworkURL    string `json:"artwork_url"`
}

// ShareMeta is the discoverability metadata injected into the shared
// greeting page so third-party platforms produce a rich preview.
type ShareMeta struct {
	Title       string
	Description string
	Image       string
	URL         string
}
