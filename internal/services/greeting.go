package service

import (
	"strings"

	"github.com/nairmahesh/diwali-delights/internal/errors"
	"github.com/nairmahesh/diwali-delights/internal/models"
)

type GreetingService interface {
	Relationships() []models.Relationship
	Templates(relationshipID string) ([]string, error)
	Artworks() []models.Artwork
	ArtworkByID(id string) (*models.Artwork, error)
	Preview(req *models.GreetingRequest) (*models.GreetingPreview, error)
}

type greetingService struct {
	templates map[string][]string
	share     ShareService
}

func NewGreetingService(share ShareService) GreetingService {
	return &greetingService{
		templates: greetingTemplates(),
		share:     share,
	}
}

func (s *greetingService) Relationships() []models.Relationship {
	return relationshipTypes()
}

func (s *greetingService) Templates(relationshipID string) ([]string, error) {
	templates, ok := s.templates[relationshipID]
	if !ok {
		return nil, errors.NotFoundError("Unknown relationship")
	}

	return templates, nil
}

func (s *greetingService) Artworks() []models.Artwork {
	return artworkCatalog()
}

func (s *greetingService) ArtworkByID(id string) (*models.Artwork, error) {
	for _, artwork := range artworkCatalog() {
		if artwork.ID == id {
			return &artwork, nil
		}
	}

	return nil, errors.NotFoundError("Unknown artwork")
}

// Preview derives the displayable greeting from the in-progress state.
// A chosen relationship with no explicit template snaps to the first
// template of that relationship; a custom message always wins over a
// template; with neither, a fixed default applies.
func (s *greetingService) Preview(req *models.GreetingRequest) (*models.GreetingPreview, error) {
	if req.Relationship != "" {
		if _, ok := s.templates[req.Relationship]; !ok {
			return nil, errors.BadRequestError("Unknown relationship")
		}
	}

	preview := &models.GreetingPreview{
		RecipientName: req.RecipientName,
		SenderName:    req.SenderName,
	}

	if req.ArtworkID != "" {
		artwork, err := s.ArtworkByID(req.ArtworkID)
		if err != nil {
			return nil, errors.BadRequestError("Unknown artwork")
		}

		preview.Artwork = artwork
	}

	preview.Message = s.effectiveMessage(req)
	preview.Complete = req.RecipientName != "" && req.SenderName != "" && preview.Message != ""

	if preview.Complete && preview.Artwork != nil && s.share != nil {
		preview.ShareURL = s.share.Encode(&models.SharePayload{
			RecipientName: req.RecipientName,
			SenderName:    req.SenderName,
			Message:       preview.Message,
			ArtworkURL:    preview.Artwork.URL,
		})
	}

	return preview, nil
}

func (s *greetingService) effectiveMessage(req *models.GreetingRequest) string {
	message := req.CustomMessage

	if message == "" {
		message = req.Template
	}

	if message == "" && req.Relationship != "" {
		if templates := s.templates[req.Relationship]; len(templates) > 0 {
			message = templates[0]
		}
	}

	if message == "" {
		message = defaultGreetingMessage
	}

	return substitutePlaceholders(message, req.RecipientName, req.SenderName)
}

// substitutePlaceholders fills [Recipient] and [Sender] markers, leaving
// visible placeholders when the names are still blank.
func substitutePlaceholders(message, recipient, sender string) string {
	if recipient == "" {
		recipient = "[Recipient Name]"
	}

	if sender == "" {
		sender = "[Your Name]"
	}

	message = strings.ReplaceAll(message, "[Recipient]", recipient)
	message = strings.ReplaceAll(message, "[Sender]", sender)

	return message
}
