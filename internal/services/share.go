package service

import (
	"net/url"

	"github.com/nairmahesh/diwali-delights/internal/errors"
	"github.com/nairmahesh/diwali-delights/internal/models"
)

// ShareService turns a greeting into a self-contained link and back.
// The whole greeting travels in the query string; nothing is stored
// server-side, so a link never expires.
type ShareService interface {
	Encode(payload *models.SharePayload) string
	Decode(query url.Values) (*models.SharePayload, error)
	BuildMeta(payload *models.SharePayload, canonicalURL string) models.ShareMeta
}

type shareService struct {
	baseURL string
}

func NewShareService(baseURL string) ShareService {
	return &shareService{baseURL: baseURL}
}

const sharedGreetingPath = "/greetings/shared"

// Encode percent-encodes each field into the to/from/message/artwork
// query parameters. url.Values handles punctuation and emoji, so
// Decode(Encode(p)) round-trips losslessly.
func (s *shareService) Encode(payload *models.SharePayload) string {
	values := url.Values{}
	values.Set("to", payload.RecipientName)
	values.Set("from", payload.SenderName)
	values.Set("message", payload.Message)
	values.Set("artwork", payload.ArtworkURL)

	return s.baseURL + sharedGreetingPath + "?" + values.Encode()
}

// Decode requires all four parameters to be present and non-empty. A
// partially filled link is an error, never a partially filled card.
func (s *shareService) Decode(query url.Values) (*models.SharePayload, error) {
	payload := &models.SharePayload{
		RecipientName: query.Get("to"),
		SenderName:    query.Get("from"),
		Message:       query.Get("message"),
		ArtworkURL:    query.Get("artwork"),
	}

	if payload.RecipientName == "" || payload.SenderName == "" || payload.Message == "" || payload.ArtworkURL == "" {
		return nil, errors.MissingParamsError("Missing greeting parameters")
	}

	return payload, nil
}

// BuildMeta produces the OpenGraph/Twitter card fields for a decoded
// greeting so shared links unfurl with the artwork and a message excerpt.
func (s *shareService) BuildMeta(payload *models.SharePayload, canonicalURL string) models.ShareMeta {
	return models.ShareMeta{
		Title:       "🪔 Diwali Greeting from " + payload.SenderName,
		Description: truncateMessage(payload.Message, 100),
		Image:       payload.ArtworkURL,
		URL:         canonicalURL,
	}
}

// truncateMessage shortens on rune boundaries so multi-byte characters
// in the excerpt are never cut in half.
func truncateMessage(message string, limit int) string {
	runes := []rune(message)
	if len(runes) <= limit {
		return message
	}

	return string(runes[:limit]) + "..."
}
