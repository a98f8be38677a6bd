package service

import (
	"bytes"
	"context"
	"html/template"
	"strings"
	"sync"
	"unicode"

	"github.com/microcosm-cc/bluemonday"
	"github.com/nairmahesh/diwali-delights/internal/errors"
	"github.com/nairmahesh/diwali-delights/internal/models"
	"github.com/nairmahesh/diwali-delights/pkg/renderer"
)

// CardService rasterizes a completed greeting into a downloadable PNG.
type CardService interface {
	Render(ctx context.Context, req *models.GreetingRequest) ([]byte, string, error)
}

type cardService struct {
	greetings GreetingService
	renderer  renderer.Renderer
	sanitizer *bluemonday.Policy

	mu       sync.Mutex
	inflight map[string]bool
}

func NewCardService(greetings GreetingService, r renderer.Renderer) CardService {
	return &cardService{
		greetings: greetings,
		renderer:  r,
		sanitizer: bluemonday.StrictPolicy(),
		inflight:  make(map[string]bool),
	}
}

var cardTemplate = template.Must(template.New("card").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  body { margin: 0; font-family: Georgia, 'Times New Roman', serif; background: #fff7ed; }
  .card { width: 760px; margin: 20px auto; background: #ffffff; border: 4px solid #fb923c; border-radius: 12px; overflow: hidden; }
  .artwork { width: 100%; display: flex; justify-content: center; background: #f9fafb; }
  .artwork img { max-width: 100%; max-height: 400px; object-fit: contain; }
  .text { padding: 24px 32px; color: {{.TextColor}}; }
  .to, .from { font-size: 20px; font-weight: 600; }
  .from { text-align: right; }
  .label { color: #ea580c; font-weight: 700; }
  .message { border-left: 4px solid #fdba74; padding-left: 16px; margin: 18px 0; font-size: 17px; line-height: 1.6; color: #1f2937; }
  .footer { text-align: center; padding-top: 16px; border-top: 1px solid #fed7aa; color: #ea580c; font-size: 16px; }
</style>
</head>
<body>
<div class="card">
  <div class="artwork"><img src="{{.ArtworkURL}}" alt="Diwali Artwork"></div>
  <div class="text">
    <p class="to"><span class="label">To:</span> {{.Recipient}}</p>
    <p class="message">{{.Message}}</p>
    <p class="from"><span class="label">From:</span> {{.Sender}}</p>
    <div class="footer">✨ Wishing you joy &amp; prosperity! ✨<br>🪔 ❤️ 🪔</div>
  </div>
</div>
</body>
</html>`))

type cardTemplateData struct {
	Recipient  string
	Sender     string
	Message    string
	ArtworkURL string
	TextColor  string
}

// Render captures the card for a complete greeting. A second request for
// the same card while a capture is running is rejected rather than
// queued; a failed capture surfaces as an error and leaves no partial
// download behind.
func (s *cardService) Render(ctx context.Context, req *models.GreetingRequest) ([]byte, string, error) {
	preview, err := s.greetings.Preview(req)
	if err != nil {
		return nil, "", err
	}

	if !preview.Complete {
		return nil, "", errors.IncompleteCardError("Recipient, sender, and message are required before downloading")
	}

	if preview.Artwork == nil {
		return nil, "", errors.IncompleteCardError("Select an artwork before downloading")
	}

	key := preview.RecipientName + "\x00" + preview.SenderName + "\x00" + preview.Message + "\x00" + preview.Artwork.ID

	s.mu.Lock()

	if s.inflight[key] {
		s.mu.Unlock()

		return nil, "", errors.RenderBusyError("This card is already being generated")
	}

	s.inflight[key] = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.inflight, key)
		s.mu.Unlock()
	}()

	html, err := s.buildHTML(preview)
	if err != nil {
		return nil, "", errors.InternalError("Failed to build card markup").WithError(err)
	}

	png, err := s.renderer.RenderPNG(ctx, html)
	if err != nil {
		return nil, "", errors.RenderFailedError("Failed to generate the greeting card image").WithError(err)
	}

	return png, cardFilename(preview.RecipientName), nil
}

func (s *cardService) buildHTML(preview *models.GreetingPreview) (string, error) {
	data := cardTemplateData{
		Recipient:  s.sanitizer.Sanitize(preview.RecipientName),
		Sender:     s.sanitizer.Sanitize(preview.SenderName),
		Message:    s.sanitizer.Sanitize(preview.Message),
		ArtworkURL: preview.Artwork.URL,
		TextColor:  preview.Artwork.TextColor,
	}

	var buf bytes.Buffer
	if err := cardTemplate.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// cardFilename derives a safe download name from the recipient, keeping
// letters and digits and falling back to a generic name.
func cardFilename(recipient string) string {
	var b strings.Builder

	lastDash := false

	for _, r := range strings.ToLower(recipient) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)

			lastDash = false
		case !lastDash:
			b.WriteRune('-')

			lastDash = true
		}
	}

	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		return "diwali-greeting.png"
	}

	return "diwali-greeting-for-" + slug + ".png"
}
