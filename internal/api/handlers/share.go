package handlers

import (
	"html/template"
	"log/slog"
	"net/http"

	"github.com/nairmahesh/diwali-delights/internal/api/middleware"
	"github.com/nairmahesh/diwali-delights/internal/models"
	service "github.com/nairmahesh/diwali-delights/internal/services"
	"github.com/nairmahesh/diwali-delights/internal/utils/response"
)

// sharedGreetingPage is the server-rendered view behind shareable greeting
// links. The head block carries Open Graph and Twitter card tags so chat
// apps and social platforms unfurl a rich preview.
const sharedGreetingPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Meta.Title}}</title>
<meta name="description" content="{{.Meta.Description}}">
<meta property="og:type" content="website">
<meta property="og:title" content="{{.Meta.Title}}">
<meta property="og:description" content="{{.Meta.Description}}">
<meta property="og:image" content="{{.Meta.Image}}">
<meta property="og:url" content="{{.Meta.URL}}">
<meta name="twitter:card" content="summary_large_image">
<meta name="twitter:title" content="{{.Meta.Title}}">
<meta name="twitter:description" content="{{.Meta.Description}}">
<meta name="twitter:image" content="{{.Meta.Image}}">
<style>
body { margin: 0; font-family: Georgia, serif; background: #1a0f00; color: #ffd700; }
.card { max-width: 480px; margin: 48px auto; padding: 32px; text-align: center;
        background-image: url('{{.Payload.ArtworkURL}}'); background-size: cover;
        border-radius: 16px; min-height: 480px; display: flex; flex-direction: column;
        justify-content: center; }
.card .overlay { background: rgba(0, 0, 0, 0.45); border-radius: 12px; padding: 24px; }
.card h1 { font-size: 1.4rem; margin: 0 0 16px; }
.card p.message { font-size: 1.1rem; white-space: pre-line; }
.card p.from { margin-top: 24px; font-style: italic; }
</style>
</head>
<body>
<div class="card">
  <div class="overlay">
    <h1>Dear {{.Payload.RecipientName}},</h1>
    <p class="message">{{.Payload.Message}}</p>
    <p class="from">With love, {{.Payload.SenderName}}</p>
  </div>
</div>
</body>
</html>
`

type ShareHandler struct {
	shareService service.ShareService
	page         *template.Template
}

func NewShareHandler(shareService service.ShareService) *ShareHandler {
	return &ShareHandler{
		shareService: shareService,
		page:         template.Must(template.New("shared_greeting").Parse(sharedGreetingPage)),
	}
}

// SharedGreeting godoc
//	@Summary		View a shared greeting
//	@Description	Renders the greeting encoded in the query string as an HTML page. All of to, from, message and artwork must be present.
//	@Tags			Greetings
//	@Produce		html
//	@Param			to		query		string	true	"Recipient name"
//	@Param			from	query		string	true	"Sender name"
//	@Param			message	query		string	true	"Greeting message"
//	@Param			artwork	query		string	true	"Artwork image URL"
//	@Success		200		{string}	string					"HTML greeting page"
//	@Failure		400		{object}	response.ErrorResponse	"Missing greeting parameters"
//	@Router			/greetings/shared [get]
func (h *ShareHandler) SharedGreeting() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		payload, err := h.shareService.Decode(r.URL.Query())
		if err != nil {
			logger.Warn("Rejected incomplete share link", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		meta := h.shareService.BuildMeta(payload, h.shareService.Encode(payload))

		data := struct {
			Payload *models.SharePayload
			Meta    models.ShareMeta
		}{Payload: payload, Meta: meta}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")

		if err := h.page.Execute(w, data); err != nil {
			logger.Error("Failed to render shared greeting", slog.Any("error", err))
		}
	}
}
