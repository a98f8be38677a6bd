package service_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	appErrors "github.com/nairmahesh/diwali-delights/internal/errors"
	"github.com/nairmahesh/diwali-delights/internal/models"
	service "github.com/nairmahesh/diwali-delights/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRenderer lets tests control the capture outcome and optionally
// block mid-render to exercise the single-flight guard.
type stubRenderer struct {
	png     []byte
	err     error
	started chan struct{}
	release chan struct{}

	mu    sync.Mutex
	calls int
}

func (r *stubRenderer) RenderPNG(ctx context.Context, html string) ([]byte, error) {
	r.mu.Lock()
	r.calls++
	r.mu.Unlock()

	if r.started != nil {
		r.started <- struct{}{}
	}

	if r.release != nil {
		<-r.release
	}

	return r.png, r.err
}

func (r *stubRenderer) callCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.calls
}

func completeCardRequest(t *testing.T, greetings service.GreetingService) *models.GreetingRequest {
	t.Helper()

	artworks := greetings.Artworks()
	require.NotEmpty(t, artworks)

	return &models.GreetingRequest{
		RecipientName: "Meera",
		SenderName:    "Arjun",
		CustomMessage: "Shubh Deepavali!",
		ArtworkID:     artworks[0].ID,
	}
}

func TestRenderCard(t *testing.T) {
	ctx := context.Background()
	greetings := newGreetingService()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		r := &stubRenderer{png: []byte{0x89, 'P', 'N', 'G'}}
		cardService := service.NewCardService(greetings, r)

		// Act
		png, filename, err := cardService.Render(ctx, completeCardRequest(t, greetings))

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png)
		assert.Equal(t, "diwali-greeting-for-meera.png", filename)
		assert.Equal(t, 1, r.callCount())
	})

	t.Run("Failure - Incomplete Greeting", func(t *testing.T) {
		// Arrange
		r := &stubRenderer{png: []byte("png")}
		cardService := service.NewCardService(greetings, r)
		req := &models.GreetingRequest{
			RecipientName: "Meera",
			ArtworkID:     greetings.Artworks()[0].ID,
		}

		// Act
		png, filename, err := cardService.Render(ctx, req)

		// Assert
		assert.Error(t, err)
		assert.Nil(t, png)
		assert.Empty(t, filename)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeIncompleteCard, appErr.Code)
		assert.Equal(t, 0, r.callCount(), "an incomplete greeting must never reach the renderer")
	})

	t.Run("Failure - No Artwork Selected", func(t *testing.T) {
		// Arrange
		r := &stubRenderer{png: []byte("png")}
		cardService := service.NewCardService(greetings, r)
		req := &models.GreetingRequest{
			RecipientName: "Meera",
			SenderName:    "Arjun",
			CustomMessage: "Shubh Deepavali!",
		}

		// Act
		_, _, err := cardService.Render(ctx, req)

		// Assert
		assert.Error(t, err)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeIncompleteCard, appErr.Code)
	})

	t.Run("Failure - Render Error Leaves No Partial Output", func(t *testing.T) {
		// Arrange
		r := &stubRenderer{err: errors.New("chrome crashed")}
		cardService := service.NewCardService(greetings, r)

		// Act
		png, filename, err := cardService.Render(ctx, completeCardRequest(t, greetings))

		// Assert
		assert.Error(t, err)
		assert.Nil(t, png)
		assert.Empty(t, filename)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeRenderFailed, appErr.Code)
	})

	t.Run("Failure - Second Render Of Same Card Rejected While In Flight", func(t *testing.T) {
		// Arrange
		r := &stubRenderer{
			png:     []byte("png"),
			started: make(chan struct{}, 1),
			release: make(chan struct{}),
		}
		cardService := service.NewCardService(greetings, r)
		req := completeCardRequest(t, greetings)

		firstDone := make(chan error, 1)

		go func() {
			_, _, err := cardService.Render(ctx, req)
			firstDone <- err
		}()

		<-r.started

		// Act
		_, _, err := cardService.Render(ctx, req)

		// Assert
		assert.Error(t, err)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeRenderBusy, appErr.Code)
		assert.Equal(t, "This card is already being generated", appErr.Message)

		close(r.release)
		assert.NoError(t, <-firstDone)

		// The guard clears once the first capture finishes.
		_, _, err = cardService.Render(ctx, req)
		assert.NoError(t, err)
	})

	t.Run("Success - Retry After Failure Is Allowed", func(t *testing.T) {
		// Arrange
		r := &stubRenderer{err: errors.New("chrome crashed")}
		cardService := service.NewCardService(greetings, r)
		req := completeCardRequest(t, greetings)

		_, _, err := cardService.Render(ctx, req)
		require.Error(t, err)

		r.err = nil
		r.png = []byte("png")

		// Act
		png, _, err := cardService.Render(ctx, req)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, []byte("png"), png)
	})
}

func TestCardFilename(t *testing.T) {
	ctx := context.Background()
	greetings := newGreetingService()
	r := &stubRenderer{png: []byte("png")}
	cardService := service.NewCardService(greetings, r)

	t.Run("Success - Recipient With Spaces And Symbols", func(t *testing.T) {
		// Arrange
		req := completeCardRequest(t, greetings)
		req.RecipientName = "Ma & Baba"

		// Act
		_, filename, err := cardService.Render(ctx, req)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, "diwali-greeting-for-ma-baba.png", filename)
	})

	t.Run("Success - Unusable Recipient Falls Back To Generic Name", func(t *testing.T) {
		// Arrange
		req := completeCardRequest(t, greetings)
		req.RecipientName = "!!!"

		// Act
		_, filename, err := cardService.Render(ctx, req)

		// Assert
		assert.NoError(t, err)
		assert.True(t, strings.HasPrefix(filename, "diwali-greeting"))
		assert.Equal(t, "diwali-greeting.png", filename)
	})
}
