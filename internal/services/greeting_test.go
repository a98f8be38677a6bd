package service_test

import (
	"testing"

	appErrors "github.com/nairmahesh/diwali-delights/internal/errors"
	"github.com/nairmahesh/diwali-delights/internal/models"
	service "github.com/nairmahesh/diwali-delights/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGreetingService() service.GreetingService {
	return service.NewGreetingService(service.NewShareService("https://delights.example.com"))
}

func TestRelationships(t *testing.T) {
	greetingService := newGreetingService()

	relationships := greetingService.Relationships()

	require.NotEmpty(t, relationships)

	ids := make(map[string]bool, len(relationships))
	for _, relationship := range relationships {
		ids[relationship.ID] = true
		assert.NotEmpty(t, relationship.Name)
		assert.NotEmpty(t, relationship.Icon)
	}

	for _, expected := range []string{"parents", "friends", "colleagues", "sister", "brother", "uncle", "aunty"} {
		assert.True(t, ids[expected], "missing relationship %q", expected)
	}
}

func TestTemplates(t *testing.T) {
	greetingService := newGreetingService()

	t.Run("Success - Known Relationship", func(t *testing.T) {
		templates, err := greetingService.Templates("friends")

		assert.NoError(t, err)
		assert.Len(t, templates, 3)
		for _, template := range templates {
			assert.NotEmpty(t, template)
		}
	})

	t.Run("Failure - Unknown Relationship", func(t *testing.T) {
		templates, err := greetingService.Templates("cousins")

		assert.Error(t, err)
		assert.Nil(t, templates)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
	})
}

func TestArtworks(t *testing.T) {
	greetingService := newGreetingService()

	artworks := greetingService.Artworks()
	require.NotEmpty(t, artworks)

	t.Run("Success - Lookup By ID", func(t *testing.T) {
		artwork, err := greetingService.ArtworkByID(artworks[0].ID)

		assert.NoError(t, err)
		require.NotNil(t, artwork)
		assert.Equal(t, artworks[0].URL, artwork.URL)
	})

	t.Run("Failure - Unknown ID", func(t *testing.T) {
		artwork, err := greetingService.ArtworkByID("no-such-artwork")

		assert.Error(t, err)
		assert.Nil(t, artwork)
	})
}

func TestPreview(t *testing.T) {
	greetingService := newGreetingService()

	t.Run("Success - Custom Message Wins Over Template", func(t *testing.T) {
		// Arrange
		req := &models.GreetingRequest{
			RecipientName: "Meera",
			SenderName:    "Arjun",
			Relationship:  "friends",
			Template:      "Dear [Recipient], template text from [Sender]",
			CustomMessage: "Happy Diwali [Recipient], with love from [Sender]!",
		}

		// Act
		preview, err := greetingService.Preview(req)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, "Happy Diwali Meera, with love from Arjun!", preview.Message)
		assert.True(t, preview.Complete)
	})

	t.Run("Success - Template Wins Over Default", func(t *testing.T) {
		// Arrange
		templates, err := greetingService.Templates("sister")
		require.NoError(t, err)
		req := &models.GreetingRequest{
			RecipientName: "Meera",
			SenderName:    "Arjun",
			Relationship:  "sister",
			Template:      templates[1],
		}

		// Act
		preview, err := greetingService.Preview(req)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, templates[1], preview.Message)
	})

	t.Run("Success - Relationship Alone Snaps To Its First Template", func(t *testing.T) {
		// Arrange
		templates, err := greetingService.Templates("parents")
		require.NoError(t, err)
		req := &models.GreetingRequest{
			RecipientName: "Ma & Baba",
			SenderName:    "Arjun",
			Relationship:  "parents",
		}

		// Act
		preview, err := greetingService.Preview(req)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, templates[0], preview.Message)
	})

	t.Run("Success - No Selection Falls Back To Default Message", func(t *testing.T) {
		// Arrange
		req := &models.GreetingRequest{
			RecipientName: "Meera",
			SenderName:    "Arjun",
		}

		// Act
		preview, err := greetingService.Preview(req)

		// Assert
		assert.NoError(t, err)
		assert.Contains(t, preview.Message, "May this Diwali bring endless joy")
		assert.True(t, preview.Complete)
	})

	t.Run("Success - Blank Names Show Visible Placeholders", func(t *testing.T) {
		// Arrange
		req := &models.GreetingRequest{
			CustomMessage: "To [Recipient] from [Sender]",
		}

		// Act
		preview, err := greetingService.Preview(req)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, "To [Recipient Name] from [Your Name]", preview.Message)
		assert.False(t, preview.Complete, "a greeting without names is never complete")
		assert.Empty(t, preview.ShareURL)
	})

	t.Run("Success - Complete Greeting With Artwork Gets Share URL", func(t *testing.T) {
		// Arrange
		artworks := greetingService.Artworks()
		req := &models.GreetingRequest{
			RecipientName: "Meera",
			SenderName:    "Arjun",
			CustomMessage: "Shubh Deepavali 🪔",
			ArtworkID:     artworks[0].ID,
		}

		// Act
		preview, err := greetingService.Preview(req)

		// Assert
		assert.NoError(t, err)
		assert.True(t, preview.Complete)
		require.NotNil(t, preview.Artwork)
		assert.Contains(t, preview.ShareURL, "/greetings/shared?")
		assert.Contains(t, preview.ShareURL, "to=Meera")
	})

	t.Run("Failure - Unknown Relationship", func(t *testing.T) {
		// Arrange
		req := &models.GreetingRequest{
			RecipientName: "Meera",
			SenderName:    "Arjun",
			Relationship:  "cousins",
		}

		// Act
		preview, err := greetingService.Preview(req)

		// Assert
		assert.Error(t, err)
		assert.Nil(t, preview)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeBadRequest, appErr.Code)
	})

	t.Run("Failure - Unknown Artwork", func(t *testing.T) {
		// Arrange
		req := &models.GreetingRequest{
			RecipientName: "Meera",
			SenderName:    "Arjun",
			ArtworkID:     "no-such-artwork",
		}

		// Act
		preview, err := greetingService.Preview(req)

		// Assert
		assert.Error(t, err)
		assert.Nil(t, preview)
	})
}
