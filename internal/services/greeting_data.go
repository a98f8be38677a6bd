package service

import "github.com/nairmahesh/diwali-delights/internal/models"

// defaultGreetingMessage is used when neither a custom message nor a
// template has been chosen.
const defaultGreetingMessage = "May this Diwali bring endless joy, prosperity, and happiness to your life. Wishing you a festival filled with light, love, and sweet moments!"

func relationshipTypes() []models.Relationship {
	return []models.Relationship{
		{ID: "parents", Name: "Parents", Icon: "👨‍👩‍👧‍👦"},
		{ID: "friends", Name: "Friends", Icon: "👫"},
		{ID: "colleagues", Name: "Colleagues", Icon: "💼"},
		{ID: "sister", Name: "Sister", Icon: "👭"},
		{ID: "brother", Name: "Brother", Icon: "👬"},
		{ID: "uncle", Name: "Uncle", Icon: "👨"},
		{ID: "aunty", Name: "Aunty", Icon: "👩"},
	}
}

func greetingTemplates() map[string][]string {
	return map[string][]string{
		"parents": {
			"May this Diwali bring endless joy, prosperity, and happiness to our beloved parents. Your love lights up our lives just like these beautiful diyas. Happy Diwali!",
			"Wishing you both a Diwali filled with sweet moments, bright lights, and the warmth of family love. Thank you for being our guiding light. Happy Diwali!",
			"May Goddess Lakshmi bless you with health, wealth, and all the happiness in the world. Your blessings are our greatest treasure. Happy Diwali!",
		},
		"friends": {
			"Friendship like ours shines brighter than any Diwali light! Wishing you a festival full of laughter, sweets, and amazing memories. Happy Diwali!",
			"May this Diwali sparkle with joy and shine with happiness for you and your family. Thanks for being such an amazing friend! Happy Diwali!",
			"Let's celebrate this Diwali with the same enthusiasm we bring to our friendship - full of light, laughter, and lots of sweets! Happy Diwali!",
		},
		"colleagues": {
			"Wishing you and your family a very Happy Diwali! May this festival of lights bring new opportunities, success, and prosperity in your career and life.",
			"May the light of Diwali illuminate your path to success and happiness. Looking forward to another year of great teamwork! Happy Diwali!",
			"Celebrating the festival of lights with wonderful colleagues like you makes it even more special. Wishing you prosperity and joy! Happy Diwali!",
		},
		"sister": {
			"To my wonderful sister, may this Diwali bring you all the happiness, success, and sweet moments you deserve. You light up our family! Happy Diwali!",
			"Having a sister like you is like having a permanent Diwali in life - full of light, joy, and sweetness. Wishing you the happiest Diwali!",
			"May Goddess Lakshmi shower you with her choicest blessings, dear sister. Your smile is brighter than any Diwali light! Happy Diwali!",
		},
		"brother": {
			"To my amazing brother, may this Diwali bring you success, happiness, and all your heart's desires. Thanks for always being my protector! Happy Diwali!",
			"Brothers like you make every festival special! Wishing you a Diwali filled with prosperity, joy, and lots of delicious sweets. Happy Diwali!",
			"May the festival of lights illuminate your life with endless happiness and success, dear brother. You're the best! Happy Diwali!",
		},
		"uncle": {
			"Wishing my wonderful uncle a very Happy Diwali! May this festival bring you good health, prosperity, and happiness. Your guidance means the world to us.",
			"May the divine light of Diwali spread peace, prosperity, and happiness in your life, dear uncle. Thank you for all your love and support! Happy Diwali!",
			"Celebrating Diwali with family is incomplete without your presence, uncle. Wishing you and aunty a festival full of joy and blessings! Happy Diwali!",
		},
		"aunty": {
			"To my lovely aunty, may this Diwali fill your home with happiness, your heart with joy, and your life with prosperity. You're simply wonderful! Happy Diwali!",
			"Wishing my dear aunty a Diwali as sweet as the sweets you make and as bright as your beautiful smile. May all your dreams come true! Happy Diwali!",
			"Your love and care make every festival special, dear aunty. May Goddess Lakshmi bless you with health, wealth, and happiness. Happy Diwali!",
		},
	}
}

// artworkCatalog is the fixed set of card backgrounds. Read-only.
func artworkCatalog() []models.Artwork {
	return []models.Artwork{
		{
			ID:           "glowing-diyas",
			Name:         "Glowing Diyas",
			URL:          "https://images.unsplash.com/photo-1605021154853-40a3a611ad7d?w=800&h=600&fit=crop",
			TextColor:    "#7c2d12",
			OverlayColor: "rgba(255, 247, 237, 0.9)",
			Category:     "traditional",
		},
		{
			ID:           "rangoli-colors",
			Name:         "Rangoli Colors",
			URL:          "https://images.unsplash.com/photo-1574265933395-927c76c91d20?w=800&h=600&fit=crop",
			TextColor:    "#831843",
			OverlayColor: "rgba(253, 242, 248, 0.9)",
			Category:     "traditional",
		},
		{
			ID:           "festival-lights",
			Name:         "Festival Lights",
			URL:          "https://images.unsplash.com/photo-1514222134-b57cbb8ce073?w=800&h=600&fit=crop",
			TextColor:    "#78350f",
			OverlayColor: "rgba(255, 251, 235, 0.9)",
			Category:     "modern",
		},
		{
			ID:           "golden-sparklers",
			Name:         "Golden Sparklers",
			URL:          "https://images.unsplash.com/photo-1576158114254-3ba81558b87d?w=800&h=600&fit=crop",
			TextColor:    "#713f12",
			OverlayColor: "rgba(254, 252, 232, 0.9)",
			Category:     "modern",
		},
		{
			ID:           "lakshmi-blessings",
			Name:         "Lakshmi Blessings",
			URL:          "https://images.unsplash.com/photo-1604423481263-1ed1a3ac5c04?w=800&h=600&fit=crop",
			TextColor:    "#7f1d1d",
			OverlayColor: "rgba(254, 242, 242, 0.9)",
			Category:     "devotional",
		},
	}
}
