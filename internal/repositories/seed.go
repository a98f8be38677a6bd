package repository

import "github.com/nairmahesh/diwali-delights/internal/models"

// SeedCategories is the built-in menu the storefront serves when the
// product table is empty or unreachable. Prices are whole rupees.
func SeedCategories() []models.Category {
	return []models.Category{
		{
			ID:          "chivda",
			Name:        "Chivda Collection",
			Description: "Crispy and flavorful traditional snacks perfect for Diwali celebrations",
			Icon:        "🥜",
			Items: []models.CatalogItem{
				seedItem("poha-chivda", "chivda", "Poha Chivda", "Traditional flattened rice mixture with spices and peanuts", 600, "per kg"),
				seedItem("corn-chivda-plain", "chivda", "Corn Chivda - Plain", "Crunchy corn flakes seasoned with aromatic spices", 650, "per kg"),
				seedItem("corn-chivda-dry-fruits", "chivda", "Corn Chivda - With Dry Fruits", "Premium corn chivda enriched with almonds, cashews and raisins", 750, "per kg"),
				seedItem("farali-chivda", "chivda", "Farali Chivda", "Special fasting-friendly mixture with sabudana and peanuts", 760, "per kg"),
				seedItem("makhana-chivda-masala", "chivda", "Makhana Chivda - Masala", "Roasted lotus seeds with aromatic spices and herbs", 1600, "per kg"),
				seedItem("makhana-chivda-dry-fruits", "chivda", "Makhana Chivda - Masala & Dry Fruits", "Premium makhana with masala spices and assorted dry fruits", 1850, "per kg"),
				seedItem("kurmura-chivda", "chivda", "Kurmura Chivda", "Light and crispy puffed rice mixture with curry leaves", 500, "per kg"),
				seedItem("fried-poha-chivda", "chivda", "Fried Poha Chivda", "Perfectly fried flattened rice with onions and spices", 550, "per kg"),
			},
		},
		{
			ID:          "chakli",
			Name:        "Chakli Varieties",
			Description: "Spiral-shaped crispy delights made from different grains",
			Icon:        "🌀",
			Items: []models.CatalogItem{
				seedItem("rice-chakli", "chakli", "Rice Chakli", "Classic spiral-shaped snack made from rice flour and spices", 625, "per kg"),
				seedItem("bhajni-chakli", "chakli", "Bhajni Chakli", "Traditional Maharashtrian chakli with mixed lentil flour", 700, "per kg"),
				seedItem("jowari-chakli", "chakli", "Jowari Chakli", "Healthy chakli made from sorghum flour with authentic taste", 650, "per kg"),
			},
		},
		{
			ID:          "savory",
			Name:        "Savory Delights",
			Description: "Assorted crispy and flavorful traditional snacks",
			Icon:        "🥨",
			Items: []models.CatalogItem{
				seedItem("farsi-puri", "savory", "Farsi Puri", "Delicate and crispy deep-fried bread perfect for snacking", 550, "per kg"),
				seedItem("ribbon-pakoda", "savory", "Ribbon Pakoda", "Crunchy ribbon-shaped fritters with aromatic spices", 525, "per kg"),
				seedItem("thika-sev", "savory", "Thika Sev", "Fine and crispy gram flour noodles with perfect seasoning", 540, "per kg"),
				seedItem("mathri", "savory", "Mathri", "Flaky and crispy traditional biscuits with ajwain", 650, "per kg"),
				seedItem("thika-shankarpala", "savory", "Thika Shankarpala", "Diamond-shaped crispy snacks with subtle spice blend", 625, "per kg"),
				seedItem("sweet-shankarpala", "savory", "Sweet Shankarpala", "Sweet version of traditional shankarpala with jaggery", 675, "per kg"),
			},
		},
		{
			ID:          "sweets",
			Name:        "Festival Sweets",
			Description: "Traditional sweets to make your Diwali celebrations memorable",
			Icon:        "🍰",
			Items: []models.CatalogItem{
				seedItem("gujjia", "sweets", "Gujjia", "Crescent-shaped pastry filled with khoya and dry fruits", 35, "per piece"),
				seedItem("karanji", "sweets", "Saada Karanji", "Traditional Maharashtrian sweet dumpling with coconut filling", 28, "per piece"),
			},
		},
		{
			ID:          "laddus",
			Name:        "Laddu Collection",
			Description: "Round balls of sweetness in various flavors",
			Icon:        "⚫",
			Items: []models.CatalogItem{
				seedItem("besan-laddu", "laddus", "Besan Laddu", "Classic gram flour laddus with ghee and cardamom", 1050, "per kg"),
				seedItem("rava-besan", "laddus", "Rava-Besan Laddu", "Combination of semolina and gram flour in sweet balls", 800, "per kg"),
				seedItem("rava-coconut", "laddus", "Rava-Coconut Laddu", "Semolina laddus with fresh coconut and cardamom", 750, "per kg"),
				seedItem("rava-plain", "laddus", "Rava-Plain Laddu", "Simple and delicious semolina laddus", 675, "per kg"),
			},
		},
	}
}

func seedItem(id, categoryID, name, description string, price int64, unit string) models.CatalogItem {
	return models.CatalogItem{
		ID:          id,
		CategoryID:  categoryID,
		Name:        name,
		Description: description,
		Price:       price,
		Unit:        unit,
		Status:      models.ProductStatusActive,
	}
}

// DefaultSettings mirrors the shop info shipped with the storefront.
func DefaultSettings() models.WebsiteSettings {
	return models.WebsiteSettings{
		ShopName:        "Aparna's Diwali Delights",
		Tagline:         "Traditional Sweets & Snacks for Your Festival Celebrations",
		Description:     "Authentic homemade delicacies crafted with love by Aparna for your Diwali festivities",
		ContactPhone:    "+91 9920632654",
		ContactEmail:    "aparna.delights@gmail.com",
		ContactAddress:  "Borivali (W), Mumbai, Maharashtra",
		FSSAILicense:    "21521058000362",
		OrderingEnabled: true,
	}
}
