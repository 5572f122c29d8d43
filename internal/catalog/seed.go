package catalog

import "github.com/shopspring/decimal"

// Seed is the catalog every fresh store starts with. The Postgres schema
// carries the same rows in its seed migration.
func Seed() []Product {
	return []Product{
		{
			ID:          "basic-tshirt",
			Name:        "Basic T-Shirt",
			Category:    "t-shirts",
			BasePrice:   decimal.NewFromInt(25),
			Description: "100% cotton customizable t-shirt",
			Sizes:       []string{"XS", "S", "M", "L", "XL", "XXL"},
			Colors:      []string{"white", "black", "gray", "blue", "red"},
			Image:       "tshirt_base.jpg",
		},
		{
			ID:          "classic-hoodie",
			Name:        "Classic Hoodie",
			Category:    "hoodies",
			BasePrice:   decimal.NewFromInt(45),
			Description: "Customizable hooded sweatshirt",
			Sizes:       []string{"S", "M", "L", "XL", "XXL"},
			Colors:      []string{"black", "gray", "navy", "green"},
			Image:       "hoodie_base.jpg",
		},
		{
			ID:          "athletic-pants",
			Name:        "Athletic Pants",
			Category:    "pants",
			BasePrice:   decimal.NewFromInt(35),
			Description: "Customizable athletic pants",
			Sizes:       []string{"28", "30", "32", "34", "36", "38"},
			Colors:      []string{"black", "gray", "blue", "green"},
			Image:       "pants_base.jpg",
		},
	}
}
