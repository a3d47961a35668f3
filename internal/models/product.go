package models

import (
	"math"
	"time"
)

// ProductImage is a single catalog image reference.
type ProductImage struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

// Product is a catalog entry. Prices are whole BDT taka.
type Product struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	Price         int            `json:"price"`
	OriginalPrice int            `json:"originalPrice,omitempty"`
	Discount      int            `json:"discount"`
	Category      string         `json:"category"`
	Images        []ProductImage `json:"images"`
	Stock         int            `json:"stock"`
	IsFeatured    bool           `json:"isFeatured"`
	Features      []string       `json:"features"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

// DiscountPercent derives the displayed discount from the price pair:
// round((original-price)/original*100). Zero when there is no original price.
func DiscountPercent(price, originalPrice int) int {
	if originalPrice <= 0 {
		return 0
	}
	return int(math.Round(float64(originalPrice-price) / float64(originalPrice) * 100))
}
