package store

import (
	"time"

	"natalify-backend/internal/models"
)

// SeedProducts returns the stock catalog the service boots with. State is
// volatile, so every restart begins from this list.
func SeedProducts() []models.Product {
	now := time.Now()
	return []models.Product{
		{
			ID:            "1",
			Name:          "Samsung Galaxy A54 5G",
			Description:   "Stunning 6.4-inch Super AMOLED display with 120Hz refresh rate. Powerful 50MP triple camera system for amazing photography.",
			Price:         45000,
			OriginalPrice: 50000,
			Discount:      10,
			Category:      "Electronics",
			Images: []models.ProductImage{
				{URL: "https://images.unsplash.com/photo-1511707171634-5f897ff02aa9?w=500", Alt: "Samsung Galaxy A54"},
			},
			Stock:      25,
			IsFeatured: true,
			Features:   []string{"5G Connectivity", "Triple Camera", "120Hz Display", "Fast Charging"},
			CreatedAt:  now,
			UpdatedAt:  now,
		},
		{
			ID:            "2",
			Name:          "Premium Cotton T-Shirt",
			Description:   "Comfortable 100% cotton t-shirt perfect for casual wear. Available in multiple colors and sizes.",
			Price:         1200,
			OriginalPrice: 1500,
			Discount:      20,
			Category:      "Fashion",
			Images: []models.ProductImage{
				{URL: "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=500", Alt: "Cotton T-Shirt"},
			},
			Stock:      50,
			IsFeatured: true,
			Features:   []string{"100% Cotton", "Machine Washable", "Multiple Colors", "Comfortable Fit"},
			CreatedAt:  now,
			UpdatedAt:  now,
		},
		{
			ID:          "3",
			Name:        "Bluetooth Wireless Headphones",
			Description: "Premium wireless headphones with noise cancellation and long battery life. Perfect for music and calls.",
			Price:       2800,
			Category:    "Accessories",
			Images: []models.ProductImage{
				{URL: "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=500", Alt: "Wireless Headphones"},
			},
			Stock:      35,
			IsFeatured: true,
			Features:   []string{"Bluetooth 5.0", "Noise Cancellation", "20H Battery", "Quick Charge"},
			CreatedAt:  now,
			UpdatedAt:  now,
		},
		{
			ID:            "4",
			Name:          "Non-Stick Cookware Set",
			Description:   "Complete 7-piece non-stick cookware set perfect for modern kitchens. Easy to clean and durable.",
			Price:         3500,
			OriginalPrice: 4000,
			Discount:      12,
			Category:      "Home & Kitchen",
			Images: []models.ProductImage{
				{URL: "https://images.unsplash.com/photo-1556228453-efd6c1ff04f6?w=500", Alt: "Cookware Set"},
			},
			Stock:      20,
			IsFeatured: false,
			Features:   []string{"Non-Stick Coating", "7-Piece Set", "Dishwasher Safe", "Heat Resistant"},
			CreatedAt:  now,
			UpdatedAt:  now,
		},
		{
			ID:            "5",
			Name:          "Apple iPhone 14",
			Description:   "Advanced dual-camera system with Photographic Styles, Cinematic mode, and Action mode. A15 Bionic chip for lightning-fast performance.",
			Price:         85000,
			OriginalPrice: 90000,
			Discount:      5,
			Category:      "Electronics",
			Images: []models.ProductImage{
				{URL: "https://images.unsplash.com/photo-1592899677977-9c10ca588bbd?w=500", Alt: "iPhone 14"},
			},
			Stock:      15,
			IsFeatured: true,
			Features:   []string{"A15 Bionic Chip", "Dual Camera", "Face ID", "Wireless Charging"},
			CreatedAt:  now,
			UpdatedAt:  now,
		},
		{
			ID:            "6",
			Name:          "Smart Watch - Fitness Tracker",
			Description:   "Advanced fitness tracker with heart rate monitoring, sleep tracking, and smartphone notifications.",
			Price:         4500,
			OriginalPrice: 5000,
			Discount:      10,
			Category:      "Accessories",
			Images: []models.ProductImage{
				{URL: "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=500", Alt: "Smart Watch"},
			},
			Stock:      25,
			IsFeatured: true,
			Features:   []string{"Heart Rate Monitor", "Sleep Tracking", "Waterproof", "Long Battery"},
			CreatedAt:  now,
			UpdatedAt:  now,
		},
	}
}

// SeedOrders returns the demo orders the service boots with.
func SeedOrders() []models.Order {
	return []models.Order{
		{
			ID:          "order1",
			OrderNumber: "NAT-2024-001",
			Customer: models.OrderCustomer{
				Name:    "John Doe",
				Email:   "john@example.com",
				Phone:   "+8801712345678",
				Address: "Dhaka, Bangladesh",
			},
			Items: []models.OrderItem{
				{
					ProductID: "1",
					Name:      "Samsung Galaxy A54 5G",
					Price:     45000,
					Quantity:  1,
					Image:     "https://images.unsplash.com/photo-1511707171634-5f897ff02aa9?w=500",
				},
			},
			TotalAmount:   45000,
			Status:        models.OrderPending,
			PaymentMethod: models.PaymentCOD,
			PaymentStatus: models.PaymentPending,
			CreatedAt:     time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
			UpdatedAt:     time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "order2",
			OrderNumber: "NAT-2024-002",
			Customer: models.OrderCustomer{
				Name:    "Sarah Ahmed",
				Email:   "sarah@example.com",
				Phone:   "+8801798765432",
				Address: "Chittagong, Bangladesh",
			},
			Items: []models.OrderItem{
				{
					ProductID: "2",
					Name:      "Premium Cotton T-Shirt",
					Price:     1200,
					Quantity:  2,
					Image:     "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=500",
				},
			},
			TotalAmount:   2400,
			Status:        models.OrderConfirmed,
			PaymentMethod: models.PaymentCOD,
			PaymentStatus: models.PaymentPending,
			CreatedAt:     time.Date(2024, time.January, 16, 0, 0, 0, 0, time.UTC),
			UpdatedAt:     time.Date(2024, time.January, 16, 0, 0, 0, 0, time.UTC),
		},
	}
}
