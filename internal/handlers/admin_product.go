package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"natalify-backend/internal/models"
	"natalify-backend/internal/store"
)

const placeholderImageURL = "https://images.unsplash.com/photo-1560472354-b33ff0c44a43?w=400"

type productCreateRequest struct {
	Name          string                `json:"name"`
	Description   string                `json:"description"`
	Price         int                   `json:"price"`
	OriginalPrice int                   `json:"originalPrice"`
	Category      string                `json:"category"`
	Stock         int                   `json:"stock"`
	Images        []models.ProductImage `json:"images"`
	Features      []string              `json:"features"`
	IsFeatured    bool                  `json:"isFeatured"`
}

// productUpdateRequest whitelists the mutable product fields. Identity and
// audit fields (id, createdAt) are deliberately absent; the store pins them.
type productUpdateRequest struct {
	Name          *string                `json:"name"`
	Description   *string                `json:"description"`
	Price         *int                   `json:"price"`
	OriginalPrice *int                   `json:"originalPrice"`
	Category      *string                `json:"category"`
	Images        *[]models.ProductImage `json:"images"`
	Stock         *int                   `json:"stock"`
	IsFeatured    *bool                  `json:"isFeatured"`
	Features      *[]string              `json:"features"`
}

// GetAllProducts is the admin catalog listing: search on name and
// description only, category filter, default page size 10.
func GetAllProducts(products *store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, limit, err := parsePaginationParams(c.Query("page"), c.Query("limit"), 10)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, err.Error())
			return
		}

		filtered := products.List(store.ProductFilter{
			Category: c.Query("category"),
			Search:   c.Query("search"),
		})

		items, pagination := paginate(filtered, page, limit)
		c.JSON(http.StatusOK, gin.H{
			"items":      items,
			"pagination": pagination,
		})
	}
}

func CreateProduct(products *store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req productCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		if strings.TrimSpace(req.Name) == "" ||
			strings.TrimSpace(req.Description) == "" ||
			strings.TrimSpace(req.Category) == "" ||
			req.Price <= 0 {
			respondWithError(c, http.StatusBadRequest, "Name, description, price, and category are required")
			return
		}

		if req.Stock < 0 {
			respondWithError(c, http.StatusBadRequest, "stock must be zero or greater")
			return
		}

		images := req.Images
		if len(images) == 0 {
			images = []models.ProductImage{{URL: placeholderImageURL, Alt: req.Name}}
		}
		features := req.Features
		if features == nil {
			features = []string{}
		}

		product := products.Create(models.Product{
			Name:          strings.TrimSpace(req.Name),
			Description:   strings.TrimSpace(req.Description),
			Price:         req.Price,
			OriginalPrice: req.OriginalPrice,
			Discount:      models.DiscountPercent(req.Price, req.OriginalPrice),
			Category:      strings.TrimSpace(req.Category),
			Images:        images,
			Stock:         req.Stock,
			IsFeatured:    req.IsFeatured,
			Features:      features,
		})

		c.JSON(http.StatusCreated, gin.H{
			"message": "Product created successfully",
			"product": product,
		})
	}
}

func UpdateProduct(products *store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req productUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		if req.Price != nil && *req.Price < 0 {
			respondWithError(c, http.StatusBadRequest, "invalid price")
			return
		}
		if req.Stock != nil && *req.Stock < 0 {
			respondWithError(c, http.StatusBadRequest, "stock must be zero or greater")
			return
		}

		product, err := products.Update(c.Param("id"), func(p *models.Product) {
			if req.Name != nil {
				p.Name = strings.TrimSpace(*req.Name)
			}
			if req.Description != nil {
				p.Description = strings.TrimSpace(*req.Description)
			}
			if req.Price != nil {
				p.Price = *req.Price
			}
			if req.OriginalPrice != nil {
				p.OriginalPrice = *req.OriginalPrice
			}
			if req.Category != nil {
				p.Category = strings.TrimSpace(*req.Category)
			}
			if req.Images != nil {
				p.Images = *req.Images
			}
			if req.Stock != nil {
				p.Stock = *req.Stock
			}
			if req.IsFeatured != nil {
				p.IsFeatured = *req.IsFeatured
			}
			if req.Features != nil {
				p.Features = *req.Features
			}
			p.Discount = models.DiscountPercent(p.Price, p.OriginalPrice)
		})
		if err != nil {
			respondWithError(c, http.StatusNotFound, "Product not found")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Product updated successfully",
			"product": product,
		})
	}
}

func DeleteProduct(products *store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := products.Delete(c.Param("id")); err != nil {
			respondWithError(c, http.StatusNotFound, "Product not found")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
	}
}
