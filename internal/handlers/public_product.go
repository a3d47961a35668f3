package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"natalify-backend/internal/store"
)

// GetProducts answers the public catalog listing with featured, category
// and free-text filters plus pagination. The public search matches name,
// description and category.
func GetProducts(products *store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /products"
		defer handlePanic(c, route)

		page, limit, err := parsePaginationParams(c.Query("page"), c.Query("limit"), 12)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, err.Error())
			return
		}

		filtered := products.List(store.ProductFilter{
			FeaturedOnly:   c.Query("featured") == "true",
			Category:       c.Query("category"),
			Search:         c.Query("search"),
			SearchCategory: true,
		})

		items, pagination := paginate(filtered, page, limit)
		c.JSON(http.StatusOK, gin.H{
			"items":      items,
			"pagination": pagination,
		})
	}
}

func GetProduct(products *store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := products.Get(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusNotFound, "Product not found")
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// GetRelatedProducts returns up to 4 same-category products, excluding the
// subject itself.
func GetRelatedProducts(products *store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		related, err := products.Related(c.Param("id"), 4)
		if err != nil {
			respondWithError(c, http.StatusNotFound, "Product not found")
			return
		}
		c.JSON(http.StatusOK, related)
	}
}

// SearchProducts is the narrow search: name and description only, capped
// at limit (default 10).
func SearchProducts(products *store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := strings.TrimSpace(c.Param("query"))

		_, limit, err := parsePaginationParams("", c.Query("limit"), 10)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, err.Error())
			return
		}

		c.JSON(http.StatusOK, products.Search(query, limit))
	}
}

func GetCategories(products *store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, products.Categories())
	}
}
