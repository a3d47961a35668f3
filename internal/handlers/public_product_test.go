package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"natalify-backend/internal/models"
	"natalify-backend/internal/store"
)

type productListResponse struct {
	Items      []models.Product `json:"items"`
	Pagination Pagination       `json:"pagination"`
}

func catalogRouter(products *store.ProductStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/products", GetProducts(products))
	r.GET("/products/:id", GetProduct(products))
	r.GET("/products/:id/related", GetRelatedProducts(products))
	return r
}

func electronicsCatalog() *store.ProductStore {
	return store.NewProductStore([]models.Product{
		{ID: "1", Name: "Phone", Description: "A phone", Price: 45000, Category: "Electronics"},
		{ID: "2", Name: "Laptop", Description: "A laptop", Price: 85000, Category: "Electronics"},
		{ID: "3", Name: "Tablet", Description: "A tablet", Price: 30000, Category: "Electronics"},
		{ID: "4", Name: "T-Shirt", Description: "A shirt", Price: 1200, Category: "Fashion"},
	})
}

func TestGetProductsCategoryPagination(t *testing.T) {
	r := catalogRouter(electronicsCatalog())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products?category=Electronics&page=1&limit=2", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp productListResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if len(resp.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(resp.Items))
	}
	if resp.Pagination.TotalPages != 2 || resp.Pagination.TotalCount != 3 {
		t.Fatalf("unexpected pagination: %+v", resp.Pagination)
	}
	if !resp.Pagination.HasNextPage || resp.Pagination.HasPrevPage {
		t.Fatalf("unexpected page flags: %+v", resp.Pagination)
	}
}

func TestGetProductsEmptyResultKeepsPaginationShape(t *testing.T) {
	r := catalogRouter(electronicsCatalog())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products?search=nonexistent&page=3", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp productListResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(resp.Items) != 0 {
		t.Fatalf("expected no items, got %d", len(resp.Items))
	}
	if resp.Pagination.TotalPages != 0 || resp.Pagination.CurrentPage != 3 {
		t.Fatalf("unexpected pagination: %+v", resp.Pagination)
	}
}

func TestGetProductsRejectsBadPagination(t *testing.T) {
	r := catalogRouter(electronicsCatalog())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products?page=0", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestGetProductNotFound(t *testing.T) {
	r := catalogRouter(electronicsCatalog())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products/999", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if body["message"] == "" {
		t.Fatal("expected a message body")
	}
}

func TestGetRelatedProducts(t *testing.T) {
	r := catalogRouter(electronicsCatalog())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products/1/related", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var related []models.Product
	if err := json.Unmarshal(w.Body.Bytes(), &related); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(related) != 2 {
		t.Fatalf("expected 2 related products, got %d", len(related))
	}
	for _, p := range related {
		if p.ID == "1" {
			t.Fatal("related must exclude the subject")
		}
		if p.Category != "Electronics" {
			t.Fatalf("unexpected category %q", p.Category)
		}
	}
}
