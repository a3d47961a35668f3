package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"natalify-backend/internal/config"
	"natalify-backend/internal/middleware"
	"natalify-backend/internal/store"
)

const adminTestSecret = "admin-test-secret"

func adminRouter(t *testing.T, products *store.ProductStore, orders *store.OrderStore) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hashing failed: %v", err)
	}
	adminCfg := config.AdminConfig{
		Username:     "admin",
		Email:        "admin@example.com",
		Name:         "Admin User",
		PasswordHash: string(hash),
	}

	r := gin.New()
	r.POST("/admin/login", AdminLogin(adminCfg, adminTestSecret, time.Hour))

	admin := r.Group("/admin")
	admin.Use(middleware.AdminAuth(adminTestSecret))
	{
		admin.GET("/dashboard", GetDashboard(products, orders))
		admin.GET("/products", GetAllProducts(products))
		admin.POST("/products", CreateProduct(products))
		admin.PUT("/products/:id", UpdateProduct(products))
		admin.DELETE("/products/:id", DeleteProduct(products))
		admin.GET("/orders", GetAllOrders(orders))
		admin.PATCH("/orders/:id/status", UpdateOrderStatus(orders))
	}
	return r
}

func loginToken(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := postJSON(t, r, "/admin/login", `{"username": "admin", "password": "admin123"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", w.Code, w.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("expected a token")
	}
	return resp.Token
}

func authedJSON(t *testing.T, r *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAdminLoginRejectsBadCredentials(t *testing.T) {
	r := adminRouter(t, store.NewProductStore(nil), store.NewOrderStore(nil))

	w := postJSON(t, r, "/admin/login", `{"username": "admin", "password": "wrong"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong password, got %d", w.Code)
	}

	w = postJSON(t, r, "/admin/login", `{"username": "intruder", "password": "admin123"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for unknown username, got %d", w.Code)
	}

	w = postJSON(t, r, "/admin/login", `{"username": "admin"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing password, got %d", w.Code)
	}
}

func TestAdminRoutesRequireToken(t *testing.T) {
	r := adminRouter(t, store.NewProductStore(store.SeedProducts()), store.NewOrderStore(nil))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/products", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without a token, got %d", w.Code)
	}
}

func TestAdminProductCRUDRoundTrip(t *testing.T) {
	products := store.NewProductStore(store.SeedProducts())
	r := adminRouter(t, products, store.NewOrderStore(nil))
	token := loginToken(t, r)

	w := authedJSON(t, r, http.MethodPost, "/admin/products", token, `{
		"name": "Desk Lamp",
		"description": "LED desk lamp with adjustable arm",
		"price": 1800,
		"originalPrice": 2000,
		"category": "Home & Kitchen",
		"stock": 10
	}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var created struct {
		Product struct {
			ID       string `json:"id"`
			Discount int    `json:"discount"`
		} `json:"product"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if created.Product.ID != "7" {
		t.Fatalf("expected sequential id 7, got %q", created.Product.ID)
	}
	if created.Product.Discount != 10 {
		t.Fatalf("expected derived discount 10, got %d", created.Product.Discount)
	}

	w = authedJSON(t, r, http.MethodPut, "/admin/products/7", token, `{"price": 1500}`)
	if w.Code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var updated struct {
		Product struct {
			Price    int `json:"price"`
			Discount int `json:"discount"`
		} `json:"product"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &updated); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if updated.Product.Price != 1500 || updated.Product.Discount != 25 {
		t.Fatalf("expected price 1500 discount 25, got %+v", updated.Product)
	}

	w = authedJSON(t, r, http.MethodGet, "/admin/products?search=desk+lamp", token, "")
	if w.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", w.Code)
	}
	var list productListResponse
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(list.Items) != 1 || list.Items[0].ID != "7" {
		t.Fatalf("expected the created product, got %+v", list.Items)
	}

	w = authedJSON(t, r, http.MethodDelete, "/admin/products/7", token, "")
	if w.Code != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d", w.Code)
	}
	if _, err := products.Get("7"); err == nil {
		t.Fatal("expected the product to be gone")
	}

	w = authedJSON(t, r, http.MethodDelete, "/admin/products/7", token, "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %d", w.Code)
	}
}

func TestAdminCreateProductValidation(t *testing.T) {
	r := adminRouter(t, store.NewProductStore(nil), store.NewOrderStore(nil))
	token := loginToken(t, r)

	w := authedJSON(t, r, http.MethodPost, "/admin/products", token, `{"name": "No price", "description": "d", "category": "c"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if resp["message"] != "Name, description, price, and category are required" {
		t.Fatalf("unexpected message %v", resp["message"])
	}
}

func TestAdminUpdateOrderStatus(t *testing.T) {
	orders := store.NewOrderStore(store.SeedOrders())
	r := adminRouter(t, store.NewProductStore(nil), orders)
	token := loginToken(t, r)

	w := authedJSON(t, r, http.MethodPatch, "/admin/orders/order1/status", token, `{"status": "shipped", "notes": "handed to courier"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	order, err := orders.Get("order1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if string(order.Status) != "shipped" || order.Notes != "handed to courier" {
		t.Fatalf("unexpected order state: %+v", order)
	}

	w = authedJSON(t, r, http.MethodPatch, "/admin/orders/order1/status", token, `{"status": "teleported"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad status, got %d", w.Code)
	}

	w = authedJSON(t, r, http.MethodPatch, "/admin/orders/order99/status", token, `{"status": "shipped"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown order, got %d", w.Code)
	}
}

func TestAdminDashboard(t *testing.T) {
	r := adminRouter(t, store.NewProductStore(store.SeedProducts()), store.NewOrderStore(store.SeedOrders()))
	token := loginToken(t, r)

	w := authedJSON(t, r, http.MethodGet, "/admin/dashboard", token, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Stats struct {
			TotalProducts int `json:"totalProducts"`
			TotalOrders   int `json:"totalOrders"`
			TotalRevenue  int `json:"totalRevenue"`
		} `json:"stats"`
		OrdersByStatus map[string]int `json:"ordersByStatus"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if resp.Stats.TotalProducts != 6 || resp.Stats.TotalOrders != 2 {
		t.Fatalf("unexpected stats: %+v", resp.Stats)
	}
	if resp.Stats.TotalRevenue != 47400 {
		t.Fatalf("expected revenue 47400, got %d", resp.Stats.TotalRevenue)
	}
	if resp.OrdersByStatus["pending"] != 1 || resp.OrdersByStatus["confirmed"] != 1 {
		t.Fatalf("unexpected status counts: %v", resp.OrdersByStatus)
	}
}
