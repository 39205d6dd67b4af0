package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yasminebk/beautyuniverse-backend/config"
	"github.com/yasminebk/beautyuniverse-backend/internal/app/model"
	"github.com/yasminebk/beautyuniverse-backend/internal/app/repository"
	"github.com/yasminebk/beautyuniverse-backend/internal/app/service"
	"github.com/yasminebk/beautyuniverse-backend/internal/cart"
	"github.com/yasminebk/beautyuniverse-backend/internal/db"
	"github.com/yasminebk/beautyuniverse-backend/internal/middleware"
)

type cartStatePayload struct {
	Cart struct {
		Items []struct {
			ID       string  `json:"id"`
			Name     string  `json:"name"`
			NameAr   string  `json:"name_ar"`
			Quantity int     `json:"quantity"`
			Price    float64 `json:"unit_price"`
		} `json:"items"`
		TotalItems int     `json:"total_items"`
		TotalPrice float64 `json:"total_price"`
		IsOpen     bool    `json:"is_open"`
	} `json:"cart"`
}

func setupCartControllerTest(t *testing.T) (*gin.Engine, *model.Product) {
	gin.SetMode(gin.TestMode)

	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	productRepo := repository.NewProductRepository(testDB)
	orderRepo := repository.NewOrderRepository(testDB)
	catalogService := service.NewCatalogService(productRepo, orderRepo, nil)

	product := &model.Product{
		Name:     "Fauteuil hydraulique",
		NameAr:   "كرسي هيدروليكي",
		Price:    45000,
		Category: model.CategoryChairs,
		IsActive: true,
	}
	require.NoError(t, productRepo.Create(product))

	manager := cart.NewManager(cart.NewMemorySnapshotStore())
	ctrl := NewCartController(manager, catalogService)

	cartCfg := &config.CartConfig{
		SnapshotTTL: 30 * 24 * time.Hour,
		TokenHeader: "X-Cart-Token",
		TokenCookie: "bu_cart_token",
	}

	router := gin.New()
	router.Use(middleware.CartSessionMiddleware(manager, cartCfg))
	router.GET("/cart", ctrl.GetCart)
	router.POST("/cart/items", ctrl.AddItem)
	router.PUT("/cart/items/:id", ctrl.UpdateQuantity)
	router.DELETE("/cart/items/:id", ctrl.RemoveItem)
	router.DELETE("/cart", ctrl.ClearCart)
	router.PUT("/cart/panel", ctrl.SetPanel)

	return router, product
}

func doCartRequest(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("X-Cart-Token", token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeCart(t *testing.T, w *httptest.ResponseRecorder) cartStatePayload {
	t.Helper()
	var payload cartStatePayload
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	return payload
}

func TestCartController_GetCart_Empty(t *testing.T) {
	router, _ := setupCartControllerTest(t)

	w := doCartRequest(t, router, "GET", "/cart", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Cart-Token"))

	payload := decodeCart(t, w)
	assert.Empty(t, payload.Cart.Items)
	assert.Zero(t, payload.Cart.TotalItems)
	assert.Zero(t, payload.Cart.TotalPrice)
}

func TestCartController_AddItem(t *testing.T) {
	router, product := setupCartControllerTest(t)

	w := doCartRequest(t, router, "POST", "/cart/items", "guest-1", gin.H{
		"product_id": product.ID,
		"quantity":   2,
	})
	require.Equal(t, http.StatusOK, w.Code)

	payload := decodeCart(t, w)
	require.Len(t, payload.Cart.Items, 1)
	assert.Equal(t, "Fauteuil hydraulique", payload.Cart.Items[0].Name)
	assert.Equal(t, "كرسي هيدروليكي", payload.Cart.Items[0].NameAr)
	assert.Equal(t, 2, payload.Cart.TotalItems)
	assert.Equal(t, 90000.0, payload.Cart.TotalPrice)

	// Same product again merges into the existing line
	w = doCartRequest(t, router, "POST", "/cart/items", "guest-1", gin.H{
		"product_id": product.ID,
		"quantity":   1,
	})
	payload = decodeCart(t, w)
	require.Len(t, payload.Cart.Items, 1)
	assert.Equal(t, 3, payload.Cart.TotalItems)
	assert.Equal(t, 135000.0, payload.Cart.TotalPrice)
}

func TestCartController_AddItem_DefaultsQuantityToOne(t *testing.T) {
	router, product := setupCartControllerTest(t)

	w := doCartRequest(t, router, "POST", "/cart/items", "guest-1", gin.H{
		"product_id": product.ID,
	})
	require.Equal(t, http.StatusOK, w.Code)

	payload := decodeCart(t, w)
	assert.Equal(t, 1, payload.Cart.TotalItems)
}

func TestCartController_AddItem_UnknownProduct(t *testing.T) {
	router, _ := setupCartControllerTest(t)

	w := doCartRequest(t, router, "POST", "/cart/items", "guest-1", gin.H{
		"product_id": 9999,
		"quantity":   1,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "PRODUCT_NOT_FOUND")
}

func TestCartController_UpdateQuantity(t *testing.T) {
	router, product := setupCartControllerTest(t)
	id := fmt.Sprintf("%d", product.ID)

	doCartRequest(t, router, "POST", "/cart/items", "guest-1", gin.H{
		"product_id": product.ID,
		"quantity":   1,
	})

	w := doCartRequest(t, router, "PUT", "/cart/items/"+id, "guest-1", gin.H{"quantity": 5})
	payload := decodeCart(t, w)
	assert.Equal(t, 5, payload.Cart.TotalItems)

	// Zero removes the line entirely
	w = doCartRequest(t, router, "PUT", "/cart/items/"+id, "guest-1", gin.H{"quantity": 0})
	payload = decodeCart(t, w)
	assert.Empty(t, payload.Cart.Items)
}

func TestCartController_RemoveItem(t *testing.T) {
	router, product := setupCartControllerTest(t)
	id := fmt.Sprintf("%d", product.ID)

	doCartRequest(t, router, "POST", "/cart/items", "guest-1", gin.H{
		"product_id": product.ID,
		"quantity":   2,
	})

	w := doCartRequest(t, router, "DELETE", "/cart/items/"+id, "guest-1", nil)
	payload := decodeCart(t, w)
	assert.Empty(t, payload.Cart.Items)

	// Removing an absent item is a no-op, not an error
	w = doCartRequest(t, router, "DELETE", "/cart/items/404", "guest-1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCartController_ClearCart(t *testing.T) {
	router, product := setupCartControllerTest(t)

	doCartRequest(t, router, "POST", "/cart/items", "guest-1", gin.H{
		"product_id": product.ID,
		"quantity":   3,
	})

	w := doCartRequest(t, router, "DELETE", "/cart", "guest-1", nil)
	payload := decodeCart(t, w)
	assert.Empty(t, payload.Cart.Items)
	assert.Zero(t, payload.Cart.TotalPrice)
}

func TestCartController_Panel(t *testing.T) {
	router, _ := setupCartControllerTest(t)

	w := doCartRequest(t, router, "PUT", "/cart/panel", "guest-1", gin.H{"is_open": true})
	payload := decodeCart(t, w)
	assert.True(t, payload.Cart.IsOpen)

	w = doCartRequest(t, router, "PUT", "/cart/panel", "guest-1", gin.H{"is_open": false})
	payload = decodeCart(t, w)
	assert.False(t, payload.Cart.IsOpen)
}

func TestCartController_TokensIsolateCarts(t *testing.T) {
	router, product := setupCartControllerTest(t)

	doCartRequest(t, router, "POST", "/cart/items", "guest-a", gin.H{
		"product_id": product.ID,
		"quantity":   2,
	})

	w := doCartRequest(t, router, "GET", "/cart", "guest-b", nil)
	payload := decodeCart(t, w)
	assert.Empty(t, payload.Cart.Items)

	w = doCartRequest(t, router, "GET", "/cart", "guest-a", nil)
	payload = decodeCart(t, w)
	assert.Equal(t, 2, payload.Cart.TotalItems)
}
