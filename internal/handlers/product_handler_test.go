package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"go-huerta-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddProduct(t *testing.T) {
	r := setupRouter(t)
	token := adminToken(t)

	w := doJSON(t, r, http.MethodPost, "/api/products", map[string]interface{}{
		"name":     "Tomate Cherry",
		"price":    2.50,
		"stock":    25,
		"category": "Vegetales",
		"sku":      "VEG-001",
	}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var product models.Product
	decodeBody(t, w, &product)
	assert.Equal(t, "Tomate Cherry", product.Name)
	assert.Equal(t, "2.5", product.Price.String())
	assert.Equal(t, 25, product.Stock)
	assert.Equal(t, 5, product.MinStock) // default when omitted
	assert.True(t, product.IsActive)

	// Same SKU again
	w = doJSON(t, r, http.MethodPost, "/api/products", map[string]interface{}{
		"name":     "Otro Tomate",
		"price":    3.00,
		"category": "Vegetales",
		"sku":      "VEG-001",
	}, token)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "A product with this SKU already exists", errorMessage(t, w))
}

func TestAddProductValidation(t *testing.T) {
	r := setupRouter(t)
	token := adminToken(t)

	w := doJSON(t, r, http.MethodPost, "/api/products", map[string]interface{}{
		"name": "Sin Precio",
	}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/products", map[string]interface{}{
		"name":     "Precio Negativo",
		"price":    -1.50,
		"category": "Vegetales",
	}, token)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Price must be greater than zero", errorMessage(t, w))

	w = doJSON(t, r, http.MethodPost, "/api/products", map[string]interface{}{
		"name":     "Stock Negativo",
		"price":    1.50,
		"stock":    -3,
		"category": "Vegetales",
	}, token)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Stock cannot be negative", errorMessage(t, w))
}

func TestUpdateProductPartial(t *testing.T) {
	r := setupRouter(t)
	token := adminToken(t)

	product := createProduct(t, "Lechuga Romana", 1.80, 12, 5)

	w := doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/products/%d", product.ID),
		map[string]interface{}{"price": 2.10}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	stored := reloadProduct(t, product.ID)
	assert.Equal(t, "2.1", stored.Price.String())
	// Untouched fields survive a partial update
	assert.Equal(t, "Lechuga Romana", stored.Name)
	assert.Equal(t, 12, stored.Stock)
}

func TestUpdateProductSKUConflict(t *testing.T) {
	r := setupRouter(t)
	token := adminToken(t)

	sku := "VEG-010"
	first := createProduct(t, "Zanahoria", 1.20, 30, 5)
	require.NoError(t, setSKU(first.ID, sku))

	second := createProduct(t, "Rábano", 1.10, 30, 5)

	w := doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/products/%d", second.ID),
		map[string]interface{}{"sku": sku}, token)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "A product with this SKU already exists", errorMessage(t, w))

	// Writing a product's own SKU back is not a conflict
	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/products/%d", first.ID),
		map[string]interface{}{"sku": sku}, token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDeleteProductIsSoft(t *testing.T) {
	r := setupRouter(t)
	token := adminToken(t)

	product := createProduct(t, "Albahaca", 2.00, 15, 5)
	keep := createProduct(t, "Menta", 1.50, 15, 5)

	w := doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/products/%d", product.ID), nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	// Gone from the active listing
	w = doJSON(t, r, http.MethodGet, "/api/products", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	var listed []models.Product
	decodeBody(t, w, &listed)
	require.Len(t, listed, 1)
	assert.Equal(t, keep.ID, listed[0].ID)

	// Still reachable directly, so old sale lines keep resolving
	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/products/%d", product.ID), nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	var fetched models.Product
	decodeBody(t, w, &fetched)
	assert.False(t, fetched.IsActive)
}

func TestGetProductNotFound(t *testing.T) {
	r := setupRouter(t)
	token := adminToken(t)

	w := doJSON(t, r, http.MethodGet, "/api/products/9999", nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/products/abc", nil, token)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid ID", errorMessage(t, w))
}
