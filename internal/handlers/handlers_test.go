package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"go-huerta-backend/internal/auth"
	"go-huerta-backend/internal/config"
	"go-huerta-backend/internal/database"
	"go-huerta-backend/internal/models"
	"go-huerta-backend/internal/routes"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupRouter wires the real router against a fresh in-memory database.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	database.DB = db

	cfg := &config.Config{
		AllowRegistration: true,
		AllowedOrigins:    []string{"http://localhost:3000"},
		BaseURL:           "http://localhost:8080",
		UploadDir:         t.TempDir(),
	}
	return routes.Setup(cfg)
}

func adminToken(t *testing.T) string {
	t.Helper()
	token, err := auth.GenerateToken(1, "ADMIN")
	require.NoError(t, err)
	return token
}

// doJSON sends a JSON request through the router, with a bearer token unless
// token is empty.
func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dest))
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp struct {
		Error string `json:"error"`
	}
	decodeBody(t, w, &resp)
	return resp.Error
}

// createProduct inserts a product directly, bypassing the API.
func createProduct(t *testing.T, name string, price float64, stock, minStock int) models.Product {
	t.Helper()
	product := models.Product{
		Name:     name,
		Price:    decimal.NewFromFloat(price),
		Stock:    stock,
		MinStock: minStock,
		Category: "Vegetales",
		IsActive: true,
	}
	require.NoError(t, database.DB.Create(&product).Error)
	return product
}

func createCustomer(t *testing.T, name string) models.Customer {
	t.Helper()
	customer := models.Customer{Name: name}
	require.NoError(t, database.DB.Create(&customer).Error)
	return customer
}

func setSKU(id uint, sku string) error {
	return database.DB.Model(&models.Product{}).Where("id = ?", id).Update("sku", sku).Error
}

func reloadProduct(t *testing.T, id uint) models.Product {
	t.Helper()
	var product models.Product
	require.NoError(t, database.DB.First(&product, id).Error)
	return product
}
