package handlers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"

	"go-huerta-backend/internal/database"
	"go-huerta-backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type CreateProductRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Stock       int             `json:"stock"`
	MinStock    *int            `json:"min_stock"`
	Category    string          `json:"category" binding:"required"`
	ImageURL    *string         `json:"image_url"`
	SKU         *string         `json:"sku"`
}

type UpdateProductRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock"`
	MinStock    *int             `json:"min_stock"`
	Category    *string          `json:"category"`
	ImageURL    *string          `json:"image_url"`
	SKU         *string          `json:"sku"`
	IsActive    *bool            `json:"is_active"`
}

// --- GET: List active products, newest first ---
func GetProducts(c *gin.Context) {
	var products []models.Product
	err := database.DB.Where("is_active = ?", true).
		Order("created_at desc").
		Find(&products).Error
	if err != nil {
		logrus.WithError(err).Error("listing products")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, products)
}

// --- GET: Fetch one product by ID ---
// Inactive products are still reachable here so old sale lines keep resolving.
func GetProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var product models.Product
	if err := database.DB.First(&product, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, product)
}

// --- POST: Add a new product ---
func AddProduct(c *gin.Context) {
	var input CreateProductRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	if !input.Price.IsPositive() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Price must be greater than zero"})
		return
	}
	if input.Stock < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Stock cannot be negative"})
		return
	}

	if input.SKU != nil {
		var existing models.Product
		if err := database.DB.Where("sku = ?", *input.SKU).First(&existing).Error; err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "A product with this SKU already exists"})
			return
		}
	}

	minStock := 5
	if input.MinStock != nil {
		minStock = *input.MinStock
	}

	product := models.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
		MinStock:    minStock,
		Category:    input.Category,
		ImageURL:    input.ImageURL,
		SKU:         input.SKU,
		IsActive:    true,
	}

	if err := database.DB.Create(&product).Error; err != nil {
		logrus.WithError(err).Error("creating product")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, product)
}

// --- PUT: Partial update ---
func UpdateProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var product models.Product
	if err := database.DB.First(&product, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	var input UpdateProductRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	if input.Price != nil && !input.Price.IsPositive() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Price must be greater than zero"})
		return
	}
	if input.Stock != nil && *input.Stock < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Stock cannot be negative"})
		return
	}

	// SKU is an identifying field: re-check uniqueness when it changes
	if input.SKU != nil {
		var existing models.Product
		err := database.DB.Where("sku = ? AND id != ?", *input.SKU, product.ID).
			First(&existing).Error
		if err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "A product with this SKU already exists"})
			return
		}
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Price != nil {
		updates["price"] = *input.Price
	}
	if input.Stock != nil {
		updates["stock"] = *input.Stock
	}
	if input.MinStock != nil {
		updates["min_stock"] = *input.MinStock
	}
	if input.Category != nil {
		updates["category"] = *input.Category
	}
	if input.ImageURL != nil {
		updates["image_url"] = *input.ImageURL
	}
	if input.SKU != nil {
		updates["sku"] = *input.SKU
	}
	if input.IsActive != nil {
		updates["is_active"] = *input.IsActive
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&product).Updates(updates).Error; err != nil {
			logrus.WithError(err).Error("updating product")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
	}

	c.JSON(http.StatusOK, product)
}

// --- DELETE: Soft delete ---
// Products are never hard-deleted so historical sale items stay valid.
func DeleteProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var product models.Product
	if err := database.DB.First(&product, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	if err := database.DB.Model(&product).Update("is_active", false).Error; err != nil {
		logrus.WithError(err).Error("deactivating product")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

// --- UPLOAD: Handle Image Files ---
func UploadImage(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}

	uploadDir := c.GetString("uploadDir")
	if uploadDir == "" {
		uploadDir = "./uploads"
	}

	// Random filename so uploads can never collide or traverse paths
	filename := uuid.New().String() + filepath.Ext(file.Filename)
	dest := filepath.Join(uploadDir, filename)

	if err := c.SaveUploadedFile(file, dest); err != nil {
		logrus.WithError(err).Error("saving upload")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file"})
		return
	}

	baseURL := c.GetString("baseURL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "File uploaded successfully",
		"url":     fmt.Sprintf("%s/uploads/%s", baseURL, filename),
	})
}

// parseID is shared by the :id routes
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return 0, false
	}
	return uint(id), true
}
