package handlers

import (
	"net/http"

	"go-huerta-backend/internal/database"
	"go-huerta-backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type CustomerRequest struct {
	Name    string  `json:"name" binding:"required"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	DNI     *string `json:"dni"`
}

// --- GET: List all customers, newest first ---
func GetCustomers(c *gin.Context) {
	var customers []models.Customer
	if err := database.DB.Order("created_at desc").Find(&customers).Error; err != nil {
		logrus.WithError(err).Error("listing customers")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, customers)
}

// --- GET: Fetch one customer ---
func GetCustomer(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var customer models.Customer
	if err := database.DB.First(&customer, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		return
	}

	c.JSON(http.StatusOK, customer)
}

// --- POST: Create a customer ---
// Email and DNI must be unique across all customers.
func AddCustomer(c *gin.Context) {
	var input CustomerRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}

	if input.Email != nil {
		var existing models.Customer
		if err := database.DB.Where("email = ?", *input.Email).First(&existing).Error; err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "A customer with this email already exists"})
			return
		}
	}

	if input.DNI != nil {
		var existing models.Customer
		if err := database.DB.Where("dni = ?", *input.DNI).First(&existing).Error; err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "A customer with this DNI already exists"})
			return
		}
	}

	customer := models.Customer{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Address: input.Address,
		DNI:     input.DNI,
	}

	if err := database.DB.Create(&customer).Error; err != nil {
		logrus.WithError(err).Error("creating customer")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, customer)
}

// --- PUT: Update a customer ---
func UpdateCustomer(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var customer models.Customer
	if err := database.DB.First(&customer, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		return
	}

	var input CustomerRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}

	// Uniqueness checks exclude the customer being edited
	if input.Email != nil {
		var existing models.Customer
		err := database.DB.Where("email = ? AND id != ?", *input.Email, customer.ID).
			First(&existing).Error
		if err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Another customer with this email already exists"})
			return
		}
	}

	if input.DNI != nil {
		var existing models.Customer
		err := database.DB.Where("dni = ? AND id != ?", *input.DNI, customer.ID).
			First(&existing).Error
		if err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Another customer with this DNI already exists"})
			return
		}
	}

	updates := map[string]interface{}{
		"name":    input.Name,
		"email":   input.Email,
		"phone":   input.Phone,
		"address": input.Address,
		"dni":     input.DNI,
	}

	if err := database.DB.Model(&customer).Updates(updates).Error; err != nil {
		logrus.WithError(err).Error("updating customer")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, customer)
}

// --- DELETE: Hard delete, blocked when sales reference the customer ---
func DeleteCustomer(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var customer models.Customer
	if err := database.DB.First(&customer, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		return
	}

	var salesCount int64
	if err := database.DB.Model(&models.Sale{}).Where("customer_id = ?", id).Count(&salesCount).Error; err != nil {
		logrus.WithError(err).Error("counting customer sales")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if salesCount > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot delete customer because it has associated sales"})
		return
	}

	if err := database.DB.Delete(&customer).Error; err != nil {
		logrus.WithError(err).Error("deleting customer")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
}
