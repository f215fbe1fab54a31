package handlers

import (
	"net/http"

	"go-huerta-backend/internal/database"
	"go-huerta-backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type CreateEmployeeRequest struct {
	Name     string           `json:"name" binding:"required"`
	Email    string           `json:"email" binding:"required,email"`
	Phone    *string          `json:"phone"`
	Position string           `json:"position" binding:"required"`
	Salary   *decimal.Decimal `json:"salary"`
}

type UpdateEmployeeRequest struct {
	Name     *string          `json:"name"`
	Email    *string          `json:"email"`
	Phone    *string          `json:"phone"`
	Position *string          `json:"position"`
	Salary   *decimal.Decimal `json:"salary"`
	IsActive *bool            `json:"is_active"`
}

// --- GET: List active employees, newest first ---
func GetEmployees(c *gin.Context) {
	var employees []models.Employee
	err := database.DB.Where("is_active = ?", true).
		Order("created_at desc").
		Find(&employees).Error
	if err != nil {
		logrus.WithError(err).Error("listing employees")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, employees)
}

// --- GET: Fetch one employee with their 10 most recent sales ---
func GetEmployee(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var employee models.Employee
	err := database.DB.
		Preload("Sales", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at desc").Limit(10)
		}).
		First(&employee, id).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
		return
	}

	c.JSON(http.StatusOK, employee)
}

// --- POST: Create an employee ---
func AddEmployee(c *gin.Context) {
	var input CreateEmployeeRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	var existing models.Employee
	if err := database.DB.Where("email = ?", input.Email).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "An employee with this email already exists"})
		return
	}

	employee := models.Employee{
		Name:     input.Name,
		Email:    input.Email,
		Phone:    input.Phone,
		Position: input.Position,
		Salary:   input.Salary,
		IsActive: true,
	}

	if err := database.DB.Create(&employee).Error; err != nil {
		logrus.WithError(err).Error("creating employee")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, employee)
}

// --- PUT: Partial update ---
func UpdateEmployee(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var employee models.Employee
	if err := database.DB.First(&employee, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
		return
	}

	var input UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	// Email identifies the employee: re-check uniqueness when it changes
	if input.Email != nil {
		var existing models.Employee
		err := database.DB.Where("email = ? AND id != ?", *input.Email, employee.ID).
			First(&existing).Error
		if err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "An employee with this email already exists"})
			return
		}
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Email != nil {
		updates["email"] = *input.Email
	}
	if input.Phone != nil {
		updates["phone"] = *input.Phone
	}
	if input.Position != nil {
		updates["position"] = *input.Position
	}
	if input.Salary != nil {
		updates["salary"] = *input.Salary
	}
	if input.IsActive != nil {
		updates["is_active"] = *input.IsActive
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&employee).Updates(updates).Error; err != nil {
			logrus.WithError(err).Error("updating employee")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
	}

	c.JSON(http.StatusOK, employee)
}

// --- DELETE: Soft delete ---
func DeleteEmployee(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var employee models.Employee
	if err := database.DB.First(&employee, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
		return
	}

	if err := database.DB.Model(&employee).Update("is_active", false).Error; err != nil {
		logrus.WithError(err).Error("deactivating employee")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Employee deleted successfully"})
}
