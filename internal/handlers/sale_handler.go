package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"go-huerta-backend/internal/database"
	"go-huerta-backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SaleRequest defines what the frontend sends at checkout
type SaleRequest struct {
	CustomerID uint `json:"customer_id" binding:"required"`
	EmployeeID *uint `json:"employee_id"`
	Items      []struct {
		ProductID uint `json:"product_id" binding:"required"`
		Quantity  int  `json:"quantity" binding:"required,min=1"`
	} `json:"items" binding:"required,min=1"`
	PaymentMethod *string `json:"payment_method"`
	Notes         *string `json:"notes"`
}

type UpdateSaleRequest struct {
	Status        *string `json:"status"`
	Notes         *string `json:"notes"`
	PaymentMethod *string `json:"payment_method"`
}

// errStockRace signals that stock ran out between validation and commit.
var errStockRace = errors.New("stock changed during checkout")

// saleGraph preloads everything the frontend renders for a sale.
func saleGraph(db *gorm.DB) *gorm.DB {
	return db.Preload("Customer").
		Preload("Employee").
		Preload("User").
		Preload("Items.Product")
}

// --- GET: List all sales, newest first ---
func GetSales(c *gin.Context) {
	var sales []models.Sale
	if err := saleGraph(database.DB).Order("created_at desc").Find(&sales).Error; err != nil {
		logrus.WithError(err).Error("listing sales")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, sales)
}

// --- GET: Fetch one sale with its full graph ---
func GetSale(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var sale models.Sale
	if err := saleGraph(database.DB).First(&sale, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sale not found"})
		return
	}

	c.JSON(http.StatusOK, sale)
}

// --- POST: Checkout ---
// Validates everything up front, then runs the whole mutation in one
// transaction: sale header, line items with snapshotted prices, and the
// stock decrement per product. The sale number is derived from the row's
// auto-increment ID inside the same transaction, so concurrent checkouts
// can never produce the same number.
func ProcessSale(c *gin.Context) {
	var req SaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	// 1. Resolve references before touching anything
	var customer models.Customer
	if err := database.DB.First(&customer, req.CustomerID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Customer with ID %d not found", req.CustomerID)})
		return
	}

	if req.EmployeeID != nil {
		var employee models.Employee
		if err := database.DB.First(&employee, *req.EmployeeID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Employee with ID %d not found", *req.EmployeeID)})
			return
		}
	}

	// 2. Validate stock and compute totals with current prices
	totalAmount := decimal.Zero
	var saleItems []models.SaleItem

	for _, item := range req.Items {
		var product models.Product
		if err := database.DB.First(&product, item.ProductID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Product with ID %d not found", item.ProductID)})
			return
		}

		if product.Stock < item.Quantity {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": fmt.Sprintf("Insufficient stock for %s. Available: %d, Requested: %d",
					product.Name, product.Stock, item.Quantity),
			})
			return
		}

		subtotal := product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		totalAmount = totalAmount.Add(subtotal)

		saleItems = append(saleItems, models.SaleItem{
			ProductID: product.ID,
			Quantity:  item.Quantity,
			UnitPrice: product.Price, // Snapshot: later price edits must not rewrite history
			Subtotal:  subtotal,
		})
	}

	var userID *uint
	if v, exists := c.Get("userID"); exists {
		id := v.(uint)
		userID = &id
	}

	sale := models.Sale{
		CustomerID:    req.CustomerID,
		EmployeeID:    req.EmployeeID,
		UserID:        userID,
		TotalAmount:   totalAmount,
		Status:        models.SaleStatusCompleted,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
		Items:         saleItems,
	}

	// 3. All-or-nothing write
	var racedProductID uint
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		// Items are inserted together with the header; the references were
		// validated above and must not be upserted as associations.
		if err := tx.Omit("Customer", "Employee", "User").Create(&sale).Error; err != nil {
			return err
		}

		sale.SaleNumber = fmt.Sprintf("VTA-%06d", sale.ID)
		if err := tx.Model(&models.Sale{}).Where("id = ?", sale.ID).
			Update("sale_number", sale.SaleNumber).Error; err != nil {
			return err
		}

		for _, item := range sale.Items {
			// The guard catches a concurrent checkout draining the stock
			// after our validation read.
			res := tx.Model(&models.Product{}).
				Where("id = ? AND stock >= ?", item.ProductID, item.Quantity).
				Update("stock", gorm.Expr("stock - ?", item.Quantity))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				racedProductID = item.ProductID
				return errStockRace
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, errStockRace) {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Insufficient stock for product %d", racedProductID)})
			return
		}
		logrus.WithError(err).Error("creating sale")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	// 4. Return the complete sale with its associations
	var complete models.Sale
	if err := saleGraph(database.DB).First(&complete, sale.ID).Error; err != nil {
		logrus.WithError(err).Error("reloading sale")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, complete)
}

// --- PUT: Update status / notes / payment method ---
func UpdateSale(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var sale models.Sale
	if err := database.DB.First(&sale, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sale not found"})
		return
	}

	var input UpdateSaleRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	updates := map[string]interface{}{}
	if input.Status != nil {
		switch *input.Status {
		case models.SaleStatusPending, models.SaleStatusCompleted, models.SaleStatusCancelled:
			updates["status"] = *input.Status
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
			return
		}
	}
	if input.Notes != nil {
		updates["notes"] = *input.Notes
	}
	if input.PaymentMethod != nil {
		updates["payment_method"] = *input.PaymentMethod
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&sale).Updates(updates).Error; err != nil {
			logrus.WithError(err).Error("updating sale")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
	}

	c.JSON(http.StatusOK, sale)
}

// --- DELETE: Reverse a sale ---
// Restores the exact quantities the sale decremented, then removes the line
// items before the header. Completed sales are immutable through this path:
// they must be moved to PENDING or CANCELLED first.
func DeleteSale(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var sale models.Sale
	if err := database.DB.Preload("Items").First(&sale, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sale not found"})
		return
	}

	if sale.Status == models.SaleStatusCompleted {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot delete a completed sale"})
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		for _, item := range sale.Items {
			err := tx.Model(&models.Product{}).
				Where("id = ?", item.ProductID).
				Update("stock", gorm.Expr("stock + ?", item.Quantity)).Error
			if err != nil {
				return err
			}
		}

		// Children first, then the header
		if err := tx.Where("sale_id = ?", sale.ID).Delete(&models.SaleItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&sale).Error
	})
	if err != nil {
		logrus.WithError(err).Error("deleting sale")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Sale deleted successfully"})
}
