package handlers

import (
	"fmt"
	"net/http"

	"go-huerta-backend/internal/database"
	"go-huerta-backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

// ReportData defines the shape of the dashboard response
type ReportData struct {
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	TotalOrders  int64           `json:"total_orders"`
	TopSelling   []struct {
		ProductName string          `json:"product_name"`
		Sold        int             `json:"sold"`
		Revenue     decimal.Decimal `json:"revenue"`
	} `json:"top_selling"`
	RecentSales []models.Sale    `json:"recent_sales"`
	LowStock    []models.Product `json:"low_stock"`
}

// --- GET: /api/reports ---
func GetSalesReport(c *gin.Context) {
	var data ReportData

	// 1. Total revenue (all time)
	err := database.DB.Model(&models.Sale{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&data.TotalRevenue).Error
	if err != nil {
		logrus.WithError(err).Error("calculating revenue")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to calculate revenue"})
		return
	}

	// 2. Total orders
	if err := database.DB.Model(&models.Sale{}).Count(&data.TotalOrders).Error; err != nil {
		logrus.WithError(err).Error("counting orders")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count orders"})
		return
	}

	// 3. Top 5 best sellers by units
	err = database.DB.Table("sale_items").
		Select("products.name as product_name, SUM(sale_items.quantity) as sold, SUM(sale_items.subtotal) as revenue").
		Joins("JOIN products ON sale_items.product_id = products.id").
		Group("products.name").
		Order("sold desc").
		Limit(5).
		Scan(&data.TopSelling).Error
	if err != nil {
		logrus.WithError(err).Error("fetching top sellers")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch top selling items"})
		return
	}

	// 4. Last 10 sales, newest first
	err = database.DB.Preload("Customer").
		Order("created_at desc").
		Limit(10).
		Find(&data.RecentSales).Error
	if err != nil {
		logrus.WithError(err).Error("fetching recent sales")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recent sales"})
		return
	}

	// 5. Products at or below their reorder threshold
	data.LowStock, err = database.GetLowStockProducts()
	if err != nil {
		logrus.WithError(err).Error("fetching low stock products")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch low stock products"})
		return
	}

	c.JSON(http.StatusOK, data)
}

// --- GET: /api/reports/export ---
// Streams every sale as an xlsx download.
func ExportSalesReport(c *gin.Context) {
	var sales []models.Sale
	err := database.DB.Preload("Customer").
		Order("created_at desc").
		Find(&sales).Error
	if err != nil {
		logrus.WithError(err).Error("exporting sales")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Sales"
	index, err := f.NewSheet(sheet)
	if err != nil {
		logrus.WithError(err).Error("creating sheet")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"Sale Number", "Customer", "Status", "Payment Method", "Total", "Date"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for i, s := range sales {
		row := i + 2
		payment := ""
		if s.PaymentMethod != nil {
			payment = *s.PaymentMethod
		}
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), s.SaleNumber)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), s.Customer.Name)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), s.Status)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), payment)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), s.TotalAmount.InexactFloat64())
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), s.CreatedAt.Format("2006-01-02 15:04"))
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename=sales.xlsx")
	if err := f.Write(c.Writer); err != nil {
		logrus.WithError(err).Error("writing xlsx")
	}
}
