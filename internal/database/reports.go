package database

import (
	"time"

	"go-huerta-backend/internal/models"

	"github.com/shopspring/decimal"
)

// SalesReportResult holds aggregate figures for a date range
type SalesReportResult struct {
	TotalRevenue decimal.Decimal
	TotalCount   int64
}

// GetSalesReport calculates sales within a specific date range
func GetSalesReport(start, end time.Time) (*SalesReportResult, error) {
	var result SalesReportResult

	// COALESCE ensures we get 0 instead of NULL if no sales exist
	err := DB.Model(&models.Sale{}).
		Where("created_at BETWEEN ? AND ?", start, end).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&result.TotalRevenue).Error
	if err != nil {
		return nil, err
	}

	err = DB.Model(&models.Sale{}).
		Where("created_at BETWEEN ? AND ?", start, end).
		Count(&result.TotalCount).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// GetLowStockProducts returns active products at or below their minimum stock
func GetLowStockProducts() ([]models.Product, error) {
	var products []models.Product
	err := DB.Where("is_active = ? AND stock <= min_stock", true).
		Order("stock asc").
		Find(&products).Error
	return products, err
}
