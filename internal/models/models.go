package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale status values. Creation finalizes the sale immediately;
// PENDING/CANCELLED are only reachable through the status update endpoint.
const (
	SaleStatusPending   = "PENDING"
	SaleStatusCompleted = "COMPLETED"
	SaleStatusCancelled = "CANCELLED"
)

// User - The person operating the system
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;size:100" json:"email"`
	PasswordHash string    `json:"-"` // Never return this in JSON
	Name         string    `json:"name"`
	Role         string    `json:"role"` // 'ADMIN', 'EMPLOYEE'
	CreatedAt    time.Time `json:"created_at"`
}

// Customer - Who we sell to. Hard-deleted, but only when no sales reference it.
type Customer struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `json:"name"`
	Email     *string   `gorm:"uniqueIndex;size:100" json:"email"`
	Phone     *string   `json:"phone"`
	Address   *string   `json:"address"`
	DNI       *string   `gorm:"uniqueIndex;size:20" json:"dni"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Employee - Staff attributed to sales. Soft-deleted via IsActive.
type Employee struct {
	ID        uint             `gorm:"primaryKey" json:"id"`
	Name      string           `json:"name"`
	Email     string           `gorm:"uniqueIndex;size:100" json:"email"`
	Phone     *string          `json:"phone"`
	Position  string           `json:"position"`
	Salary    *decimal.Decimal `gorm:"type:decimal(10,2)" json:"salary"`
	IsActive  bool             `json:"is_active"` // set explicitly on create; a column default would make gorm drop false values
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
	Sales     []Sale           `gorm:"foreignKey:EmployeeID" json:"sales,omitempty"`
}

// Product - The Inventory. Soft-deleted via IsActive so sale history stays intact.
type Product struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	Stock       int             `json:"stock"`
	MinStock    int             `json:"min_stock"` // request default applied in the handler; 0 is a real value
	Category    string          `json:"category"`
	ImageURL    *string         `json:"image_url"`
	SKU         *string         `gorm:"uniqueIndex;size:50" json:"sku"`
	IsActive    bool            `json:"is_active"` // set explicitly on create, see Employee.IsActive
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Sale - The Transaction Header
type Sale struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	SaleNumber    string          `gorm:"uniqueIndex;size:20" json:"sale_number"` // e.g. VTA-000042
	CustomerID    uint            `json:"customer_id"`
	Customer      Customer        `json:"customer"`
	EmployeeID    *uint           `json:"employee_id"`
	Employee      *Employee       `json:"employee,omitempty"`
	UserID        *uint           `json:"user_id"` // Who issued it
	User          *User           `json:"user,omitempty"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(10,2)" json:"total_amount"`
	Status        string          `gorm:"size:20" json:"status"`
	PaymentMethod *string         `json:"payment_method"`
	Notes         *string         `json:"notes"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	Items         []SaleItem      `gorm:"foreignKey:SaleID" json:"items"`
}

// SaleItem - One product/quantity line inside a Sale. UnitPrice is a snapshot
// of the product price at sale time and never changes afterwards.
type SaleItem struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	SaleID    uint            `json:"sale_id"`
	ProductID uint            `json:"product_id"`
	Product   Product         `json:"product"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2)" json:"unit_price"`
	Subtotal  decimal.Decimal `gorm:"type:decimal(10,2)" json:"subtotal"`
}
