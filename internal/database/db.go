package database

import (
	"time"

	"go-huerta-backend/internal/models"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func init() {
	// Amounts go out as plain JSON numbers, same as the rest of the API.
	decimal.MarshalJSONWithoutQuotes = true
}

// Connect opens the MySQL connection and syncs the schema.
func Connect(dsn string) {
	if dsn == "" {
		logrus.Fatal("❌ DB_DSN not set. Please configure your database.")
	}

	var err error

	// Wait for the DB to be ready (docker-compose startup ordering)
	for i := 0; i < 5; i++ {
		DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Warn),
		})
		if err == nil {
			break
		}
		logrus.Warnf("Failed to connect to database. Retrying in 2 seconds... (%d/5)", i+1)
		time.Sleep(2 * time.Second)
	}

	if err != nil {
		logrus.Fatal("Failed to connect to database after 5 attempts: ", err)
	}

	logrus.Info("✅ Successfully connected to MySQL!")

	if err := Migrate(DB); err != nil {
		logrus.Fatal("Failed to migrate schema: ", err)
	}
	logrus.Info("✅ Database schema synced!")
}

// Migrate syncs the schema. Split out from Connect so tests can run it
// against an in-memory database.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Employee{},
		&models.Product{},
		&models.Sale{},
		&models.SaleItem{},
	)
}
