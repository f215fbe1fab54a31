package routes

import (
	"net/http"
	"time"

	"go-huerta-backend/internal/config"
	"go-huerta-backend/internal/handlers"
	"go-huerta-backend/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Setup builds the full router. Kept out of main so tests can spin up the
// exact engine the server runs.
func Setup(cfg *config.Config) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Handlers pull these instead of reaching into the environment
	r.Use(func(c *gin.Context) {
		c.Set("baseURL", cfg.BaseURL)
		c.Set("uploadDir", cfg.UploadDir)
		c.Set("geminiKey", cfg.GeminiAPIKey)
		c.Next()
	})

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "online"}) })
	r.POST("/login", handlers.Login)
	r.Static("/uploads", cfg.UploadDir)

	// Registration only opens if explicitly allowed in .env
	if cfg.AllowRegistration {
		r.POST("/register", handlers.Register)
		logrus.Warn("⚠️ Registration route is OPEN. Disable this in production!")
	} else {
		logrus.Info("🔒 Registration route is safely DISABLED.")
	}

	// Demo data, kept outside the auth wall so a fresh install can bootstrap itself
	r.POST("/api/seed", handlers.SeedDemoData)
	r.POST("/api/products/seed", handlers.SeedProducts)

	// --- PROTECTED ROUTES ---
	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware())
	{
		api.GET("/products", handlers.GetProducts)
		api.GET("/products/:id", handlers.GetProduct)
		api.POST("/products", handlers.AddProduct)
		api.PUT("/products/:id", handlers.UpdateProduct)
		api.DELETE("/products/:id", handlers.DeleteProduct)

		api.GET("/customers", handlers.GetCustomers)
		api.GET("/customers/:id", handlers.GetCustomer)
		api.POST("/customers", handlers.AddCustomer)
		api.PUT("/customers/:id", handlers.UpdateCustomer)
		api.DELETE("/customers/:id", handlers.DeleteCustomer)

		api.GET("/employees", handlers.GetEmployees)
		api.GET("/employees/:id", handlers.GetEmployee)
		api.POST("/employees", handlers.AddEmployee)
		api.PUT("/employees/:id", handlers.UpdateEmployee)
		api.DELETE("/employees/:id", handlers.DeleteEmployee)

		api.GET("/sales", handlers.GetSales)
		api.GET("/sales/:id", handlers.GetSale)
		api.POST("/sales", handlers.ProcessSale)
		api.PUT("/sales/:id", handlers.UpdateSale)
		api.DELETE("/sales/:id", handlers.DeleteSale)

		api.GET("/reports", handlers.GetSalesReport)
		api.GET("/reports/export", handlers.ExportSalesReport)

		// ADMIN ONLY
		admin := api.Group("/")
		admin.Use(middleware.RequireRole("ADMIN"))
		{
			admin.POST("/ask", handlers.AskAI)
			admin.POST("/upload", handlers.UploadImage)
		}
	}

	return r
}
