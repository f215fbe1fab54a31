package handlers

import (
	"net/http"
	"net/url"

	"go-huerta-backend/internal/ai"
	"go-huerta-backend/internal/database"
	"go-huerta-backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type seedProduct struct {
	Name        string
	Category    string
	Price       float64
	Stock       int
	MinStock    int
	Description string
}

// The demo catalog of the garden store, grouped by category.
var seedCatalog = []seedProduct{
	// Vegetales
	{"Tomates Cherry", "Vegetales", 2.50, 45, 10, "Tomates cherry dulces y jugosos, perfectos para ensaladas"},
	{"Lechuga Romana", "Vegetales", 1.80, 32, 8, "Lechuga romana fresca y crujiente"},
	{"Pimientos Morrones", "Vegetales", 3.50, 28, 6, "Pimientos morrones rojos y verdes"},
	{"Zanahorias Orgánicas", "Vegetales", 2.20, 55, 12, "Zanahorias orgánicas cultivadas sin pesticidas"},
	{"Brócoli Fresco", "Vegetales", 3.80, 22, 5, "Brócoli fresco de alta calidad"},
	{"Espinacas Baby", "Vegetales", 4.20, 18, 4, "Espinacas baby tiernas y nutritivas"},
	{"Calabacín", "Vegetales", 2.80, 35, 8, "Calabacín fresco y versátil"},
	{"Berengenas", "Vegetales", 3.20, 20, 5, "Berengenas moradas brillantes"},
	{"Cebollas Rojas", "Vegetales", 2.00, 60, 15, "Cebollas rojas dulces y crujientes"},
	{"Pepinos", "Vegetales", 1.50, 40, 10, "Pepinos frescos y hidratantes"},
	// Frutas
	{"Fresas Orgánicas", "Frutas", 4.20, 12, 3, "Fresas orgánicas dulces y aromáticas"},
	{"Manzanas Gala", "Frutas", 3.50, 48, 12, "Manzanas gala crujientes y dulces"},
	{"Naranjas Valencia", "Frutas", 2.80, 38, 10, "Naranjas valencia jugosas"},
	{"Limones", "Frutas", 1.80, 25, 6, "Limones frescos y ácidos"},
	{"Plátanos", "Frutas", 2.20, 42, 10, "Plátanos maduros y dulces"},
	{"Uvas Rojas", "Frutas", 5.50, 15, 4, "Uvas rojas sin semillas"},
	{"Melocotones", "Frutas", 4.80, 18, 4, "Melocotones jugosos y maduros"},
	{"Kiwis", "Frutas", 3.20, 30, 8, "Kiwis verdes y nutritivos"},
	// Hierbas
	{"Albahaca Fresca", "Hierbas", 2.00, 28, 5, "Albahaca fresca aromática"},
	{"Cilantro", "Hierbas", 1.80, 32, 6, "Cilantro fresco para platillos"},
	{"Perejil", "Hierbas", 1.50, 35, 7, "Perejil fresco y verde"},
	{"Menta", "Hierbas", 2.20, 22, 4, "Menta fresca aromática"},
	{"Romero", "Hierbas", 2.80, 18, 3, "Romero fresco para cocinar"},
	{"Tomillo", "Hierbas", 2.50, 20, 4, "Tomillo fresco aromático"},
	{"Orégano", "Hierbas", 2.30, 25, 5, "Orégano fresco mediterráneo"},
	// Plantas
	{"Planta de Tomate", "Plantas", 8.50, 12, 3, "Planta de tomate para huerto casero"},
	{"Planta de Chile", "Plantas", 7.80, 15, 3, "Planta de Chile picante"},
	{"Hierbabuena", "Plantas", 6.50, 18, 4, "Planta de hierbabuena medicinal"},
	{"Lavanda", "Plantas", 9.20, 8, 2, "Planta de lavanda aromática"},
}

// --- POST: /api/seed ---
// Idempotent demo dataset: two login accounts, three employees, three customers.
func SeedDemoData(c *gin.Context) {
	adminHash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		logrus.WithError(err).Error("hashing seed password")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	empHash, _ := bcrypt.GenerateFromPassword([]byte("emp123"), bcrypt.DefaultCost)

	admin := models.User{
		Email:        "admin@huerta.com",
		PasswordHash: string(adminHash),
		Name:         "Administrador",
		Role:         "ADMIN",
	}
	if err := database.DB.Where(models.User{Email: admin.Email}).FirstOrCreate(&admin).Error; err != nil {
		logrus.WithError(err).Error("seeding admin user")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	employeeUser := models.User{
		Email:        "empleado@huerta.com",
		PasswordHash: string(empHash),
		Name:         "Empleado Ejemplo",
		Role:         "EMPLOYEE",
	}
	if err := database.DB.Where(models.User{Email: employeeUser.Email}).FirstOrCreate(&employeeUser).Error; err != nil {
		logrus.WithError(err).Error("seeding employee user")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	salaries := []float64{2500.0, 2200.0, 3000.0}
	staff := []models.Employee{
		{Name: "Carlos Rodríguez", Email: "carlos@huerta.com", Phone: strPtr("+1234567890"), Position: "Jardinero"},
		{Name: "María González", Email: "maria@huerta.com", Phone: strPtr("+1234567891"), Position: "Vendedora"},
		{Name: "Juan Martínez", Email: "juan@huerta.com", Phone: strPtr("+1234567892"), Position: "Supervisor"},
	}
	for i := range staff {
		salary := decimal.NewFromFloat(salaries[i])
		staff[i].Salary = &salary
		staff[i].IsActive = true
		if err := database.DB.Where(models.Employee{Email: staff[i].Email}).FirstOrCreate(&staff[i]).Error; err != nil {
			logrus.WithError(err).Error("seeding employee")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
	}

	customers := []models.Customer{
		{Name: "Ana López", Email: strPtr("ana.lopez@email.com"), Phone: strPtr("+1234567893"), Address: strPtr("Calle Principal 123"), DNI: strPtr("12345678A")},
		{Name: "Roberto Sánchez", Email: strPtr("roberto.s@email.com"), Phone: strPtr("+1234567894"), Address: strPtr("Avenida Central 456"), DNI: strPtr("87654321B")},
		{Name: "Laura Torres", Email: strPtr("laura.t@email.com"), Phone: strPtr("+1234567895"), Address: strPtr("Plaza Mayor 789")},
	}
	for i := range customers {
		if err := database.DB.Where("email = ?", *customers[i].Email).FirstOrCreate(&customers[i]).Error; err != nil {
			logrus.WithError(err).Error("seeding customer")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Demo data created successfully",
		"admin":     gin.H{"email": admin.Email, "role": admin.Role},
		"employee":  gin.H{"email": employeeUser.Email, "role": employeeUser.Role},
		"employees": len(staff),
		"customers": len(customers),
	})
}

// --- POST: /api/products/seed ---
// Loads the garden catalog. Descriptions get rewritten by Gemini when a key
// is configured; otherwise the static text is used, so the endpoint works
// offline too.
func SeedProducts(c *gin.Context) {
	apiKey := c.GetString("geminiKey")

	created := 0
	for _, p := range seedCatalog {
		var existing models.Product
		if err := database.DB.Where("name = ?", p.Name).First(&existing).Error; err == nil {
			continue
		}

		description := p.Description
		if apiKey != "" {
			if generated, err := ai.GenerateProductDescription(c.Request.Context(), apiKey, p.Name, p.Category); err == nil {
				description = generated
			} else {
				logrus.WithError(err).Warnf("description generation failed for %s, using fallback", p.Name)
			}
		}

		product := models.Product{
			Name:        p.Name,
			Description: strPtr(description),
			Price:       decimal.NewFromFloat(p.Price),
			Stock:       p.Stock,
			MinStock:    p.MinStock,
			Category:    p.Category,
			ImageURL:    strPtr("https://via.placeholder.com/512x512/10b981/ffffff?text=" + url.QueryEscape(p.Name)),
			IsActive:    true,
		}
		if err := database.DB.Create(&product).Error; err != nil {
			logrus.WithError(err).Error("seeding product")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		created++
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product catalog seeded successfully",
		"created": created,
		"skipped": len(seedCatalog) - created,
	})
}

func strPtr(s string) *string {
	return &s
}
