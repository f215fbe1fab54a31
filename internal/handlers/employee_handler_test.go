package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"go-huerta-backend/internal/database"
	"go-huerta-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddEmployee(t *testing.T) {
	r := setupRouter(t)
	token := adminToken(t)

	w := doJSON(t, r, http.MethodPost, "/api/employees", map[string]interface{}{
		"name":     "Carlos Rodríguez",
		"email":    "carlos@huerta.com",
		"position": "Vendedor",
		"salary":   2500.00,
	}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var employee models.Employee
	decodeBody(t, w, &employee)
	assert.Equal(t, "Carlos Rodríguez", employee.Name)
	assert.True(t, employee.IsActive)
	require.NotNil(t, employee.Salary)
	assert.Equal(t, "2500", employee.Salary.String())

	// Duplicate email
	w = doJSON(t, r, http.MethodPost, "/api/employees", map[string]interface{}{
		"name":     "Otro Carlos",
		"email":    "carlos@huerta.com",
		"position": "Cajero",
	}, token)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "An employee with this email already exists", errorMessage(t, w))

	// Position is required
	w = doJSON(t, r, http.MethodPost, "/api/employees", map[string]interface{}{
		"name":  "Sin Puesto",
		"email": "sin-puesto@huerta.com",
	}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateEmployeeEmailConflict(t *testing.T) {
	r := setupRouter(t)
	token := adminToken(t)

	first := models.Employee{Name: "María González", Email: "maria@huerta.com", Position: "Cajera", IsActive: true}
	require.NoError(t, database.DB.Create(&first).Error)
	second := models.Employee{Name: "Juan Martínez", Email: "juan@huerta.com", Position: "Gerente", IsActive: true}
	require.NoError(t, database.DB.Create(&second).Error)

	w := doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/employees/%d", second.ID),
		map[string]interface{}{"email": "maria@huerta.com"}, token)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "An employee with this email already exists", errorMessage(t, w))

	// Re-submitting their own email is allowed
	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/employees/%d", second.ID),
		map[string]interface{}{"email": "juan@huerta.com", "position": "Supervisor"}, token)
	require.Equal(t, http.StatusOK, w.Code)

	var stored models.Employee
	require.NoError(t, database.DB.First(&stored, second.ID).Error)
	assert.Equal(t, "Supervisor", stored.Position)
}

func TestDeleteEmployeeIsSoft(t *testing.T) {
	r := setupRouter(t)
	token := adminToken(t)

	employee := models.Employee{Name: "María González", Email: "maria@huerta.com", Position: "Cajera", IsActive: true}
	require.NoError(t, database.DB.Create(&employee).Error)

	w := doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/employees/%d", employee.ID), nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/employees", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	var listed []models.Employee
	decodeBody(t, w, &listed)
	assert.Empty(t, listed)

	// Row still exists, flagged inactive
	var stored models.Employee
	require.NoError(t, database.DB.First(&stored, employee.ID).Error)
	assert.False(t, stored.IsActive)
}

func TestGetEmployeeIncludesRecentSales(t *testing.T) {
	r := setupRouter(t)
	token := adminToken(t)

	employee := models.Employee{Name: "Carlos Rodríguez", Email: "carlos@huerta.com", Position: "Vendedor", IsActive: true}
	require.NoError(t, database.DB.Create(&employee).Error)

	product := createProduct(t, "Tomate Cherry", 2.50, 50, 5)
	customer := createCustomer(t, "Ana López")

	body := saleBody(customer.ID, item(product.ID, 1))
	body["employee_id"] = employee.ID
	w := doJSON(t, r, http.MethodPost, "/api/sales", body, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/employees/%d", employee.ID), nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	var fetched models.Employee
	decodeBody(t, w, &fetched)
	require.Len(t, fetched.Sales, 1)
	assert.Equal(t, "VTA-000001", fetched.Sales[0].SaleNumber)
}
