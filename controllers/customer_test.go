package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"loyaltypro-backend/models"
	"loyaltypro-backend/services"
	"loyaltypro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Merchant{}, &models.Customer{}, &models.Transaction{}))

	log := zap.NewNop()
	customers := NewCustomerController(services.NewCustomerService(db, log, nil), log)
	merchants := NewMerchantController(services.NewMerchantService(db, log), log)

	r := gin.New()
	cust := r.Group("/customers")
	{
		cust.POST("/check-in", customers.CheckIn)
		cust.GET("", customers.GetAllCustomers)
		cust.GET("/id/:id", customers.GetCustomerByID)
		cust.GET("/:phoneNumber", customers.GetCustomer)
		cust.PUT("/:phoneNumber", customers.UpdateCustomer)
		cust.DELETE("/:phoneNumber", customers.DeleteCustomer)
	}
	merch := r.Group("/merchants")
	{
		merch.POST("", merchants.CreateMerchant)
		merch.GET("", merchants.GetAllMerchants)
		merch.GET("/id/:id", merchants.GetMerchant)
	}
	return r, db
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, utils.Response) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	var resp utils.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func seedTestMerchant(t *testing.T, db *gorm.DB, welcomeBonus int, active bool) models.Merchant {
	t.Helper()
	merchant := models.Merchant{Name: "Test Merchant", PointsPerVisit: 10, WelcomeBonus: welcomeBonus, IsActive: active}
	require.NoError(t, db.Create(&merchant).Error)
	return merchant
}

func TestCheckInEndpoint(t *testing.T) {
	r, db := newTestRouter(t)
	merchant := seedTestMerchant(t, db, 50, true)

	w, resp := doJSON(t, r, http.MethodPost, "/customers/check-in", gin.H{
		"phoneNumber": "5551234567",
		"merchantId":  merchant.ID.String(),
		"name":        "Jane",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.Success)

	data := resp.Data.(map[string]interface{})
	customer := data["customer"].(map[string]interface{})
	transaction := data["transaction"].(map[string]interface{})
	assert.EqualValues(t, 60, customer["totalPoints"])
	assert.EqualValues(t, 10, transaction["pointsChange"])
	assert.Equal(t, "EARN", transaction["activityType"])
}

func TestCheckInEndpointValidation(t *testing.T) {
	r, _ := newTestRouter(t)

	// Missing body fields fail gin binding.
	w, resp := doJSON(t, r, http.MethodPost, "/customers/check-in", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, resp.Success)

	// Malformed values produce field-level errors.
	w, resp = doJSON(t, r, http.MethodPost, "/customers/check-in", gin.H{
		"phoneNumber": "123",
		"merchantId":  "not-a-uuid",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	data := resp.Data.(map[string]interface{})
	assert.Len(t, data["errors"], 2)
}

func TestCheckInEndpointMerchantNotFound(t *testing.T) {
	r, _ := newTestRouter(t)

	w, resp := doJSON(t, r, http.MethodPost, "/customers/check-in", gin.H{
		"phoneNumber": "5551234567",
		"merchantId":  "3fa85f64-5717-4562-b3fc-2c963f66afa6",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Merchant not found", resp.Message)
}

func TestCustomerCRUDEndpoints(t *testing.T) {
	r, db := newTestRouter(t)
	merchant := seedTestMerchant(t, db, 0, true)

	_, _ = doJSON(t, r, http.MethodPost, "/customers/check-in", gin.H{
		"phoneNumber": "5551234567",
		"merchantId":  merchant.ID.String(),
	})

	w, resp := doJSON(t, r, http.MethodGet, "/customers/5551234567", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	customer := resp.Data.(map[string]interface{})
	assert.EqualValues(t, 10, customer["totalPoints"])

	w, resp = doJSON(t, r, http.MethodPut, "/customers/5551234567", gin.H{"name": "Jane"})
	assert.Equal(t, http.StatusOK, w.Code)
	customer = resp.Data.(map[string]interface{})
	assert.Equal(t, "Jane", customer["name"])

	w, _ = doJSON(t, r, http.MethodDelete, "/customers/5551234567", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Second delete reports the invalid state.
	w, resp = doJSON(t, r, http.MethodDelete, "/customers/5551234567", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Customer already deleted", resp.Message)
}

func TestGetAllCustomersEndpointPagination(t *testing.T) {
	r, db := newTestRouter(t)
	merchant := seedTestMerchant(t, db, 0, true)

	for i := 0; i < 15; i++ {
		phone := fmt.Sprintf("55512345%02d", i)
		_, resp := doJSON(t, r, http.MethodPost, "/customers/check-in", gin.H{
			"phoneNumber": phone,
			"merchantId":  merchant.ID.String(),
		})
		require.True(t, resp.Success)
	}

	w, resp := doJSON(t, r, http.MethodGet, "/customers?page=2&limit=10", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	data := resp.Data.(map[string]interface{})
	pagination := data["pagination"].(map[string]interface{})
	assert.EqualValues(t, 15, pagination["total"])
	assert.EqualValues(t, 2, pagination["page"])
	assert.EqualValues(t, 2, pagination["totalPages"])
	assert.Equal(t, false, pagination["hasNextPage"])
	assert.Equal(t, true, pagination["hasPrevPage"])
	assert.Len(t, data["data"], 5)
}

func TestCreateMerchantEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)

	w, resp := doJSON(t, r, http.MethodPost, "/merchants", gin.H{"name": "Coffee Shop"})
	assert.Equal(t, http.StatusCreated, w.Code)

	merchant := resp.Data.(map[string]interface{})
	assert.EqualValues(t, 10, merchant["pointsPerVisit"])
	assert.Equal(t, true, merchant["isActive"])

	// Negative points are rejected before reaching the service.
	w, _ = doJSON(t, r, http.MethodPost, "/merchants", gin.H{"name": "Bad", "welcomeBonus": -5})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
