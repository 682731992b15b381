package ordercontroller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/aksoydev/tamirstore-api/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Order{}, &models.OrderItem{},
		&models.Product{}, &models.ProductImage{},
	))
	return db
}

func setupRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/orders/:orderID", GetOrderByIDHandler(db))
	return r
}

func seedOrder(t *testing.T, db *gorm.DB) models.Order {
	t.Helper()
	order := models.Order{
		OrderNumber:  generateOrderNumber(),
		CustomerName: "Fatma Kaya",
		Total:        1899,
		Status:       models.OrderStatusPending,
	}
	require.NoError(t, db.Create(&order).Error)
	return order
}

func getOrder(t *testing.T, r *gin.Engine, ref string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/orders/"+ref, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetOrderByOrderNumber(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	order := seedOrder(t, db)

	w := getOrder(t, r, order.OrderNumber)
	require.Equal(t, http.StatusOK, w.Code)

	var got models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, order.ID, got.ID)
}

func TestGetOrderByNumericID(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	order := seedOrder(t, db)

	w := getOrder(t, r, fmt.Sprintf("%d", order.ID))
	require.Equal(t, http.StatusOK, w.Code)

	var got models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, order.OrderNumber, got.OrderNumber)
}

func TestGetOrderUnknownOrderNumber(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	seedOrder(t, db)

	w := getOrder(t, r, "19990101-DEADBEEF")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
