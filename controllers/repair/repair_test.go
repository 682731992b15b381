package repaircontroller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
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

	// one connection so every query sees the same in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.RepairRequest{}, &models.RepairImage{}, &models.RepairService{}))
	return db
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func setupRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/repair-requests", CreateRepairRequest(db))
	r.GET("/repair-requests", GetAllRepairRequests(db))
	r.GET("/repair-requests/:id", GetRepairRequestByID(db))
	r.POST("/repair-requests/:id/quote-price", QuoteRepairPrice(db))
	r.PUT("/repair-requests/:id/update-status", UpdateRepairStatus(db))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reqBody *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(data)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}
	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seedTicket(t *testing.T, db *gorm.DB, status models.RepairStatus) models.RepairRequest {
	t.Helper()
	ticket := models.RepairRequest{
		TrackingNumber: generateTrackingNumber(),
		CustomerName:   "Ayşe Yılmaz",
		CustomerPhone:  "+905551234567",
		DeviceType:     "phone",
		DeviceBrand:    "Samsung",
		DeviceModel:    "Galaxy S21",
		Problem:        "Ekran kırık",
		Status:         status,
		RepairItems:    models.RepairItems{},
	}
	require.NoError(t, db.Create(&ticket).Error)
	return ticket
}

func TestCreateRepairRequestStartsPending(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)

	w := doJSON(t, r, http.MethodPost, "/repair-requests", gin.H{
		"customer_name":  "Mehmet Demir",
		"customer_phone": "+905559876543",
		"device_model":   "iPhone 13",
		"problem":        "Şarj olmuyor",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var ticket models.RepairRequest
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ticket))
	assert.Equal(t, models.RepairStatusPending, ticket.Status)
	assert.Regexp(t, `^TMR-\d{8}-[0-9A-F]{6}$`, ticket.TrackingNumber)
}

func TestCreateRepairRequestRequiresContactFields(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)

	w := doJSON(t, r, http.MethodPost, "/repair-requests", gin.H{"device_model": "iPhone 13"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetRepairRequestByNumericID(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	ticket := seedTicket(t, db, models.RepairStatusPending)

	w := doJSON(t, r, http.MethodGet, "/repair-requests/"+itoa(ticket.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got models.RepairRequest
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, ticket.TrackingNumber, got.TrackingNumber)
}

func TestGetRepairRequestUnknownTrackingNumber(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	seedTicket(t, db, models.RepairStatusPending)

	w := doJSON(t, r, http.MethodGet, "/repair-requests/TMR-19990101-AAAAAA", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetRepairRequestByTrackingNumber(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	ticket := seedTicket(t, db, models.RepairStatusPending)

	w := doJSON(t, r, http.MethodGet, "/repair-requests/"+ticket.TrackingNumber, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got models.RepairRequest
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, ticket.ID, got.ID)
}

func TestUpdateRepairStatusValidTransition(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	ticket := seedTicket(t, db, models.RepairStatusPending)

	w := doJSON(t, r, http.MethodPut,
		"/repair-requests/"+itoa(ticket.ID)+"/update-status",
		gin.H{"status": "diagnosis"})
	require.Equal(t, http.StatusOK, w.Code)

	var stored models.RepairRequest
	require.NoError(t, db.First(&stored, ticket.ID).Error)
	assert.Equal(t, models.RepairStatusDiagnosis, stored.Status)
}

func TestUpdateRepairStatusRejectsSkippedStep(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	ticket := seedTicket(t, db, models.RepairStatusPending)

	w := doJSON(t, r, http.MethodPut,
		"/repair-requests/"+itoa(ticket.ID)+"/update-status",
		gin.H{"status": "delivered"})
	assert.Equal(t, http.StatusConflict, w.Code)

	var stored models.RepairRequest
	require.NoError(t, db.First(&stored, ticket.ID).Error)
	assert.Equal(t, models.RepairStatusPending, stored.Status, "status is unchanged after a rejected transition")
}

func TestUpdateRepairStatusRejectsUnknownStatus(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	ticket := seedTicket(t, db, models.RepairStatusPending)

	w := doJSON(t, r, http.MethodPut,
		"/repair-requests/"+itoa(ticket.ID)+"/update-status",
		gin.H{"status": "teleported"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestQuoteRepairPriceFromDiagnosis(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	ticket := seedTicket(t, db, models.RepairStatusDiagnosis)

	w := doJSON(t, r, http.MethodPost,
		"/repair-requests/"+itoa(ticket.ID)+"/quote-price",
		gin.H{
			"estimated_price": 1250.0,
			"diagnosis_notes": "Ekran ve batarya değişimi gerekiyor",
			"repair_items": []gin.H{
				{"kind": "part", "name": "Ekran", "price": 900},
				{"kind": "labor", "name": "Montaj", "price": 350},
			},
		})
	require.Equal(t, http.StatusOK, w.Code)

	var stored models.RepairRequest
	require.NoError(t, db.First(&stored, ticket.ID).Error)
	assert.Equal(t, models.RepairStatusPriceQuoted, stored.Status)
	require.NotNil(t, stored.EstimatedPrice)
	assert.Equal(t, 1250.0, *stored.EstimatedPrice)
	require.Len(t, stored.RepairItems, 2)
	assert.Equal(t, "Ekran", stored.RepairItems[0].Name)
}

func TestQuoteRepairPriceRejectedOutsideDiagnosis(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	ticket := seedTicket(t, db, models.RepairStatusDelivered)

	w := doJSON(t, r, http.MethodPost,
		"/repair-requests/"+itoa(ticket.ID)+"/quote-price",
		gin.H{"estimated_price": 500.0})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestGetAllRepairRequestsFiltersByStatus(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	seedTicket(t, db, models.RepairStatusPending)
	seedTicket(t, db, models.RepairStatusInRepair)
	seedTicket(t, db, models.RepairStatusInRepair)

	w := doJSON(t, r, http.MethodGet, "/repair-requests?status=in_repair", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var tickets []models.RepairRequest
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tickets))
	assert.Len(t, tickets, 2)
}

func TestRepairTransitionTable(t *testing.T) {
	assert.True(t, models.CanTransition(models.RepairStatusPriceQuoted, models.RepairStatusCustomerApproved))
	assert.True(t, models.CanTransition(models.RepairStatusCustomerRejected, models.RepairStatusDelivered))
	assert.False(t, models.CanTransition(models.RepairStatusDelivered, models.RepairStatusPending))
	assert.False(t, models.CanTransition(models.RepairStatusInRepair, models.RepairStatusDelivered))
}
