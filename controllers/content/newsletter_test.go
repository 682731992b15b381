package contentcontroller

import (
	"bytes"
	"encoding/json"
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

	require.NoError(t, db.AutoMigrate(&models.NewsletterSubscription{}))
	return db
}

func subscribe(t *testing.T, r *gin.Engine, email string) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(gin.H{"email": email})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/newsletter", bytes.NewBuffer(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func newsletterRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/newsletter", SubscribeNewsletter(db))
	return r
}

func TestSubscribeNewsletterCreatesSubscription(t *testing.T) {
	db := setupTestDB(t)
	r := newsletterRouter(db)

	w := subscribe(t, r, "Ayse@Example.com")
	require.Equal(t, http.StatusCreated, w.Code)

	var sub models.NewsletterSubscription
	require.NoError(t, db.Where("email = ?", "ayse@example.com").First(&sub).Error)
}

func TestSubscribeNewsletterDuplicateIsSuccess(t *testing.T) {
	db := setupTestDB(t)
	r := newsletterRouter(db)

	require.Equal(t, http.StatusCreated, subscribe(t, r, "ayse@example.com").Code)

	w := subscribe(t, r, "ayse@example.com")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Already subscribed")

	var count int64
	require.NoError(t, db.Model(&models.NewsletterSubscription{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestSubscribeNewsletterRejectsInvalidEmail(t *testing.T) {
	db := setupTestDB(t)
	r := newsletterRouter(db)

	w := subscribe(t, r, "not-an-email")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
