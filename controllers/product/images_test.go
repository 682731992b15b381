package productcontroller

import (
	"bytes"
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

	require.NoError(t, db.AutoMigrate(&models.Product{}, &models.ProductImage{}, &models.Category{}, &models.CampaignProduct{}))
	return db
}

func setupRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/products/:id/images", ListProductImages(db))
	r.POST("/products/:id/images", AddProductImages(db))
	r.DELETE("/products/:id/images/:imageId", DeleteProductImage(db))
	r.PUT("/products/:id/images/:imageId/set-primary", SetPrimaryImage(db))
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

func seedProduct(t *testing.T, db *gorm.DB) models.Product {
	t.Helper()
	product := models.Product{Title: "Galaxy S21 Ekran", Slug: "galaxy-s21-ekran", Price: 1499}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func galleryOf(t *testing.T, db *gorm.DB, productID uint) []models.ProductImage {
	t.Helper()
	var images []models.ProductImage
	require.NoError(t, db.Where("product_id = ?", productID).Order("id ASC").Find(&images).Error)
	return images
}

func primaryCount(images []models.ProductImage) int {
	n := 0
	for _, img := range images {
		if img.IsPrimary {
			n++
		}
	}
	return n
}

func TestAddProductImagesFirstBecomesPrimary(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	product := seedProduct(t, db)

	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/products/%d/images", product.ID), gin.H{
		"images": []gin.H{
			{"url": "/uploads/a.jpg"},
			{"url": "/uploads/b.jpg"},
			{"url": "/uploads/c.jpg"},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	images := galleryOf(t, db, product.ID)
	require.Len(t, images, 3)
	assert.True(t, images[0].IsPrimary, "first image of an empty gallery becomes primary")
	assert.Equal(t, 1, primaryCount(images))
}

func TestAddProductImagesKeepsExistingPrimary(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	product := seedProduct(t, db)
	existing := models.ProductImage{ProductID: product.ID, URL: "/uploads/old.jpg", IsPrimary: true}
	require.NoError(t, db.Create(&existing).Error)

	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/products/%d/images", product.ID), gin.H{
		"images": []gin.H{{"url": "/uploads/new.jpg"}},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	images := galleryOf(t, db, product.ID)
	require.Len(t, images, 2)
	assert.Equal(t, 1, primaryCount(images))
	assert.True(t, images[0].IsPrimary, "the original primary keeps the flag")
}

func TestDeletePrimaryImagePromotesOldestRemaining(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	product := seedProduct(t, db)
	first := models.ProductImage{ProductID: product.ID, URL: "/uploads/a.jpg", IsPrimary: true}
	second := models.ProductImage{ProductID: product.ID, URL: "/uploads/b.jpg"}
	third := models.ProductImage{ProductID: product.ID, URL: "/uploads/c.jpg"}
	require.NoError(t, db.Create(&first).Error)
	require.NoError(t, db.Create(&second).Error)
	require.NoError(t, db.Create(&third).Error)

	w := doJSON(t, r, http.MethodDelete,
		fmt.Sprintf("/products/%d/images/%d", product.ID, first.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	images := galleryOf(t, db, product.ID)
	require.Len(t, images, 2)
	assert.Equal(t, second.ID, images[0].ID)
	assert.True(t, images[0].IsPrimary, "oldest remaining image is promoted")
	assert.Equal(t, 1, primaryCount(images))
}

func TestDeleteNonPrimaryImageLeavesPrimaryAlone(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	product := seedProduct(t, db)
	first := models.ProductImage{ProductID: product.ID, URL: "/uploads/a.jpg", IsPrimary: true}
	second := models.ProductImage{ProductID: product.ID, URL: "/uploads/b.jpg"}
	require.NoError(t, db.Create(&first).Error)
	require.NoError(t, db.Create(&second).Error)

	w := doJSON(t, r, http.MethodDelete,
		fmt.Sprintf("/products/%d/images/%d", product.ID, second.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	images := galleryOf(t, db, product.ID)
	require.Len(t, images, 1)
	assert.Equal(t, first.ID, images[0].ID)
	assert.True(t, images[0].IsPrimary)
}

func TestSetPrimaryImageClearsPreviousFlag(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	product := seedProduct(t, db)
	first := models.ProductImage{ProductID: product.ID, URL: "/uploads/a.jpg", IsPrimary: true}
	second := models.ProductImage{ProductID: product.ID, URL: "/uploads/b.jpg"}
	require.NoError(t, db.Create(&first).Error)
	require.NoError(t, db.Create(&second).Error)

	w := doJSON(t, r, http.MethodPut,
		fmt.Sprintf("/products/%d/images/%d/set-primary", product.ID, second.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	images := galleryOf(t, db, product.ID)
	require.Len(t, images, 2)
	assert.False(t, images[0].IsPrimary, "previous primary is cleared")
	assert.True(t, images[1].IsPrimary)
	assert.Equal(t, 1, primaryCount(images))
}

func TestSetPrimaryImageWrongProduct(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	product := seedProduct(t, db)
	other := models.Product{Title: "iPhone 13 Batarya", Slug: "iphone-13-batarya", Price: 899}
	require.NoError(t, db.Create(&other).Error)
	image := models.ProductImage{ProductID: other.ID, URL: "/uploads/x.jpg", IsPrimary: true}
	require.NoError(t, db.Create(&image).Error)

	w := doJSON(t, r, http.MethodPut,
		fmt.Sprintf("/products/%d/images/%d/set-primary", product.ID, image.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
