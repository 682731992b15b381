package categorycontroller

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

	require.NoError(t, db.AutoMigrate(&models.Category{}, &models.Product{}, &models.ProductImage{}))
	return db
}

func setupRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/categories", CreateCategory(db))
	r.GET("/categories", GetAllCategories(db))
	r.GET("/categories/parent/:id", GetCategoryChildren(db))
	r.PUT("/categories/:id", UpdateCategory(db))
	r.DELETE("/categories/:id", DeleteCategory(db))
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

func seedCategory(t *testing.T, db *gorm.DB, name string, parentID *uint, order int) models.Category {
	t.Helper()
	cat := models.Category{Name: name, Slug: name + "-slug", ParentID: parentID, Order: order}
	require.NoError(t, db.Create(&cat).Error)
	return cat
}

func TestCreateCategoryDerivesSlugFromTurkishName(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)

	w := doJSON(t, r, http.MethodPost, "/categories", gin.H{"name": "Şarj Aletleri"})
	require.Equal(t, http.StatusCreated, w.Code)

	var cat models.Category
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cat))
	assert.Equal(t, "sarj-aletleri", cat.Slug)
}

func TestCreateCategoryRejectsMissingParent(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)

	w := doJSON(t, r, http.MethodPost, "/categories", gin.H{"name": "Kılıflar", "parent_id": 999})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetCategoryChildrenRootLevel(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	root1 := seedCategory(t, db, "Telefon", nil, 1)
	seedCategory(t, db, "Bilgisayar", nil, 0)
	seedCategory(t, db, "Ekranlar", &root1.ID, 0)

	w := doJSON(t, r, http.MethodGet, "/categories/parent/null", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var roots []models.Category
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &roots))
	require.Len(t, roots, 2)
	assert.Equal(t, "Bilgisayar", roots[0].Name, "ordered by the order column")
	assert.Equal(t, "Telefon", roots[1].Name)
}

func TestGetCategoryChildrenOfNode(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	root := seedCategory(t, db, "Telefon", nil, 0)
	child := seedCategory(t, db, "Ekranlar", &root.ID, 0)
	seedCategory(t, db, "Bataryalar", &root.ID, 1)
	seedCategory(t, db, "AMOLED", &child.ID, 0)

	w := doJSON(t, r, http.MethodGet, fmt.Sprintf("/categories/parent/%d", root.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var children []models.Category
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &children))
	require.Len(t, children, 2)
	assert.Equal(t, "Ekranlar", children[0].Name)
	assert.Equal(t, "Bataryalar", children[1].Name)
}

func TestDeleteCategoryReparentsChildren(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	root := seedCategory(t, db, "Telefon", nil, 0)
	mid := seedCategory(t, db, "Aksesuarlar", &root.ID, 0)
	leaf := seedCategory(t, db, "Kılıflar", &mid.ID, 0)

	w := doJSON(t, r, http.MethodDelete, fmt.Sprintf("/categories/%d", mid.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stored models.Category
	require.NoError(t, db.First(&stored, leaf.ID).Error)
	require.NotNil(t, stored.ParentID)
	assert.Equal(t, root.ID, *stored.ParentID, "orphaned child moves up to the grandparent")
}

func TestDeleteCategoryClearsProductAssignment(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	cat := seedCategory(t, db, "Telefon", nil, 0)
	product := models.Product{Title: "Galaxy S21", Slug: "galaxy-s21", Price: 19999, CategoryID: &cat.ID}
	require.NoError(t, db.Create(&product).Error)

	w := doJSON(t, r, http.MethodDelete, fmt.Sprintf("/categories/%d", cat.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stored models.Product
	require.NoError(t, db.First(&stored, product.ID).Error)
	assert.Nil(t, stored.CategoryID)
}
