package categorycontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aksoydev/tamirstore-api/models"
	"github.com/aksoydev/tamirstore-api/seo"
)

type CategoryRequest struct {
	Name     string `json:"name" binding:"required"`
	Slug     string `json:"slug"`
	ParentID *uint  `json:"parent_id"`
	Icon     string `json:"icon"`
	Order    int    `json:"order"`
}

func CreateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CategoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
			return
		}

		slug := req.Slug
		if slug == "" {
			slug = seo.Slugify(req.Name)
		}
		if slug == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "A slug could not be derived from the name"})
			return
		}

		if req.ParentID != nil {
			var parent models.Category
			if err := db.First(&parent, *req.ParentID).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Parent category not found"})
				return
			}
		}

		category := models.Category{
			Name:     req.Name,
			Slug:     slug,
			ParentID: req.ParentID,
			Icon:     req.Icon,
			Order:    req.Order,
		}
		if err := db.Create(&category).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
			return
		}

		c.JSON(http.StatusCreated, category)
	}
}

// GetAllCategories returns every category as a flat list ordered for display.
func GetAllCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []models.Category
		if err := db.Order(`"order" ASC, id ASC`).Find(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

// GetCategoryChildren returns the direct children of a node. The tree view
// loads one level at a time through this endpoint; the literal parent id
// "null" selects the root level.
// URL: /categories/parent/:id
func GetCategoryChildren(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		parent := c.Param("id")

		query := db.Order(`"order" ASC, id ASC`)
		if parent == "null" {
			query = query.Where("parent_id IS NULL")
		} else {
			query = query.Where("parent_id = ?", parent)
		}

		var children []models.Category
		if err := query.Find(&children).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}
		c.JSON(http.StatusOK, children)
	}
}

func UpdateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var category models.Category
		if err := db.First(&category, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}

		var req struct {
			Name     *string `json:"name"`
			Slug     *string `json:"slug"`
			ParentID *uint   `json:"parent_id"`
			Icon     *string `json:"icon"`
			Order    *int    `json:"order"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		if req.Name != nil {
			category.Name = *req.Name
		}
		if req.Slug != nil {
			if *req.Slug == "" {
				category.Slug = seo.Slugify(category.Name)
			} else {
				category.Slug = seo.Slugify(*req.Slug)
			}
		}
		if req.ParentID != nil {
			if *req.ParentID == category.ID {
				c.JSON(http.StatusBadRequest, gin.H{"error": "A category cannot be its own parent"})
				return
			}
			var parent models.Category
			if err := db.First(&parent, *req.ParentID).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Parent category not found"})
				return
			}
			category.ParentID = req.ParentID
		}
		if req.Icon != nil {
			category.Icon = *req.Icon
		}
		if req.Order != nil {
			category.Order = *req.Order
		}

		if err := db.Save(&category).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
			return
		}

		c.JSON(http.StatusOK, category)
	}
}

// DeleteCategory removes a category. Children are reparented to the deleted
// node's parent and products keep existing without a category.
func DeleteCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var category models.Category
		if err := db.First(&category, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&models.Category{}).
				Where("parent_id = ?", category.ID).
				Update("parent_id", category.ParentID).Error; err != nil {
				return err
			}
			if err := tx.Model(&models.Product{}).
				Where("category_id = ?", category.ID).
				Update("category_id", nil).Error; err != nil {
				return err
			}
			return tx.Delete(&category).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
	}
}
