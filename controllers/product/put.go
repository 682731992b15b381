package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aksoydev/tamirstore-api/models"
	"github.com/aksoydev/tamirstore-api/seo"
)

type productUpdateRequest struct {
	Title         *string           `json:"title"`
	Slug          *string           `json:"slug"`
	Description   *string           `json:"description"`
	Price         *float64          `json:"price"`
	OriginalPrice *float64          `json:"original_price"`
	Image         *string           `json:"image"`
	CategoryID    *uint             `json:"category_id"`
	IsNew         *bool             `json:"is_new"`
	InStock       *bool             `json:"in_stock"`
	LimitedStock  *bool             `json:"limited_stock"`
	SKU           *string           `json:"sku"`
	Brand         *string           `json:"brand"`
	GTIN          *string           `json:"gtin"`
	MPN           *string           `json:"mpn"`
	MetaTitle     *string           `json:"meta_title"`
	MetaDesc      *string           `json:"meta_description"`
	Keywords      *string           `json:"keywords"`
	Specs         map[string]string `json:"specifications"`
}

// UpdateProduct applies a partial update to an existing product by ID.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		var req productUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		if req.Title != nil {
			product.Title = *req.Title
		}
		if req.Slug != nil {
			if *req.Slug == "" {
				product.Slug = seo.Slugify(product.Title)
			} else {
				product.Slug = seo.Slugify(*req.Slug)
			}
		}
		if req.Description != nil {
			product.Description = *req.Description
		}
		if req.Price != nil {
			product.Price = *req.Price
		}
		if req.OriginalPrice != nil {
			product.OriginalPrice = *req.OriginalPrice
		}
		if req.Image != nil {
			product.Image = *req.Image
		}
		if req.CategoryID != nil {
			var category models.Category
			if err := db.First(&category, *req.CategoryID).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Category not found"})
				return
			}
			product.CategoryID = req.CategoryID
		}
		if req.IsNew != nil {
			product.IsNew = *req.IsNew
		}
		if req.InStock != nil {
			product.InStock = *req.InStock
		}
		if req.LimitedStock != nil {
			product.LimitedStock = *req.LimitedStock
		}
		if req.SKU != nil {
			product.SKU = *req.SKU
		}
		if req.Brand != nil {
			product.Brand = *req.Brand
		}
		if req.GTIN != nil {
			product.GTIN = *req.GTIN
		}
		if req.MPN != nil {
			product.MPN = *req.MPN
		}
		if req.MetaTitle != nil {
			product.MetaTitle = *req.MetaTitle
		}
		if req.MetaDesc != nil {
			product.MetaDesc = *req.MetaDesc
		}
		if req.Keywords != nil {
			product.Keywords = *req.Keywords
		}
		if req.Specs != nil {
			product.Specs = req.Specs
		}

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}
