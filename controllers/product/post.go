package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aksoydev/tamirstore-api/models"
	"github.com/aksoydev/tamirstore-api/seo"
)

type ProductRequest struct {
	Title         string            `json:"title" binding:"required"`
	Slug          string            `json:"slug"`
	Description   string            `json:"description"`
	Price         float64           `json:"price" binding:"required"`
	OriginalPrice float64           `json:"original_price"`
	Image         string            `json:"image"`
	CategoryID    *uint             `json:"category_id"`
	IsNew         bool              `json:"is_new"`
	InStock       *bool             `json:"in_stock"`
	LimitedStock  bool              `json:"limited_stock"`
	SKU           string            `json:"sku"`
	Brand         string            `json:"brand"`
	GTIN          string            `json:"gtin"`
	MPN           string            `json:"mpn"`
	MetaTitle     string            `json:"meta_title"`
	MetaDesc      string            `json:"meta_description"`
	Keywords      string            `json:"keywords"`
	Specs         map[string]string `json:"specifications"`
}

// CreateProduct creates a new product. The slug is derived from the title
// when not supplied.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "title and price are required"})
			return
		}

		slug := req.Slug
		if slug == "" {
			slug = seo.Slugify(req.Title)
		}
		if slug == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "A slug could not be derived from the title"})
			return
		}

		if req.CategoryID != nil {
			var category models.Category
			if err := db.First(&category, *req.CategoryID).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Category not found"})
				return
			}
		}

		inStock := true
		if req.InStock != nil {
			inStock = *req.InStock
		}

		product := models.Product{
			Title:         req.Title,
			Slug:          slug,
			Description:   req.Description,
			Price:         req.Price,
			OriginalPrice: req.OriginalPrice,
			Image:         req.Image,
			CategoryID:    req.CategoryID,
			IsNew:         req.IsNew,
			InStock:       inStock,
			LimitedStock:  req.LimitedStock,
			SKU:           req.SKU,
			Brand:         req.Brand,
			GTIN:          req.GTIN,
			MPN:           req.MPN,
			MetaTitle:     req.MetaTitle,
			MetaDesc:      req.MetaDesc,
			Keywords:      req.Keywords,
			Specs:         req.Specs,
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}
