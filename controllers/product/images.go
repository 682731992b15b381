package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aksoydev/tamirstore-api/models"
)

// ListProductImages returns a product's gallery, primary image first.
func ListProductImages(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		var images []models.ProductImage
		if err := db.Where("product_id = ?", product.ID).
			Order("is_primary DESC, id ASC").
			Find(&images).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch images"})
			return
		}
		c.JSON(http.StatusOK, images)
	}
}

type addImagesRequest struct {
	Images []struct {
		URL       string `json:"url" binding:"required"`
		Thumbnail string `json:"thumbnail"`
	} `json:"images" binding:"required"`
}

// AddProductImages appends gallery entries. When the product has no primary
// image yet, the first added one becomes primary.
func AddProductImages(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		var req addImagesRequest
		if err := c.ShouldBindJSON(&req); err != nil || len(req.Images) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "images is required"})
			return
		}

		var created []models.ProductImage
		err := db.Transaction(func(tx *gorm.DB) error {
			var primaryCount int64
			if err := tx.Model(&models.ProductImage{}).
				Where("product_id = ? AND is_primary = ?", product.ID, true).
				Count(&primaryCount).Error; err != nil {
				return err
			}

			for i, img := range req.Images {
				entry := models.ProductImage{
					ProductID: product.ID,
					URL:       img.URL,
					Thumbnail: img.Thumbnail,
					IsPrimary: primaryCount == 0 && i == 0,
				}
				if err := tx.Create(&entry).Error; err != nil {
					return err
				}
				created = append(created, entry)
			}
			return nil
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add images"})
			return
		}

		c.JSON(http.StatusCreated, created)
	}
}

// DeleteProductImage removes one gallery entry. Deleting the primary image
// promotes the oldest remaining one.
func DeleteProductImage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		imageID := c.Param("imageId")

		var image models.ProductImage
		if err := db.Where("product_id = ?", id).First(&image, imageID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Delete(&image).Error; err != nil {
				return err
			}
			if !image.IsPrimary {
				return nil
			}
			var next models.ProductImage
			err := tx.Where("product_id = ?", image.ProductID).Order("id ASC").First(&next).Error
			if err == gorm.ErrRecordNotFound {
				return nil
			}
			if err != nil {
				return err
			}
			return tx.Model(&next).Update("is_primary", true).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete image"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Image deleted successfully"})
	}
}

// SetPrimaryImage marks one gallery entry as primary and clears the flag on
// the rest, in a single transaction.
func SetPrimaryImage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		imageID := c.Param("imageId")

		var image models.ProductImage
		if err := db.Where("product_id = ?", id).First(&image, imageID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&models.ProductImage{}).
				Where("product_id = ?", image.ProductID).
				Update("is_primary", false).Error; err != nil {
				return err
			}
			return tx.Model(&image).Update("is_primary", true).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set primary image"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Primary image updated"})
	}
}
