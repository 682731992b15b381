package campaigncontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aksoydev/tamirstore-api/models"
)

// GetCampaignProducts lists a campaign's product rows in display order.
// URL: /campaigns/:id/products
func GetCampaignProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var campaign models.Campaign
		if err := db.First(&campaign, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Campaign not found"})
			return
		}

		var rows []models.CampaignProduct
		if err := db.Where("campaign_id = ?", campaign.ID).
			Preload("Product").
			Order(`"order" ASC, id ASC`).
			Find(&rows).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch campaign products"})
			return
		}
		c.JSON(http.StatusOK, rows)
	}
}

type addCampaignProductRequest struct {
	ProductID    uint     `json:"product_id" binding:"required"`
	SpecialPrice *float64 `json:"special_price"`
}

// AddCampaignProduct appends a product to the campaign at the end of the
// display order.
func AddCampaignProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var campaign models.Campaign
		if err := db.First(&campaign, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Campaign not found"})
			return
		}

		var req addCampaignProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "product_id is required"})
			return
		}

		var product models.Product
		if err := db.First(&product, req.ProductID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product not found"})
			return
		}

		var existing int64
		if err := db.Model(&models.CampaignProduct{}).
			Where("campaign_id = ? AND product_id = ?", campaign.ID, product.ID).
			Count(&existing).Error; err == nil && existing > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "Product is already in the campaign"})
			return
		}

		var row models.CampaignProduct
		err := db.Transaction(func(tx *gorm.DB) error {
			var maxOrder struct{ Max int }
			if err := tx.Model(&models.CampaignProduct{}).
				Select(`COALESCE(MAX("order"), -1) AS max`).
				Where("campaign_id = ?", campaign.ID).
				Scan(&maxOrder).Error; err != nil {
				return err
			}
			row = models.CampaignProduct{
				CampaignID:   campaign.ID,
				ProductID:    product.ID,
				SpecialPrice: req.SpecialPrice,
				Order:        maxOrder.Max + 1,
			}
			return tx.Create(&row).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add product to campaign"})
			return
		}

		c.JSON(http.StatusCreated, row)
	}
}

// RemoveCampaignProduct takes a product out of the campaign.
// URL: DELETE /campaigns/:id/products/:productId
func RemoveCampaignProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		productID := c.Param("productId")

		result := db.Where("campaign_id = ? AND product_id = ?", id, productID).
			Delete(&models.CampaignProduct{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove product from campaign"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product is not in the campaign"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Product removed from campaign"})
	}
}

// UpdateCampaignProductOrder sets the display position of a single row. The
// dashboard moves a row by issuing this call for the row and its neighbor.
// URL: PUT /campaigns/:id/products/:productId/order
func UpdateCampaignProductOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		productID := c.Param("productId")

		var req struct {
			Order *int `json:"order" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "order is required"})
			return
		}

		result := db.Model(&models.CampaignProduct{}).
			Where("campaign_id = ? AND product_id = ?", id, productID).
			Update("order", *req.Order)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product is not in the campaign"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Order updated"})
	}
}

type swapOrderRequest struct {
	ProductID      uint `json:"product_id" binding:"required"`
	OtherProductID uint `json:"other_product_id" binding:"required"`
}

// SwapCampaignProductOrder exchanges the positions of two rows in one
// transaction, for callers that want atomicity instead of the two-call
// dance.
// URL: PUT /campaigns/:id/products/swap-order
func SwapCampaignProductOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var req swapOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "product_id and other_product_id are required"})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			var a, b models.CampaignProduct
			if err := tx.Where("campaign_id = ? AND product_id = ?", id, req.ProductID).First(&a).Error; err != nil {
				return err
			}
			if err := tx.Where("campaign_id = ? AND product_id = ?", id, req.OtherProductID).First(&b).Error; err != nil {
				return err
			}
			orderA, orderB := a.Order, b.Order
			if err := tx.Model(&a).Update("order", orderB).Error; err != nil {
				return err
			}
			return tx.Model(&b).Update("order", orderA).Error
		})
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product is not in the campaign"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to swap order"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Order swapped"})
	}
}
