package contentcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aksoydev/tamirstore-api/models"
)

func GetShippingRegions(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var regions []models.ShippingRegion
		if err := db.Order("name ASC").Find(&regions).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch shipping regions"})
			return
		}
		c.JSON(http.StatusOK, regions)
	}
}

func CreateShippingRegion(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Name   string   `json:"name" binding:"required"`
			Cost   *float64 `json:"cost" binding:"required"`
			Active *bool    `json:"active"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name and cost are required"})
			return
		}

		active := true
		if req.Active != nil {
			active = *req.Active
		}

		region := models.ShippingRegion{Name: req.Name, Cost: *req.Cost, Active: active}
		if err := db.Create(&region).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create shipping region"})
			return
		}
		c.JSON(http.StatusCreated, region)
	}
}

func UpdateShippingRegion(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var region models.ShippingRegion
		if err := db.First(&region, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Shipping region not found"})
			return
		}

		var req struct {
			Name   *string  `json:"name"`
			Cost   *float64 `json:"cost"`
			Active *bool    `json:"active"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		if req.Name != nil {
			region.Name = *req.Name
		}
		if req.Cost != nil {
			region.Cost = *req.Cost
		}
		if req.Active != nil {
			region.Active = *req.Active
		}

		if err := db.Save(&region).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update shipping region"})
			return
		}
		c.JSON(http.StatusOK, region)
	}
}

func DeleteShippingRegion(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		result := db.Delete(&models.ShippingRegion{}, id)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete shipping region"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Shipping region not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Shipping region deleted"})
	}
}
