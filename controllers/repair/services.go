package repaircontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aksoydev/tamirstore-api/models"
)

func GetRepairServices(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var services []models.RepairService
		if err := db.Order(`"order" ASC, id ASC`).Find(&services).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch repair services"})
			return
		}
		c.JSON(http.StatusOK, services)
	}
}

func CreateRepairService(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Name        string  `json:"name" binding:"required"`
			Description string  `json:"description"`
			DeviceType  string  `json:"device_type"`
			BasePrice   float64 `json:"base_price"`
			Active      *bool   `json:"active"`
			Order       int     `json:"order"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
			return
		}

		active := true
		if req.Active != nil {
			active = *req.Active
		}

		service := models.RepairService{
			Name:        req.Name,
			Description: req.Description,
			DeviceType:  req.DeviceType,
			BasePrice:   req.BasePrice,
			Active:      active,
			Order:       req.Order,
		}
		if err := db.Create(&service).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create repair service"})
			return
		}
		c.JSON(http.StatusCreated, service)
	}
}

func UpdateRepairService(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var service models.RepairService
		if err := db.First(&service, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Repair service not found"})
			return
		}

		var req struct {
			Name        *string  `json:"name"`
			Description *string  `json:"description"`
			DeviceType  *string  `json:"device_type"`
			BasePrice   *float64 `json:"base_price"`
			Active      *bool    `json:"active"`
			Order       *int     `json:"order"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		if req.Name != nil {
			service.Name = *req.Name
		}
		if req.Description != nil {
			service.Description = *req.Description
		}
		if req.DeviceType != nil {
			service.DeviceType = *req.DeviceType
		}
		if req.BasePrice != nil {
			service.BasePrice = *req.BasePrice
		}
		if req.Active != nil {
			service.Active = *req.Active
		}
		if req.Order != nil {
			service.Order = *req.Order
		}

		if err := db.Save(&service).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update repair service"})
			return
		}
		c.JSON(http.StatusOK, service)
	}
}

func DeleteRepairService(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		result := db.Delete(&models.RepairService{}, id)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete repair service"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Repair service not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Repair service deleted successfully"})
	}
}
