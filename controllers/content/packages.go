package contentcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aksoydev/tamirstore-api/models"
)

func GetInternetPackages(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Order(`"order" ASC, id ASC`)
		if c.Query("active") == "true" {
			query = query.Where("active = ?", true)
		}

		var packages []models.InternetPackage
		if err := query.Find(&packages).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch internet packages"})
			return
		}
		c.JSON(http.StatusOK, packages)
	}
}

func CreateInternetPackage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Name     string   `json:"name" binding:"required"`
			Speed    string   `json:"speed"`
			Quota    string   `json:"quota"`
			Price    *float64 `json:"price" binding:"required"`
			Provider string   `json:"provider"`
			Active   *bool    `json:"active"`
			Order    int      `json:"order"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name and price are required"})
			return
		}

		active := true
		if req.Active != nil {
			active = *req.Active
		}

		pkg := models.InternetPackage{
			Name:     req.Name,
			Speed:    req.Speed,
			Quota:    req.Quota,
			Price:    *req.Price,
			Provider: req.Provider,
			Active:   active,
			Order:    req.Order,
		}
		if err := db.Create(&pkg).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create internet package"})
			return
		}
		c.JSON(http.StatusCreated, pkg)
	}
}

func UpdateInternetPackage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var pkg models.InternetPackage
		if err := db.First(&pkg, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Internet package not found"})
			return
		}

		var req struct {
			Name     *string  `json:"name"`
			Speed    *string  `json:"speed"`
			Quota    *string  `json:"quota"`
			Price    *float64 `json:"price"`
			Provider *string  `json:"provider"`
			Active   *bool    `json:"active"`
			Order    *int     `json:"order"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		if req.Name != nil {
			pkg.Name = *req.Name
		}
		if req.Speed != nil {
			pkg.Speed = *req.Speed
		}
		if req.Quota != nil {
			pkg.Quota = *req.Quota
		}
		if req.Price != nil {
			pkg.Price = *req.Price
		}
		if req.Provider != nil {
			pkg.Provider = *req.Provider
		}
		if req.Active != nil {
			pkg.Active = *req.Active
		}
		if req.Order != nil {
			pkg.Order = *req.Order
		}

		if err := db.Save(&pkg).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update internet package"})
			return
		}
		c.JSON(http.StatusOK, pkg)
	}
}

func DeleteInternetPackage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		result := db.Delete(&models.InternetPackage{}, id)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete internet package"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Internet package not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Internet package deleted"})
	}
}
