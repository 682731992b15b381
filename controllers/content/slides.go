package contentcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aksoydev/tamirstore-api/models"
)

func GetSlides(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Order(`"order" ASC, id ASC`)
		if c.Query("active") == "true" {
			query = query.Where("active = ?", true)
		}

		var slides []models.Slide
		if err := query.Find(&slides).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch slides"})
			return
		}
		c.JSON(http.StatusOK, slides)
	}
}

func CreateSlide(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Title    string `json:"title"`
			Subtitle string `json:"subtitle"`
			Image    string `json:"image" binding:"required"`
			Link     string `json:"link"`
			Order    int    `json:"order"`
			Active   *bool  `json:"active"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "image is required"})
			return
		}

		active := true
		if req.Active != nil {
			active = *req.Active
		}

		slide := models.Slide{
			Title:    req.Title,
			Subtitle: req.Subtitle,
			Image:    req.Image,
			Link:     req.Link,
			Order:    req.Order,
			Active:   active,
		}
		if err := db.Create(&slide).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create slide"})
			return
		}
		c.JSON(http.StatusCreated, slide)
	}
}

func UpdateSlide(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var slide models.Slide
		if err := db.First(&slide, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Slide not found"})
			return
		}

		var req struct {
			Title    *string `json:"title"`
			Subtitle *string `json:"subtitle"`
			Image    *string `json:"image"`
			Link     *string `json:"link"`
			Order    *int    `json:"order"`
			Active   *bool   `json:"active"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		if req.Title != nil {
			slide.Title = *req.Title
		}
		if req.Subtitle != nil {
			slide.Subtitle = *req.Subtitle
		}
		if req.Image != nil {
			slide.Image = *req.Image
		}
		if req.Link != nil {
			slide.Link = *req.Link
		}
		if req.Order != nil {
			slide.Order = *req.Order
		}
		if req.Active != nil {
			slide.Active = *req.Active
		}

		if err := db.Save(&slide).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update slide"})
			return
		}
		c.JSON(http.StatusOK, slide)
	}
}

func DeleteSlide(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		result := db.Delete(&models.Slide{}, id)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete slide"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Slide not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Slide deleted"})
	}
}
