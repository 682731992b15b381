package contentcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aksoydev/tamirstore-api/models"
)

func GetFAQs(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var faqs []models.FAQ
		if err := db.Order(`"order" ASC, id ASC`).Find(&faqs).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch FAQs"})
			return
		}
		c.JSON(http.StatusOK, faqs)
	}
}

func CreateFAQ(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Question string `json:"question" binding:"required"`
			Answer   string `json:"answer"`
			Order    int    `json:"order"`
			Active   *bool  `json:"active"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "question is required"})
			return
		}

		active := true
		if req.Active != nil {
			active = *req.Active
		}

		faq := models.FAQ{Question: req.Question, Answer: req.Answer, Order: req.Order, Active: active}
		if err := db.Create(&faq).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create FAQ"})
			return
		}
		c.JSON(http.StatusCreated, faq)
	}
}

func UpdateFAQ(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var faq models.FAQ
		if err := db.First(&faq, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "FAQ not found"})
			return
		}

		var req struct {
			Question *string `json:"question"`
			Answer   *string `json:"answer"`
			Order    *int    `json:"order"`
			Active   *bool   `json:"active"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		if req.Question != nil {
			faq.Question = *req.Question
		}
		if req.Answer != nil {
			faq.Answer = *req.Answer
		}
		if req.Order != nil {
			faq.Order = *req.Order
		}
		if req.Active != nil {
			faq.Active = *req.Active
		}

		if err := db.Save(&faq).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update FAQ"})
			return
		}
		c.JSON(http.StatusOK, faq)
	}
}

func DeleteFAQ(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		result := db.Delete(&models.FAQ{}, id)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete FAQ"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "FAQ not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "FAQ deleted"})
	}
}
