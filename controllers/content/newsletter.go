package contentcontroller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aksoydev/tamirstore-api/models"
)

// SubscribeNewsletter registers an email address (public). Duplicate
// subscriptions are treated as success.
func SubscribeNewsletter(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Email string `json:"email" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
			return
		}

		email := strings.ToLower(strings.TrimSpace(req.Email))
		if !strings.Contains(email, "@") {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid email address"})
			return
		}

		var existing models.NewsletterSubscription
		if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
			c.JSON(http.StatusOK, gin.H{"message": "Already subscribed"})
			return
		}

		sub := models.NewsletterSubscription{Email: email}
		if err := db.Create(&sub).Error; err != nil {
			// A concurrent subscribe can slip between the check and the
			// insert and trip the unique index. Re-check before failing.
			if db.Where("email = ?", email).First(&existing).Error == nil {
				c.JSON(http.StatusOK, gin.H{"message": "Already subscribed"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to subscribe"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Subscribed"})
	}
}

func GetNewsletterSubscriptions(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var subs []models.NewsletterSubscription
		if err := db.Order("created_at DESC").Find(&subs).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch subscriptions"})
			return
		}
		c.JSON(http.StatusOK, subs)
	}
}

func DeleteNewsletterSubscription(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		result := db.Delete(&models.NewsletterSubscription{}, id)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete subscription"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Subscription not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Subscription deleted"})
	}
}
