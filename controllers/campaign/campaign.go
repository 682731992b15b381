package campaigncontroller

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aksoydev/tamirstore-api/models"
)

type CampaignRequest struct {
	Name      string    `json:"name" binding:"required"`
	Title     string    `json:"title"`
	Type      string    `json:"type"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Active    *bool     `json:"active"`
}

func mapCampaignType(t string) (models.CampaignType, error) {
	switch strings.ToLower(t) {
	case "", string(models.CampaignTypeWeekly):
		return models.CampaignTypeWeekly, nil
	case string(models.CampaignTypeBlackFriday):
		return models.CampaignTypeBlackFriday, nil
	case string(models.CampaignTypeFlashSale):
		return models.CampaignTypeFlashSale, nil
	case string(models.CampaignTypeLimitedStock):
		return models.CampaignTypeLimitedStock, nil
	default:
		return "", errors.New("invalid campaign type")
	}
}

func CreateCampaign(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CampaignRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
			return
		}

		campaignType, err := mapCampaignType(req.Type)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		active := true
		if req.Active != nil {
			active = *req.Active
		}

		campaign := models.Campaign{
			Name:      req.Name,
			Title:     req.Title,
			Type:      campaignType,
			StartDate: req.StartDate,
			EndDate:   req.EndDate,
			Active:    active,
		}
		if err := db.Create(&campaign).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create campaign"})
			return
		}

		c.JSON(http.StatusCreated, campaign)
	}
}

func GetAllCampaigns(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var campaigns []models.Campaign
		if err := db.Order("created_at DESC").Find(&campaigns).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch campaigns"})
			return
		}
		c.JSON(http.StatusOK, campaigns)
	}
}

func GetCampaignByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var campaign models.Campaign
		if err := db.Preload("Products", func(tx *gorm.DB) *gorm.DB {
			return tx.Order(`"order" ASC`)
		}).Preload("Products.Product").First(&campaign, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Campaign not found"})
			return
		}
		c.JSON(http.StatusOK, campaign)
	}
}

func UpdateCampaign(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var campaign models.Campaign
		if err := db.First(&campaign, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Campaign not found"})
			return
		}

		var req struct {
			Name      *string    `json:"name"`
			Title     *string    `json:"title"`
			Type      *string    `json:"type"`
			StartDate *time.Time `json:"start_date"`
			EndDate   *time.Time `json:"end_date"`
			Active    *bool      `json:"active"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		if req.Name != nil {
			campaign.Name = *req.Name
		}
		if req.Title != nil {
			campaign.Title = *req.Title
		}
		if req.Type != nil {
			campaignType, err := mapCampaignType(*req.Type)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			campaign.Type = campaignType
		}
		if req.StartDate != nil {
			campaign.StartDate = *req.StartDate
		}
		if req.EndDate != nil {
			campaign.EndDate = *req.EndDate
		}
		if req.Active != nil {
			campaign.Active = *req.Active
		}

		if err := db.Save(&campaign).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update campaign"})
			return
		}

		c.JSON(http.StatusOK, campaign)
	}
}

func DeleteCampaign(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var campaign models.Campaign
		if err := db.First(&campaign, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Campaign not found"})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("campaign_id = ?", campaign.ID).Delete(&models.CampaignProduct{}).Error; err != nil {
				return err
			}
			return tx.Delete(&campaign).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete campaign"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Campaign deleted successfully"})
	}
}
