package repaircontroller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	ordercontroller "github.com/aksoydev/tamirstore-api/controllers/order"
	"github.com/aksoydev/tamirstore-api/models"
)

type RepairRequestInput struct {
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerPhone string `json:"customer_phone" binding:"required"`
	CustomerEmail string `json:"customer_email"`
	DeviceType    string `json:"device_type"`
	DeviceBrand   string `json:"device_brand"`
	DeviceModel   string `json:"device_model"`
	Problem       string `json:"problem"`
}

func mapRepairStatus(status string) (models.RepairStatus, error) {
	s := models.RepairStatus(strings.ToLower(status))
	switch s {
	case models.RepairStatusPending, models.RepairStatusDiagnosis,
		models.RepairStatusPriceQuoted, models.RepairStatusCustomerApproved,
		models.RepairStatusCustomerRejected, models.RepairStatusInRepair,
		models.RepairStatusCompleted, models.RepairStatusDelivered:
		return s, nil
	default:
		return "", errors.New("invalid repair status")
	}
}

// generateTrackingNumber yields the reference customers use to follow their
// ticket, e.g. "TMR-20250131-4F7A2C".
func generateTrackingNumber() string {
	return fmt.Sprintf("TMR-%s-%s",
		time.Now().Format("20060102"),
		strings.ToUpper(uuid.NewString()[:6]),
	)
}

// CreateRepairRequest opens a new ticket in the pending status.
func CreateRepairRequest(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RepairRequestInput
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "customer_name and customer_phone are required"})
			return
		}

		ticket := models.RepairRequest{
			TrackingNumber: generateTrackingNumber(),
			CustomerName:   req.CustomerName,
			CustomerPhone:  req.CustomerPhone,
			CustomerEmail:  req.CustomerEmail,
			DeviceType:     req.DeviceType,
			DeviceBrand:    req.DeviceBrand,
			DeviceModel:    req.DeviceModel,
			Problem:        req.Problem,
			Status:         models.RepairStatusPending,
			RepairItems:    models.RepairItems{},
		}
		if err := db.Create(&ticket).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create repair request"})
			return
		}

		ordercontroller.BroadcastEvent("repair_created", ticket)
		c.JSON(http.StatusCreated, ticket)
	}
}

func GetAllRepairRequests(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Preload("Images").Order("created_at DESC")

		if status := c.Query("status"); status != "" {
			mapped, err := mapRepairStatus(status)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			query = query.Where("status = ?", mapped)
		}
		if search := c.Query("search"); search != "" {
			likePattern := "%" + search + "%"
			query = query.Where(
				"tracking_number LIKE ? OR customer_name LIKE ? OR customer_phone LIKE ? OR device_model LIKE ?",
				likePattern, likePattern, likePattern, likePattern,
			)
		}

		var tickets []models.RepairRequest
		if err := query.Find(&tickets).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch repair requests"})
			return
		}
		c.JSON(http.StatusOK, tickets)
	}
}

// GetRepairRequestByID accepts a numeric id or a tracking number. The two
// are queried separately so the text reference never reaches the integer
// id column.
func GetRepairRequestByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ref := c.Param("id")

		query := db.Preload("Images")
		if _, err := strconv.Atoi(ref); err == nil {
			query = query.Where("id = ?", ref)
		} else {
			query = query.Where("tracking_number = ?", ref)
		}

		var ticket models.RepairRequest
		if err := query.First(&ticket).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Repair request not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve repair request"})
			return
		}
		c.JSON(http.StatusOK, ticket)
	}
}

// UpdateRepairRequest applies a partial update to notes, line items and the
// final price. Status changes go through UpdateRepairStatus.
func UpdateRepairRequest(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var ticket models.RepairRequest
		if err := db.First(&ticket, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Repair request not found"})
			return
		}

		var req struct {
			CustomerName   *string            `json:"customer_name"`
			CustomerPhone  *string            `json:"customer_phone"`
			CustomerEmail  *string            `json:"customer_email"`
			DeviceType     *string            `json:"device_type"`
			DeviceBrand    *string            `json:"device_brand"`
			DeviceModel    *string            `json:"device_model"`
			Problem        *string            `json:"problem"`
			DiagnosisNotes *string            `json:"diagnosis_notes"`
			RepairNotes    *string            `json:"repair_notes"`
			FinalPrice     *float64           `json:"final_price"`
			RepairItems    models.RepairItems `json:"repair_items"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		if req.CustomerName != nil {
			ticket.CustomerName = *req.CustomerName
		}
		if req.CustomerPhone != nil {
			ticket.CustomerPhone = *req.CustomerPhone
		}
		if req.CustomerEmail != nil {
			ticket.CustomerEmail = *req.CustomerEmail
		}
		if req.DeviceType != nil {
			ticket.DeviceType = *req.DeviceType
		}
		if req.DeviceBrand != nil {
			ticket.DeviceBrand = *req.DeviceBrand
		}
		if req.DeviceModel != nil {
			ticket.DeviceModel = *req.DeviceModel
		}
		if req.Problem != nil {
			ticket.Problem = *req.Problem
		}
		if req.DiagnosisNotes != nil {
			ticket.DiagnosisNotes = *req.DiagnosisNotes
		}
		if req.RepairNotes != nil {
			ticket.RepairNotes = *req.RepairNotes
		}
		if req.FinalPrice != nil {
			ticket.FinalPrice = req.FinalPrice
		}
		if req.RepairItems != nil {
			ticket.RepairItems = req.RepairItems
		}

		if err := db.Save(&ticket).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update repair request"})
			return
		}
		c.JSON(http.StatusOK, ticket)
	}
}

// QuoteRepairPrice records the estimate and moves the ticket to
// price_quoted.
// URL: POST /repair-requests/:id/quote-price
func QuoteRepairPrice(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var ticket models.RepairRequest
		if err := db.First(&ticket, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Repair request not found"})
			return
		}

		var req struct {
			EstimatedPrice *float64           `json:"estimated_price" binding:"required"`
			DiagnosisNotes string             `json:"diagnosis_notes"`
			RepairItems    models.RepairItems `json:"repair_items"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "estimated_price is required"})
			return
		}

		if !models.CanTransition(ticket.Status, models.RepairStatusPriceQuoted) {
			c.JSON(http.StatusConflict, gin.H{
				"error": fmt.Sprintf("cannot quote a price while the ticket is %s", ticket.Status),
			})
			return
		}

		ticket.EstimatedPrice = req.EstimatedPrice
		ticket.Status = models.RepairStatusPriceQuoted
		if req.DiagnosisNotes != "" {
			ticket.DiagnosisNotes = req.DiagnosisNotes
		}
		if req.RepairItems != nil {
			ticket.RepairItems = req.RepairItems
		}

		if err := db.Save(&ticket).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save price quote"})
			return
		}

		ordercontroller.BroadcastEvent("repair_status_changed", ticket)
		c.JSON(http.StatusOK, ticket)
	}
}

// UpdateRepairStatus moves a ticket along the workflow, rejecting
// transitions the workflow does not allow.
// URL: PUT /repair-requests/:id/update-status
func UpdateRepairStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var ticket models.RepairRequest
		if err := db.First(&ticket, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Repair request not found"})
			return
		}

		var req struct {
			Status string `json:"status" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
			return
		}

		newStatus, err := mapRepairStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if !models.CanTransition(ticket.Status, newStatus) {
			c.JSON(http.StatusConflict, gin.H{
				"error": fmt.Sprintf("cannot move ticket from %s to %s", ticket.Status, newStatus),
			})
			return
		}

		if err := db.Model(&ticket).Update("status", newStatus).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
			return
		}

		ordercontroller.BroadcastEvent("repair_status_changed", ticket)
		c.JSON(http.StatusOK, ticket)
	}
}

func DeleteRepairRequest(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var ticket models.RepairRequest
		if err := db.First(&ticket, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Repair request not found"})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("repair_request_id = ?", ticket.ID).Delete(&models.RepairImage{}).Error; err != nil {
				return err
			}
			return tx.Delete(&ticket).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete repair request"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Repair request deleted successfully"})
	}
}

// AddRepairImages attaches uploaded image URLs to a ticket.
// URL: POST /repair-requests/:id/images
func AddRepairImages(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var ticket models.RepairRequest
		if err := db.First(&ticket, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Repair request not found"})
			return
		}

		var req struct {
			URLs []string `json:"urls" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil || len(req.URLs) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "urls is required"})
			return
		}

		var created []models.RepairImage
		err := db.Transaction(func(tx *gorm.DB) error {
			for _, url := range req.URLs {
				img := models.RepairImage{RepairRequestID: ticket.ID, URL: url}
				if err := tx.Create(&img).Error; err != nil {
					return err
				}
				created = append(created, img)
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
