package repaircontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aksoydev/tamirstore-api/models"
)

// GetCustomers aggregates repair requests per phone number. The customer
// list is derived, never written directly.
func GetCustomers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.RepairRequest{}).
			Select(`customer_phone AS phone,
				MAX(customer_name) AS name,
				MAX(customer_email) AS email,
				COUNT(*) AS total_repairs,
				MAX(created_at) AS last_repair_date`).
			Group("customer_phone").
			Order("last_repair_date DESC")

		if search := c.Query("search"); search != "" {
			likePattern := "%" + search + "%"
			query = query.Where("customer_phone LIKE ? OR customer_name LIKE ?", likePattern, likePattern)
		}

		var customers []models.Customer
		if err := query.Scan(&customers).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch customers"})
			return
		}
		c.JSON(http.StatusOK, customers)
	}
}

// GetCustomerByPhone returns the aggregate row plus the customer's ticket
// history.
// URL: /customers/:phone
func GetCustomerByPhone(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		phone := c.Param("phone")

		var customer models.Customer
		err := db.Model(&models.RepairRequest{}).
			Select(`customer_phone AS phone,
				MAX(customer_name) AS name,
				MAX(customer_email) AS email,
				COUNT(*) AS total_repairs,
				MAX(created_at) AS last_repair_date`).
			Where("customer_phone = ?", phone).
			Group("customer_phone").
			Scan(&customer).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch customer"})
			return
		}
		if customer.Phone == "" {
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
			return
		}

		var tickets []models.RepairRequest
		if err := db.Where("customer_phone = ?", phone).
			Order("created_at DESC").
			Find(&tickets).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch repair history"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"customer": customer,
			"repairs":  tickets,
		})
	}
}
