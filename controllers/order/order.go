package ordercontroller

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/aksoydev/tamirstore-api/models"
)

// -------- Request Structs --------

type PlaceOrderRequest struct {
	CustomerName  string         `json:"customer_name" binding:"required"`
	CustomerPhone string         `json:"customer_phone"`
	CustomerEmail string         `json:"customer_email"`
	Address       models.Address `json:"address"`
	ShippingCost  float64        `json:"shipping_cost"`
	Items         []struct {
		ProductID         *uint   `json:"product_id"`
		InternetPackageID *uint   `json:"internet_package_id"`
		Quantity          int     `json:"quantity"`
	} `json:"items" binding:"required"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// -------- Helpers --------

func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch strings.ToLower(status) {
	case string(models.OrderStatusPending):
		return models.OrderStatusPending, nil
	case string(models.OrderStatusProcessing):
		return models.OrderStatusProcessing, nil
	case string(models.OrderStatusCompleted):
		return models.OrderStatusCompleted, nil
	case string(models.OrderStatusCancelled):
		return models.OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

// generateOrderNumber yields a unique human-pasteable order reference.
func generateOrderNumber() string {
	return time.Now().Format("20060102") + "-" + strings.ToUpper(uuid.NewString()[:8])
}

// -------- Handlers --------

// PlaceOrderHandler creates an order from the public storefront checkout.
func PlaceOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if len(req.Items) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "order has no items"})
			return
		}

		var order models.Order
		err := db.Transaction(func(tx *gorm.DB) error {
			var total float64
			var items []models.OrderItem

			for _, item := range req.Items {
				qty := item.Quantity
				if qty <= 0 {
					qty = 1
				}
				switch {
				case item.ProductID != nil:
					var product models.Product
					if err := tx.First(&product, *item.ProductID).Error; err != nil {
						return errors.New("product not found")
					}
					if !product.InStock {
						return errors.New("product out of stock: " + product.Title)
					}
					total += product.Price * float64(qty)
					items = append(items, models.OrderItem{
						ProductID: item.ProductID,
						Title:     product.Title,
						UnitPrice: product.Price,
						Quantity:  qty,
					})
				case item.InternetPackageID != nil:
					var pkg models.InternetPackage
					if err := tx.First(&pkg, *item.InternetPackageID).Error; err != nil {
						return errors.New("internet package not found")
					}
					total += pkg.Price * float64(qty)
					items = append(items, models.OrderItem{
						InternetPackageID: item.InternetPackageID,
						Title:             pkg.Name,
						UnitPrice:         pkg.Price,
						Quantity:          qty,
					})
				default:
					return errors.New("order item needs a product or internet package reference")
				}
			}

			order = models.Order{
				OrderNumber:   generateOrderNumber(),
				CustomerName:  req.CustomerName,
				CustomerPhone: req.CustomerPhone,
				CustomerEmail: req.CustomerEmail,
				Address:       req.Address,
				Items:         items,
				ShippingCost:  req.ShippingCost,
				Total:         total + req.ShippingCost,
				Status:        models.OrderStatusPending,
			}
			return tx.Create(&order).Error
		})
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		BroadcastEvent("order_created", order)
		c.JSON(http.StatusCreated, order)
	}
}

func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Preload("Items").Order("created_at DESC")

		if status := c.Query("status"); status != "" {
			mapped, err := mapOrderStatus(status)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			query = query.Where("status = ?", mapped)
		}
		if search := c.Query("search"); search != "" {
			likePattern := "%" + search + "%"
			query = query.Where(
				"order_number LIKE ? OR customer_name LIKE ? OR customer_phone LIKE ?",
				likePattern, likePattern, likePattern,
			)
		}

		var orders []models.Order
		if err := query.Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GetOrderByIDHandler accepts a numeric id or an order number. Order
// numbers contain a hyphen, so they cannot be bound against the integer id
// column on Postgres.
func GetOrderByIDHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ref := c.Param("orderID")
		if ref == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}

		query := db.Preload("Items").Preload("Items.Product")
		if _, err := strconv.Atoi(ref); err == nil {
			query = query.Where("id = ?", ref)
		} else {
			query = query.Where("order_number = ?", ref)
		}

		var order models.Order
		if err := query.First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		newStatus, err := mapOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var order models.Order
		if err := db.First(&order, orderID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}

		if err := db.Model(&order).Update("status", newStatus).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update order status"})
			return
		}

		BroadcastEvent("order_status_changed", order)
		c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully"})
	}
}

func DeleteOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("order_id = ?", orderID).Delete(&models.OrderItem{}).Error; err != nil {
				return err
			}
			return tx.Where("id = ?", orderID).Delete(&models.Order{}).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete order"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
	}
}
