package models

import "time"

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"    // Order placed, awaiting handling
	OrderStatusProcessing OrderStatus = "processing" // Being prepared / shipped
	OrderStatusCompleted  OrderStatus = "completed"  // Delivered and closed
	OrderStatusCancelled  OrderStatus = "cancelled"  // Cancelled before completion
)

type Order struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	OrderNumber   string      `gorm:"uniqueIndex;not null" json:"order_number"`
	CustomerName  string      `gorm:"not null" json:"customer_name"`
	CustomerPhone string      `json:"customer_phone"`
	CustomerEmail string      `json:"customer_email"`
	Address       Address     `gorm:"embedded" json:"address"`
	Items         []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	ShippingCost  float64     `json:"shipping_cost"`
	Total         float64     `json:"total"`
	Status        OrderStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// OrderItem references either a product or an internet package, never both.
type OrderItem struct {
	ID                uint     `gorm:"primaryKey" json:"id"`
	OrderID           uint     `gorm:"index" json:"order_id"`
	ProductID         *uint    `json:"product_id"`
	Product           *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	InternetPackageID *uint    `json:"internet_package_id"`
	Title             string   `json:"title"`
	UnitPrice         float64  `json:"unit_price"`
	Quantity          int      `json:"quantity"`
}

// Address model embedded in Order
type Address struct {
	City       string `json:"city"`
	District   string `json:"district"`
	Street     string `json:"street"`
	PostalCode string `json:"postal_code"`
}
