package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

type RepairStatus string

const (
	RepairStatusPending          RepairStatus = "pending"           // Ticket opened, device not inspected yet
	RepairStatusDiagnosis        RepairStatus = "diagnosis"         // Under inspection
	RepairStatusPriceQuoted      RepairStatus = "price_quoted"      // Estimate sent to the customer
	RepairStatusCustomerApproved RepairStatus = "customer_approved" // Customer accepted the quote
	RepairStatusCustomerRejected RepairStatus = "customer_rejected" // Customer declined the quote
	RepairStatusInRepair         RepairStatus = "in_repair"         // Work in progress
	RepairStatusCompleted        RepairStatus = "completed"         // Work finished, awaiting pickup
	RepairStatusDelivered        RepairStatus = "delivered"         // Device returned to the customer
)

// RepairTransitions lists the statuses each status may move to.
var RepairTransitions = map[RepairStatus][]RepairStatus{
	RepairStatusPending:          {RepairStatusDiagnosis, RepairStatusCustomerRejected},
	RepairStatusDiagnosis:        {RepairStatusPriceQuoted, RepairStatusCustomerRejected},
	RepairStatusPriceQuoted:      {RepairStatusCustomerApproved, RepairStatusCustomerRejected},
	RepairStatusCustomerApproved: {RepairStatusInRepair},
	RepairStatusCustomerRejected: {RepairStatusDelivered},
	RepairStatusInRepair:         {RepairStatusCompleted},
	RepairStatusCompleted:        {RepairStatusDelivered},
	RepairStatusDelivered:        {},
}

// CanTransition reports whether a ticket may move from one status to another.
func CanTransition(from, to RepairStatus) bool {
	for _, allowed := range RepairTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

type RepairRequest struct {
	ID             uint          `gorm:"primaryKey" json:"id"`
	TrackingNumber string        `gorm:"uniqueIndex;not null" json:"tracking_number"`
	CustomerName   string        `gorm:"not null" json:"customer_name"`
	CustomerPhone  string        `gorm:"index;not null" json:"customer_phone"`
	CustomerEmail  string        `json:"customer_email"`
	DeviceType     string        `json:"device_type"`
	DeviceBrand    string        `json:"device_brand"`
	DeviceModel    string        `json:"device_model"`
	Problem        string        `json:"problem"`
	Status         RepairStatus  `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	EstimatedPrice *float64      `json:"estimated_price"`
	FinalPrice     *float64      `json:"final_price"`
	RepairItems    RepairItems   `gorm:"type:text" json:"repair_items"`
	DiagnosisNotes string        `json:"diagnosis_notes"`
	RepairNotes    string        `json:"repair_notes"`
	Images         []RepairImage `gorm:"foreignKey:RepairRequestID;constraint:OnDelete:CASCADE" json:"images,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

type RepairImage struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	RepairRequestID uint      `gorm:"index;not null" json:"repair_request_id"`
	URL             string    `gorm:"not null" json:"url"`
	CreatedAt       time.Time `json:"created_at"`
}

// RepairItem is one labor or part line on a ticket.
type RepairItem struct {
	Kind  string  `json:"kind"` // "labor" or "part"
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// RepairItems stores the line items as a JSON text column.
type RepairItems []RepairItem

func (r RepairItems) Value() (driver.Value, error) {
	if r == nil {
		return "[]", nil
	}
	b, err := json.Marshal(r)
	return string(b), err
}

func (r *RepairItems) Scan(value interface{}) error {
	if value == nil {
		*r = RepairItems{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, r)
	case string:
		return json.Unmarshal([]byte(v), r)
	default:
		return errors.New("unsupported type for RepairItems")
	}
}

// RepairService is a catalog entry for offered repair work, e.g. screen
// replacement for a given device class.
type RepairService struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"not null" json:"name"`
	Description string  `json:"description"`
	DeviceType  string  `json:"device_type"`
	BasePrice   float64 `json:"base_price"`
	Active      bool    `gorm:"default:true" json:"active"`
	Order       int     `gorm:"default:0" json:"order"`
}

// Customer is the aggregated per-phone view over repair requests. It is a
// query result, not a table.
type Customer struct {
	Phone          string     `json:"phone"`
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	TotalRepairs   int        `json:"total_repairs"`
	LastRepairDate *time.Time `json:"last_repair_date"`
}
