package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID            uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Title         string         `gorm:"not null" json:"title"`
	Slug          string         `gorm:"uniqueIndex;not null" json:"slug"`
	Description   string         `json:"description"`
	Price         float64        `gorm:"not null" json:"price"`
	OriginalPrice float64        `json:"original_price"`
	Image         string         `json:"image"`
	CategoryID    *uint          `gorm:"index" json:"category_id"`
	Category      *Category      `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	IsNew         bool           `json:"is_new"`
	InStock       bool           `gorm:"default:true" json:"in_stock"`
	LimitedStock  bool           `json:"limited_stock"`
	SKU           string         `json:"sku"`
	Brand         string         `json:"brand"`
	GTIN          string         `json:"gtin"`
	MPN           string         `json:"mpn"`
	MetaTitle     string         `json:"meta_title"`
	MetaDesc      string         `json:"meta_description"`
	Keywords      string         `json:"keywords"`
	Specs         SpecMap        `gorm:"type:text" json:"specifications"`
	Images        []ProductImage `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"images,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// ProductImage is one gallery entry; exactly one per product is primary.
type ProductImage struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID uint      `gorm:"index;not null" json:"product_id"`
	URL       string    `gorm:"not null" json:"url"`
	Thumbnail string    `json:"thumbnail"`
	IsPrimary bool      `json:"is_primary"`
	CreatedAt time.Time `json:"created_at"`
}

// SpecMap stores product specifications as a JSON text column.
type SpecMap map[string]string

func (m SpecMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	b, err := json.Marshal(m)
	return string(b), err
}

func (m *SpecMap) Scan(value interface{}) error {
	if value == nil {
		*m = SpecMap{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	default:
		return errors.New("unsupported type for SpecMap")
	}
}
