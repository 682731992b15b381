package models

import "time"

type CampaignType string

const (
	CampaignTypeWeekly       CampaignType = "weekly"
	CampaignTypeBlackFriday  CampaignType = "blackfriday"
	CampaignTypeFlashSale    CampaignType = "flash_sale"
	CampaignTypeLimitedStock CampaignType = "limited_stock"
)

type Campaign struct {
	ID        uint              `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string            `gorm:"not null" json:"name"`
	Title     string            `json:"title"`
	Type      CampaignType      `gorm:"type:VARCHAR(20);default:'weekly'" json:"type"`
	StartDate time.Time         `json:"start_date"`
	EndDate   time.Time         `json:"end_date"`
	Active    bool              `gorm:"default:true" json:"active"`
	Products  []CampaignProduct `gorm:"foreignKey:CampaignID;constraint:OnDelete:CASCADE" json:"products,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// CampaignProduct associates a product with a campaign at a display position,
// optionally overriding its price for the campaign window.
type CampaignProduct struct {
	ID           uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	CampaignID   uint     `gorm:"index;not null" json:"campaign_id"`
	ProductID    uint     `gorm:"index;not null" json:"product_id"`
	Product      *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	SpecialPrice *float64 `json:"special_price"`
	Order        int      `gorm:"default:0" json:"order"`
}
