package models

type ShippingRegion struct {
	ID     uint    `gorm:"primaryKey" json:"id"`
	Name   string  `gorm:"unique;not null" json:"name"`
	Cost   float64 `gorm:"not null" json:"cost"`
	Active bool    `gorm:"default:true" json:"active"`
}

type InternetPackage struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	Name     string  `gorm:"not null" json:"name"`
	Speed    string  `json:"speed"`
	Quota    string  `json:"quota"`
	Price    float64 `gorm:"not null" json:"price"`
	Provider string  `json:"provider"`
	Active   bool    `gorm:"default:true" json:"active"`
	Order    int     `gorm:"default:0" json:"order"`
}
