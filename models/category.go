package models

type Category struct {
	ID       uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string    `gorm:"not null" json:"name"`
	Slug     string    `gorm:"uniqueIndex;not null" json:"slug"`
	ParentID *uint     `gorm:"index" json:"parent_id"`
	Icon     string    `json:"icon"`
	Order    int       `gorm:"default:0" json:"order"`
	Children []Category `gorm:"foreignKey:ParentID" json:"children,omitempty"`
}
