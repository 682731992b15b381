package models

import "time"

type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProductID uint      `gorm:"index;not null" json:"product_id"`
	Author    string    `gorm:"not null" json:"author"`
	Rating    int       `gorm:"not null" json:"rating"`
	Comment   string    `json:"comment"`
	Approved  bool      `json:"approved"`
	CreatedAt time.Time `json:"created_at"`
}

type FAQ struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Question string `gorm:"not null" json:"question"`
	Answer   string `json:"answer"`
	Order    int    `gorm:"default:0" json:"order"`
	Active   bool   `gorm:"default:true" json:"active"`
}

type NewsletterSubscription struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type Slide struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Image    string `gorm:"not null" json:"image"`
	Link     string `json:"link"`
	Order    int    `gorm:"default:0" json:"order"`
	Active   bool   `gorm:"default:true" json:"active"`
}

type ContactMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Subject   string    `json:"subject"`
	Message   string    `gorm:"not null" json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}
