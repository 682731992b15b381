package models

import (
	"time"

	"gorm.io/gorm"
)

type BlogPost struct {
	ID          uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string         `gorm:"not null" json:"title"`
	Slug        string         `gorm:"uniqueIndex;not null" json:"slug"`
	Content     string         `json:"content"` // HTML
	Excerpt     string         `json:"excerpt"`
	Published   bool           `json:"published"`
	PublishedAt *time.Time     `json:"published_at"`
	MetaTitle   string         `json:"meta_title"`
	MetaDesc    string         `json:"meta_description"`
	Keywords    string         `json:"keywords"`
	ReadingTime int            `json:"reading_time"` // minutes
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
