package models

import (
	"time"

	"gorm.io/gorm"
)

type SiteSetting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"uniqueIndex;not null" json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpsertSetting writes a setting value, creating the row if the key is new.
func UpsertSetting(db *gorm.DB, key, value string) (*SiteSetting, error) {
	var setting SiteSetting
	err := db.Where("key = ?", key).First(&setting).Error
	if err == gorm.ErrRecordNotFound {
		setting = SiteSetting{Key: key, Value: value}
		if err := db.Create(&setting).Error; err != nil {
			return nil, err
		}
		return &setting, nil
	}
	if err != nil {
		return nil, err
	}
	setting.Value = value
	if err := db.Save(&setting).Error; err != nil {
		return nil, err
	}
	return &setting, nil
}

// GetSetting returns the value stored under key, or "" when unset.
func GetSetting(db *gorm.DB, key string) (string, error) {
	var setting SiteSetting
	if err := db.Where("key = ?", key).First(&setting).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", nil
		}
		return "", err
	}
	return setting.Value, nil
}
