package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	ID        uint   `gorm:"primaryKey"`
	DiscordID string `gorm:"uniqueIndex; size:64"`
	Username  *string
	IsBot     bool `gorm:"default:false"`
}
