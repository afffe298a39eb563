package models

import (
	"gorm.io/gorm"
)

const (
	BetStatusPending  = "PENDING"
	BetStatusAccepted = "ACCEPTED"
	BetStatusResolved = "RESOLVED"
	// Part of the status vocabulary, but no transition produces it today.
	// Refund semantics would go through here if cancellation is ever added.
	BetStatusCancelled = "CANCELLED"
)

const (
	SideA = "A"
	SideB = "B"
)

type Bet struct {
	gorm.Model
	ID           uint    `gorm:"primaryKey"`
	CreatorID    string  `gorm:"index; size:64"`
	OpponentID   *string `gorm:"index; size:64"`
	BotFlag      *string `gorm:"size:64"`
	Sport        string  `gorm:"size:64"`
	Market       string  `gorm:"size:64"`
	SideCreator  string  `gorm:"size:1"`
	SideOpponent *string `gorm:"size:1"`
	Stake        int64
	Status       string `gorm:"index; size:16"`
}
