package models

import "gorm.io/gorm"

// Wallet is the single source of truth for an owner's spendable credits.
// Only the ledger writes to it.
type Wallet struct {
	gorm.Model
	ID      uint   `gorm:"primaryKey"`
	OwnerID string `gorm:"uniqueIndex; size:64"`
	Balance int64
}
