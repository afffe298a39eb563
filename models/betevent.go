package models

import "time"

const (
	BetActionCreated  = "CREATED"
	BetActionAccepted = "ACCEPTED"
	BetActionResolved = "RESOLVED"
)

// BetEvent is the append-only audit trail of who did what to a bet,
// separate from the balance-changing transaction log.
type BetEvent struct {
	ID        uint    `gorm:"primaryKey"`
	BetID     uint    `gorm:"index"`
	ActorID   string  `gorm:"size:64"`
	Action    string  `gorm:"size:16"`
	Metadata  *string `gorm:"size:255"`
	CreatedAt time.Time
}
