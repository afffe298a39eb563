package models

import "time"

const (
	TransactionGrant   = "GRANT"
	TransactionEscrow  = "ESCROW"
	TransactionRelease = "RELEASE"
)

// TransactionRecord is append-only. The running sum of Amount for an owner
// must always equal the wallet balance; the scheduler audits this.
type TransactionRecord struct {
	ID        uint   `gorm:"primaryKey"`
	OwnerID   string `gorm:"index; size:64"`
	BetID     *uint
	Amount    int64
	Kind      string `gorm:"size:16"`
	CreatedAt time.Time
}
