package escrowService

import (
	"gorm.io/gorm"

	"pitBossBot/models"
	"pitBossBot/services/ledgerService"
)

// Hold moves stake credits out of the owner's spendable balance against a
// bet. Runs in the caller's transaction; a failed hold leaves no trace.
func Hold(tx *gorm.DB, ownerID string, betID uint, stake int64) error {
	return ledgerService.ApplyDelta(tx, ownerID, &betID, -stake, models.TransactionEscrow)
}

// Release pays amount credits to the owner for a settled bet. Credits are
// only ever added here, so there is no sufficiency check.
func Release(tx *gorm.DB, ownerID string, betID uint, amount int64) error {
	return ledgerService.ApplyDelta(tx, ownerID, &betID, amount, models.TransactionRelease)
}
