package scheduler_jobs

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"pitBossBot/models"
	"pitBossBot/services/ledgerService"
)

// CheckLedgerDrift recomputes every wallet balance from the transaction log
// and flags any wallet whose stored balance disagrees with the running sum.
// Read-only; it never repairs, only reports.
func CheckLedgerDrift(db *gorm.DB, log *zap.Logger) error {
	var wallets []models.Wallet
	if err := db.Find(&wallets).Error; err != nil {
		return err
	}

	drifted := 0
	for _, wallet := range wallets {
		balance, ledgerSum, err := ledgerService.Reconcile(db, wallet.OwnerID)
		if err != nil {
			return err
		}
		if balance != ledgerSum {
			drifted++
			log.Error("wallet balance does not match transaction log",
				zap.String("owner_id", wallet.OwnerID),
				zap.Int64("balance", balance),
				zap.Int64("ledger_sum", ledgerSum),
			)
		}
	}

	if drifted == 0 {
		log.Info("ledger audit clean", zap.Int("wallets", len(wallets)))
	}
	return nil
}
