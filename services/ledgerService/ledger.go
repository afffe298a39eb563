package ledgerService

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pitBossBot/models"
	"pitBossBot/services/common"
)

// GetBalance returns the spendable balance for an owner.
func GetBalance(db *gorm.DB, ownerID string) (int64, error) {
	var wallet models.Wallet
	if err := db.Where("owner_id = ?", ownerID).First(&wallet).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, common.ErrWalletNotFound
		}
		return 0, common.StoreFailure(err)
	}
	return wallet.Balance, nil
}

// GetBalanceWithHistory returns the balance plus the most recent transaction
// records, newest first.
func GetBalanceWithHistory(db *gorm.DB, ownerID string, limit int) (int64, []models.TransactionRecord, error) {
	balance, err := GetBalance(db, ownerID)
	if err != nil {
		return 0, nil, err
	}

	var records []models.TransactionRecord
	if err := db.Where("owner_id = ?", ownerID).
		Order("id DESC").
		Limit(limit).
		Find(&records).Error; err != nil {
		return 0, nil, common.StoreFailure(err)
	}
	return balance, records, nil
}

// ApplyDelta adjusts a wallet balance and appends the matching transaction
// record as one unit. It must run inside the caller's transaction; the row
// lock taken here is held until the caller commits or rolls back.
//
// An ESCROW delta that would drive the balance negative fails with
// ErrInsufficientCredits and writes nothing. GRANT and RELEASE only ever add
// credits, so a negative amount for those kinds is rejected outright.
func ApplyDelta(tx *gorm.DB, ownerID string, betID *uint, amount int64, kind string) error {
	if kind != models.TransactionEscrow && amount < 0 {
		return fmt.Errorf("%w: %s amount cannot be negative", common.ErrValidation, kind)
	}

	var wallet models.Wallet
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("owner_id = ?", ownerID).
		First(&wallet).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.ErrWalletNotFound
		}
		return err
	}

	newBalance := wallet.Balance + amount
	if kind == models.TransactionEscrow && newBalance < 0 {
		return fmt.Errorf("%w: balance %d, needed %d", common.ErrInsufficientCredits, wallet.Balance, -amount)
	}

	if err := tx.Model(&wallet).Update("balance", newBalance).Error; err != nil {
		return err
	}

	record := models.TransactionRecord{
		OwnerID: ownerID,
		BetID:   betID,
		Amount:  amount,
		Kind:    kind,
	}
	return tx.Create(&record).Error
}

// ProvisionWallet creates a wallet with the given starting balance. The
// starting balance is recorded as a GRANT so the transaction log stays a
// complete reconstruction of the balance. A duplicate owner fails with
// ErrAlreadyExists; callers provisioning idempotently treat that as success.
func ProvisionWallet(tx *gorm.DB, ownerID string, initial int64) error {
	if initial < 0 {
		return fmt.Errorf("%w: starting balance cannot be negative", common.ErrValidation)
	}

	wallet := models.Wallet{OwnerID: ownerID, Balance: initial}
	if err := tx.Create(&wallet).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return common.ErrAlreadyExists
		}
		return err
	}

	if initial > 0 {
		grant := models.TransactionRecord{
			OwnerID: ownerID,
			Amount:  initial,
			Kind:    models.TransactionGrant,
		}
		return tx.Create(&grant).Error
	}
	return nil
}

// Reconcile recomputes the running sum of an owner's transaction records and
// returns it alongside the stored balance. Read-only consistency check; the
// stored balance remains the primary read path.
func Reconcile(db *gorm.DB, ownerID string) (balance int64, ledgerSum int64, err error) {
	balance, err = GetBalance(db, ownerID)
	if err != nil {
		return 0, 0, err
	}

	if err := db.Model(&models.TransactionRecord{}).
		Where("owner_id = ?", ownerID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&ledgerSum).Error; err != nil {
		return 0, 0, common.StoreFailure(err)
	}
	return balance, ledgerSum, nil
}
