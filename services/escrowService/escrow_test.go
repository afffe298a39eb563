package escrowService

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"pitBossBot/models"
	"pitBossBot/services/common"
)

func newMockDB() (*gorm.DB, sqlmock.Sqlmock, error) {
	db, mock, err := sqlmock.New()
	if err != nil {
		return nil, nil, err
	}

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{TranslateError: true})

	return gormDB, mock, err
}

func TestHoldPropagatesInsufficientCredits(t *testing.T) {
	db, mock, err := newMockDB()
	if err != nil {
		t.Fatalf("Failed to create mock DB: %v", err)
	}
	defer func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	}()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT \\* FROM `wallets`.*FOR UPDATE").
		WithArgs("alice", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "owner_id", "balance"}).
			AddRow(1, "alice", 30))
	mock.ExpectRollback()

	err = db.Transaction(func(tx *gorm.DB) error {
		return Hold(tx, "alice", 7, 50)
	})
	if !errors.Is(err, common.ErrInsufficientCredits) {
		t.Errorf("Expected ErrInsufficientCredits, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("Unmet expectations: %v", err)
	}
}

func TestReleaseAddsCreditsWithoutSufficiencyCheck(t *testing.T) {
	db, mock, err := newMockDB()
	if err != nil {
		t.Fatalf("Failed to create mock DB: %v", err)
	}
	defer func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	}()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT \\* FROM `wallets`.*FOR UPDATE").
		WithArgs("alice", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "owner_id", "balance"}).
			AddRow(1, "alice", 0))
	mock.ExpectExec("UPDATE `wallets` SET").
		WithArgs(int64(200), sqlmock.AnyArg(), 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO `transaction_records`").
		WithArgs("alice", 7, int64(200), models.TransactionRelease, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err = db.Transaction(func(tx *gorm.DB) error {
		return Release(tx, "alice", 7, 200)
	})
	if err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("Unmet expectations: %v", err)
	}
}
