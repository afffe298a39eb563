package ledgerService

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	gomysql "github.com/go-sql-driver/mysql"
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

func TestGetBalance(t *testing.T) {
	t.Run("Wallet exists", func(t *testing.T) {
		db, mock, err := newMockDB()
		if err != nil {
			t.Fatalf("Failed to create mock DB: %v", err)
		}
		defer func() {
			sqlDB, _ := db.DB()
			sqlDB.Close()
		}()

		mock.ExpectQuery("SELECT \\* FROM `wallets`").
			WithArgs("alice", 1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "owner_id", "balance"}).
				AddRow(1, "alice", 450))

		balance, err := GetBalance(db, "alice")
		if err != nil {
			t.Errorf("Unexpected error: %v", err)
		}
		if balance != 450 {
			t.Errorf("Expected balance 450, got %d", balance)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("Unmet expectations: %v", err)
		}
	})

	t.Run("Wallet missing", func(t *testing.T) {
		db, mock, err := newMockDB()
		if err != nil {
			t.Fatalf("Failed to create mock DB: %v", err)
		}
		defer func() {
			sqlDB, _ := db.DB()
			sqlDB.Close()
		}()

		mock.ExpectQuery("SELECT \\* FROM `wallets`").
			WithArgs("ghost", 1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "owner_id", "balance"}))

		_, err = GetBalance(db, "ghost")
		if !errors.Is(err, common.ErrWalletNotFound) {
			t.Errorf("Expected ErrWalletNotFound, got %v", err)
		}
	})
}

func TestApplyDelta(t *testing.T) {
	betID := uint(7)

	t.Run("Escrow debit succeeds", func(t *testing.T) {
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
				AddRow(1, "alice", 500))
		mock.ExpectExec("UPDATE `wallets` SET").
			WithArgs(int64(400), sqlmock.AnyArg(), 1).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO `transaction_records`").
			WithArgs("alice", 7, int64(-100), models.TransactionEscrow, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		err = db.Transaction(func(tx *gorm.DB) error {
			return ApplyDelta(tx, "alice", &betID, -100, models.TransactionEscrow)
		})
		if err != nil {
			t.Errorf("Unexpected error: %v", err)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("Unmet expectations: %v", err)
		}
	})

	t.Run("Escrow debit that would go negative writes nothing", func(t *testing.T) {
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
			return ApplyDelta(tx, "alice", &betID, -50, models.TransactionEscrow)
		})
		if !errors.Is(err, common.ErrInsufficientCredits) {
			t.Errorf("Expected ErrInsufficientCredits, got %v", err)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("Unmet expectations: %v", err)
		}
	})

	t.Run("Wallet missing", func(t *testing.T) {
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
			WithArgs("ghost", 1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "owner_id", "balance"}))
		mock.ExpectRollback()

		err = db.Transaction(func(tx *gorm.DB) error {
			return ApplyDelta(tx, "ghost", &betID, -50, models.TransactionEscrow)
		})
		if !errors.Is(err, common.ErrWalletNotFound) {
			t.Errorf("Expected ErrWalletNotFound, got %v", err)
		}
	})

	t.Run("Negative release rejected before any query", func(t *testing.T) {
		db, mock, err := newMockDB()
		if err != nil {
			t.Fatalf("Failed to create mock DB: %v", err)
		}
		defer func() {
			sqlDB, _ := db.DB()
			sqlDB.Close()
		}()

		err = ApplyDelta(db, "alice", &betID, -10, models.TransactionRelease)
		if !errors.Is(err, common.ErrValidation) {
			t.Errorf("Expected ErrValidation, got %v", err)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("Unmet expectations: %v", err)
		}
	})
}

func TestProvisionWallet(t *testing.T) {
	t.Run("Fresh wallet records the grant", func(t *testing.T) {
		db, mock, err := newMockDB()
		if err != nil {
			t.Fatalf("Failed to create mock DB: %v", err)
		}
		defer func() {
			sqlDB, _ := db.DB()
			sqlDB.Close()
		}()

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO `wallets`").
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec("INSERT INTO `transaction_records`").
			WithArgs("alice", nil, int64(1000), models.TransactionGrant, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		err = db.Transaction(func(tx *gorm.DB) error {
			return ProvisionWallet(tx, "alice", 1000)
		})
		if err != nil {
			t.Errorf("Unexpected error: %v", err)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("Unmet expectations: %v", err)
		}
	})

	t.Run("Duplicate owner", func(t *testing.T) {
		db, mock, err := newMockDB()
		if err != nil {
			t.Fatalf("Failed to create mock DB: %v", err)
		}
		defer func() {
			sqlDB, _ := db.DB()
			sqlDB.Close()
		}()

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO `wallets`").
			WillReturnError(&gomysql.MySQLError{Number: 1062, Message: "Duplicate entry"})
		mock.ExpectRollback()

		err = db.Transaction(func(tx *gorm.DB) error {
			return ProvisionWallet(tx, "alice", 1000)
		})
		if !errors.Is(err, common.ErrAlreadyExists) {
			t.Errorf("Expected ErrAlreadyExists, got %v", err)
		}
	})

	t.Run("Negative starting balance rejected", func(t *testing.T) {
		db, _, err := newMockDB()
		if err != nil {
			t.Fatalf("Failed to create mock DB: %v", err)
		}
		defer func() {
			sqlDB, _ := db.DB()
			sqlDB.Close()
		}()

		err = ProvisionWallet(db, "alice", -5)
		if !errors.Is(err, common.ErrValidation) {
			t.Errorf("Expected ErrValidation, got %v", err)
		}
	})
}

func TestReconcile(t *testing.T) {
	db, mock, err := newMockDB()
	if err != nil {
		t.Fatalf("Failed to create mock DB: %v", err)
	}
	defer func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	}()

	mock.ExpectQuery("SELECT \\* FROM `wallets`").
		WithArgs("alice", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "owner_id", "balance"}).
			AddRow(1, "alice", 400))
	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(amount\\), 0\\) FROM `transaction_records`").
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow(400))

	balance, ledgerSum, err := Reconcile(db, "alice")
	if err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
	if balance != 400 || ledgerSum != 400 {
		t.Errorf("Expected 400/400, got %d/%d", balance, ledgerSum)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("Unmet expectations: %v", err)
	}
}
