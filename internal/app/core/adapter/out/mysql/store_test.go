package mysql

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	gomysql "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoeShih716/go-account-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-account-ledger/pkg/mysql"
)

var (
	accountColumns     = []string{"id", "holder_name", "status", "initial_balance", "current_balance", "version", "created_at", "updated_at"}
	transactionColumns = []string{"id", "account_id", "ref_id", "type", "amount", "balance_after", "flagged_for_review", "created_at"}
	ts                 = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
)

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	client, err := mysql.NewClientFromConn(db, "silent")
	require.NoError(t, err)
	return NewStore(client), mock
}

func debit(amount, after string) *domain.Transaction {
	return &domain.Transaction{
		AccountID:    1,
		Amount:       decimal.RequireFromString(amount),
		BalanceAfter: decimal.RequireFromString(after),
		Timestamp:    ts,
		Reference:    uuid.New(),
		Type:         domain.TransactionTypeDebit,
	}
}

func TestStore_CreateAccount(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `accounts`")).
		WillReturnResult(sqlmock.NewResult(7, 1))

	account, err := domain.NewAccount("Alice", decimal.NewFromInt(100), ts)
	require.NoError(t, err)
	require.NoError(t, store.CreateAccount(context.Background(), account))

	assert.Equal(t, int64(7), account.ID)
	assert.Equal(t, int64(1), account.Version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_GetAccount(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `accounts` WHERE id = ?")).
		WillReturnRows(sqlmock.NewRows(accountColumns).
			AddRow(1, "Alice", "ACTIVE", "100.00", "42.50", 3, ts, ts))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `accounts` WHERE id = ?")).
		WillReturnRows(sqlmock.NewRows(accountColumns))

	account, err := store.GetAccount(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Alice", account.HolderName)
	assert.Equal(t, "42.5", account.CurrentBalance.String())
	assert.Equal(t, int64(3), account.Version)

	_, err = store.GetAccount(context.Background(), 2)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_SuspendAccount(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE `accounts` SET")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	// 已停用: 沒有更新任何列，但帳戶存在
	mock.ExpectExec(regexp.QuoteMeta("UPDATE `accounts` SET")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `accounts`")).
		WillReturnRows(sqlmock.NewRows(accountColumns).
			AddRow(1, "Alice", "SUSPENDED", "0", "0", 2, ts, ts))

	require.NoError(t, store.SuspendAccount(context.Background(), 1))
	require.NoError(t, store.SuspendAccount(context.Background(), 1))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_UpdateAccountHolderNotFound(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE `accounts` SET")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := store.UpdateAccountHolder(context.Background(), 9, "Bob")
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_CommitTransaction(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE `accounts` SET")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `transactions`")).
		WillReturnResult(sqlmock.NewResult(42, 1))
	mock.ExpectCommit()

	tran := debit("10", "90")
	require.NoError(t, store.CommitTransaction(context.Background(), 3, tran))
	assert.Equal(t, int64(42), tran.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_CommitVersionConflict(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE `accounts` SET")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := store.CommitTransaction(context.Background(), 3, debit("10", "90"))
	assert.ErrorIs(t, err, domain.ErrVersionConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_CommitDuplicateReference(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE `accounts` SET")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `transactions`")).
		WillReturnError(&gomysql.MySQLError{Number: errDuplicateEntry, Message: "Duplicate entry"})
	mock.ExpectRollback()

	err := store.CommitTransaction(context.Background(), 3, debit("10", "90"))
	assert.ErrorIs(t, err, domain.ErrVersionConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_CommitInsertFailureRollsBack(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE `accounts` SET")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `transactions`")).
		WillReturnError(errors.New("lock wait timeout exceeded"))
	mock.ExpectRollback()

	err := store.CommitTransaction(context.Background(), 3, debit("10", "90"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrVersionConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_SumDebits(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(SUM(amount), 0) FROM `transactions`")).
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow("900.50"))

	total, err := store.SumDebits(context.Background(), 1, ts, ts.Add(24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, "900.5", total.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_ListTransactions(t *testing.T) {
	store, mock := newMockStore(t)
	ref := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `transactions`")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `transactions` WHERE account_id = ? AND type = ?")).
		WillReturnRows(sqlmock.NewRows(transactionColumns).
			AddRow(9, 1, ref[:], 2, "10.00", "90.00", true, ts))

	debitType := domain.TransactionTypeDebit
	items, total, err := store.ListTransactions(context.Background(), domain.TransactionQuery{
		AccountID: 1,
		Type:      &debitType,
		Offset:    10,
		Limit:     10,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(12), total)
	require.Len(t, items, 1)
	assert.Equal(t, ref, items[0].Reference)
	assert.True(t, items[0].FlaggedForReview)
	assert.Equal(t, domain.TransactionTypeDebit, items[0].Type)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_FindTransactionByReference(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `transactions` WHERE account_id = ? AND ref_id = ?")).
		WillReturnRows(sqlmock.NewRows(transactionColumns))

	_, err := store.FindTransactionByReference(context.Background(), 1, uuid.New())
	assert.ErrorIs(t, err, domain.ErrTransactionNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_LoadLedgerCorruptReference(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `transactions` WHERE account_id = ?")).
		WillReturnRows(sqlmock.NewRows(transactionColumns).
			AddRow(1, 1, []byte{0x01, 0x02}, 1, "5.00", "5.00", false, ts))

	_, err := store.LoadLedger(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrStorageCorruption)
	assert.NoError(t, mock.ExpectationsWereMet())
}
