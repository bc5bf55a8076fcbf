package postgres

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/JoeShih716/go-account-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-account-ledger/internal/app/core/usecase"
)

//go:embed schema.sql
var schema string

// PostgreSQL SQLSTATE
const (
	codeUniqueViolation      = "23505"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
)

const accountColumns = "id, holder_name, status, initial_balance, current_balance, version, created_at, updated_at"

const transactionColumns = "id, account_id, ref_id, type, amount, balance_after, flagged_for_review, created_at"

// Store 以 PostgreSQL (lib/pq) 實作 usecase.Store
//
// 餘額更新與交易新增在同一個 sql.Tx 內，並以 accounts.version 作樂觀鎖
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Migrate 建立資料表 (可重複執行)
func (s *Store) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("postgres migrate: %w", err)
	}
	return nil
}

// CreateAccount 建立帳戶並回填 ID / Version
func (s *Store) CreateAccount(ctx context.Context, account *domain.Account) error {
	var id int64
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO accounts (holder_name, status, initial_balance, current_balance, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, 1, $5, $6) RETURNING id`,
		account.HolderName, string(account.Status), account.InitialBalance, account.CurrentBalance,
		account.CreatedAt.UTC(), account.UpdatedAt.UTC(),
	).Scan(&id)
	if err != nil {
		return fmt.Errorf("postgres create account: %w", err)
	}
	account.ID = id
	account.Version = 1
	return nil
}

// GetAccount 取得帳戶
func (s *Store) GetAccount(ctx context.Context, accountID int64) (*domain.Account, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+accountColumns+" FROM accounts WHERE id = $1", accountID)
	var (
		a      domain.Account
		status string
	)
	err := row.Scan(&a.ID, &a.HolderName, &status, &a.InitialBalance, &a.CurrentBalance, &a.Version, &a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("postgres get account: %w", err)
	}
	a.Status = domain.AccountStatus(status)
	return &a, nil
}

// UpdateAccountHolder 修改持有人名稱
func (s *Store) UpdateAccountHolder(ctx context.Context, accountID int64, holderName string) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE accounts SET holder_name = $2, version = version + 1, updated_at = $3 WHERE id = $1",
		accountID, holderName, now())
	if err != nil {
		return fmt.Errorf("postgres update account holder: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("postgres update account holder: %w", err)
	} else if n == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

// SuspendAccount 停用帳戶，已停用則不動作
func (s *Store) SuspendAccount(ctx context.Context, accountID int64) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE accounts SET status = $2, version = version + 1, updated_at = $3 WHERE id = $1 AND status <> $2",
		accountID, string(domain.AccountStatusSuspended), now())
	if err != nil {
		return fmt.Errorf("postgres suspend account: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("postgres suspend account: %w", err)
	}
	if n == 0 {
		_, err := s.GetAccount(ctx, accountID)
		return err
	}
	return nil
}

// CommitTransaction 在同一個 sql.Tx 內更新餘額並新增交易紀錄
//
// 回傳:
//
//	error: 版本不符、追蹤號重複或序列化失敗時為 domain.ErrVersionConflict
func (s *Store) CommitTransaction(ctx context.Context, expectedVersion int64, tran *domain.Transaction) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("postgres begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	res, err := tx.ExecContext(ctx,
		"UPDATE accounts SET current_balance = $1, version = version + 1, updated_at = $2 WHERE id = $3 AND version = $4",
		tran.BalanceAfter, tran.Timestamp.UTC(), tran.AccountID, expectedVersion)
	if err != nil {
		return classify("update balance", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return classify("update balance", err)
	}
	if n == 0 {
		return domain.ErrVersionConflict
	}

	var id int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO transactions (account_id, ref_id, type, amount, balance_after, flagged_for_review, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`,
		tran.AccountID, tran.Reference, int16(tran.Type), tran.Amount, tran.BalanceAfter,
		tran.FlaggedForReview, tran.Timestamp.UTC(),
	).Scan(&id)
	if err != nil {
		return classify("insert transaction", err)
	}

	if err = tx.Commit(); err != nil {
		return classify("commit", err)
	}
	tran.ID = id
	return nil
}

// classify 將可重試的 SQLSTATE 轉為 domain.ErrVersionConflict
func classify(op string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case codeUniqueViolation, codeSerializationFailure, codeDeadlockDetected:
			return fmt.Errorf("%w: postgres %s: %s", domain.ErrVersionConflict, op, pqErr.Message)
		}
	}
	return fmt.Errorf("postgres %s: %w", op, err)
}

// FindTransactionByReference 依外部追蹤號查詢
func (s *Store) FindTransactionByReference(ctx context.Context, accountID int64, ref uuid.UUID) (*domain.Transaction, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+transactionColumns+" FROM transactions WHERE account_id = $1 AND ref_id = $2",
		accountID, ref)
	tran, err := scanTransaction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrTransactionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("postgres find transaction: %w", err)
	}
	return tran, nil
}

// SumDebits 加總 [from, to) 區間內的出帳
func (s *Store) SumDebits(ctx context.Context, accountID int64, from, to time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := s.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM transactions
		WHERE account_id = $1 AND type = $2 AND created_at >= $3 AND created_at < $4`,
		accountID, int16(domain.TransactionTypeDebit), from.UTC(), to.UTC(),
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("postgres sum debits: %w", err)
	}
	return total, nil
}

// ListTransactions 依條件查詢，依 ID 遞減
func (s *Store) ListTransactions(ctx context.Context, query domain.TransactionQuery) ([]domain.Transaction, int64, error) {
	where, args := buildFilter(query)

	var total int64
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM transactions WHERE "+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("postgres count transactions: %w", err)
	}

	stmt := "SELECT " + transactionColumns + " FROM transactions WHERE " + where + " ORDER BY id DESC"
	if query.Limit > 0 {
		args = append(args, query.Limit)
		stmt += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	args = append(args, query.Offset)
	stmt += fmt.Sprintf(" OFFSET $%d", len(args))

	trans, err := s.queryTransactions(ctx, stmt, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("postgres list transactions: %w", err)
	}
	return trans, total, nil
}

func buildFilter(query domain.TransactionQuery) (string, []any) {
	conds := []string{"account_id = $1"}
	args := []any{query.AccountID}
	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if query.Type != nil {
		add("type = $%d", int16(*query.Type))
	}
	if query.Start != nil {
		add("created_at >= $%d", query.Start.UTC())
	}
	if query.End != nil {
		add("created_at <= $%d", query.End.UTC())
	}
	return strings.Join(conds, " AND "), args
}

// LoadLedger 依 ID 遞增回傳帳戶全部交易
func (s *Store) LoadLedger(ctx context.Context, accountID int64) ([]domain.Transaction, error) {
	trans, err := s.queryTransactions(ctx,
		"SELECT "+transactionColumns+" FROM transactions WHERE account_id = $1 ORDER BY id ASC", accountID)
	if err != nil {
		return nil, fmt.Errorf("postgres load ledger: %w", err)
	}
	return trans, nil
}

func (s *Store) queryTransactions(ctx context.Context, stmt string, args ...any) ([]domain.Transaction, error) {
	rows, err := s.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	trans := make([]domain.Transaction, 0)
	for rows.Next() {
		tran, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		trans = append(trans, *tran)
	}
	return trans, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row scanner) (*domain.Transaction, error) {
	var (
		t   domain.Transaction
		typ int16
	)
	if err := row.Scan(&t.ID, &t.AccountID, &t.Reference, &typ, &t.Amount, &t.BalanceAfter, &t.FlaggedForReview, &t.Timestamp); err != nil {
		return nil, err
	}
	t.Type = domain.TransactionType(typ)
	return &t, nil
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

var _ usecase.Store = (*Store)(nil)
