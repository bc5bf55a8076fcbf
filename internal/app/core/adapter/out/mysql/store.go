package mysql

import (
	"context"
	"errors"
	"fmt"
	"time"

	gomysql "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/JoeShih716/go-account-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-account-ledger/internal/app/core/usecase"
	"github.com/JoeShih716/go-account-ledger/pkg/mysql"
)

// MySQL Error 1062: Duplicate entry
const errDuplicateEntry = 1062

// sqlAccount 對應資料庫的 accounts 表
type sqlAccount struct {
	ID             int64           `gorm:"primaryKey;autoIncrement"`
	HolderName     string          `gorm:"size:255;not null"`
	Status         string          `gorm:"size:16;not null"`
	InitialBalance decimal.Decimal `gorm:"type:decimal(20,2);not null"`
	CurrentBalance decimal.Decimal `gorm:"type:decimal(20,2);not null"`
	Version        int64           `gorm:"not null"`
	CreatedAt      time.Time       `gorm:"type:datetime(6)"`
	UpdatedAt      time.Time       `gorm:"type:datetime(6)"`
}

func (*sqlAccount) TableName() string {
	return "accounts"
}

// sqlTransaction 對應資料庫的 transactions 表
type sqlTransaction struct {
	ID               int64           `gorm:"primaryKey;autoIncrement"`
	AccountID        int64           `gorm:"not null;uniqueIndex:idx_account_ref,priority:1;index:idx_account_time,priority:1"`
	RefID            []byte          `gorm:"column:ref_id;type:binary(16);not null;uniqueIndex:idx_account_ref,priority:2"` // 對應 domain.Transaction.Reference
	Type             uint8           `gorm:"not null"`
	Amount           decimal.Decimal `gorm:"type:decimal(20,2);not null"`
	BalanceAfter     decimal.Decimal `gorm:"type:decimal(20,2);not null"`
	FlaggedForReview bool            `gorm:"not null;default:false"`
	CreatedAt        time.Time       `gorm:"type:datetime(6);index:idx_account_time,priority:2"`
}

func (*sqlTransaction) TableName() string {
	return "transactions"
}

// Store 以 MySQL 實作 usecase.Store
//
// 餘額更新與交易新增在同一個 DB Transaction 內，
// 並以 accounts.version 作樂觀鎖 (UPDATE ... WHERE version = ?)
type Store struct {
	client *mysql.Client
}

func NewStore(client *mysql.Client) *Store {
	return &Store{
		client: client,
	}
}

// Migrate 建立或更新資料表
func (s *Store) Migrate(ctx context.Context) error {
	if err := s.client.DB().WithContext(ctx).AutoMigrate(&sqlAccount{}, &sqlTransaction{}); err != nil {
		return fmt.Errorf("mysql migrate: %w", err)
	}
	return nil
}

func (s *Store) db(ctx context.Context) *gorm.DB {
	return s.client.DB().WithContext(ctx)
}

// CreateAccount 建立帳戶並回填 ID / Version
func (s *Store) CreateAccount(ctx context.Context, account *domain.Account) error {
	row := toSQLAccount(account)
	row.Version = 1
	if err := s.db(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("mysql create account: %w", err)
	}
	account.ID = row.ID
	account.Version = row.Version
	return nil
}

// GetAccount 取得帳戶
func (s *Store) GetAccount(ctx context.Context, accountID int64) (*domain.Account, error) {
	var row sqlAccount
	err := s.db(ctx).Where("id = ?", accountID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("mysql get account: %w", err)
	}
	return row.toDomain(), nil
}

// UpdateAccountHolder 修改持有人名稱
func (s *Store) UpdateAccountHolder(ctx context.Context, accountID int64, holderName string) error {
	res := s.db(ctx).Model(&sqlAccount{}).
		Where("id = ?", accountID).
		Updates(map[string]any{
			"holder_name": holderName,
			"version":     gorm.Expr("version + 1"),
			"updated_at":  now(),
		})
	if res.Error != nil {
		return fmt.Errorf("mysql update account holder: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

// SuspendAccount 停用帳戶，已停用則不動作
func (s *Store) SuspendAccount(ctx context.Context, accountID int64) error {
	res := s.db(ctx).Model(&sqlAccount{}).
		Where("id = ? AND status <> ?", accountID, string(domain.AccountStatusSuspended)).
		Updates(map[string]any{
			"status":     string(domain.AccountStatusSuspended),
			"version":    gorm.Expr("version + 1"),
			"updated_at": now(),
		})
	if res.Error != nil {
		return fmt.Errorf("mysql suspend account: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		// 不存在或已停用
		_, err := s.GetAccount(ctx, accountID)
		return err
	}
	return nil
}

// CommitTransaction 在同一個 DB Transaction 內更新餘額並新增交易紀錄
//
// 參數:
//
//	ctx: 上下文
//	expectedVersion: 呼叫端讀到的帳戶版本
//	tran: 交易物件，成功後回填 ID
//
// 回傳:
//
//	error: 版本不符或追蹤號重複時為 domain.ErrVersionConflict
func (s *Store) CommitTransaction(ctx context.Context, expectedVersion int64, tran *domain.Transaction) error {
	if tran.BalanceAfter.IsNegative() {
		return fmt.Errorf("mysql commit transaction: negative balance %s", tran.BalanceAfter)
	}
	row := toSQLTransaction(tran)

	err := s.db(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&sqlAccount{}).
			Where("id = ? AND version = ?", tran.AccountID, expectedVersion).
			Updates(map[string]any{
				"current_balance": tran.BalanceAfter,
				"version":         gorm.Expr("version + 1"),
				"updated_at":      tran.Timestamp,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrVersionConflict
		}
		if err := tx.Create(&row).Error; err != nil {
			if isDuplicateEntry(err) {
				return fmt.Errorf("%w: duplicate reference %s", domain.ErrVersionConflict, tran.Reference)
			}
			return err
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrVersionConflict) {
			return err
		}
		return fmt.Errorf("mysql commit transaction: %w", err)
	}
	tran.ID = row.ID
	return nil
}

// FindTransactionByReference 依外部追蹤號查詢
func (s *Store) FindTransactionByReference(ctx context.Context, accountID int64, ref uuid.UUID) (*domain.Transaction, error) {
	var row sqlTransaction
	err := s.db(ctx).Where("account_id = ? AND ref_id = ?", accountID, ref[:]).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrTransactionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("mysql find transaction: %w", err)
	}
	return row.toDomain()
}

// SumDebits 加總 [from, to) 區間內的出帳
func (s *Store) SumDebits(ctx context.Context, accountID int64, from, to time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := s.db(ctx).Model(&sqlTransaction{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("account_id = ? AND type = ? AND created_at >= ? AND created_at < ?",
			accountID, uint8(domain.TransactionTypeDebit), from.UTC(), to.UTC()).
		Row().Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("mysql sum debits: %w", err)
	}
	return total, nil
}

// ListTransactions 依條件查詢，依 ID 遞減
func (s *Store) ListTransactions(ctx context.Context, query domain.TransactionQuery) ([]domain.Transaction, int64, error) {
	var total int64
	if err := s.filtered(ctx, query).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("mysql count transactions: %w", err)
	}

	var rows []sqlTransaction
	q := s.filtered(ctx, query).Order("id DESC").Offset(query.Offset)
	if query.Limit > 0 {
		q = q.Limit(query.Limit)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("mysql list transactions: %w", err)
	}
	trans, err := toDomainTransactions(rows)
	if err != nil {
		return nil, 0, err
	}
	return trans, total, nil
}

func (s *Store) filtered(ctx context.Context, query domain.TransactionQuery) *gorm.DB {
	q := s.db(ctx).Model(&sqlTransaction{}).Where("account_id = ?", query.AccountID)
	if query.Type != nil {
		q = q.Where("type = ?", uint8(*query.Type))
	}
	if query.Start != nil {
		q = q.Where("created_at >= ?", query.Start.UTC())
	}
	if query.End != nil {
		q = q.Where("created_at <= ?", query.End.UTC())
	}
	return q
}

// LoadLedger 依 ID 遞增回傳帳戶全部交易
func (s *Store) LoadLedger(ctx context.Context, accountID int64) ([]domain.Transaction, error) {
	var rows []sqlTransaction
	if err := s.db(ctx).Where("account_id = ?", accountID).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("mysql load ledger: %w", err)
	}
	return toDomainTransactions(rows)
}

func isDuplicateEntry(err error) bool {
	var mysqlErr *gomysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == errDuplicateEntry
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

func toSQLAccount(a *domain.Account) sqlAccount {
	return sqlAccount{
		ID:             a.ID,
		HolderName:     a.HolderName,
		Status:         string(a.Status),
		InitialBalance: a.InitialBalance,
		CurrentBalance: a.CurrentBalance,
		Version:        a.Version,
		CreatedAt:      a.CreatedAt.UTC(),
		UpdatedAt:      a.UpdatedAt.UTC(),
	}
}

func (r *sqlAccount) toDomain() *domain.Account {
	return &domain.Account{
		ID:             r.ID,
		HolderName:     r.HolderName,
		Status:         domain.AccountStatus(r.Status),
		InitialBalance: r.InitialBalance,
		CurrentBalance: r.CurrentBalance,
		Version:        r.Version,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

func toSQLTransaction(t *domain.Transaction) sqlTransaction {
	return sqlTransaction{
		AccountID:        t.AccountID,
		RefID:            t.Reference[:],
		Type:             uint8(t.Type),
		Amount:           t.Amount,
		BalanceAfter:     t.BalanceAfter,
		FlaggedForReview: t.FlaggedForReview,
		CreatedAt:        t.Timestamp.UTC(),
	}
}

func (r *sqlTransaction) toDomain() (*domain.Transaction, error) {
	ref, err := uuid.FromBytes(r.RefID)
	if err != nil {
		return nil, fmt.Errorf("%w: transaction %d ref_id: %w", domain.ErrStorageCorruption, r.ID, err)
	}
	return &domain.Transaction{
		ID:               r.ID,
		AccountID:        r.AccountID,
		Amount:           r.Amount,
		BalanceAfter:     r.BalanceAfter,
		Timestamp:        r.CreatedAt,
		Reference:        ref,
		Type:             domain.TransactionType(r.Type),
		FlaggedForReview: r.FlaggedForReview,
	}, nil
}

func toDomainTransactions(rows []sqlTransaction) ([]domain.Transaction, error) {
	trans := make([]domain.Transaction, 0, len(rows))
	for i := range rows {
		tran, err := rows[i].toDomain()
		if err != nil {
			return nil, err
		}
		trans = append(trans, *tran)
	}
	return trans, nil
}

var _ usecase.Store = (*Store)(nil)
