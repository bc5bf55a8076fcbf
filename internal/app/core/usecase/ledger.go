package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/JoeShih716/go-account-ledger/internal/app/core/domain"
)

// AccountReader 讀取帳戶
type AccountReader interface {
	// GetAccount 取得帳戶快照，不存在回傳 domain.ErrAccountNotFound
	GetAccount(ctx context.Context, accountID int64) (*domain.Account, error)
}

// AccountRepository 帳戶 CRUD
type AccountRepository interface {
	AccountReader
	// CreateAccount 建立帳戶並回填 ID / Version
	CreateAccount(ctx context.Context, account *domain.Account) error
	// UpdateAccountHolder 修改持有人名稱 (Version +1)
	UpdateAccountHolder(ctx context.Context, accountID int64, holderName string) error
	// SuspendAccount 停用帳戶 (Version +1)，已停用則不動作
	SuspendAccount(ctx context.Context, accountID int64) error
}

// Ledger 是帳務系統的寫入介面，交易引擎只依賴它
type Ledger interface {
	AccountReader
	// CommitTransaction 在同一個原子單位內:
	//  1. 帳戶 Version 必須等於 expectedVersion，否則回傳 domain.ErrVersionConflict
	//  2. 將帳戶餘額更新為 tran.BalanceAfter，Version +1
	//  3. 新增交易紀錄並回填 tran.ID
	// 兩者皆成功或皆失敗
	CommitTransaction(ctx context.Context, expectedVersion int64, tran *domain.Transaction) error
	// FindTransactionByReference 依外部追蹤號查詢，不存在回傳 domain.ErrTransactionNotFound
	FindTransactionByReference(ctx context.Context, accountID int64, ref uuid.UUID) (*domain.Transaction, error)
}

// DebitSummer 提供每日提款加總
type DebitSummer interface {
	// SumDebits 加總 [from, to) 區間內已提交的出帳金額，沒有則為 0
	SumDebits(ctx context.Context, accountID int64, from, to time.Time) (decimal.Decimal, error)
}

// TransactionReader 歷史交易查詢
type TransactionReader interface {
	// ListTransactions 依條件查詢，依 ID 遞減排序，並回傳符合條件的總筆數
	ListTransactions(ctx context.Context, query domain.TransactionQuery) ([]domain.Transaction, int64, error)
	// LoadLedger 依 ID 遞增回傳帳戶全部交易
	LoadLedger(ctx context.Context, accountID int64) ([]domain.Transaction, error)
}

// Store 是儲存層需要滿足的完整契約
type Store interface {
	AccountRepository
	Ledger
	DebitSummer
	TransactionReader
}

// Locker 帳戶層級的互斥鎖
type Locker interface {
	// Lock 取得 key 的獨占權，回傳的 unlock 必須呼叫一次
	Lock(ctx context.Context, key string) (unlock func(), err error)
}
