package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType 交易類型
// 為了節省儲存空間，使用 uint8
type TransactionType uint8

const (
	// 入帳
	TransactionTypeCredit TransactionType = 1
	// 出帳
	TransactionTypeDebit TransactionType = 2
)

// 對外 (wire) 的交易類型字串
const (
	WireTypeCredit = "in"
	WireTypeDebit  = "out"
)

// ParseTransactionType 將對外字串轉為 TransactionType
// 只接受完全相符的 "in" / "out"，大小寫不同也視為錯誤
func ParseTransactionType(s string) (TransactionType, error) {
	switch s {
	case WireTypeCredit:
		return TransactionTypeCredit, nil
	case WireTypeDebit:
		return TransactionTypeDebit, nil
	default:
		return 0, ErrInvalidTransactionType
	}
}

// Valid 是否為已知的交易類型
func (t TransactionType) Valid() bool {
	return t == TransactionTypeCredit || t == TransactionTypeDebit
}

// String 回傳對外字串 ("in" / "out")
func (t TransactionType) String() string {
	switch t {
	case TransactionTypeCredit:
		return WireTypeCredit
	case TransactionTypeDebit:
		return WireTypeDebit
	default:
		return "unknown"
	}
}

// Signed 回傳此類型對餘額的帶號影響
func (t TransactionType) Signed(amount decimal.Decimal) decimal.Decimal {
	if t == TransactionTypeDebit {
		return amount.Neg()
	}
	return amount
}

// Transaction 帳本中的一筆交易，建立後不可變更
type Transaction struct {
	// ID: 由 Store 分配，單調遞增
	ID int64
	// AccountID: 所屬帳戶
	AccountID int64
	// Amount: 金額 (> 0)
	Amount decimal.Decimal
	// BalanceAfter: 套用本筆交易後的帳戶餘額快照
	BalanceAfter decimal.Decimal
	// Timestamp: 交易建立時間
	Timestamp time.Time
	// Reference: 外部追蹤號 (UUID)，同一帳戶內唯一，用於冪等
	Reference uuid.UUID
	Type      TransactionType
	// FlaggedForReview: 超過每日提款上限時標記，僅供人工審查
	FlaggedForReview bool
}

// TransactionRequest 交易請求
type TransactionRequest struct {
	AccountID int64
	Amount    decimal.Decimal
	Type      TransactionType
	// Reference 為空時由引擎產生
	Reference uuid.UUID
}

// TransactionResult 交易結果
type TransactionResult struct {
	Transaction Transaction
	// Replayed: 相同 Reference 已處理過，直接回傳先前結果
	Replayed bool
}

// TransactionQuery 歷史查詢條件 (交給 Store 執行)
type TransactionQuery struct {
	AccountID int64
	Type      *TransactionType
	Start     *time.Time
	End       *time.Time
	Offset    int
	Limit     int
}

// TransactionPage 分頁查詢結果
type TransactionPage struct {
	Items       []Transaction
	CurrentPage int
	TotalPages  int
	TotalCount  int64
}
