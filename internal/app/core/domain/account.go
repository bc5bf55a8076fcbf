package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// AccountStatus 帳戶狀態
type AccountStatus string

const (
	AccountStatusActive    AccountStatus = "ACTIVE"
	AccountStatusSuspended AccountStatus = "SUSPENDED"
)

// Account 帳戶
//
// 結構:
//
//	CurrentBalance: 只能由交易引擎透過 CommitTransaction 改變
//	Version: 每次變更帳戶紀錄都會 +1，用於樂觀鎖
type Account struct {
	ID             int64
	HolderName     string
	Status         AccountStatus
	InitialBalance decimal.Decimal
	CurrentBalance decimal.Decimal
	Version        int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewAccount 建立一個 ACTIVE 帳戶，CurrentBalance = initialBalance
func NewAccount(holderName string, initialBalance decimal.Decimal, now time.Time) (*Account, error) {
	holderName = strings.TrimSpace(holderName)
	if holderName == "" {
		return nil, ErrInvalidAccountHolder
	}
	if initialBalance.IsNegative() || !HasValidScale(initialBalance) {
		return nil, ErrInvalidAmount
	}
	return &Account{
		HolderName:     holderName,
		Status:         AccountStatusActive,
		InitialBalance: initialBalance,
		CurrentBalance: initialBalance,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// IsSuspended 是否已停用
func (a *Account) IsSuspended() bool {
	return a.Status == AccountStatusSuspended
}

// Credit 計算入帳後餘額，不修改帳戶本身
func (a *Account) Credit(amount decimal.Decimal) (decimal.Decimal, error) {
	if err := ValidateAmount(amount); err != nil {
		return decimal.Zero, err
	}
	return a.CurrentBalance.Add(amount), nil
}

// Debit 計算出帳後餘額，不修改帳戶本身
func (a *Account) Debit(amount decimal.Decimal) (decimal.Decimal, error) {
	if err := ValidateAmount(amount); err != nil {
		return decimal.Zero, err
	}
	if amount.GreaterThan(a.CurrentBalance) {
		return decimal.Zero, ErrInsufficientFunds
	}
	return a.CurrentBalance.Sub(amount), nil
}

// Apply 依交易類型計算新餘額
func (a *Account) Apply(t TransactionType, amount decimal.Decimal) (decimal.Decimal, error) {
	switch t {
	case TransactionTypeCredit:
		return a.Credit(amount)
	case TransactionTypeDebit:
		return a.Debit(amount)
	default:
		return decimal.Zero, ErrInvalidTransactionType
	}
}
