package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/JoeShih716/go-account-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-account-ledger/internal/logger"
)

// LedgerSummary 帳本驗證結果
type LedgerSummary struct {
	AccountID        int64
	Balance          decimal.Decimal
	TransactionCount int
}

// Auditor 重放帳本並與帳戶餘額比對
type Auditor struct {
	accounts AccountReader
	reader   TransactionReader
}

func NewAuditor(accounts AccountReader, reader TransactionReader) *Auditor {
	return &Auditor{accounts: accounts, reader: reader}
}

// auditAttempts 帳戶在讀取帳本期間持續被寫入時的最大重讀次數
const auditAttempts = 5

// VerifyAccount 由初始餘額重放所有交易，不一致回傳 domain.ErrStorageCorruption
//
// 帳本讀取前後各讀一次帳戶，版本號相同才比對，避免把進行中的提交誤判為損毀
func (a *Auditor) VerifyAccount(ctx context.Context, accountID int64) (*LedgerSummary, error) {
	for attempt := 0; attempt < auditAttempts; attempt++ {
		account, trans, err := a.snapshot(ctx, accountID)
		if err != nil {
			return nil, err
		}
		if account == nil {
			continue
		}

		balance, err := domain.Replay(account.InitialBalance, trans)
		if err == nil && !balance.Equal(account.CurrentBalance) {
			err = fmt.Errorf("%w: account %d balance %s, ledger replay gives %s",
				domain.ErrStorageCorruption, accountID, account.CurrentBalance, balance)
		}
		if err != nil {
			logger.Error("ledger verification failed", err, logger.Fields{"accountId": accountID})
			return nil, err
		}
		return &LedgerSummary{
			AccountID:        accountID,
			Balance:          balance,
			TransactionCount: len(trans),
		}, nil
	}

	logger.Warn("ledger verification gave up, account keeps changing", logger.Fields{"accountId": accountID})
	return nil, fmt.Errorf("%w: account %d changed during verification", domain.ErrConcurrencyConflict, accountID)
}

// snapshot 讀出同一版本的帳戶與帳本，期間有提交時回傳 nil account
func (a *Auditor) snapshot(ctx context.Context, accountID int64) (*domain.Account, []domain.Transaction, error) {
	before, err := a.accounts.GetAccount(ctx, accountID)
	if err != nil {
		return nil, nil, storageError("get account", err)
	}
	trans, err := a.reader.LoadLedger(ctx, accountID)
	if err != nil {
		return nil, nil, storageError("load ledger", err)
	}
	after, err := a.accounts.GetAccount(ctx, accountID)
	if err != nil {
		return nil, nil, storageError("get account", err)
	}
	if after.Version != before.Version {
		return nil, nil, nil
	}
	return after, trans, nil
}
