package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/JoeShih716/go-account-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-account-ledger/internal/logger"
	"github.com/JoeShih716/go-account-ledger/pkg/keylock"
)

const (
	DefaultMaxRetries   = 5
	DefaultRetryBackoff = 5 * time.Millisecond
)

// Engine 是交易引擎 (核心業務邏輯層)
//
// 本身不保存任何狀態，只負責:
//
//	同帳戶序列化 (Locker) -> 讀取帳戶 -> 驗證 -> 計算新餘額 -> 以版本號原子提交
type Engine struct {
	ledger       Ledger
	limits       *LimitEvaluator
	locker       Locker
	maxRetries   int
	retryBackoff time.Duration
	now          func() time.Time
}

// EngineOption 定義 Engine 的配置選項函數
type EngineOption func(*Engine)

// WithLocker 設定帳戶鎖 (預設為行程內的 keylock.Arena)
func WithLocker(locker Locker) EngineOption {
	return func(e *Engine) {
		e.locker = locker
	}
}

// WithMaxRetries 設定版本衝突時的最大重試次數
func WithMaxRetries(n int) EngineOption {
	return func(e *Engine) {
		if n >= 0 {
			e.maxRetries = n
		}
	}
}

// WithRetryBackoff 設定每次重試前的等待基數 (第 n 次等待 n*d)
func WithRetryBackoff(d time.Duration) EngineOption {
	return func(e *Engine) {
		e.retryBackoff = d
	}
}

// WithClock 替換時間來源 (測試用)
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) {
		e.now = now
	}
}

// NewEngine 建立交易引擎
func NewEngine(ledger Ledger, limits *LimitEvaluator, opts ...EngineOption) *Engine {
	e := &Engine{
		ledger:       ledger,
		limits:       limits,
		locker:       keylock.NewArena(),
		maxRetries:   DefaultMaxRetries,
		retryBackoff: DefaultRetryBackoff,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ProcessTransaction 處理單筆入帳 / 出帳
//
// 參數:
//
//	ctx: 上下文，deadline 會傳遞到鎖與儲存層
//	req: 交易請求
//
// 回傳:
//
//	*domain.TransactionResult: 已提交的交易 (含新餘額與是否標記)
//	error: 驗證錯誤、餘額不足、帳戶停用、並發衝突或儲存錯誤，失敗時不會有任何變更
func (e *Engine) ProcessTransaction(ctx context.Context, req domain.TransactionRequest) (*domain.TransactionResult, error) {
	if !req.Type.Valid() {
		return nil, domain.ErrInvalidTransactionType
	}
	if err := domain.ValidateAmount(req.Amount); err != nil {
		return nil, err
	}

	unlock, err := e.locker.Lock(ctx, accountLockKey(req.AccountID))
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: lock account %d: %w", domain.ErrConcurrencyConflict, req.AccountID, err)
	}
	defer unlock()

	// 呼叫端提供 Reference 時，每次嘗試都先查是否已提交 (重送或並發重複請求)
	lookupRef := req.Reference != uuid.Nil
	if !lookupRef {
		req.Reference = uuid.New()
	}

	for attempt := 0; attempt <= e.maxRetries; attempt++ {
		if attempt > 0 {
			if err := e.backoff(ctx, attempt); err != nil {
				return nil, err
			}
		}
		result, err := e.apply(ctx, req, lookupRef)
		if errors.Is(err, domain.ErrVersionConflict) {
			logger.Warn("transaction version conflict, retrying", logger.Fields{
				"accountId": req.AccountID,
				"attempt":   attempt + 1,
			})
			continue
		}
		return result, err
	}

	return nil, fmt.Errorf("%w: account %d after %d attempts", domain.ErrConcurrencyConflict, req.AccountID, e.maxRetries+1)
}

// apply 執行一次 讀取 -> 驗證 -> 計算 -> 提交
func (e *Engine) apply(ctx context.Context, req domain.TransactionRequest, lookupRef bool) (*domain.TransactionResult, error) {
	if lookupRef {
		existing, err := e.ledger.FindTransactionByReference(ctx, req.AccountID, req.Reference)
		if err == nil {
			if existing.Type != req.Type || !existing.Amount.Equal(req.Amount) {
				return nil, fmt.Errorf("%w: %s", domain.ErrReferenceMismatch, req.Reference)
			}
			return &domain.TransactionResult{Transaction: *existing, Replayed: true}, nil
		}
		if !errors.Is(err, domain.ErrTransactionNotFound) {
			return nil, storageError("find transaction by reference", err)
		}
	}

	account, err := e.ledger.GetAccount(ctx, req.AccountID)
	if err != nil {
		return nil, storageError("load account", err)
	}
	if account.IsSuspended() {
		return nil, domain.ErrAccountSuspended
	}

	newBalance, err := account.Apply(req.Type, req.Amount)
	if err != nil {
		return nil, err
	}

	now := e.now().Truncate(time.Microsecond)
	flagged := false
	if req.Type == domain.TransactionTypeDebit {
		flagged, err = e.limits.Exceeds(ctx, req.AccountID, req.Amount, now)
		if err != nil {
			return nil, storageError("evaluate daily limit", err)
		}
	}

	tran := &domain.Transaction{
		AccountID:        req.AccountID,
		Amount:           req.Amount,
		BalanceAfter:     newBalance,
		Timestamp:        now,
		Reference:        req.Reference,
		Type:             req.Type,
		FlaggedForReview: flagged,
	}
	if err := e.ledger.CommitTransaction(ctx, account.Version, tran); err != nil {
		return nil, storageError("commit transaction", err)
	}

	fields := logger.Fields{
		"accountId":     tran.AccountID,
		"transactionId": tran.ID,
		"type":          tran.Type.String(),
		"amount":        tran.Amount.String(),
		"balanceAfter":  tran.BalanceAfter.String(),
	}
	if flagged {
		fields["dailyLimit"] = e.limits.Limit().String()
		logger.Warn("transaction flagged for review", fields)
	} else {
		logger.Info("transaction committed", fields)
	}

	return &domain.TransactionResult{Transaction: *tran}, nil
}

func (e *Engine) backoff(ctx context.Context, attempt int) error {
	if e.retryBackoff <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(time.Duration(attempt) * e.retryBackoff)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func accountLockKey(accountID int64) string {
	return fmt.Sprintf("account:%d", accountID)
}

// storageError 保留已分類的錯誤，其餘歸類為可重試的 ErrStorageFailure
func storageError(op string, err error) error {
	switch {
	case errors.Is(err, domain.ErrAccountNotFound),
		errors.Is(err, domain.ErrVersionConflict),
		errors.Is(err, domain.ErrStorageCorruption),
		errors.Is(err, domain.ErrStorageFailure),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return err
	default:
		return fmt.Errorf("%s: %w: %w", op, domain.ErrStorageFailure, err)
	}
}
