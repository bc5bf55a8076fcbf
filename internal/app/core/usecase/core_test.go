package usecase_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/JoeShih716/go-account-ledger/internal/app/core/adapter/out/memory"
	"github.com/JoeShih716/go-account-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-account-ledger/internal/app/core/usecase"
)

var fixedNow = time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)

type fixture struct {
	store    *memory.Store
	engine   *usecase.Engine
	accounts *usecase.AccountService
	auditor  *usecase.Auditor
}

func newFixture(t *testing.T, limit string, opts ...usecase.EngineOption) *fixture {
	t.Helper()
	store, err := memory.NewStore(nil)
	require.NoError(t, err)
	limits := usecase.NewLimitEvaluator(store, decimal.RequireFromString(limit), time.UTC)
	opts = append([]usecase.EngineOption{usecase.WithClock(func() time.Time { return fixedNow })}, opts...)
	return &fixture{
		store:    store,
		engine:   usecase.NewEngine(store, limits, opts...),
		accounts: usecase.NewAccountService(store),
		auditor:  usecase.NewAuditor(store, store),
	}
}

func (f *fixture) open(t *testing.T, balance string) *domain.Account {
	t.Helper()
	account, err := f.accounts.CreateAccount(context.Background(), "Alice", decimal.RequireFromString(balance))
	require.NoError(t, err)
	return account
}

func (f *fixture) process(accountID int64, typ domain.TransactionType, amount string) (*domain.TransactionResult, error) {
	return f.engine.ProcessTransaction(context.Background(), domain.TransactionRequest{
		AccountID: accountID,
		Amount:    decimal.RequireFromString(amount),
		Type:      typ,
	})
}

func (f *fixture) balance(t *testing.T, accountID int64) string {
	t.Helper()
	account, err := f.store.GetAccount(context.Background(), accountID)
	require.NoError(t, err)
	return account.CurrentBalance.String()
}

func TestEngine_CreditDebitSequence(t *testing.T) {
	f := newFixture(t, "10000")
	account := f.open(t, "100")

	res, err := f.process(account.ID, domain.TransactionTypeCredit, "50")
	require.NoError(t, err)
	assert.Equal(t, "150", res.Transaction.BalanceAfter.String())
	assert.Equal(t, fixedNow, res.Transaction.Timestamp)
	assert.NotEqual(t, uuid.Nil, res.Transaction.Reference)

	_, err = f.process(account.ID, domain.TransactionTypeDebit, "200")
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	assert.Equal(t, "150", f.balance(t, account.ID))

	res, err = f.process(account.ID, domain.TransactionTypeDebit, "150")
	require.NoError(t, err)
	assert.True(t, res.Transaction.BalanceAfter.IsZero())

	trans, err := f.store.LoadLedger(context.Background(), account.ID)
	require.NoError(t, err)
	assert.Len(t, trans, 2)

	summary, err := f.auditor.VerifyAccount(context.Background(), account.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.TransactionCount)
	assert.True(t, summary.Balance.IsZero())
}

func TestEngine_ValidationErrors(t *testing.T) {
	f := newFixture(t, "1000")
	account := f.open(t, "100")

	tests := []struct {
		name    string
		typ     domain.TransactionType
		amount  string
		wantErr error
	}{
		{"unknown type", domain.TransactionType(9), "10", domain.ErrInvalidTransactionType},
		{"zero amount", domain.TransactionTypeCredit, "0", domain.ErrInvalidAmount},
		{"negative amount", domain.TransactionTypeDebit, "-5", domain.ErrInvalidAmount},
		{"too many decimals", domain.TransactionTypeCredit, "1.005", domain.ErrInvalidAmount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.process(account.ID, tt.typ, tt.amount)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	_, err := f.process(404, domain.TransactionTypeCredit, "1")
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)

	assert.Equal(t, "100", f.balance(t, account.ID))
}

func TestEngine_SuspendedAccountRejected(t *testing.T) {
	f := newFixture(t, "1000")
	account := f.open(t, "100")
	require.NoError(t, f.accounts.SuspendAccount(context.Background(), account.ID))

	_, err := f.process(account.ID, domain.TransactionTypeCredit, "1")
	assert.ErrorIs(t, err, domain.ErrAccountSuspended)
	_, err = f.process(account.ID, domain.TransactionTypeDebit, "1")
	assert.ErrorIs(t, err, domain.ErrAccountSuspended)
}

func TestEngine_DailyLimitFlagsDebit(t *testing.T) {
	f := newFixture(t, "1000")
	account := f.open(t, "5000")

	res, err := f.process(account.ID, domain.TransactionTypeDebit, "900")
	require.NoError(t, err)
	assert.False(t, res.Transaction.FlaggedForReview)

	res, err = f.process(account.ID, domain.TransactionTypeDebit, "150")
	require.NoError(t, err)
	assert.True(t, res.Transaction.FlaggedForReview)
	// 標記不影響提交
	assert.Equal(t, "3950", f.balance(t, account.ID))

	// 入帳永遠不標記
	res, err = f.process(account.ID, domain.TransactionTypeCredit, "5000")
	require.NoError(t, err)
	assert.False(t, res.Transaction.FlaggedForReview)
}

func TestEngine_DailyLimitBoundary(t *testing.T) {
	f := newFixture(t, "1000")
	account := f.open(t, "5000")

	_, err := f.process(account.ID, domain.TransactionTypeDebit, "900")
	require.NoError(t, err)

	res, err := f.process(account.ID, domain.TransactionTypeDebit, "50")
	require.NoError(t, err)
	assert.False(t, res.Transaction.FlaggedForReview)

	// 累計剛好等於上限不標記
	res, err = f.process(account.ID, domain.TransactionTypeDebit, "50")
	require.NoError(t, err)
	assert.False(t, res.Transaction.FlaggedForReview)

	res, err = f.process(account.ID, domain.TransactionTypeDebit, "0.01")
	require.NoError(t, err)
	assert.True(t, res.Transaction.FlaggedForReview)
}

func TestEngine_IdempotentReference(t *testing.T) {
	f := newFixture(t, "1000")
	account := f.open(t, "100")
	ref := uuid.New()

	req := domain.TransactionRequest{
		AccountID: account.ID,
		Amount:    decimal.NewFromInt(30),
		Type:      domain.TransactionTypeDebit,
		Reference: ref,
	}
	first, err := f.engine.ProcessTransaction(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, first.Replayed)

	second, err := f.engine.ProcessTransaction(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, second.Replayed)
	assert.Equal(t, first.Transaction.ID, second.Transaction.ID)
	assert.Equal(t, "70", f.balance(t, account.ID))
}

func TestEngine_ReferenceReusedWithDifferentRequest(t *testing.T) {
	f := newFixture(t, "1000")
	account := f.open(t, "100")
	ref := uuid.New()

	_, err := f.engine.ProcessTransaction(context.Background(), domain.TransactionRequest{
		AccountID: account.ID,
		Amount:    decimal.NewFromInt(30),
		Type:      domain.TransactionTypeDebit,
		Reference: ref,
	})
	require.NoError(t, err)

	tests := []struct {
		name   string
		amount int64
		typ    domain.TransactionType
	}{
		{"different amount", 31, domain.TransactionTypeDebit},
		{"different type", 30, domain.TransactionTypeCredit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.engine.ProcessTransaction(context.Background(), domain.TransactionRequest{
				AccountID: account.ID,
				Amount:    decimal.NewFromInt(tt.amount),
				Type:      tt.typ,
				Reference: ref,
			})
			assert.ErrorIs(t, err, domain.ErrReferenceMismatch)
		})
	}
	assert.Equal(t, "70", f.balance(t, account.ID))
}

func TestEngine_ConcurrentDebitsNeverOverdraw(t *testing.T) {
	f := newFixture(t, "1000000")
	account := f.open(t, "500")

	const workers = 100
	var (
		wg        sync.WaitGroup
		succeeded atomic.Int64
		rejected  atomic.Int64
	)
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, err := f.process(account.ID, domain.TransactionTypeDebit, "10")
			switch {
			case err == nil:
				succeeded.Add(1)
			case errors.Is(err, domain.ErrInsufficientFunds):
				rejected.Add(1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(50), succeeded.Load())
	assert.Equal(t, int64(50), rejected.Load())
	assert.Equal(t, "0", f.balance(t, account.ID))

	summary, err := f.auditor.VerifyAccount(context.Background(), account.ID)
	require.NoError(t, err)
	assert.Equal(t, 50, summary.TransactionCount)
}

func TestEngine_ConcurrentAccountsIndependent(t *testing.T) {
	f := newFixture(t, "1000000")
	a := f.open(t, "0")
	b := f.open(t, "0")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := f.process(a.ID, domain.TransactionTypeCredit, "1.5")
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			_, err := f.process(b.ID, domain.TransactionTypeCredit, "2")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, "75", f.balance(t, a.ID))
	assert.Equal(t, "100", f.balance(t, b.ID))
}

func activeAccount(balance int64, version int64) *domain.Account {
	return &domain.Account{
		ID:             1,
		HolderName:     "Alice",
		Status:         domain.AccountStatusActive,
		InitialBalance: decimal.NewFromInt(balance),
		CurrentBalance: decimal.NewFromInt(balance),
		Version:        version,
	}
}

func newMockEngine(store *MockStore, opts ...usecase.EngineOption) *usecase.Engine {
	limits := usecase.NewLimitEvaluator(store, decimal.NewFromInt(1000), time.UTC)
	opts = append([]usecase.EngineOption{
		usecase.WithClock(func() time.Time { return fixedNow }),
		usecase.WithRetryBackoff(0),
	}, opts...)
	return usecase.NewEngine(store, limits, opts...)
}

func TestEngine_RetriesVersionConflict(t *testing.T) {
	store := new(MockStore)
	store.On("GetAccount", mock.Anything, int64(1)).Return(activeAccount(100, 7), nil)
	store.On("CommitTransaction", mock.Anything, int64(7), mock.Anything).Return(domain.ErrVersionConflict).Once()
	store.On("CommitTransaction", mock.Anything, int64(7), mock.Anything).Run(func(args mock.Arguments) {
		args.Get(2).(*domain.Transaction).ID = 11
	}).Return(nil).Once()

	engine := newMockEngine(store)
	res, err := engine.ProcessTransaction(context.Background(), domain.TransactionRequest{
		AccountID: 1,
		Amount:    decimal.NewFromInt(5),
		Type:      domain.TransactionTypeCredit,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(11), res.Transaction.ID)
	assert.Equal(t, "105", res.Transaction.BalanceAfter.String())
	store.AssertNumberOfCalls(t, "CommitTransaction", 2)
}

func TestEngine_RetryExhaustion(t *testing.T) {
	store := new(MockStore)
	store.On("GetAccount", mock.Anything, int64(1)).Return(activeAccount(100, 1), nil)
	store.On("CommitTransaction", mock.Anything, int64(1), mock.Anything).Return(domain.ErrVersionConflict)

	engine := newMockEngine(store, usecase.WithMaxRetries(2))
	_, err := engine.ProcessTransaction(context.Background(), domain.TransactionRequest{
		AccountID: 1,
		Amount:    decimal.NewFromInt(5),
		Type:      domain.TransactionTypeCredit,
	})
	assert.ErrorIs(t, err, domain.ErrConcurrencyConflict)
	store.AssertNumberOfCalls(t, "CommitTransaction", 3)
}

func TestEngine_StorageFailure(t *testing.T) {
	store := new(MockStore)
	store.On("GetAccount", mock.Anything, int64(1)).Return(activeAccount(100, 1), nil)
	store.On("SumDebits", mock.Anything, int64(1), mock.Anything, mock.Anything).Return(decimal.Zero, nil)
	store.On("CommitTransaction", mock.Anything, int64(1), mock.Anything).Return(errors.New("disk full"))

	engine := newMockEngine(store)
	_, err := engine.ProcessTransaction(context.Background(), domain.TransactionRequest{
		AccountID: 1,
		Amount:    decimal.NewFromInt(5),
		Type:      domain.TransactionTypeDebit,
	})
	assert.ErrorIs(t, err, domain.ErrStorageFailure)
	assert.Contains(t, err.Error(), "disk full")
	store.AssertNumberOfCalls(t, "CommitTransaction", 1)
}

func TestEngine_LimitLookupFailureAborts(t *testing.T) {
	store := new(MockStore)
	store.On("GetAccount", mock.Anything, int64(1)).Return(activeAccount(100, 1), nil)
	store.On("SumDebits", mock.Anything, int64(1), mock.Anything, mock.Anything).Return(decimal.Zero, errors.New("timeout"))

	engine := newMockEngine(store)
	_, err := engine.ProcessTransaction(context.Background(), domain.TransactionRequest{
		AccountID: 1,
		Amount:    decimal.NewFromInt(5),
		Type:      domain.TransactionTypeDebit,
	})
	assert.ErrorIs(t, err, domain.ErrStorageFailure)
	store.AssertNotCalled(t, "CommitTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func TestEngine_DuplicateReferenceRaceResolvesToReplay(t *testing.T) {
	ref := uuid.New()
	committed := &domain.Transaction{ID: 3, AccountID: 1, Reference: ref, Type: domain.TransactionTypeCredit, Amount: decimal.NewFromInt(5)}

	store := new(MockStore)
	store.On("FindTransactionByReference", mock.Anything, int64(1), ref).Return(nil, domain.ErrTransactionNotFound).Once()
	store.On("FindTransactionByReference", mock.Anything, int64(1), ref).Return(committed, nil).Once()
	store.On("GetAccount", mock.Anything, int64(1)).Return(activeAccount(100, 1), nil)
	store.On("CommitTransaction", mock.Anything, int64(1), mock.Anything).Return(domain.ErrVersionConflict).Once()

	engine := newMockEngine(store)
	res, err := engine.ProcessTransaction(context.Background(), domain.TransactionRequest{
		AccountID: 1,
		Amount:    decimal.NewFromInt(5),
		Type:      domain.TransactionTypeCredit,
		Reference: ref,
	})
	require.NoError(t, err)
	assert.True(t, res.Replayed)
	assert.Equal(t, int64(3), res.Transaction.ID)
	store.AssertExpectations(t)
}

func TestEngine_CanceledContext(t *testing.T) {
	store := new(MockStore)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	engine := newMockEngine(store)
	_, err := engine.ProcessTransaction(ctx, domain.TransactionRequest{
		AccountID: 1,
		Amount:    decimal.NewFromInt(5),
		Type:      domain.TransactionTypeCredit,
	})
	assert.ErrorIs(t, err, context.Canceled)
	store.AssertNotCalled(t, "GetAccount", mock.Anything, mock.Anything)
}
