package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/JoeShih716/go-account-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-account-ledger/internal/app/core/usecase"
)

func TestLimitEvaluator_DayWindow(t *testing.T) {
	taipei := time.FixedZone("UTC+8", 8*60*60)
	l := usecase.NewLimitEvaluator(nil, decimal.NewFromInt(1000), taipei)

	// UTC 17:00 已是台北隔天 01:00
	start, end := l.DayWindow(time.Date(2024, 3, 1, 17, 0, 0, 0, time.UTC))
	assert.True(t, start.Equal(time.Date(2024, 3, 1, 16, 0, 0, 0, time.UTC)))
	assert.True(t, end.Equal(time.Date(2024, 3, 2, 16, 0, 0, 0, time.UTC)))

	utc := usecase.NewLimitEvaluator(nil, decimal.NewFromInt(1000), time.UTC)
	start, end = utc.DayWindow(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	assert.True(t, start.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 24*time.Hour, end.Sub(start))
}

func TestLimitEvaluator_Exceeds(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	dayStart := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	store := new(MockStore)
	store.On("SumDebits", ctx, int64(1), dayStart, dayStart.AddDate(0, 0, 1)).Return(decimal.NewFromInt(900), nil)
	l := usecase.NewLimitEvaluator(store, decimal.NewFromInt(1000), time.UTC)

	tests := []struct {
		amount int64
		want   bool
	}{
		{50, false},
		{100, false},
		{101, true},
		{150, true},
	}
	for _, tt := range tests {
		got, err := l.Exceeds(ctx, 1, decimal.NewFromInt(tt.amount), at)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "amount %d", tt.amount)
	}
	assert.Equal(t, "1000", l.Limit().String())
}

func TestLimitEvaluator_SumError(t *testing.T) {
	store := new(MockStore)
	store.On("SumDebits", mock.Anything, int64(1), mock.Anything, mock.Anything).Return(decimal.Zero, errors.New("db down"))
	l := usecase.NewLimitEvaluator(store, decimal.NewFromInt(1000), nil)

	_, err := l.Exceeds(context.Background(), 1, decimal.NewFromInt(1), time.Now())
	assert.Error(t, err)
}

func TestLimitEvaluator_PreviousDayNotCounted(t *testing.T) {
	f := newFixture(t, "1000")
	account := f.open(t, "5000")

	// 前一天的提款由另一個時鐘提交
	yesterday := usecase.NewEngine(f.store,
		usecase.NewLimitEvaluator(f.store, decimal.NewFromInt(1000), time.UTC),
		usecase.WithClock(func() time.Time { return fixedNow.AddDate(0, 0, -1) }),
	)
	_, err := yesterday.ProcessTransaction(context.Background(), debitRequest(account.ID, "999"))
	require.NoError(t, err)

	res, err := f.engine.ProcessTransaction(context.Background(), debitRequest(account.ID, "999"))
	require.NoError(t, err)
	assert.False(t, res.Transaction.FlaggedForReview)
}

func debitRequest(accountID int64, amount string) domain.TransactionRequest {
	return domain.TransactionRequest{
		AccountID: accountID,
		Amount:    decimal.RequireFromString(amount),
		Type:      domain.TransactionTypeDebit,
	}
}
