package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/JoeShih716/go-account-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-account-ledger/internal/app/core/usecase"
)

func TestHistoryService_Pagination(t *testing.T) {
	f := newFixture(t, "100000")
	account := f.open(t, "0")
	for i := 0; i < 25; i++ {
		_, err := f.process(account.ID, domain.TransactionTypeCredit, "1")
		require.NoError(t, err)
	}
	history := usecase.NewHistoryService(f.store, f.store)
	ctx := context.Background()

	page, err := history.ListTransactions(ctx, account.ID, usecase.HistoryFilter{}, 0, 0)
	require.NoError(t, err)
	assert.Len(t, page.Items, usecase.DefaultPageSize)
	assert.Equal(t, int64(25), page.TotalCount)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 0, page.CurrentPage)
	assert.Equal(t, "25", page.Items[0].BalanceAfter.String())

	page, err = history.ListTransactions(ctx, account.ID, usecase.HistoryFilter{}, 2, 10)
	require.NoError(t, err)
	assert.Len(t, page.Items, 5)
	assert.Equal(t, "5", page.Items[0].BalanceAfter.String())

	page, err = history.ListTransactions(ctx, account.ID, usecase.HistoryFilter{}, 9, 10)
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, 3, page.TotalPages)
}

func TestHistoryService_TypeFilter(t *testing.T) {
	f := newFixture(t, "100000")
	account := f.open(t, "100")
	for _, typ := range []domain.TransactionType{
		domain.TransactionTypeCredit, domain.TransactionTypeDebit, domain.TransactionTypeDebit,
	} {
		_, err := f.process(account.ID, typ, "10")
		require.NoError(t, err)
	}
	history := usecase.NewHistoryService(f.store, f.store)

	debit := domain.TransactionTypeDebit
	page, err := history.ListTransactions(context.Background(), account.ID, usecase.HistoryFilter{Type: &debit}, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.TotalCount)
	for _, tran := range page.Items {
		assert.Equal(t, domain.TransactionTypeDebit, tran.Type)
	}
}

func TestHistoryService_EmptyAccount(t *testing.T) {
	f := newFixture(t, "1000")
	account := f.open(t, "0")
	history := usecase.NewHistoryService(f.store, f.store)

	page, err := history.ListTransactions(context.Background(), account.ID, usecase.HistoryFilter{}, 0, 10)
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, int64(0), page.TotalCount)
	assert.Equal(t, 0, page.TotalPages)
}

func TestHistoryService_InvalidArguments(t *testing.T) {
	store := new(MockStore)
	history := usecase.NewHistoryService(store, store)
	ctx := context.Background()

	_, err := history.ListTransactions(ctx, 1, usecase.HistoryFilter{}, -1, 10)
	assert.ErrorIs(t, err, domain.ErrInvalidPage)
	_, err = history.ListTransactions(ctx, 1, usecase.HistoryFilter{}, 0, usecase.MaxPageSize+1)
	assert.ErrorIs(t, err, domain.ErrInvalidPage)
	_, err = history.ListTransactions(ctx, 1, usecase.HistoryFilter{}, 0, -3)
	assert.ErrorIs(t, err, domain.ErrInvalidPage)

	bad := domain.TransactionType(7)
	_, err = history.ListTransactions(ctx, 1, usecase.HistoryFilter{Type: &bad}, 0, 10)
	assert.ErrorIs(t, err, domain.ErrInvalidTransactionType)

	start := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)
	end := start.Add(-time.Hour)
	_, err = history.ListTransactions(ctx, 1, usecase.HistoryFilter{Start: &start, End: &end}, 0, 10)
	assert.ErrorIs(t, err, domain.ErrInvalidTimeRange)

	store.AssertNotCalled(t, "GetAccount", mock.Anything, mock.Anything)
}

func TestHistoryService_StartOnlyDefaultsEndToNow(t *testing.T) {
	store := new(MockStore)
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	store.On("GetAccount", mock.Anything, int64(1)).Return(activeAccount(0, 1), nil)
	store.On("ListTransactions", mock.Anything, mock.MatchedBy(func(q domain.TransactionQuery) bool {
		return q.Start != nil && q.Start.Equal(start) && q.End != nil && q.End.After(start) &&
			q.Offset == 20 && q.Limit == 10
	})).Return([]domain.Transaction{}, int64(0), nil)

	history := usecase.NewHistoryService(store, store)
	_, err := history.ListTransactions(context.Background(), 1, usecase.HistoryFilter{Start: &start}, 2, 10)
	require.NoError(t, err)
	store.AssertExpectations(t)
}

func TestHistoryService_Errors(t *testing.T) {
	store := new(MockStore)
	store.On("GetAccount", mock.Anything, int64(404)).Return(nil, domain.ErrAccountNotFound)
	store.On("GetAccount", mock.Anything, int64(1)).Return(activeAccount(0, 1), nil)
	store.On("ListTransactions", mock.Anything, mock.Anything).Return(nil, int64(0), errors.New("connection reset"))

	history := usecase.NewHistoryService(store, store)
	_, err := history.ListTransactions(context.Background(), 404, usecase.HistoryFilter{}, 0, 10)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)

	_, err = history.ListTransactions(context.Background(), 1, usecase.HistoryFilter{}, 0, 10)
	assert.ErrorIs(t, err, domain.ErrStorageFailure)
}
