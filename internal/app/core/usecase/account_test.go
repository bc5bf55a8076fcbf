package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/JoeShih716/go-account-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-account-ledger/internal/app/core/usecase"
)

func TestAccountService_Lifecycle(t *testing.T) {
	f := newFixture(t, "1000")
	ctx := context.Background()

	account, err := f.accounts.CreateAccount(ctx, "  Alice  ", decimal.RequireFromString("12.50"))
	require.NoError(t, err)
	assert.Equal(t, "Alice", account.HolderName)
	assert.Equal(t, domain.AccountStatusActive, account.Status)
	assert.True(t, account.CurrentBalance.Equal(account.InitialBalance))

	require.NoError(t, f.accounts.UpdateAccountHolder(ctx, account.ID, " Bob "))
	require.NoError(t, f.accounts.SuspendAccount(ctx, account.ID))

	got, err := f.accounts.GetAccount(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bob", got.HolderName)
	assert.True(t, got.IsSuspended())
	// 持有人與狀態變更不影響餘額
	assert.Equal(t, "12.5", got.CurrentBalance.String())
}

func TestAccountService_Validation(t *testing.T) {
	store := new(MockStore)
	svc := usecase.NewAccountService(store)
	ctx := context.Background()

	_, err := svc.CreateAccount(ctx, "   ", decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrInvalidAccountHolder)
	_, err = svc.CreateAccount(ctx, "Alice", decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	_, err = svc.CreateAccount(ctx, "Alice", decimal.RequireFromString("0.001"))
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	assert.ErrorIs(t, svc.UpdateAccountHolder(ctx, 1, ""), domain.ErrInvalidAccountHolder)

	store.AssertNotCalled(t, "CreateAccount", mock.Anything, mock.Anything)
	store.AssertNotCalled(t, "UpdateAccountHolder", mock.Anything, mock.Anything, mock.Anything)
}

func TestAccountService_StoreErrors(t *testing.T) {
	store := new(MockStore)
	store.On("GetAccount", mock.Anything, int64(9)).Return(nil, domain.ErrAccountNotFound)
	store.On("SuspendAccount", mock.Anything, int64(9)).Return(domain.ErrAccountNotFound)
	store.On("CreateAccount", mock.Anything, mock.Anything).Return(errors.New("too many connections"))

	svc := usecase.NewAccountService(store)
	ctx := context.Background()

	_, err := svc.GetAccount(ctx, 9)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
	assert.ErrorIs(t, svc.SuspendAccount(ctx, 9), domain.ErrAccountNotFound)

	_, err = svc.CreateAccount(ctx, "Alice", decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrStorageFailure)
}
