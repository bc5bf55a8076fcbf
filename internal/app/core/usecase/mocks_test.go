package usecase_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/JoeShih716/go-account-ledger/internal/app/core/domain"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) GetAccount(ctx context.Context, accountID int64) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockStore) CreateAccount(ctx context.Context, account *domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockStore) UpdateAccountHolder(ctx context.Context, accountID int64, holderName string) error {
	args := m.Called(ctx, accountID, holderName)
	return args.Error(0)
}

func (m *MockStore) SuspendAccount(ctx context.Context, accountID int64) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

func (m *MockStore) CommitTransaction(ctx context.Context, expectedVersion int64, tran *domain.Transaction) error {
	args := m.Called(ctx, expectedVersion, tran)
	return args.Error(0)
}

func (m *MockStore) FindTransactionByReference(ctx context.Context, accountID int64, ref uuid.UUID) (*domain.Transaction, error) {
	args := m.Called(ctx, accountID, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockStore) SumDebits(ctx context.Context, accountID int64, from, to time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, accountID, from, to)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockStore) ListTransactions(ctx context.Context, query domain.TransactionQuery) ([]domain.Transaction, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Transaction), args.Get(1).(int64), args.Error(2)
}

func (m *MockStore) LoadLedger(ctx context.Context, accountID int64) ([]domain.Transaction, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}
