package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/JoeShih716/go-account-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-account-ledger/internal/logger"
)

// AccountService 帳戶 CRUD，直接轉交給 Store
type AccountService struct {
	repo AccountRepository
	now  func() time.Time
}

func NewAccountService(repo AccountRepository) *AccountService {
	return &AccountService{
		repo: repo,
		now:  time.Now,
	}
}

// CreateAccount 建立帳戶
func (s *AccountService) CreateAccount(ctx context.Context, holderName string, initialBalance decimal.Decimal) (*domain.Account, error) {
	account, err := domain.NewAccount(holderName, initialBalance, s.now().Truncate(time.Microsecond))
	if err != nil {
		return nil, err
	}
	if err := s.repo.CreateAccount(ctx, account); err != nil {
		return nil, storageError("create account", err)
	}
	logger.Info("account created", logger.Fields{
		"accountId":      account.ID,
		"initialBalance": account.InitialBalance.String(),
	})
	return account, nil
}

// GetAccount 取得帳戶
func (s *AccountService) GetAccount(ctx context.Context, accountID int64) (*domain.Account, error) {
	account, err := s.repo.GetAccount(ctx, accountID)
	if err != nil {
		return nil, storageError("get account", err)
	}
	return account, nil
}

// UpdateAccountHolder 修改持有人名稱
func (s *AccountService) UpdateAccountHolder(ctx context.Context, accountID int64, holderName string) error {
	holderName = strings.TrimSpace(holderName)
	if holderName == "" {
		return domain.ErrInvalidAccountHolder
	}
	if err := s.repo.UpdateAccountHolder(ctx, accountID, holderName); err != nil {
		return storageError("update account holder", err)
	}
	return nil
}

// SuspendAccount 停用帳戶 (單向)
func (s *AccountService) SuspendAccount(ctx context.Context, accountID int64) error {
	if err := s.repo.SuspendAccount(ctx, accountID); err != nil {
		return storageError("suspend account", err)
	}
	logger.Info("account suspended", logger.Fields{"accountId": accountID})
	return nil
}
