package usecase

import (
	"context"
	"time"

	"github.com/JoeShih716/go-account-ledger/internal/app/core/domain"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// HistoryFilter 歷史查詢的選用條件
type HistoryFilter struct {
	Type  *domain.TransactionType
	Start *time.Time
	End   *time.Time
}

// HistoryService 交易歷史查詢 (唯讀，不取鎖)
type HistoryService struct {
	accounts AccountReader
	reader   TransactionReader
	now      func() time.Time
}

func NewHistoryService(accounts AccountReader, reader TransactionReader) *HistoryService {
	return &HistoryService{
		accounts: accounts,
		reader:   reader,
		now:      time.Now,
	}
}

// ListTransactions 分頁查詢交易，依 ID 遞減
//
// 參數:
//
//	page: 從 0 開始
//	size: 0 代表預設 10 筆，上限 100
//
// 只給 Start 時，End 預設為查詢當下
func (h *HistoryService) ListTransactions(ctx context.Context, accountID int64, filter HistoryFilter, page, size int) (*domain.TransactionPage, error) {
	if size == 0 {
		size = DefaultPageSize
	}
	if page < 0 || size < 0 || size > MaxPageSize {
		return nil, domain.ErrInvalidPage
	}
	if filter.Type != nil && !filter.Type.Valid() {
		return nil, domain.ErrInvalidTransactionType
	}
	if filter.Start != nil && filter.End == nil {
		end := h.now()
		filter.End = &end
	}
	if filter.Start != nil && filter.End != nil && filter.Start.After(*filter.End) {
		return nil, domain.ErrInvalidTimeRange
	}

	if _, err := h.accounts.GetAccount(ctx, accountID); err != nil {
		return nil, storageError("get account", err)
	}

	items, total, err := h.reader.ListTransactions(ctx, domain.TransactionQuery{
		AccountID: accountID,
		Type:      filter.Type,
		Start:     filter.Start,
		End:       filter.End,
		Offset:    page * size,
		Limit:     size,
	})
	if err != nil {
		return nil, storageError("list transactions", err)
	}

	totalPages := int((total + int64(size) - 1) / int64(size))
	return &domain.TransactionPage{
		Items:       items,
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalCount:  total,
	}, nil
}
