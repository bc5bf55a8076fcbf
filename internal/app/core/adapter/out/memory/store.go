package memory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/JoeShih716/go-account-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-account-ledger/internal/app/core/usecase"
	"github.com/JoeShih716/go-account-ledger/internal/logger"
	"github.com/JoeShih716/go-account-ledger/pkg/wal"
)

// WAL 紀錄種類
const (
	opCreateAccount = "account.create"
	opUpdateHolder  = "account.holder"
	opSuspend       = "account.suspend"
	opCommit        = "tran.commit"
)

// walRecord 寫入 WAL 的單筆紀錄
type walRecord struct {
	Op              string              `json:"op"`
	Account         *domain.Account     `json:"account,omitempty"`
	Tran            *domain.Transaction `json:"tran,omitempty"`
	AccountID       int64               `json:"accountId,omitempty"`
	HolderName      string              `json:"holderName,omitempty"`
	ExpectedVersion int64               `json:"expectedVersion,omitempty"`
	At              time.Time           `json:"at"`
}

// accountState 單一帳戶的狀態與帳本
type accountState struct {
	mu      sync.RWMutex
	account domain.Account
	// 依 ID 遞增
	trans []domain.Transaction
	refs  map[uuid.UUID]int
}

// Store 是一個記憶體帳本，以 WAL 保證「先記錄再套用」
//
// 結構:
//
//	accounts: 帳戶資料 Map，mu 只保護 Map 本身
//	accountState.mu: 保護單一帳戶，不同帳戶互不阻塞
//	wal: Write-Ahead Log 實例 (nil 代表純記憶體)
type Store struct {
	mu            sync.RWMutex
	accounts      map[int64]*accountState
	nextAccountID int64
	nextTranID    atomic.Int64
	wal           *wal.WAL
}

// NewStore 建立記憶體帳本並從 WAL 恢復狀態
//
// 參數:
//
//	w: Write-Ahead Log 實例，可為 nil
//
// 回傳:
//
//	*Store: Store 實例
//	error: 恢復錯誤 (WAL 內容不一致時為 domain.ErrStorageCorruption)
func NewStore(w *wal.WAL) (*Store, error) {
	s := &Store{
		accounts: make(map[int64]*accountState),
		wal:      w,
	}
	if w == nil {
		return s, nil
	}
	if err := s.recoverFromWAL(); err != nil {
		return nil, err
	}
	return s, nil
}

// recoverFromWAL 依序重放 WAL，只在 NewStore 呼叫 (單執行緒)
func (s *Store) recoverFromWAL() error {
	count := 0
	err := s.wal.ReadAll(func(raw json.RawMessage) error {
		var rec walRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			return fmt.Errorf("%w: decode wal record %d: %w", domain.ErrStorageCorruption, count+1, err)
		}
		if err := s.replay(&rec); err != nil {
			return fmt.Errorf("%w: wal record %d (%s): %w", domain.ErrStorageCorruption, count+1, rec.Op, err)
		}
		count++
		return nil
	})
	if err != nil {
		return err
	}
	logger.Info("memory store recovered from wal", logger.Fields{
		"records":  count,
		"accounts": len(s.accounts),
	})
	return nil
}

// replay 驗證並套用一筆紀錄 (不寫 WAL)
func (s *Store) replay(rec *walRecord) error {
	switch rec.Op {
	case opCreateAccount:
		if rec.Account == nil || rec.Account.ID <= s.nextAccountID {
			return errors.New("invalid account id")
		}
		s.applyCreate(rec.Account)
	case opUpdateHolder, opSuspend:
		st, ok := s.accounts[rec.AccountID]
		if !ok {
			return domain.ErrAccountNotFound
		}
		s.applyAccountUpdate(st, rec)
	case opCommit:
		if rec.Tran == nil {
			return errors.New("missing transaction")
		}
		st, ok := s.accounts[rec.Tran.AccountID]
		if !ok {
			return domain.ErrAccountNotFound
		}
		if err := checkCommit(st, rec.ExpectedVersion, rec.Tran); err != nil {
			return err
		}
		if n := len(st.trans); n > 0 && rec.Tran.ID <= st.trans[n-1].ID {
			return errors.New("transaction id not increasing")
		}
		// 不同帳戶的紀錄可能交錯寫入，ID 只保證單一帳戶內遞增
		if rec.Tran.ID > s.nextTranID.Load() {
			s.nextTranID.Store(rec.Tran.ID)
		}
		applyCommit(st, rec.Tran)
	default:
		return fmt.Errorf("unknown op %q", rec.Op)
	}
	return nil
}

func (s *Store) writeAhead(rec *walRecord) error {
	if s.wal == nil {
		return nil
	}
	if err := s.wal.Append(rec); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrWALWriteFailed, err)
	}
	return nil
}

func (s *Store) state(accountID int64) (*accountState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.accounts[accountID]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return st, nil
}

// CreateAccount 建立帳戶並分配 ID
func (s *Store) CreateAccount(ctx context.Context, account *domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	created := *account
	created.ID = s.nextAccountID + 1
	created.Version = 1
	if err := s.writeAhead(&walRecord{Op: opCreateAccount, Account: &created, At: created.CreatedAt}); err != nil {
		return err
	}
	s.applyCreate(&created)
	*account = created
	return nil
}

// applyCreate 呼叫端需持有 s.mu
func (s *Store) applyCreate(account *domain.Account) {
	s.accounts[account.ID] = &accountState{
		account: *account,
		refs:    make(map[uuid.UUID]int),
	}
	s.nextAccountID = account.ID
}

// GetAccount 取得帳戶快照
func (s *Store) GetAccount(ctx context.Context, accountID int64) (*domain.Account, error) {
	st, err := s.state(accountID)
	if err != nil {
		return nil, err
	}
	st.mu.RLock()
	defer st.mu.RUnlock()
	account := st.account
	return &account, nil
}

// UpdateAccountHolder 修改持有人名稱
func (s *Store) UpdateAccountHolder(ctx context.Context, accountID int64, holderName string) error {
	return s.updateAccount(&walRecord{Op: opUpdateHolder, AccountID: accountID, HolderName: holderName, At: time.Now()})
}

// SuspendAccount 停用帳戶，已停用則不寫任何紀錄
func (s *Store) SuspendAccount(ctx context.Context, accountID int64) error {
	return s.updateAccount(&walRecord{Op: opSuspend, AccountID: accountID, At: time.Now()})
}

func (s *Store) updateAccount(rec *walRecord) error {
	st, err := s.state(rec.AccountID)
	if err != nil {
		return err
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	if rec.Op == opSuspend && st.account.IsSuspended() {
		return nil
	}
	if err := s.writeAhead(rec); err != nil {
		return err
	}
	s.applyAccountUpdate(st, rec)
	return nil
}

func (s *Store) applyAccountUpdate(st *accountState, rec *walRecord) {
	switch rec.Op {
	case opUpdateHolder:
		st.account.HolderName = rec.HolderName
	case opSuspend:
		st.account.Status = domain.AccountStatusSuspended
	}
	st.account.Version++
	st.account.UpdatedAt = rec.At
}

// CommitTransaction 版本檢查 -> 寫入 WAL -> 更新餘額並追加交易
//
// 參數:
//
//	ctx: 上下文
//	expectedVersion: 呼叫端讀到的帳戶版本
//	tran: 交易物件，成功後回填 ID
//
// 回傳:
//
//	error: domain.ErrVersionConflict 或 WAL 寫入錯誤，失敗時沒有任何變更
func (s *Store) CommitTransaction(ctx context.Context, expectedVersion int64, tran *domain.Transaction) error {
	st, err := s.state(tran.AccountID)
	if err != nil {
		return err
	}
	st.mu.Lock()
	defer st.mu.Unlock()

	if err := checkCommit(st, expectedVersion, tran); err != nil {
		return err
	}

	committed := *tran
	committed.ID = s.nextTranID.Add(1)
	// 1. 寫入 WAL (Critical Path)
	if err := s.writeAhead(&walRecord{Op: opCommit, Tran: &committed, ExpectedVersion: expectedVersion, At: committed.Timestamp}); err != nil {
		return err
	}
	// 2. 套用到記憶體
	applyCommit(st, &committed)
	tran.ID = committed.ID
	return nil
}

// checkCommit 呼叫端需持有 st.mu
func checkCommit(st *accountState, expectedVersion int64, tran *domain.Transaction) error {
	if st.account.Version != expectedVersion {
		return domain.ErrVersionConflict
	}
	if _, dup := st.refs[tran.Reference]; dup {
		return fmt.Errorf("%w: duplicate reference %s", domain.ErrVersionConflict, tran.Reference)
	}
	expected := st.account.CurrentBalance.Add(tran.Type.Signed(tran.Amount))
	if !tran.Type.Valid() || !expected.Equal(tran.BalanceAfter) || expected.IsNegative() {
		return fmt.Errorf("memory store: transaction does not follow balance %s", st.account.CurrentBalance)
	}
	return nil
}

// applyCommit 呼叫端需持有 st.mu
func applyCommit(st *accountState, tran *domain.Transaction) {
	st.account.CurrentBalance = tran.BalanceAfter
	st.account.Version++
	st.account.UpdatedAt = tran.Timestamp
	st.refs[tran.Reference] = len(st.trans)
	st.trans = append(st.trans, *tran)
}

// FindTransactionByReference 依外部追蹤號查詢
func (s *Store) FindTransactionByReference(ctx context.Context, accountID int64, ref uuid.UUID) (*domain.Transaction, error) {
	st, err := s.state(accountID)
	if err != nil {
		return nil, domain.ErrTransactionNotFound
	}
	st.mu.RLock()
	defer st.mu.RUnlock()
	idx, ok := st.refs[ref]
	if !ok {
		return nil, domain.ErrTransactionNotFound
	}
	tran := st.trans[idx]
	return &tran, nil
}

// SumDebits 加總 [from, to) 區間內的出帳
func (s *Store) SumDebits(ctx context.Context, accountID int64, from, to time.Time) (decimal.Decimal, error) {
	st, err := s.state(accountID)
	if err != nil {
		return decimal.Zero, err
	}
	st.mu.RLock()
	defer st.mu.RUnlock()
	total := decimal.Zero
	for i := range st.trans {
		tran := &st.trans[i]
		if tran.Type != domain.TransactionTypeDebit {
			continue
		}
		if tran.Timestamp.Before(from) || !tran.Timestamp.Before(to) {
			continue
		}
		total = total.Add(tran.Amount)
	}
	return total, nil
}

// ListTransactions 依條件查詢，依 ID 遞減
func (s *Store) ListTransactions(ctx context.Context, query domain.TransactionQuery) ([]domain.Transaction, int64, error) {
	st, err := s.state(query.AccountID)
	if err != nil {
		return nil, 0, err
	}
	st.mu.RLock()
	matched := make([]domain.Transaction, 0)
	for i := len(st.trans) - 1; i >= 0; i-- {
		if matches(&st.trans[i], query) {
			matched = append(matched, st.trans[i])
		}
	}
	st.mu.RUnlock()

	total := int64(len(matched))
	if query.Offset >= len(matched) {
		return []domain.Transaction{}, total, nil
	}
	end := len(matched)
	if query.Limit > 0 && query.Offset+query.Limit < end {
		end = query.Offset + query.Limit
	}
	return matched[query.Offset:end], total, nil
}

func matches(tran *domain.Transaction, query domain.TransactionQuery) bool {
	if query.Type != nil && tran.Type != *query.Type {
		return false
	}
	if query.Start != nil && tran.Timestamp.Before(*query.Start) {
		return false
	}
	if query.End != nil && tran.Timestamp.After(*query.End) {
		return false
	}
	return true
}

// LoadLedger 依 ID 遞增回傳帳戶全部交易
func (s *Store) LoadLedger(ctx context.Context, accountID int64) ([]domain.Transaction, error) {
	st, err := s.state(accountID)
	if err != nil {
		return nil, err
	}
	st.mu.RLock()
	defer st.mu.RUnlock()
	out := make([]domain.Transaction, len(st.trans))
	copy(out, st.trans)
	return out, nil
}

var _ usecase.Store = (*Store)(nil)
