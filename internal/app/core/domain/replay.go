package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Replay 由初始餘額依序套用交易，驗證每筆 BalanceAfter
//
// 參數:
//
//	initial: 帳戶初始餘額
//	trans: 依 ID 遞增排序的交易
//
// 回傳:
//
//	decimal.Decimal: 重放後的最終餘額
//	error: 任何不一致都回傳 ErrStorageCorruption
func Replay(initial decimal.Decimal, trans []Transaction) (decimal.Decimal, error) {
	balance := initial
	var lastID int64
	for i := range trans {
		tran := &trans[i]
		if tran.ID <= lastID {
			return decimal.Zero, fmt.Errorf("%w: transaction %d out of order", ErrStorageCorruption, tran.ID)
		}
		lastID = tran.ID
		if !tran.Type.Valid() || !tran.Amount.IsPositive() {
			return decimal.Zero, fmt.Errorf("%w: transaction %d malformed", ErrStorageCorruption, tran.ID)
		}
		balance = balance.Add(tran.Type.Signed(tran.Amount))
		if balance.IsNegative() {
			return decimal.Zero, fmt.Errorf("%w: negative balance after transaction %d", ErrStorageCorruption, tran.ID)
		}
		if !balance.Equal(tran.BalanceAfter) {
			return decimal.Zero, fmt.Errorf("%w: transaction %d records balance %s, replay gives %s",
				ErrStorageCorruption, tran.ID, tran.BalanceAfter, balance)
		}
	}
	return balance, nil
}
