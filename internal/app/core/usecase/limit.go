package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// LimitEvaluator 每日提款上限檢查
//
// 每日視窗為設定時區的日曆日 [00:00, 隔日 00:00)
type LimitEvaluator struct {
	debits   DebitSummer
	limit    decimal.Decimal
	location *time.Location
}

// NewLimitEvaluator 建立 LimitEvaluator
//
// 參數:
//
//	debits: 提款加總來源 (Store)
//	limit: 每日提款上限，啟動時固定
//	location: 判斷日曆日使用的時區，nil 則為 time.Local
func NewLimitEvaluator(debits DebitSummer, limit decimal.Decimal, location *time.Location) *LimitEvaluator {
	if location == nil {
		location = time.Local
	}
	return &LimitEvaluator{
		debits:   debits,
		limit:    limit,
		location: location,
	}
}

// Limit 回傳每日提款上限
func (l *LimitEvaluator) Limit() decimal.Decimal {
	return l.limit
}

// DayWindow 回傳 day 所在日曆日的 [start, end)
func (l *LimitEvaluator) DayWindow(day time.Time) (time.Time, time.Time) {
	local := day.In(l.location)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, l.location)
	return start, start.AddDate(0, 0, 1)
}

// DailyDebitTotal 加總帳戶在 day 當天已提交的出帳金額
func (l *LimitEvaluator) DailyDebitTotal(ctx context.Context, accountID int64, day time.Time) (decimal.Decimal, error) {
	start, end := l.DayWindow(day)
	total, err := l.debits.SumDebits(ctx, accountID, start, end)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum daily debits: %w", err)
	}
	return total, nil
}

// Exceeds 若加上本次 amount 後超過上限回傳 true
// 本次交易尚未提交，因此由這裡加上，不會重複計算
func (l *LimitEvaluator) Exceeds(ctx context.Context, accountID int64, amount decimal.Decimal, at time.Time) (bool, error) {
	total, err := l.DailyDebitTotal(ctx, accountID, at)
	if err != nil {
		return false, err
	}
	return total.Add(amount).GreaterThan(l.limit), nil
}
