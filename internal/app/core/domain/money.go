package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// AmountScale 金額精度：小數點後 2 位，超過視為錯誤而不是四捨五入
const AmountScale = 2

// ParseAmount 解析字串金額並檢查精度
func ParseAmount(raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, ValidateAmount(d)
}

// ValidateAmount 交易金額必須 > 0 且精度不超過 AmountScale
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if !HasValidScale(amount) {
		return ErrInvalidAmount
	}
	return nil
}

// HasValidScale 小數位數是否在 AmountScale 以內 ("1.500" 視為合法)
func HasValidScale(d decimal.Decimal) bool {
	return d.Equal(d.Truncate(AmountScale))
}
