package domain

import "errors"

var (
	// ErrAccountNotFound 找不到帳戶
	ErrAccountNotFound = errors.New("account not found")

	// ErrAccountSuspended 帳戶已停用，不接受交易
	ErrAccountSuspended = errors.New("account suspended")

	// ErrInsufficientFunds 餘額不足
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInvalidTransactionType 交易類型錯誤
	ErrInvalidTransactionType = errors.New("invalid transaction type: allowed types are 'in' or 'out'")

	// ErrInvalidAmount 金額必須為正數且不超過兩位小數
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidAccountHolder 帳戶持有人名稱不可為空
	ErrInvalidAccountHolder = errors.New("account holder name is required")

	// ErrInvalidPage 分頁參數錯誤
	ErrInvalidPage = errors.New("invalid page parameters")

	// ErrInvalidTimeRange 起始時間晚於結束時間
	ErrInvalidTimeRange = errors.New("start time is after end time")

	// ErrReferenceMismatch 同一個 Reference 重送時金額或類型與已提交的交易不同
	ErrReferenceMismatch = errors.New("reference already used with a different amount or type")

	// ErrConcurrencyConflict 同帳戶並發衝突，重試後仍失敗
	ErrConcurrencyConflict = errors.New("concurrency conflict")

	// ErrVersionConflict 帳戶版本不符 (Store 回報給引擎，引擎負責重試)
	ErrVersionConflict = errors.New("account version conflict")

	// ErrTransactionNotFound 找不到交易
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrStorageFailure 儲存層暫時性錯誤，呼叫端可重試
	ErrStorageFailure = errors.New("storage failure")

	// ErrStorageCorruption 帳本與餘額不一致，不可忽略
	ErrStorageCorruption = errors.New("storage corruption")

	// ErrWALWriteFailed 寫入 WAL 失敗
	ErrWALWriteFailed = errors.New("wal write failed")
)
