package grpc

import (
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/JoeShih716/go-account-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-account-ledger/internal/app/core/usecase"
	pb "github.com/JoeShih716/go-account-ledger/proto/ledger/v1"
)

// 金額一律以字串傳遞 (例如 "10.50")，避免浮點誤差

// requestRules 各請求的欄位驗證規則 (pb 結構無法加 tag)
var requestRules = []struct {
	rules map[string]string
	msg   any
}{
	{map[string]string{"HolderName": "required", "InitialBalance": "required,numeric"}, &pb.CreateAccountRequest{}},
	{map[string]string{"AccountId": "gt=0"}, &pb.GetAccountRequest{}},
	{map[string]string{"AccountId": "gt=0", "HolderName": "required"}, &pb.UpdateAccountHolderRequest{}},
	{map[string]string{"AccountId": "gt=0"}, &pb.SuspendAccountRequest{}},
	{map[string]string{"AccountId": "gt=0", "Amount": "required,numeric", "Type": "required", "Reference": "omitempty,uuid"}, &pb.ProcessTransactionRequest{}},
	{map[string]string{"AccountId": "gt=0", "Start": "-", "End": "-", "Page": "gte=0", "PageSize": "gte=0,lte=100"}, &pb.ListTransactionsRequest{}},
	{map[string]string{"AccountId": "gt=0"}, &pb.VerifyLedgerRequest{}},
}

func toAccount(a *domain.Account) *pb.Account {
	return &pb.Account{
		Id:             a.ID,
		HolderName:     a.HolderName,
		Status:         string(a.Status),
		InitialBalance: a.InitialBalance.StringFixed(domain.AmountScale),
		CurrentBalance: a.CurrentBalance.StringFixed(domain.AmountScale),
		Version:        a.Version,
		CreatedAt:      timestamppb.New(a.CreatedAt),
		UpdatedAt:      timestamppb.New(a.UpdatedAt),
	}
}

func toTransaction(t *domain.Transaction) *pb.Transaction {
	return &pb.Transaction{
		Id:               t.ID,
		AccountId:        t.AccountID,
		Amount:           t.Amount.StringFixed(domain.AmountScale),
		BalanceAfter:     t.BalanceAfter.StringFixed(domain.AmountScale),
		Timestamp:        timestamppb.New(t.Timestamp),
		Reference:        t.Reference.String(),
		Type:             t.Type.String(),
		FlaggedForReview: t.FlaggedForReview,
	}
}

func toListResponse(page *domain.TransactionPage) *pb.ListTransactionsResponse {
	items := make([]*pb.Transaction, 0, len(page.Items))
	for i := range page.Items {
		items = append(items, toTransaction(&page.Items[i]))
	}
	return &pb.ListTransactionsResponse{
		Transactions:      items,
		CurrentPage:       int32(page.CurrentPage),
		TotalPages:        int32(page.TotalPages),
		TotalTransactions: page.TotalCount,
	}
}

func toVerifyResponse(summary *usecase.LedgerSummary) *pb.VerifyLedgerResponse {
	return &pb.VerifyLedgerResponse{
		AccountId:        summary.AccountID,
		Consistent:       true,
		Balance:          summary.Balance.StringFixed(domain.AmountScale),
		TransactionCount: int64(summary.TransactionCount),
	}
}

// fromTimestamp nil 代表未指定
func fromTimestamp(ts *timestamppb.Timestamp) *time.Time {
	if ts == nil {
		return nil
	}
	t := ts.AsTime()
	return &t
}
