package grpc

import (
	"context"
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/JoeShih716/go-account-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-account-ledger/internal/app/core/usecase"
	"github.com/JoeShih716/go-account-ledger/internal/logger"
	pb "github.com/JoeShih716/go-account-ledger/proto/ledger/v1"
)

// GrpcServer 將 gRPC 請求轉交給 usecase 層 (Driving Adapter)
type GrpcServer struct {
	pb.UnimplementedLedgerServiceServer
	accounts *usecase.AccountService
	engine   *usecase.Engine
	history  *usecase.HistoryService
	auditor  *usecase.Auditor
	validate *validator.Validate
}

func NewGrpcServer(accounts *usecase.AccountService, engine *usecase.Engine, history *usecase.HistoryService, auditor *usecase.Auditor) *GrpcServer {
	validate := validator.New()
	for _, r := range requestRules {
		validate.RegisterStructValidationMapRules(r.rules, r.msg)
	}
	return &GrpcServer{
		accounts: accounts,
		engine:   engine,
		history:  history,
		auditor:  auditor,
		validate: validate,
	}
}

func (s *GrpcServer) CreateAccount(ctx context.Context, req *pb.CreateAccountRequest) (*pb.AccountResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, invalidArgument(err)
	}
	initial, err := decimal.NewFromString(req.InitialBalance)
	if err != nil {
		return nil, toStatus(domain.ErrInvalidAmount)
	}
	account, err := s.accounts.CreateAccount(ctx, req.HolderName, initial)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.AccountResponse{Account: toAccount(account)}, nil
}

func (s *GrpcServer) GetAccount(ctx context.Context, req *pb.GetAccountRequest) (*pb.AccountResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, invalidArgument(err)
	}
	return s.accountResponse(ctx, req.AccountId)
}

func (s *GrpcServer) UpdateAccountHolder(ctx context.Context, req *pb.UpdateAccountHolderRequest) (*pb.AccountResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, invalidArgument(err)
	}
	if err := s.accounts.UpdateAccountHolder(ctx, req.AccountId, req.HolderName); err != nil {
		return nil, toStatus(err)
	}
	return s.accountResponse(ctx, req.AccountId)
}

func (s *GrpcServer) SuspendAccount(ctx context.Context, req *pb.SuspendAccountRequest) (*pb.AccountResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, invalidArgument(err)
	}
	if err := s.accounts.SuspendAccount(ctx, req.AccountId); err != nil {
		return nil, toStatus(err)
	}
	return s.accountResponse(ctx, req.AccountId)
}

func (s *GrpcServer) accountResponse(ctx context.Context, accountID int64) (*pb.AccountResponse, error) {
	account, err := s.accounts.GetAccount(ctx, accountID)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.AccountResponse{Account: toAccount(account)}, nil
}

func (s *GrpcServer) ProcessTransaction(ctx context.Context, req *pb.ProcessTransactionRequest) (*pb.ProcessTransactionResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, invalidArgument(err)
	}

	// 1. 轉換交易類型 (大小寫需完全相符)
	tranType, err := domain.ParseTransactionType(req.Type)
	if err != nil {
		return nil, toStatus(err)
	}
	// 2. 金額解析
	amount, err := domain.ParseAmount(req.Amount)
	if err != nil {
		return nil, toStatus(err)
	}
	// 3. UUID 解析 (選填)
	var ref uuid.UUID
	if req.Reference != "" {
		if ref, err = uuid.Parse(req.Reference); err != nil {
			return nil, status.Error(codes.InvalidArgument, "invalid reference: "+err.Error())
		}
	}

	result, err := s.engine.ProcessTransaction(ctx, domain.TransactionRequest{
		AccountID: req.AccountId,
		Amount:    amount,
		Type:      tranType,
		Reference: ref,
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.ProcessTransactionResponse{
		Transaction: toTransaction(&result.Transaction),
		Replayed:    result.Replayed,
	}, nil
}

func (s *GrpcServer) ListTransactions(ctx context.Context, req *pb.ListTransactionsRequest) (*pb.ListTransactionsResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, invalidArgument(err)
	}
	filter := usecase.HistoryFilter{Start: fromTimestamp(req.Start), End: fromTimestamp(req.End)}
	if req.Type != "" {
		tranType, err := domain.ParseTransactionType(req.Type)
		if err != nil {
			return nil, toStatus(err)
		}
		filter.Type = &tranType
	}

	page, err := s.history.ListTransactions(ctx, req.AccountId, filter, int(req.Page), int(req.PageSize))
	if err != nil {
		return nil, toStatus(err)
	}
	return toListResponse(page), nil
}

func (s *GrpcServer) VerifyLedger(ctx context.Context, req *pb.VerifyLedgerRequest) (*pb.VerifyLedgerResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, invalidArgument(err)
	}
	summary, err := s.auditor.VerifyAccount(ctx, req.AccountId)
	if errors.Is(err, domain.ErrStorageCorruption) {
		return &pb.VerifyLedgerResponse{
			AccountId:  req.AccountId,
			Consistent: false,
			Detail:     err.Error(),
		}, nil
	}
	if err != nil {
		return nil, toStatus(err)
	}
	return toVerifyResponse(summary), nil
}

func invalidArgument(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		msg := "invalid " + fe.Field() + ": " + fe.Tag()
		if fe.Param() != "" {
			msg += "=" + fe.Param()
		}
		return status.Error(codes.InvalidArgument, msg)
	}
	return status.Error(codes.InvalidArgument, err.Error())
}

// toStatus 將 domain 錯誤轉為 gRPC status
func toStatus(err error) error {
	var code codes.Code
	switch {
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidTransactionType),
		errors.Is(err, domain.ErrInvalidAccountHolder),
		errors.Is(err, domain.ErrInvalidPage),
		errors.Is(err, domain.ErrInvalidTimeRange),
		errors.Is(err, domain.ErrReferenceMismatch):
		code = codes.InvalidArgument
	case errors.Is(err, domain.ErrAccountNotFound),
		errors.Is(err, domain.ErrTransactionNotFound):
		code = codes.NotFound
	case errors.Is(err, domain.ErrInsufficientFunds),
		errors.Is(err, domain.ErrAccountSuspended):
		code = codes.FailedPrecondition
	case errors.Is(err, domain.ErrConcurrencyConflict),
		errors.Is(err, domain.ErrVersionConflict):
		code = codes.Aborted
	case errors.Is(err, domain.ErrStorageCorruption):
		code = codes.DataLoss
	case errors.Is(err, domain.ErrStorageFailure):
		code = codes.Unavailable
	case errors.Is(err, context.DeadlineExceeded):
		code = codes.DeadlineExceeded
	case errors.Is(err, context.Canceled):
		code = codes.Canceled
	default:
		code = codes.Internal
	}
	if code == codes.Internal || code == codes.DataLoss || code == codes.Unavailable {
		logger.Error("request failed", err, logger.Fields{"code": code.String()})
	}
	return status.Error(code, err.Error())
}

// accountIDOf 從請求取出帳戶 ID 供日誌使用
func accountIDOf(req any) string {
	if r, ok := req.(interface{ GetAccountId() int64 }); ok {
		return strconv.FormatInt(r.GetAccountId(), 10)
	}
	return ""
}

var _ pb.LedgerServiceServer = (*GrpcServer)(nil)
