package grpc

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/JoeShih716/go-account-ledger/internal/logger"
)

// UnaryServerInterceptor 記錄每個請求並攔截 panic
func UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
		start := time.Now()
		defer func() {
			if r := recover(); r != nil {
				logger.Error("grpc handler panic", fmt.Errorf("%v", r), logger.Fields{"method": info.FullMethod})
				err = status.Error(codes.Internal, "internal error")
			}

			fields := logger.Fields{
				"method":   info.FullMethod,
				"code":     status.Code(err).String(),
				"duration": time.Since(start).String(),
			}
			if id := accountIDOf(req); id != "" {
				fields["accountId"] = id
			}
			if err != nil {
				fields["error"] = status.Convert(err).Message()
			}
			logger.Debug("grpc request", fields)
		}()
		return handler(ctx, req)
	}
}
