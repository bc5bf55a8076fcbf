package main

import (
	"context"
	"errors"
	"flag"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	grpc_adapter "github.com/JoeShih716/go-account-ledger/internal/app/core/adapter/in/grpc"
	memory_adapter "github.com/JoeShih716/go-account-ledger/internal/app/core/adapter/out/memory"
	mysql_adapter "github.com/JoeShih716/go-account-ledger/internal/app/core/adapter/out/mysql"
	postgres_adapter "github.com/JoeShih716/go-account-ledger/internal/app/core/adapter/out/postgres"
	"github.com/JoeShih716/go-account-ledger/internal/app/core/usecase"
	"github.com/JoeShih716/go-account-ledger/internal/config"
	"github.com/JoeShih716/go-account-ledger/internal/logger"
	"github.com/JoeShih716/go-account-ledger/pkg/keylock"
	"github.com/JoeShih716/go-account-ledger/pkg/mysql"
	"github.com/JoeShih716/go-account-ledger/pkg/postgres"
	"github.com/JoeShih716/go-account-ledger/pkg/redislock"
	"github.com/JoeShih716/go-account-ledger/pkg/wal"
	pb "github.com/JoeShih716/go-account-ledger/proto/ledger/v1"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "path to config file")
	flag.Parse()

	// 1. 載入設定
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", err, nil)
		os.Exit(1)
	}
	logger.Setup(cfg.Log)

	ctx := context.Background()

	// 2. 初始化儲存層 (Driven Adapter)
	store, closeStore, err := openStore(ctx, cfg.Storage)
	if err != nil {
		logger.Error("failed to open store", err, logger.Fields{"driver": cfg.Storage.Driver})
		os.Exit(1)
	}
	defer closeStore()

	// 3. 帳戶鎖 (單機 / Redis)
	locker, closeLocker, err := openLocker(ctx, cfg.Lock)
	if err != nil {
		logger.Error("failed to init locker", err, logger.Fields{"driver": cfg.Lock.Driver})
		os.Exit(1)
	}
	defer closeLocker()

	// 4. 初始化 UseCase
	limits := usecase.NewLimitEvaluator(store, cfg.Ledger.Limit(), cfg.Ledger.Location())
	engine := usecase.NewEngine(store, limits,
		usecase.WithLocker(locker),
		usecase.WithMaxRetries(cfg.Ledger.Retries()),
		usecase.WithRetryBackoff(cfg.Ledger.RetryBackoff),
	)
	grpcServer := grpc_adapter.NewGrpcServer(
		usecase.NewAccountService(store),
		engine,
		usecase.NewHistoryService(store, store),
		usecase.NewAuditor(store, store),
	)

	// 5. 啟動 gRPC Server
	lis, err := net.Listen("tcp", cfg.Server.Addr)
	if err != nil {
		logger.Error("failed to listen", err, logger.Fields{"addr": cfg.Server.Addr})
		os.Exit(1)
	}

	s := grpc.NewServer(grpc.UnaryInterceptor(grpc_adapter.UnaryServerInterceptor()))
	pb.RegisterLedgerServiceServer(s, grpcServer)
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(s, healthServer)
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	go func() {
		logger.Info("starting grpc server", logger.Fields{
			"addr":       cfg.Server.Addr,
			"storage":    cfg.Storage.Driver,
			"lock":       cfg.Lock.Driver,
			"dailyLimit": cfg.Ledger.Limit().String(),
			"timezone":   cfg.Ledger.Location().String(),
		})
		if err := s.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			logger.Error("grpc server stopped", err, nil)
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server", nil)
	healthServer.Shutdown()

	done := make(chan struct{})
	go func() {
		s.GracefulStop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(cfg.Server.ShutdownTimeout):
		logger.Warn("graceful stop timed out, forcing", nil)
		s.Stop()
	}
	logger.Info("server exited", nil)
}

// openStore 依 storage.driver 建立 Store，回傳的 close 在結束時呼叫
func openStore(ctx context.Context, cfg config.StorageConfig) (usecase.Store, func(), error) {
	switch cfg.Driver {
	case config.StorageMySQL:
		client, err := mysql.NewClient(cfg.MySQL)
		if err != nil {
			return nil, nil, err
		}
		store := mysql_adapter.NewStore(client)
		if err := store.Migrate(ctx); err != nil {
			_ = client.Close()
			return nil, nil, err
		}
		return store, func() { _ = client.Close() }, nil

	case config.StoragePostgres:
		db, err := postgres.Open(ctx, cfg.Postgres)
		if err != nil {
			return nil, nil, err
		}
		store := postgres_adapter.NewStore(db)
		if err := store.Migrate(ctx); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return store, func() { _ = db.Close() }, nil

	default:
		walFile, err := wal.Open(cfg.WALPath)
		if err != nil {
			return nil, nil, err
		}
		store, err := memory_adapter.NewStore(walFile)
		if err != nil {
			_ = walFile.Close()
			return nil, nil, err
		}
		return store, func() { _ = walFile.Close() }, nil
	}
}

func openLocker(ctx context.Context, cfg config.LockConfig) (usecase.Locker, func(), error) {
	if cfg.Driver != config.LockRedis {
		return keylock.NewArena(keylock.WithMaxWait(cfg.MaxWait)), func() {}, nil
	}
	client, err := redislock.NewClient(ctx, cfg.Redis)
	if err != nil {
		return nil, nil, err
	}
	return redislock.New(client, cfg.Redis), func() { _ = client.Close() }, nil
}
