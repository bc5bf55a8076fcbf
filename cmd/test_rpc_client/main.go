package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	grpcpool "github.com/JoeShih716/go-account-ledger/pkg/grpc"
	pb "github.com/JoeShih716/go-account-ledger/proto/ledger/v1"
)

// 壓力測試: 對同一個帳戶大量並發出帳，最後驗證餘額沒有透支且帳本一致
func main() {
	target := flag.String("target", "localhost:50051", "ledger server address")
	totalCount := flag.Int("n", 10000, "number of debit requests")
	concurrency := flag.Int("c", 200, "concurrent requests")
	amount := flag.String("amount", "10.00", "amount per debit")
	initial := flag.String("initial", "50000.00", "initial balance of the test account")
	flag.Parse()

	pool := grpcpool.NewPool(grpcpool.WithDefaultCallOptions(grpc.WaitForReady(true)))
	defer pool.Close()
	conn, err := pool.GetConnection(*target)
	if err != nil {
		log.Fatalf("did not connect: %v", err)
	}
	c := pb.NewLedgerServiceClient(conn)

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	created, err := c.CreateAccount(ctx, &pb.CreateAccountRequest{
		HolderName:     "load-test",
		InitialBalance: *initial,
	})
	if err != nil {
		log.Fatalf("create account: %v", err)
	}
	accountID := created.Account.Id

	var (
		wg        sync.WaitGroup
		succeeded atomic.Int64
		rejected  atomic.Int64
		flagged   atomic.Int64
		failed    atomic.Int64
	)
	wg.Add(*totalCount)
	sem := make(chan struct{}, *concurrency)
	startTime := time.Now()

	for i := 0; i < *totalCount; i++ {
		sem <- struct{}{}

		go func(idx int) {
			defer wg.Done()
			defer func() { <-sem }()

			resp, err := c.ProcessTransaction(ctx, &pb.ProcessTransactionRequest{
				AccountId: accountID,
				Amount:    *amount,
				Type:      "out",
				Reference: uuid.NewString(),
			})
			switch {
			case err == nil:
				succeeded.Add(1)
				if resp.Transaction.FlaggedForReview {
					flagged.Add(1)
				}
			case status.Code(err) == codes.FailedPrecondition:
				rejected.Add(1)
			default:
				failed.Add(1)
				if idx%1000 == 0 {
					log.Printf("debit %d failed: %v", idx, err)
				}
			}
		}(i)
	}
	wg.Wait()
	elapsed := time.Since(startTime)

	account, err := c.GetAccount(ctx, &pb.GetAccountRequest{AccountId: accountID})
	if err != nil {
		log.Fatalf("get account: %v", err)
	}
	verify, err := c.VerifyLedger(ctx, &pb.VerifyLedgerRequest{AccountId: accountID})
	if err != nil {
		log.Fatalf("verify ledger: %v", err)
	}

	fmt.Printf("Completed %d requests in %v\n", *totalCount, elapsed)
	fmt.Printf("TPS: %.2f\n", float64(*totalCount)/elapsed.Seconds())
	fmt.Printf("succeeded=%d rejected=%d flagged=%d failed=%d\n",
		succeeded.Load(), rejected.Load(), flagged.Load(), failed.Load())
	fmt.Printf("balance=%s ledger consistent=%v transactions=%d\n",
		account.Account.CurrentBalance, verify.Consistent, verify.TransactionCount)

	// initial - succeeded*amount 必須等於最終餘額
	expected := decimal.RequireFromString(*initial).
		Sub(decimal.RequireFromString(*amount).Mul(decimal.NewFromInt(succeeded.Load())))
	if !expected.Equal(decimal.RequireFromString(account.Account.CurrentBalance)) || !verify.Consistent {
		log.Fatalf("balance mismatch: expected %s, got %s", expected, account.Account.CurrentBalance)
	}
}
