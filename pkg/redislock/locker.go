package redislock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/JoeShih716/go-account-ledger/internal/logger"
)

// ErrLockTimeout 超過最長等待時間仍未取得鎖
var ErrLockTimeout = errors.New("redislock: wait timeout")

// releaseScript 只刪除自己持有的鎖 (token 相同才刪)
const releaseScript = `if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
else
	return 0
end`

// Config 定義分散式鎖的配置
type Config struct {
	Addr          string        `yaml:"addr"`
	Password      string        `yaml:"password"`
	DB            int           `yaml:"db"`
	Prefix        string        `yaml:"prefix"`         // key 前綴，預設 "ledger:lock:"
	TTL           time.Duration `yaml:"ttl"`            // 鎖自動過期時間，避免持有者崩潰後永久鎖住
	RetryInterval time.Duration `yaml:"retry_interval"` // 搶鎖失敗後的重試間隔
	MaxWait       time.Duration `yaml:"max_wait"`       // 最長等待時間
}

// Locker 以 Redis SET NX 實作的帳戶鎖，供多個實例共用
type Locker struct {
	client   redis.Cmdable
	cfg      Config
	newToken func() string
}

// NewClient 依設定建立 Redis 連線並 Ping
func NewClient(ctx context.Context, cfg Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis %s: %w", cfg.Addr, err)
	}
	return rdb, nil
}

// New 建立 Locker，未設定的欄位套用預設值
func New(client redis.Cmdable, cfg Config) *Locker {
	if cfg.Prefix == "" {
		cfg.Prefix = "ledger:lock:"
	}
	if cfg.TTL <= 0 {
		cfg.TTL = 10 * time.Second
	}
	if cfg.RetryInterval <= 0 {
		cfg.RetryInterval = 10 * time.Millisecond
	}
	if cfg.MaxWait <= 0 {
		cfg.MaxWait = 3 * time.Second
	}
	return &Locker{
		client:   client,
		cfg:      cfg,
		newToken: uuid.NewString,
	}
}

// Lock 取得 key 的分散式鎖
//
// 參數:
//
//	ctx: 取消或逾時時放棄等待
//	key: 鎖定目標 (會加上 Prefix)
//
// 回傳值:
//
//	func(): 釋放鎖 (只會刪除自己持有的 token)
//	error: Redis 錯誤、context 錯誤或 ErrLockTimeout
func (l *Locker) Lock(ctx context.Context, key string) (func(), error) {
	fullKey := l.cfg.Prefix + key
	token := l.newToken()
	deadline := time.Now().Add(l.cfg.MaxWait)

	for {
		ok, err := l.client.SetNX(ctx, fullKey, token, l.cfg.TTL).Result()
		if err != nil {
			return nil, fmt.Errorf("redislock: acquire %s: %w", fullKey, err)
		}
		if ok {
			return l.unlockFunc(fullKey, token), nil
		}
		if !time.Now().Before(deadline) {
			return nil, ErrLockTimeout
		}

		timer := time.NewTimer(l.cfg.RetryInterval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
}

func (l *Locker) unlockFunc(fullKey, token string) func() {
	released := false
	return func() {
		if released {
			return
		}
		released = true
		// 呼叫端的 ctx 可能已取消，釋放鎖改用獨立的 ctx
		ctx, cancel := context.WithTimeout(context.Background(), l.cfg.TTL)
		defer cancel()
		if err := l.client.Eval(ctx, releaseScript, []string{fullKey}, token).Err(); err != nil {
			logger.Error("redislock release failed", err, logger.Fields{"key": fullKey})
		}
	}
}
