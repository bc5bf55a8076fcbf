package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	// 容器映像可能沒有系統時區資料
	_ "time/tzdata"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/JoeShih716/go-account-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-account-ledger/internal/logger"
	"github.com/JoeShih716/go-account-ledger/pkg/mysql"
	"github.com/JoeShih716/go-account-ledger/pkg/postgres"
	"github.com/JoeShih716/go-account-ledger/pkg/redislock"
)

// 儲存層種類
const (
	StorageMemory   = "memory"
	StorageMySQL    = "mysql"
	StoragePostgres = "postgres"
)

// 帳戶鎖種類
const (
	LockLocal = "local"
	LockRedis = "redis"
)

// Config 服務設定 (config/config.yaml)
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Log     logger.Config `yaml:"log"`
	Ledger  LedgerConfig  `yaml:"ledger"`
	Storage StorageConfig `yaml:"storage"`
	Lock    LockConfig    `yaml:"lock"`
}

type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// LedgerConfig 交易引擎設定
type LedgerConfig struct {
	// DailyWithdrawalLimit 以字串保存避免浮點誤差，Validate 後可用 Limit()
	DailyWithdrawalLimit string        `yaml:"daily_withdrawal_limit"`
	Timezone             string        `yaml:"timezone"`
	MaxRetries           *int          `yaml:"max_retries"` // nil 代表未設定，0 代表不重試
	RetryBackoff         time.Duration `yaml:"retry_backoff"`

	limit    decimal.Decimal
	location *time.Location
}

// Limit 回傳解析後的每日提款上限
func (c *LedgerConfig) Limit() decimal.Decimal {
	return c.limit
}

// Retries 回傳版本衝突時的最大重試次數
func (c *LedgerConfig) Retries() int {
	if c.MaxRetries == nil {
		return 0
	}
	return *c.MaxRetries
}

// Location 回傳解析後的時區
func (c *LedgerConfig) Location() *time.Location {
	return c.location
}

type StorageConfig struct {
	Driver   string          `yaml:"driver"`
	WALPath  string          `yaml:"wal_path"`
	MySQL    mysql.Config    `yaml:"mysql"`
	Postgres postgres.Config `yaml:"postgres"`
}

type LockConfig struct {
	Driver  string           `yaml:"driver"`
	MaxWait time.Duration    `yaml:"max_wait"`
	Redis   redislock.Config `yaml:"redis"`
}

// Load 讀取設定檔 -> 補預設值 -> 環境變數覆蓋 -> 驗證
//
// 參數:
//
//	path: YAML 設定檔路徑，空字串代表只使用預設值與環境變數
func Load(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	cfg.applyDefaults()
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":50051"
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Ledger.DailyWithdrawalLimit == "" {
		c.Ledger.DailyWithdrawalLimit = "10000"
	}
	if c.Ledger.Timezone == "" {
		c.Ledger.Timezone = "Local"
	}
	if c.Ledger.MaxRetries == nil {
		retries := 5
		c.Ledger.MaxRetries = &retries
	}
	if c.Ledger.RetryBackoff == 0 {
		c.Ledger.RetryBackoff = 5 * time.Millisecond
	}
	if c.Storage.Driver == "" {
		c.Storage.Driver = StorageMemory
	}
	if c.Storage.WALPath == "" {
		c.Storage.WALPath = "wal.log"
	}
	// 補全 MySQL 預設配置 (如果 yaml 沒寫)
	if c.Storage.MySQL.Port == 0 {
		c.Storage.MySQL.Port = 3306
	}
	if c.Storage.MySQL.MaxOpenConns == 0 {
		c.Storage.MySQL.MaxOpenConns = 100
	}
	if c.Storage.MySQL.MaxIdleConns == 0 {
		c.Storage.MySQL.MaxIdleConns = 10
	}
	if c.Storage.MySQL.ConnMaxLifetime == 0 {
		c.Storage.MySQL.ConnMaxLifetime = 30 * time.Minute
	}
	if c.Storage.Postgres.Port == 0 {
		c.Storage.Postgres.Port = 5432
	}
	if c.Storage.Postgres.MaxOpenConns == 0 {
		c.Storage.Postgres.MaxOpenConns = 25
	}
	if c.Storage.Postgres.MaxIdleConns == 0 {
		c.Storage.Postgres.MaxIdleConns = 5
	}
	if c.Storage.Postgres.ConnMaxLifetime == 0 {
		c.Storage.Postgres.ConnMaxLifetime = 5 * time.Minute
	}
	if c.Lock.Driver == "" {
		c.Lock.Driver = LockLocal
	}
}

// applyEnv 以環境變數覆蓋 (容器部署時常用)
func (c *Config) applyEnv() error {
	setString := func(key string, dst *string) {
		if v, ok := os.LookupEnv(key); ok {
			*dst = v
		}
	}
	setString("SERVER_ADDR", &c.Server.Addr)
	setString("LOG_LEVEL", &c.Log.Level)
	setString("LEDGER_DAILY_WITHDRAWAL_LIMIT", &c.Ledger.DailyWithdrawalLimit)
	setString("LEDGER_TIMEZONE", &c.Ledger.Timezone)
	setString("STORAGE_DRIVER", &c.Storage.Driver)
	setString("WAL_PATH", &c.Storage.WALPath)
	setString("MYSQL_HOST", &c.Storage.MySQL.Host)
	setString("MYSQL_USER", &c.Storage.MySQL.User)
	setString("MYSQL_PASSWORD", &c.Storage.MySQL.Password)
	setString("MYSQL_DATABASE", &c.Storage.MySQL.DBName)
	setString("POSTGRES_DSN", &c.Storage.Postgres.DSN)
	setString("LOCK_DRIVER", &c.Lock.Driver)
	setString("REDIS_ADDR", &c.Lock.Redis.Addr)

	if v, ok := os.LookupEnv("MYSQL_PORT"); ok {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid MYSQL_PORT %q: %w", v, err)
		}
		c.Storage.MySQL.Port = port
	}
	return nil
}

// Validate 檢查設定並解析每日上限與時區
func (c *Config) Validate() error {
	limit, err := decimal.NewFromString(strings.TrimSpace(c.Ledger.DailyWithdrawalLimit))
	if err != nil {
		return fmt.Errorf("invalid ledger.daily_withdrawal_limit %q: %w", c.Ledger.DailyWithdrawalLimit, err)
	}
	if limit.IsNegative() || !domain.HasValidScale(limit) {
		return fmt.Errorf("invalid ledger.daily_withdrawal_limit %q: must be >= 0 with at most %d decimals",
			c.Ledger.DailyWithdrawalLimit, domain.AmountScale)
	}
	c.Ledger.limit = limit

	loc, err := time.LoadLocation(c.Ledger.Timezone)
	if err != nil {
		return fmt.Errorf("invalid ledger.timezone %q: %w", c.Ledger.Timezone, err)
	}
	c.Ledger.location = loc

	if c.Ledger.Retries() < 0 {
		return errors.New("ledger.max_retries must be >= 0")
	}

	switch c.Storage.Driver {
	case StorageMemory:
	case StorageMySQL:
		if c.Storage.MySQL.Host == "" || c.Storage.MySQL.DBName == "" {
			return errors.New("storage.mysql.host and storage.mysql.db_name are required")
		}
	case StoragePostgres:
		if c.Storage.Postgres.DSN == "" && (c.Storage.Postgres.Host == "" || c.Storage.Postgres.DBName == "") {
			return errors.New("storage.postgres.dsn or host/db_name is required")
		}
	default:
		return fmt.Errorf("unknown storage.driver %q", c.Storage.Driver)
	}

	switch c.Lock.Driver {
	case LockLocal:
	case LockRedis:
		if c.Lock.Redis.Addr == "" {
			return errors.New("lock.redis.addr is required")
		}
	default:
		return fmt.Errorf("unknown lock.driver %q", c.Lock.Driver)
	}
	return nil
}
