package keylock

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrLockTimeout 超過最長等待時間仍未取得鎖
var ErrLockTimeout = errors.New("keylock: wait timeout")

// entry 單一 key 的鎖，容量 1 的 channel 讓等待可以被 context 取消
type entry struct {
	ch   chan struct{}
	refs int
}

// Arena 以 key 區分的互斥鎖集合
// 不同 key 之間完全不互相阻塞，沒有人持有或等待的 key 會被回收
type Arena struct {
	mu      sync.Mutex
	locks   map[string]*entry
	maxWait time.Duration
}

// ArenaOption 定義了 Arena 的配置選項函數
type ArenaOption func(*Arena)

// WithMaxWait 設定單次 Lock 的最長等待時間，0 代表只受 context 限制
func WithMaxWait(d time.Duration) ArenaOption {
	return func(a *Arena) {
		a.maxWait = d
	}
}

// NewArena 建立並回傳一個新的 Arena
func NewArena(opts ...ArenaOption) *Arena {
	a := &Arena{locks: make(map[string]*entry)}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Lock 取得 key 的獨占權
//
// 參數:
//
//	ctx: 取消或逾時時放棄等待
//	key: 鎖定目標 (例如 "account:42")
//
// 回傳值:
//
//	func(): 釋放鎖，重複呼叫無副作用
//	error: context 錯誤或 ErrLockTimeout
func (a *Arena) Lock(ctx context.Context, key string) (func(), error) {
	// select 在多個 case 同時就緒時隨機挑選，已取消的 ctx 先擋下
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	e := a.acquire(key)

	var timeout <-chan time.Time
	if a.maxWait > 0 {
		timer := time.NewTimer(a.maxWait)
		defer timer.Stop()
		timeout = timer.C
	}

	select {
	case e.ch <- struct{}{}:
	case <-ctx.Done():
		a.release(key, e)
		return nil, ctx.Err()
	case <-timeout:
		a.release(key, e)
		return nil, ErrLockTimeout
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-e.ch
			a.release(key, e)
		})
	}, nil
}

// Len 目前仍被持有或等待中的 key 數量
func (a *Arena) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.locks)
}

func (a *Arena) acquire(key string) *entry {
	a.mu.Lock()
	defer a.mu.Unlock()
	e, ok := a.locks[key]
	if !ok {
		e = &entry{ch: make(chan struct{}, 1)}
		a.locks[key] = e
	}
	e.refs++
	return e
}

func (a *Arena) release(key string, e *entry) {
	a.mu.Lock()
	defer a.mu.Unlock()
	e.refs--
	if e.refs == 0 {
		delete(a.locks, key)
	}
}
