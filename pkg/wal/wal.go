package wal

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sync"
)

// 常用的權限常量
const (
	// rw-r--r--
	FileModeReadOnly fs.FileMode = 0644

	// rw------- (只有擁有者可讀寫) - 帳本資料使用
	FileModePrivate fs.FileMode = 0600
)

// ErrBroken 寫入失敗且無法還原檔案尾端，之後的 Append 一律拒絕
var ErrBroken = errors.New("wal: broken after failed rollback")

// logFile WAL 需要的檔案操作，*os.File 即滿足
type logFile interface {
	io.ReadWriteSeeker
	io.Closer
	Sync() error
	Truncate(size int64) error
}

// WAL 以 JSON Lines 格式追加寫入的 Write-Ahead Log
// 每筆 Append 都會 fsync，回傳成功即代表已落地；回傳失敗則檔案維持寫入前的長度
type WAL struct {
	file   logFile
	mu     sync.Mutex
	broken error
}

// Open 開啟或建立一個 WAL 檔案
// O_RDWR讀寫模式
// O_APPEND 每次寫入時自動跳到文件末尾
// O_CREATE 如果文件不存在則建立
func Open(path string) (*WAL, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_RDWR, FileModePrivate)
	if err != nil {
		return nil, fmt.Errorf("open wal %s: %w", path, err)
	}
	return newWAL(file), nil
}

func newWAL(file logFile) *WAL {
	return &WAL{file: file}
}

// Append 寫入一筆資料並刷入硬碟
func (w *WAL) Append(v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode wal record: %w", err)
	}
	raw = append(raw, '\n')

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.broken != nil {
		return fmt.Errorf("%w: %w", ErrBroken, w.broken)
	}

	offset, err := w.file.Seek(0, io.SeekEnd)
	if err != nil {
		return fmt.Errorf("seek wal end: %w", err)
	}
	if _, err := w.file.Write(raw); err != nil {
		return w.rollback(offset, fmt.Errorf("write wal record: %w", err))
	}
	if err := w.file.Sync(); err != nil {
		return w.rollback(offset, fmt.Errorf("sync wal: %w", err))
	}
	return nil
}

// rollback 把檔案截回 offset，寫到一半或未確認落地的紀錄都不能在重啟後出現
// 截斷失敗時鎖死 WAL，呼叫端需持有 w.mu
func (w *WAL) rollback(offset int64, cause error) error {
	if err := w.file.Truncate(offset); err != nil {
		w.broken = fmt.Errorf("truncate wal to %d: %w", offset, err)
		return fmt.Errorf("%w: %w", cause, ErrBroken)
	}
	if err := w.file.Sync(); err != nil {
		w.broken = fmt.Errorf("sync wal after truncate: %w", err)
		return fmt.Errorf("%w: %w", cause, ErrBroken)
	}
	return cause
}

// Close 關閉檔案
func (w *WAL) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.file.Close()
}

// ReadAll 從頭依序讀取所有紀錄
// callback 每次收到一筆原始 JSON，避免一次將所有資料載入記憶體
//
// 最後一行若不完整 (寫到一半當機)，視為未提交並截斷，之後的 Append 才不會接在殘留資料後面
func (w *WAL) ReadAll(callback func(raw json.RawMessage) error) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, err := w.file.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("seek wal: %w", err)
	}

	reader := bufio.NewReader(w.file)
	var offset int64
	for {
		line, err := reader.ReadBytes('\n')
		if errors.Is(err, io.EOF) {
			if len(line) > 0 {
				if err := w.file.Truncate(offset); err != nil {
					return fmt.Errorf("truncate torn wal tail: %w", err)
				}
			}
			return nil
		}
		if err != nil {
			return fmt.Errorf("read wal: %w", err)
		}
		offset += int64(len(line))
		if len(line) <= 1 {
			continue
		}
		if err := callback(json.RawMessage(line[:len(line)-1])); err != nil {
			return err
		}
	}
}
