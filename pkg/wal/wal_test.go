package wal

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	Seq  int    `json:"seq"`
	Note string `json:"note"`
}

func readRecords(t *testing.T, w *WAL) []record {
	t.Helper()
	var out []record
	err := w.ReadAll(func(raw json.RawMessage) error {
		var r record
		if err := json.Unmarshal(raw, &r); err != nil {
			return err
		}
		out = append(out, r)
		return nil
	})
	require.NoError(t, err)
	return out
}

func TestWAL_AppendAndReadAll(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wal.log")

	w, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, w.Append(record{Seq: 1, Note: "a"}))
	require.NoError(t, w.Append(record{Seq: 2, Note: "b"}))
	require.NoError(t, w.Close())

	w, err = Open(path)
	require.NoError(t, err)
	defer w.Close()

	got := readRecords(t, w)
	assert.Equal(t, []record{{1, "a"}, {2, "b"}}, got)

	// 讀完後仍可繼續追加
	require.NoError(t, w.Append(record{Seq: 3}))
	assert.Len(t, readRecords(t, w), 3)
}

func TestWAL_IgnoresTornTail(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wal.log")
	require.NoError(t, os.WriteFile(path, []byte("{\"seq\":1,\"note\":\"ok\"}\n{\"seq\":2,\"no"), FileModePrivate))

	w, err := Open(path)
	require.NoError(t, err)
	defer w.Close()

	assert.Equal(t, []record{{1, "ok"}}, readRecords(t, w))
}

func TestWAL_CallbackErrorStopsReplay(t *testing.T) {
	w, err := Open(filepath.Join(t.TempDir(), "wal.log"))
	require.NoError(t, err)
	defer w.Close()
	require.NoError(t, w.Append(record{Seq: 1}))

	err = w.ReadAll(func(json.RawMessage) error { return assert.AnError })
	assert.ErrorIs(t, err, assert.AnError)
}

func TestWAL_AppendAfterTornTail(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wal.log")
	require.NoError(t, os.WriteFile(path, []byte("{\"seq\":1,\"note\":\"ok\"}\n{\"seq\":2"), FileModePrivate))

	w, err := Open(path)
	require.NoError(t, err)
	defer w.Close()

	readRecords(t, w)
	require.NoError(t, w.Append(record{Seq: 3, Note: "c"}))
	assert.Equal(t, []record{{1, "ok"}, {3, "c"}}, readRecords(t, w))
}

// faultyFile 依設定讓 Write / Sync / Truncate 失敗，Write 失敗前會先寫入一半
type faultyFile struct {
	*os.File
	failWrite    bool
	failSync     bool
	failTruncate bool
}

func (f *faultyFile) Write(p []byte) (int, error) {
	if f.failWrite {
		f.failWrite = false
		n, _ := f.File.Write(p[:len(p)/2])
		return n, errors.New("disk full")
	}
	return f.File.Write(p)
}

func (f *faultyFile) Sync() error {
	if f.failSync {
		f.failSync = false
		return errors.New("fsync failed")
	}
	return f.File.Sync()
}

func (f *faultyFile) Truncate(size int64) error {
	if f.failTruncate {
		return errors.New("read-only file system")
	}
	return f.File.Truncate(size)
}

func openFaulty(t *testing.T) (*WAL, *faultyFile, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wal.log")
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_RDWR, FileModePrivate)
	require.NoError(t, err)
	ff := &faultyFile{File: file}
	w := newWAL(ff)
	t.Cleanup(func() { w.Close() })
	return w, ff, path
}

func reopen(t *testing.T, path string) []record {
	t.Helper()
	w, err := Open(path)
	require.NoError(t, err)
	defer w.Close()
	return readRecords(t, w)
}

func TestWAL_PartialWriteIsRolledBack(t *testing.T) {
	w, ff, path := openFaulty(t)
	require.NoError(t, w.Append(record{Seq: 1, Note: "a"}))

	ff.failWrite = true
	require.Error(t, w.Append(record{Seq: 2, Note: "lost"}))
	require.NoError(t, w.Append(record{Seq: 3, Note: "c"}))

	assert.Equal(t, []record{{1, "a"}, {3, "c"}}, reopen(t, path))
}

func TestWAL_FailedSyncIsRolledBack(t *testing.T) {
	w, ff, path := openFaulty(t)
	require.NoError(t, w.Append(record{Seq: 1, Note: "a"}))

	ff.failSync = true
	require.Error(t, w.Append(record{Seq: 2, Note: "unconfirmed"}))

	assert.Equal(t, []record{{1, "a"}}, reopen(t, path))
}

func TestWAL_BrokenAfterFailedRollback(t *testing.T) {
	w, ff, _ := openFaulty(t)
	require.NoError(t, w.Append(record{Seq: 1}))

	ff.failWrite = true
	ff.failTruncate = true
	err := w.Append(record{Seq: 2})
	assert.ErrorIs(t, err, ErrBroken)

	// 即使底層恢復正常也不再接受寫入
	ff.failTruncate = false
	assert.ErrorIs(t, w.Append(record{Seq: 3}), ErrBroken)
}
