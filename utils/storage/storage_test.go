package storage

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		key  string
		want bool
	}{
		{"0123abcd.svg", true},
		{"a", true},
		{"", false},
		{".", false},
		{"..", false},
		{"../etc/passwd", false},
		{"a/b", false},
		{`a\b`, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidKey(tt.key), tt.key)
	}
}

func testFileStorage(t *testing.T, fs FileStorage) {
	t.Helper()
	ctx := context.Background()

	_, err := fs.OpenFileByKey(ctx, "missing.svg")
	assert.ErrorIs(t, err, ErrFileNotFound)

	require.NoError(t, fs.SaveByKey(ctx, strings.NewReader("<svg/>"), "a.svg", "image/svg+xml"))
	b, err := ReadAll(ctx, fs, "a.svg")
	require.NoError(t, err)
	assert.Equal(t, "<svg/>", string(b))

	require.NoError(t, fs.SaveByKey(ctx, strings.NewReader("<svg></svg>"), "a.svg", "image/svg+xml"))
	b, err = ReadAll(ctx, fs, "a.svg")
	require.NoError(t, err)
	assert.Equal(t, "<svg></svg>", string(b))

	assert.ErrorIs(t, fs.SaveByKey(ctx, strings.NewReader("x"), "../a.svg", ""), ErrInvalidKey)

	require.NoError(t, fs.DeleteByKey(ctx, "a.svg"))
	_, err = fs.OpenFileByKey(ctx, "a.svg")
	assert.ErrorIs(t, err, ErrFileNotFound)
	assert.ErrorIs(t, fs.DeleteByKey(ctx, "a.svg"), ErrFileNotFound)
}

func TestLocalFileStorage(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "nested", "storage")
	fs, err := NewLocalFileStorage(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, fs.GetDir())

	testFileStorage(t, fs)

	t.Run("no temp files left", func(t *testing.T) {
		require.NoError(t, fs.SaveByKey(context.Background(), strings.NewReader("x"), "b.png", "image/png"))
		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "b.png", entries[0].Name())
		assert.True(t, fs.Exists("b.png"))
		assert.False(t, fs.Exists("../b.png"))
	})
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("read failed")
}

func TestLocalFileStorage_FailedWrite(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	fs, err := NewLocalFileStorage(dir)
	require.NoError(t, err)

	assert.Error(t, fs.SaveByKey(context.Background(), failingReader{}, "c.svg", ""))
	assert.False(t, fs.Exists("c.svg"))
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestInMemoryFileStorage(t *testing.T) {
	t.Parallel()

	fs := NewInMemoryFileStorage()
	testFileStorage(t, fs)
	assert.Equal(t, 0, fs.Len())
}

type countingStorage struct {
	*InMemoryFileStorage
	mu    sync.Mutex
	opens int
}

func (s *countingStorage) OpenFileByKey(ctx context.Context, key string) (io.ReadCloser, error) {
	s.mu.Lock()
	s.opens++
	s.mu.Unlock()
	return s.InMemoryFileStorage.OpenFileByKey(ctx, key)
}

func TestCompositeFileStorage(t *testing.T) {
	t.Parallel()

	remote := &countingStorage{InMemoryFileStorage: NewInMemoryFileStorage()}
	fs, err := NewCompositeFileStorage(t.TempDir(), remote)
	require.NoError(t, err)

	testFileStorage(t, fs)
	assert.Equal(t, 0, remote.Len())
}

func TestCompositeFileStorage_Backfill(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	remote := &countingStorage{InMemoryFileStorage: NewInMemoryFileStorage()}
	require.NoError(t, remote.SaveByKey(ctx, strings.NewReader("remote"), "r.svg", ""))

	dir := t.TempDir()
	fs, err := NewCompositeFileStorage(dir, remote)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b, err := ReadAll(ctx, fs, "r.svg")
			assert.NoError(t, err)
			assert.Equal(t, "remote", string(b))
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, remote.opens)
	local, err := os.ReadFile(filepath.Join(dir, "r.svg"))
	require.NoError(t, err)
	assert.Equal(t, "remote", string(local))

	require.NoError(t, fs.DeleteByKey(ctx, "r.svg"))
	assert.Equal(t, 0, remote.Len())
}

func TestKeyMutex(t *testing.T) {
	t.Parallel()

	km := newKeyMutex(10)
	counter := [6]int{}
	keys := []string{"test", "aiueo", "abcd", "12345", "foo", "bar"}

	var wg sync.WaitGroup
	for i := range 600 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			j := i % 6
			km.Lock(keys[j])
			counter[j]++
			km.Unlock(keys[j])
		}()
	}
	wg.Wait()

	for i := range counter {
		assert.Equal(t, 100, counter[i])
	}
}
