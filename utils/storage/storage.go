package storage

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
)

var (
	// ErrFileNotFound 指定されたキーのファイルは見つかりません
	ErrFileNotFound = errors.New("file not found")
	// ErrInvalidKey 保存できないキーです
	ErrInvalidKey = errors.New("invalid key")
)

// FileStorage レンダリング結果のキャッシュを保存するストレージのインターフェース
type FileStorage interface {
	// SaveByKey srcをkeyのファイルとして保存する
	SaveByKey(ctx context.Context, src io.Reader, key, contentType string) error
	// OpenFileByKey keyで指定されたファイルを読み込む
	OpenFileByKey(ctx context.Context, key string) (io.ReadCloser, error)
	// DeleteByKey keyで指定されたファイルを削除する
	DeleteByKey(ctx context.Context, key string) error
}

// ValidKey keyがストレージのキーとして使えるかどうか
//
// キーはパス区切りを含まない1つのファイル名でなければいけません。
func ValidKey(key string) bool {
	if key == "" || key == "." || key == ".." {
		return false
	}
	if strings.ContainsAny(key, `/\`) {
		return false
	}
	return filepath.Base(key) == key
}

// ReadAll keyのファイルを全て読み込みます
func ReadAll(ctx context.Context, fs FileStorage, key string) ([]byte, error) {
	r, err := fs.OpenFileByKey(ctx, key)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}
