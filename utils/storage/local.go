package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalFileStorage ローカルファイルストレージ
type LocalFileStorage struct {
	dirName string
	mutexes *keyMutex
}

// NewLocalFileStorage LocalFileStorageを生成します。ディレクトリが存在しない場合は作成します
func NewLocalFileStorage(dir string) (*LocalFileStorage, error) {
	if dir == "" {
		dir = "./storage"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage dir: %w", err)
	}
	return &LocalFileStorage{
		dirName: dir,
		mutexes: newKeyMutex(64),
	}, nil
}

// OpenFileByKey ファイルを取得します
func (fs *LocalFileStorage) OpenFileByKey(_ context.Context, key string) (io.ReadCloser, error) {
	if !ValidKey(key) {
		return nil, ErrInvalidKey
	}
	reader, err := os.Open(fs.getFilePath(key))
	if err != nil {
		return nil, ErrFileNotFound
	}
	return reader, nil
}

// SaveByKey srcの内容をkeyで指定されたファイルに書き込みます
//
// 一時ファイルに書き込んでから置き換えるため、読み込み側が書きかけのファイルを見ることはありません。
func (fs *LocalFileStorage) SaveByKey(_ context.Context, src io.Reader, key, _ string) error {
	if !ValidKey(key) {
		return ErrInvalidKey
	}
	fs.mutexes.Lock(key)
	defer fs.mutexes.Unlock(key)

	tmp, err := os.CreateTemp(fs.dirName, "."+key+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, src); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), fs.getFilePath(key))
}

// DeleteByKey ファイルを削除します
func (fs *LocalFileStorage) DeleteByKey(_ context.Context, key string) error {
	if !ValidKey(key) {
		return ErrInvalidKey
	}
	fs.mutexes.Lock(key)
	defer fs.mutexes.Unlock(key)

	err := os.Remove(fs.getFilePath(key))
	if errors.Is(err, os.ErrNotExist) {
		return ErrFileNotFound
	}
	return err
}

// Exists keyのファイルが存在するかどうか
func (fs *LocalFileStorage) Exists(key string) bool {
	if !ValidKey(key) {
		return false
	}
	_, err := os.Stat(fs.getFilePath(key))
	return err == nil
}

// GetDir ファイルの保存先を取得する
func (fs *LocalFileStorage) GetDir() string {
	return fs.dirName
}

func (fs *LocalFileStorage) getFilePath(key string) string {
	return filepath.Join(fs.dirName, key)
}
