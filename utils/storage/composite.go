package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
)

// CompositeFileStorage 複合型ファイルストレージ
//
// ローカルをリモートの前段のキャッシュとして使います。
// 保存は両方に行い、読み込みはローカルに無い場合のみリモートから行ってローカルに書き戻します。
type CompositeFileStorage struct {
	remote  FileStorage
	local   *LocalFileStorage
	mutexes *keyMutex
}

// NewCompositeFileStorage 引数の情報で複合型ファイルストレージを生成します
func NewCompositeFileStorage(localDir string, remote FileStorage) (*CompositeFileStorage, error) {
	l, err := NewLocalFileStorage(localDir)
	if err != nil {
		return nil, err
	}
	return &CompositeFileStorage{
		remote:  remote,
		local:   l,
		mutexes: newKeyMutex(256),
	}, nil
}

// SaveByKey srcをkeyのファイルとして保存する
func (fs *CompositeFileStorage) SaveByKey(ctx context.Context, src io.Reader, key, contentType string) error {
	b, err := io.ReadAll(src)
	if err != nil {
		return err
	}
	if err := fs.remote.SaveByKey(ctx, bytes.NewReader(b), key, contentType); err != nil {
		return err
	}
	return fs.local.SaveByKey(ctx, bytes.NewReader(b), key, contentType)
}

// OpenFileByKey keyで指定されたファイルを読み込む
func (fs *CompositeFileStorage) OpenFileByKey(ctx context.Context, key string) (io.ReadCloser, error) {
	if fs.local.Exists(key) {
		return fs.local.OpenFileByKey(ctx, key)
	}

	fs.mutexes.Lock(key)
	defer fs.mutexes.Unlock(key)

	// 待っている間に書き戻されているかもしれない
	if fs.local.Exists(key) {
		return fs.local.OpenFileByKey(ctx, key)
	}

	b, err := ReadAll(ctx, fs.remote, key)
	if err != nil {
		return nil, err
	}
	_ = fs.local.SaveByKey(ctx, bytes.NewReader(b), key, "")
	return io.NopCloser(bytes.NewReader(b)), nil
}

// DeleteByKey keyで指定されたファイルを削除する
func (fs *CompositeFileStorage) DeleteByKey(ctx context.Context, key string) error {
	localErr := fs.local.DeleteByKey(ctx, key)
	if localErr != nil && !errors.Is(localErr, ErrFileNotFound) {
		return localErr
	}
	remoteErr := fs.remote.DeleteByKey(ctx, key)
	if errors.Is(remoteErr, ErrFileNotFound) && localErr == nil {
		return nil
	}
	return remoteErr
}
