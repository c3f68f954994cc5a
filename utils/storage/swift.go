package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/ncw/swift/v2"
)

// SwiftConfig OpenStack Swiftストレージの設定
type SwiftConfig struct {
	Container  string
	UserName   string
	APIKey     string
	TenantName string
	TenantID   string
	AuthURL    string
}

// SwiftFileStorage OpenStack Swiftストレージ
type SwiftFileStorage struct {
	container  string
	connection *swift.Connection
}

// NewSwiftFileStorage 引数の情報でOpenStack Swiftストレージを生成します
func NewSwiftFileStorage(ctx context.Context, c SwiftConfig) (*SwiftFileStorage, error) {
	m := &SwiftFileStorage{
		container: c.Container,
		connection: &swift.Connection{
			AuthUrl:  c.AuthURL,
			UserName: c.UserName,
			ApiKey:   c.APIKey,
			Tenant:   c.TenantName,
			TenantId: c.TenantID,
		},
	}

	if err := m.connection.Authenticate(ctx); err != nil {
		return nil, err
	}

	containers, err := m.connection.ContainerNamesAll(ctx, nil)
	if err != nil {
		return nil, err
	}
	for _, v := range containers {
		if v == c.Container {
			return m, nil
		}
	}

	return nil, fmt.Errorf("container %s is not found", c.Container)
}

// OpenFileByKey ファイルを取得します
func (fs *SwiftFileStorage) OpenFileByKey(ctx context.Context, key string) (io.ReadCloser, error) {
	file, _, err := fs.connection.ObjectOpen(ctx, fs.container, key, true, nil)
	if err != nil {
		if errors.Is(err, swift.ObjectNotFound) {
			return nil, ErrFileNotFound
		}
		return nil, err
	}
	return file, nil
}

// SaveByKey srcの内容をkeyで指定されたファイルに書き込みます
func (fs *SwiftFileStorage) SaveByKey(ctx context.Context, src io.Reader, key, contentType string) error {
	if !ValidKey(key) {
		return ErrInvalidKey
	}
	headers := swift.Headers{
		"Cache-Control":        "public, max-age=31536000, immutable",
		"X-AVATARS-CACHE-FILE": "true",
	}
	_, err := fs.connection.ObjectPut(ctx, fs.container, key, src, true, "", contentType, headers)
	return err
}

// DeleteByKey ファイルを削除します
func (fs *SwiftFileStorage) DeleteByKey(ctx context.Context, key string) error {
	err := fs.connection.ObjectDelete(ctx, fs.container, key)
	if errors.Is(err, swift.ObjectNotFound) {
		return ErrFileNotFound
	}
	return err
}
