package storage

import (
	"context"
	"errors"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3Config S3ストレージの設定
type S3Config struct {
	Bucket         string
	Region         string
	Endpoint       string
	AccessKey      string
	SecretKey      string
	ForcePathStyle bool
}

// S3FileStorage S3互換オブジェクトストレージ
type S3FileStorage struct {
	bucket   string
	client   *s3.Client
	uploader *manager.Uploader
}

// NewS3FileStorage 引数の情報でS3ストレージを生成します
func NewS3FileStorage(ctx context.Context, c S3Config) (*S3FileStorage, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithRegion(c.Region),
	}
	if len(c.AccessKey) > 0 {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(c.AccessKey, c.SecretKey, ""),
		))
	}
	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(cfg, func(opt *s3.Options) {
		opt.UsePathStyle = c.ForcePathStyle
		if len(c.Endpoint) > 0 {
			opt.BaseEndpoint = aws.String(c.Endpoint)
		}
	})

	return &S3FileStorage{
		bucket:   c.Bucket,
		client:   client,
		uploader: manager.NewUploader(client),
	}, nil
}

// OpenFileByKey ファイルを取得します
func (fs *S3FileStorage) OpenFileByKey(ctx context.Context, key string) (io.ReadCloser, error) {
	out, err := fs.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(fs.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isS3NotFound(err) {
			return nil, ErrFileNotFound
		}
		return nil, err
	}
	return out.Body, nil
}

// SaveByKey srcの内容をkeyで指定されたファイルに書き込みます
func (fs *S3FileStorage) SaveByKey(ctx context.Context, src io.Reader, key, contentType string) error {
	if !ValidKey(key) {
		return ErrInvalidKey
	}
	_, err := fs.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(fs.bucket),
		Key:          aws.String(key),
		Body:         src,
		ContentType:  aws.String(contentType),
		CacheControl: aws.String("public, max-age=31536000, immutable"),
	})
	return err
}

// DeleteByKey ファイルを削除します
func (fs *S3FileStorage) DeleteByKey(ctx context.Context, key string) error {
	_, err := fs.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(fs.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isS3NotFound(err) {
			return ErrFileNotFound
		}
		return err
	}
	return nil
}

func isS3NotFound(err error) bool {
	var nsk *types.NoSuchKey
	var nf *types.NotFound
	return errors.As(err, &nsk) || errors.As(err, &nf)
}
