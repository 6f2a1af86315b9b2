package fsxs3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/Abraxas-365/hirematch/pkg/fsx"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3FileSystem stores files as objects under bucket/prefix
type S3FileSystem struct {
	client *s3.Client
	bucket string
	prefix string
}

var _ fsx.FileSystem = (*S3FileSystem)(nil)

func NewS3FileSystem(client *s3.Client, bucket, prefix string) *S3FileSystem {
	return &S3FileSystem{
		client: client,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
	}
}

func (s *S3FileSystem) Join(elem ...string) string {
	return path.Join(elem...)
}

func (s *S3FileSystem) key(p string) string {
	if s.prefix == "" {
		return strings.TrimPrefix(p, "/")
	}
	return s.prefix + "/" + strings.TrimPrefix(p, "/")
}

func (s *S3FileSystem) ReadFile(ctx context.Context, p string) ([]byte, error) {
	rc, err := s.ReadFileStream(ctx, p)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read s3 object %s: %w", p, err)
	}
	return data, nil
}

func (s *S3FileSystem) ReadFileStream(ctx context.Context, p string) (io.ReadCloser, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(p)),
	})
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return nil, fmt.Errorf("%s: %w", p, fsx.ErrNotExist)
		}
		return nil, fmt.Errorf("get s3 object %s: %w", p, err)
	}
	return out.Body, nil
}

func (s *S3FileSystem) WriteFile(ctx context.Context, p string, data []byte) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(s.key(p)),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		return fmt.Errorf("put s3 object %s: %w", p, err)
	}
	return nil
}

// WriteFileStream buffers the stream so the upload carries a content length
func (s *S3FileSystem) WriteFileStream(ctx context.Context, p string, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("buffer upload %s: %w", p, err)
	}
	return s.WriteFile(ctx, p, data)
}

func (s *S3FileSystem) DeleteFile(ctx context.Context, p string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(p)),
	})
	if err != nil {
		return fmt.Errorf("delete s3 object %s: %w", p, err)
	}
	return nil
}

func (s *S3FileSystem) Exists(ctx context.Context, p string) (bool, error) {
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(p)),
	})
	if err == nil {
		return true, nil
	}
	var nf *types.NotFound
	if errors.As(err, &nf) {
		return false, nil
	}
	return false, fmt.Errorf("head s3 object %s: %w", p, err)
}
