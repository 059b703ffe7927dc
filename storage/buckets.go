// storage/buckets.go
package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/mathias/Halite-II/config"
)

// ObjectStore is the slice of the S3 API this layer uses. *s3.Client
// satisfies it; tests substitute a fake through WithAPI.
type ObjectStore interface {
	HeadBucket(ctx context.Context, params *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// Bucket is a handle to one object-storage container. It holds no
// connection state beyond the underlying client, so it is safe for
// concurrent use.
type Bucket struct {
	name    string
	baseURL string
	api     ObjectStore
}

// Name returns the configured bucket identifier.
func (b *Bucket) Name() string {
	return b.name
}

// Upload writes body under key and returns the public URL of the
// stored object.
func (b *Bucket) Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	_, err := b.api.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(b.name),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %q to bucket %q: %w", key, b.name, err)
	}
	return fmt.Sprintf("%s/%s", b.baseURL, key), nil
}

// Download opens the object stored under key. The caller owns the
// returned reader and must close it.
func (b *Bucket) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	out, err := b.api.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(b.name),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to download %q from bucket %q: %w", key, b.name, err)
	}
	return out.Body, nil
}

// Delete removes the object stored under key.
func (b *Bucket) Delete(ctx context.Context, key string) error {
	_, err := b.api.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(b.name),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete %q from bucket %q: %w", key, b.name, err)
	}
	return nil
}

// newStore builds a storage client bound to the configured account.
// Construction is cheap but each call is independent; callers wanting
// pooling keep the returned bucket handles around themselves.
func newStore(ctx context.Context, cfg config.StorageConfig) (ObjectStore, error) {
	endpoint := fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.AccountID)

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion("auto"),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID, cfg.AccessKeySecret, "",
		)),
		awsconfig.WithEndpointResolver(aws.EndpointResolverFunc(
			func(service, region string) (aws.Endpoint, error) {
				return aws.Endpoint{URL: endpoint}, nil
			}),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load storage config: %w", err)
	}

	return s3.NewFromConfig(awsCfg), nil
}

// openBucket verifies the named bucket exists and returns its handle.
// A missing bucket or bad credentials surface here as an error; there
// is no retry at this layer.
func openBucket(ctx context.Context, cfg config.StorageConfig, name string, opts ...Option) (*Bucket, error) {
	if name == "" {
		return nil, fmt.Errorf("storage: bucket name not configured")
	}

	settings := applyOptions(opts)
	api := settings.api
	if api == nil {
		var err error
		api, err = newStore(ctx, cfg)
		if err != nil {
			return nil, err
		}
	}

	if _, err := api.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(name)}); err != nil {
		return nil, fmt.Errorf("storage: bucket %q not accessible: %w", name, err)
	}

	return &Bucket{
		name:    name,
		baseURL: fmt.Sprintf("https://%s.r2.cloudflarestorage.com/%s", cfg.AccountID, name),
		api:     api,
	}, nil
}

// CompilationBucket returns the bucket holding bot source uploads
// waiting to be compiled.
func CompilationBucket(ctx context.Context, cfg config.StorageConfig, opts ...Option) (*Bucket, error) {
	return openBucket(ctx, cfg, cfg.CompilationBucket, opts...)
}

// BotBucket returns the bucket holding compiled bot artifacts.
func BotBucket(ctx context.Context, cfg config.StorageConfig, opts ...Option) (*Bucket, error) {
	return openBucket(ctx, cfg, cfg.BotBucket, opts...)
}

// ReplayBucket returns one of the replay shard buckets. Game rows
// record which shard their replay went to; shard 0 is the default for
// new writes.
func ReplayBucket(ctx context.Context, cfg config.StorageConfig, shard int, opts ...Option) (*Bucket, error) {
	if shard < 0 || shard >= len(cfg.ReplayBuckets) {
		return nil, fmt.Errorf("storage: replay bucket shard %d not configured (have %d)", shard, len(cfg.ReplayBuckets))
	}
	return openBucket(ctx, cfg, cfg.ReplayBuckets[shard], opts...)
}

// ErrorLogBucket returns the bucket holding per-game bot error logs.
func ErrorLogBucket(ctx context.Context, cfg config.StorageConfig, opts ...Option) (*Bucket, error) {
	return openBucket(ctx, cfg, cfg.ErrorLogBucket, opts...)
}
