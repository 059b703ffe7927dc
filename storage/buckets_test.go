package storage

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mathias/Halite-II/config"
)

// fakeStore implements ObjectStore in memory.
type fakeStore struct {
	buckets map[string]bool
	objects map[string][]byte
}

func newFakeStore(buckets ...string) *fakeStore {
	f := &fakeStore{
		buckets: make(map[string]bool),
		objects: make(map[string][]byte),
	}
	for _, b := range buckets {
		f.buckets[b] = true
	}
	return f
}

func (f *fakeStore) HeadBucket(ctx context.Context, params *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error) {
	if !f.buckets[*params.Bucket] {
		return nil, &types.NotFound{}
	}
	return &s3.HeadBucketOutput{}, nil
}

func (f *fakeStore) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if !f.buckets[*params.Bucket] {
		return nil, &types.NoSuchBucket{}
	}
	data, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}
	f.objects[*params.Bucket+"/"+*params.Key] = data
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeStore) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	data, ok := f.objects[*params.Bucket+"/"+*params.Key]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(data))}, nil
}

func (f *fakeStore) DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	delete(f.objects, *params.Bucket+"/"+*params.Key)
	return &s3.DeleteObjectOutput{}, nil
}

func testConfig() config.StorageConfig {
	return config.StorageConfig{
		AccountID:         "acct123",
		AccessKeyID:       "key",
		AccessKeySecret:   "secret",
		CompilationBucket: "halite-compilation",
		BotBucket:         "halite-bots",
		ReplayBuckets:     []string{"halite-replays-0", "halite-replays-1"},
		ErrorLogBucket:    "halite-error-logs",
	}
}

func TestBucketAccessors(t *testing.T) {
	cfg := testConfig()
	fake := newFakeStore(
		"halite-compilation", "halite-bots",
		"halite-replays-0", "halite-replays-1", "halite-error-logs",
	)
	ctx := context.Background()

	comp, err := CompilationBucket(ctx, cfg, WithAPI(fake))
	require.NoError(t, err)
	assert.Equal(t, "halite-compilation", comp.Name())

	bot, err := BotBucket(ctx, cfg, WithAPI(fake))
	require.NoError(t, err)
	assert.Equal(t, "halite-bots", bot.Name())

	logs, err := ErrorLogBucket(ctx, cfg, WithAPI(fake))
	require.NoError(t, err)
	assert.Equal(t, "halite-error-logs", logs.Name())
}

func TestReplayBucketShards(t *testing.T) {
	cfg := testConfig()
	fake := newFakeStore("halite-replays-0", "halite-replays-1")
	ctx := context.Background()

	shard0, err := ReplayBucket(ctx, cfg, 0, WithAPI(fake))
	require.NoError(t, err)
	assert.Equal(t, "halite-replays-0", shard0.Name())

	shard1, err := ReplayBucket(ctx, cfg, 1, WithAPI(fake))
	require.NoError(t, err)
	assert.Equal(t, "halite-replays-1", shard1.Name())

	_, err = ReplayBucket(ctx, cfg, 2, WithAPI(fake))
	assert.ErrorContains(t, err, "shard 2 not configured")

	_, err = ReplayBucket(ctx, cfg, -1, WithAPI(fake))
	assert.Error(t, err)
}

func TestBucketNotAccessible(t *testing.T) {
	cfg := testConfig()
	// The bucket is configured but absent on the backend.
	fake := newFakeStore("halite-bots")

	_, err := CompilationBucket(context.Background(), cfg, WithAPI(fake))
	assert.ErrorContains(t, err, `bucket "halite-compilation" not accessible`)
}

func TestBucketNameNotConfigured(t *testing.T) {
	cfg := testConfig()
	cfg.ErrorLogBucket = ""

	_, err := ErrorLogBucket(context.Background(), cfg, WithAPI(newFakeStore()))
	assert.ErrorContains(t, err, "bucket name not configured")
}

func TestBucketUploadDownloadDelete(t *testing.T) {
	cfg := testConfig()
	fake := newFakeStore("halite-replays-0", "halite-replays-1")
	ctx := context.Background()

	bucket, err := ReplayBucket(ctx, cfg, 0, WithAPI(fake))
	require.NoError(t, err)

	url, err := bucket.Upload(ctx, "replays/abc.hlt", strings.NewReader("replay-data"), "application/octet-stream")
	require.NoError(t, err)
	assert.Equal(t, "https://acct123.r2.cloudflarestorage.com/halite-replays-0/replays/abc.hlt", url)

	body, err := bucket.Download(ctx, "replays/abc.hlt")
	require.NoError(t, err)
	data, err := io.ReadAll(body)
	require.NoError(t, err)
	require.NoError(t, body.Close())
	assert.Equal(t, "replay-data", string(data))

	require.NoError(t, bucket.Delete(ctx, "replays/abc.hlt"))
	_, err = bucket.Download(ctx, "replays/abc.hlt")
	assert.Error(t, err)
}

func TestNewObjectKey(t *testing.T) {
	key := NewObjectKey("replays", "hlt")
	assert.True(t, strings.HasPrefix(key, "replays/"))
	assert.True(t, strings.HasSuffix(key, ".hlt"))

	// Dot-prefixed extensions are accepted as-is.
	assert.True(t, strings.HasSuffix(NewObjectKey("logs", ".log"), ".log"))

	// No prefix, no directory separator.
	assert.NotContains(t, NewObjectKey("", "zip"), "/")

	assert.NotEqual(t, NewObjectKey("replays", "hlt"), NewObjectKey("replays", "hlt"))
}
