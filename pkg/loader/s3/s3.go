package s3

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"golang.org/x/sync/singleflight"

	"netrca/internal/util"
	"netrca/pkg/loader"
)

// Transient S3 reads are retried this many times before giving up.
const maxFetchTries = 3

// ObjectGetter is the slice of the S3 API the loader needs. *s3.Client
// satisfies it.
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3DocumentLoader is a loader.ContentLoader that retrieves document bytes
// from an S3 bucket using the AWS SDK v2. Fetched objects are cached per key
// and concurrent fetches of the same key are collapsed through singleflight.
type S3DocumentLoader struct {
	bucket string
	client ObjectGetter

	cache   map[string][]byte
	cacheMu sync.RWMutex
	group   singleflight.Group
}

// NewS3DocumentLoaderWithClient creates an S3DocumentLoader reusing an
// existing, preconfigured client.
func NewS3DocumentLoaderWithClient(bucket string, client ObjectGetter) *S3DocumentLoader {
	return &S3DocumentLoader{
		bucket: bucket,
		client: client,
		cache:  make(map[string][]byte),
	}
}

// Load implements the loader.ContentLoader interface. The document's Key
// names the S3 object. Transient fetch errors are retried before the load
// fails.
func (l *S3DocumentLoader) Load(ctx context.Context, doc loader.Document) ([]byte, error) {
	l.cacheMu.RLock()
	cached, ok := l.cache[doc.Key]
	l.cacheMu.RUnlock()
	if ok {
		return cached, nil
	}

	data, err, _ := l.group.Do(doc.Key, func() (any, error) {
		content, err := util.RetryWithContext(ctx, maxFetchTries, func(ctx context.Context) ([]byte, error) {
			return l.fetch(ctx, doc.Key)
		})
		if err != nil {
			return nil, err
		}

		l.cacheMu.Lock()
		l.cache[doc.Key] = content
		l.cacheMu.Unlock()
		return content, nil
	})
	if err != nil {
		return nil, err
	}

	return data.([]byte), nil
}

func (l *S3DocumentLoader) fetch(ctx context.Context, key string) ([]byte, error) {
	result, err := l.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(l.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get object %q: %w", key, err)
	}
	defer result.Body.Close()

	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, result.Body); err != nil {
		return nil, fmt.Errorf("failed to read object %q: %w", key, err)
	}

	return buf.Bytes(), nil
}
