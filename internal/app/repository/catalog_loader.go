package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/ikkim/udonggeum-storefront/internal/app/model"
	"github.com/ikkim/udonggeum-storefront/internal/storage"
	"github.com/ikkim/udonggeum-storefront/pkg/logger"
)

// CatalogLoader fetches the whole catalog document. There is no retry and
// no caching at this layer.
type CatalogLoader interface {
	Load(ctx context.Context) ([]model.Product, error)
	Source() string
}

// ObjectGetter is the part of the S3 storage the loader needs.
type ObjectGetter interface {
	GetObject(ctx context.Context, bucket, key string) ([]byte, error)
}

// NewCatalogLoader picks a loader from the source string: http(s) URLs are
// fetched over HTTP, s3:// URIs through objects, anything else is read from
// the local filesystem.
func NewCatalogLoader(source string, timeout time.Duration, objects ObjectGetter) (CatalogLoader, error) {
	switch {
	case strings.HasPrefix(source, "http://"), strings.HasPrefix(source, "https://"):
		return &httpCatalogLoader{
			url:    source,
			client: &http.Client{Timeout: timeout},
		}, nil
	case strings.HasPrefix(source, "s3://"):
		if objects == nil {
			return nil, fmt.Errorf("catalog source %s requires s3 storage", source)
		}
		bucket, key, err := storage.ParseS3URI(source)
		if err != nil {
			return nil, err
		}
		return &s3CatalogLoader{source: source, bucket: bucket, key: key, objects: objects}, nil
	default:
		return &fileCatalogLoader{path: source}, nil
	}
}

type httpCatalogLoader struct {
	url    string
	client *http.Client
}

func (l *httpCatalogLoader) Source() string { return l.url }

func (l *httpCatalogLoader) Load(ctx context.Context) ([]model.Product, error) {
	logger.Debug("Fetching catalog over HTTP", logger.Fields{"url": l.url})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch catalog: unexpected status %d", resp.StatusCode)
	}
	return DecodeCatalog(resp.Body)
}

type fileCatalogLoader struct {
	path string
}

func (l *fileCatalogLoader) Source() string { return l.path }

func (l *fileCatalogLoader) Load(ctx context.Context) ([]model.Product, error) {
	logger.Debug("Reading catalog file", logger.Fields{"path": l.path})

	f, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return DecodeCatalog(f)
}

type s3CatalogLoader struct {
	source  string
	bucket  string
	key     string
	objects ObjectGetter
}

func (l *s3CatalogLoader) Source() string { return l.source }

func (l *s3CatalogLoader) Load(ctx context.Context) ([]model.Product, error) {
	logger.Debug("Fetching catalog from S3", logger.Fields{"bucket": l.bucket, "key": l.key})

	body, err := l.objects.GetObject(ctx, l.bucket, l.key)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	return DecodeCatalog(bytes.NewReader(body))
}

// DecodeCatalog parses a JSON array of products and fills in the default
// currency.
func DecodeCatalog(r io.Reader) ([]model.Product, error) {
	var products []model.Product
	if err := json.NewDecoder(r).Decode(&products); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	for i := range products {
		if products[i].Currency == "" {
			products[i].Currency = model.DefaultCurrency
		}
	}
	return products, nil
}
