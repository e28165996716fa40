package repository

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catalogJSON = `[
  {"id":"a","name":"Bague Lotus","category":"ring","metal":"gold","enamel_color":"blue","price":10,"currency":"EUR","thumbnail":"img/a.jpg","images":["img/a1.jpg","img/a2.jpg"],"stock":3,"description":"Émail bleu"},
  {"id":"b","name":"Jonc Azur","category":"bracelet","metal":"silver","enamel_color":"red","price":20,"thumbnail":"img/b.jpg"}
]`

type fakeObjects struct {
	body   []byte
	err    error
	bucket string
	key    string
}

func (f *fakeObjects) GetObject(ctx context.Context, bucket, key string) ([]byte, error) {
	f.bucket, f.key = bucket, key
	return f.body, f.err
}

func TestDecodeCatalog(t *testing.T) {
	products, err := DecodeCatalog(strings.NewReader(catalogJSON))
	require.NoError(t, err)
	require.Len(t, products, 2)

	assert.Equal(t, "a", products[0].ID)
	assert.Equal(t, "blue", products[0].EnamelColor)
	require.NotNil(t, products[0].Stock)
	assert.Equal(t, 3, *products[0].Stock)
	assert.Equal(t, []string{"img/a1.jpg", "img/a2.jpg"}, products[0].Gallery())

	assert.Equal(t, "EUR", products[1].Currency)
	assert.Nil(t, products[1].Stock)
	assert.Equal(t, []string{"img/b.jpg"}, products[1].Gallery())
}

func TestDecodeCatalog_Malformed(t *testing.T) {
	_, err := DecodeCatalog(strings.NewReader(`{"id":"a"}`))
	assert.Error(t, err)
}

func TestHTTPCatalogLoader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/data/products.json" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(catalogJSON))
	}))
	defer srv.Close()

	loader, err := NewCatalogLoader(srv.URL+"/data/products.json", time.Second, nil)
	require.NoError(t, err)

	products, err := loader.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, 2)

	missing, err := NewCatalogLoader(srv.URL+"/missing.json", time.Second, nil)
	require.NoError(t, err)
	_, err = missing.Load(context.Background())
	assert.ErrorContains(t, err, "unexpected status 404")
}

func TestFileCatalogLoader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.json")
	require.NoError(t, os.WriteFile(path, []byte(catalogJSON), 0o644))

	loader, err := NewCatalogLoader(path, time.Second, nil)
	require.NoError(t, err)
	assert.Equal(t, path, loader.Source())

	products, err := loader.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, 2)

	gone, _ := NewCatalogLoader(filepath.Join(t.TempDir(), "nope.json"), time.Second, nil)
	_, err = gone.Load(context.Background())
	assert.Error(t, err)
}

func TestS3CatalogLoader(t *testing.T) {
	objects := &fakeObjects{body: []byte(catalogJSON)}

	loader, err := NewCatalogLoader("s3://bijoux/catalog/products.json", time.Second, objects)
	require.NoError(t, err)

	products, err := loader.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Equal(t, "bijoux", objects.bucket)
	assert.Equal(t, "catalog/products.json", objects.key)

	objects.err = errors.New("access denied")
	_, err = loader.Load(context.Background())
	assert.ErrorContains(t, err, "access denied")
}

func TestS3CatalogLoader_RequiresStorage(t *testing.T) {
	_, err := NewCatalogLoader("s3://bijoux/products.json", time.Second, nil)
	assert.Error(t, err)
}

func TestFileCatalogLoader_BundledCatalog(t *testing.T) {
	loader, err := NewCatalogLoader(filepath.Join("..", "..", "..", "data", "products.json"), time.Second, nil)
	require.NoError(t, err)

	products, err := loader.Load(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, products)

	seen := make(map[string]bool)
	for _, p := range products {
		assert.NotEmpty(t, p.ID)
		assert.False(t, seen[p.ID], "duplicate id %s", p.ID)
		seen[p.ID] = true
		assert.Equal(t, "EUR", p.Currency)
	}
}
