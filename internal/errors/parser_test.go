package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/ikkim/udonggeum-storefront/internal/app/service"
	"github.com/stretchr/testify/assert"
)

func TestParseError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "product", err: service.ErrProductNotFound, wantStatus: http.StatusNotFound, wantCode: ProductNotFound},
		{name: "wrapped cart line", err: fmt.Errorf("remove: %w", service.ErrCartLineNotFound), wantStatus: http.StatusNotFound, wantCode: CartLineNotFound},
		{name: "catalog", err: service.ErrCatalogNotLoaded, wantStatus: http.StatusServiceUnavailable, wantCode: CatalogUnavailable},
		{name: "unknown", err: fmt.Errorf("disk on fire"), wantStatus: http.StatusInternalServerError, wantCode: InternalServerError},
		{name: "nil", err: nil, wantStatus: http.StatusInternalServerError, wantCode: InternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := ParseError(tt.err)
			assert.Equal(t, tt.wantStatus, info.Status)
			assert.Equal(t, tt.wantCode, info.Code)
			assert.NotContains(t, info.Message, "disk")
		})
	}
}
