package errors

import (
	"errors"
	"net/http"

	"github.com/ikkim/udonggeum-storefront/internal/app/service"
)

// ErrorInfo is the HTTP rendering of an error.
type ErrorInfo struct {
	Status  int
	Code    string
	Message string
}

// ParseError maps service errors to status, code and message. Unknown errors
// are reported as internal without leaking their text.
func ParseError(err error) ErrorInfo {
	switch {
	case err == nil:
		return ErrorInfo{Status: http.StatusInternalServerError, Code: InternalServerError, Message: "Une erreur est survenue"}
	case errors.Is(err, service.ErrProductNotFound):
		return ErrorInfo{Status: http.StatusNotFound, Code: ProductNotFound, Message: "Produit introuvable"}
	case errors.Is(err, service.ErrCartLineNotFound):
		return ErrorInfo{Status: http.StatusNotFound, Code: CartLineNotFound, Message: "Article du panier introuvable"}
	case errors.Is(err, service.ErrCatalogNotLoaded):
		return ErrorInfo{Status: http.StatusServiceUnavailable, Code: CatalogUnavailable, Message: "Catalogue indisponible"}
	default:
		return ErrorInfo{Status: http.StatusInternalServerError, Code: InternalServerError, Message: "Une erreur est survenue, réessayez plus tard"}
	}
}
