package service

import "errors"

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCartLineNotFound = errors.New("cart line not found")
	ErrCatalogNotLoaded = errors.New("catalog not loaded")
)
