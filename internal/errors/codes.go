package errors

// Error codes returned in JSON API bodies.
// Format: CATEGORY_SPECIFIC_DETAIL
const (
	// ==================== VALIDATION_ ====================
	ValidationInvalidInput = "VALIDATION_INVALID_INPUT"
	ValidationInvalidIndex = "VALIDATION_INVALID_INDEX"

	// ==================== PRODUCT_ ====================
	ProductNotFound = "PRODUCT_NOT_FOUND"

	// ==================== CATALOG_ ====================
	CatalogUnavailable = "CATALOG_UNAVAILABLE"

	// ==================== CART_ ====================
	CartLineNotFound = "CART_LINE_NOT_FOUND"
	CartStoreFailed  = "CART_STORE_FAILED"

	// ==================== RATE_ ====================
	RateLimited = "RATE_LIMITED"

	// ==================== SERVER_ ====================
	InternalServerError = "SERVER_INTERNAL_ERROR"
)
