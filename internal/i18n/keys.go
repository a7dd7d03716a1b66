package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates a body that could not be decoded.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyValidation indicates a decoded body with invalid fields.
	ErrKeyValidation = "error.validation"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyProductNotFound indicates an unknown product ID.
	ErrKeyProductNotFound = "error.product_not_found"
	// ErrKeyProformaNotFound indicates an unknown proforma ID.
	ErrKeyProformaNotFound = "error.proforma_not_found"
	// ErrKeyDuplicateProduct indicates a product ID that already exists.
	ErrKeyDuplicateProduct = "error.duplicate_product"
	// ErrKeyInvalidProduct indicates a product the packing math cannot use.
	ErrKeyInvalidProduct = "error.invalid_product"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyConflict indicates a conflict with current state.
	ErrKeyConflict = "error.conflict"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
	// ErrKeyServiceUnavailable indicates the database is unreachable.
	ErrKeyServiceUnavailable = "error.service_unavailable"
	// ErrKeyCatalogUnavailable indicates the catalog snapshot could not be loaded.
	ErrKeyCatalogUnavailable = "error.catalog_unavailable"
	// ErrKeyFileRequired indicates a missing multipart file.
	ErrKeyFileRequired = "error.file_required"
	// ErrKeyFileTooLarge indicates an upload over the size limit.
	ErrKeyFileTooLarge = "error.file_too_large"
	// ErrKeyInvalidSpreadsheet indicates an unreadable xlsx file.
	ErrKeyInvalidSpreadsheet = "error.invalid_spreadsheet"
	// ErrKeyExportFailed indicates the workbook could not be rendered.
	ErrKeyExportFailed = "error.export_failed"
)
