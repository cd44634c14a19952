// Package apierror provides standardized error response structures for the API.
// All errors returned to clients go through this package to ensure consistency
// and to prevent leaking internal details (stack traces, DB errors, etc.).
package apierror

// Stable machine-readable error codes. Clients match on these; the detail
// text is for humans and may change.
const (
	CodeValidacion    = "VALIDATION_ERROR"
	CodeNoAutenticado = "NOT_AUTHENTICATED"
	CodeNoAutorizado  = "FORBIDDEN"
	CodeNoEncontrado  = "NOT_FOUND"
	CodeConflicto     = "CONFLICT"
	CodeReferencia    = "REFERENCE_NOT_FOUND"
	CodeInterno       = "INTERNAL_ERROR"
)

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Code   string `json:"code"`
	Detail string `json:"detail"`
}

func New(code, msg string) *APIError {
	return &APIError{Code: code, Detail: msg}
}

// ValidationError wraps multiple field errors.
type ValidationError struct {
	Code   string            `json:"code"`
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Code: CodeValidacion, Detail: "Error de validacion", Fields: fields}
}
