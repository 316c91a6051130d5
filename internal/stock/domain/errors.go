package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Stable business error codes surfaced to callers.
const (
	CodeNameRequired                = "Stock.NameRequired"
	CodeNameTooLong                 = "Stock.NameTooLong"
	CodeQuantityNegative            = "Stock.QuantityNegative"
	CodeDuplicateVariantInProduct   = "Stock.DuplicateVariantInProduct"
	CodeProductNotFound             = "Stock.ProductNotFound"
	CodeVariantNotFound             = "Stock.VariantNotFound"
	CodeProductVariantMismatch      = "Stock.ProductVariantMismatch"
	CodeQuantityExceedsVariantStock = "Stock.QuantityExceedsVariantStock"
	CodeDuplicateName               = "Stock.DuplicateName"
)

// ErrStockNotFound indicates the requested stock aggregate does not exist
// in the caller's tenant.
var ErrStockNotFound = errors.New("stock not found")

// ErrConcurrentModification indicates the root row changed between read and
// write. The update path retries exactly once on this error.
var ErrConcurrentModification = errors.New("stock was modified concurrently")

// BusinessError is a typed validation or business-rule failure carrying a
// stable string code plus structured key/value context.
type BusinessError struct {
	Code string
	Data map[string]interface{}
}

// NewBusinessError creates a business error with the given code
func NewBusinessError(code string) *BusinessError {
	return &BusinessError{Code: code, Data: map[string]interface{}{}}
}

// WithData attaches a context value and returns the error for chaining
func (e *BusinessError) WithData(key string, value interface{}) *BusinessError {
	e.Data[key] = value
	return e
}

func (e *BusinessError) Error() string {
	if len(e.Data) == 0 {
		return e.Code
	}
	keys := make([]string, 0, len(e.Data))
	for k := range e.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, e.Data[k]))
	}
	return e.Code + " [" + strings.Join(parts, " ") + "]"
}

// AsBusinessError unwraps err into a BusinessError, or returns nil
func AsBusinessError(err error) *BusinessError {
	var be *BusinessError
	if errors.As(err, &be) {
		return be
	}
	return nil
}
