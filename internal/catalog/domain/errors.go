package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Business error codes surfaced to API clients.
const (
	CodeNameRequired      = "Product.NameRequired"
	CodeNameTooLong       = "Product.NameTooLong"
	CodePriceNegative     = "Product.PriceNegative"
	CodeInvalidStatus     = "Product.InvalidStatus"
	CodeStockNegative     = "Product.VariantStockNegative"
	CodeVariantPriceNeg   = "Product.VariantPriceNegative"
	CodeOptionNameEmpty   = "Product.OptionNameRequired"
	CodeDuplicateOption   = "Product.DuplicateOptionName"
)

// Sentinel errors for missing aggregates.
var (
	ErrProductNotFound = errors.New("product not found")
	ErrVariantNotFound = errors.New("product variant not found")
)

// BusinessError is a domain rule violation carrying a stable code and
// optional structured data for the client.
type BusinessError struct {
	Code string
	Data map[string]interface{}
}

// NewBusinessError creates a business error with the given code.
func NewBusinessError(code string) *BusinessError {
	return &BusinessError{Code: code}
}

// WithData attaches a key/value pair to the error and returns it.
func (e *BusinessError) WithData(key string, value interface{}) *BusinessError {
	if e.Data == nil {
		e.Data = make(map[string]interface{})
	}
	e.Data[key] = value
	return e
}

// Error renders the code with its data keys in deterministic order.
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

// AsBusinessError unwraps err into a BusinessError, or nil.
func AsBusinessError(err error) *BusinessError {
	var be *BusinessError
	if errors.As(err, &be) {
		return be
	}
	return nil
}
