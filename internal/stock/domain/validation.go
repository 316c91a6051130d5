package domain

import "strings"

// MaxNameLength is the maximum length of a stock name.
const MaxNameLength = 128

// ValidateStockInput rejects a locally malformed stock write before any I/O.
// Checks run in a fixed order: the name over the whole input first, then
// products in input order, variants in input order, with the quantity check
// evaluated before the duplicate check within each line. The first violation
// encountered wins.
func ValidateStockInput(input StockWriteInput) error {
	trimmed := strings.TrimSpace(input.Name)
	if trimmed == "" {
		return NewBusinessError(CodeNameRequired)
	}
	if len(trimmed) > MaxNameLength {
		return NewBusinessError(CodeNameTooLong).WithData("MaxLength", MaxNameLength)
	}

	for _, p := range input.Products {
		// Within one product entry a nil variant id is a duplicable key:
		// two unspecified-variant lines are a duplicate.
		seen := make(map[string]struct{}, len(p.Variants))
		for _, v := range p.Variants {
			if v.Quantity < 0 {
				return NewBusinessError(CodeQuantityNegative)
			}
			key := ""
			if v.ProductVariantID != nil {
				key = *v.ProductVariantID
			}
			if _, dup := seen[key]; dup {
				return NewBusinessError(CodeDuplicateVariantInProduct)
			}
			seen[key] = struct{}{}
		}
	}

	return nil
}
