package domain

import "strings"

// MaxNameLength caps product names.
const MaxNameLength = 128

// ValidateProductInput checks structural rules on a product payload before
// anything is written.
func ValidateProductInput(input ProductWriteInput) error {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return NewBusinessError(CodeNameRequired)
	}
	if len(name) > MaxNameLength {
		return NewBusinessError(CodeNameTooLong).WithData("MaxLength", MaxNameLength)
	}
	if input.BasePrice != nil && *input.BasePrice < 0 {
		return NewBusinessError(CodePriceNegative)
	}
	if input.Status != "" && input.Status != StatusActive && input.Status != StatusInactive {
		return NewBusinessError(CodeInvalidStatus).WithData("Status", input.Status)
	}
	for _, variant := range input.Variants {
		if err := ValidateVariantInput(variant); err != nil {
			return err
		}
	}
	return nil
}

// ValidateVariantInput checks structural rules on a variant payload.
func ValidateVariantInput(input VariantWriteInput) error {
	if input.Price < 0 {
		return NewBusinessError(CodeVariantPriceNeg)
	}
	if input.StockQuantity < 0 {
		return NewBusinessError(CodeStockNegative)
	}
	seen := make(map[string]struct{}, len(input.Options))
	for _, opt := range input.Options {
		name := strings.TrimSpace(opt.Name)
		if name == "" {
			return NewBusinessError(CodeOptionNameEmpty)
		}
		key := strings.ToLower(name)
		if _, ok := seen[key]; ok {
			return NewBusinessError(CodeDuplicateOption).WithData("Name", name)
		}
		seen[key] = struct{}{}
	}
	return nil
}
