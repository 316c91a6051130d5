package command

import (
	"strings"

	"github.com/google/uuid"

	"github.com/stockly/stock-management/internal/catalog/domain"
)

// buildVariants materializes variant rows (with option rows) from write
// inputs, preserving input order.
func buildVariants(tenantID, productID string, inputs []domain.VariantWriteInput) []domain.ProductVariant {
	variants := make([]domain.ProductVariant, 0, len(inputs))
	for _, input := range inputs {
		variants = append(variants, buildVariant(tenantID, productID, input))
	}
	return variants
}

func buildVariant(tenantID, productID string, input domain.VariantWriteInput) domain.ProductVariant {
	variant := domain.ProductVariant{
		ID:            uuid.NewString(),
		TenantID:      tenantID,
		ProductID:     productID,
		SKU:           normalizeSKU(input.SKU),
		Price:         input.Price,
		StockQuantity: input.StockQuantity,
	}
	variant.Options = buildOptions(variant.ID, input.Options)
	return variant
}

func buildOptions(variantID string, inputs []domain.OptionInput) []domain.VariantOption {
	options := make([]domain.VariantOption, 0, len(inputs))
	for i, input := range inputs {
		options = append(options, domain.VariantOption{
			ID:               uuid.NewString(),
			ProductVariantID: variantID,
			Name:             strings.TrimSpace(input.Name),
			Value:            input.Value,
			Position:         i,
		})
	}
	return options
}

func normalizeSKU(sku *string) *string {
	if sku == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*sku)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
