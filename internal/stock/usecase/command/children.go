package command

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/stockly/stock-management/internal/stock/domain"
)

// validateReferences confirms the input against the current catalog snapshot:
// every referenced product exists, every non-nil variant exists and belongs
// to its enclosing product, and no requested quantity exceeds the variant's
// available stock. It runs over the full input before any row is written.
func validateReferences(ctx context.Context, catalog domain.CatalogReader, tenantID string, input domain.StockWriteInput) error {
	productIDs := make([]string, 0, len(input.Products))
	seenProducts := make(map[string]struct{}, len(input.Products))
	for _, p := range input.Products {
		if _, ok := seenProducts[p.ProductID]; ok {
			continue
		}
		seenProducts[p.ProductID] = struct{}{}
		productIDs = append(productIDs, p.ProductID)
	}
	if len(productIDs) == 0 {
		return nil
	}

	products, err := catalog.GetProducts(ctx, tenantID, productIDs)
	if err != nil {
		return fmt.Errorf("failed to fetch products: %w", err)
	}
	for _, p := range input.Products {
		if _, ok := products[p.ProductID]; !ok {
			return domain.NewBusinessError(domain.CodeProductNotFound).
				WithData("ProductId", p.ProductID)
		}
	}

	variantIDs := make([]string, 0)
	seenVariants := make(map[string]struct{})
	for _, p := range input.Products {
		for _, v := range p.Variants {
			if v.ProductVariantID == nil {
				continue
			}
			if _, ok := seenVariants[*v.ProductVariantID]; ok {
				continue
			}
			seenVariants[*v.ProductVariantID] = struct{}{}
			variantIDs = append(variantIDs, *v.ProductVariantID)
		}
	}

	variants := map[string]domain.CatalogVariant{}
	if len(variantIDs) > 0 {
		variants, err = catalog.GetVariants(ctx, tenantID, variantIDs)
		if err != nil {
			return fmt.Errorf("failed to fetch variants: %w", err)
		}
	}

	for _, p := range input.Products {
		for _, v := range p.Variants {
			// Unspecified-variant lines are exempt from the variant checks.
			if v.ProductVariantID == nil {
				continue
			}
			ve, ok := variants[*v.ProductVariantID]
			if !ok {
				return domain.NewBusinessError(domain.CodeVariantNotFound).
					WithData("ProductVariantId", *v.ProductVariantID)
			}
			if ve.ProductID != p.ProductID {
				return domain.NewBusinessError(domain.CodeProductVariantMismatch).
					WithData("ProductId", p.ProductID).
					WithData("ProductVariantId", *v.ProductVariantID)
			}
			if v.Quantity > ve.StockQuantity {
				return domain.NewBusinessError(domain.CodeQuantityExceedsVariantStock).
					WithData("ProductId", p.ProductID).
					WithData("ProductVariantId", *v.ProductVariantID).
					WithData("RequestedQuantity", v.Quantity).
					WithData("AvailableStock", ve.StockQuantity)
			}
		}
	}

	return nil
}

// buildChildLines materializes the child rows for a validated input with
// fresh identities, preserving input order.
func buildChildLines(tenantID, stockID string, input domain.StockWriteInput) []domain.StockProductLine {
	lines := make([]domain.StockProductLine, 0, len(input.Products))
	for i, p := range input.Products {
		line := domain.StockProductLine{
			ID:        uuid.NewString(),
			TenantID:  tenantID,
			StockID:   stockID,
			ProductID: p.ProductID,
			Position:  i,
		}
		for j, v := range p.Variants {
			line.VariantLines = append(line.VariantLines, domain.StockVariantLine{
				ID:               uuid.NewString(),
				TenantID:         tenantID,
				StockProductID:   line.ID,
				ProductVariantID: v.ProductVariantID,
				Quantity:         v.Quantity,
				Position:         j,
			})
		}
		lines = append(lines, line)
	}
	return lines
}
