package query

import (
	"context"
	"fmt"

	"github.com/stockly/stock-management/internal/stock/domain"
)

// GetStockQuery represents the query for one stock aggregate detail
type GetStockQuery struct {
	TenantID string
	ID       string
}

// GetStockHandler hydrates the denormalized detail view of a stock
type GetStockHandler struct {
	repo    domain.StockRepository
	catalog domain.CatalogReader
}

// NewGetStockHandler creates a new get stock handler
func NewGetStockHandler(repo domain.StockRepository, catalog domain.CatalogReader) *GetStockHandler {
	return &GetStockHandler{repo: repo, catalog: catalog}
}

// Handle loads the aggregate and joins in product names and variant SKUs.
// Resolution is best-effort: a reference left dangling by a later catalog
// delete degrades to a nil display field instead of failing the read.
func (h *GetStockHandler) Handle(ctx context.Context, q GetStockQuery) (*domain.StockDetail, error) {
	stock, err := h.repo.FindByID(ctx, q.TenantID, q.ID)
	if err != nil {
		return nil, err
	}

	detail := &domain.StockDetail{
		ID:       stock.ID,
		Name:     stock.Name,
		Products: []domain.StockProductDetail{},
	}

	productLines, err := h.repo.ListProductLines(ctx, q.TenantID, stock.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load product lines: %w", err)
	}
	if len(productLines) == 0 {
		return detail, nil
	}

	productIDs := make([]string, 0, len(productLines))
	seen := make(map[string]struct{}, len(productLines))
	for _, line := range productLines {
		if _, ok := seen[line.ProductID]; ok {
			continue
		}
		seen[line.ProductID] = struct{}{}
		productIDs = append(productIDs, line.ProductID)
	}
	products, err := h.catalog.GetProducts(ctx, q.TenantID, productIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve product names: %w", err)
	}

	for _, line := range productLines {
		productDetail := domain.StockProductDetail{
			ProductID: line.ProductID,
			Variants:  []domain.StockVariantDetail{},
		}
		if p, ok := products[line.ProductID]; ok {
			name := p.Name
			productDetail.ProductName = &name
		}

		variantLines, err := h.repo.ListVariantLines(ctx, q.TenantID, line.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load variant lines: %w", err)
		}

		variants := map[string]domain.CatalogVariant{}
		if ids := distinctVariantIDs(variantLines); len(ids) > 0 {
			variants, err = h.catalog.GetVariants(ctx, q.TenantID, ids)
			if err != nil {
				return nil, fmt.Errorf("failed to resolve variant skus: %w", err)
			}
		}

		for _, vl := range variantLines {
			variantDetail := domain.StockVariantDetail{
				ProductVariantID: vl.ProductVariantID,
				Quantity:         vl.Quantity,
			}
			if vl.ProductVariantID != nil {
				if ve, ok := variants[*vl.ProductVariantID]; ok {
					variantDetail.VariantSku = ve.SKU
				}
			}
			productDetail.Variants = append(productDetail.Variants, variantDetail)
		}

		detail.Products = append(detail.Products, productDetail)
	}

	return detail, nil
}

func distinctVariantIDs(lines []domain.StockVariantLine) []string {
	ids := make([]string, 0, len(lines))
	seen := make(map[string]struct{}, len(lines))
	for _, l := range lines {
		if l.ProductVariantID == nil {
			continue
		}
		if _, ok := seen[*l.ProductVariantID]; ok {
			continue
		}
		seen[*l.ProductVariantID] = struct{}{}
		ids = append(ids, *l.ProductVariantID)
	}
	return ids
}
