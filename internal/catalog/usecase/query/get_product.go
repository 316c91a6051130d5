package query

import (
	"context"

	"github.com/stockly/stock-management/internal/catalog/domain"
)

// GetProductQuery represents the query to get a product with its variants
type GetProductQuery struct {
	TenantID string
	ID       string
}

// GetProductHandler handles get product query
type GetProductHandler struct {
	repo domain.ProductRepository
}

// NewGetProductHandler creates a new get product handler
func NewGetProductHandler(repo domain.ProductRepository) *GetProductHandler {
	return &GetProductHandler{repo: repo}
}

// Handle executes the get product query
func (h *GetProductHandler) Handle(ctx context.Context, query GetProductQuery) (*domain.Product, error) {
	return h.repo.FindByID(ctx, query.TenantID, query.ID)
}
