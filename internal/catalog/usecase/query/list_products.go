package query

import (
	"context"

	"github.com/stockly/stock-management/internal/catalog/domain"
)

const (
	defaultMaxResultCount = 10
	maxMaxResultCount     = 1000
)

// ListProductsQuery represents the query to list products with filters
type ListProductsQuery struct {
	TenantID string
	Filter   domain.ProductFilter
}

// ListProductsHandler handles list products query
type ListProductsHandler struct {
	repo domain.ProductRepository
}

// NewListProductsHandler creates a new list products handler
func NewListProductsHandler(repo domain.ProductRepository) *ListProductsHandler {
	return &ListProductsHandler{repo: repo}
}

// Handle executes the list products query
func (h *ListProductsHandler) Handle(ctx context.Context, query ListProductsQuery) (*domain.PagedProducts, error) {
	filter := query.Filter
	if filter.MaxResultCount <= 0 {
		filter.MaxResultCount = defaultMaxResultCount
	}
	if filter.MaxResultCount > maxMaxResultCount {
		filter.MaxResultCount = maxMaxResultCount
	}
	if filter.SkipCount < 0 {
		filter.SkipCount = 0
	}
	return h.repo.List(ctx, query.TenantID, filter)
}
