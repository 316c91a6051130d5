package query

import (
	"context"
	"fmt"

	"github.com/stockly/stock-management/internal/stock/domain"
)

const (
	defaultMaxResultCount = 10
	maxMaxResultCount     = 1000
)

// ListStocksQuery represents the paged summary listing query
type ListStocksQuery struct {
	TenantID       string
	SkipCount      int
	MaxResultCount int
}

// ListStocksHandler handles paged stock summary listings
type ListStocksHandler struct {
	repo domain.StockRepository
}

// NewListStocksHandler creates a new list stocks handler
func NewListStocksHandler(repo domain.StockRepository) *ListStocksHandler {
	return &ListStocksHandler{repo: repo}
}

// Handle returns {id, name} summaries ordered by creation time descending.
func (h *ListStocksHandler) Handle(ctx context.Context, q ListStocksQuery) (*domain.PagedStockSummaries, error) {
	if q.SkipCount < 0 {
		q.SkipCount = 0
	}
	if q.MaxResultCount <= 0 {
		q.MaxResultCount = defaultMaxResultCount
	}
	if q.MaxResultCount > maxMaxResultCount {
		q.MaxResultCount = maxMaxResultCount
	}

	stocks, total, err := h.repo.List(ctx, q.TenantID, q.SkipCount, q.MaxResultCount)
	if err != nil {
		return nil, fmt.Errorf("failed to list stocks: %w", err)
	}

	items := make([]domain.StockSummary, 0, len(stocks))
	for _, s := range stocks {
		items = append(items, domain.StockSummary{ID: s.ID, Name: s.Name})
	}

	return &domain.PagedStockSummaries{TotalCount: total, Items: items}, nil
}
