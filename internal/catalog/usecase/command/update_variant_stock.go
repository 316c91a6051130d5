package command

import (
	"context"

	"github.com/stockly/stock-management/internal/catalog/domain"
)

// UpdateVariantStockCommand represents the command to set a variant's
// available stock quantity
type UpdateVariantStockCommand struct {
	TenantID  string
	ProductID string
	VariantID string
	Quantity  int
}

// UpdateVariantStockHandler handles stock quantity updates
type UpdateVariantStockHandler struct {
	repo domain.ProductRepository
}

// NewUpdateVariantStockHandler creates a new update variant stock handler
func NewUpdateVariantStockHandler(repo domain.ProductRepository) *UpdateVariantStockHandler {
	return &UpdateVariantStockHandler{repo: repo}
}

// Handle executes the update variant stock command
func (h *UpdateVariantStockHandler) Handle(ctx context.Context, cmd UpdateVariantStockCommand) error {
	if cmd.Quantity < 0 {
		return domain.NewBusinessError(domain.CodeStockNegative)
	}
	return h.repo.UpdateVariantStock(ctx, cmd.TenantID, cmd.ProductID, cmd.VariantID, cmd.Quantity)
}
