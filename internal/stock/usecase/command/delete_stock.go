package command

import (
	"context"
	"fmt"

	"github.com/stockly/stock-management/internal/stock/domain"
)

// DeleteStockCommand represents the command to delete a stock aggregate
type DeleteStockCommand struct {
	TenantID string
	ID       string
}

// DeleteStockHandler handles delete stock commands
type DeleteStockHandler struct {
	repo domain.StockRepository
}

// NewDeleteStockHandler creates a new delete stock handler
func NewDeleteStockHandler(repo domain.StockRepository) *DeleteStockHandler {
	return &DeleteStockHandler{repo: repo}
}

// Handle executes the delete stock command, removing variant lines, then
// product lines, then the root.
func (h *DeleteStockHandler) Handle(ctx context.Context, cmd DeleteStockCommand) error {
	if _, err := h.repo.FindByID(ctx, cmd.TenantID, cmd.ID); err != nil {
		return err
	}
	if err := h.repo.Delete(ctx, cmd.TenantID, cmd.ID); err != nil {
		return fmt.Errorf("failed to delete stock: %w", err)
	}
	return nil
}
