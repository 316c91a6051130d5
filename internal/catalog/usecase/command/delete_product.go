package command

import (
	"context"

	"github.com/stockly/stock-management/internal/catalog/domain"
)

// DeleteProductCommand represents the command to delete a product
type DeleteProductCommand struct {
	TenantID string
	ID       string
}

// DeleteProductHandler handles product deletion
type DeleteProductHandler struct {
	repo domain.ProductRepository
}

// NewDeleteProductHandler creates a new delete product handler
func NewDeleteProductHandler(repo domain.ProductRepository) *DeleteProductHandler {
	return &DeleteProductHandler{repo: repo}
}

// Handle executes the delete product command. Variants and options are
// removed with the product; stock aggregates referencing it keep their
// lines and degrade to nil display fields on read.
func (h *DeleteProductHandler) Handle(ctx context.Context, cmd DeleteProductCommand) error {
	if _, err := h.repo.FindByID(ctx, cmd.TenantID, cmd.ID); err != nil {
		return err
	}
	return h.repo.Delete(ctx, cmd.TenantID, cmd.ID)
}
