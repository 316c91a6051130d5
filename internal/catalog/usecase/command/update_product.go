package command

import (
	"context"
	"strings"

	"github.com/stockly/stock-management/internal/catalog/domain"
)

// UpdateProductCommand represents the command to update a product.
// A non-nil Variants slice in the input replaces the existing variant set.
type UpdateProductCommand struct {
	TenantID string
	ID       string
	Input    domain.ProductWriteInput
}

// UpdateProductHandler handles product updates
type UpdateProductHandler struct {
	repo domain.ProductRepository
}

// NewUpdateProductHandler creates a new update product handler
func NewUpdateProductHandler(repo domain.ProductRepository) *UpdateProductHandler {
	return &UpdateProductHandler{repo: repo}
}

// Handle executes the update product command
func (h *UpdateProductHandler) Handle(ctx context.Context, cmd UpdateProductCommand) (*domain.Product, error) {
	if err := domain.ValidateProductInput(cmd.Input); err != nil {
		return nil, err
	}

	product, err := h.repo.FindByID(ctx, cmd.TenantID, cmd.ID)
	if err != nil {
		return nil, err
	}

	product.Name = strings.TrimSpace(cmd.Input.Name)
	product.Description = cmd.Input.Description
	product.BasePrice = cmd.Input.BasePrice
	product.Category = cmd.Input.Category
	if cmd.Input.Status != "" {
		product.Status = cmd.Input.Status
	}

	if cmd.Input.Variants != nil {
		variants := buildVariants(cmd.TenantID, product.ID, cmd.Input.Variants)
		if err := h.repo.ReplaceVariants(ctx, cmd.TenantID, product.ID, variants); err != nil {
			return nil, err
		}
		product.Variants = variants
		product.HasVariants = len(variants) > 0
	}

	if err := h.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}
