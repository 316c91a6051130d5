package command

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/stockly/stock-management/internal/catalog/domain"
)

// CreateProductCommand represents the command to create a product
type CreateProductCommand struct {
	TenantID string
	Input    domain.ProductWriteInput
}

// CreateProductHandler handles product creation
type CreateProductHandler struct {
	repo domain.ProductRepository
}

// NewCreateProductHandler creates a new create product handler
func NewCreateProductHandler(repo domain.ProductRepository) *CreateProductHandler {
	return &CreateProductHandler{repo: repo}
}

// Handle executes the create product command
func (h *CreateProductHandler) Handle(ctx context.Context, cmd CreateProductCommand) (*domain.Product, error) {
	if err := domain.ValidateProductInput(cmd.Input); err != nil {
		return nil, err
	}

	status := cmd.Input.Status
	if status == "" {
		status = domain.StatusActive
	}

	product := &domain.Product{
		ID:          uuid.NewString(),
		TenantID:    cmd.TenantID,
		Name:        strings.TrimSpace(cmd.Input.Name),
		Description: cmd.Input.Description,
		BasePrice:   cmd.Input.BasePrice,
		Category:    cmd.Input.Category,
		Status:      status,
		HasVariants: len(cmd.Input.Variants) > 0,
	}
	product.Variants = buildVariants(cmd.TenantID, product.ID, cmd.Input.Variants)

	if err := h.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}
