package command

import (
	"context"

	"github.com/stockly/stock-management/internal/catalog/domain"
)

// AddVariantCommand represents the command to add a variant to a product
type AddVariantCommand struct {
	TenantID  string
	ProductID string
	Input     domain.VariantWriteInput
}

// AddVariantHandler handles variant creation
type AddVariantHandler struct {
	repo domain.ProductRepository
}

// NewAddVariantHandler creates a new add variant handler
func NewAddVariantHandler(repo domain.ProductRepository) *AddVariantHandler {
	return &AddVariantHandler{repo: repo}
}

// Handle executes the add variant command
func (h *AddVariantHandler) Handle(ctx context.Context, cmd AddVariantCommand) (*domain.ProductVariant, error) {
	if err := domain.ValidateVariantInput(cmd.Input); err != nil {
		return nil, err
	}

	product, err := h.repo.FindByID(ctx, cmd.TenantID, cmd.ProductID)
	if err != nil {
		return nil, err
	}

	variant := buildVariant(cmd.TenantID, cmd.ProductID, cmd.Input)
	if err := h.repo.AddVariant(ctx, &variant); err != nil {
		return nil, err
	}

	if !product.HasVariants {
		product.HasVariants = true
		if err := h.repo.Update(ctx, product); err != nil {
			return nil, err
		}
	}
	return &variant, nil
}

// UpdateVariantCommand represents the command to update a variant.
// A non-nil Options slice replaces the whole option bag.
type UpdateVariantCommand struct {
	TenantID  string
	ProductID string
	VariantID string
	Input     domain.VariantWriteInput
}

// UpdateVariantHandler handles variant updates
type UpdateVariantHandler struct {
	repo domain.ProductRepository
}

// NewUpdateVariantHandler creates a new update variant handler
func NewUpdateVariantHandler(repo domain.ProductRepository) *UpdateVariantHandler {
	return &UpdateVariantHandler{repo: repo}
}

// Handle executes the update variant command
func (h *UpdateVariantHandler) Handle(ctx context.Context, cmd UpdateVariantCommand) (*domain.ProductVariant, error) {
	if err := domain.ValidateVariantInput(cmd.Input); err != nil {
		return nil, err
	}

	variant, err := h.repo.FindVariantByID(ctx, cmd.TenantID, cmd.ProductID, cmd.VariantID)
	if err != nil {
		return nil, err
	}

	variant.SKU = normalizeSKU(cmd.Input.SKU)
	variant.Price = cmd.Input.Price
	variant.StockQuantity = cmd.Input.StockQuantity

	if cmd.Input.Options != nil {
		options := buildOptions(variant.ID, cmd.Input.Options)
		if err := h.repo.ReplaceVariantOptions(ctx, variant.ID, options); err != nil {
			return nil, err
		}
		variant.Options = options
	}

	if err := h.repo.UpdateVariant(ctx, variant); err != nil {
		return nil, err
	}
	return variant, nil
}

// RemoveVariantCommand represents the command to remove a variant
type RemoveVariantCommand struct {
	TenantID  string
	ProductID string
	VariantID string
}

// RemoveVariantHandler handles variant removal
type RemoveVariantHandler struct {
	repo domain.ProductRepository
}

// NewRemoveVariantHandler creates a new remove variant handler
func NewRemoveVariantHandler(repo domain.ProductRepository) *RemoveVariantHandler {
	return &RemoveVariantHandler{repo: repo}
}

// Handle executes the remove variant command
func (h *RemoveVariantHandler) Handle(ctx context.Context, cmd RemoveVariantCommand) error {
	if err := h.repo.RemoveVariant(ctx, cmd.TenantID, cmd.ProductID, cmd.VariantID); err != nil {
		return err
	}

	product, err := h.repo.FindByID(ctx, cmd.TenantID, cmd.ProductID)
	if err != nil {
		return err
	}
	if product.HasVariants && len(product.Variants) == 0 {
		product.HasVariants = false
		return h.repo.Update(ctx, product)
	}
	return nil
}
