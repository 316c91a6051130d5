package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/stockly/stock-management/internal/stock/domain"
)

// CreateStockCommand represents the command to create a stock aggregate
type CreateStockCommand struct {
	TenantID string
	Input    domain.StockWriteInput
}

// CreateStockHandler handles create stock commands
type CreateStockHandler struct {
	repo    domain.StockRepository
	catalog domain.CatalogReader
}

// NewCreateStockHandler creates a new create stock handler
func NewCreateStockHandler(repo domain.StockRepository, catalog domain.CatalogReader) *CreateStockHandler {
	return &CreateStockHandler{repo: repo, catalog: catalog}
}

// Handle executes the create stock command. All validation, structural and
// referential, completes before the first insert.
func (h *CreateStockHandler) Handle(ctx context.Context, cmd CreateStockCommand) (*domain.Stock, error) {
	if err := domain.ValidateStockInput(cmd.Input); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(cmd.Input.Name)
	exists, err := h.repo.NameExists(ctx, cmd.TenantID, name, "")
	if err != nil {
		return nil, fmt.Errorf("failed to check name uniqueness: %w", err)
	}
	if exists {
		return nil, domain.NewBusinessError(domain.CodeDuplicateName).WithData("Name", name)
	}

	if err := validateReferences(ctx, h.catalog, cmd.TenantID, cmd.Input); err != nil {
		return nil, err
	}

	stock := &domain.Stock{
		ID:       uuid.NewString(),
		TenantID: cmd.TenantID,
		Name:     name,
		Version:  1,
	}
	if err := h.repo.Create(ctx, stock); err != nil {
		return nil, fmt.Errorf("failed to create stock: %w", err)
	}

	lines := buildChildLines(cmd.TenantID, stock.ID, cmd.Input)
	if err := h.repo.ReplaceChildren(ctx, cmd.TenantID, stock.ID, lines); err != nil {
		return nil, fmt.Errorf("failed to insert stock lines: %w", err)
	}

	return stock, nil
}
