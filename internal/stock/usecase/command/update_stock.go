package command

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/stockly/stock-management/internal/stock/domain"
	"github.com/stockly/stock-management/pkg/logger"
)

// UpdateStockCommand represents the command to replace a stock aggregate
type UpdateStockCommand struct {
	TenantID string
	ID       string
	Input    domain.StockWriteInput
}

// UpdateStockHandler handles update stock commands
type UpdateStockHandler struct {
	repo    domain.StockRepository
	catalog domain.CatalogReader
}

// NewUpdateStockHandler creates a new update stock handler
func NewUpdateStockHandler(repo domain.StockRepository, catalog domain.CatalogReader) *UpdateStockHandler {
	return &UpdateStockHandler{repo: repo, catalog: catalog}
}

// Handle executes the update stock command. The aggregate's children are
// fully replaced: existing variant lines and product lines are deleted,
// then the submitted tree is reinserted.
func (h *UpdateStockHandler) Handle(ctx context.Context, cmd UpdateStockCommand) (*domain.Stock, error) {
	stock, err := h.repo.FindByID(ctx, cmd.TenantID, cmd.ID)
	if err != nil {
		return nil, err
	}

	if err := domain.ValidateStockInput(cmd.Input); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(cmd.Input.Name)
	exists, err := h.repo.NameExists(ctx, cmd.TenantID, name, cmd.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check name uniqueness: %w", err)
	}
	if exists {
		return nil, domain.NewBusinessError(domain.CodeDuplicateName).WithData("Name", name)
	}

	if err := validateReferences(ctx, h.catalog, cmd.TenantID, cmd.Input); err != nil {
		return nil, err
	}

	stock.Name = name
	if err := h.repo.UpdateName(ctx, stock); err != nil {
		if !errors.Is(err, domain.ErrConcurrentModification) {
			return nil, fmt.Errorf("failed to update stock: %w", err)
		}
		// Lost the version race on the root row: re-fetch, reapply the name,
		// retry exactly once. The child replace phase is never retried.
		logger.Warn(ctx).
			Str("stock_id", cmd.ID).
			Msg("Concurrent stock update detected, retrying once")
		stock, err = h.repo.FindByID(ctx, cmd.TenantID, cmd.ID)
		if err != nil {
			return nil, err
		}
		stock.Name = name
		if err := h.repo.UpdateName(ctx, stock); err != nil {
			return nil, fmt.Errorf("failed to update stock after retry: %w", err)
		}
	}

	lines := buildChildLines(cmd.TenantID, stock.ID, cmd.Input)
	if err := h.repo.ReplaceChildren(ctx, cmd.TenantID, stock.ID, lines); err != nil {
		return nil, fmt.Errorf("failed to replace stock lines: %w", err)
	}

	return stock, nil
}
