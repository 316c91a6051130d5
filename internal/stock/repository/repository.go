package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/stockly/stock-management/internal/stock/domain"
)

type GormStockRepository struct {
	db *gorm.DB
}

func NewGormStockRepository(db *gorm.DB) *GormStockRepository {
	return &GormStockRepository{db: db}
}

func (r *GormStockRepository) AutoMigrate() error {
	return r.db.AutoMigrate(
		&domain.Stock{},
		&domain.StockProductLine{},
		&domain.StockVariantLine{},
	)
}

func (r *GormStockRepository) Create(ctx context.Context, stock *domain.Stock) error {
	return r.db.WithContext(ctx).Create(stock).Error
}

func (r *GormStockRepository) FindByID(ctx context.Context, tenantID, id string) (*domain.Stock, error) {
	var stock domain.Stock
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&stock).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrStockNotFound
		}
		return nil, err
	}
	return &stock, nil
}

func (r *GormStockRepository) NameExists(ctx context.Context, tenantID, name, excludeID string) (bool, error) {
	// Exact string match per tenant; soft-deleted rows are excluded by the
	// gorm.DeletedAt default scope.
	q := r.db.WithContext(ctx).Model(&domain.Stock{}).
		Where("tenant_id = ? AND name = ?", tenantID, name)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormStockRepository) UpdateName(ctx context.Context, stock *domain.Stock) error {
	res := r.db.WithContext(ctx).Model(&domain.Stock{}).
		Where("tenant_id = ? AND id = ? AND version = ?", stock.TenantID, stock.ID, stock.Version).
		Updates(map[string]interface{}{
			"name":    stock.Name,
			"version": stock.Version + 1,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// Row gone or version moved underneath us.
		if _, err := r.FindByID(ctx, stock.TenantID, stock.ID); err != nil {
			return err
		}
		return domain.ErrConcurrentModification
	}
	stock.Version++
	return nil
}

func (r *GormStockRepository) ReplaceChildren(ctx context.Context, tenantID, stockID string, lines []domain.StockProductLine) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deleteChildren(tx, tenantID, stockID); err != nil {
			return err
		}
		for i := range lines {
			line := lines[i]
			variantLines := line.VariantLines
			line.VariantLines = nil
			if err := tx.Create(&line).Error; err != nil {
				return fmt.Errorf("failed to insert product line: %w", err)
			}
			for j := range variantLines {
				if err := tx.Create(&variantLines[j]).Error; err != nil {
					return fmt.Errorf("failed to insert variant line: %w", err)
				}
			}
		}
		return nil
	})
}

func (r *GormStockRepository) Delete(ctx context.Context, tenantID, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deleteChildren(tx, tenantID, id); err != nil {
			return err
		}
		res := tx.Where("tenant_id = ?", tenantID).Delete(&domain.Stock{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrStockNotFound
		}
		return nil
	})
}

// deleteChildren removes variant lines before product lines to respect the
// foreign key ordering.
func deleteChildren(tx *gorm.DB, tenantID, stockID string) error {
	var productLineIDs []string
	if err := tx.Model(&domain.StockProductLine{}).
		Where("tenant_id = ? AND stock_id = ?", tenantID, stockID).
		Pluck("id", &productLineIDs).Error; err != nil {
		return err
	}
	if len(productLineIDs) > 0 {
		if err := tx.Where("stock_product_id IN ?", productLineIDs).
			Delete(&domain.StockVariantLine{}).Error; err != nil {
			return err
		}
	}
	return tx.Where("tenant_id = ? AND stock_id = ?", tenantID, stockID).
		Delete(&domain.StockProductLine{}).Error
}

func (r *GormStockRepository) ListProductLines(ctx context.Context, tenantID, stockID string) ([]domain.StockProductLine, error) {
	var lines []domain.StockProductLine
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND stock_id = ?", tenantID, stockID).
		Order("position ASC").
		Find(&lines).Error
	return lines, err
}

func (r *GormStockRepository) ListVariantLines(ctx context.Context, tenantID, stockProductID string) ([]domain.StockVariantLine, error) {
	var lines []domain.StockVariantLine
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND stock_product_id = ?", tenantID, stockProductID).
		Order("position ASC").
		Find(&lines).Error
	return lines, err
}

func (r *GormStockRepository) List(ctx context.Context, tenantID string, skip, take int) ([]domain.Stock, int64, error) {
	var total int64
	base := r.db.WithContext(ctx).Model(&domain.Stock{}).Where("tenant_id = ?", tenantID)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var stocks []domain.Stock
	err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC").
		Offset(skip).
		Limit(take).
		Find(&stocks).Error
	return stocks, total, err
}

func (r *GormStockRepository) CountLinesForProduct(ctx context.Context, tenantID, productID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.StockProductLine{}).
		Where("tenant_id = ? AND product_id = ?", tenantID, productID).
		Count(&count).Error
	return count, err
}
