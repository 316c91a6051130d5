package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/stockly/stock-management/internal/stock/domain"
)

// catalogProductRow mirrors the columns of the catalog service's products
// table that this engine reads.
type catalogProductRow struct {
	ID   string
	Name string
}

type catalogVariantRow struct {
	ID            string
	ProductID     string
	SKU           *string
	StockQuantity int
}

// GormCatalogReader reads the catalog tables directly. The stock engine only
// ever reads them; all writes go through the catalog service.
type GormCatalogReader struct {
	db *gorm.DB
}

func NewGormCatalogReader(db *gorm.DB) *GormCatalogReader {
	return &GormCatalogReader{db: db}
}

func (r *GormCatalogReader) GetProducts(ctx context.Context, tenantID string, ids []string) (map[string]domain.CatalogProduct, error) {
	result := make(map[string]domain.CatalogProduct, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var rows []catalogProductRow
	err := r.db.WithContext(ctx).
		Table("products").
		Select("id", "name").
		Where("tenant_id = ? AND id IN ? AND deleted_at IS NULL", tenantID, ids).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		result[row.ID] = domain.CatalogProduct{ID: row.ID, Name: row.Name}
	}
	return result, nil
}

func (r *GormCatalogReader) GetVariants(ctx context.Context, tenantID string, ids []string) (map[string]domain.CatalogVariant, error) {
	result := make(map[string]domain.CatalogVariant, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var rows []catalogVariantRow
	err := r.db.WithContext(ctx).
		Table("product_variants").
		Select("id", "product_id", "sku", "stock_quantity").
		Where("tenant_id = ? AND id IN ? AND deleted_at IS NULL", tenantID, ids).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		result[row.ID] = domain.CatalogVariant{
			ID:            row.ID,
			ProductID:     row.ProductID,
			SKU:           row.SKU,
			StockQuantity: row.StockQuantity,
		}
	}
	return result, nil
}
