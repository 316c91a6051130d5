package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/stockly/stock-management/internal/catalog/domain"
)

// sortColumns whitelists client-supplied sort fields.
var sortColumns = map[string]string{
	"name":         "name",
	"category":     "category",
	"creationtime": "created_at",
}

type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Product{}, &domain.ProductVariant{}, &domain.VariantOption{})
}

func (r *GormProductRepository) Create(ctx context.Context, product *domain.Product) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(product).Error
	})
}

func (r *GormProductRepository) FindByID(ctx context.Context, tenantID, id string) (*domain.Product, error) {
	var product domain.Product
	err := r.db.WithContext(ctx).
		Preload("Variants", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Preload("Variants.Options", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (r *GormProductRepository) Update(ctx context.Context, product *domain.Product) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: false}).
		Omit("Variants").
		Save(product).Error
}

// ReplaceVariants swaps the full variant set of a product atomically.
func (r *GormProductRepository) ReplaceVariants(ctx context.Context, tenantID, productID string, variants []domain.ProductVariant) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deleteVariantsOf(tx, tenantID, productID); err != nil {
			return err
		}
		for i := range variants {
			if err := tx.Create(&variants[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *GormProductRepository) Delete(ctx context.Context, tenantID, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deleteVariantsOf(tx, tenantID, id); err != nil {
			return err
		}
		result := tx.Where("tenant_id = ? AND id = ?", tenantID, id).Delete(&domain.Product{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrProductNotFound
		}
		return nil
	})
}

func deleteVariantsOf(tx *gorm.DB, tenantID, productID string) error {
	var variantIDs []string
	if err := tx.Model(&domain.ProductVariant{}).
		Where("tenant_id = ? AND product_id = ?", tenantID, productID).
		Pluck("id", &variantIDs).Error; err != nil {
		return err
	}
	if len(variantIDs) == 0 {
		return nil
	}
	if err := tx.Where("product_variant_id IN ?", variantIDs).
		Delete(&domain.VariantOption{}).Error; err != nil {
		return err
	}
	return tx.Where("tenant_id = ? AND product_id = ?", tenantID, productID).
		Delete(&domain.ProductVariant{}).Error
}

func (r *GormProductRepository) List(ctx context.Context, tenantID string, filter domain.ProductFilter) (*domain.PagedProducts, error) {
	query := r.db.WithContext(ctx).Model(&domain.Product{}).Where("tenant_id = ?", tenantID)

	if filter.FilterText != "" {
		pattern := "%" + strings.ToLower(filter.FilterText) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}
	if filter.Name != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.Name)+"%")
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var products []domain.Product
	err := query.
		Order(orderClause(filter.Sorting)).
		Offset(filter.SkipCount).
		Limit(filter.MaxResultCount).
		Find(&products).Error
	if err != nil {
		return nil, err
	}

	return &domain.PagedProducts{TotalCount: total, Items: products}, nil
}

// orderClause maps a client sort expression onto whitelisted columns.
// Anything unrecognized falls back to newest-first.
func orderClause(sorting string) string {
	field := strings.ToLower(strings.TrimSpace(sorting))
	desc := false
	if strings.HasSuffix(field, " desc") {
		desc = true
		field = strings.TrimSpace(strings.TrimSuffix(field, " desc"))
	} else {
		field = strings.TrimSpace(strings.TrimSuffix(field, " asc"))
	}
	column, ok := sortColumns[field]
	if !ok {
		return "created_at DESC"
	}
	if desc {
		return column + " DESC"
	}
	return column + " ASC"
}

func (r *GormProductRepository) Stats(ctx context.Context, tenantID string) (*domain.ProductStats, error) {
	db := r.db.WithContext(ctx)
	stats := &domain.ProductStats{}

	if err := db.Model(&domain.Product{}).
		Where("tenant_id = ?", tenantID).
		Count(&stats.TotalProducts).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&domain.Product{}).
		Where("tenant_id = ? AND status = ?", tenantID, domain.StatusActive).
		Count(&stats.ActiveProducts).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&domain.ProductVariant{}).
		Where("tenant_id = ?", tenantID).
		Count(&stats.TotalVariants).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&domain.ProductVariant{}).
		Where("tenant_id = ?", tenantID).
		Select("COALESCE(SUM(stock_quantity), 0)").
		Scan(&stats.TotalStock).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&domain.Product{}).
		Where("tenant_id = ? AND category <> ''", tenantID).
		Distinct("category").
		Count(&stats.TotalCategories).Error; err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *GormProductRepository) AddVariant(ctx context.Context, variant *domain.ProductVariant) error {
	return r.db.WithContext(ctx).Create(variant).Error
}

func (r *GormProductRepository) FindVariantByID(ctx context.Context, tenantID, productID, variantID string) (*domain.ProductVariant, error) {
	var variant domain.ProductVariant
	err := r.db.WithContext(ctx).
		Preload("Options", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Where("tenant_id = ? AND product_id = ? AND id = ?", tenantID, productID, variantID).
		First(&variant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrVariantNotFound
		}
		return nil, err
	}
	return &variant, nil
}

func (r *GormProductRepository) UpdateVariant(ctx context.Context, variant *domain.ProductVariant) error {
	return r.db.WithContext(ctx).Omit("Options").Save(variant).Error
}

// ReplaceVariantOptions rebuilds the option bag of a variant in input order.
func (r *GormProductRepository) ReplaceVariantOptions(ctx context.Context, variantID string, options []domain.VariantOption) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_variant_id = ?", variantID).
			Delete(&domain.VariantOption{}).Error; err != nil {
			return err
		}
		for i := range options {
			if err := tx.Create(&options[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *GormProductRepository) RemoveVariant(ctx context.Context, tenantID, productID, variantID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_variant_id = ?", variantID).
			Delete(&domain.VariantOption{}).Error; err != nil {
			return err
		}
		result := tx.Where("tenant_id = ? AND product_id = ? AND id = ?", tenantID, productID, variantID).
			Delete(&domain.ProductVariant{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrVariantNotFound
		}
		return nil
	})
}

func (r *GormProductRepository) UpdateVariantStock(ctx context.Context, tenantID, productID, variantID string, quantity int) error {
	result := r.db.WithContext(ctx).Model(&domain.ProductVariant{}).
		Where("tenant_id = ? AND product_id = ? AND id = ?", tenantID, productID, variantID).
		Update("stock_quantity", quantity)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrVariantNotFound
	}
	return nil
}
