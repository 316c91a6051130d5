package domain

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// Product statuses.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Product represents a catalog product, optionally carrying variants.
type Product struct {
	ID          string           `json:"id" gorm:"primaryKey;size:36"`
	TenantID    string           `json:"tenantId" gorm:"size:36;index:idx_products_tenant"`
	Name        string           `json:"name" gorm:"size:128;not null"`
	Description string           `json:"description"`
	BasePrice   *float64         `json:"basePrice"`
	Category    string           `json:"category" gorm:"size:64;index"`
	Status      string           `json:"status" gorm:"size:16;not null;default:active"`
	HasVariants bool             `json:"hasVariants"`
	Variants    []ProductVariant `json:"variants" gorm:"foreignKey:ProductID"`
	CreatedAt   time.Time        `json:"creationTime"`
	UpdatedAt   time.Time        `json:"lastModificationTime"`
	DeletedAt   gorm.DeletedAt   `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// IsActive reports whether the product is visible to consumers.
func (p *Product) IsActive() bool {
	return p.Status == StatusActive
}

// ProductVariant represents a sellable variation of a product. StockQuantity
// is the available ceiling checked by stock aggregates.
type ProductVariant struct {
	ID            string          `json:"id" gorm:"primaryKey;size:36"`
	TenantID      string          `json:"tenantId" gorm:"size:36;index"`
	ProductID     string          `json:"productId" gorm:"size:36;index:idx_variants_product"`
	SKU           *string         `json:"sku" gorm:"size:64"`
	Price         float64         `json:"price" gorm:"not null;default:0"`
	StockQuantity int             `json:"stockQuantity" gorm:"not null;default:0"`
	Options       []VariantOption `json:"options" gorm:"foreignKey:ProductVariantID"`
	CreatedAt     time.Time       `json:"creationTime"`
	UpdatedAt     time.Time       `json:"lastModificationTime"`
	DeletedAt     gorm.DeletedAt  `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (ProductVariant) TableName() string {
	return "product_variants"
}

// VariantOption is an ordered name/value pair attached to a variant.
// Option names are unique per variant, compared case-insensitively.
type VariantOption struct {
	ID               string    `json:"id" gorm:"primaryKey;size:36"`
	ProductVariantID string    `json:"productVariantId" gorm:"size:36;index"`
	Name             string    `json:"name" gorm:"size:64;not null"`
	Value            string    `json:"value" gorm:"size:128"`
	Position         int       `json:"-" gorm:"not null;default:0"`
	CreatedAt        time.Time `json:"-"`
}

// TableName specifies the table name
func (VariantOption) TableName() string {
	return "variant_options"
}

// ProductWriteInput is the payload for creating or updating a product.
type ProductWriteInput struct {
	Name        string              `json:"name"`
	Description string              `json:"description"`
	BasePrice   *float64            `json:"basePrice"`
	Category    string              `json:"category"`
	Status      string              `json:"status"`
	Variants    []VariantWriteInput `json:"variants"`
}

// VariantWriteInput is the payload for creating or updating a variant.
type VariantWriteInput struct {
	SKU           *string       `json:"sku"`
	Price         float64       `json:"price"`
	StockQuantity int           `json:"stockQuantity"`
	Options       []OptionInput `json:"options"`
}

// OptionInput is a single name/value option on a variant payload.
type OptionInput struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// ProductFilter narrows and orders a product listing.
type ProductFilter struct {
	FilterText     string
	Name           string
	Category       string
	Status         string
	Sorting        string
	SkipCount      int
	MaxResultCount int
}

// PagedProducts is a page of products with the unfiltered total.
type PagedProducts struct {
	TotalCount int64     `json:"totalCount"`
	Items      []Product `json:"items"`
}

// ProductStats summarizes the catalog for dashboards.
type ProductStats struct {
	TotalProducts   int64 `json:"totalProducts"`
	ActiveProducts  int64 `json:"activeProducts"`
	TotalVariants   int64 `json:"totalVariants"`
	TotalStock      int64 `json:"totalStock"`
	TotalCategories int64 `json:"totalCategories"`
}

// ProductRepository defines the contract for catalog data access
type ProductRepository interface {
	Create(ctx context.Context, product *Product) error
	FindByID(ctx context.Context, tenantID, id string) (*Product, error)
	Update(ctx context.Context, product *Product) error
	ReplaceVariants(ctx context.Context, tenantID, productID string, variants []ProductVariant) error
	Delete(ctx context.Context, tenantID, id string) error
	List(ctx context.Context, tenantID string, filter ProductFilter) (*PagedProducts, error)
	Stats(ctx context.Context, tenantID string) (*ProductStats, error)

	// Variant sub-resource
	AddVariant(ctx context.Context, variant *ProductVariant) error
	FindVariantByID(ctx context.Context, tenantID, productID, variantID string) (*ProductVariant, error)
	UpdateVariant(ctx context.Context, variant *ProductVariant) error
	ReplaceVariantOptions(ctx context.Context, variantID string, options []VariantOption) error
	RemoveVariant(ctx context.Context, tenantID, productID, variantID string) error
	UpdateVariantStock(ctx context.Context, tenantID, productID, variantID string, quantity int) error
}
