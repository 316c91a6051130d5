package domain

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// Stock is the aggregate root for one named inventory snapshot.
// Children are owned by value: product and variant lines are deleted and
// fully reinserted on every update (replace semantics, not patch semantics).
type Stock struct {
	ID       string `json:"id" gorm:"type:uuid;primaryKey"`
	TenantID string `json:"tenantId" gorm:"size:64;index:idx_stocks_tenant_name"`
	Name     string `json:"name" gorm:"size:128;not null;index:idx_stocks_tenant_name"`
	// Version guards the root row against concurrent name updates.
	Version   int            `json:"-" gorm:"not null;default:1"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (Stock) TableName() string {
	return "stocks"
}

// StockProductLine references one catalog product within a stock aggregate.
// It has no lifecycle of its own; rows exist only as part of a stock write.
type StockProductLine struct {
	ID        string `json:"id" gorm:"type:uuid;primaryKey"`
	TenantID  string `json:"tenantId" gorm:"size:64;index"`
	StockID   string `json:"stockId" gorm:"type:uuid;not null;index"`
	ProductID string `json:"productId" gorm:"type:uuid;not null;index"`
	// Position preserves input order across the replace-write.
	Position  int       `json:"-" gorm:"not null;default:0"`
	CreatedAt time.Time `json:"createdAt"`

	// VariantLines is populated only while staging a write; reads load the
	// rows separately.
	VariantLines []StockVariantLine `json:"-" gorm:"-"`
}

// TableName specifies the table name
func (StockProductLine) TableName() string {
	return "stock_product_lines"
}

// StockVariantLine carries a quantity for one product variant, or for an
// unspecified variant when ProductVariantID is nil.
type StockVariantLine struct {
	ID               string    `json:"id" gorm:"type:uuid;primaryKey"`
	TenantID         string    `json:"tenantId" gorm:"size:64;index"`
	StockProductID   string    `json:"stockProductId" gorm:"type:uuid;not null;index"`
	ProductVariantID *string   `json:"productVariantId" gorm:"type:uuid"`
	Quantity         int       `json:"quantity" gorm:"not null"`
	Position         int       `json:"-" gorm:"not null;default:0"`
	CreatedAt        time.Time `json:"createdAt"`
}

// TableName specifies the table name
func (StockVariantLine) TableName() string {
	return "stock_variant_lines"
}

// StockWriteInput is the full aggregate document submitted on create/update.
type StockWriteInput struct {
	Name     string             `json:"name"`
	Products []ProductLineInput `json:"products"`
}

// ProductLineInput is one product entry of a stock write request.
type ProductLineInput struct {
	ProductID string             `json:"productId"`
	Variants  []VariantLineInput `json:"variants"`
}

// VariantLineInput is one variant-quantity line. A nil ProductVariantID
// means an unspecified-variant allocation.
type VariantLineInput struct {
	ProductVariantID *string `json:"productVariantId"`
	Quantity         int     `json:"quantity"`
}

// StockDetail is the denormalized read view of a stock aggregate.
type StockDetail struct {
	ID       string               `json:"id"`
	Name     string               `json:"name"`
	Products []StockProductDetail `json:"products"`
}

// StockProductDetail joins a product line with its catalog display name.
// ProductName is nil when the product vanished after the stock write.
type StockProductDetail struct {
	ProductID   string               `json:"productId"`
	ProductName *string              `json:"productName"`
	Variants    []StockVariantDetail `json:"variants"`
}

// StockVariantDetail joins a variant line with its catalog SKU.
type StockVariantDetail struct {
	ProductVariantID *string `json:"productVariantId"`
	Quantity         int     `json:"quantity"`
	VariantSku       *string `json:"variantSku"`
}

// StockSummary is the list-view projection.
type StockSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PagedStockSummaries is a skip/take slice of summaries with the total count.
type PagedStockSummaries struct {
	TotalCount int64          `json:"totalCount"`
	Items      []StockSummary `json:"items"`
}

// StockRepository defines the contract for stock aggregate persistence.
// Every method is scoped to an explicit tenant id; the empty string is the
// host tenant.
type StockRepository interface {
	Create(ctx context.Context, stock *Stock) error
	FindByID(ctx context.Context, tenantID, id string) (*Stock, error)
	// NameExists reports whether a non-deleted stock with this exact name
	// exists in the tenant, excluding excludeID when non-empty.
	NameExists(ctx context.Context, tenantID, name, excludeID string) (bool, error)
	// UpdateName applies a version-guarded update of the root row. Returns
	// ErrConcurrentModification when the guarded update matches no row while
	// the stock still exists.
	UpdateName(ctx context.Context, stock *Stock) error
	// ReplaceChildren deletes all existing child rows of the stock, variant
	// lines before product lines, then inserts the given lines in order.
	// The whole replacement runs in one transaction.
	ReplaceChildren(ctx context.Context, tenantID, stockID string, lines []StockProductLine) error
	// Delete removes variant lines, then product lines, then the root.
	Delete(ctx context.Context, tenantID, id string) error
	ListProductLines(ctx context.Context, tenantID, stockID string) ([]StockProductLine, error)
	ListVariantLines(ctx context.Context, tenantID, stockProductID string) ([]StockVariantLine, error)
	// List returns summaries ordered by creation time descending.
	List(ctx context.Context, tenantID string, skip, take int) ([]Stock, int64, error)
	// CountLinesForProduct reports how many product lines reference the
	// given catalog product (used when a product deletion event arrives).
	CountLinesForProduct(ctx context.Context, tenantID, productID string) (int64, error)
}

// CatalogProduct is the slice of a catalog product this engine reads.
type CatalogProduct struct {
	ID   string
	Name string
}

// CatalogVariant is the snapshot of a product variant used for referential
// and availability validation.
type CatalogVariant struct {
	ID            string
	ProductID     string
	SKU           *string
	StockQuantity int
}

// CatalogReader is the read-only view of the catalog this engine validates
// against. Lookups are a point-in-time snapshot; no lock is held between
// validation and the subsequent write.
type CatalogReader interface {
	GetProducts(ctx context.Context, tenantID string, ids []string) (map[string]CatalogProduct, error)
	GetVariants(ctx context.Context, tenantID string, ids []string) (map[string]CatalogVariant, error)
}
