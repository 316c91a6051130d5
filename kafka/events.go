package kafka

import "time"

// StockReplacedEvent signals that a stock aggregate was created or fully
// replaced by an update.
type StockReplacedEvent struct {
	EventID      string    `json:"event_id"`
	EventType    string    `json:"event_type"`
	TenantID     string    `json:"tenant_id"`
	StockID      string    `json:"stock_id"`
	Name         string    `json:"name"`
	ProductCount int       `json:"product_count"`
	Timestamp    time.Time `json:"timestamp"`
}

// StockDeletedEvent signals that a stock aggregate and all its lines were removed.
type StockDeletedEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	TenantID  string    `json:"tenant_id"`
	StockID   string    `json:"stock_id"`
	Timestamp time.Time `json:"timestamp"`
}

// ProductDeletedEvent signals that a catalog product was deleted. Stock
// aggregates referencing it keep their lines; reads degrade to nil names.
type ProductDeletedEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	TenantID  string    `json:"tenant_id"`
	ProductID string    `json:"product_id"`
	Timestamp time.Time `json:"timestamp"`
}

// VariantStockChangedEvent signals that a variant's available quantity changed.
type VariantStockChangedEvent struct {
	EventID          string    `json:"event_id"`
	EventType        string    `json:"event_type"`
	TenantID         string    `json:"tenant_id"`
	ProductID        string    `json:"product_id"`
	ProductVariantID string    `json:"product_variant_id"`
	StockQuantity    int       `json:"stock_quantity"`
	Timestamp        time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeStockReplaced       = "stock.replaced"
	EventTypeStockDeleted        = "stock.deleted"
	EventTypeProductDeleted      = "product.deleted"
	EventTypeVariantStockChanged = "variant.stock.changed"
)

// Kafka topics
const (
	TopicStockEvents   = "stock-events"
	TopicCatalogEvents = "catalog-events"
)
