package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/stockly/stock-management/internal/stock/domain"
)

var tracer = otel.Tracer("stock-repository")

// TracingStockRepository decorates a StockRepository with OpenTelemetry spans
type TracingStockRepository struct {
	inner domain.StockRepository
}

// NewTracingStockRepository wraps the given repository with tracing
func NewTracingStockRepository(inner domain.StockRepository) *TracingStockRepository {
	return &TracingStockRepository{inner: inner}
}

func (r *TracingStockRepository) span(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func finish(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func (r *TracingStockRepository) Create(ctx context.Context, stock *domain.Stock) error {
	ctx, span := r.span(ctx, "repository.Create",
		attribute.String("stock.id", stock.ID),
		attribute.String("stock.name", stock.Name),
	)
	err := r.inner.Create(ctx, stock)
	finish(span, err)
	return err
}

func (r *TracingStockRepository) FindByID(ctx context.Context, tenantID, id string) (*domain.Stock, error) {
	ctx, span := r.span(ctx, "repository.FindByID", attribute.String("stock.id", id))
	stock, err := r.inner.FindByID(ctx, tenantID, id)
	finish(span, err)
	return stock, err
}

func (r *TracingStockRepository) NameExists(ctx context.Context, tenantID, name, excludeID string) (bool, error) {
	ctx, span := r.span(ctx, "repository.NameExists", attribute.String("stock.name", name))
	exists, err := r.inner.NameExists(ctx, tenantID, name, excludeID)
	finish(span, err)
	return exists, err
}

func (r *TracingStockRepository) UpdateName(ctx context.Context, stock *domain.Stock) error {
	ctx, span := r.span(ctx, "repository.UpdateName",
		attribute.String("stock.id", stock.ID),
		attribute.Int("stock.version", stock.Version),
	)
	err := r.inner.UpdateName(ctx, stock)
	finish(span, err)
	return err
}

func (r *TracingStockRepository) ReplaceChildren(ctx context.Context, tenantID, stockID string, lines []domain.StockProductLine) error {
	ctx, span := r.span(ctx, "repository.ReplaceChildren",
		attribute.String("stock.id", stockID),
		attribute.Int("stock.product_lines", len(lines)),
	)
	err := r.inner.ReplaceChildren(ctx, tenantID, stockID, lines)
	finish(span, err)
	return err
}

func (r *TracingStockRepository) Delete(ctx context.Context, tenantID, id string) error {
	ctx, span := r.span(ctx, "repository.Delete", attribute.String("stock.id", id))
	err := r.inner.Delete(ctx, tenantID, id)
	finish(span, err)
	return err
}

func (r *TracingStockRepository) ListProductLines(ctx context.Context, tenantID, stockID string) ([]domain.StockProductLine, error) {
	ctx, span := r.span(ctx, "repository.ListProductLines", attribute.String("stock.id", stockID))
	lines, err := r.inner.ListProductLines(ctx, tenantID, stockID)
	finish(span, err)
	return lines, err
}

func (r *TracingStockRepository) ListVariantLines(ctx context.Context, tenantID, stockProductID string) ([]domain.StockVariantLine, error) {
	ctx, span := r.span(ctx, "repository.ListVariantLines", attribute.String("stock.product_line_id", stockProductID))
	lines, err := r.inner.ListVariantLines(ctx, tenantID, stockProductID)
	finish(span, err)
	return lines, err
}

func (r *TracingStockRepository) List(ctx context.Context, tenantID string, skip, take int) ([]domain.Stock, int64, error) {
	ctx, span := r.span(ctx, "repository.List",
		attribute.Int("paging.skip", skip),
		attribute.Int("paging.take", take),
	)
	stocks, total, err := r.inner.List(ctx, tenantID, skip, take)
	finish(span, err)
	return stocks, total, err
}

func (r *TracingStockRepository) CountLinesForProduct(ctx context.Context, tenantID, productID string) (int64, error) {
	ctx, span := r.span(ctx, "repository.CountLinesForProduct", attribute.String("product.id", productID))
	count, err := r.inner.CountLinesForProduct(ctx, tenantID, productID)
	finish(span, err)
	return count, err
}

// TracingCatalogReader decorates a CatalogReader with OpenTelemetry spans
type TracingCatalogReader struct {
	inner domain.CatalogReader
}

// NewTracingCatalogReader wraps the given reader with tracing
func NewTracingCatalogReader(inner domain.CatalogReader) *TracingCatalogReader {
	return &TracingCatalogReader{inner: inner}
}

func (r *TracingCatalogReader) GetProducts(ctx context.Context, tenantID string, ids []string) (map[string]domain.CatalogProduct, error) {
	ctx, span := tracer.Start(ctx, "catalog.GetProducts",
		trace.WithAttributes(attribute.Int("catalog.product_ids", len(ids))))
	products, err := r.inner.GetProducts(ctx, tenantID, ids)
	finish(span, err)
	return products, err
}

func (r *TracingCatalogReader) GetVariants(ctx context.Context, tenantID string, ids []string) (map[string]domain.CatalogVariant, error) {
	ctx, span := tracer.Start(ctx, "catalog.GetVariants",
		trace.WithAttributes(attribute.Int("catalog.variant_ids", len(ids))))
	variants, err := r.inner.GetVariants(ctx, tenantID, ids)
	finish(span, err)
	return variants, err
}
