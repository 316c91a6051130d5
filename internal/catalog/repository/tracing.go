package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/stockly/stock-management/internal/catalog/domain"
)

var tracer = otel.Tracer("catalog-repository")

// TracingProductRepository wraps a ProductRepository with OpenTelemetry spans.
type TracingProductRepository struct {
	next domain.ProductRepository
}

func NewTracingProductRepository(next domain.ProductRepository) *TracingProductRepository {
	return &TracingProductRepository{next: next}
}

func startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	ctx, span := tracer.Start(ctx, name)
	span.SetAttributes(attrs...)
	return ctx, span
}

func finishSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func (r *TracingProductRepository) Create(ctx context.Context, product *domain.Product) error {
	ctx, span := startSpan(ctx, "repository.CreateProduct",
		attribute.String("product.id", product.ID),
		attribute.String("tenant.id", product.TenantID),
	)
	err := r.next.Create(ctx, product)
	finishSpan(span, err)
	return err
}

func (r *TracingProductRepository) FindByID(ctx context.Context, tenantID, id string) (*domain.Product, error) {
	ctx, span := startSpan(ctx, "repository.FindProductByID",
		attribute.String("product.id", id),
		attribute.String("tenant.id", tenantID),
	)
	product, err := r.next.FindByID(ctx, tenantID, id)
	finishSpan(span, err)
	return product, err
}

func (r *TracingProductRepository) Update(ctx context.Context, product *domain.Product) error {
	ctx, span := startSpan(ctx, "repository.UpdateProduct",
		attribute.String("product.id", product.ID),
	)
	err := r.next.Update(ctx, product)
	finishSpan(span, err)
	return err
}

func (r *TracingProductRepository) ReplaceVariants(ctx context.Context, tenantID, productID string, variants []domain.ProductVariant) error {
	ctx, span := startSpan(ctx, "repository.ReplaceVariants",
		attribute.String("product.id", productID),
		attribute.Int("variant.count", len(variants)),
	)
	err := r.next.ReplaceVariants(ctx, tenantID, productID, variants)
	finishSpan(span, err)
	return err
}

func (r *TracingProductRepository) Delete(ctx context.Context, tenantID, id string) error {
	ctx, span := startSpan(ctx, "repository.DeleteProduct",
		attribute.String("product.id", id),
	)
	err := r.next.Delete(ctx, tenantID, id)
	finishSpan(span, err)
	return err
}

func (r *TracingProductRepository) List(ctx context.Context, tenantID string, filter domain.ProductFilter) (*domain.PagedProducts, error) {
	ctx, span := startSpan(ctx, "repository.ListProducts",
		attribute.String("tenant.id", tenantID),
		attribute.Int("skip", filter.SkipCount),
		attribute.Int("take", filter.MaxResultCount),
	)
	page, err := r.next.List(ctx, tenantID, filter)
	finishSpan(span, err)
	return page, err
}

func (r *TracingProductRepository) Stats(ctx context.Context, tenantID string) (*domain.ProductStats, error) {
	ctx, span := startSpan(ctx, "repository.ProductStats",
		attribute.String("tenant.id", tenantID),
	)
	stats, err := r.next.Stats(ctx, tenantID)
	finishSpan(span, err)
	return stats, err
}

func (r *TracingProductRepository) AddVariant(ctx context.Context, variant *domain.ProductVariant) error {
	ctx, span := startSpan(ctx, "repository.AddVariant",
		attribute.String("variant.id", variant.ID),
		attribute.String("product.id", variant.ProductID),
	)
	err := r.next.AddVariant(ctx, variant)
	finishSpan(span, err)
	return err
}

func (r *TracingProductRepository) FindVariantByID(ctx context.Context, tenantID, productID, variantID string) (*domain.ProductVariant, error) {
	ctx, span := startSpan(ctx, "repository.FindVariantByID",
		attribute.String("variant.id", variantID),
	)
	variant, err := r.next.FindVariantByID(ctx, tenantID, productID, variantID)
	finishSpan(span, err)
	return variant, err
}

func (r *TracingProductRepository) UpdateVariant(ctx context.Context, variant *domain.ProductVariant) error {
	ctx, span := startSpan(ctx, "repository.UpdateVariant",
		attribute.String("variant.id", variant.ID),
	)
	err := r.next.UpdateVariant(ctx, variant)
	finishSpan(span, err)
	return err
}

func (r *TracingProductRepository) ReplaceVariantOptions(ctx context.Context, variantID string, options []domain.VariantOption) error {
	ctx, span := startSpan(ctx, "repository.ReplaceVariantOptions",
		attribute.String("variant.id", variantID),
		attribute.Int("option.count", len(options)),
	)
	err := r.next.ReplaceVariantOptions(ctx, variantID, options)
	finishSpan(span, err)
	return err
}

func (r *TracingProductRepository) RemoveVariant(ctx context.Context, tenantID, productID, variantID string) error {
	ctx, span := startSpan(ctx, "repository.RemoveVariant",
		attribute.String("variant.id", variantID),
	)
	err := r.next.RemoveVariant(ctx, tenantID, productID, variantID)
	finishSpan(span, err)
	return err
}

func (r *TracingProductRepository) UpdateVariantStock(ctx context.Context, tenantID, productID, variantID string, quantity int) error {
	ctx, span := startSpan(ctx, "repository.UpdateVariantStock",
		attribute.String("variant.id", variantID),
		attribute.Int("quantity", quantity),
	)
	err := r.next.UpdateVariantStock(ctx, tenantID, productID, variantID, quantity)
	finishSpan(span, err)
	return err
}
