package command_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/stockly/stock-management/internal/catalog/domain"
)

// MockProductRepository is a mock implementation of domain.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, product *domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) FindByID(ctx context.Context, tenantID, id string) (*domain.Product, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) Update(ctx context.Context, product *domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) ReplaceVariants(ctx context.Context, tenantID, productID string, variants []domain.ProductVariant) error {
	args := m.Called(ctx, tenantID, productID, variants)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, tenantID, id string) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (m *MockProductRepository) List(ctx context.Context, tenantID string, filter domain.ProductFilter) (*domain.PagedProducts, error) {
	args := m.Called(ctx, tenantID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PagedProducts), args.Error(1)
}

func (m *MockProductRepository) Stats(ctx context.Context, tenantID string) (*domain.ProductStats, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProductStats), args.Error(1)
}

func (m *MockProductRepository) AddVariant(ctx context.Context, variant *domain.ProductVariant) error {
	args := m.Called(ctx, variant)
	return args.Error(0)
}

func (m *MockProductRepository) FindVariantByID(ctx context.Context, tenantID, productID, variantID string) (*domain.ProductVariant, error) {
	args := m.Called(ctx, tenantID, productID, variantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProductVariant), args.Error(1)
}

func (m *MockProductRepository) UpdateVariant(ctx context.Context, variant *domain.ProductVariant) error {
	args := m.Called(ctx, variant)
	return args.Error(0)
}

func (m *MockProductRepository) ReplaceVariantOptions(ctx context.Context, variantID string, options []domain.VariantOption) error {
	args := m.Called(ctx, variantID, options)
	return args.Error(0)
}

func (m *MockProductRepository) RemoveVariant(ctx context.Context, tenantID, productID, variantID string) error {
	args := m.Called(ctx, tenantID, productID, variantID)
	return args.Error(0)
}

func (m *MockProductRepository) UpdateVariantStock(ctx context.Context, tenantID, productID, variantID string, quantity int) error {
	args := m.Called(ctx, tenantID, productID, variantID, quantity)
	return args.Error(0)
}

func strPtr(s string) *string {
	return &s
}

func floatPtr(f float64) *float64 {
	return &f
}
