package command_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/stockly/stock-management/internal/stock/domain"
)

// MockStockRepository is a mock implementation of domain.StockRepository
type MockStockRepository struct {
	mock.Mock
}

func (m *MockStockRepository) Create(ctx context.Context, stock *domain.Stock) error {
	args := m.Called(ctx, stock)
	return args.Error(0)
}

func (m *MockStockRepository) FindByID(ctx context.Context, tenantID, id string) (*domain.Stock, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Stock), args.Error(1)
}

func (m *MockStockRepository) NameExists(ctx context.Context, tenantID, name, excludeID string) (bool, error) {
	args := m.Called(ctx, tenantID, name, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockStockRepository) UpdateName(ctx context.Context, stock *domain.Stock) error {
	args := m.Called(ctx, stock)
	return args.Error(0)
}

func (m *MockStockRepository) ReplaceChildren(ctx context.Context, tenantID, stockID string, lines []domain.StockProductLine) error {
	args := m.Called(ctx, tenantID, stockID, lines)
	return args.Error(0)
}

func (m *MockStockRepository) Delete(ctx context.Context, tenantID, id string) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (m *MockStockRepository) ListProductLines(ctx context.Context, tenantID, stockID string) ([]domain.StockProductLine, error) {
	args := m.Called(ctx, tenantID, stockID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StockProductLine), args.Error(1)
}

func (m *MockStockRepository) ListVariantLines(ctx context.Context, tenantID, stockProductID string) ([]domain.StockVariantLine, error) {
	args := m.Called(ctx, tenantID, stockProductID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StockVariantLine), args.Error(1)
}

func (m *MockStockRepository) List(ctx context.Context, tenantID string, skip, take int) ([]domain.Stock, int64, error) {
	args := m.Called(ctx, tenantID, skip, take)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.Stock), args.Get(1).(int64), args.Error(2)
}

func (m *MockStockRepository) CountLinesForProduct(ctx context.Context, tenantID, productID string) (int64, error) {
	args := m.Called(ctx, tenantID, productID)
	return args.Get(0).(int64), args.Error(1)
}

// MockCatalogReader is a mock implementation of domain.CatalogReader
type MockCatalogReader struct {
	mock.Mock
}

func (m *MockCatalogReader) GetProducts(ctx context.Context, tenantID string, ids []string) (map[string]domain.CatalogProduct, error) {
	args := m.Called(ctx, tenantID, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.CatalogProduct), args.Error(1)
}

func (m *MockCatalogReader) GetVariants(ctx context.Context, tenantID string, ids []string) (map[string]domain.CatalogVariant, error) {
	args := m.Called(ctx, tenantID, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.CatalogVariant), args.Error(1)
}

func strPtr(s string) *string {
	return &s
}
