package command_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/stockly/stock-management/internal/stock/domain"
	"github.com/stockly/stock-management/internal/stock/usecase/command"
)

func TestCreateStock_Success(t *testing.T) {
	mockRepo := new(MockStockRepository)
	mockCatalog := new(MockCatalogReader)
	handler := command.NewCreateStockHandler(mockRepo, mockCatalog)

	input := domain.StockWriteInput{
		Name: "  Warehouse A  ",
		Products: []domain.ProductLineInput{
			{ProductID: "p1", Variants: []domain.VariantLineInput{
				{ProductVariantID: strPtr("v1"), Quantity: 3},
				{ProductVariantID: nil, Quantity: 2},
			}},
			{ProductID: "p2", Variants: []domain.VariantLineInput{}},
		},
	}

	mockRepo.On("NameExists", mock.Anything, "t1", "Warehouse A", "").Return(false, nil)
	mockCatalog.On("GetProducts", mock.Anything, "t1", []string{"p1", "p2"}).Return(map[string]domain.CatalogProduct{
		"p1": {ID: "p1", Name: "Product One"},
		"p2": {ID: "p2", Name: "Product Two"},
	}, nil)
	mockCatalog.On("GetVariants", mock.Anything, "t1", []string{"v1"}).Return(map[string]domain.CatalogVariant{
		"v1": {ID: "v1", ProductID: "p1", StockQuantity: 10},
	}, nil)
	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(s *domain.Stock) bool {
		return s.TenantID == "t1" && s.Name == "Warehouse A" && s.Version == 1 && s.ID != ""
	})).Return(nil)
	mockRepo.On("ReplaceChildren", mock.Anything, "t1", mock.Anything, mock.MatchedBy(func(lines []domain.StockProductLine) bool {
		return len(lines) == 2 &&
			lines[0].ProductID == "p1" && len(lines[0].VariantLines) == 2 &&
			lines[1].ProductID == "p2" && len(lines[1].VariantLines) == 0 &&
			lines[0].Position == 0 && lines[1].Position == 1
	})).Return(nil)

	stock, err := handler.Handle(context.Background(), command.CreateStockCommand{TenantID: "t1", Input: input})

	require.NoError(t, err)
	assert.Equal(t, "Warehouse A", stock.Name)
	mockRepo.AssertExpectations(t)
	mockCatalog.AssertExpectations(t)
}

func TestCreateStock_StructurallyInvalid_NoIO(t *testing.T) {
	mockRepo := new(MockStockRepository)
	mockCatalog := new(MockCatalogReader)
	handler := command.NewCreateStockHandler(mockRepo, mockCatalog)

	_, err := handler.Handle(context.Background(), command.CreateStockCommand{
		TenantID: "t1",
		Input:    domain.StockWriteInput{Name: ""},
	})

	be := domain.AsBusinessError(err)
	require.NotNil(t, be)
	assert.Equal(t, domain.CodeNameRequired, be.Code)
	// Nothing was read or written.
	mockRepo.AssertNotCalled(t, "NameExists")
	mockRepo.AssertNotCalled(t, "Create")
	mockCatalog.AssertNotCalled(t, "GetProducts")
}

func TestCreateStock_DuplicateName(t *testing.T) {
	mockRepo := new(MockStockRepository)
	mockCatalog := new(MockCatalogReader)
	handler := command.NewCreateStockHandler(mockRepo, mockCatalog)

	mockRepo.On("NameExists", mock.Anything, "t1", "Warehouse A", "").Return(true, nil)

	_, err := handler.Handle(context.Background(), command.CreateStockCommand{
		TenantID: "t1",
		Input:    domain.StockWriteInput{Name: "Warehouse A"},
	})

	be := domain.AsBusinessError(err)
	require.NotNil(t, be)
	assert.Equal(t, domain.CodeDuplicateName, be.Code)
	assert.Equal(t, "Warehouse A", be.Data["Name"])
	mockRepo.AssertNotCalled(t, "Create")
}

func TestCreateStock_ProductNotFound(t *testing.T) {
	mockRepo := new(MockStockRepository)
	mockCatalog := new(MockCatalogReader)
	handler := command.NewCreateStockHandler(mockRepo, mockCatalog)

	mockRepo.On("NameExists", mock.Anything, "t1", "Warehouse A", "").Return(false, nil)
	mockCatalog.On("GetProducts", mock.Anything, "t1", []string{"missing"}).Return(map[string]domain.CatalogProduct{}, nil)

	_, err := handler.Handle(context.Background(), command.CreateStockCommand{
		TenantID: "t1",
		Input: domain.StockWriteInput{
			Name:     "Warehouse A",
			Products: []domain.ProductLineInput{{ProductID: "missing"}},
		},
	})

	be := domain.AsBusinessError(err)
	require.NotNil(t, be)
	assert.Equal(t, domain.CodeProductNotFound, be.Code)
	assert.Equal(t, "missing", be.Data["ProductId"])
	mockRepo.AssertNotCalled(t, "Create")
}

func TestCreateStock_VariantNotFound(t *testing.T) {
	mockRepo := new(MockStockRepository)
	mockCatalog := new(MockCatalogReader)
	handler := command.NewCreateStockHandler(mockRepo, mockCatalog)

	mockRepo.On("NameExists", mock.Anything, "t1", "Warehouse A", "").Return(false, nil)
	mockCatalog.On("GetProducts", mock.Anything, "t1", []string{"p1"}).Return(map[string]domain.CatalogProduct{
		"p1": {ID: "p1", Name: "Product One"},
	}, nil)
	mockCatalog.On("GetVariants", mock.Anything, "t1", []string{"ghost"}).Return(map[string]domain.CatalogVariant{}, nil)

	_, err := handler.Handle(context.Background(), command.CreateStockCommand{
		TenantID: "t1",
		Input: domain.StockWriteInput{
			Name: "Warehouse A",
			Products: []domain.ProductLineInput{
				{ProductID: "p1", Variants: []domain.VariantLineInput{
					{ProductVariantID: strPtr("ghost"), Quantity: 1},
				}},
			},
		},
	})

	be := domain.AsBusinessError(err)
	require.NotNil(t, be)
	assert.Equal(t, domain.CodeVariantNotFound, be.Code)
	assert.Equal(t, "ghost", be.Data["ProductVariantId"])
	mockRepo.AssertNotCalled(t, "Create")
}

func TestCreateStock_VariantBelongsToOtherProduct(t *testing.T) {
	mockRepo := new(MockStockRepository)
	mockCatalog := new(MockCatalogReader)
	handler := command.NewCreateStockHandler(mockRepo, mockCatalog)

	mockRepo.On("NameExists", mock.Anything, "t1", "Warehouse A", "").Return(false, nil)
	mockCatalog.On("GetProducts", mock.Anything, "t1", []string{"p1"}).Return(map[string]domain.CatalogProduct{
		"p1": {ID: "p1", Name: "Product One"},
	}, nil)
	mockCatalog.On("GetVariants", mock.Anything, "t1", []string{"v9"}).Return(map[string]domain.CatalogVariant{
		"v9": {ID: "v9", ProductID: "other-product", StockQuantity: 10},
	}, nil)

	_, err := handler.Handle(context.Background(), command.CreateStockCommand{
		TenantID: "t1",
		Input: domain.StockWriteInput{
			Name: "Warehouse A",
			Products: []domain.ProductLineInput{
				{ProductID: "p1", Variants: []domain.VariantLineInput{
					{ProductVariantID: strPtr("v9"), Quantity: 1},
				}},
			},
		},
	})

	be := domain.AsBusinessError(err)
	require.NotNil(t, be)
	assert.Equal(t, domain.CodeProductVariantMismatch, be.Code)
	assert.Equal(t, "p1", be.Data["ProductId"])
	assert.Equal(t, "v9", be.Data["ProductVariantId"])
	mockRepo.AssertNotCalled(t, "Create")
}

func TestCreateStock_QuantityExceedsAvailableStock(t *testing.T) {
	mockRepo := new(MockStockRepository)
	mockCatalog := new(MockCatalogReader)
	handler := command.NewCreateStockHandler(mockRepo, mockCatalog)

	mockRepo.On("NameExists", mock.Anything, "t1", "Warehouse A", "").Return(false, nil)
	mockCatalog.On("GetProducts", mock.Anything, "t1", []string{"p1"}).Return(map[string]domain.CatalogProduct{
		"p1": {ID: "p1", Name: "Product One"},
	}, nil)
	mockCatalog.On("GetVariants", mock.Anything, "t1", []string{"v1"}).Return(map[string]domain.CatalogVariant{
		"v1": {ID: "v1", ProductID: "p1", StockQuantity: 3},
	}, nil)

	_, err := handler.Handle(context.Background(), command.CreateStockCommand{
		TenantID: "t1",
		Input: domain.StockWriteInput{
			Name: "Warehouse A",
			Products: []domain.ProductLineInput{
				{ProductID: "p1", Variants: []domain.VariantLineInput{
					{ProductVariantID: strPtr("v1"), Quantity: 7},
				}},
			},
		},
	})

	be := domain.AsBusinessError(err)
	require.NotNil(t, be)
	assert.Equal(t, domain.CodeQuantityExceedsVariantStock, be.Code)
	assert.Equal(t, "p1", be.Data["ProductId"])
	assert.Equal(t, "v1", be.Data["ProductVariantId"])
	assert.Equal(t, 7, be.Data["RequestedQuantity"])
	assert.Equal(t, 3, be.Data["AvailableStock"])
	mockRepo.AssertNotCalled(t, "Create")
}

func TestCreateStock_QuantityEqualToAvailableStockAllowed(t *testing.T) {
	mockRepo := new(MockStockRepository)
	mockCatalog := new(MockCatalogReader)
	handler := command.NewCreateStockHandler(mockRepo, mockCatalog)

	mockRepo.On("NameExists", mock.Anything, "t1", "Warehouse A", "").Return(false, nil)
	mockCatalog.On("GetProducts", mock.Anything, "t1", []string{"p1"}).Return(map[string]domain.CatalogProduct{
		"p1": {ID: "p1", Name: "Product One"},
	}, nil)
	mockCatalog.On("GetVariants", mock.Anything, "t1", []string{"v1"}).Return(map[string]domain.CatalogVariant{
		"v1": {ID: "v1", ProductID: "p1", StockQuantity: 5},
	}, nil)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	mockRepo.On("ReplaceChildren", mock.Anything, "t1", mock.Anything, mock.Anything).Return(nil)

	_, err := handler.Handle(context.Background(), command.CreateStockCommand{
		TenantID: "t1",
		Input: domain.StockWriteInput{
			Name: "Warehouse A",
			Products: []domain.ProductLineInput{
				{ProductID: "p1", Variants: []domain.VariantLineInput{
					{ProductVariantID: strPtr("v1"), Quantity: 5},
				}},
			},
		},
	})

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestCreateStock_EmptyProductListAllowed(t *testing.T) {
	mockRepo := new(MockStockRepository)
	mockCatalog := new(MockCatalogReader)
	handler := command.NewCreateStockHandler(mockRepo, mockCatalog)

	mockRepo.On("NameExists", mock.Anything, "t1", "Empty", "").Return(false, nil)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	mockRepo.On("ReplaceChildren", mock.Anything, "t1", mock.Anything, mock.MatchedBy(func(lines []domain.StockProductLine) bool {
		return len(lines) == 0
	})).Return(nil)

	_, err := handler.Handle(context.Background(), command.CreateStockCommand{
		TenantID: "t1",
		Input:    domain.StockWriteInput{Name: "Empty"},
	})

	assert.NoError(t, err)
	// No catalog lookups for an empty document.
	mockCatalog.AssertNotCalled(t, "GetProducts")
	mockRepo.AssertExpectations(t)
}
