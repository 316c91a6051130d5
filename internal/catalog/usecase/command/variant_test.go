package command_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/stockly/stock-management/internal/catalog/domain"
	"github.com/stockly/stock-management/internal/catalog/usecase/command"
)

func TestAddVariant_SetsHasVariantsOnFirst(t *testing.T) {
	mockRepo := new(MockProductRepository)
	handler := command.NewAddVariantHandler(mockRepo)

	mockRepo.On("FindByID", mock.Anything, "t1", "p1").Return(
		&domain.Product{ID: "p1", TenantID: "t1", Name: "Tee", HasVariants: false}, nil)
	mockRepo.On("AddVariant", mock.Anything, mock.MatchedBy(func(v *domain.ProductVariant) bool {
		return v.ProductID == "p1" && v.TenantID == "t1" && *v.SKU == "TEE-S" &&
			len(v.Options) == 1 && v.Options[0].Name == "Size" && v.Options[0].Position == 0
	})).Return(nil)
	mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(p *domain.Product) bool {
		return p.ID == "p1" && p.HasVariants
	})).Return(nil)

	variant, err := handler.Handle(context.Background(), command.AddVariantCommand{
		TenantID:  "t1",
		ProductID: "p1",
		Input: domain.VariantWriteInput{
			SKU:           strPtr("TEE-S"),
			Price:         19.90,
			StockQuantity: 5,
			Options:       []domain.OptionInput{{Name: " Size ", Value: "S"}},
		},
	})

	require.NoError(t, err)
	assert.NotEmpty(t, variant.ID)
	mockRepo.AssertExpectations(t)
}

func TestAddVariant_FlagAlreadySetSkipsUpdate(t *testing.T) {
	mockRepo := new(MockProductRepository)
	handler := command.NewAddVariantHandler(mockRepo)

	mockRepo.On("FindByID", mock.Anything, "t1", "p1").Return(
		&domain.Product{ID: "p1", TenantID: "t1", Name: "Tee", HasVariants: true}, nil)
	mockRepo.On("AddVariant", mock.Anything, mock.Anything).Return(nil)

	_, err := handler.Handle(context.Background(), command.AddVariantCommand{
		TenantID:  "t1",
		ProductID: "p1",
		Input:     domain.VariantWriteInput{Price: 9.90, StockQuantity: 1},
	})

	require.NoError(t, err)
	mockRepo.AssertNotCalled(t, "Update")
}

func TestAddVariant_ProductNotFound(t *testing.T) {
	mockRepo := new(MockProductRepository)
	handler := command.NewAddVariantHandler(mockRepo)

	mockRepo.On("FindByID", mock.Anything, "t1", "missing").Return(nil, domain.ErrProductNotFound)

	_, err := handler.Handle(context.Background(), command.AddVariantCommand{
		TenantID:  "t1",
		ProductID: "missing",
		Input:     domain.VariantWriteInput{Price: 9.90},
	})

	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	mockRepo.AssertNotCalled(t, "AddVariant")
}

func TestUpdateVariant_NormalizesBlankSKUToNil(t *testing.T) {
	mockRepo := new(MockProductRepository)
	handler := command.NewUpdateVariantHandler(mockRepo)

	mockRepo.On("FindVariantByID", mock.Anything, "t1", "p1", "v1").Return(
		&domain.ProductVariant{ID: "v1", TenantID: "t1", ProductID: "p1", SKU: strPtr("OLD")}, nil)
	mockRepo.On("UpdateVariant", mock.Anything, mock.MatchedBy(func(v *domain.ProductVariant) bool {
		return v.ID == "v1" && v.SKU == nil && v.Price == 12.50 && v.StockQuantity == 7
	})).Return(nil)

	variant, err := handler.Handle(context.Background(), command.UpdateVariantCommand{
		TenantID:  "t1",
		ProductID: "p1",
		VariantID: "v1",
		Input:     domain.VariantWriteInput{SKU: strPtr("   "), Price: 12.50, StockQuantity: 7},
	})

	require.NoError(t, err)
	assert.Nil(t, variant.SKU)
	mockRepo.AssertNotCalled(t, "ReplaceVariantOptions")
}

func TestUpdateVariant_ReplacesOptions(t *testing.T) {
	mockRepo := new(MockProductRepository)
	handler := command.NewUpdateVariantHandler(mockRepo)

	mockRepo.On("FindVariantByID", mock.Anything, "t1", "p1", "v1").Return(
		&domain.ProductVariant{ID: "v1", TenantID: "t1", ProductID: "p1"}, nil)
	mockRepo.On("ReplaceVariantOptions", mock.Anything, "v1", mock.MatchedBy(func(opts []domain.VariantOption) bool {
		return len(opts) == 2 &&
			opts[0].Name == "Color" && opts[0].Position == 0 &&
			opts[1].Name == "Size" && opts[1].Position == 1
	})).Return(nil)
	mockRepo.On("UpdateVariant", mock.Anything, mock.Anything).Return(nil)

	variant, err := handler.Handle(context.Background(), command.UpdateVariantCommand{
		TenantID:  "t1",
		ProductID: "p1",
		VariantID: "v1",
		Input: domain.VariantWriteInput{
			Price: 10,
			Options: []domain.OptionInput{
				{Name: "Color", Value: "Black"},
				{Name: "Size", Value: "M"},
			},
		},
	})

	require.NoError(t, err)
	require.Len(t, variant.Options, 2)
	mockRepo.AssertExpectations(t)
}

func TestUpdateVariant_NotFound(t *testing.T) {
	mockRepo := new(MockProductRepository)
	handler := command.NewUpdateVariantHandler(mockRepo)

	mockRepo.On("FindVariantByID", mock.Anything, "t1", "p1", "missing").Return(nil, domain.ErrVariantNotFound)

	_, err := handler.Handle(context.Background(), command.UpdateVariantCommand{
		TenantID:  "t1",
		ProductID: "p1",
		VariantID: "missing",
		Input:     domain.VariantWriteInput{Price: 10},
	})

	assert.ErrorIs(t, err, domain.ErrVariantNotFound)
	mockRepo.AssertNotCalled(t, "UpdateVariant")
}

func TestRemoveVariant_ClearsFlagWhenLastRemoved(t *testing.T) {
	mockRepo := new(MockProductRepository)
	handler := command.NewRemoveVariantHandler(mockRepo)

	mockRepo.On("RemoveVariant", mock.Anything, "t1", "p1", "v1").Return(nil)
	mockRepo.On("FindByID", mock.Anything, "t1", "p1").Return(
		&domain.Product{ID: "p1", TenantID: "t1", Name: "Tee", HasVariants: true, Variants: []domain.ProductVariant{}}, nil)
	mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(p *domain.Product) bool {
		return !p.HasVariants
	})).Return(nil)

	err := handler.Handle(context.Background(), command.RemoveVariantCommand{
		TenantID: "t1", ProductID: "p1", VariantID: "v1",
	})

	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestRemoveVariant_OthersRemainKeepsFlag(t *testing.T) {
	mockRepo := new(MockProductRepository)
	handler := command.NewRemoveVariantHandler(mockRepo)

	mockRepo.On("RemoveVariant", mock.Anything, "t1", "p1", "v1").Return(nil)
	mockRepo.On("FindByID", mock.Anything, "t1", "p1").Return(
		&domain.Product{ID: "p1", TenantID: "t1", Name: "Tee", HasVariants: true,
			Variants: []domain.ProductVariant{{ID: "v2", ProductID: "p1"}}}, nil)

	err := handler.Handle(context.Background(), command.RemoveVariantCommand{
		TenantID: "t1", ProductID: "p1", VariantID: "v1",
	})

	require.NoError(t, err)
	mockRepo.AssertNotCalled(t, "Update")
}

func TestRemoveVariant_NotFound(t *testing.T) {
	mockRepo := new(MockProductRepository)
	handler := command.NewRemoveVariantHandler(mockRepo)

	mockRepo.On("RemoveVariant", mock.Anything, "t1", "p1", "missing").Return(domain.ErrVariantNotFound)

	err := handler.Handle(context.Background(), command.RemoveVariantCommand{
		TenantID: "t1", ProductID: "p1", VariantID: "missing",
	})

	assert.ErrorIs(t, err, domain.ErrVariantNotFound)
	mockRepo.AssertNotCalled(t, "FindByID")
}

func TestUpdateVariantStock_Success(t *testing.T) {
	mockRepo := new(MockProductRepository)
	handler := command.NewUpdateVariantStockHandler(mockRepo)

	mockRepo.On("UpdateVariantStock", mock.Anything, "t1", "p1", "v1", 42).Return(nil)

	err := handler.Handle(context.Background(), command.UpdateVariantStockCommand{
		TenantID: "t1", ProductID: "p1", VariantID: "v1", Quantity: 42,
	})

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestUpdateVariantStock_NegativeRejected(t *testing.T) {
	mockRepo := new(MockProductRepository)
	handler := command.NewUpdateVariantStockHandler(mockRepo)

	err := handler.Handle(context.Background(), command.UpdateVariantStockCommand{
		TenantID: "t1", ProductID: "p1", VariantID: "v1", Quantity: -1,
	})

	be := domain.AsBusinessError(err)
	require.NotNil(t, be)
	assert.Equal(t, domain.CodeStockNegative, be.Code)
	mockRepo.AssertNotCalled(t, "UpdateVariantStock")
}

func TestUpdateVariantStock_ZeroAllowed(t *testing.T) {
	mockRepo := new(MockProductRepository)
	handler := command.NewUpdateVariantStockHandler(mockRepo)

	mockRepo.On("UpdateVariantStock", mock.Anything, "t1", "p1", "v1", 0).Return(nil)

	err := handler.Handle(context.Background(), command.UpdateVariantStockCommand{
		TenantID: "t1", ProductID: "p1", VariantID: "v1", Quantity: 0,
	})

	assert.NoError(t, err)
}
