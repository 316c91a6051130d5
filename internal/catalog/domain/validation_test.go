package domain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockly/stock-management/internal/catalog/domain"
)

func floatPtr(f float64) *float64 {
	return &f
}

func TestValidateProductInput_Valid(t *testing.T) {
	err := domain.ValidateProductInput(domain.ProductWriteInput{
		Name:      "Classic Tee",
		BasePrice: floatPtr(19.90),
		Status:    domain.StatusActive,
		Variants: []domain.VariantWriteInput{
			{Price: 21.90, StockQuantity: 5, Options: []domain.OptionInput{
				{Name: "Color", Value: "Black"},
				{Name: "Size", Value: "M"},
			}},
		},
	})

	assert.NoError(t, err)
}

func TestValidateProductInput_NameRequired(t *testing.T) {
	err := domain.ValidateProductInput(domain.ProductWriteInput{Name: "   "})

	be := domain.AsBusinessError(err)
	require.NotNil(t, be)
	assert.Equal(t, domain.CodeNameRequired, be.Code)
}

func TestValidateProductInput_NameTooLong(t *testing.T) {
	err := domain.ValidateProductInput(domain.ProductWriteInput{
		Name: strings.Repeat("x", domain.MaxNameLength+1),
	})

	be := domain.AsBusinessError(err)
	require.NotNil(t, be)
	assert.Equal(t, domain.CodeNameTooLong, be.Code)
	assert.Equal(t, domain.MaxNameLength, be.Data["MaxLength"])
}

func TestValidateProductInput_NegativeBasePrice(t *testing.T) {
	err := domain.ValidateProductInput(domain.ProductWriteInput{
		Name:      "Tee",
		BasePrice: floatPtr(-1),
	})

	be := domain.AsBusinessError(err)
	require.NotNil(t, be)
	assert.Equal(t, domain.CodePriceNegative, be.Code)
}

func TestValidateProductInput_InvalidStatus(t *testing.T) {
	err := domain.ValidateProductInput(domain.ProductWriteInput{
		Name:   "Tee",
		Status: "archived",
	})

	be := domain.AsBusinessError(err)
	require.NotNil(t, be)
	assert.Equal(t, domain.CodeInvalidStatus, be.Code)
}

func TestValidateProductInput_EmptyStatusAllowed(t *testing.T) {
	err := domain.ValidateProductInput(domain.ProductWriteInput{Name: "Tee"})

	assert.NoError(t, err)
}

func TestValidateVariantInput_NegativeStock(t *testing.T) {
	err := domain.ValidateVariantInput(domain.VariantWriteInput{StockQuantity: -1})

	be := domain.AsBusinessError(err)
	require.NotNil(t, be)
	assert.Equal(t, domain.CodeStockNegative, be.Code)
}

func TestValidateVariantInput_NegativePrice(t *testing.T) {
	err := domain.ValidateVariantInput(domain.VariantWriteInput{Price: -0.01})

	be := domain.AsBusinessError(err)
	require.NotNil(t, be)
	assert.Equal(t, domain.CodeVariantPriceNeg, be.Code)
}

func TestValidateVariantInput_OptionNameRequired(t *testing.T) {
	err := domain.ValidateVariantInput(domain.VariantWriteInput{
		Options: []domain.OptionInput{{Name: "  ", Value: "Black"}},
	})

	be := domain.AsBusinessError(err)
	require.NotNil(t, be)
	assert.Equal(t, domain.CodeOptionNameEmpty, be.Code)
}

func TestValidateVariantInput_DuplicateOptionNameCaseInsensitive(t *testing.T) {
	err := domain.ValidateVariantInput(domain.VariantWriteInput{
		Options: []domain.OptionInput{
			{Name: "Color", Value: "Black"},
			{Name: "color", Value: "White"},
		},
	})

	be := domain.AsBusinessError(err)
	require.NotNil(t, be)
	assert.Equal(t, domain.CodeDuplicateOption, be.Code)
}

func TestValidateProductInput_SurfacesVariantError(t *testing.T) {
	err := domain.ValidateProductInput(domain.ProductWriteInput{
		Name: "Tee",
		Variants: []domain.VariantWriteInput{
			{StockQuantity: 3},
			{StockQuantity: -3},
		},
	})

	be := domain.AsBusinessError(err)
	require.NotNil(t, be)
	assert.Equal(t, domain.CodeStockNegative, be.Code)
}
