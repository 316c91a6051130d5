//go:build wireinject
// +build wireinject

package catalog

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	httpDelivery "github.com/stockly/stock-management/internal/catalog/delivery/http"
	"github.com/stockly/stock-management/internal/catalog/domain"
	"github.com/stockly/stock-management/internal/catalog/repository"
	"github.com/stockly/stock-management/internal/catalog/usecase/command"
	"github.com/stockly/stock-management/internal/catalog/usecase/query"
	"github.com/stockly/stock-management/kafka"
)

// ProvideProductRepository provides the product repository wrapped with tracing
func ProvideProductRepository(db *gorm.DB) domain.ProductRepository {
	return repository.NewTracingProductRepository(repository.NewGormProductRepository(db))
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideProductRepository,
)

var UsecaseSet = wire.NewSet(
	command.NewCreateProductHandler,
	command.NewUpdateProductHandler,
	command.NewDeleteProductHandler,
	command.NewAddVariantHandler,
	command.NewUpdateVariantHandler,
	command.NewRemoveVariantHandler,
	command.NewUpdateVariantStockHandler,
	query.NewGetProductHandler,
	query.NewListProductsHandler,
	query.NewGetStatsHandler,
)

// InitializeHTTPHandler initializes the HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB, publisher *kafka.Publisher) (*httpDelivery.ProductHandler, error) {
	wire.Build(
		RepositorySet,
		UsecaseSet,
		httpDelivery.NewProductHandler,
	)
	return nil, nil
}
