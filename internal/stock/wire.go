//go:build wireinject
// +build wireinject

package stock

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	httpDelivery "github.com/stockly/stock-management/internal/stock/delivery/http"
	"github.com/stockly/stock-management/internal/stock/domain"
	"github.com/stockly/stock-management/internal/stock/repository"
	"github.com/stockly/stock-management/internal/stock/usecase/command"
	"github.com/stockly/stock-management/internal/stock/usecase/query"
	"github.com/stockly/stock-management/kafka"
)

// ProvideStockRepository provides the stock repository wrapped with tracing
func ProvideStockRepository(db *gorm.DB) domain.StockRepository {
	return repository.NewTracingStockRepository(repository.NewGormStockRepository(db))
}

// ProvideCatalogReader provides the catalog reader wrapped with tracing
func ProvideCatalogReader(db *gorm.DB) domain.CatalogReader {
	return repository.NewTracingCatalogReader(repository.NewGormCatalogReader(db))
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideStockRepository,
	ProvideCatalogReader,
)

var UsecaseSet = wire.NewSet(
	command.NewCreateStockHandler,
	command.NewUpdateStockHandler,
	command.NewDeleteStockHandler,
	query.NewGetStockHandler,
	query.NewListStocksHandler,
)

// InitializeHTTPHandler initializes the HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB, publisher *kafka.Publisher) (*httpDelivery.StockHandler, error) {
	wire.Build(
		RepositorySet,
		UsecaseSet,
		httpDelivery.NewStockHandler,
	)
	return nil, nil
}
