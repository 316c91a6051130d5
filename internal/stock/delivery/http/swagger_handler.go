package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterSwaggerDocs registers Swagger documentation routes
// @Summary Swagger documentation
// @Description Swagger API documentation for Stock Service
// @Tags Swagger
// @Success 200 {string} string "Swagger UI"
// @Router /swagger/ [get]
func RegisterSwaggerDocs(router *mux.Router, swaggerHandler http.Handler) {
	router.PathPrefix("/swagger/").Handler(swaggerHandler)
}

// CreateStock godoc
// @Summary Create a stock aggregate
// @Description Validates and persists a full stock document (name + product/variant lines)
// @Tags Stocks
// @Accept json
// @Produce json
// @Param X-Tenant-ID header string false "Tenant id (empty for host tenant)"
// @Param request body object{name=string,products=[]object{productId=string,variants=[]object{productVariantId=string,quantity=int}}} true "Stock document"
// @Success 201 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string,code=string,details=object}
// @Failure 409 {object} object{success=bool,error=string,code=string,details=object}
// @Router /api/stocks [post]
func (h *StockHandler) CreateStockDoc() {}

// GetStock godoc
// @Summary Get stock detail
// @Description Returns the denormalized detail view with product names and variant SKUs
// @Tags Stocks
// @Produce json
// @Param id path string true "Stock ID"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/stocks/{id} [get]
func (h *StockHandler) GetStockDoc() {}

// ListStocks godoc
// @Summary List stock summaries
// @Description Paged {id, name} summaries ordered by creation time descending
// @Tags Stocks
// @Produce json
// @Param skipCount query int false "Rows to skip"
// @Param maxResultCount query int false "Page size"
// @Success 200 {object} object{success=bool,data=object{totalCount=int,items=[]object}}
// @Router /api/stocks [get]
func (h *StockHandler) ListStocksDoc() {}

// UpdateStock godoc
// @Summary Replace a stock aggregate
// @Description Replaces the aggregate's children entirely with the submitted tree
// @Tags Stocks
// @Accept json
// @Produce json
// @Param id path string true "Stock ID"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string,code=string,details=object}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/stocks/{id} [put]
func (h *StockHandler) UpdateStockDoc() {}

// DeleteStock godoc
// @Summary Delete a stock aggregate
// @Description Removes the aggregate and all its lines, children first
// @Tags Stocks
// @Produce json
// @Param id path string true "Stock ID"
// @Success 200 {object} object{success=bool,message=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/stocks/{id} [delete]
func (h *StockHandler) DeleteStockDoc() {}
