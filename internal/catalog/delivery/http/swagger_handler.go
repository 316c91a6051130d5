package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterSwaggerDocs registers Swagger documentation routes
// @Summary Swagger documentation
// @Description Swagger API documentation for Catalog Service
// @Tags Swagger
// @Success 200 {string} string "Swagger UI"
// @Router /swagger/ [get]
func RegisterSwaggerDocs(router *mux.Router, swaggerHandler http.Handler) {
	router.PathPrefix("/swagger/").Handler(swaggerHandler)
}

// CreateProduct godoc
// @Summary Create a product
// @Description Creates a product, optionally with its variants and options
// @Tags Products
// @Accept json
// @Produce json
// @Param X-Tenant-ID header string false "Tenant id (empty for host tenant)"
// @Success 201 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string,code=string}
// @Router /api/products [post]
func (h *ProductHandler) CreateProductDoc() {}

// GetProduct godoc
// @Summary Get a product
// @Description Returns the product with its variants and options
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/products/{id} [get]
func (h *ProductHandler) GetProductDoc() {}

// ListProducts godoc
// @Summary List products
// @Description Filterable, sortable, paged product listing
// @Tags Products
// @Produce json
// @Param filterText query string false "Matches name or description"
// @Param category query string false "Exact category"
// @Param status query string false "active or inactive"
// @Param sorting query string false "Name, Category or CreationTime, optionally with desc"
// @Param skipCount query int false "Rows to skip"
// @Param maxResultCount query int false "Page size"
// @Success 200 {object} object{success=bool,data=object{totalCount=int,items=[]object}}
// @Router /api/products [get]
func (h *ProductHandler) ListProductsDoc() {}

// UpdateVariantStock godoc
// @Summary Set variant stock quantity
// @Description Sets the available quantity checked by stock aggregates
// @Tags Products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param variantId path string true "Variant ID"
// @Success 200 {object} object{success=bool,message=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/products/{id}/variants/{variantId}/stock [put]
func (h *ProductHandler) UpdateVariantStockDoc() {}
