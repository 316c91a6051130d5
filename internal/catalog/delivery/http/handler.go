package http

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/stockly/stock-management/internal/catalog/domain"
	"github.com/stockly/stock-management/internal/catalog/usecase/command"
	"github.com/stockly/stock-management/internal/catalog/usecase/query"
	"github.com/stockly/stock-management/kafka"
	"github.com/stockly/stock-management/pkg/logger"
)

// TenantHeader names the header carrying the caller's tenant id. An empty
// or absent header addresses the host tenant.
const TenantHeader = "X-Tenant-ID"

// ProductHandler handles HTTP requests for the catalog using CQRS pattern
type ProductHandler struct {
	// Command handlers
	createHandler       *command.CreateProductHandler
	updateHandler       *command.UpdateProductHandler
	deleteHandler       *command.DeleteProductHandler
	addVariantHandler   *command.AddVariantHandler
	updVariantHandler   *command.UpdateVariantHandler
	rmVariantHandler    *command.RemoveVariantHandler
	variantStockHandler *command.UpdateVariantStockHandler

	// Query handlers
	getHandler   *query.GetProductHandler
	listHandler  *query.ListProductsHandler
	statsHandler *query.GetStatsHandler

	publisher *kafka.Publisher

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewProductHandler creates a new product handler. The Kafka publisher may
// be nil; events are then skipped.
func NewProductHandler(
	createHandler *command.CreateProductHandler,
	updateHandler *command.UpdateProductHandler,
	deleteHandler *command.DeleteProductHandler,
	addVariantHandler *command.AddVariantHandler,
	updVariantHandler *command.UpdateVariantHandler,
	rmVariantHandler *command.RemoveVariantHandler,
	variantStockHandler *command.UpdateVariantStockHandler,
	getHandler *query.GetProductHandler,
	listHandler *query.ListProductsHandler,
	statsHandler *query.GetStatsHandler,
	publisher *kafka.Publisher,
) *ProductHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_service_requests_total",
			Help: "Total number of requests to catalog service",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_service_request_duration_seconds",
			Help:    "Duration of catalog service requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)

	return &ProductHandler{
		createHandler:       createHandler,
		updateHandler:       updateHandler,
		deleteHandler:       deleteHandler,
		addVariantHandler:   addVariantHandler,
		updVariantHandler:   updVariantHandler,
		rmVariantHandler:    rmVariantHandler,
		variantStockHandler: variantStockHandler,
		getHandler:          getHandler,
		listHandler:         listHandler,
		statsHandler:        statsHandler,
		publisher:           publisher,
		requestCounter:      requestCounter,
		requestLatency:      requestLatency,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Code    string      `json:"code,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *ProductHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

// RegisterRoutes registers all catalog routes
func (h *ProductHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/products", h.metricsMiddleware("/api/products", h.ListProducts)).Methods("GET")
	router.HandleFunc("/api/products", h.metricsMiddleware("/api/products", h.CreateProduct)).Methods("POST")
	router.HandleFunc("/api/products/stats", h.metricsMiddleware("/api/products/stats", h.GetStats)).Methods("GET")
	router.HandleFunc("/api/products/{id}", h.metricsMiddleware("/api/products/{id}", h.GetProduct)).Methods("GET")
	router.HandleFunc("/api/products/{id}", h.metricsMiddleware("/api/products/{id}", h.UpdateProduct)).Methods("PUT")
	router.HandleFunc("/api/products/{id}", h.metricsMiddleware("/api/products/{id}", h.DeleteProduct)).Methods("DELETE")

	router.HandleFunc("/api/products/{id}/variants", h.metricsMiddleware("/api/products/{id}/variants", h.AddVariant)).Methods("POST")
	router.HandleFunc("/api/products/{id}/variants/{variantId}", h.metricsMiddleware("/api/products/{id}/variants/{variantId}", h.UpdateVariant)).Methods("PUT")
	router.HandleFunc("/api/products/{id}/variants/{variantId}", h.metricsMiddleware("/api/products/{id}/variants/{variantId}", h.RemoveVariant)).Methods("DELETE")
	router.HandleFunc("/api/products/{id}/variants/{variantId}/stock", h.metricsMiddleware("/api/products/{id}/variants/{variantId}/stock", h.UpdateVariantStock)).Methods("PUT")
}

// RegisterHealthCheck registers the health check endpoint
func (h *ProductHandler) RegisterHealthCheck(router *mux.Router, db *sql.DB) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(); err != nil {
			respondJSON(w, http.StatusServiceUnavailable, Response{
				Success: false,
				Error:   "Database unavailable",
			})
			return
		}
		respondJSON(w, http.StatusOK, Response{
			Success: true,
			Message: "Catalog service is healthy",
		})
	}).Methods("GET")
}

// CreateProduct handles POST /api/products
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	tenantID := r.Header.Get(TenantHeader)

	var input domain.ProductWriteInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	product, err := h.createHandler.Handle(r.Context(), command.CreateProductCommand{
		TenantID: tenantID,
		Input:    input,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Product created successfully",
		Data:    product,
	})
}

// GetProduct handles GET /api/products/{id}
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	tenantID := r.Header.Get(TenantHeader)
	id := mux.Vars(r)["id"]

	product, err := h.getHandler.Handle(r.Context(), query.GetProductQuery{TenantID: tenantID, ID: id})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    product,
	})
}

// ListProducts handles GET /api/products
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	tenantID := r.Header.Get(TenantHeader)
	params := r.URL.Query()
	skipCount, _ := strconv.Atoi(params.Get("skipCount"))
	maxResultCount, _ := strconv.Atoi(params.Get("maxResultCount"))

	page, err := h.listHandler.Handle(r.Context(), query.ListProductsQuery{
		TenantID: tenantID,
		Filter: domain.ProductFilter{
			FilterText:     params.Get("filterText"),
			Name:           params.Get("name"),
			Category:       params.Get("category"),
			Status:         params.Get("status"),
			Sorting:        params.Get("sorting"),
			SkipCount:      skipCount,
			MaxResultCount: maxResultCount,
		},
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    page,
	})
}

// GetStats handles GET /api/products/stats
func (h *ProductHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	tenantID := r.Header.Get(TenantHeader)

	stats, err := h.statsHandler.Handle(r.Context(), query.GetStatsQuery{TenantID: tenantID})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    stats,
	})
}

// UpdateProduct handles PUT /api/products/{id}
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	tenantID := r.Header.Get(TenantHeader)
	id := mux.Vars(r)["id"]

	var input domain.ProductWriteInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	product, err := h.updateHandler.Handle(r.Context(), command.UpdateProductCommand{
		TenantID: tenantID,
		ID:       id,
		Input:    input,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Product updated successfully",
		Data:    product,
	})
}

// DeleteProduct handles DELETE /api/products/{id}
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	tenantID := r.Header.Get(TenantHeader)
	id := mux.Vars(r)["id"]

	ctx := r.Context()
	if err := h.deleteHandler.Handle(ctx, command.DeleteProductCommand{TenantID: tenantID, ID: id}); err != nil {
		respondError(w, r, err)
		return
	}

	if h.publisher != nil {
		if err := h.publisher.PublishProductDeleted(ctx, kafka.ProductDeletedEvent{
			TenantID:  tenantID,
			ProductID: id,
		}); err != nil {
			logger.Warn(ctx).Err(err).Str("product_id", id).Msg("Failed to publish product.deleted event")
		}
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Product deleted successfully",
	})
}

// AddVariant handles POST /api/products/{id}/variants
func (h *ProductHandler) AddVariant(w http.ResponseWriter, r *http.Request) {
	tenantID := r.Header.Get(TenantHeader)
	productID := mux.Vars(r)["id"]

	var input domain.VariantWriteInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	variant, err := h.addVariantHandler.Handle(r.Context(), command.AddVariantCommand{
		TenantID:  tenantID,
		ProductID: productID,
		Input:     input,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Variant added successfully",
		Data:    variant,
	})
}

// UpdateVariant handles PUT /api/products/{id}/variants/{variantId}
func (h *ProductHandler) UpdateVariant(w http.ResponseWriter, r *http.Request) {
	tenantID := r.Header.Get(TenantHeader)
	vars := mux.Vars(r)

	var input domain.VariantWriteInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	variant, err := h.updVariantHandler.Handle(r.Context(), command.UpdateVariantCommand{
		TenantID:  tenantID,
		ProductID: vars["id"],
		VariantID: vars["variantId"],
		Input:     input,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Variant updated successfully",
		Data:    variant,
	})
}

// RemoveVariant handles DELETE /api/products/{id}/variants/{variantId}
func (h *ProductHandler) RemoveVariant(w http.ResponseWriter, r *http.Request) {
	tenantID := r.Header.Get(TenantHeader)
	vars := mux.Vars(r)

	if err := h.rmVariantHandler.Handle(r.Context(), command.RemoveVariantCommand{
		TenantID:  tenantID,
		ProductID: vars["id"],
		VariantID: vars["variantId"],
	}); err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Variant removed successfully",
	})
}

type updateStockRequest struct {
	StockQuantity int `json:"stockQuantity"`
}

// UpdateVariantStock handles PUT /api/products/{id}/variants/{variantId}/stock
func (h *ProductHandler) UpdateVariantStock(w http.ResponseWriter, r *http.Request) {
	tenantID := r.Header.Get(TenantHeader)
	vars := mux.Vars(r)

	var req updateStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	ctx := r.Context()
	if err := h.variantStockHandler.Handle(ctx, command.UpdateVariantStockCommand{
		TenantID:  tenantID,
		ProductID: vars["id"],
		VariantID: vars["variantId"],
		Quantity:  req.StockQuantity,
	}); err != nil {
		respondError(w, r, err)
		return
	}

	if h.publisher != nil {
		if err := h.publisher.PublishVariantStockChanged(ctx, kafka.VariantStockChangedEvent{
			TenantID:         tenantID,
			ProductID:        vars["id"],
			ProductVariantID: vars["variantId"],
			StockQuantity:    req.StockQuantity,
		}); err != nil {
			logger.Warn(ctx).Err(err).
				Str("variant_id", vars["variantId"]).
				Msg("Failed to publish variant.stock.changed event")
		}
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Variant stock updated successfully",
	})
}

// respondError maps catalog errors onto HTTP statuses.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrProductNotFound) {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "Product not found",
		})
		return
	}
	if errors.Is(err, domain.ErrVariantNotFound) {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "Product variant not found",
		})
		return
	}

	if be := domain.AsBusinessError(err); be != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   be.Error(),
			Code:    be.Code,
			Details: be.Data,
		})
		return
	}

	logger.Error(r.Context()).Err(err).Msg("Catalog request failed")
	respondJSON(w, http.StatusInternalServerError, Response{
		Success: false,
		Error:   "Internal server error",
	})
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
