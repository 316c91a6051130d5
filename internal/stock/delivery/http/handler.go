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

	"github.com/stockly/stock-management/internal/stock/domain"
	"github.com/stockly/stock-management/internal/stock/usecase/command"
	"github.com/stockly/stock-management/internal/stock/usecase/query"
	"github.com/stockly/stock-management/kafka"
	"github.com/stockly/stock-management/pkg/logger"
)

// TenantHeader names the header carrying the caller's tenant id. An empty
// or absent header addresses the host tenant.
const TenantHeader = "X-Tenant-ID"

// StockHandler handles HTTP requests for stock aggregates using CQRS pattern
type StockHandler struct {
	// Command handlers
	createHandler *command.CreateStockHandler
	updateHandler *command.UpdateStockHandler
	deleteHandler *command.DeleteStockHandler

	// Query handlers
	getHandler  *query.GetStockHandler
	listHandler *query.ListStocksHandler

	publisher *kafka.Publisher

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewStockHandler creates a new stock handler. The Kafka publisher may be
// nil; events are then skipped.
func NewStockHandler(
	createHandler *command.CreateStockHandler,
	updateHandler *command.UpdateStockHandler,
	deleteHandler *command.DeleteStockHandler,
	getHandler *query.GetStockHandler,
	listHandler *query.ListStocksHandler,
	publisher *kafka.Publisher,
) *StockHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stock_service_requests_total",
			Help: "Total number of requests to stock service",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "stock_service_request_duration_seconds",
			Help:    "Duration of stock service requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)

	return &StockHandler{
		createHandler:  createHandler,
		updateHandler:  updateHandler,
		deleteHandler:  deleteHandler,
		getHandler:     getHandler,
		listHandler:    listHandler,
		publisher:      publisher,
		requestCounter: requestCounter,
		requestLatency: requestLatency,
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
func (h *StockHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

// RegisterRoutes registers all stock routes
func (h *StockHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/stocks", h.metricsMiddleware("/api/stocks", h.ListStocks)).Methods("GET")
	router.HandleFunc("/api/stocks", h.metricsMiddleware("/api/stocks", h.CreateStock)).Methods("POST")
	router.HandleFunc("/api/stocks/{id}", h.metricsMiddleware("/api/stocks/{id}", h.GetStock)).Methods("GET")
	router.HandleFunc("/api/stocks/{id}", h.metricsMiddleware("/api/stocks/{id}", h.UpdateStock)).Methods("PUT")
	router.HandleFunc("/api/stocks/{id}", h.metricsMiddleware("/api/stocks/{id}", h.DeleteStock)).Methods("DELETE")
}

// RegisterHealthCheck registers the health check endpoint
func (h *StockHandler) RegisterHealthCheck(router *mux.Router, db *sql.DB) {
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
			Message: "Stock service is healthy",
		})
	}).Methods("GET")
}

// CreateStock handles POST /api/stocks
func (h *StockHandler) CreateStock(w http.ResponseWriter, r *http.Request) {
	tenantID := r.Header.Get(TenantHeader)

	var input domain.StockWriteInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	ctx := r.Context()
	stock, err := h.createHandler.Handle(ctx, command.CreateStockCommand{
		TenantID: tenantID,
		Input:    input,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	// Return the hydrated detail view, re-read after the write
	detail, err := h.getHandler.Handle(ctx, query.GetStockQuery{TenantID: tenantID, ID: stock.ID})
	if err != nil {
		respondError(w, r, err)
		return
	}

	h.publishReplaced(r, tenantID, detail)

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Stock created successfully",
		Data:    detail,
	})
}

// GetStock handles GET /api/stocks/{id}
func (h *StockHandler) GetStock(w http.ResponseWriter, r *http.Request) {
	tenantID := r.Header.Get(TenantHeader)
	id := mux.Vars(r)["id"]

	detail, err := h.getHandler.Handle(r.Context(), query.GetStockQuery{TenantID: tenantID, ID: id})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    detail,
	})
}

// ListStocks handles GET /api/stocks
func (h *StockHandler) ListStocks(w http.ResponseWriter, r *http.Request) {
	tenantID := r.Header.Get(TenantHeader)
	skipCount, _ := strconv.Atoi(r.URL.Query().Get("skipCount"))
	maxResultCount, _ := strconv.Atoi(r.URL.Query().Get("maxResultCount"))

	page, err := h.listHandler.Handle(r.Context(), query.ListStocksQuery{
		TenantID:       tenantID,
		SkipCount:      skipCount,
		MaxResultCount: maxResultCount,
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

// UpdateStock handles PUT /api/stocks/{id}
func (h *StockHandler) UpdateStock(w http.ResponseWriter, r *http.Request) {
	tenantID := r.Header.Get(TenantHeader)
	id := mux.Vars(r)["id"]

	var input domain.StockWriteInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	ctx := r.Context()
	if _, err := h.updateHandler.Handle(ctx, command.UpdateStockCommand{
		TenantID: tenantID,
		ID:       id,
		Input:    input,
	}); err != nil {
		respondError(w, r, err)
		return
	}

	detail, err := h.getHandler.Handle(ctx, query.GetStockQuery{TenantID: tenantID, ID: id})
	if err != nil {
		respondError(w, r, err)
		return
	}

	h.publishReplaced(r, tenantID, detail)

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Stock updated successfully",
		Data:    detail,
	})
}

// DeleteStock handles DELETE /api/stocks/{id}
func (h *StockHandler) DeleteStock(w http.ResponseWriter, r *http.Request) {
	tenantID := r.Header.Get(TenantHeader)
	id := mux.Vars(r)["id"]

	ctx := r.Context()
	if err := h.deleteHandler.Handle(ctx, command.DeleteStockCommand{TenantID: tenantID, ID: id}); err != nil {
		respondError(w, r, err)
		return
	}

	if h.publisher != nil {
		if err := h.publisher.PublishStockDeleted(ctx, kafka.StockDeletedEvent{
			TenantID: tenantID,
			StockID:  id,
		}); err != nil {
			logger.Warn(ctx).Err(err).Str("stock_id", id).Msg("Failed to publish stock.deleted event")
		}
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Stock deleted successfully",
	})
}

// publishReplaced emits a stock.replaced event; failures are logged, never
// surfaced to the caller.
func (h *StockHandler) publishReplaced(r *http.Request, tenantID string, detail *domain.StockDetail) {
	if h.publisher == nil {
		return
	}
	ctx := r.Context()
	if err := h.publisher.PublishStockReplaced(ctx, kafka.StockReplacedEvent{
		TenantID:     tenantID,
		StockID:      detail.ID,
		Name:         detail.Name,
		ProductCount: len(detail.Products),
	}); err != nil {
		logger.Warn(ctx).Err(err).Str("stock_id", detail.ID).Msg("Failed to publish stock.replaced event")
	}
}

// respondError maps engine errors onto HTTP statuses: business errors carry
// their stable code plus structured data, missing aggregates map to 404.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrStockNotFound) {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "Stock not found",
		})
		return
	}

	if be := domain.AsBusinessError(err); be != nil {
		status := http.StatusBadRequest
		if be.Code == domain.CodeDuplicateName {
			status = http.StatusConflict
		}
		respondJSON(w, status, Response{
			Success: false,
			Error:   be.Error(),
			Code:    be.Code,
			Details: be.Data,
		})
		return
	}

	logger.Error(r.Context()).Err(err).Msg("Stock request failed")
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
