package health

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/stockly/stock-management/api-gateway/config"
	"github.com/stockly/stock-management/pkg/logger"
)

// InstanceHealth is the probe result for one backend instance
type InstanceHealth struct {
	URL     string        `json:"url"`
	Status  string        `json:"status"` // healthy, unhealthy
	Latency time.Duration `json:"latency_ms"`
	Error   string        `json:"error,omitempty"`
}

// ServiceHealth aggregates the probe results of a service's instances.
// A service is healthy when every instance answers, degraded when at least
// one does, unhealthy when none do.
type ServiceHealth struct {
	Name      string           `json:"name"`
	Status    string           `json:"status"`
	Instances []InstanceHealth `json:"instances"`
	Timestamp time.Time        `json:"timestamp"`
}

// GatewayHealth represents the overall gateway health
type GatewayHealth struct {
	Gateway  string                   `json:"gateway"`
	Status   string                   `json:"status"` // healthy, degraded, unhealthy
	Services map[string]ServiceHealth `json:"services"`
	Uptime   time.Duration            `json:"uptime_seconds"`
}

// HealthChecker probes downstream service instances
type HealthChecker struct {
	config    *config.GatewayConfig
	client    *http.Client
	startTime time.Time
}

// NewHealthChecker creates a new health checker
func NewHealthChecker(cfg *config.GatewayConfig) *HealthChecker {
	return &HealthChecker{
		config: cfg,
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
		startTime: time.Now(),
	}
}

// CheckService probes every instance of one service
func (h *HealthChecker) CheckService(ctx context.Context, name string, svc config.ServiceConfig) ServiceHealth {
	result := ServiceHealth{
		Name:      name,
		Instances: make([]InstanceHealth, len(svc.Instances)),
		Timestamp: time.Now(),
	}

	var wg sync.WaitGroup
	for i, instance := range svc.Instances {
		wg.Add(1)
		go func(i int, url string) {
			defer wg.Done()
			result.Instances[i] = h.probe(ctx, url+svc.HealthCheck, url)
		}(i, instance)
	}
	wg.Wait()

	healthy := 0
	for _, inst := range result.Instances {
		if inst.Status == "healthy" {
			healthy++
		}
	}
	switch {
	case healthy == len(result.Instances):
		result.Status = "healthy"
	case healthy > 0:
		result.Status = "degraded"
	default:
		result.Status = "unhealthy"
	}

	return result
}

func (h *HealthChecker) probe(ctx context.Context, healthURL, baseURL string) InstanceHealth {
	start := time.Now()
	result := InstanceHealth{URL: baseURL}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, healthURL, nil)
	if err != nil {
		result.Status = "unhealthy"
		result.Error = fmt.Sprintf("Failed to create request: %v", err)
		result.Latency = time.Since(start)
		return result
	}

	resp, err := h.client.Do(req)
	if err != nil {
		result.Status = "unhealthy"
		result.Error = fmt.Sprintf("Failed to reach instance: %v", err)
		result.Latency = time.Since(start)
		return result
	}
	defer resp.Body.Close()

	result.Latency = time.Since(start)
	if resp.StatusCode == http.StatusOK {
		result.Status = "healthy"
	} else {
		result.Status = "unhealthy"
		result.Error = fmt.Sprintf("Unexpected status code: %d", resp.StatusCode)
	}
	return result
}

// CheckAllServices probes all downstream services concurrently
func (h *HealthChecker) CheckAllServices(ctx context.Context) GatewayHealth {
	services := make(map[string]ServiceHealth)
	var wg sync.WaitGroup
	var mu sync.Mutex

	for name, svc := range h.config.Services {
		wg.Add(1)
		go func(n string, s config.ServiceConfig) {
			defer wg.Done()
			health := h.CheckService(ctx, n, s)

			mu.Lock()
			services[n] = health
			mu.Unlock()

			if health.Status == "healthy" {
				logger.Logger.Debug().
					Str("service", n).
					Str("status", health.Status).
					Msg("Service health check")
			} else {
				logger.Logger.Warn().
					Str("service", n).
					Str("status", health.Status).
					Int("instances", len(health.Instances)).
					Msg("Service health check failed")
			}
		}(name, svc)
	}

	wg.Wait()

	return GatewayHealth{
		Gateway:  "api-gateway",
		Status:   overallStatus(services),
		Services: services,
		Uptime:   time.Since(h.startTime),
	}
}

func overallStatus(services map[string]ServiceHealth) string {
	healthy := 0
	for _, svc := range services {
		if svc.Status == "healthy" {
			healthy++
		}
	}
	if healthy == len(services) {
		return "healthy"
	}
	if healthy > 0 {
		return "degraded"
	}
	return "unhealthy"
}

// QuickCheck reports on the gateway process itself without probing backends
func (h *HealthChecker) QuickCheck() map[string]interface{} {
	return map[string]interface{}{
		"status":    "healthy",
		"gateway":   "api-gateway",
		"uptime":    time.Since(h.startTime).Seconds(),
		"timestamp": time.Now(),
	}
}
