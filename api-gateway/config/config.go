package config

import (
	"os"
	"strings"
	"time"
)

// ServiceConfig holds configuration for a backend service
type ServiceConfig struct {
	Name        string
	BaseURL     string
	Instances   []string
	Timeout     time.Duration
	HealthCheck string
}

// GatewayConfig holds the main gateway configuration
type GatewayConfig struct {
	Port     string
	Services map[string]ServiceConfig
}

// LoadConfig loads the gateway configuration. Service URL env vars accept a
// comma-separated list of instances for load balancing; the first entry is
// used for health checks.
func LoadConfig() *GatewayConfig {
	return &GatewayConfig{
		Port: getEnv("GATEWAY_PORT", "8000"),
		Services: map[string]ServiceConfig{
			"catalog": serviceConfig("catalog-service", "CATALOG_SERVICE_URL", "http://localhost:8081"),
			"stock":   serviceConfig("stock-service", "STOCK_SERVICE_URL", "http://localhost:8082"),
		},
	}
}

func serviceConfig(name, envKey, defaultURL string) ServiceConfig {
	instances := splitURLs(getEnv(envKey, defaultURL), defaultURL)
	return ServiceConfig{
		Name:        name,
		BaseURL:     instances[0],
		Instances:   instances,
		Timeout:     30 * time.Second,
		HealthCheck: "/health",
	}
}

func splitURLs(raw, fallback string) []string {
	parts := strings.Split(raw, ",")
	urls := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			urls = append(urls, strings.TrimSuffix(trimmed, "/"))
		}
	}
	if len(urls) == 0 {
		urls = []string{fallback}
	}
	return urls
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
