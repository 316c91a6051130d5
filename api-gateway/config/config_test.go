package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockly/stock-management/api-gateway/config"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := config.LoadConfig()

	assert.Equal(t, "8000", cfg.Port)
	require.Contains(t, cfg.Services, "catalog")
	require.Contains(t, cfg.Services, "stock")

	catalog := cfg.Services["catalog"]
	assert.Equal(t, "catalog-service", catalog.Name)
	assert.Equal(t, "http://localhost:8081", catalog.BaseURL)
	assert.Equal(t, []string{"http://localhost:8081"}, catalog.Instances)
	assert.Equal(t, 30*time.Second, catalog.Timeout)
	assert.Equal(t, "/health", catalog.HealthCheck)

	assert.Equal(t, "http://localhost:8082", cfg.Services["stock"].BaseURL)
}

func TestLoadConfig_CommaSeparatedInstances(t *testing.T) {
	t.Setenv("STOCK_SERVICE_URL", "http://stock-1:8082, http://stock-2:8082,http://stock-3:8082")

	cfg := config.LoadConfig()

	stock := cfg.Services["stock"]
	assert.Equal(t, []string{"http://stock-1:8082", "http://stock-2:8082", "http://stock-3:8082"}, stock.Instances)
	// Health checks go against the first instance.
	assert.Equal(t, "http://stock-1:8082", stock.BaseURL)
}

func TestLoadConfig_BlankEntriesIgnored(t *testing.T) {
	t.Setenv("CATALOG_SERVICE_URL", " , ,http://catalog-1:8081,")

	cfg := config.LoadConfig()

	assert.Equal(t, []string{"http://catalog-1:8081"}, cfg.Services["catalog"].Instances)
}

func TestLoadConfig_PortOverride(t *testing.T) {
	t.Setenv("GATEWAY_PORT", "9000")

	cfg := config.LoadConfig()

	assert.Equal(t, "9000", cfg.Port)
}
