package proxy

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/stockly/stock-management/api-gateway/config"
	"github.com/stockly/stock-management/api-gateway/loadbalancer"
	"github.com/stockly/stock-management/pkg/logger"
)

// maxAttempts bounds instance failover per request. A transport error moves
// on to the next instance; an HTTP response of any status is final.
const maxAttempts = 3

// ReverseProxy forwards requests to backend service instances
type ReverseProxy struct {
	config        *config.GatewayConfig
	client        *http.Client
	loadBalancers map[string]*loadbalancer.RoundRobin
}

// NewReverseProxy creates a new reverse proxy with one load balancer per
// configured service
func NewReverseProxy(cfg *config.GatewayConfig) *ReverseProxy {
	loadBalancers := make(map[string]*loadbalancer.RoundRobin)
	for name, svc := range cfg.Services {
		loadBalancers[name] = loadbalancer.NewRoundRobin(svc.Instances)
	}

	return &ReverseProxy{
		config:        cfg,
		loadBalancers: loadBalancers,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// ProxyRequest forwards the request to the target service
func (p *ReverseProxy) ProxyRequest(c *fiber.Ctx, serviceName string) error {
	lb, ok := p.loadBalancers[serviceName]
	if !ok {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": fmt.Sprintf("Load balancer for '%s' not found", serviceName),
		})
	}

	attempts := maxAttempts
	if n := len(lb.GetServers()); n < attempts {
		attempts = n
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		serverURL := lb.Next()
		if serverURL == "" {
			break
		}

		resp, err := p.forward(c, serverURL)
		if err != nil {
			lastErr = err
			logger.Logger.Warn().
				Err(err).
				Str("service", serviceName).
				Str("instance", serverURL).
				Int("attempt", attempt+1).
				Msg("Backend instance unreachable")
			continue
		}
		return p.writeResponse(c, resp)
	}

	return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
		"error":   "Failed to reach backend service",
		"service": serviceName,
		"details": errDetail(lastErr),
	})
}

// forward sends one attempt of the request to a specific instance
func (p *ReverseProxy) forward(c *fiber.Ctx, serverURL string) (*http.Response, error) {
	targetURL := serverURL + string(c.Request().URI().Path())
	if qs := string(c.Request().URI().QueryString()); qs != "" {
		targetURL += "?" + qs
	}

	req, err := http.NewRequestWithContext(
		c.UserContext(),
		c.Method(),
		targetURL,
		bytes.NewReader(c.Body()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build proxy request: %w", err)
	}

	p.copyHeaders(c, req)

	return p.client.Do(req)
}

func (p *ReverseProxy) writeResponse(c *fiber.Ctx, resp *http.Response) error {
	defer resp.Body.Close()

	for key, values := range resp.Header {
		if strings.ToLower(key) == "content-length" {
			continue
		}
		for _, value := range values {
			c.Set(key, value)
		}
	}

	c.Status(resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to read response",
		})
	}
	return c.Send(body)
}

// GetLoadBalancers returns all load balancers (for stats)
func (p *ReverseProxy) GetLoadBalancers() map[string]*loadbalancer.RoundRobin {
	return p.loadBalancers
}

// copyHeaders forwards request headers to the backend, replacing hop
// headers with X-Forwarded equivalents
func (p *ReverseProxy) copyHeaders(c *fiber.Ctx, req *http.Request) {
	c.Request().Header.VisitAll(func(key, value []byte) {
		if strings.ToLower(string(key)) == "host" {
			return
		}
		req.Header.Set(string(key), string(value))
	})

	req.Header.Set("X-Forwarded-For", c.IP())
	req.Header.Set("X-Forwarded-Proto", c.Protocol())
	req.Header.Set("X-Forwarded-Host", c.Hostname())
}

func errDetail(err error) string {
	if err == nil {
		return "no instances available"
	}
	return err.Error()
}
