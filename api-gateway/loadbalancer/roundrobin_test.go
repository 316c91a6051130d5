package loadbalancer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stockly/stock-management/api-gateway/loadbalancer"
)

func TestRoundRobin_CyclesThroughServers(t *testing.T) {
	rr := loadbalancer.NewRoundRobin([]string{"http://a:8081", "http://b:8081", "http://c:8081"})

	assert.Equal(t, "http://a:8081", rr.Next())
	assert.Equal(t, "http://b:8081", rr.Next())
	assert.Equal(t, "http://c:8081", rr.Next())
	assert.Equal(t, "http://a:8081", rr.Next())
}

func TestRoundRobin_EmptyListFallsBack(t *testing.T) {
	rr := loadbalancer.NewRoundRobin(nil)

	assert.Equal(t, "http://localhost:8081", rr.Next())
	assert.Len(t, rr.GetServers(), 1)
}

func TestRoundRobin_AddServer(t *testing.T) {
	rr := loadbalancer.NewRoundRobin([]string{"http://a:8081"})
	rr.AddServer("http://b:8081")

	assert.Equal(t, []string{"http://a:8081", "http://b:8081"}, rr.GetServers())
	assert.Equal(t, "http://a:8081", rr.Next())
	assert.Equal(t, "http://b:8081", rr.Next())
}

func TestRoundRobin_RemoveServer(t *testing.T) {
	rr := loadbalancer.NewRoundRobin([]string{"http://a:8081", "http://b:8081"})
	rr.Next()
	rr.Next()
	rr.RemoveServer("http://b:8081")

	assert.Equal(t, []string{"http://a:8081"}, rr.GetServers())
	// The cursor is reset so Next never indexes past the shrunk pool.
	assert.Equal(t, "http://a:8081", rr.Next())
}

func TestRoundRobin_GetStats(t *testing.T) {
	rr := loadbalancer.NewRoundRobin([]string{"http://a:8081", "http://b:8081"})
	rr.Next()

	stats := rr.GetStats()

	assert.Equal(t, "round-robin", stats["algorithm"])
	assert.Equal(t, 2, stats["server_count"])
	assert.Equal(t, 1, stats["current_index"])
}
