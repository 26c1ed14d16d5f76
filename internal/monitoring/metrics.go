package monitoring

import (
	"context"
	"net/http"
	"runtime"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

type Metrics struct {
	RequestCount    int64            `json:"request_count"`
	RequestDuration time.Duration    `json:"avg_request_duration_ms"`
	ActiveRequests  int64            `json:"active_requests"`
	ErrorCount      int64            `json:"error_count"`
	StatusCodes     map[string]int64 `json:"status_codes"`
	Endpoints       map[string]int64 `json:"endpoint_calls"`
	StartTime       time.Time        `json:"start_time"`
	LastRequest     time.Time        `json:"last_request"`
}

type HealthCheck struct {
	Name    string    `json:"name"`
	Status  string    `json:"status"`
	Message string    `json:"message,omitempty"`
	LastRun time.Time `json:"last_run"`
}

type HealthCheckFunc func(ctx context.Context) error

// Monitor collects request metrics and runs registered health checks.
// One instance is built at startup and shared through the router.
type Monitor struct {
	mu            sync.RWMutex
	requestCount  int64
	activeReqs    int64
	errorCount    int64
	totalDuration time.Duration
	statusCodes   map[string]int64
	endpoints     map[string]int64
	startTime     time.Time
	lastRequest   time.Time

	checkMu sync.RWMutex
	checks  map[string]HealthCheckFunc
}

func NewMonitor() *Monitor {
	return &Monitor{
		statusCodes: make(map[string]int64),
		endpoints:   make(map[string]int64),
		startTime:   time.Now(),
		checks:      make(map[string]HealthCheckFunc),
	}
}

func (m *Monitor) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		m.mu.Lock()
		m.activeReqs++
		m.mu.Unlock()

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()
		endpoint := c.Request.Method + " " + c.FullPath()

		m.mu.Lock()
		m.requestCount++
		m.activeReqs--
		m.totalDuration += duration
		m.lastRequest = time.Now()

		if statusCode >= 400 {
			m.errorCount++
		}
		m.statusCodes[http.StatusText(statusCode)]++
		m.endpoints[endpoint]++
		m.mu.Unlock()
	}
}

func (m *Monitor) Snapshot() *Metrics {
	m.mu.RLock()
	defer m.mu.RUnlock()

	metrics := &Metrics{
		RequestCount:   m.requestCount,
		ActiveRequests: m.activeReqs,
		ErrorCount:     m.errorCount,
		StatusCodes:    make(map[string]int64),
		Endpoints:      make(map[string]int64),
		StartTime:      m.startTime,
		LastRequest:    m.lastRequest,
	}

	if m.requestCount > 0 {
		metrics.RequestDuration = m.totalDuration / time.Duration(m.requestCount)
	}

	for k, v := range m.statusCodes {
		metrics.StatusCodes[k] = v
	}
	for k, v := range m.endpoints {
		metrics.Endpoints[k] = v
	}

	return metrics
}

func (m *Monitor) RegisterHealthCheck(name string, checkFunc HealthCheckFunc) {
	m.checkMu.Lock()
	defer m.checkMu.Unlock()
	m.checks[name] = checkFunc
}

func (m *Monitor) RunHealthChecks() map[string]HealthCheck {
	m.checkMu.RLock()
	defer m.checkMu.RUnlock()

	results := make(map[string]HealthCheck)

	for name, checkFunc := range m.checks {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)

		status := "healthy"
		message := ""
		if err := checkFunc(ctx); err != nil {
			status = "unhealthy"
			message = err.Error()
		}
		cancel()

		results[name] = HealthCheck{
			Name:    name,
			Status:  status,
			Message: message,
			LastRun: time.Now(),
		}
	}

	return results
}

type SystemMetrics struct {
	Uptime         time.Duration `json:"uptime"`
	MemoryUsage    MemoryStats   `json:"memory"`
	GoroutineCount int           `json:"goroutine_count"`
	CPUCount       int           `json:"cpu_count"`
	GoVersion      string        `json:"go_version"`
}

type MemoryStats struct {
	Alloc      uint64 `json:"alloc_mb"`
	TotalAlloc uint64 `json:"total_alloc_mb"`
	Sys        uint64 `json:"sys_mb"`
	NumGC      uint32 `json:"num_gc"`
}

func (m *Monitor) SystemMetrics() SystemMetrics {
	var stats runtime.MemStats
	runtime.ReadMemStats(&stats)

	return SystemMetrics{
		Uptime: time.Since(m.startTime),
		MemoryUsage: MemoryStats{
			Alloc:      bToMb(stats.Alloc),
			TotalAlloc: bToMb(stats.TotalAlloc),
			Sys:        bToMb(stats.Sys),
			NumGC:      stats.NumGC,
		},
		GoroutineCount: runtime.NumGoroutine(),
		CPUCount:       runtime.NumCPU(),
		GoVersion:      runtime.Version(),
	}
}

func bToMb(b uint64) uint64 {
	return b / 1024 / 1024
}

func (m *Monitor) MetricsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"application": m.Snapshot(),
			"system":      m.SystemMetrics(),
			"timestamp":   time.Now(),
		})
	}
}

func (m *Monitor) HealthHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		checks := m.RunHealthChecks()

		overallStatus := "healthy"
		for _, check := range checks {
			if check.Status != "healthy" {
				overallStatus = "unhealthy"
				break
			}
		}

		status := http.StatusOK
		if overallStatus != "healthy" {
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, gin.H{
			"status":    overallStatus,
			"timestamp": time.Now(),
			"checks":    checks,
			"uptime":    time.Since(m.startTime).String(),
		})
	}
}
