package monitoring

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"
)

var startTime = time.Now()

// HealthChecker tracks the state of the last trade history refresh and
// serves it as a health endpoint.
type HealthChecker struct {
	mu          sync.RWMutex
	lastRefresh time.Time
	tradeCount  int
	errors      []string
}

type HealthStatus struct {
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
	LastRefresh time.Time `json:"last_refresh"`
	TradeCount  int       `json:"trade_count"`
	Uptime      string    `json:"uptime"`
	Errors      []string  `json:"errors,omitempty"`
}

func NewHealthChecker() *HealthChecker {
	return &HealthChecker{
		errors: make([]string, 0),
	}
}

// MarkRefresh records a successful trade history refresh.
func (h *HealthChecker) MarkRefresh(tradeCount int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.lastRefresh = time.Now()
	h.tradeCount = tradeCount
	h.errors = h.errors[:0]
}

// MarkError records a failed refresh attempt.
func (h *HealthChecker) MarkError(err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.errors = append(h.errors, err.Error())
	if len(h.errors) > 10 {
		h.errors = h.errors[len(h.errors)-10:]
	}
}

func (h *HealthChecker) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	status := "healthy"
	if h.lastRefresh.IsZero() {
		status = "starting"
	}

	if len(h.errors) > 0 {
		status = "unhealthy"
		w.WriteHeader(http.StatusInternalServerError)
	}

	health := HealthStatus{
		Status:      status,
		Timestamp:   time.Now(),
		LastRefresh: h.lastRefresh,
		TradeCount:  h.tradeCount,
		Uptime:      time.Since(startTime).String(),
		Errors:      h.errors,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(health)
}
