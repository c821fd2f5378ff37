package mockbox

import (
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"sync/atomic"
)

// Injection modes. Normal passes everything through; server_error
// fails a configurable fraction of API requests with a configurable
// status code.
const (
	ModeNormal      = "normal"
	ModeServerError = "server_error"
)

// Injector adds controlled failures to the API routes so resilience
// behavior (error strings surfacing through the tool, retries in
// callers) can be exercised without a flaky backend.
type Injector struct {
	mu         sync.RWMutex
	mode       string
	errorRate  float64
	statusCode int
	injected   int64
}

// InjectionConfig is the admin payload for configuring the injector.
type InjectionConfig struct {
	Mode       string  `json:"mode"`
	ErrorRate  float64 `json:"error_rate,omitempty"`
	StatusCode int     `json:"status_code,omitempty"`
}

// InjectionStatus reports the current injector state.
type InjectionStatus struct {
	Mode          string  `json:"mode"`
	ErrorRate     float64 `json:"error_rate"`
	StatusCode    int     `json:"status_code"`
	InjectedCount int64   `json:"injected_count"`
}

func NewInjector() *Injector {
	return &Injector{
		mode:       ModeNormal,
		errorRate:  1.0,
		statusCode: http.StatusInternalServerError,
	}
}

// Configure applies an admin update. The error rate is clamped to
// [0, 1]; a zero status code keeps the current one.
func (i *Injector) Configure(cfg InjectionConfig) error {
	if cfg.Mode != ModeNormal && cfg.Mode != ModeServerError {
		return fmt.Errorf("invalid mode %q, use %q or %q", cfg.Mode, ModeNormal, ModeServerError)
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	i.mode = cfg.Mode
	if cfg.ErrorRate > 0 {
		i.errorRate = cfg.ErrorRate
		if i.errorRate > 1 {
			i.errorRate = 1
		}
	}
	if cfg.StatusCode != 0 {
		i.statusCode = cfg.StatusCode
	}
	atomic.StoreInt64(&i.injected, 0)
	return nil
}

// Reset returns the injector to pass-through mode.
func (i *Injector) Reset() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.mode = ModeNormal
	i.errorRate = 1.0
	i.statusCode = http.StatusInternalServerError
	atomic.StoreInt64(&i.injected, 0)
}

// Status returns a snapshot of the injector state.
func (i *Injector) Status() InjectionStatus {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return InjectionStatus{
		Mode:          i.mode,
		ErrorRate:     i.errorRate,
		StatusCode:    i.statusCode,
		InjectedCount: atomic.LoadInt64(&i.injected),
	}
}

// Middleware short-circuits requests according to the current mode.
// Admin and health routes are mounted outside this middleware, so no
// path filtering happens here.
func (i *Injector) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			i.mu.RLock()
			mode := i.mode
			rate := i.errorRate
			status := i.statusCode
			i.mu.RUnlock()

			if mode == ModeServerError && rand.Float64() < rate {
				atomic.AddInt64(&i.injected, 1)
				writeError(w, status, "injected error for resilience testing", "INJECTED_ERROR")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
