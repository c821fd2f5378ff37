package mockbox

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"homebox-inventory-tool/internal/homebox"
)

// ErrorResponse is the JSON error body for API failures.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleListItems serves GET /api/v1/items with q, locations, page,
// and pageSize query parameters, in the paged envelope the client
// expects.
func (s *Server) handleListItems(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	locationID := r.URL.Query().Get("locations")
	page := queryInt(r, "page", 1)
	pageSize := queryInt(r, "pageSize", defaultPageSize)
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	result := s.store.SearchItems(query, locationID, page, pageSize)
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleGetItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	item, ok := s.store.GetItem(id)
	if !ok {
		writeError(w, http.StatusNotFound, "item not found", "NOT_FOUND")
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (s *Server) handleListLocations(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, homebox.LocationsPage{Locations: s.store.Locations()})
}

// handleInjectError serves POST /admin/inject-error.
func (s *Server) handleInjectError(w http.ResponseWriter, r *http.Request) {
	var cfg InjectionConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "INVALID_REQUEST")
		return
	}

	if err := s.injector.Configure(cfg); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "INVALID_MODE")
		return
	}

	status := s.injector.Status()
	s.logger.Info("error injection configured",
		zap.String("mode", status.Mode),
		zap.Float64("error_rate", status.ErrorRate),
		zap.Int("status_code", status.StatusCode),
	)
	writeJSON(w, http.StatusOK, status)
}

// handleInjectionReset serves POST /admin/reset.
func (s *Server) handleInjectionReset(w http.ResponseWriter, _ *http.Request) {
	s.injector.Reset()
	s.logger.Info("error injection reset")
	writeJSON(w, http.StatusOK, s.injector.Status())
}

// handleAdminStatus serves GET /admin/status with injector state and
// store counts.
func (s *Server) handleAdminStatus(w http.ResponseWriter, _ *http.Request) {
	items, locations := s.store.Counts()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"injection": s.injector.Status(),
		"items":     items,
		"locations": locations,
	})
}

func queryInt(r *http.Request, key string, defaultValue int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return defaultValue
	}
	return value
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message, code string) {
	writeJSON(w, status, ErrorResponse{Error: message, Code: code})
}
