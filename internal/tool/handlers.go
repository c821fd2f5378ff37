package tool

import (
	"encoding/json"
	"net/http"

	"github.com/itsneelabh/gomind/core"
	"github.com/itsneelabh/gomind/telemetry"
	"go.opentelemetry.io/otel/attribute"
)

// handleSearchItems processes free-text search requests
func (t *InventoryTool) handleSearchItems(rw http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	t.Logger.InfoWithContext(ctx, "Processing item search request", map[string]interface{}{
		"method": r.Method,
		"path":   r.URL.Path,
	})

	telemetry.AddSpanEvent(ctx, "request_received",
		attribute.String("method", r.Method),
		attribute.String("path", r.URL.Path),
	)

	var req SearchItemsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		t.Logger.ErrorWithContext(ctx, "Failed to decode request", map[string]interface{}{
			"error": err.Error(),
		})
		t.sendError(rw, "Invalid request format", ErrCodeInvalidRequest)
		return
	}

	if req.Query == "" {
		t.sendError(rw, "query is required", ErrCodeMissingParameter)
		return
	}

	telemetry.AddSpanEvent(ctx, "calling_homebox_api",
		attribute.String("operation", "search_items"),
		attribute.String("query", req.Query),
		attribute.Int("page", req.Page),
	)

	report := t.service.SearchItems(ctx, req.Query, req.Page, req.PageSize)

	t.Logger.InfoWithContext(ctx, "Item search completed", map[string]interface{}{
		"query":        req.Query,
		"report_bytes": len(report),
	})
	telemetry.Counter("homebox.operations", "operation", "search_items")

	t.sendReport(rw, report)
}

// handleItemDetails processes single-item detail requests
func (t *InventoryTool) handleItemDetails(rw http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	t.Logger.InfoWithContext(ctx, "Processing item details request", map[string]interface{}{
		"method": r.Method,
		"path":   r.URL.Path,
	})

	telemetry.AddSpanEvent(ctx, "request_received",
		attribute.String("method", r.Method),
		attribute.String("path", r.URL.Path),
	)

	var req ItemDetailsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		t.Logger.ErrorWithContext(ctx, "Failed to decode request", map[string]interface{}{
			"error": err.Error(),
		})
		t.sendError(rw, "Invalid request format", ErrCodeInvalidRequest)
		return
	}

	if req.ItemID == "" {
		t.sendError(rw, "item_id is required", ErrCodeMissingParameter)
		return
	}

	telemetry.AddSpanEvent(ctx, "calling_homebox_api",
		attribute.String("operation", "get_item_details"),
		attribute.String("item_id", req.ItemID),
	)

	report := t.service.GetItemDetails(ctx, req.ItemID)

	t.Logger.InfoWithContext(ctx, "Item details retrieved", map[string]interface{}{
		"item_id":      req.ItemID,
		"report_bytes": len(report),
	})
	telemetry.Counter("homebox.operations", "operation", "get_item_details")

	t.sendReport(rw, report)
}

// handleListLocations processes location list requests. The capability
// takes no parameters, so the request body is ignored.
func (t *InventoryTool) handleListLocations(rw http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	t.Logger.InfoWithContext(ctx, "Processing location list request", map[string]interface{}{
		"method": r.Method,
		"path":   r.URL.Path,
	})

	telemetry.AddSpanEvent(ctx, "request_received",
		attribute.String("method", r.Method),
		attribute.String("path", r.URL.Path),
	)

	telemetry.AddSpanEvent(ctx, "calling_homebox_api",
		attribute.String("operation", "list_locations"),
	)

	report := t.service.ListLocations(ctx)

	t.Logger.InfoWithContext(ctx, "Location list retrieved", map[string]interface{}{
		"report_bytes": len(report),
	})
	telemetry.Counter("homebox.operations", "operation", "list_locations")

	t.sendReport(rw, report)
}

// handleItemsByLocation processes per-location item listing requests
func (t *InventoryTool) handleItemsByLocation(rw http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	t.Logger.InfoWithContext(ctx, "Processing items-by-location request", map[string]interface{}{
		"method": r.Method,
		"path":   r.URL.Path,
	})

	telemetry.AddSpanEvent(ctx, "request_received",
		attribute.String("method", r.Method),
		attribute.String("path", r.URL.Path),
	)

	var req LocationItemsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		t.Logger.ErrorWithContext(ctx, "Failed to decode request", map[string]interface{}{
			"error": err.Error(),
		})
		t.sendError(rw, "Invalid request format", ErrCodeInvalidRequest)
		return
	}

	if req.LocationID == "" {
		t.sendError(rw, "location_id is required", ErrCodeMissingParameter)
		return
	}

	telemetry.AddSpanEvent(ctx, "calling_homebox_api",
		attribute.String("operation", "search_items_by_location"),
		attribute.String("location_id", req.LocationID),
		attribute.Int("page", req.Page),
	)

	report := t.service.SearchItemsByLocation(ctx, req.LocationID, req.Page, req.PageSize)

	t.Logger.InfoWithContext(ctx, "Items-by-location search completed", map[string]interface{}{
		"location_id":  req.LocationID,
		"report_bytes": len(report),
	})
	telemetry.Counter("homebox.operations", "operation", "search_items_by_location")

	t.sendReport(rw, report)
}

// sendReport wraps the operation result in a success envelope. The
// operations fold their own failures into the report text, so from the
// host's point of view the capability itself succeeded.
func (t *InventoryTool) sendReport(rw http.ResponseWriter, report string) {
	rw.Header().Set("Content-Type", "application/json")
	response := core.ToolResponse{
		Success: true,
		Data:    ReportResponse{Report: report},
	}
	json.NewEncoder(rw).Encode(response)
}

// sendError reports a host protocol error (bad body, missing required
// field). Operation failures never take this path.
func (t *InventoryTool) sendError(rw http.ResponseWriter, message, code string) {
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(core.HTTPStatusForCategory(core.CategoryInputError))

	response := core.ToolResponse{
		Success: false,
		Error: &core.ToolError{
			Code:      code,
			Message:   message,
			Category:  core.CategoryInputError,
			Retryable: false,
		},
	}
	json.NewEncoder(rw).Encode(response)
}
