package inventory

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"homebox-inventory-tool/internal/homebox"
)

func TestOperationsWithoutBaseURL(t *testing.T) {
	service := NewService("", "", "")
	ctx := context.Background()

	// Every operation must return the fixed configuration message
	// without attempting a network call.
	results := map[string]string{
		"SearchItems":           service.SearchItems(ctx, "drill", 1, 20),
		"GetItemDetails":        service.GetItemDetails(ctx, "item-1"),
		"ListLocations":         service.ListLocations(ctx),
		"SearchItemsByLocation": service.SearchItemsByLocation(ctx, "loc-1", 1, 20),
	}

	for op, got := range results {
		if got != missingConfigMessage {
			t.Errorf("%s = %q, want %q", op, got, missingConfigMessage)
		}
	}
	if service.Configured() {
		t.Error("Configured() = true, want false")
	}
}

func TestSearchItemsNoMatches(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(homebox.ItemsPage{Total: 0, Items: []homebox.Item{}})
	}))
	defer server.Close()

	service := NewService(server.URL, "", "")
	got := service.SearchItems(context.Background(), "xyz", 1, 20)

	if got != "No items found matching 'xyz'." {
		t.Errorf("SearchItems() = %q, want %q", got, "No items found matching 'xyz'.")
	}
}

func TestSearchItemsServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}))
	defer server.Close()

	service := NewService(server.URL, "", "")
	got := service.SearchItems(context.Background(), "drill", 1, 20)

	if !strings.HasPrefix(got, "Error searching items:") {
		t.Errorf("SearchItems() = %q, want Error searching items prefix", got)
	}
	if !strings.Contains(got, "API returned status 500") {
		t.Errorf("SearchItems() = %q, want embedded status error", got)
	}
}

func TestSearchItemsMalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"total": "twenty"}`))
	}))
	defer server.Close()

	service := NewService(server.URL, "", "")
	got := service.SearchItems(context.Background(), "drill", 1, 20)

	if !strings.HasPrefix(got, "Unexpected error:") {
		t.Errorf("SearchItems() = %q, want Unexpected error prefix", got)
	}
}

func TestSearchItemsDefaultsPaging(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(homebox.ItemsPage{Total: 0, Items: nil})
	}))
	defer server.Close()

	service := NewService(server.URL, "", "")
	service.SearchItems(context.Background(), "drill", 0, 0)

	if !strings.Contains(gotQuery, "page=1") || !strings.Contains(gotQuery, "pageSize=20") {
		t.Errorf("query = %q, want default page=1 and pageSize=20", gotQuery)
	}
}

func TestGetItemDetailsServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
	}))
	defer server.Close()

	service := NewService(server.URL, "", "")
	got := service.GetItemDetails(context.Background(), "missing")

	if !strings.HasPrefix(got, "Error retrieving item details:") {
		t.Errorf("GetItemDetails() = %q, want retrieval error prefix", got)
	}
}

func TestGetItemDetailsEndToEnd(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/items/item-1" {
			t.Errorf("path = %q, want /api/v1/items/item-1", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(homebox.Item{ID: "item-1", Name: "Stepladder", Quantity: 1})
	}))
	defer server.Close()

	service := NewService(server.URL, "", "")
	got := service.GetItemDetails(context.Background(), "item-1")

	if !strings.HasPrefix(got, "Item Details: Stepladder\n") {
		t.Errorf("GetItemDetails() = %q, want item details heading", got)
	}
}

func TestListLocationsEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(homebox.LocationsPage{Locations: []homebox.Location{}})
	}))
	defer server.Close()

	service := NewService(server.URL, "", "")
	got := service.ListLocations(context.Background())

	if got != "No locations found." {
		t.Errorf("ListLocations() = %q, want %q", got, "No locations found.")
	}
}

func TestListLocationsErrorPrefix(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer server.Close()

	service := NewService(server.URL, "", "")
	got := service.ListLocations(context.Background())

	if !strings.HasPrefix(got, "Error listing locations:") {
		t.Errorf("ListLocations() = %q, want listing error prefix", got)
	}
}

func TestSearchItemsByLocationEndToEnd(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("locations"); got != "loc-1" {
			t.Errorf("locations = %q, want loc-1", got)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(homebox.ItemsPage{
			Total: 1,
			Items: []homebox.Item{
				{Name: "Ladder", Quantity: 1, Location: &homebox.Location{ID: "loc-1", Name: "Garage"}},
			},
		})
	}))
	defer server.Close()

	service := NewService(server.URL, "", "")
	got := service.SearchItemsByLocation(context.Background(), "loc-1", 1, 20)

	if !strings.HasPrefix(got, "Found 1 items in location 'Garage':") {
		t.Errorf("SearchItemsByLocation() = %q, want Garage heading", got)
	}
}

func TestSearchItemsByLocationEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(homebox.ItemsPage{Total: 0, Items: nil})
	}))
	defer server.Close()

	service := NewService(server.URL, "", "")
	got := service.SearchItemsByLocation(context.Background(), "loc-9", 1, 20)

	if got != "No items found in the specified location." {
		t.Errorf("SearchItemsByLocation() = %q, want fixed empty message", got)
	}
}

func TestSearchItemsByLocationErrorPrefix(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	service := NewService(server.URL, "", "")
	got := service.SearchItemsByLocation(context.Background(), "loc-1", 1, 20)

	if !strings.HasPrefix(got, "Error searching items by location:") {
		t.Errorf("SearchItemsByLocation() = %q, want by-location error prefix", got)
	}
}
