// Package inventory implements the four read-only inventory
// operations: search items, get item details, list locations, and
// search items by location. Every operation returns a single
// human-readable string and never an error; failures of any kind are
// folded into the returned text so a chat assistant can relay them
// directly.
package inventory

import (
	"context"
	"fmt"

	"homebox-inventory-tool/internal/homebox"
)

// missingConfigMessage is returned by every operation when no base URL
// is configured. No network call is made in that case.
const missingConfigMessage = "Error: Homebox API URL is required. Please set your Homebox API URL in the tool settings."

const (
	defaultPage     = 1
	defaultPageSize = 20
)

// Service runs inventory operations against one Homebox instance.
type Service struct {
	client *homebox.Client
}

// NewService builds a Service. An empty baseURL is allowed: the
// service stays up and every operation reports the configuration
// error until the URL is supplied.
func NewService(baseURL, cfClientID, cfClientSecret string) *Service {
	s := &Service{}
	if baseURL != "" {
		s.client = homebox.NewClient(baseURL, cfClientID, cfClientSecret)
	}
	return s
}

// Configured reports whether a base URL was supplied.
func (s *Service) Configured() bool { return s.client != nil }

// SearchItems searches the inventory by free text and renders one page
// of results.
func (s *Service) SearchItems(ctx context.Context, query string, page, pageSize int) string {
	if s.client == nil {
		return missingConfigMessage
	}
	page, pageSize = normalizePaging(page, pageSize)

	result, err := s.client.SearchItems(ctx, query, page, pageSize)
	if err != nil {
		return errorReport("Error searching items", err)
	}
	if len(result.Items) == 0 {
		return fmt.Sprintf("No items found matching '%s'.", query)
	}
	return searchReport(query, result, page, pageSize)
}

// GetItemDetails renders the full detail card for one item.
func (s *Service) GetItemDetails(ctx context.Context, itemID string) string {
	if s.client == nil {
		return missingConfigMessage
	}

	item, err := s.client.GetItem(ctx, itemID)
	if err != nil {
		return errorReport("Error retrieving item details", err)
	}
	return itemDetailsReport(item)
}

// ListLocations renders the full location list.
func (s *Service) ListLocations(ctx context.Context) string {
	if s.client == nil {
		return missingConfigMessage
	}

	locations, err := s.client.ListLocations(ctx)
	if err != nil {
		return errorReport("Error listing locations", err)
	}
	if len(locations) == 0 {
		return "No locations found."
	}
	return locationsReport(locations)
}

// SearchItemsByLocation renders one page of the items assigned to a
// location.
func (s *Service) SearchItemsByLocation(ctx context.Context, locationID string, page, pageSize int) string {
	if s.client == nil {
		return missingConfigMessage
	}
	page, pageSize = normalizePaging(page, pageSize)

	result, err := s.client.ItemsByLocation(ctx, locationID, page, pageSize)
	if err != nil {
		return errorReport("Error searching items by location", err)
	}
	if len(result.Items) == 0 {
		return "No items found in the specified location."
	}
	return locationItemsReport(result, page, pageSize)
}

func normalizePaging(page, pageSize int) (int, int) {
	if page < 1 {
		page = defaultPage
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	return page, pageSize
}

// errorReport maps the client's two error tiers onto the textual
// contract: transport/HTTP failures keep the operation-specific
// prefix, everything else is reported as unexpected.
func errorReport(prefix string, err error) string {
	if homebox.IsTransport(err) {
		return fmt.Sprintf("%s: %v", prefix, err)
	}
	return fmt.Sprintf("Unexpected error: %v", err)
}
