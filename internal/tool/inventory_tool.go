// Package tool wraps the inventory operations as GoMind capabilities
// so a chat-assistant host can discover and invoke them over HTTP.
package tool

import (
	"github.com/itsneelabh/gomind/core"

	"homebox-inventory-tool/internal/inventory"
)

// InventoryTool exposes the four Homebox query operations as
// capabilities on a GoMind tool.
type InventoryTool struct {
	*core.BaseTool
	service *inventory.Service
}

// SearchItemsRequest is the input for the search_items capability.
type SearchItemsRequest struct {
	Query    string `json:"query"`
	Page     int    `json:"page,omitempty"`
	PageSize int    `json:"page_size,omitempty"`
}

// ItemDetailsRequest is the input for the get_item_details capability.
type ItemDetailsRequest struct {
	ItemID string `json:"item_id"`
}

// LocationItemsRequest is the input for search_items_by_location.
type LocationItemsRequest struct {
	LocationID string `json:"location_id"`
	Page       int    `json:"page,omitempty"`
	PageSize   int    `json:"page_size,omitempty"`
}

// ReportResponse carries the formatted operation result. The report is
// always a complete human-readable string, error text included, so the
// host can relay it to the user verbatim.
type ReportResponse struct {
	Report string `json:"report"`
}

// Error codes for the inventory tool
const (
	ErrCodeInvalidRequest   = "INVALID_REQUEST"
	ErrCodeMissingParameter = "MISSING_PARAMETER"
)

// NewInventoryTool creates the tool and registers its capabilities.
// The service may be unconfigured; operations then return the
// configuration-error text instead of results.
func NewInventoryTool(service *inventory.Service) *InventoryTool {
	tool := &InventoryTool{
		BaseTool: core.NewTool("homebox-inventory-tool"),
		service:  service,
	}

	tool.registerCapabilities()
	return tool
}

// registerCapabilities sets up the four inventory capabilities
func (t *InventoryTool) registerCapabilities() {
	// Capability 1: Free-text item search
	t.RegisterCapability(core.Capability{
		Name:        "search_items",
		Description: "Searches the Homebox inventory by free text and returns a formatted result list with pagination. Required: query. Optional: page (default 1), page_size (default 20).",
		InputTypes:  []string{"json"},
		OutputTypes: []string{"json"},
		Handler:     t.handleSearchItems,

		InputSummary: &core.SchemaSummary{
			RequiredFields: []core.FieldHint{
				{
					Name:        "query",
					Type:        "string",
					Example:     "cordless drill",
					Description: "Free-text search over item names and descriptions",
				},
			},
			OptionalFields: []core.FieldHint{
				{
					Name:        "page",
					Type:        "number",
					Example:     "1",
					Description: "Result page to return (default 1)",
				},
				{
					Name:        "page_size",
					Type:        "number",
					Example:     "20",
					Description: "Items per page (default 20)",
				},
			},
		},
	})

	// Capability 2: Single item details
	t.RegisterCapability(core.Capability{
		Name:        "get_item_details",
		Description: "Gets the full details of one inventory item: description, location, purchase and warranty information, custom fields, and notes. Required: item_id.",
		InputTypes:  []string{"json"},
		OutputTypes: []string{"json"},
		Handler:     t.handleItemDetails,

		InputSummary: &core.SchemaSummary{
			RequiredFields: []core.FieldHint{
				{
					Name:        "item_id",
					Type:        "string",
					Example:     "3f9a7c2e-1d7b-4a0e-9d6f-2b8c5a4e1f00",
					Description: "ID of the item to look up",
				},
			},
		},
	})

	// Capability 3: Location listing
	t.RegisterCapability(core.Capability{
		Name:        "list_locations",
		Description: "Lists all storage locations in the Homebox inventory with their descriptions and IDs. Takes no parameters.",
		InputTypes:  []string{"json"},
		OutputTypes: []string{"json"},
		Handler:     t.handleListLocations,
	})

	// Capability 4: Items in one location
	t.RegisterCapability(core.Capability{
		Name:        "search_items_by_location",
		Description: "Lists the items stored in one location, identified by location ID from list_locations. Required: location_id. Optional: page (default 1), page_size (default 20).",
		InputTypes:  []string{"json"},
		OutputTypes: []string{"json"},
		Handler:     t.handleItemsByLocation,

		InputSummary: &core.SchemaSummary{
			RequiredFields: []core.FieldHint{
				{
					Name:        "location_id",
					Type:        "string",
					Example:     "c1a2b3d4-5e6f-7a8b-9c0d-1e2f3a4b5c6d",
					Description: "ID of the location to list items for",
				},
			},
			OptionalFields: []core.FieldHint{
				{
					Name:        "page",
					Type:        "number",
					Example:     "1",
					Description: "Result page to return (default 1)",
				},
				{
					Name:        "page_size",
					Type:        "number",
					Example:     "20",
					Description: "Items per page (default 20)",
				},
			},
		},
	})
}
