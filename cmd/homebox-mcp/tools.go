package main

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"homebox-inventory-tool/internal/inventory"
)

// registerTools wires the four inventory operations into the MCP server.
// Handlers return their reports as plain text; operation failures are
// already folded into the report string, so NewToolResultError is
// reserved for missing required parameters.
func registerTools(s *server.MCPServer, service *inventory.Service) {
	s.AddTool(mcp.NewTool("search_items",
		mcp.WithDescription("Search for items in the Homebox inventory by name or description. Returns a formatted list with location, quantity and pagination info."),
		mcp.WithString("query", mcp.Required(), mcp.Description("Search query matched against item names and descriptions")),
		mcp.WithNumber("page", mcp.Description("Page number, starting at 1")),
		mcp.WithNumber("page_size", mcp.Description("Results per page (default 20)")),
	), searchItemsHandler(service))

	s.AddTool(mcp.NewTool("get_item_details",
		mcp.WithDescription("Get full details for a single inventory item: description, location, purchase and warranty information, custom fields and notes."),
		mcp.WithString("item_id", mcp.Required(), mcp.Description("UUID of the item")),
	), itemDetailsHandler(service))

	s.AddTool(mcp.NewTool("list_locations",
		mcp.WithDescription("List all storage locations in the Homebox inventory with their IDs."),
	), listLocationsHandler(service))

	s.AddTool(mcp.NewTool("search_items_by_location",
		mcp.WithDescription("List all items stored in a specific location. Use list_locations first to find the location ID."),
		mcp.WithString("location_id", mcp.Required(), mcp.Description("UUID of the location")),
		mcp.WithNumber("page", mcp.Description("Page number, starting at 1")),
		mcp.WithNumber("page_size", mcp.Description("Results per page (default 20)")),
	), itemsByLocationHandler(service))
}

func searchItemsHandler(service *inventory.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := mcp.ParseString(request, "query", "")
		if query == "" {
			return mcp.NewToolResultError("query parameter is required"), nil
		}

		page := int(mcp.ParseFloat64(request, "page", 0))
		pageSize := int(mcp.ParseFloat64(request, "page_size", 0))

		return mcp.NewToolResultText(service.SearchItems(ctx, query, page, pageSize)), nil
	}
}

func itemDetailsHandler(service *inventory.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		itemID := mcp.ParseString(request, "item_id", "")
		if itemID == "" {
			return mcp.NewToolResultError("item_id parameter is required"), nil
		}

		return mcp.NewToolResultText(service.GetItemDetails(ctx, itemID)), nil
	}
}

func listLocationsHandler(service *inventory.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return mcp.NewToolResultText(service.ListLocations(ctx)), nil
	}
}

func itemsByLocationHandler(service *inventory.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		locationID := mcp.ParseString(request, "location_id", "")
		if locationID == "" {
			return mcp.NewToolResultError("location_id parameter is required"), nil
		}

		page := int(mcp.ParseFloat64(request, "page", 0))
		pageSize := int(mcp.ParseFloat64(request, "page_size", 0))

		return mcp.NewToolResultText(service.SearchItemsByLocation(ctx, locationID, page, pageSize)), nil
	}
}
