package inventory

import (
	"fmt"
	"strconv"
	"strings"

	"homebox-inventory-tool/internal/homebox"
)

// zeroTime is how the API encodes an unset timestamp.
const zeroTime = "0001-01-01T00:00:00Z"

func searchReport(query string, page *homebox.ItemsPage, pageNum, pageSize int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Found %d items matching '%s':\n\n", page.Total, query)

	for i, item := range page.Items {
		fmt.Fprintf(&b, "%d. %s\n", i+1, item.Name)
		if item.Description != "" {
			fmt.Fprintf(&b, "   Description: %s\n", item.Description)
		}
		if item.Location != nil {
			fmt.Fprintf(&b, "   Location: %s\n", item.Location.Name)
		}
		if item.AssetID != "" {
			fmt.Fprintf(&b, "   Asset ID: %s\n", item.AssetID)
		}
		fmt.Fprintf(&b, "   Quantity: %d\n", item.Quantity)
		if item.Manufacturer != "" {
			fmt.Fprintf(&b, "   Manufacturer: %s\n", item.Manufacturer)
		}
		if item.ModelNumber != "" {
			fmt.Fprintf(&b, "   Model: %s\n", item.ModelNumber)
		}
		b.WriteString("\n")
	}

	writePaginationFooter(&b, page.Total, pageNum, pageSize)
	return b.String()
}

// locationItemsReport renders the by-location variant: a slimmer
// per-item block, with the heading named after the first item's
// location since the search endpoint does not echo the filter back.
func locationItemsReport(page *homebox.ItemsPage, pageNum, pageSize int) string {
	locationName := "Unknown Location"
	if first := page.Items[0]; first.Location != nil && first.Location.Name != "" {
		locationName = first.Location.Name
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d items in location '%s':\n\n", page.Total, locationName)

	for i, item := range page.Items {
		fmt.Fprintf(&b, "%d. %s\n", i+1, item.Name)
		if item.Description != "" {
			fmt.Fprintf(&b, "   Description: %s\n", item.Description)
		}
		if item.AssetID != "" {
			fmt.Fprintf(&b, "   Asset ID: %s\n", item.AssetID)
		}
		fmt.Fprintf(&b, "   Quantity: %d\n", item.Quantity)
		b.WriteString("\n")
	}

	writePaginationFooter(&b, page.Total, pageNum, pageSize)
	return b.String()
}

func writePaginationFooter(b *strings.Builder, total, page, pageSize int) {
	totalPages := (total + pageSize - 1) / pageSize
	fmt.Fprintf(b, "Page %d of %d\n", page, totalPages)
	if page < totalPages {
		fmt.Fprintf(b, "Use 'page=%d' to see more results.", page+1)
	}
}

func itemDetailsReport(item *homebox.Item) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Item Details: %s\n\n", item.Name)

	if item.Description != "" {
		fmt.Fprintf(&b, "Description: %s\n\n", item.Description)
	}

	b.WriteString("Basic Information:\n")
	if item.AssetID != "" {
		fmt.Fprintf(&b, "- Asset ID: %s\n", item.AssetID)
	}
	fmt.Fprintf(&b, "- Quantity: %d\n", item.Quantity)
	if item.Manufacturer != "" {
		fmt.Fprintf(&b, "- Manufacturer: %s\n", item.Manufacturer)
	}
	if item.ModelNumber != "" {
		fmt.Fprintf(&b, "- Model Number: %s\n", item.ModelNumber)
	}
	if item.SerialNumber != "" {
		fmt.Fprintf(&b, "- Serial Number: %s\n", item.SerialNumber)
	}

	if item.Location != nil {
		fmt.Fprintf(&b, "\nLocation: %s\n", item.Location.Name)
	}

	var purchaseInfo []string
	if item.PurchaseFrom != "" {
		purchaseInfo = append(purchaseInfo, fmt.Sprintf("- Purchased From: %s", item.PurchaseFrom))
	}
	if item.PurchasePrice != 0 {
		purchaseInfo = append(purchaseInfo, fmt.Sprintf("- Purchase Price: %s", formatPrice(item.PurchasePrice)))
	}
	if hasDate(item.PurchaseTime) {
		purchaseInfo = append(purchaseInfo, fmt.Sprintf("- Purchase Date: %s", item.PurchaseTime))
	}
	if len(purchaseInfo) > 0 {
		b.WriteString("\nPurchase Information:\n" + strings.Join(purchaseInfo, "\n") + "\n")
	}

	var warrantyInfo []string
	if item.LifetimeWarranty {
		warrantyInfo = append(warrantyInfo, "- Lifetime Warranty: Yes")
	}
	if item.WarrantyDetails != "" {
		warrantyInfo = append(warrantyInfo, fmt.Sprintf("- Warranty Details: %s", item.WarrantyDetails))
	}
	if hasDate(item.WarrantyExpires) {
		warrantyInfo = append(warrantyInfo, fmt.Sprintf("- Warranty Expires: %s", item.WarrantyExpires))
	}
	if len(warrantyInfo) > 0 {
		b.WriteString("\nWarranty Information:\n" + strings.Join(warrantyInfo, "\n") + "\n")
	}

	if len(item.Fields) > 0 {
		b.WriteString("\nCustom Fields:\n")
		for _, field := range item.Fields {
			fmt.Fprintf(&b, "- %s: %s\n", field.Name, field.Value)
		}
	}

	if item.Notes != "" {
		fmt.Fprintf(&b, "\nNotes:\n%s\n", item.Notes)
	}

	return b.String()
}

func locationsReport(locations []homebox.Location) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Found %d locations:\n\n", len(locations))

	for i, loc := range locations {
		fmt.Fprintf(&b, "%d. %s\n", i+1, loc.Name)
		if loc.Description != "" {
			fmt.Fprintf(&b, "   Description: %s\n", loc.Description)
		}
		fmt.Fprintf(&b, "   ID: %s\n\n", loc.ID)
	}

	return b.String()
}

// hasDate treats both the empty string and the API's zero timestamp
// as "not set".
func hasDate(s string) bool {
	return s != "" && s != zeroTime
}

// formatPrice renders the wire value without trailing zeros, so 300
// prints as 300 and 299.99 as 299.99.
func formatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}
