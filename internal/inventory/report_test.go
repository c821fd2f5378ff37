package inventory

import (
	"strings"
	"testing"

	"homebox-inventory-tool/internal/homebox"
)

func TestSearchReport(t *testing.T) {
	page := &homebox.ItemsPage{
		Total: 25,
		Items: []homebox.Item{
			{
				Name:         "Cordless Drill",
				Description:  "18V brushless driver",
				Location:     &homebox.Location{ID: "loc-1", Name: "Garage"},
				AssetID:      "000-001",
				Quantity:     1,
				Manufacturer: "Makita",
				ModelNumber:  "XFD131",
			},
			{
				Name:     "Drill Bits",
				Quantity: 3,
			},
		},
	}

	got := searchReport("drill", page, 2, 10)
	want := "Found 25 items matching 'drill':\n\n" +
		"1. Cordless Drill\n" +
		"   Description: 18V brushless driver\n" +
		"   Location: Garage\n" +
		"   Asset ID: 000-001\n" +
		"   Quantity: 1\n" +
		"   Manufacturer: Makita\n" +
		"   Model: XFD131\n" +
		"\n" +
		"2. Drill Bits\n" +
		"   Quantity: 3\n" +
		"\n" +
		"Page 2 of 3\n" +
		"Use 'page=3' to see more results."

	if got != want {
		t.Errorf("searchReport() =\n%q\nwant\n%q", got, want)
	}
}

func TestSearchReportLastPageHasNoHint(t *testing.T) {
	page := &homebox.ItemsPage{
		Total: 25,
		Items: []homebox.Item{{Name: "Spare Bulb", Quantity: 5}},
	}

	got := searchReport("bulb", page, 3, 10)

	if !strings.HasSuffix(got, "Page 3 of 3\n") {
		t.Errorf("searchReport() = %q, want trailing %q", got, "Page 3 of 3\n")
	}
	if strings.Contains(got, "to see more results") {
		t.Errorf("searchReport() = %q, want no next-page hint on last page", got)
	}
}

func TestSearchReportQuantityZeroStillRendered(t *testing.T) {
	page := &homebox.ItemsPage{
		Total: 1,
		Items: []homebox.Item{{Name: "Empty Gas Canister", Quantity: 0}},
	}

	got := searchReport("canister", page, 1, 20)
	if !strings.Contains(got, "   Quantity: 0\n") {
		t.Errorf("searchReport() = %q, want a Quantity: 0 line", got)
	}
}

func TestItemDetailsReportFull(t *testing.T) {
	item := &homebox.Item{
		ID:               "item-9",
		Name:             "Oscilloscope",
		Description:      "2-channel bench scope",
		AssetID:          "000-009",
		Quantity:         1,
		Manufacturer:     "Rigol",
		ModelNumber:      "DS1054Z",
		SerialNumber:     "SN-12345",
		Location:         &homebox.Location{ID: "loc-1", Name: "Lab"},
		PurchaseFrom:     "Electronics Depot",
		PurchasePrice:    349.99,
		PurchaseTime:     "2024-03-15T00:00:00Z",
		LifetimeWarranty: false,
		WarrantyDetails:  "3 years parts and labor",
		WarrantyExpires:  "2027-03-15T00:00:00Z",
		Fields: []homebox.CustomField{
			{Name: "Firmware", Value: "00.04.04"},
			{Name: "Calibrated", Value: "2025-01-10"},
		},
		Notes: "Probe x10 compensation adjusted.",
	}

	got := itemDetailsReport(item)
	want := "Item Details: Oscilloscope\n\n" +
		"Description: 2-channel bench scope\n\n" +
		"Basic Information:\n" +
		"- Asset ID: 000-009\n" +
		"- Quantity: 1\n" +
		"- Manufacturer: Rigol\n" +
		"- Model Number: DS1054Z\n" +
		"- Serial Number: SN-12345\n" +
		"\nLocation: Lab\n" +
		"\nPurchase Information:\n" +
		"- Purchased From: Electronics Depot\n" +
		"- Purchase Price: 349.99\n" +
		"- Purchase Date: 2024-03-15T00:00:00Z\n" +
		"\nWarranty Information:\n" +
		"- Warranty Details: 3 years parts and labor\n" +
		"- Warranty Expires: 2027-03-15T00:00:00Z\n" +
		"\nCustom Fields:\n" +
		"- Firmware: 00.04.04\n" +
		"- Calibrated: 2025-01-10\n" +
		"\nNotes:\nProbe x10 compensation adjusted.\n"

	if got != want {
		t.Errorf("itemDetailsReport() =\n%q\nwant\n%q", got, want)
	}
}

func TestItemDetailsReportMinimal(t *testing.T) {
	item := &homebox.Item{ID: "item-1", Name: "Stepladder", Quantity: 1}

	got := itemDetailsReport(item)
	want := "Item Details: Stepladder\n\n" +
		"Basic Information:\n" +
		"- Quantity: 1\n"

	if got != want {
		t.Errorf("itemDetailsReport() =\n%q\nwant\n%q", got, want)
	}
	if strings.Contains(got, "Warranty Information") {
		t.Errorf("itemDetailsReport() = %q, want no warranty heading", got)
	}
	if strings.Contains(got, "Purchase Information") {
		t.Errorf("itemDetailsReport() = %q, want no purchase heading", got)
	}
}

func TestItemDetailsReportLifetimeWarranty(t *testing.T) {
	item := &homebox.Item{Name: "Hand Plane", Quantity: 1, LifetimeWarranty: true}

	got := itemDetailsReport(item)
	if !strings.Contains(got, "\nWarranty Information:\n- Lifetime Warranty: Yes\n") {
		t.Errorf("itemDetailsReport() = %q, want lifetime warranty block", got)
	}
}

func TestItemDetailsReportZeroTimestampsTreatedAsUnset(t *testing.T) {
	item := &homebox.Item{
		Name:            "Shop Vac",
		Quantity:        1,
		PurchaseTime:    "0001-01-01T00:00:00Z",
		WarrantyExpires: "0001-01-01T00:00:00Z",
	}

	got := itemDetailsReport(item)
	if strings.Contains(got, "Purchase Information") || strings.Contains(got, "Warranty Information") {
		t.Errorf("itemDetailsReport() = %q, want zero timestamps treated as unset", got)
	}
}

func TestLocationsReport(t *testing.T) {
	locations := []homebox.Location{
		{ID: "loc-1", Name: "Garage", Description: "Detached, two-car"},
		{ID: "loc-2", Name: "Attic"},
	}

	got := locationsReport(locations)
	want := "Found 2 locations:\n\n" +
		"1. Garage\n" +
		"   Description: Detached, two-car\n" +
		"   ID: loc-1\n\n" +
		"2. Attic\n" +
		"   ID: loc-2\n\n"

	if got != want {
		t.Errorf("locationsReport() =\n%q\nwant\n%q", got, want)
	}
}

func TestLocationItemsReport(t *testing.T) {
	page := &homebox.ItemsPage{
		Total: 2,
		Items: []homebox.Item{
			{
				Name:        "Ladder",
				Description: "8ft aluminum",
				AssetID:     "000-020",
				Quantity:    1,
				Location:    &homebox.Location{ID: "loc-1", Name: "Garage"},
				// Ignored in the by-location listing.
				Manufacturer: "Werner",
			},
			{Name: "Extension Cord", Quantity: 2, Location: &homebox.Location{ID: "loc-1", Name: "Garage"}},
		},
	}

	got := locationItemsReport(page, 1, 20)
	want := "Found 2 items in location 'Garage':\n\n" +
		"1. Ladder\n" +
		"   Description: 8ft aluminum\n" +
		"   Asset ID: 000-020\n" +
		"   Quantity: 1\n" +
		"\n" +
		"2. Extension Cord\n" +
		"   Quantity: 2\n" +
		"\n" +
		"Page 1 of 1\n"

	if got != want {
		t.Errorf("locationItemsReport() =\n%q\nwant\n%q", got, want)
	}
}

func TestLocationItemsReportUnknownLocation(t *testing.T) {
	page := &homebox.ItemsPage{
		Total: 1,
		Items: []homebox.Item{{Name: "Mystery Box", Quantity: 1}},
	}

	got := locationItemsReport(page, 1, 20)
	if !strings.HasPrefix(got, "Found 1 items in location 'Unknown Location':") {
		t.Errorf("locationItemsReport() = %q, want Unknown Location heading", got)
	}
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{300, "300"},
		{299.99, "299.99"},
		{0.5, "0.5"},
		{1299.9, "1299.9"},
	}

	for _, tt := range tests {
		if got := formatPrice(tt.in); got != tt.want {
			t.Errorf("formatPrice(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
