package homebox

// Item is an inventory entry as returned by the Homebox API. Optional
// fields carry omitempty so that absence is explicit: empty strings,
// a zero price, and a nil location mean the field was not set.
type Item struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	// Quantity is always present, zero included.
	Quantity int       `json:"quantity"`
	AssetID  string    `json:"assetId,omitempty"`
	Location *Location `json:"location,omitempty"`

	Manufacturer string `json:"manufacturer,omitempty"`
	ModelNumber  string `json:"modelNumber,omitempty"`
	SerialNumber string `json:"serialNumber,omitempty"`

	PurchaseFrom  string  `json:"purchaseFrom,omitempty"`
	PurchasePrice float64 `json:"purchasePrice,omitempty"`
	PurchaseTime  string  `json:"purchaseTime,omitempty"`

	LifetimeWarranty bool   `json:"lifetimeWarranty,omitempty"`
	WarrantyDetails  string `json:"warrantyDetails,omitempty"`
	WarrantyExpires  string `json:"warrantyExpires,omitempty"`

	Fields []CustomField `json:"fields,omitempty"`
	Notes  string        `json:"notes,omitempty"`
}

// CustomField is a user-defined name/value pair attached to an item.
type CustomField struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Location is a named storage place items may be assigned to.
type Location struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// ItemsPage is one page of an item search. Total counts all matches
// across pages; Items holds only the requested page.
type ItemsPage struct {
	Total int    `json:"total"`
	Items []Item `json:"data"`
}

// LocationsPage wraps the location list envelope.
type LocationsPage struct {
	Locations []Location `json:"data"`
}
