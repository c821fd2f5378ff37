package mockbox

import (
	_ "embed"
	"fmt"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"homebox-inventory-tool/internal/homebox"
)

//go:embed seed.yaml
var defaultSeed []byte

// DefaultSeed returns the embedded seed fixture.
func DefaultSeed() []byte {
	return defaultSeed
}

// Seed fixtures reference locations by name; IDs are generated at
// load time so every run looks like a freshly installed instance.
type seedFile struct {
	Locations []seedLocation `yaml:"locations"`
	Items     []seedItem     `yaml:"items"`
}

type seedLocation struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

type seedItem struct {
	Name             string            `yaml:"name"`
	Description      string            `yaml:"description"`
	Location         string            `yaml:"location"`
	AssetID          string            `yaml:"assetId"`
	Quantity         int               `yaml:"quantity"`
	Manufacturer     string            `yaml:"manufacturer"`
	ModelNumber      string            `yaml:"modelNumber"`
	SerialNumber     string            `yaml:"serialNumber"`
	PurchaseFrom     string            `yaml:"purchaseFrom"`
	PurchasePrice    float64           `yaml:"purchasePrice"`
	PurchaseTime     string            `yaml:"purchaseTime"`
	LifetimeWarranty bool              `yaml:"lifetimeWarranty"`
	WarrantyDetails  string            `yaml:"warrantyDetails"`
	WarrantyExpires  string            `yaml:"warrantyExpires"`
	Fields           []seedCustomField `yaml:"fields"`
	Notes            string            `yaml:"notes"`
}

type seedCustomField struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

// LoadSeed replaces the store contents with the fixture data. Items
// referencing an unknown location name are rejected so a typo in a
// custom seed file fails loudly instead of silently dropping the
// location.
func (s *Store) LoadSeed(data []byte) error {
	var seed seedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return fmt.Errorf("failed to parse seed data: %w", err)
	}

	locations := make([]homebox.Location, 0, len(seed.Locations))
	byName := make(map[string]homebox.Location, len(seed.Locations))
	for _, loc := range seed.Locations {
		location := homebox.Location{
			ID:          uuid.New().String(),
			Name:        loc.Name,
			Description: loc.Description,
		}
		locations = append(locations, location)
		byName[loc.Name] = location
	}

	items := make([]homebox.Item, 0, len(seed.Items))
	for _, si := range seed.Items {
		item := homebox.Item{
			ID:               uuid.New().String(),
			Name:             si.Name,
			Description:      si.Description,
			Quantity:         si.Quantity,
			AssetID:          si.AssetID,
			Manufacturer:     si.Manufacturer,
			ModelNumber:      si.ModelNumber,
			SerialNumber:     si.SerialNumber,
			PurchaseFrom:     si.PurchaseFrom,
			PurchasePrice:    si.PurchasePrice,
			PurchaseTime:     si.PurchaseTime,
			LifetimeWarranty: si.LifetimeWarranty,
			WarrantyDetails:  si.WarrantyDetails,
			WarrantyExpires:  si.WarrantyExpires,
			Notes:            si.Notes,
		}
		for _, f := range si.Fields {
			item.Fields = append(item.Fields, homebox.CustomField{Name: f.Name, Value: f.Value})
		}
		if si.Location != "" {
			location, ok := byName[si.Location]
			if !ok {
				return fmt.Errorf("item %q references unknown location %q", si.Name, si.Location)
			}
			item.Location = &location
		}
		items = append(items, item)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = items
	s.locations = locations
	return nil
}
