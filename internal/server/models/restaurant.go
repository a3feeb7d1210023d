package models

import "time"

// Restaurant is the public website document of one tenant.
type Restaurant struct {
	ID                string
	Name              string
	AboutHTML         string
	GoogleBusinessURL *string
	VideoURL          *string
	Socials           map[string]string
	IsVisible         bool
	HeaderImageURL    *string
	UpdatedAt         time.Time
}

// RestaurantPatch is a merge write. Only fields named in Fields are
// written; Socials entries are merged into the stored map and an empty
// value removes the key.
type RestaurantPatch struct {
	Fields            []string
	Name              string
	AboutHTML         string
	GoogleBusinessURL *string
	VideoURL          *string
	Socials           map[string]string
	IsVisible         bool
	HeaderImageURL    *string
}

// Has reports whether the patch writes field.
func (p RestaurantPatch) Has(field string) bool {
	for _, f := range p.Fields {
		if f == field {
			return true
		}
	}
	return false
}
