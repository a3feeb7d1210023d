// Package models defines client-side data models used by the admin console.
package models

import "time"

// Profile is the restaurant document as last delivered by the server.
type Profile struct {
	RestaurantID      string
	Name              string
	AboutHTML         string
	GoogleBusinessURL *string
	VideoURL          *string
	Socials           map[string]string
	IsVisible         bool
	HeaderImageURL    *string
	UpdatedAt         time.Time
}

// ProfilePatch is a merge write of the fields named in Fields. A nil URL
// writes null; an empty social value removes that link.
type ProfilePatch struct {
	Fields            []string
	Name              string
	AboutHTML         string
	GoogleBusinessURL *string
	VideoURL          *string
	Socials           map[string]string
	IsVisible         bool
	HeaderImageURL    *string
}

// Value dereferences p, treating nil as "".
func Value(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// NullIfEmpty returns nil for "" and a pointer to s otherwise.
func NullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
