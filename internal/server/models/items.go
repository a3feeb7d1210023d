package models

import "time"

type GalleryItem struct {
	ID           string
	RestaurantID string
	URL          string
	SortOrder    int
	CreatedAt    time.Time
}

type PasswordItem struct {
	ID           string
	RestaurantID string
	Title        string
	Value        string
	Hidden       bool
	SortOrder    int
	CreatedAt    time.Time
}

// PasswordPatch updates the fields named in Fields.
type PasswordPatch struct {
	Fields []string
	Title  string
	Value  string
	Hidden bool
}
