package models

import "time"

// Values of a freshly added password row.
const (
	DefaultPasswordTitle = "Wi-Fi Password"
	DefaultPasswordValue = "00000000"
)

type GalleryItem struct {
	ID        string
	URL       string
	SortOrder int
	CreatedAt time.Time
}

type PasswordItem struct {
	ID        string
	Title     string
	Value     string
	Hidden    bool
	SortOrder int
	CreatedAt time.Time
}

// NewPasswordItem returns the default row appended at sortOrder.
func NewPasswordItem(sortOrder int) PasswordItem {
	return PasswordItem{Title: DefaultPasswordTitle, Value: DefaultPasswordValue, SortOrder: sortOrder}
}

// PasswordPatch updates the fields named in Fields.
type PasswordPatch struct {
	Fields []string
	Title  string
	Value  string
	Hidden bool
}
