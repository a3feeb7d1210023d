package proto

import "time"

// Profile field names accepted in MergeProfileRequest.Mask.
const (
	FieldName              = "name"
	FieldAboutHTML         = "about_html"
	FieldGoogleBusinessURL = "google_business_url"
	FieldVideoURL          = "video_url"
	FieldSocials           = "socials"
	FieldIsVisible         = "is_visible"
	FieldHeaderImageURL    = "header_image_url"
)

// Password row field names accepted in UpdatePasswordItemRequest.Mask.
const (
	FieldTitle  = "title"
	FieldValue  = "value"
	FieldHidden = "hidden"
)

// Upload kinds.
const (
	UploadKindHeader  = "header"
	UploadKindGallery = "gallery"
)

type PingRequest struct{}

type PingResponse struct {
	Status string `json:"status"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	UserID       string `json:"user_id"`
	Email        string `json:"email"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type RefreshTokenResponse struct {
	UserID       string `json:"user_id"`
	Email        string `json:"email"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// TenantRequest addresses one restaurant document and its collections.
type TenantRequest struct {
	RestaurantID string `json:"restaurant_id"`
}

// Profile is the restaurant document. Nil URL pointers are stored as null.
// An empty social value means the link is unset.
type Profile struct {
	RestaurantID      string            `json:"restaurant_id"`
	Name              string            `json:"name"`
	AboutHTML         string            `json:"about_html"`
	GoogleBusinessURL *string           `json:"google_business_url"`
	VideoURL          *string           `json:"video_url"`
	Socials           map[string]string `json:"socials"`
	IsVisible         bool              `json:"is_visible"`
	HeaderImageURL    *string           `json:"header_image_url"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

type EnsureProfileResponse struct {
	Profile Profile `json:"profile"`
	Created bool    `json:"created"`
}

// MergeProfileRequest writes the fields named in Mask and leaves the rest
// untouched. Socials are merged key by key.
type MergeProfileRequest struct {
	RestaurantID string   `json:"restaurant_id"`
	Mask         []string `json:"mask"`
	Profile      Profile  `json:"profile"`
}

type GalleryItem struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
}

type GalleryList struct {
	Items []GalleryItem `json:"items"`
}

type AppendGalleryItemRequest struct {
	RestaurantID string `json:"restaurant_id"`
	URL          string `json:"url"`
	SortOrder    int    `json:"sort_order"`
}

type PasswordItem struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Value     string    `json:"value"`
	Hidden    bool      `json:"hidden"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
}

type PasswordList struct {
	Items []PasswordItem `json:"items"`
}

type AppendPasswordItemRequest struct {
	RestaurantID string `json:"restaurant_id"`
	Title        string `json:"title"`
	Value        string `json:"value"`
	Hidden       bool   `json:"hidden"`
	SortOrder    int    `json:"sort_order"`
}

type UpdatePasswordItemRequest struct {
	RestaurantID string   `json:"restaurant_id"`
	ID           string   `json:"id"`
	Mask         []string `json:"mask"`
	Title        string   `json:"title"`
	Value        string   `json:"value"`
	Hidden       bool     `json:"hidden"`
}

type DeleteItemRequest struct {
	RestaurantID string `json:"restaurant_id"`
	ID           string `json:"id"`
}

type IDResponse struct {
	ID string `json:"id"`
}

type RequestUploadRequest struct {
	RestaurantID string `json:"restaurant_id"`
	Kind         string `json:"kind"`
	FileName     string `json:"file_name"`
	ContentType  string `json:"content_type"`
}

type RequestUploadResponse struct {
	Key       string    `json:"key"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

type FinalizeUploadRequest struct {
	RestaurantID string `json:"restaurant_id"`
	Key          string `json:"key"`
}

type FinalizeUploadResponse struct {
	URL string `json:"url"`
}
