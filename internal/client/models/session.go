package models

import "time"

// Session is the identity and token pair returned by sign-in and refresh.
type Session struct {
	UserID       string
	Email        string
	AccessToken  string
	RefreshToken string
}

// UploadSlot is a presigned PUT target handed out by the server.
type UploadSlot struct {
	Key       string
	URL       string
	ExpiresAt time.Time
}
