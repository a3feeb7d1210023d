package models

import "time"

const (
	UploadStatusPending   = "pending"
	UploadStatusCompleted = "completed"
)

// Upload tracks an object key handed out for a presigned PUT.
type Upload struct {
	Key          string
	RestaurantID string
	Kind         string
	ContentType  string
	Status       string
	CreatedBy    string
	CreatedAt    time.Time
	CompletedAt  *time.Time
}
