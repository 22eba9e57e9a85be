package models

import "time"

// Upload tracks a file stored by the upload service and served under /uploads.
type Upload struct {
	ID           string    `json:"id"`
	FileName     string    `json:"fileName"`
	OriginalName string    `json:"originalName,omitempty"`
	ContentType  string    `json:"contentType,omitempty"`
	SizeBytes    int64     `json:"sizeBytes"`
	URL          string    `json:"url"`
	CreatedAt    time.Time `json:"createdAt"`
}
