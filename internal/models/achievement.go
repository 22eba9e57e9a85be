package models

import "time"

// Achievement represents an award, certification or other highlight.
type Achievement struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Issuer      string    `json:"issuer,omitempty"`
	AwardedOn   string    `json:"awardedOn,omitempty"` // YYYY-MM-DD
	URL         string    `json:"url,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
