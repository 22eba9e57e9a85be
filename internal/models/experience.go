package models

import "time"

// Experience represents a work experience entry.
type Experience struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Company   string    `json:"company"`
	Location  string    `json:"location,omitempty"`
	StartDate string    `json:"startDate"`         // YYYY-MM
	EndDate   string    `json:"endDate,omitempty"` // empty while IsCurrent
	IsCurrent bool      `json:"isCurrent"`
	Summary   string    `json:"summary,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
