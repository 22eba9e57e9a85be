package models

import "time"

// Skill represents a single skill shown on the portfolio.
type Skill struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category,omitempty"` // e.g. "language", "framework", "tool"
	Level     int       `json:"level"`              // 0-100 proficiency
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"createdAt"`
}
