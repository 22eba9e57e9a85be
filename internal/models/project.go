package models

import (
	"encoding/json"
	"time"
)

// Project represents a portfolio project entry.
type Project struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	RepoURL     string `json:"repoURL,omitempty"`
	LiveURL     string `json:"liveURL,omitempty"`
	ImageURL    string `json:"imageURL,omitempty"`
	Featured    bool   `json:"featured"`
	Order       int    `json:"order"`

	// JSON string field for DB storage
	TechJSON string `json:"-"`

	// Slice field for API interaction
	Tech []string `json:"tech,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// PrepareForAPI unmarshals the stored JSON columns into their API fields.
func (p *Project) PrepareForAPI() {
	if p.TechJSON != "" {
		_ = json.Unmarshal([]byte(p.TechJSON), &p.Tech)
	}
}

// PrepareForDB marshals the API fields into their stored JSON columns.
func (p *Project) PrepareForDB() {
	if p.Tech != nil {
		if b, err := json.Marshal(p.Tech); err == nil {
			p.TechJSON = string(b)
		}
	}
}
