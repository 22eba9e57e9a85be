package models

import (
	"encoding/json"
	"time"
)

// Repo is a cached GitHub repository, refreshed by the background syncer.
type Repo struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	FullName    string `json:"fullName"`
	Description string `json:"description,omitempty"`
	HTMLURL     string `json:"htmlURL"`
	Language    string `json:"language,omitempty"`
	Stars       int    `json:"stars"`
	Forks       int    `json:"forks"`

	// JSON string field for DB storage
	TopicsJSON string `json:"-"`

	// Slice field for API interaction
	Topics []string `json:"topics,omitempty"`

	PushedAt time.Time `json:"pushedAt"`
	SyncedAt time.Time `json:"syncedAt"`
}

// PrepareForAPI unmarshals the stored JSON columns into their API fields.
func (r *Repo) PrepareForAPI() {
	if r.TopicsJSON != "" {
		_ = json.Unmarshal([]byte(r.TopicsJSON), &r.Topics)
	}
}

// PrepareForDB marshals the API fields into their stored JSON columns.
func (r *Repo) PrepareForDB() {
	if r.Topics != nil {
		if b, err := json.Marshal(r.Topics); err == nil {
			r.TopicsJSON = string(b)
		}
	}
}
