package models

import "time"

// Admin represents the administrator account. The system is operated by a
// single admin; the table allows more but nothing in the API creates them.
type Admin struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"-"` // Never expose this to the client
	GithubUsername string    `json:"githubUsername,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}
