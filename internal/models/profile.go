package models

import "time"

// About is the singleton "about me" document shown on the landing page.
type About struct {
	Headline  string    `json:"headline,omitempty"`
	Bio       string    `json:"bio,omitempty"`
	AvatarURL string    `json:"avatarURL,omitempty"`
	ResumeURL string    `json:"resumeURL,omitempty"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Contact is the singleton public contact information document.
type Contact struct {
	Email       string    `json:"email,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Location    string    `json:"location,omitempty"`
	LinkedinURL string    `json:"linkedinURL,omitempty"`
	GithubURL   string    `json:"githubURL,omitempty"`
	TwitterURL  string    `json:"twitterURL,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
