package services

import (
	"database/sql"

	"github.com/dvieira/portfolio-be/internal/models"
)

// ProfileServiceProvider defines the interface for the about/contact
// singleton documents.
type ProfileServiceProvider interface {
	GetAbout() (models.About, error)
	UpdateAbout(about models.About) (models.About, error)
	GetContact() (models.Contact, error)
	UpdateContact(contact models.Contact) (models.Contact, error)
}

// ProfileService provides business logic for the about and contact pages.
// Both are single-row documents with a fixed primary key.
type ProfileService struct {
	db *sql.DB
}

// NewProfileService creates a new ProfileService.
func NewProfileService(db *sql.DB) *ProfileService {
	return &ProfileService{db: db}
}

// GetAbout retrieves the about document; an empty one if never set.
func (s *ProfileService) GetAbout() (models.About, error) {
	var a models.About
	var headline, bio, avatarURL, resumeURL sql.NullString
	row := s.db.QueryRow("SELECT headline, bio, avatar_url, resume_url, updated_at FROM about WHERE id = 1")
	err := row.Scan(&headline, &bio, &avatarURL, &resumeURL, &a.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.About{}, nil
		}
		return models.About{}, err
	}
	a.Headline = headline.String
	a.Bio = bio.String
	a.AvatarURL = avatarURL.String
	a.ResumeURL = resumeURL.String
	return a, nil
}

// UpdateAbout upserts the about document.
func (s *ProfileService) UpdateAbout(about models.About) (models.About, error) {
	_, err := s.db.Exec(`
		INSERT INTO about(id, headline, bio, avatar_url, resume_url, updated_at)
		VALUES(1, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET
			headline = excluded.headline,
			bio = excluded.bio,
			avatar_url = excluded.avatar_url,
			resume_url = excluded.resume_url,
			updated_at = CURRENT_TIMESTAMP`,
		about.Headline, about.Bio, about.AvatarURL, about.ResumeURL)
	if err != nil {
		return models.About{}, err
	}
	return s.GetAbout()
}

// GetContact retrieves the contact document; an empty one if never set.
func (s *ProfileService) GetContact() (models.Contact, error) {
	var c models.Contact
	var email, phone, location, linkedin, github, twitter sql.NullString
	row := s.db.QueryRow("SELECT email, phone, location, linkedin_url, github_url, twitter_url, updated_at FROM contact WHERE id = 1")
	err := row.Scan(&email, &phone, &location, &linkedin, &github, &twitter, &c.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Contact{}, nil
		}
		return models.Contact{}, err
	}
	c.Email = email.String
	c.Phone = phone.String
	c.Location = location.String
	c.LinkedinURL = linkedin.String
	c.GithubURL = github.String
	c.TwitterURL = twitter.String
	return c, nil
}

// UpdateContact upserts the contact document.
func (s *ProfileService) UpdateContact(contact models.Contact) (models.Contact, error) {
	_, err := s.db.Exec(`
		INSERT INTO contact(id, email, phone, location, linkedin_url, github_url, twitter_url, updated_at)
		VALUES(1, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET
			email = excluded.email,
			phone = excluded.phone,
			location = excluded.location,
			linkedin_url = excluded.linkedin_url,
			github_url = excluded.github_url,
			twitter_url = excluded.twitter_url,
			updated_at = CURRENT_TIMESTAMP`,
		contact.Email, contact.Phone, contact.Location, contact.LinkedinURL, contact.GithubURL, contact.TwitterURL)
	if err != nil {
		return models.Contact{}, err
	}
	return s.GetContact()
}
