package services

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dvieira/portfolio-be/internal/models"
)

// ErrInvalidCredentials is returned for both an unknown username and a wrong
// password, so callers cannot tell which check failed.
var ErrInvalidCredentials = errors.New("invalid credentials")

// dummyHash is compared against when the username does not exist, so both
// failure paths cost one bcrypt comparison.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("dummy-password"), bcrypt.DefaultCost)

// AdminServiceProvider defines the interface for the credential store.
type AdminServiceProvider interface {
	GetAdminByID(id string) (models.Admin, error)
	Authenticate(username, password string) (models.Admin, error)
	EnsureAdmin(username, email, password, githubUsername string) (models.Admin, error)
	GetGithubUsername() (string, error)
}

// AdminService provides business logic for the administrator account.
type AdminService struct {
	db *sql.DB
}

// NewAdminService creates a new AdminService.
func NewAdminService(db *sql.DB) *AdminService {
	return &AdminService{db: db}
}

// GetAdminByID retrieves an admin by ID, without the password hash.
func (s *AdminService) GetAdminByID(id string) (models.Admin, error) {
	var admin models.Admin
	var ghUser sql.NullString
	row := s.db.QueryRow("SELECT id, username, email, github_username, created_at FROM admins WHERE id = ?", id)
	err := row.Scan(&admin.ID, &admin.Username, &admin.Email, &ghUser, &admin.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Admin{}, fmt.Errorf("admin with ID %s not found", id)
		}
		return models.Admin{}, err
	}
	admin.GithubUsername = ghUser.String
	return admin, nil
}

// getAdminByUsername retrieves an admin by username, including the password hash.
func (s *AdminService) getAdminByUsername(username string) (models.Admin, error) {
	var admin models.Admin
	var ghUser sql.NullString
	row := s.db.QueryRow("SELECT id, username, email, password_hash, github_username, created_at FROM admins WHERE username = ?", username)
	err := row.Scan(&admin.ID, &admin.Username, &admin.Email, &admin.PasswordHash, &ghUser, &admin.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Admin{}, sql.ErrNoRows
		}
		return models.Admin{}, err
	}
	admin.GithubUsername = ghUser.String
	return admin, nil
}

// Authenticate verifies a username/password pair. Unknown usernames and wrong
// passwords are indistinguishable to the caller. There is no attempt counter
// and no lockout; see DESIGN.md.
func (s *AdminService) Authenticate(username, password string) (models.Admin, error) {
	admin, err := s.getAdminByUsername(username)
	if err != nil {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return models.Admin{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return models.Admin{}, ErrInvalidCredentials
	}

	// Don't send the password hash to the client
	admin.PasswordHash = ""
	return admin, nil
}

// EnsureAdmin creates the administrator account if none exists yet. This is
// the out-of-band provisioning step; there is no registration endpoint.
func (s *AdminService) EnsureAdmin(username, email, password, githubUsername string) (models.Admin, error) {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM admins").Scan(&count); err != nil {
		return models.Admin{}, err
	}
	if count > 0 {
		return s.firstAdmin()
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.Admin{}, fmt.Errorf("failed to hash password: %w", err)
	}

	admin := models.Admin{
		ID:             uuid.New().String(),
		Username:       username,
		Email:          email,
		PasswordHash:   string(hashedPassword),
		GithubUsername: githubUsername,
	}

	stmt, err := s.db.Prepare("INSERT INTO admins(id, username, email, password_hash, github_username) VALUES(?, ?, ?, ?, ?)")
	if err != nil {
		return models.Admin{}, err
	}
	defer stmt.Close()

	if _, err = stmt.Exec(admin.ID, admin.Username, admin.Email, admin.PasswordHash, admin.GithubUsername); err != nil {
		return models.Admin{}, err
	}

	admin.PasswordHash = ""
	return admin, nil
}

// GetGithubUsername returns the configured GitHub username of the admin, used
// by the repo syncer.
func (s *AdminService) GetGithubUsername() (string, error) {
	admin, err := s.firstAdmin()
	if err != nil {
		return "", err
	}
	return admin.GithubUsername, nil
}

func (s *AdminService) firstAdmin() (models.Admin, error) {
	var admin models.Admin
	var ghUser sql.NullString
	row := s.db.QueryRow("SELECT id, username, email, github_username, created_at FROM admins ORDER BY created_at LIMIT 1")
	err := row.Scan(&admin.ID, &admin.Username, &admin.Email, &ghUser, &admin.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Admin{}, fmt.Errorf("no admin account provisioned")
		}
		return models.Admin{}, err
	}
	admin.GithubUsername = ghUser.String
	return admin, nil
}
