package services

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/dvieira/portfolio-be/internal/models"
)

// UploadServiceProvider defines the interface for the file-hosting service:
// upload a buffer and get back a public URL, delete by that URL.
type UploadServiceProvider interface {
	SaveFile(originalName, contentType string, data []byte) (models.Upload, error)
	DeleteByURL(url string) error
	GetAllUploads() ([]models.Upload, error)
}

// UploadService stores uploaded files on local disk and serves them under
// the /uploads static route.
type UploadService struct {
	db      *sql.DB
	dir     string
	baseURL string
}

// NewUploadService creates a new UploadService rooted at dir.
func NewUploadService(db *sql.DB, dir, publicBaseURL string) *UploadService {
	return &UploadService{db: db, dir: dir, baseURL: strings.TrimRight(publicBaseURL, "/")}
}

// SaveFile writes the buffer to disk under a generated name and records it,
// returning the public URL.
func (s *UploadService) SaveFile(originalName, contentType string, data []byte) (models.Upload, error) {
	if len(data) == 0 {
		return models.Upload{}, fmt.Errorf("empty file")
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	fileName := uuid.New().String() + ext
	path := filepath.Join(s.dir, fileName)

	if err := os.WriteFile(path, data, 0644); err != nil {
		return models.Upload{}, fmt.Errorf("failed to write file: %w", err)
	}

	up := models.Upload{
		ID:           uuid.New().String(),
		FileName:     fileName,
		OriginalName: originalName,
		ContentType:  contentType,
		SizeBytes:    int64(len(data)),
		URL:          s.baseURL + "/uploads/" + fileName,
	}

	stmt, err := s.db.Prepare("INSERT INTO uploads(id, file_name, original_name, content_type, size_bytes, url) VALUES(?, ?, ?, ?, ?, ?)")
	if err != nil {
		_ = os.Remove(path)
		return models.Upload{}, err
	}
	defer stmt.Close()

	if _, err = stmt.Exec(up.ID, up.FileName, up.OriginalName, up.ContentType, up.SizeBytes, up.URL); err != nil {
		_ = os.Remove(path)
		return models.Upload{}, err
	}
	return s.getByID(up.ID)
}

// DeleteByURL removes the file identified by its public URL.
func (s *UploadService) DeleteByURL(url string) error {
	var fileName string
	row := s.db.QueryRow("SELECT file_name FROM uploads WHERE url = ?", url)
	if err := row.Scan(&fileName); err != nil {
		if err == sql.ErrNoRows {
			return fmt.Errorf("no upload found for URL %s", url)
		}
		return err
	}

	if err := os.Remove(filepath.Join(s.dir, fileName)); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Str("file", fileName).Msg("Failed to remove uploaded file from disk")
	}

	_, err := s.db.Exec("DELETE FROM uploads WHERE url = ?", url)
	return err
}

// GetAllUploads lists stored files, newest first.
func (s *UploadService) GetAllUploads() ([]models.Upload, error) {
	rows, err := s.db.Query("SELECT id, file_name, original_name, content_type, size_bytes, url, created_at FROM uploads ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	uploads := []models.Upload{}
	for rows.Next() {
		var up models.Upload
		var origName, contentType sql.NullString
		if err := rows.Scan(&up.ID, &up.FileName, &origName, &contentType, &up.SizeBytes, &up.URL, &up.CreatedAt); err != nil {
			return nil, err
		}
		up.OriginalName = origName.String
		up.ContentType = contentType.String
		uploads = append(uploads, up)
	}
	return uploads, rows.Err()
}

func (s *UploadService) getByID(id string) (models.Upload, error) {
	var up models.Upload
	var origName, contentType sql.NullString
	row := s.db.QueryRow("SELECT id, file_name, original_name, content_type, size_bytes, url, created_at FROM uploads WHERE id = ?", id)
	if err := row.Scan(&up.ID, &up.FileName, &origName, &contentType, &up.SizeBytes, &up.URL, &up.CreatedAt); err != nil {
		return models.Upload{}, err
	}
	up.OriginalName = origName.String
	up.ContentType = contentType.String
	return up, nil
}
