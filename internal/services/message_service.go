package services

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/dvieira/portfolio-be/internal/models"
)

// MailSender delivers an outbound notification email. May be nil when no
// SMTP settings are configured.
type MailSender interface {
	Send(subject, body string) error
}

// MessageServiceProvider defines the interface for contact message services.
type MessageServiceProvider interface {
	CreateMessage(msg models.Message) (models.Message, error)
	GetAllMessages() ([]models.Message, error)
	GetMessageByID(id string) (models.Message, error)
	MarkMessageRead(id string) (models.Message, error)
	DeleteMessage(id string) error
}

// MessageService provides business logic for the contact inbox.
type MessageService struct {
	db     *sql.DB
	mailer MailSender
}

// NewMessageService creates a new MessageService.
func NewMessageService(db *sql.DB, mailer MailSender) *MessageService {
	return &MessageService{db: db, mailer: mailer}
}

func scanMessage(scanner interface{ Scan(...interface{}) error }) (models.Message, error) {
	var m models.Message
	var subject sql.NullString
	err := scanner.Scan(&m.ID, &m.Name, &m.Email, &subject, &m.Body, &m.IsRead, &m.CreatedAt)
	if err != nil {
		return m, err
	}
	m.Subject = subject.String
	return m, nil
}

// CreateMessage stores a contact-form submission and notifies the admin by
// email. A mail failure is logged but never fails the submission.
func (s *MessageService) CreateMessage(msg models.Message) (models.Message, error) {
	if msg.Name == "" || msg.Email == "" || msg.Body == "" {
		return models.Message{}, fmt.Errorf("name, email and body are required")
	}
	msg.ID = uuid.New().String()

	stmt, err := s.db.Prepare("INSERT INTO messages(id, name, email, subject, body) VALUES(?, ?, ?, ?, ?)")
	if err != nil {
		return models.Message{}, err
	}
	defer stmt.Close()

	if _, err = stmt.Exec(msg.ID, msg.Name, msg.Email, msg.Subject, msg.Body); err != nil {
		return models.Message{}, err
	}

	if s.mailer != nil {
		subject := fmt.Sprintf("New portfolio message from %s", msg.Name)
		body := fmt.Sprintf("From: %s <%s>\nSubject: %s\n\n%s", msg.Name, msg.Email, msg.Subject, msg.Body)
		if err := s.mailer.Send(subject, body); err != nil {
			log.Warn().Err(err).Str("message_id", msg.ID).Msg("Failed to send notification email")
		}
	}

	return s.GetMessageByID(msg.ID)
}

// GetAllMessages retrieves the inbox, newest first.
func (s *MessageService) GetAllMessages() ([]models.Message, error) {
	rows, err := s.db.Query("SELECT id, name, email, subject, body, is_read, created_at FROM messages ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := []models.Message{}
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

// GetMessageByID retrieves a single message by its ID.
func (s *MessageService) GetMessageByID(id string) (models.Message, error) {
	row := s.db.QueryRow("SELECT id, name, email, subject, body, is_read, created_at FROM messages WHERE id = ?", id)
	m, err := scanMessage(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Message{}, fmt.Errorf("message with ID %s not found", id)
		}
		return models.Message{}, err
	}
	return m, nil
}

// MarkMessageRead flags a message as read.
func (s *MessageService) MarkMessageRead(id string) (models.Message, error) {
	res, err := s.db.Exec("UPDATE messages SET is_read = 1 WHERE id = ?", id)
	if err != nil {
		return models.Message{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.Message{}, fmt.Errorf("message with ID %s not found", id)
	}
	return s.GetMessageByID(id)
}

// DeleteMessage removes a message from the inbox.
func (s *MessageService) DeleteMessage(id string) error {
	_, err := s.db.Exec("DELETE FROM messages WHERE id = ?", id)
	return err
}
