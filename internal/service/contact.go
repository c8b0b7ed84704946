package service

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/portfolio-dev/portfolio-api/internal/domain"
	"github.com/portfolio-dev/portfolio-api/internal/errors"
)

type ContactService interface {
	Create(name, email, subject, message string) (domain.ContactMessage, error)
	All() ([]domain.ContactMessage, error)
	Delete(id uuid.UUID) error
}

type ContactStorage interface {
	CreateMessage(name, email, subject, message string) (domain.ContactMessage, error)
	AllMessages() ([]domain.ContactMessage, error)
	DeleteMessage(id uuid.UUID) error
}

// Sanitizer strips markup from user-supplied text before it is stored.
type Sanitizer interface {
	Sanitize(s string) string
}

type Contact struct {
	storage   ContactStorage
	sanitizer Sanitizer
}

func NewContact(storage ContactStorage, sanitizer Sanitizer) ContactService {
	return &Contact{storage, sanitizer}
}

func (c *Contact) Create(name, email, subject, message string) (domain.ContactMessage, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	subject = strings.TrimSpace(subject)
	message = strings.TrimSpace(message)
	if name == "" || email == "" || subject == "" || message == "" {
		return domain.ContactMessage{}, &errors.ErrorWithStatusCode{Message: "All fields are required", StatusCode: http.StatusBadRequest}
	}

	return c.storage.CreateMessage(
		c.sanitizer.Sanitize(name),
		c.sanitizer.Sanitize(email),
		c.sanitizer.Sanitize(subject),
		c.sanitizer.Sanitize(message),
	)
}

func (c *Contact) All() ([]domain.ContactMessage, error) {
	return c.storage.AllMessages()
}

func (c *Contact) Delete(id uuid.UUID) error {
	return c.storage.DeleteMessage(id)
}
