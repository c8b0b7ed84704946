package utils

import (
	"crypto/subtle"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/crypto/bcrypt"

	"github.com/portfolio-dev/portfolio-api/internal/domain"
	"github.com/portfolio-dev/portfolio-api/internal/errors"
)

const maxTitleLen = 255

func validationError(message string) error {
	return &errors.ErrorWithStatusCode{Message: message, StatusCode: 400}
}

type ProjectValidator struct{}

// CreationData checks the full mutable field set used by both Create and
// Update. Tools entries are trimmed in place and empty ones dropped; at
// least one entry must survive.
func (v *ProjectValidator) CreationData(data *domain.ProjectCreationData) error {
	data.Title = strings.TrimSpace(data.Title)
	data.Description = strings.TrimSpace(data.Description)
	data.LiveLink = strings.TrimSpace(data.LiveLink)
	data.ProjectLink = strings.TrimSpace(data.ProjectLink)
	data.ImageUrl = strings.TrimSpace(data.ImageUrl)

	if data.Title == "" {
		return validationError("Title is required")
	}
	if utf8.RuneCountInString(data.Title) > maxTitleLen {
		return validationError("Title is too long")
	}
	if data.Description == "" {
		return validationError("Description is required")
	}
	if data.LiveLink == "" {
		return validationError("Live link is required")
	}
	if data.ProjectLink == "" {
		return validationError("Project link is required")
	}
	if data.ImageUrl == "" {
		return validationError("Thumbnail is required")
	}

	tools := data.Tools[:0]
	for _, tool := range data.Tools {
		if trimmed := strings.TrimSpace(tool); trimmed != "" {
			tools = append(tools, trimmed)
		}
	}
	data.Tools = tools
	if len(data.Tools) == 0 {
		return validationError("At least one tool is required")
	}

	return nil
}

// StaticVerifier compares against the configured plaintext admin credentials.
type StaticVerifier struct {
	Email    string
	Password string
}

func (v *StaticVerifier) Verify(email, password string) bool {
	emailOk := subtle.ConstantTimeCompare([]byte(v.Email), []byte(email)) == 1
	passwordOk := subtle.ConstantTimeCompare([]byte(v.Password), []byte(password)) == 1
	return emailOk && passwordOk
}

// BcryptVerifier compares against a bcrypt hash of the admin password.
type BcryptVerifier struct {
	Email        string
	PasswordHash string
}

func (v *BcryptVerifier) Verify(email, password string) bool {
	if subtle.ConstantTimeCompare([]byte(v.Email), []byte(email)) != 1 {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(v.PasswordHash), []byte(password)) == nil
}

// StrictSanitizer strips all markup from contact submissions.
type StrictSanitizer struct {
	policy *bluemonday.Policy
}

func NewStrictSanitizer() *StrictSanitizer {
	return &StrictSanitizer{policy: bluemonday.StrictPolicy()}
}

func (s *StrictSanitizer) Sanitize(text string) string {
	return s.policy.Sanitize(text)
}
