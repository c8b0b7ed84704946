package service

import (
	"net/http"

	"github.com/portfolio-dev/portfolio-api/internal/domain"
	"github.com/portfolio-dev/portfolio-api/internal/errors"
	"github.com/portfolio-dev/portfolio-api/internal/jwt"
)

type AuthService interface {
	Login(creds domain.Credentials) (string, error)
}

// CredentialVerifier checks the single admin identity. Implementations can
// compare plaintext or hashed credentials without the handlers knowing.
type CredentialVerifier interface {
	Verify(email, password string) bool
}

type Auth struct {
	verifier CredentialVerifier
	tokens   jwt.TokenService
}

func NewAuth(verifier CredentialVerifier, tokens jwt.TokenService) AuthService {
	return &Auth{verifier, tokens}
}

// Login exchanges valid admin credentials for a session token. The error
// never says which field was wrong.
func (a *Auth) Login(creds domain.Credentials) (string, error) {
	if !a.verifier.Verify(creds.Email, creds.Password) {
		return "", &errors.ErrorWithStatusCode{Message: "Invalid credentials", StatusCode: http.StatusUnauthorized}
	}
	return a.tokens.NewToken(creds.Email)
}
