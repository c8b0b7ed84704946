package handler

import (
	"net/http"

	"github.com/portfolio-dev/portfolio-api/internal/domain"
	"github.com/portfolio-dev/portfolio-api/internal/errors"
)

type credentials struct {
	Email    string `validate:"required" json:"email"`
	Password string `validate:"required" json:"password"`
}

type loginResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Login exchanges admin credentials for the session cookie. The cookie is
// HTTP-only and path-scoped to the whole site; Secure tracks the
// secure_cookies config so local development over plain HTTP still works.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var creds credentials
	if err := DecodeValidate(r.Body, &creds); err != nil {
		WriteErrorAndStatusCode(w, err)
		return
	}

	token, err := h.auth.Login(domain.Credentials{Email: creds.Email, Password: creds.Password})
	if err != nil {
		status := http.StatusInternalServerError
		if e, ok := err.(*errors.ErrorWithStatusCode); ok {
			status = e.StatusCode
		}
		writeJSONStatus(w, status, loginResponse{Success: false, Error: err.Error()})
		return
	}

	http.SetCookie(w, &http.Cookie{
		Path:     "/",
		Name:     "accessToken",
		Value:    token,
		MaxAge:   int(h.cfg.SessionTTL().Seconds()),
		HttpOnly: true,
		Secure:   h.cfg.Public.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})

	writeJSON(w, loginResponse{Success: true})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Path:     "/",
		Name:     "accessToken",
		Value:    "",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cfg.Public.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})

	w.WriteHeader(http.StatusOK)
}
