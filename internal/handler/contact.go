package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/portfolio-dev/portfolio-api/internal/domain"
	"github.com/portfolio-dev/portfolio-api/internal/errors"
	"github.com/portfolio-dev/portfolio-api/internal/logger"
)

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// CreateMessage handles public contact-form submissions. Field presence is
// checked by the service so the response carries its exact
// "All fields are required" message.
func (h *Handler) CreateMessage(w http.ResponseWriter, r *http.Request) {
	var body contactRequest
	if err := Decode(r.Body, &body); err != nil {
		WriteErrorAndStatusCode(w, err)
		return
	}

	if _, err := h.contact.Create(body.Name, body.Email, body.Subject, body.Message); err != nil {
		WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, messageResponse{Message: "Message sent successfully!"})
}

// ListMessages propagates storage failures to the caller, unlike the
// project listings. The inbox is an admin surface where a silent empty
// list would hide lost mail.
func (h *Handler) ListMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.contact.All()
	if err != nil {
		logger.Log.Error("listing contact messages", "err", err)
		WriteErrorAndStatusCode(w, &errors.ErrorWithStatusCode{Message: "Error fetching messages", StatusCode: http.StatusInternalServerError})
		return
	}
	if messages == nil {
		messages = []domain.ContactMessage{}
	}

	writeJSON(w, messages)
}

func (h *Handler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		WriteErrorAndStatusCode(w, &errors.ErrorWithStatusCode{Message: "Invalid message id", StatusCode: http.StatusBadRequest})
		return
	}

	if err := h.contact.Delete(id); err != nil {
		WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, messageResponse{Message: "Deleted"})
}
