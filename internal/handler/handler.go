package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/portfolio-dev/portfolio-api/internal/config"
	"github.com/portfolio-dev/portfolio-api/internal/logger"
	"github.com/portfolio-dev/portfolio-api/internal/service"
)

// HealthChecker is what the readiness probe needs from storage.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	project service.ProjectService
	contact service.ContactService
	auth    service.AuthService
	health  HealthChecker
	cfg     *config.Config
}

func New(project service.ProjectService, contact service.ContactService, auth service.AuthService, health HealthChecker, cfg *config.Config) *Handler {
	return &Handler{project, contact, auth, health, cfg}
}

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("encoding response", "err", err)
	}
}

func writeJSONStatus(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("encoding response", "err", err)
	}
}
