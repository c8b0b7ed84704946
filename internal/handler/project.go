package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/portfolio-dev/portfolio-api/internal/domain"
	"github.com/portfolio-dev/portfolio-api/internal/errors"
	"github.com/portfolio-dev/portfolio-api/internal/logger"
)

// projectRequest mirrors the upload payload of the site's admin form.
// The thumbnail URL comes from the external media host under the
// "thumbNail" key.
type projectRequest struct {
	Title       string   `validate:"required" json:"title"`
	Description string   `validate:"required" json:"description"`
	Tools       []string `validate:"required,min=1" json:"tools"`
	LiveLink    string   `validate:"required" json:"liveLink"`
	ProjectLink string   `validate:"required" json:"projectLink"`
	ThumbNail   string   `validate:"required" json:"thumbNail"`
}

func (r *projectRequest) creationData() domain.ProjectCreationData {
	return domain.ProjectCreationData{
		Title:       r.Title,
		Description: r.Description,
		Tools:       domain.Tools(r.Tools),
		LiveLink:    r.LiveLink,
		ProjectLink: r.ProjectLink,
		ImageUrl:    r.ThumbNail,
	}
}

func (h *Handler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var body projectRequest
	if err := DecodeValidate(r.Body, &body); err != nil {
		WriteErrorAndStatusCode(w, err)
		return
	}

	if _, err := h.project.Create(body.creationData()); err != nil {
		WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, messageResponse{Message: "Project successfully uploaded"})
}

// ListPublishedProjects serves the public catalog. A limit query parameter
// truncates the result; anything unparsable is ignored, matching the
// "invalid limit means no limit" contract. Storage failures degrade to an
// empty list on purpose: the public page treats that as "no data yet".
func (h *Handler) ListPublishedProjects(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if limitQuery := r.URL.Query().Get("limit"); limitQuery != "" {
		if parsed, err := strconv.Atoi(limitQuery); err == nil {
			limit = parsed
		}
	}

	projects, err := h.project.Published(limit)
	if err != nil {
		logger.Log.Error("listing published projects", "err", err)
		projects = nil
	}
	if projects == nil {
		projects = []domain.Project{}
	}

	writeJSON(w, projects)
}

// AdminProjects returns drafts and published records alike. Same
// degrade-to-empty policy as the public listing.
func (h *Handler) AdminProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.project.AdminAll()
	if err != nil {
		logger.Log.Error("listing admin projects", "err", err)
		projects = nil
	}
	if projects == nil {
		projects = []domain.Project{}
	}

	writeJSON(w, projects)
}

func (h *Handler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id, err := projectId(r)
	if err != nil {
		WriteErrorAndStatusCode(w, err)
		return
	}

	var body projectRequest
	if err := DecodeValidate(r.Body, &body); err != nil {
		WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.project.Update(id, body.creationData()); err != nil {
		WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, messageResponse{Message: "Project updated successfully"})
}

func (h *Handler) PublishProject(w http.ResponseWriter, r *http.Request) {
	id, err := projectId(r)
	if err != nil {
		WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.project.Publish(id); err != nil {
		WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, messageResponse{Message: "Project published successfully"})
}

func (h *Handler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id, err := projectId(r)
	if err != nil {
		WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.project.Delete(id); err != nil {
		WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, messageResponse{Message: "Project deleted successfully"})
}

func projectId(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, &errors.ErrorWithStatusCode{Message: "Invalid project id", StatusCode: http.StatusBadRequest}
	}
	return id, nil
}
