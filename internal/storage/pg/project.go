package pg

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"github.com/portfolio-dev/portfolio-api/internal/domain"
	internal_errors "github.com/portfolio-dev/portfolio-api/internal/errors"
)

const projectColumns = "id, title, description, tools, live_link, project_link, image_url, is_published, created_at, updated_at"

// CreateProject inserts a new draft. The id and created_at are generated
// here so the full record can be returned without a second round trip.
func (s *Storage) CreateProject(data domain.ProjectCreationData) (domain.Project, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	project := domain.Project{
		Id:          uuid.New(),
		Title:       data.Title,
		Description: data.Description,
		Tools:       data.Tools,
		LiveLink:    data.LiveLink,
		ProjectLink: data.ProjectLink,
		ImageUrl:    data.ImageUrl,
		IsPublished: false,
		CreatedAt:   time.Now().UTC().Round(time.Microsecond), // database anyway rounds to microsecond
	}

	_, err := s.db.ExecContext(ctx, `
	INSERT INTO projects (id, title, description, tools, live_link, project_link, image_url, is_published, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		project.Id, project.Title, project.Description, project.Tools,
		project.LiveLink, project.ProjectLink, project.ImageUrl,
		project.IsPublished, project.CreatedAt)
	if err != nil {
		return domain.Project{}, err
	}

	return project, nil
}

// AllProjects returns drafts and published records in insertion order.
func (s *Storage) AllProjects() ([]domain.Project, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, `
	SELECT `+projectColumns+`
	FROM projects
	ORDER BY created_at ASC, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanProjects(rows)
}

// PublishedProjects returns published records newest-first. limit <= 0
// disables truncation.
func (s *Storage) PublishedProjects(limit int) ([]domain.Project, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	query := `
	SELECT ` + projectColumns + `
	FROM projects
	WHERE is_published
	ORDER BY created_at DESC`

	var args []interface{}
	if limit > 0 {
		query += " LIMIT $1"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanProjects(rows)
}

// UpdateProject overwrites the mutable field set. is_published and
// created_at stay untouched.
func (s *Storage) UpdateProject(id uuid.UUID, data domain.ProjectCreationData) error {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	result, err := s.db.ExecContext(ctx, `
	UPDATE projects SET
		title = $1,
		description = $2,
		tools = $3,
		live_link = $4,
		project_link = $5,
		image_url = $6,
		updated_at = $7
	WHERE id = $8`,
		data.Title, data.Description, data.Tools, data.LiveLink,
		data.ProjectLink, data.ImageUrl, time.Now().UTC().Round(time.Microsecond), id)
	if err != nil {
		return err
	}

	return requireRow(result, "Project not found")
}

// PublishProject flips the one-way publication switch. Publishing an
// already-published record is a no-op that still succeeds.
func (s *Storage) PublishProject(id uuid.UUID) error {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	result, err := s.db.ExecContext(ctx, `
	UPDATE projects SET
		is_published = true,
		updated_at = $1
	WHERE id = $2`,
		time.Now().UTC().Round(time.Microsecond), id)
	if err != nil {
		return err
	}

	return requireRow(result, "Project not found")
}

// DeleteProject removes the record unconditionally. Deleting an id that
// does not exist is not an error.
func (s *Storage) DeleteProject(id uuid.UUID) error {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	_, err := s.db.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id)
	return err
}

func scanProjects(rows *sql.Rows) ([]domain.Project, error) {
	var projects []domain.Project
	for rows.Next() {
		var p domain.Project
		err := rows.Scan(&p.Id, &p.Title, &p.Description, &p.Tools, &p.LiveLink,
			&p.ProjectLink, &p.ImageUrl, &p.IsPublished, &p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return projects, nil
}

func requireRow(result sql.Result, message string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return &internal_errors.ErrorWithStatusCode{Message: message, StatusCode: http.StatusNotFound}
	}
	return nil
}
