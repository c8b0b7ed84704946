package service

import (
	"github.com/google/uuid"

	"github.com/portfolio-dev/portfolio-api/internal/domain"
)

type ProjectService interface {
	Create(data domain.ProjectCreationData) (domain.Project, error)
	AdminAll() ([]domain.Project, error)
	Published(limit int) ([]domain.Project, error)
	Update(id uuid.UUID, data domain.ProjectCreationData) error
	Publish(id uuid.UUID) error
	Delete(id uuid.UUID) error
}

type ProjectStorage interface {
	CreateProject(data domain.ProjectCreationData) (domain.Project, error)
	AllProjects() ([]domain.Project, error)
	PublishedProjects(limit int) ([]domain.Project, error)
	UpdateProject(id uuid.UUID, data domain.ProjectCreationData) error
	PublishProject(id uuid.UUID) error
	DeleteProject(id uuid.UUID) error
}

type ProjectValidator interface {
	CreationData(data *domain.ProjectCreationData) error
}

type Project struct {
	storage   ProjectStorage
	validator ProjectValidator
}

func NewProject(storage ProjectStorage, validator ProjectValidator) ProjectService {
	return &Project{storage, validator}
}

// Create validates input and persists a new draft. Records always start
// unpublished; publication is a separate one-way transition.
func (p *Project) Create(data domain.ProjectCreationData) (domain.Project, error) {
	if err := p.validator.CreationData(&data); err != nil {
		return domain.Project{}, err
	}
	return p.storage.CreateProject(data)
}

func (p *Project) AdminAll() ([]domain.Project, error) {
	return p.storage.AllProjects()
}

// Published returns published records newest-first. limit <= 0 means no cap.
func (p *Project) Published(limit int) ([]domain.Project, error) {
	return p.storage.PublishedProjects(limit)
}

// Update overwrites every mutable field of the record. is_published and
// created_at are never touched here.
func (p *Project) Update(id uuid.UUID, data domain.ProjectCreationData) error {
	if err := p.validator.CreationData(&data); err != nil {
		return err
	}
	return p.storage.UpdateProject(id, data)
}

func (p *Project) Publish(id uuid.UUID) error {
	return p.storage.PublishProject(id)
}

func (p *Project) Delete(id uuid.UUID) error {
	return p.storage.DeleteProject(id)
}
