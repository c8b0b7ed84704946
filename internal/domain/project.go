package domain

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Tools is the technology list of a project. Backed by a postgres text
// array; caller order and duplicates are preserved as-is.
type Tools = pq.StringArray

// to iterate thru layers: handler -> service -> storage
type ProjectCreationData struct {
	Title       string
	Description string
	Tools       Tools
	LiveLink    string
	ProjectLink string
	ImageUrl    string
}

type Project struct {
	Id          uuid.UUID    `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Tools       Tools        `json:"tools"`
	LiveLink    string       `json:"liveLink"`
	ProjectLink string       `json:"projectLink"`
	ImageUrl    string       `json:"imageUrl"`
	IsPublished bool         `json:"isPublished"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   sql.NullTime `json:"-"`
}
