package repository

import (
	"database/sql"
	"fmt"
	"time"

	"agroplan/internal/db/models/postgres/public/model"
	"agroplan/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/google/uuid"
)

// ProjectionRepository is the planning-record sink used by scenario
// conversion.
type ProjectionRepository interface {
	Add(m model.Projection) (*model.Projection, error)
	Get(id uuid.UUID) (*model.Projection, error)
}

type projectionRepositoryHandler struct {
	Db *sql.DB
}

func NewProjectionRepository(db *sql.DB) ProjectionRepository {
	return projectionRepositoryHandler{Db: db}
}

func (h projectionRepositoryHandler) Add(m model.Projection) (*model.Projection, error) {
	m.CreatedAt = time.Now().UTC()

	query := table.Projection.
		INSERT(table.Projection.MutableColumns).
		MODEL(m).
		RETURNING(table.Projection.AllColumns)

	out := model.Projection{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert projection: %w", err)
	}

	return &out, nil
}

func (h projectionRepositoryHandler) Get(id uuid.UUID) (*model.Projection, error) {
	query := table.Projection.SELECT(table.Projection.AllColumns).
		WHERE(table.Projection.ProjectionID.EQ(postgres.UUID(id)))

	out := model.Projection{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to get projection %s: %w", id, err)
	}

	return &out, nil
}
