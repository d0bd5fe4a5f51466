package repository

import (
	"database/sql"
	"fmt"
	"time"

	"agroplan/internal/db/models/postgres/public/model"
	"agroplan/internal/db/models/postgres/public/table"
	"agroplan/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type ScenarioListFilter struct {
	FirmID         *uuid.UUID
	PremiseID      *uuid.UUID
	LotID          *uuid.UUID
	SimulationType *domain.SimulationType
	ScenarioType   *domain.ScenarioType
	Status         *domain.ScenarioStatus
	Limit          *int64
}

type ScenarioRepository interface {
	Get(id uuid.UUID) (*model.Scenario, error)
	List(ScenarioListFilter) ([]model.Scenario, error)
	Add(m model.Scenario) (*model.Scenario, error)
	Update(id uuid.UUID, m model.Scenario, columns postgres.ColumnList) (*model.Scenario, error)
	Delete(id uuid.UUID) error
}

type scenarioRepositoryHandler struct {
	Db *sql.DB
}

func NewScenarioRepository(db *sql.DB) ScenarioRepository {
	return scenarioRepositoryHandler{Db: db}
}

func (h scenarioRepositoryHandler) Get(id uuid.UUID) (*model.Scenario, error) {
	query := table.Scenario.SELECT(table.Scenario.AllColumns).
		WHERE(table.Scenario.ScenarioID.EQ(postgres.UUID(id)))
	out := model.Scenario{}

	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to get scenario %s: %w", id, err)
	}

	return &out, nil
}

func (h scenarioRepositoryHandler) List(filter ScenarioListFilter) ([]model.Scenario, error) {
	query := table.Scenario.SELECT(table.Scenario.AllColumns).
		ORDER_BY(table.Scenario.CreatedAt.DESC())

	if filter.FirmID != nil {
		query = query.WHERE(table.Scenario.FirmID.EQ(postgres.UUID(*filter.FirmID)))
	}
	if filter.PremiseID != nil {
		query = query.WHERE(table.Scenario.PremiseID.EQ(postgres.UUID(*filter.PremiseID)))
	}
	if filter.LotID != nil {
		query = query.WHERE(table.Scenario.LotID.EQ(postgres.UUID(*filter.LotID)))
	}
	if filter.SimulationType != nil {
		query = query.WHERE(table.Scenario.SimulationType.EQ(postgres.String(string(*filter.SimulationType))))
	}
	if filter.ScenarioType != nil {
		query = query.WHERE(table.Scenario.ScenarioType.EQ(postgres.String(string(*filter.ScenarioType))))
	}
	if filter.Status != nil {
		query = query.WHERE(table.Scenario.Status.EQ(postgres.String(string(*filter.Status))))
	}
	if filter.Limit != nil {
		query = query.LIMIT(*filter.Limit)
	}

	out := []model.Scenario{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list scenarios: %w", err)
	}

	return out, nil
}

func (h scenarioRepositoryHandler) Add(m model.Scenario) (*model.Scenario, error) {
	m.CreatedAt = time.Now().UTC()
	m.UpdatedAt = time.Now().UTC()

	query := table.Scenario.
		INSERT(table.Scenario.MutableColumns).
		MODEL(m).
		RETURNING(table.Scenario.AllColumns)

	out := model.Scenario{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert scenario: %w", err)
	}

	return &out, nil
}

func (h scenarioRepositoryHandler) Update(id uuid.UUID, m model.Scenario, columns postgres.ColumnList) (*model.Scenario, error) {
	m.UpdatedAt = time.Now().UTC()
	columns = append(columns, table.Scenario.UpdatedAt)

	query := table.Scenario.
		UPDATE(columns).
		MODEL(m).
		WHERE(table.Scenario.ScenarioID.EQ(postgres.UUID(id))).
		RETURNING(table.Scenario.AllColumns)

	out := model.Scenario{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to update scenario %s: %w", id, err)
	}

	return &out, nil
}

func (h scenarioRepositoryHandler) Delete(id uuid.UUID) error {
	query := table.Scenario.DELETE().
		WHERE(table.Scenario.ScenarioID.EQ(postgres.UUID(id)))

	result, err := query.Exec(h.Db)
	if err != nil {
		return fmt.Errorf("failed to delete scenario %s: %w", id, err)
	}
	numRows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if numRows == 0 {
		return fmt.Errorf("failed to delete scenario %s: %w", id, qrm.ErrNoRows)
	}

	return nil
}
