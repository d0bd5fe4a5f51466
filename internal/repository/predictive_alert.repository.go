package repository

import (
	"database/sql"
	"fmt"
	"time"

	"agroplan/internal/db/models/postgres/public/model"
	"agroplan/internal/db/models/postgres/public/table"
	"agroplan/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/google/uuid"
)

type PredictiveAlertListFilter struct {
	FirmID     *uuid.UUID
	ScenarioID *uuid.UUID
	Status     *domain.AlertStatus
	Limit      *int64
}

// PredictiveAlertRepository is the alert sink. Writers treat inserts as
// best-effort telemetry; lifecycle transitions live with the alerting
// module, not the engine.
type PredictiveAlertRepository interface {
	AddMany(alerts []model.PredictiveAlert) ([]model.PredictiveAlert, error)
	List(PredictiveAlertListFilter) ([]model.PredictiveAlert, error)
}

type predictiveAlertRepositoryHandler struct {
	Db *sql.DB
}

func NewPredictiveAlertRepository(db *sql.DB) PredictiveAlertRepository {
	return predictiveAlertRepositoryHandler{Db: db}
}

func (h predictiveAlertRepositoryHandler) AddMany(alerts []model.PredictiveAlert) ([]model.PredictiveAlert, error) {
	if len(alerts) == 0 {
		return nil, nil
	}

	now := time.Now().UTC()
	for i := range alerts {
		alerts[i].CreatedAt = now
		alerts[i].UpdatedAt = now
	}

	query := table.PredictiveAlert.
		INSERT(table.PredictiveAlert.MutableColumns).
		MODELS(alerts).
		RETURNING(table.PredictiveAlert.AllColumns)

	out := []model.PredictiveAlert{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert predictive alerts: %w", err)
	}

	return out, nil
}

func (h predictiveAlertRepositoryHandler) List(filter PredictiveAlertListFilter) ([]model.PredictiveAlert, error) {
	query := table.PredictiveAlert.SELECT(table.PredictiveAlert.AllColumns).
		ORDER_BY(table.PredictiveAlert.CreatedAt.DESC())

	if filter.FirmID != nil {
		query = query.WHERE(table.PredictiveAlert.FirmID.EQ(postgres.UUID(*filter.FirmID)))
	}
	if filter.ScenarioID != nil {
		query = query.WHERE(table.PredictiveAlert.ScenarioID.EQ(postgres.UUID(*filter.ScenarioID)))
	}
	if filter.Status != nil {
		query = query.WHERE(table.PredictiveAlert.Status.EQ(postgres.String(string(*filter.Status))))
	}
	if filter.Limit != nil {
		query = query.LIMIT(*filter.Limit)
	}

	out := []model.PredictiveAlert{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list predictive alerts: %w", err)
	}

	return out, nil
}
