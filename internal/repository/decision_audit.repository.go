package repository

import (
	"database/sql"
	"fmt"
	"time"

	"agroplan/internal/db/models/postgres/public/model"
	"agroplan/internal/db/models/postgres/public/table"
)

// DecisionAuditRepository records why a scenario became a plan. Writes
// are best-effort; the caller logs and moves on if one fails.
type DecisionAuditRepository interface {
	Add(m model.DecisionAudit) error
}

type decisionAuditRepositoryHandler struct {
	Db *sql.DB
}

func NewDecisionAuditRepository(db *sql.DB) DecisionAuditRepository {
	return decisionAuditRepositoryHandler{Db: db}
}

func (h decisionAuditRepositoryHandler) Add(m model.DecisionAudit) error {
	m.CreatedAt = time.Now().UTC()

	query := table.DecisionAudit.
		INSERT(table.DecisionAudit.MutableColumns).
		MODEL(m)

	_, err := query.Exec(h.Db)
	if err != nil {
		return fmt.Errorf("failed to insert decision audit: %w", err)
	}

	return nil
}
