package l3_service

import (
	"context"
	"fmt"
	"time"

	"agroplan/internal/calculator"
	"agroplan/internal/db/models/postgres/public/model"
	"agroplan/internal/db/models/postgres/public/table"
	"agroplan/internal/domain"
	"agroplan/internal/logger"
	"agroplan/internal/repository"
	l1_service "agroplan/internal/service/l1"
	l2_service "agroplan/internal/service/l2"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/google/uuid"
)

// ScenarioService drives the scenario state machine. Execute is
// idempotent per call - re-running an EXECUTED scenario replaces its
// results wholesale. Convert is one-way and only legal from EXECUTED.
type ScenarioService interface {
	Execute(ctx context.Context, scenarioID uuid.UUID, executedBy *uuid.UUID) (*model.Scenario, error)
	Convert(ctx context.Context, scenarioID uuid.UUID) (*model.Scenario, *model.Projection, error)
}

type scenarioServiceHandler struct {
	ScenarioRepository      repository.ScenarioRepository
	ProjectionRepository    repository.ProjectionRepository
	DecisionAuditRepository repository.DecisionAuditRepository
	RiskService             l2_service.RiskService
	AlertService            l1_service.AlertService
}

func NewScenarioService(
	scenarioRepository repository.ScenarioRepository,
	projectionRepository repository.ProjectionRepository,
	decisionAuditRepository repository.DecisionAuditRepository,
	riskService l2_service.RiskService,
	alertService l1_service.AlertService,
) ScenarioService {
	return scenarioServiceHandler{
		ScenarioRepository:      scenarioRepository,
		ProjectionRepository:    projectionRepository,
		DecisionAuditRepository: decisionAuditRepository,
		RiskService:             riskService,
		AlertService:            alertService,
	}
}

func (h scenarioServiceHandler) Execute(ctx context.Context, scenarioID uuid.UUID, executedBy *uuid.UUID) (*model.Scenario, error) {
	profile, endProfile := domain.GetProfile(ctx)
	defer endProfile()

	_, endSpan := profile.StartNewSpan("load scenario")
	scenario, err := h.ScenarioRepository.Get(scenarioID)
	if err != nil {
		return nil, err
	}
	endSpan()

	if domain.ScenarioStatus(scenario.Status) == domain.ScenarioStatus_Converted {
		return nil, fmt.Errorf("scenario %s is already converted and can no longer be executed", scenarioID)
	}

	simulationType, err := domain.ParseSimulationType(scenario.SimulationType)
	if err != nil {
		return nil, err
	}
	params, err := domain.ParseInputParameters(simulationType, []byte(scenario.InputParameters))
	if err != nil {
		return nil, err
	}

	_, endSpan = profile.StartNewSpan("run calculators")
	results, err := calculator.Calculate(simulationType, params)
	if err != nil {
		return nil, err
	}
	endSpan()

	_, endSpan = profile.StartNewSpan("identify risks")
	results.RiskFactors = h.RiskService.IdentifyRisks(*results)
	results.RiskLevel = domain.DeriveRiskLevel(results.RiskFactors)
	endSpan()

	// alerts are best-effort telemetry; a sink failure must not fail
	// the execution
	if len(results.RiskFactors) > 0 {
		_, endSpan = profile.StartNewSpan("generate alerts")
		alertIDs, err := h.AlertService.CreateForScenario(ctx, *scenario, *results)
		if err != nil {
			logger.FromContext(ctx).Warnf("continuing without alerts for scenario %s: %v", scenarioID, err)
		} else {
			results.AlertIDs = alertIDs
		}
		endSpan()
	}

	resultsJSON, err := results.Marshal()
	if err != nil {
		return nil, err
	}

	_, endSpan = profile.StartNewSpan("persist scenario")
	now := time.Now().UTC()
	scenario.Results = &resultsJSON
	scenario.Status = string(domain.ScenarioStatus_Executed)
	scenario.ExecutedBy = executedBy
	scenario.ExecutedAt = &now

	updated, err := h.ScenarioRepository.Update(scenarioID, *scenario, postgres.ColumnList{
		table.Scenario.Results,
		table.Scenario.Status,
		table.Scenario.ExecutedBy,
		table.Scenario.ExecutedAt,
	})
	if err != nil {
		return nil, err
	}
	endSpan()

	return updated, nil
}

func (h scenarioServiceHandler) Convert(ctx context.Context, scenarioID uuid.UUID) (*model.Scenario, *model.Projection, error) {
	scenario, err := h.ScenarioRepository.Get(scenarioID)
	if err != nil {
		return nil, nil, err
	}

	if domain.ScenarioStatus(scenario.Status) != domain.ScenarioStatus_Executed {
		return nil, nil, fmt.Errorf("cannot convert scenario %s with status %s: only EXECUTED scenarios convert to plans", scenarioID, scenario.Status)
	}
	if scenario.Results == nil {
		return nil, nil, fmt.Errorf("scenario %s has no results to convert", scenarioID)
	}

	projection, err := h.ProjectionRepository.Add(model.Projection{
		ProjectionID:    uuid.New(),
		FirmID:          scenario.FirmID,
		ScenarioID:      scenario.ScenarioID,
		Name:            scenario.Name,
		SimulationType:  scenario.SimulationType,
		InputParameters: scenario.InputParameters,
		Results:         *scenario.Results,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create projection from scenario %s: %w", scenarioID, err)
	}

	now := time.Now().UTC()
	scenario.Status = string(domain.ScenarioStatus_Converted)
	scenario.ConvertedToProjectionID = &projection.ProjectionID
	scenario.ConvertedAt = &now

	updated, err := h.ScenarioRepository.Update(scenarioID, *scenario, postgres.ColumnList{
		table.Scenario.Status,
		table.Scenario.ConvertedToProjectionID,
		table.Scenario.ConvertedAt,
	})
	if err != nil {
		return nil, nil, err
	}

	// the audit trail is best-effort, same contract as alerts
	err = h.DecisionAuditRepository.Add(model.DecisionAudit{
		DecisionAuditID: uuid.New(),
		FirmID:          scenario.FirmID,
		ScenarioID:      scenario.ScenarioID,
		ProjectionID:    projection.ProjectionID,
		Action:          "SCENARIO_CONVERTED",
		Detail:          scenario.Results,
	})
	if err != nil {
		logger.FromContext(ctx).Warnf("failed to record decision audit for scenario %s: %v", scenarioID, err)
	}

	return updated, projection, nil
}
