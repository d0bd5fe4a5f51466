package l1_service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"agroplan/internal/db/models/postgres/public/model"
	"agroplan/internal/domain"
	"agroplan/internal/repository"
	"agroplan/internal/util"

	"github.com/google/uuid"
)

// projection horizons for alert follow-up. A negative margin bites at
// the next cost cycle (~30 days); overgrazing degrades pasture over a
// season (~60 days); cost and ROI problems are actionable immediately.
const (
	marginAlertOffsetDays      = 30
	overgrazingAlertOffsetDays = 60
)

// AlertService maps detected risk factors to persisted predictive
// alerts. Alerts are telemetry for the alerting module - the engine
// creates them and never touches their lifecycle again.
type AlertService interface {
	CreateForScenario(ctx context.Context, scenario model.Scenario, results domain.SimulationResults) ([]uuid.UUID, error)
}

type alertServiceHandler struct {
	AlertRepository repository.PredictiveAlertRepository
}

func NewAlertService(alertRepository repository.PredictiveAlertRepository) AlertService {
	return alertServiceHandler{AlertRepository: alertRepository}
}

func (h alertServiceHandler) CreateForScenario(ctx context.Context, scenario model.Scenario, results domain.SimulationResults) ([]uuid.UUID, error) {
	alerts := buildAlerts(scenario, results)
	if len(alerts) == 0 {
		return nil, nil
	}

	inserted, err := h.AlertRepository.AddMany(alerts)
	if err != nil {
		return nil, fmt.Errorf("failed to persist predictive alerts: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(inserted))
	for _, alert := range inserted {
		ids = append(ids, alert.AlertID)
	}
	return ids, nil
}

// buildAlerts maps the alertable subset of risk types. Risks like
// SMALL_SCALE or PRICE_SENSITIVE inform the scenario readout but don't
// warrant a standing alert.
func buildAlerts(scenario model.Scenario, results domain.SimulationResults) []model.PredictiveAlert {
	now := time.Now().UTC()
	alerts := []model.PredictiveAlert{}

	for _, factor := range results.RiskFactors {
		var (
			alertType  domain.AlertType
			title      string
			offsetDays int
		)
		switch factor.Type {
		case domain.RiskType_MarginNegative:
			alertType = domain.AlertType_NegativeMargin
			title = "Projected negative margin"
			offsetDays = marginAlertOffsetDays
		case domain.RiskType_Overgrazing:
			alertType = domain.AlertType_Overgrazing
			title = "Projected overgrazing"
			offsetDays = overgrazingAlertOffsetDays
		case domain.RiskType_CostOutOfRange:
			alertType = domain.AlertType_CostOverrun
			title = "Production cost out of range"
		case domain.RiskType_LowROI:
			alertType = domain.AlertType_LowReturn
			title = "Low projected return"
		default:
			continue
		}

		metadata := alertMetadata(scenario, results)
		scenarioID := scenario.ScenarioID
		alerts = append(alerts, model.PredictiveAlert{
			AlertID:           uuid.New(),
			FirmID:            scenario.FirmID,
			PremiseID:         scenario.PremiseID,
			LotID:             scenario.LotID,
			ScenarioID:        &scenarioID,
			AlertType:         string(alertType),
			Severity:          string(factor.Severity),
			Title:             title,
			Description:       factor.Message,
			RecommendedAction: factor.Recommendation,
			ProjectedDate:     now.AddDate(0, 0, offsetDays),
			Metadata:          metadata,
			Status:            string(domain.AlertStatus_Active),
		})
	}

	return alerts
}

func alertMetadata(scenario model.Scenario, results domain.SimulationResults) *string {
	payload := map[string]interface{}{
		"scenarioName":   scenario.Name,
		"simulationType": scenario.SimulationType,
		"riskLevel":      results.RiskLevel,
	}
	if results.Economic != nil {
		payload["margin"] = results.Economic.Margin
		payload["roiPercent"] = results.Economic.RoiPercent
		payload["costPerKg"] = results.Economic.CostPerKg
	}
	bytes, err := json.Marshal(payload)
	if err != nil {
		return nil
	}
	return util.StrPtr(string(bytes))
}
