package l3_service

import (
	"context"
	"testing"

	"agroplan/internal/db/models/postgres/public/model"
	"agroplan/internal/domain"
	mock_repository "agroplan/internal/repository/mocks"
	l1_service "agroplan/internal/service/l1"
	l2_service "agroplan/internal/service/l2"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func profitableEconomicScenario() *model.Scenario {
	return &model.Scenario{
		ScenarioID:     uuid.New(),
		FirmID:         uuid.New(),
		Name:           "spring fattening",
		ScenarioType:   string(domain.ScenarioType_Custom),
		SimulationType: string(domain.SimulationType_Economic),
		Status:         string(domain.ScenarioStatus_Draft),
		InputParameters: `{
			"input_costs": 3000,
			"machinery_costs": 1000,
			"labor_costs": 1000,
			"production_kg": 2000,
			"price_per_kg": 3.0,
			"area_hectares": 10
		}`,
	}
}

func newScenarioServiceForTest(
	scenarioRepository *mock_repository.MockScenarioRepository,
	projectionRepository *mock_repository.MockProjectionRepository,
	decisionAuditRepository *mock_repository.MockDecisionAuditRepository,
	alertRepository *mock_repository.MockPredictiveAlertRepository,
) scenarioServiceHandler {
	return scenarioServiceHandler{
		ScenarioRepository:      scenarioRepository,
		ProjectionRepository:    projectionRepository,
		DecisionAuditRepository: decisionAuditRepository,
		RiskService:             l2_service.NewRiskService(l2_service.DefaultRiskThresholds()),
		AlertService:            l1_service.NewAlertService(alertRepository),
	}
}

func TestExecute(t *testing.T) {
	t.Run("profitable scenario executes without alerts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		scenarioRepository := mock_repository.NewMockScenarioRepository(ctrl)
		alertRepository := mock_repository.NewMockPredictiveAlertRepository(ctrl)
		handler := newScenarioServiceForTest(
			scenarioRepository,
			mock_repository.NewMockProjectionRepository(ctrl),
			mock_repository.NewMockDecisionAuditRepository(ctrl),
			alertRepository,
		)

		scenario := profitableEconomicScenario()
		executedBy := uuid.New()

		scenarioRepository.EXPECT().Get(scenario.ScenarioID).Return(scenario, nil)
		scenarioRepository.EXPECT().
			Update(scenario.ScenarioID, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ uuid.UUID, m model.Scenario, _ postgres.ColumnList) (*model.Scenario, error) {
				require.Equal(t, string(domain.ScenarioStatus_Executed), m.Status)
				require.NotNil(t, m.ExecutedAt)
				require.Equal(t, &executedBy, m.ExecutedBy)
				require.NotNil(t, m.Results)

				results, err := domain.ParseSimulationResults([]byte(*m.Results))
				require.NoError(t, err)
				require.NotNil(t, results.Economic)
				require.InDelta(t, 1000.0, results.Economic.Margin, 0.001)
				require.Empty(t, results.RiskFactors)
				require.Equal(t, domain.Severity_Low, results.RiskLevel)
				return &m, nil
			})

		updated, err := handler.Execute(context.Background(), scenario.ScenarioID, &executedBy)
		require.NoError(t, err)
		require.Equal(t, string(domain.ScenarioStatus_Executed), updated.Status)
	})

	t.Run("risky scenario persists alerts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		scenarioRepository := mock_repository.NewMockScenarioRepository(ctrl)
		alertRepository := mock_repository.NewMockPredictiveAlertRepository(ctrl)
		handler := newScenarioServiceForTest(
			scenarioRepository,
			mock_repository.NewMockProjectionRepository(ctrl),
			mock_repository.NewMockDecisionAuditRepository(ctrl),
			alertRepository,
		)

		scenario := profitableEconomicScenario()
		// costs above revenue: negative margin + break-even shortfall
		scenario.InputParameters = `{
			"input_costs": 9000,
			"production_kg": 2000,
			"price_per_kg": 3.0,
			"area_hectares": 10
		}`

		alertID := uuid.New()
		scenarioRepository.EXPECT().Get(scenario.ScenarioID).Return(scenario, nil)
		alertRepository.EXPECT().
			AddMany(gomock.Any()).
			DoAndReturn(func(alerts []model.PredictiveAlert) ([]model.PredictiveAlert, error) {
				require.NotEmpty(t, alerts)
				require.Equal(t, string(domain.AlertType_NegativeMargin), alerts[0].AlertType)
				alerts[0].AlertID = alertID
				return alerts[:1], nil
			})
		scenarioRepository.EXPECT().
			Update(scenario.ScenarioID, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ uuid.UUID, m model.Scenario, _ postgres.ColumnList) (*model.Scenario, error) {
				results, err := domain.ParseSimulationResults([]byte(*m.Results))
				require.NoError(t, err)
				require.NotEmpty(t, results.RiskFactors)
				require.Equal(t, []uuid.UUID{alertID}, results.AlertIDs)
				return &m, nil
			})

		_, err := handler.Execute(context.Background(), scenario.ScenarioID, nil)
		require.NoError(t, err)
	})

	t.Run("alert sink failure does not fail the execution", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		scenarioRepository := mock_repository.NewMockScenarioRepository(ctrl)
		alertRepository := mock_repository.NewMockPredictiveAlertRepository(ctrl)
		handler := newScenarioServiceForTest(
			scenarioRepository,
			mock_repository.NewMockProjectionRepository(ctrl),
			mock_repository.NewMockDecisionAuditRepository(ctrl),
			alertRepository,
		)

		scenario := profitableEconomicScenario()
		scenario.InputParameters = `{
			"input_costs": 9000,
			"production_kg": 2000,
			"price_per_kg": 3.0,
			"area_hectares": 10
		}`

		scenarioRepository.EXPECT().Get(scenario.ScenarioID).Return(scenario, nil)
		alertRepository.EXPECT().AddMany(gomock.Any()).Return(nil, context.DeadlineExceeded)
		scenarioRepository.EXPECT().
			Update(scenario.ScenarioID, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ uuid.UUID, m model.Scenario, _ postgres.ColumnList) (*model.Scenario, error) {
				results, err := domain.ParseSimulationResults([]byte(*m.Results))
				require.NoError(t, err)
				require.Empty(t, results.AlertIDs)
				return &m, nil
			})

		_, err := handler.Execute(context.Background(), scenario.ScenarioID, nil)
		require.NoError(t, err)
	})

	t.Run("re-executing an executed scenario overwrites results", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		scenarioRepository := mock_repository.NewMockScenarioRepository(ctrl)
		handler := newScenarioServiceForTest(
			scenarioRepository,
			mock_repository.NewMockProjectionRepository(ctrl),
			mock_repository.NewMockDecisionAuditRepository(ctrl),
			mock_repository.NewMockPredictiveAlertRepository(ctrl),
		)

		scenario := profitableEconomicScenario()
		scenario.Status = string(domain.ScenarioStatus_Executed)
		stale := `{"economic":{"margin":-1}}`
		scenario.Results = &stale

		scenarioRepository.EXPECT().Get(scenario.ScenarioID).Return(scenario, nil)
		scenarioRepository.EXPECT().
			Update(scenario.ScenarioID, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ uuid.UUID, m model.Scenario, _ postgres.ColumnList) (*model.Scenario, error) {
				results, err := domain.ParseSimulationResults([]byte(*m.Results))
				require.NoError(t, err)
				require.InDelta(t, 1000.0, results.Economic.Margin, 0.001)
				return &m, nil
			})

		_, err := handler.Execute(context.Background(), scenario.ScenarioID, nil)
		require.NoError(t, err)
	})

	t.Run("converted scenarios cannot be executed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		scenarioRepository := mock_repository.NewMockScenarioRepository(ctrl)
		handler := newScenarioServiceForTest(
			scenarioRepository,
			mock_repository.NewMockProjectionRepository(ctrl),
			mock_repository.NewMockDecisionAuditRepository(ctrl),
			mock_repository.NewMockPredictiveAlertRepository(ctrl),
		)

		scenario := profitableEconomicScenario()
		scenario.Status = string(domain.ScenarioStatus_Converted)
		scenarioRepository.EXPECT().Get(scenario.ScenarioID).Return(scenario, nil)

		_, err := handler.Execute(context.Background(), scenario.ScenarioID, nil)
		require.Error(t, err)
		require.Contains(t, err.Error(), "already converted")
	})

	t.Run("invalid parameters fail the execution", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		scenarioRepository := mock_repository.NewMockScenarioRepository(ctrl)
		handler := newScenarioServiceForTest(
			scenarioRepository,
			mock_repository.NewMockProjectionRepository(ctrl),
			mock_repository.NewMockDecisionAuditRepository(ctrl),
			mock_repository.NewMockPredictiveAlertRepository(ctrl),
		)

		scenario := profitableEconomicScenario()
		scenario.InputParameters = `{"input_costs": -100}`
		scenarioRepository.EXPECT().Get(scenario.ScenarioID).Return(scenario, nil)

		_, err := handler.Execute(context.Background(), scenario.ScenarioID, nil)
		require.Error(t, err)
	})
}

func TestConvert(t *testing.T) {
	t.Run("executed scenario converts to a projection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		scenarioRepository := mock_repository.NewMockScenarioRepository(ctrl)
		projectionRepository := mock_repository.NewMockProjectionRepository(ctrl)
		decisionAuditRepository := mock_repository.NewMockDecisionAuditRepository(ctrl)
		handler := newScenarioServiceForTest(
			scenarioRepository,
			projectionRepository,
			decisionAuditRepository,
			mock_repository.NewMockPredictiveAlertRepository(ctrl),
		)

		scenario := profitableEconomicScenario()
		scenario.Status = string(domain.ScenarioStatus_Executed)
		results := `{"economic":{"margin":1000},"riskLevel":"LOW"}`
		scenario.Results = &results

		projectionID := uuid.New()
		scenarioRepository.EXPECT().Get(scenario.ScenarioID).Return(scenario, nil)
		projectionRepository.EXPECT().
			Add(gomock.Any()).
			DoAndReturn(func(m model.Projection) (*model.Projection, error) {
				require.Equal(t, scenario.ScenarioID, m.ScenarioID)
				require.Equal(t, scenario.Name, m.Name)
				require.Equal(t, results, m.Results)
				m.ProjectionID = projectionID
				return &m, nil
			})
		scenarioRepository.EXPECT().
			Update(scenario.ScenarioID, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ uuid.UUID, m model.Scenario, _ postgres.ColumnList) (*model.Scenario, error) {
				require.Equal(t, string(domain.ScenarioStatus_Converted), m.Status)
				require.Equal(t, &projectionID, m.ConvertedToProjectionID)
				require.NotNil(t, m.ConvertedAt)
				return &m, nil
			})
		decisionAuditRepository.EXPECT().
			Add(gomock.Any()).
			DoAndReturn(func(m model.DecisionAudit) error {
				require.Equal(t, "SCENARIO_CONVERTED", m.Action)
				require.Equal(t, projectionID, m.ProjectionID)
				return nil
			})

		updated, projection, err := handler.Convert(context.Background(), scenario.ScenarioID)
		require.NoError(t, err)
		require.Equal(t, string(domain.ScenarioStatus_Converted), updated.Status)
		require.Equal(t, projectionID, projection.ProjectionID)
	})

	t.Run("draft scenarios cannot convert", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		scenarioRepository := mock_repository.NewMockScenarioRepository(ctrl)
		handler := newScenarioServiceForTest(
			scenarioRepository,
			mock_repository.NewMockProjectionRepository(ctrl),
			mock_repository.NewMockDecisionAuditRepository(ctrl),
			mock_repository.NewMockPredictiveAlertRepository(ctrl),
		)

		scenario := profitableEconomicScenario()
		scenarioRepository.EXPECT().Get(scenario.ScenarioID).Return(scenario, nil)

		_, _, err := handler.Convert(context.Background(), scenario.ScenarioID)
		require.Error(t, err)
		require.Contains(t, err.Error(), "only EXECUTED scenarios")
	})

	t.Run("audit failure does not fail the conversion", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		scenarioRepository := mock_repository.NewMockScenarioRepository(ctrl)
		projectionRepository := mock_repository.NewMockProjectionRepository(ctrl)
		decisionAuditRepository := mock_repository.NewMockDecisionAuditRepository(ctrl)
		handler := newScenarioServiceForTest(
			scenarioRepository,
			projectionRepository,
			decisionAuditRepository,
			mock_repository.NewMockPredictiveAlertRepository(ctrl),
		)

		scenario := profitableEconomicScenario()
		scenario.Status = string(domain.ScenarioStatus_Executed)
		results := `{"riskLevel":"LOW"}`
		scenario.Results = &results

		scenarioRepository.EXPECT().Get(scenario.ScenarioID).Return(scenario, nil)
		projectionRepository.EXPECT().
			Add(gomock.Any()).
			DoAndReturn(func(m model.Projection) (*model.Projection, error) {
				return &m, nil
			})
		scenarioRepository.EXPECT().
			Update(scenario.ScenarioID, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ uuid.UUID, m model.Scenario, _ postgres.ColumnList) (*model.Scenario, error) {
				return &m, nil
			})
		decisionAuditRepository.EXPECT().Add(gomock.Any()).Return(context.DeadlineExceeded)

		_, _, err := handler.Convert(context.Background(), scenario.ScenarioID)
		require.NoError(t, err)
	})
}
