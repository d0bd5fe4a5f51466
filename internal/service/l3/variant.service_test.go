package l3_service

import (
	"context"
	"fmt"
	"testing"

	"agroplan/internal/db/models/postgres/public/model"
	"agroplan/internal/domain"
	mock_repository "agroplan/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// stubScenarioService marks whatever it is asked to execute as
// executed, or fails for the scenario names it is told to fail.
type stubScenarioService struct {
	executed    []uuid.UUID
	failForName map[string]bool
	byID        map[uuid.UUID]model.Scenario
}

func (s *stubScenarioService) Execute(_ context.Context, scenarioID uuid.UUID, _ *uuid.UUID) (*model.Scenario, error) {
	scenario := s.byID[scenarioID]
	if s.failForName[scenario.Name] {
		return nil, fmt.Errorf("forced failure for %s", scenario.Name)
	}
	s.executed = append(s.executed, scenarioID)
	scenario.Status = string(domain.ScenarioStatus_Executed)
	return &scenario, nil
}

func (s *stubScenarioService) Convert(context.Context, uuid.UUID) (*model.Scenario, *model.Projection, error) {
	return nil, nil, fmt.Errorf("not implemented")
}

func baseEconomicScenario() *model.Scenario {
	return &model.Scenario{
		ScenarioID:     uuid.New(),
		FirmID:         uuid.New(),
		Name:           "base plan",
		ScenarioType:   string(domain.ScenarioType_Custom),
		SimulationType: string(domain.SimulationType_Economic),
		Status:         string(domain.ScenarioStatus_Draft),
		InputParameters: `{
			"input_costs": 1000,
			"production_kg": 2000,
			"price_per_kg": 2.0,
			"area_hectares": 10
		}`,
	}
}

func TestGenerateVariants(t *testing.T) {
	t.Run("generates the three variants in order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		scenarioRepository := mock_repository.NewMockScenarioRepository(ctrl)
		stub := &stubScenarioService{byID: map[uuid.UUID]model.Scenario{}}
		handler := variantServiceHandler{
			ScenarioRepository: scenarioRepository,
			ScenarioService:    stub,
		}

		base := baseEconomicScenario()
		scenarioRepository.EXPECT().Get(base.ScenarioID).Return(base, nil)

		added := []model.Scenario{}
		scenarioRepository.EXPECT().
			Add(gomock.Any()).
			Times(3).
			DoAndReturn(func(m model.Scenario) (*model.Scenario, error) {
				added = append(added, m)
				stub.byID[m.ScenarioID] = m
				return &m, nil
			})

		variants, err := handler.GenerateVariants(context.Background(), base.ScenarioID, nil)
		require.NoError(t, err)
		require.Len(t, variants, 3)

		require.Equal(t, "base plan - Optimistic", added[0].Name)
		require.Equal(t, "base plan - Conservative", added[1].Name)
		require.Equal(t, "base plan - Critical", added[2].Name)
		require.Equal(t, string(domain.ScenarioType_Optimistic), added[0].ScenarioType)
		require.Equal(t, string(domain.ScenarioType_Conservative), added[1].ScenarioType)
		require.Equal(t, string(domain.ScenarioType_Critical), added[2].ScenarioType)

		for _, variant := range added {
			require.Equal(t, string(domain.ScenarioStatus_Draft), variant.Status)
			require.Equal(t, base.FirmID, variant.FirmID)
			require.Equal(t, "SCENARIO", *variant.BaseReferenceKind)
			require.Equal(t, base.ScenarioID.String(), *variant.BaseReferenceID)
		}

		optimistic, err := domain.ParseInputParameters(
			domain.SimulationType_Economic, []byte(added[0].InputParameters))
		require.NoError(t, err)
		require.Equal(t, 2.3, optimistic.(domain.EconomicParameters).PricePerKg)
		require.Equal(t, 2400.0, optimistic.(domain.EconomicParameters).ProductionKg)

		critical, err := domain.ParseInputParameters(
			domain.SimulationType_Economic, []byte(added[2].InputParameters))
		require.NoError(t, err)
		require.Equal(t, 1.5, critical.(domain.EconomicParameters).PricePerKg)
		require.Equal(t, 1200.0, critical.(domain.EconomicParameters).InputCosts)

		for _, variant := range variants {
			require.Equal(t, string(domain.ScenarioStatus_Executed), variant.Status)
		}
	})

	t.Run("one failing variant does not sink the batch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		scenarioRepository := mock_repository.NewMockScenarioRepository(ctrl)
		stub := &stubScenarioService{
			byID:        map[uuid.UUID]model.Scenario{},
			failForName: map[string]bool{"base plan - Conservative": true},
		}
		handler := variantServiceHandler{
			ScenarioRepository: scenarioRepository,
			ScenarioService:    stub,
		}

		base := baseEconomicScenario()
		scenarioRepository.EXPECT().Get(base.ScenarioID).Return(base, nil)
		scenarioRepository.EXPECT().
			Add(gomock.Any()).
			Times(3).
			DoAndReturn(func(m model.Scenario) (*model.Scenario, error) {
				stub.byID[m.ScenarioID] = m
				return &m, nil
			})

		variants, err := handler.GenerateVariants(context.Background(), base.ScenarioID, nil)
		require.NoError(t, err)
		require.Len(t, variants, 2)
		require.Equal(t, "base plan - Optimistic", variants[0].Name)
		require.Equal(t, "base plan - Critical", variants[1].Name)
	})

	t.Run("insert failure skips that variant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		scenarioRepository := mock_repository.NewMockScenarioRepository(ctrl)
		stub := &stubScenarioService{byID: map[uuid.UUID]model.Scenario{}}
		handler := variantServiceHandler{
			ScenarioRepository: scenarioRepository,
			ScenarioService:    stub,
		}

		base := baseEconomicScenario()
		scenarioRepository.EXPECT().Get(base.ScenarioID).Return(base, nil)

		call := 0
		scenarioRepository.EXPECT().
			Add(gomock.Any()).
			Times(3).
			DoAndReturn(func(m model.Scenario) (*model.Scenario, error) {
				call++
				if call == 1 {
					return nil, fmt.Errorf("unique constraint violation")
				}
				stub.byID[m.ScenarioID] = m
				return &m, nil
			})

		variants, err := handler.GenerateVariants(context.Background(), base.ScenarioID, nil)
		require.NoError(t, err)
		require.Len(t, variants, 2)
	})

	t.Run("unparseable base parameters fail fast", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		scenarioRepository := mock_repository.NewMockScenarioRepository(ctrl)
		handler := variantServiceHandler{
			ScenarioRepository: scenarioRepository,
			ScenarioService:    &stubScenarioService{byID: map[uuid.UUID]model.Scenario{}},
		}

		base := baseEconomicScenario()
		base.InputParameters = `{"input_costs": -1}`
		scenarioRepository.EXPECT().Get(base.ScenarioID).Return(base, nil)

		_, err := handler.GenerateVariants(context.Background(), base.ScenarioID, nil)
		require.Error(t, err)
	})
}
