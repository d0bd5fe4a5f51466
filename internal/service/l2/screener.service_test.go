package l2_service

import (
	"testing"

	"agroplan/internal/db/models/postgres/public/model"
	"agroplan/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func scenarioWithResults(t *testing.T, results domain.SimulationResults) model.Scenario {
	t.Helper()
	resultsJSON, err := results.Marshal()
	require.NoError(t, err)
	return model.Scenario{
		ScenarioID: uuid.New(),
		Results:    &resultsJSON,
	}
}

func TestScreen(t *testing.T) {
	handler := screenerServiceHandler{}

	profitable := scenarioWithResults(t, domain.SimulationResults{
		Economic: &domain.EconomicMetrics{
			Margin:     5000,
			RoiPercent: 25,
			CostPerKg:  2.0,
		},
		AreaHectares: 100,
	})
	unprofitable := scenarioWithResults(t, domain.SimulationResults{
		Economic: &domain.EconomicMetrics{
			Margin:     -2000,
			RoiPercent: -10,
			CostPerKg:  9.0,
		},
		Livestock:    &domain.LivestockMetrics{ForageBalanceKg: -500},
		AreaHectares: 50,
	})
	draft := model.Scenario{ScenarioID: uuid.New()}

	scenarios := []model.Scenario{profitable, unprofitable, draft}

	t.Run("simple margin filter", func(t *testing.T) {
		matches, err := handler.Screen(scenarios, "margin > 0")
		require.NoError(t, err)
		require.Equal(t, []uuid.UUID{profitable.ScenarioID}, matches)
	})

	t.Run("compound expression", func(t *testing.T) {
		matches, err := handler.Screen(scenarios, "margin > 0 && roiPercent > 10 && costPerKg < 8.5")
		require.NoError(t, err)
		require.Equal(t, []uuid.UUID{profitable.ScenarioID}, matches)
	})

	t.Run("functions over metrics", func(t *testing.T) {
		matches, err := handler.Screen(scenarios, "abs(forageBalanceKg) < 1000 && margin < 0")
		require.NoError(t, err)
		require.Equal(t, []uuid.UUID{unprofitable.ScenarioID}, matches)
	})

	t.Run("drafts are skipped", func(t *testing.T) {
		matches, err := handler.Screen(scenarios, "margin > -1000000")
		require.NoError(t, err)
		require.Len(t, matches, 2)
	})

	t.Run("non-boolean expression rejected", func(t *testing.T) {
		_, err := handler.Screen(scenarios, "margin + 1")
		require.Error(t, err)
	})

	t.Run("empty expression rejected", func(t *testing.T) {
		_, err := handler.Screen(scenarios, "")
		require.Error(t, err)
	})
}
