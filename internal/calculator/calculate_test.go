package calculator

import (
	"testing"

	"agroplan/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestCalculate(t *testing.T) {
	t.Run("economic only populates economic results", func(t *testing.T) {
		results, err := Calculate(domain.SimulationType_Economic, domain.EconomicParameters{
			InputCosts:   1000,
			ProductionKg: 500,
			PricePerKg:   3.0,
			AreaHectares: 5,
		})
		require.NoError(t, err)
		require.NotNil(t, results.Economic)
		require.Nil(t, results.Livestock)
		require.Nil(t, results.Agricultural)
		require.Equal(t, 5.0, results.AreaHectares)
	})

	t.Run("mismatched parameter type rejected", func(t *testing.T) {
		_, err := Calculate(domain.SimulationType_Economic, domain.ProductionParameters{
			AreaHectares: 5,
		})
		require.Error(t, err)
		require.Contains(t, err.Error(), "does not match simulation type")
	})

	t.Run("unknown simulation type rejected", func(t *testing.T) {
		_, err := Calculate(domain.SimulationType("BOGUS"), domain.EconomicParameters{})
		require.Error(t, err)
	})

	t.Run("integral combines both legs", func(t *testing.T) {
		livestock := domain.LivestockLoadParameters{
			AnimalCount:  100,
			AvgWeightKg:  400,
			DailyGainKg:  0.8,
			HorizonDays:  365,
			AreaHectares: 100,
			PricePerKg:   2.0,
			FeedCosts:    20000,
			HealthCosts:  5000,
			LaborCosts:   10000,
		}
		agricultural := domain.ProductionParameters{
			AreaHectares:        50,
			ExpectedYieldKgHa:   3000,
			ExpectedRainfallMm:  500,
			ReferenceRainfallMm: 500,
			PricePerKg:          0.25,
			InputCosts:          15000,
			MachineryCosts:      8000,
			LaborCosts:          5000,
		}

		results, err := Calculate(domain.SimulationType_Integral, domain.IntegralParameters{
			Livestock:    livestock,
			Agricultural: agricultural,
		})
		require.NoError(t, err)
		require.NotNil(t, results.Economic)
		require.NotNil(t, results.Livestock)
		require.NotNil(t, results.Agricultural)

		// 29,200kg of gain + 150,000kg of crop
		require.InDelta(t, 179200.0, results.Economic.ProductionKg, 0.001)
		// 58,400 + 37,500 revenue over 63,000 total cost
		require.InDelta(t, 95900.0, results.Economic.Revenue, 0.1)
		require.InDelta(t, 63000.0, results.Economic.TotalCost, 0.001)
		require.InDelta(t, 32900.0, results.Economic.Margin, 0.1)
		require.Equal(t, 150.0, results.AreaHectares)

		// blended realized price, not either leg's sticker price
		require.NotNil(t, results.Economic.BreakEvenKg)
		blendedPrice := results.Economic.Revenue / results.Economic.ProductionKg
		require.InDelta(t, results.Economic.TotalCost/blendedPrice, *results.Economic.BreakEvenKg, 0.5)
	})

	t.Run("integral fails when one leg is invalid", func(t *testing.T) {
		_, err := Calculate(domain.SimulationType_Integral, domain.IntegralParameters{
			Livestock: domain.LivestockLoadParameters{
				AnimalCount: 0,
			},
			Agricultural: domain.ProductionParameters{
				AreaHectares: 10,
			},
		})
		require.Error(t, err)
	})
}
