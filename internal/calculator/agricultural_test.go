package calculator

import (
	"testing"

	"agroplan/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestCalculateAgricultural(t *testing.T) {
	t.Run("yield scales with rainfall outlook", func(t *testing.T) {
		agricultural, economic, err := CalculateAgricultural(domain.ProductionParameters{
			AreaHectares:        100,
			ExpectedYieldKgHa:   3000,
			ExpectedRainfallMm:  450,
			ReferenceRainfallMm: 500,
			PricePerKg:          0.25,
			InputCosts:          30000,
			MachineryCosts:      15000,
			LaborCosts:          10000,
		})
		require.NoError(t, err)

		require.InDelta(t, 0.9, agricultural.RainfallAdjustment, 0.0001)
		require.InDelta(t, 2700.0, agricultural.YieldKgPerHa, 0.001)
		require.InDelta(t, 270000.0, agricultural.ProductionKg, 0.001)
		require.InDelta(t, 67500.0, economic.Revenue, 0.001)
		require.InDelta(t, 12500.0, economic.Margin, 0.001)
	})

	t.Run("adjustment is capped at 1.2", func(t *testing.T) {
		agricultural, _, err := CalculateAgricultural(domain.ProductionParameters{
			AreaHectares:        10,
			ExpectedYieldKgHa:   2000,
			ExpectedRainfallMm:  1000,
			ReferenceRainfallMm: 500,
			PricePerKg:          0.3,
		})
		require.NoError(t, err)
		require.InDelta(t, 1.2, agricultural.RainfallAdjustment, 0.0001)
		require.InDelta(t, 2400.0, agricultural.YieldKgPerHa, 0.001)
	})

	t.Run("missing reference rainfall means no adjustment", func(t *testing.T) {
		agricultural, _, err := CalculateAgricultural(domain.ProductionParameters{
			AreaHectares:       10,
			ExpectedYieldKgHa:  2000,
			ExpectedRainfallMm: 600,
			PricePerKg:         0.3,
		})
		require.NoError(t, err)
		require.InDelta(t, 1.0, agricultural.RainfallAdjustment, 0.0001)
	})

	t.Run("zero area rejected", func(t *testing.T) {
		_, _, err := CalculateAgricultural(domain.ProductionParameters{
			ExpectedYieldKgHa: 2000,
		})
		require.Error(t, err)
	})
}
