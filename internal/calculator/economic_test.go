package calculator

import (
	"testing"

	"agroplan/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestCalculateEconomic(t *testing.T) {
	t.Run("profitable baseline", func(t *testing.T) {
		metrics, err := CalculateEconomic(domain.EconomicParameters{
			InputCosts:     3000,
			MachineryCosts: 1000,
			LaborCosts:     1000,
			ProductionKg:   2000,
			PricePerKg:     3.0,
			AreaHectares:   10,
		})
		require.NoError(t, err)

		require.Equal(t, 5000.0, metrics.TotalCost)
		require.Equal(t, 6000.0, metrics.Revenue)
		require.Equal(t, 1000.0, metrics.Margin)
		require.InDelta(t, 16.6667, metrics.MarginPercent, 0.001)
		require.InDelta(t, 20.0, metrics.RoiPercent, 0.001)
		require.InDelta(t, 2.5, metrics.CostPerKg, 0.001)
		require.InDelta(t, 500.0, metrics.CostPerHa, 0.001)
		require.InDelta(t, 200.0, metrics.KgPerHa, 0.001)
		require.NotNil(t, metrics.BreakEvenKg)
		require.InDelta(t, 1666.6667, *metrics.BreakEvenKg, 0.001)
		require.InDelta(t, 16.6667, metrics.SafetyMarginPercent, 0.001)
	})

	t.Run("zero revenue guards ratios", func(t *testing.T) {
		metrics, err := CalculateEconomic(domain.EconomicParameters{
			InputCosts:   1000,
			ProductionKg: 0,
			PricePerKg:   3.0,
		})
		require.NoError(t, err)

		require.Equal(t, 0.0, metrics.Revenue)
		require.Equal(t, -1000.0, metrics.Margin)
		require.Equal(t, 0.0, metrics.MarginPercent)
		require.InDelta(t, -100.0, metrics.RoiPercent, 0.001)
		require.Equal(t, 0.0, metrics.CostPerKg)
	})

	t.Run("zero price means break-even is unreachable", func(t *testing.T) {
		metrics, err := CalculateEconomic(domain.EconomicParameters{
			InputCosts:   1000,
			ProductionKg: 500,
			PricePerKg:   0,
		})
		require.NoError(t, err)

		require.Nil(t, metrics.BreakEvenKg)
		require.Equal(t, -100.0, metrics.SafetyMarginPercent)
	})

	t.Run("production below break-even has zero safety margin", func(t *testing.T) {
		metrics, err := CalculateEconomic(domain.EconomicParameters{
			InputCosts:   6000,
			ProductionKg: 1000,
			PricePerKg:   3.0,
		})
		require.NoError(t, err)

		require.NotNil(t, metrics.BreakEvenKg)
		require.InDelta(t, 2000.0, *metrics.BreakEvenKg, 0.001)
		require.Equal(t, 0.0, metrics.SafetyMarginPercent)
	})

	t.Run("negative cost rejected", func(t *testing.T) {
		_, err := CalculateEconomic(domain.EconomicParameters{
			InputCosts:   -1,
			ProductionKg: 500,
			PricePerKg:   3.0,
		})
		require.Error(t, err)
	})
}

func TestCalculateSensitivity(t *testing.T) {
	params := domain.EconomicParameters{
		InputCosts:     3000,
		MachineryCosts: 1000,
		LaborCosts:     1000,
		ProductionKg:   2000,
		PricePerKg:     3.0,
		AreaHectares:   10,
	}

	metrics, err := CalculateEconomic(params)
	require.NoError(t, err)
	sensitivity := metrics.Sensitivity
	require.NotNil(t, sensitivity)

	t.Run("grid covers -20 to +20 in steps of 5", func(t *testing.T) {
		require.Len(t, sensitivity.Points, 9)
		require.Equal(t, -20.0, sensitivity.Points[0].PriceVariationPercent)
		require.Equal(t, 0.0, sensitivity.Points[4].PriceVariationPercent)
		require.Equal(t, 20.0, sensitivity.Points[8].PriceVariationPercent)
	})

	t.Run("baseline point matches headline metrics", func(t *testing.T) {
		base := sensitivity.Points[4]
		require.InDelta(t, 3.0, base.PricePerKg, 0.0001)
		require.InDelta(t, metrics.Margin, base.Margin, 0.0001)
		require.True(t, base.IsProfitable)
	})

	t.Run("margin bounds", func(t *testing.T) {
		// -20%: revenue 4800 - 5000 = -200; +20%: 7200 - 5000 = 2200
		require.InDelta(t, -200.0, sensitivity.MinMargin, 0.001)
		require.InDelta(t, 2200.0, sensitivity.MaxMargin, 0.001)
		require.InDelta(t, 2400.0, sensitivity.MarginRange, 0.001)
		require.False(t, sensitivity.Points[0].IsProfitable)
	})

	t.Run("elasticity from the +/-10 points", func(t *testing.T) {
		// margin moves 1200 over a 0.6 price swing
		require.InDelta(t, 2000.0, sensitivity.PriceElasticity, 0.001)
	})

	t.Run("zero price collapses elasticity to zero", func(t *testing.T) {
		zeroPrice := params
		zeroPrice.PricePerKg = 0
		m, err := CalculateEconomic(zeroPrice)
		require.NoError(t, err)
		require.Equal(t, 0.0, m.Sensitivity.PriceElasticity)
	})
}
