package l2_service

import (
	"testing"

	"agroplan/internal/domain"

	"github.com/stretchr/testify/require"
)

func healthyResults() domain.SimulationResults {
	breakEven := 1000.0
	return domain.SimulationResults{
		Economic: &domain.EconomicMetrics{
			TotalCost:    5000,
			Revenue:      9000,
			Margin:       4000,
			RoiPercent:   80,
			ProductionKg: 3000,
			CostPerKg:    1.67,
			BreakEvenKg:  &breakEven,
		},
		AreaHectares: 100,
	}
}

func TestIdentifyRisks(t *testing.T) {
	handler := riskServiceHandler{Thresholds: DefaultRiskThresholds()}

	t.Run("healthy scenario has no risks", func(t *testing.T) {
		factors := handler.IdentifyRisks(healthyResults())
		require.Empty(t, factors)
	})

	t.Run("no economic results means no risks", func(t *testing.T) {
		factors := handler.IdentifyRisks(domain.SimulationResults{})
		require.Empty(t, factors)
	})

	t.Run("negative margin flags HIGH", func(t *testing.T) {
		results := healthyResults()
		results.Economic.Margin = -1000

		factors := handler.IdentifyRisks(results)
		require.Len(t, factors, 1)
		require.Equal(t, domain.RiskType_MarginNegative, factors[0].Type)
		require.Equal(t, domain.Severity_High, factors[0].Severity)
	})

	t.Run("margin loss past the critical threshold escalates", func(t *testing.T) {
		results := healthyResults()
		results.Economic.Margin = -60000

		factors := handler.IdentifyRisks(results)
		require.Len(t, factors, 1)
		require.Equal(t, domain.Severity_Critical, factors[0].Severity)
	})

	t.Run("overgrazing severity depends on the excess", func(t *testing.T) {
		results := healthyResults()
		results.Livestock = &domain.LivestockMetrics{LoadPerHa: 450}

		factors := handler.IdentifyRisks(results)
		require.Len(t, factors, 1)
		require.Equal(t, domain.RiskType_Overgrazing, factors[0].Type)
		require.Equal(t, domain.Severity_High, factors[0].Severity)

		results.Livestock.LoadPerHa = 500 // 25% over
		factors = handler.IdentifyRisks(results)
		require.Equal(t, domain.Severity_Critical, factors[0].Severity)
	})

	t.Run("load at exactly capacity is fine", func(t *testing.T) {
		results := healthyResults()
		results.Livestock = &domain.LivestockMetrics{LoadPerHa: 400}
		require.Empty(t, handler.IdentifyRisks(results))
	})

	t.Run("cost out of range", func(t *testing.T) {
		results := healthyResults()
		results.Economic.CostPerKg = 13 // >1.2x benchmark

		factors := handler.IdentifyRisks(results)
		require.Len(t, factors, 1)
		require.Equal(t, domain.RiskType_CostOutOfRange, factors[0].Type)
		require.Equal(t, domain.Severity_Medium, factors[0].Severity)

		results.Economic.CostPerKg = 16 // >1.5x benchmark
		factors = handler.IdentifyRisks(results)
		require.Equal(t, domain.Severity_High, factors[0].Severity)
	})

	t.Run("low but positive ROI", func(t *testing.T) {
		results := healthyResults()
		results.Economic.RoiPercent = 4

		factors := handler.IdentifyRisks(results)
		require.Len(t, factors, 1)
		require.Equal(t, domain.RiskType_LowROI, factors[0].Type)
	})

	t.Run("negative ROI is the margin rule's job", func(t *testing.T) {
		results := healthyResults()
		results.Economic.RoiPercent = -20
		results.Economic.Margin = -1000

		factors := handler.IdentifyRisks(results)
		require.Len(t, factors, 1)
		require.Equal(t, domain.RiskType_MarginNegative, factors[0].Type)
	})

	t.Run("production below break-even", func(t *testing.T) {
		results := healthyResults()
		results.Economic.ProductionKg = 500

		factors := handler.IdentifyRisks(results)
		require.Len(t, factors, 1)
		require.Equal(t, domain.RiskType_BreakEvenUnreachable, factors[0].Type)
		require.Equal(t, domain.Severity_High, factors[0].Severity)
	})

	t.Run("nil break-even never triggers the break-even rule", func(t *testing.T) {
		results := healthyResults()
		results.Economic.BreakEvenKg = nil
		results.Economic.ProductionKg = 0
		results.Economic.Revenue = 0
		results.Economic.Margin = 4000 // keep the margin rule quiet

		factors := handler.IdentifyRisks(results)
		require.Empty(t, factors)
	})

	t.Run("price sensitivity flagged once", func(t *testing.T) {
		results := healthyResults()
		results.Economic.Sensitivity = &domain.SensitivityAnalysis{
			Points: []domain.SensitivityPoint{
				{PriceVariationPercent: -20, IsProfitable: false},
				{PriceVariationPercent: -15, IsProfitable: false},
				{PriceVariationPercent: -10, IsProfitable: true},
				{PriceVariationPercent: 0, IsProfitable: true},
			},
		}

		factors := handler.IdentifyRisks(results)
		require.Len(t, factors, 1)
		require.Equal(t, domain.RiskType_PriceSensitive, factors[0].Type)
		require.Equal(t, domain.Severity_Medium, factors[0].Severity)
	})

	t.Run("small scale", func(t *testing.T) {
		results := healthyResults()
		results.AreaHectares = 0.5

		factors := handler.IdentifyRisks(results)
		require.Len(t, factors, 1)
		require.Equal(t, domain.RiskType_SmallScale, factors[0].Type)
	})

	t.Run("factors come out in rule order", func(t *testing.T) {
		results := healthyResults()
		results.Economic.Margin = -1000
		results.Economic.CostPerKg = 13
		results.AreaHectares = 0.5

		factors := handler.IdentifyRisks(results)
		require.Len(t, factors, 3)
		require.Equal(t, domain.RiskType_MarginNegative, factors[0].Type)
		require.Equal(t, domain.RiskType_CostOutOfRange, factors[1].Type)
		require.Equal(t, domain.RiskType_SmallScale, factors[2].Type)
	})
}
